// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/frankvgompel/xilem/colors"
)

// Step is one step of a [Tonal] scale.
type Step struct {

	// Tone is the HCT tone of the step in light themes
	Tone float32 `min:"0" max:"100"`

	// DarkTone is the HCT tone of the step in dark themes
	DarkTone float32 `min:"0" max:"100"`

	// Chroma is the chroma of the step, as a fraction of the base chroma
	Chroma float32 `min:"0"`

	// Relative is whether Tone and DarkTone are offsets from
	// the tone of the base color instead of absolute tones
	Relative bool
}

// DefaultSteps are the steps of the default [Tonal] scale.
// The solid background step always is the base color itself.
var DefaultSteps = [colors.ScaleSteps]Step{
	{Tone: 99, DarkTone: 8, Chroma: 0.04},
	{Tone: 97.5, DarkTone: 11, Chroma: 0.08},
	{Tone: 95, DarkTone: 15, Chroma: 0.16},
	{Tone: 92, DarkTone: 19, Chroma: 0.24},
	{Tone: 89, DarkTone: 23, Chroma: 0.32},
	{Tone: 85, DarkTone: 28, Chroma: 0.4},
	{Tone: 78, DarkTone: 35, Chroma: 0.55},
	{Tone: 70, DarkTone: 45, Chroma: 0.75},
	{Chroma: 1, Relative: true},
	{Tone: -5, DarkTone: 5, Chroma: 1, Relative: true},
	{Tone: 43, DarkTone: 75, Chroma: 1},
	{Tone: 18, DarkTone: 94, Chroma: 0.5},
}

// Tonal is a [colors.Generator] that places every step of the scale
// at a fixed HCT tone, keeping the hue of the base color. Because HCT
// tone is perceptual lightness, steps at the same position contrast
// the same way for every base hue.
type Tonal struct {

	// Steps are the steps of the scale
	Steps [colors.ScaleSteps]Step
}

// NewTonal returns a new [Tonal] generator with the [DefaultSteps].
func NewTonal() *Tonal {
	return &Tonal{Steps: DefaultSteps}
}

// Generate implements [colors.Generator].
func (tn *Tonal) Generate(base colors.LinearColor, dark bool) []color.RGBA {
	key := base.SRGB()
	tones := NewTones(key)
	sc := make([]color.RGBA, colors.ScaleSteps)
	for i, st := range tn.Steps {
		if i == int(colors.SolidBackgrounds) {
			sc[i] = key
			continue
		}
		tone := st.Tone
		if dark {
			tone = st.DarkTone
		}
		if st.Relative {
			tone += tones.Key.Tone
		}
		sc[i] = tones.Tone(math32.Clamp(tone, 0, 100), st.Chroma)
	}
	return sc
}
