// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"github.com/frankvgompel/xilem/colors"
)

var (
	linearWhite = colors.LinearColor{R: 1, G: 1, B: 1}
	linearBlack = colors.LinearColor{}
)

// Mix is a [colors.Generator] that mixes the base color in linear
// light with the theme background: white for light themes and black
// for dark themes. The background steps mix in increasing amounts of
// the base color, and the text steps mix the base color toward the
// opposite end.
type Mix struct {

	// Amounts are the amounts of the base color in the first
	// eight steps, from the app background to the hovered border
	Amounts [8]float32

	// Light are the amounts of black mixed into the base color
	// for the last three steps in light themes
	Light [3]float32

	// Dark are the amounts of white mixed into the base color
	// for the last three steps in dark themes
	Dark [3]float32
}

// NewMix returns a new [Mix] generator with the default amounts.
func NewMix() *Mix {
	return &Mix{
		Amounts: [8]float32{0.02, 0.05, 0.1, 0.15, 0.22, 0.3, 0.42, 0.6},
		Light:   [3]float32{0.15, 0.45, 0.85},
		Dark:    [3]float32{0.15, 0.55, 0.9},
	}
}

// Generate implements [colors.Generator].
func (m *Mix) Generate(base colors.LinearColor, dark bool) []color.RGBA {
	bg, fg, ends := linearWhite, linearBlack, m.Light
	if dark {
		bg, fg, ends = linearBlack, linearWhite, m.Dark
	}
	sc := make([]color.RGBA, 0, colors.ScaleSteps)
	for _, a := range m.Amounts {
		sc = append(sc, bg.Lerp(base, a).SRGB())
	}
	sc = append(sc, base.SRGB())
	for _, a := range ends {
		sc = append(sc, base.Lerp(fg, a).SRGB())
	}
	return sc
}
