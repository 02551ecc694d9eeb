// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"cogentcore.org/core/colors/cam/hct"
)

// Tones contains cached color values at different tones and
// chromas of a key color, which keep the hue of the key color.
// To get a tonal value, use [Tones.Tone].
type Tones struct {

	// Key is the key color used to generate these tones
	Key hct.HCT

	// Tones is the cache of tonal color values
	Tones map[[2]float32]color.RGBA
}

// NewTones returns a new set of [Tones] for the given color.
func NewTones(c color.Color) Tones {
	return Tones{
		Key:   hct.FromColor(c),
		Tones: map[[2]float32]color.RGBA{},
	}
}

// Tone returns the color at the given absolute HCT tone (0-100),
// with the chroma of the key color scaled by the given factor.
// The chroma is reduced as needed to stay within the sRGB gamut.
// It uses the cached value if it exists, and it caches the value
// if it is not already.
func (t *Tones) Tone(tone, chroma float32) color.RGBA {
	k := [2]float32{tone, chroma}
	if c, ok := t.Tones[k]; ok {
		return c
	}
	c := hct.New(t.Key.Hue, t.Key.Chroma*chroma, tone).AsRGBA()
	t.Tones[k] = c
	return c
}
