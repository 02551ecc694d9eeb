// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/frankvgompel/xilem/colors/apca"
	"github.com/frankvgompel/xilem/colors/okhsl"
)

const (
	// AccentThreshold is the APCA lightness contrast of white text on
	// the solid background above which white is not legible enough,
	// and a dark accent text color is used instead.
	AccentThreshold = -46.0

	// OnAccentLightness is the Okhsl lightness of dark accent text.
	OnAccentLightness = 0.01

	// OnAccentSaturation is the Okhsl saturation of dark accent text.
	OnAccentSaturation = 0.7
)

// AccentContrast returns the APCA lightness contrast (Lc)
// of white text on the given background.
func AccentContrast(bg color.RGBA) float64 {
	return apca.EstimateLc(White, bg)
}

// needsInverse returns whether white text is not legible
// enough at the given lightness contrast.
func needsInverse(lc float64) bool {
	return lc > AccentThreshold
}

// OnAccent returns the text color to use on the given solid accent
// background, and whether it is a dark (inverse) color. White is used
// whenever its contrast is sufficient. Otherwise the text is a near
// black color carrying the hue of the background, with the Okhsl
// lightness set to [OnAccentLightness] and the saturation set to
// [OnAccentSaturation]. The result only depends on the RGB value of bg.
func OnAccent(bg color.RGBA) (color.RGBA, bool) {
	if !needsInverse(AccentContrast(bg)) {
		return White, false
	}
	// the 8-bit components are used as linear values, without gamma decoding
	h := okhsl.FromLinear(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255)
	h.Lightness = OnAccentLightness
	h.Saturation = OnAccentSaturation
	r, g, b := h.Linear()
	return LinearColor{R: r, G: g, B: b}.SRGB(), true
}
