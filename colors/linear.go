// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors/cam/cie"
	"cogentcore.org/core/math32"
)

// LinearColor is an opaque color with linear-light sRGB components
// in the range 0-1, which can be added and interpolated directly.
type LinearColor struct {
	R, G, B float32
}

// Linear returns the linear-light representation of the given color,
// removing the sRGB gamma encoding. Alpha is ignored.
func Linear(c color.RGBA) LinearColor {
	return LinearColor{
		R: cie.SRGBToLinearComp(float32(c.R) / 255),
		G: cie.SRGBToLinearComp(float32(c.G) / 255),
		B: cie.SRGBToLinearComp(float32(c.B) / 255),
	}
}

// SRGB returns the opaque gamma encoded 8-bit color for the linear color.
// Components outside of 0-1 are clamped.
func (l LinearColor) SRGB() color.RGBA {
	r := cie.SRGBFromLinearComp(math32.Clamp(l.R, 0, 1))
	g := cie.SRGBFromLinearComp(math32.Clamp(l.G, 0, 1))
	b := cie.SRGBFromLinearComp(math32.Clamp(l.B, 0, 1))
	ur, ug, ub, _ := cie.SRGBFloatToUint8(r, g, b, 1)
	return color.RGBA{ur, ug, ub, 255}
}

// Lerp returns the linear interpolation between this color and the
// other one, where amount 0 is this color and 1 is the other one.
func (l LinearColor) Lerp(other LinearColor, amount float32) LinearColor {
	return LinearColor{
		R: math32.Lerp(l.R, other.R, amount),
		G: math32.Lerp(l.G, other.G, amount),
		B: math32.Lerp(l.B, other.B, amount),
	}
}

func (l LinearColor) String() string {
	return fmt.Sprintf("linear(%g, %g, %g)", l.R, l.G, l.B)
}
