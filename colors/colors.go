// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors resolves purpose-named UI colors (semantic tokens such as
// the app background or the text on an accent) to concrete RGBA values.
// The values come from a 12 step scale generated from a single base
// [ThemeColor], and the accent text color is chosen so that it is always
// legible on the solid accent background.
package colors

//go:generate core generate

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}

	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// Transparent is fully transparent black.
	Transparent = color.RGBA{}
)

// AsHex returns the given color as a hex string of the form #rrggbb,
// or #rrggbbaa if it is not fully opaque.
func AsHex(c color.RGBA) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if c.A == 255 {
		return cf.Hex()
	}
	return fmt.Sprintf("%s%02x", cf.Hex(), c.A)
}
