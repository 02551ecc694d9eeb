// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"log/slog"
)

// Generator generates the color scale of a theme from its base color.
type Generator interface {

	// Generate returns the [ScaleSteps] colors of the scale for the given
	// linear base color, in slot order, for a light or dark theme.
	Generate(base LinearColor, dark bool) []color.RGBA
}

// GeneratorFunc is a function that implements [Generator].
type GeneratorFunc func(base LinearColor, dark bool) []color.RGBA

// Generate calls the function.
func (f GeneratorFunc) Generate(base LinearColor, dark bool) []color.RGBA {
	return f(base, dark)
}

// NewColorTokens builds a complete [ColorTokens] for the given theme color:
// it generates the scale with the given generator, sets every slot in
// order with [ColorTokens.UpdateSchema], and derives the accent text with
// [ColorTokens.ComputeOnAccent]. If the generator returns fewer than
// [ScaleSteps] colors, the remaining slots keep their zero value.
func NewColorTokens(gen Generator, theme ThemeColor, dark bool) ColorTokens {
	ct := ColorTokens{}
	for i, c := range gen.Generate(theme.Linear(), dark) {
		ct.UpdateSchema(i, c)
	}
	ct.ComputeOnAccent()
	slog.Debug("colors: built color tokens", "theme", theme, "dark", dark, "inverse", ct.inverse, "complete", ct.Complete())
	return ct
}
