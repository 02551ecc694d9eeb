// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	assert.Equal(t, LinearColor{}, Linear(Black))
	w := Linear(White)
	tolassert.Equal(t, 1, w.R)
	tolassert.Equal(t, 1, w.G)
	tolassert.Equal(t, 1, w.B)

	g := Linear(color.RGBA{128, 128, 128, 255})
	tolassert.EqualTol(t, 0.2158605, g.R, 1e-4)

	for i := range 256 {
		c := color.RGBA{uint8(i), uint8(255 - i), uint8(i / 2), 255}
		assert.Equal(t, c, Linear(c).SRGB())
	}
}

func TestLinearSRGBClamp(t *testing.T) {
	assert.Equal(t, White, LinearColor{2, 1.5, 1}.SRGB())
	assert.Equal(t, Black, LinearColor{-1, -0.1, 0}.SRGB())
}

func TestLerp(t *testing.T) {
	a := LinearColor{0, 0.5, 1}
	b := LinearColor{1, 0.5, 0}
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	m := a.Lerp(b, 0.5)
	tolassert.Equal(t, 0.5, m.R)
	tolassert.Equal(t, 0.5, m.G)
	tolassert.Equal(t, 0.5, m.B)
}

func TestTokens(t *testing.T) {
	assert.True(t, AppBackground.IsSlot())
	assert.True(t, HighContrastText.IsSlot())
	assert.False(t, AccentText.IsSlot())
	assert.False(t, CustomToken.IsSlot())
	assert.Equal(t, "app-background", AppBackground.Kebab())
	assert.Equal(t, "high-contrast-text", HighContrastText.Kebab())
	assert.Equal(t, "LowContrastText", Token(LowContrastText).String())
	assert.Equal(t, "Custom(#ff000080)", CustomColor(color.RGBA{255, 0, 0, 128}).String())
	assert.Equal(t, TokenColor{}, Token(AppBackground))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#000000", AsHex(Black))
	assert.Equal(t, "#ffffff", AsHex(White))
	assert.Equal(t, "#00000000", AsHex(Transparent))
	assert.Equal(t, "#0a141e", AsHex(color.RGBA{10, 20, 30, 255}))
}
