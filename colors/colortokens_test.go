// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func step(i int) color.RGBA {
	return color.RGBA{uint8(10 * i), uint8(20 + i), uint8(200 - i), 255}
}

func TestColorTokensZero(t *testing.T) {
	ct := ColorTokens{}
	assert.False(t, ct.Complete())
	assert.False(t, ct.InverseColor())
	assert.Equal(t, Black, ct.AccentText())
	assert.Equal(t, Black, ct.Resolve(Token(AccentText)))
	assert.Equal(t, color.RGBA{}, ct.Resolve(Token(AppBackground)))
}

func TestUpdateSchema(t *testing.T) {
	ct := ColorTokens{}
	for i := range ScaleSteps {
		ct.UpdateSchema(i, step(i))
	}
	assert.False(t, ct.Complete())

	for i := range ScaleSteps {
		assert.Equal(t, step(i), ct.Resolve(Token(Tokens(i))), Tokens(i).String())
		assert.Equal(t, step(i), ct.Slot(i))
	}
	assert.Equal(t, step(0), ct.AppBackground)
	assert.Equal(t, step(8), ct.SolidBackgrounds)
	assert.Equal(t, step(11), ct.HighContrastText)

	before := ct
	ct.UpdateSchema(-1, White)
	ct.UpdateSchema(ScaleSteps, White)
	ct.UpdateSchema(100, White)
	assert.Equal(t, before, ct)

	assert.Equal(t, Transparent, ct.Slot(-1))
	assert.Equal(t, Transparent, ct.Slot(ScaleSteps))

	sc := ct.Scale()
	for i, c := range sc {
		assert.Equal(t, step(i), c)
	}

	ct.UpdateSchema(3, White)
	assert.Equal(t, White, ct.HoveredUIElementBackground)
}

func TestResolve(t *testing.T) {
	ct := ColorTokens{}
	for i := range ScaleSteps {
		ct.UpdateSchema(i, White)
	}
	ct.ComputeOnAccent()
	assert.True(t, ct.Complete())
	assert.True(t, ct.InverseColor())
	assert.Equal(t, ct.OnAccent, ct.Resolve(Token(AccentText)))
	assert.NotEqual(t, White, ct.AccentText())

	assert.Equal(t, Transparent, ct.Resolve(Token(TransparentToken)))
	c := color.RGBA{1, 2, 3, 4}
	assert.Equal(t, c, ct.Resolve(CustomColor(c)))
	assert.Equal(t, Transparent, ct.Resolve(Token(TokensN+5)))

	m := ct.Tokens()
	assert.Len(t, m, ScaleSteps+1)
	assert.Equal(t, ct.AccentText(), m[AccentText])
	assert.Equal(t, White, m[SubtleBackground])
}

func TestComputeOnAccentRecompute(t *testing.T) {
	ct := ColorTokens{}
	ct.UpdateSchema(int(SolidBackgrounds), White)
	ct.ComputeOnAccent()
	assert.True(t, ct.InverseColor())

	// the accent text is only derived on request
	ct.UpdateSchema(int(SolidBackgrounds), Black)
	assert.True(t, ct.InverseColor())
	ct.ComputeOnAccent()
	assert.False(t, ct.InverseColor())
	assert.Equal(t, White, ct.AccentText())
}

func TestNewColorTokens(t *testing.T) {
	gen := GeneratorFunc(func(base LinearColor, dark bool) []color.RGBA {
		sc := make([]color.RGBA, ScaleSteps)
		for i := range sc {
			sc[i] = step(i)
		}
		sc[SolidBackgrounds] = base.SRGB()
		return sc
	})
	ct := NewColorTokens(gen, CustomRGB(0, 0, 0), false)
	assert.True(t, ct.Complete())
	assert.Equal(t, Black, ct.SolidBackgrounds)
	assert.False(t, ct.InverseColor())
	assert.Equal(t, White, ct.AccentText())

	short := GeneratorFunc(func(base LinearColor, dark bool) []color.RGBA {
		return []color.RGBA{White, White}
	})
	ct = NewColorTokens(short, Preset(Gray), true)
	assert.False(t, ct.Complete())
	assert.Equal(t, White, ct.SubtleBackground)
	assert.Equal(t, color.RGBA{}, ct.UIElementBackground)
}

func ExampleColorTokens_Resolve() {
	ct := ColorTokens{}
	ct.UpdateSchema(int(SolidBackgrounds), color.RGBA{0, 109, 143, 255})
	ct.ComputeOnAccent()
	fmt.Println(AsHex(ct.Resolve(Token(SolidBackgrounds))))
	fmt.Println(AsHex(ct.Resolve(Token(AccentText))), ct.InverseColor())
	fmt.Println(AsHex(ct.Resolve(Token(TransparentToken))))
	fmt.Println(AsHex(ct.Resolve(CustomColor(color.RGBA{255, 0, 0, 255}))))
	// Output:
	// #006d8f
	// #ffffff false
	// #00000000
	// #ff0000
}
