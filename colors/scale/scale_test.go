// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"testing"

	"cogentcore.org/core/colors/cam/hct"
	"github.com/frankvgompel/xilem/colors"
	"github.com/stretchr/testify/assert"
)

func presets() []colors.ThemeColor {
	var res []colors.ThemeColor
	for _, tc := range colors.ThemeColorsValues() {
		if tc != colors.Custom {
			res = append(res, colors.Preset(tc))
		}
	}
	return res
}

func TestTonal(t *testing.T) {
	tn := NewTonal()
	for _, theme := range presets() {
		for _, dark := range []bool{false, true} {
			sc := tn.Generate(theme.Linear(), dark)
			msg := fmt.Sprintf("%v dark=%v", theme, dark)
			assert.Len(t, sc, colors.ScaleSteps, msg)
			assert.Equal(t, theme.Linear().SRGB(), sc[colors.SolidBackgrounds], msg)
			for _, c := range sc {
				assert.Equal(t, uint8(255), c.A, msg)
			}
			if dark {
				assert.True(t, hct.IsDark(sc[colors.AppBackground]), msg)
				assert.True(t, hct.IsLight(sc[colors.HighContrastText]), msg)
			} else {
				assert.True(t, hct.IsLight(sc[colors.AppBackground]), msg)
				assert.True(t, hct.IsDark(sc[colors.HighContrastText]), msg)
			}
			assert.Greater(t, hct.ContrastRatio(sc[colors.HighContrastText], sc[colors.AppBackground]), float32(7), msg)
			for i := 0; i < int(colors.HoveredUIElementBorder); i++ {
				a := hct.FromColor(sc[i]).Tone
				b := hct.FromColor(sc[i+1]).Tone
				if dark {
					assert.Less(t, a, b, msg)
				} else {
					assert.Greater(t, a, b, msg)
				}
			}
		}
	}
}

func TestMix(t *testing.T) {
	m := NewMix()
	for _, theme := range presets() {
		for _, dark := range []bool{false, true} {
			sc := m.Generate(theme.Linear(), dark)
			msg := fmt.Sprintf("%v dark=%v", theme, dark)
			assert.Len(t, sc, colors.ScaleSteps, msg)
			assert.Equal(t, theme.Linear().SRGB(), sc[colors.SolidBackgrounds], msg)
			if dark {
				assert.True(t, hct.IsDark(sc[colors.AppBackground]), msg)
				assert.True(t, hct.IsLight(sc[colors.HighContrastText]), msg)
			} else {
				assert.True(t, hct.IsLight(sc[colors.AppBackground]), msg)
				assert.True(t, hct.IsDark(sc[colors.HighContrastText]), msg)
			}
			// every step moves further from the background
			for i := 0; i < colors.ScaleSteps-1; i++ {
				a := hct.FromColor(sc[i]).Tone
				b := hct.FromColor(sc[i+1]).Tone
				if dark {
					assert.Less(t, a, b, "%s step %d", msg, i)
				} else {
					assert.Greater(t, a, b, "%s step %d", msg, i)
				}
			}
		}
	}
}

func TestMixGray(t *testing.T) {
	sc := NewMix().Generate(colors.LinearColor{R: 0.5, G: 0.5, B: 0.5}, false)
	for _, c := range sc {
		assert.Equal(t, c.R, c.G)
		assert.Equal(t, c.G, c.B)
	}
}

func TestTones(t *testing.T) {
	tones := NewTones(colors.Preset(colors.Blue).RGBA())
	a := tones.Tone(50, 1)
	assert.Equal(t, a, tones.Tone(50, 1))
	assert.Len(t, tones.Tones, 1)
	tones.Tone(40, 0.5)
	assert.Len(t, tones.Tones, 2)
	assert.InDelta(t, 50, hct.FromColor(a).Tone, 1)
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"mix", "tonal"}, Names())

	g, err := ByName("")
	assert.NoError(t, err)
	assert.IsType(t, &Tonal{}, g)

	g, err = ByName("mix")
	assert.NoError(t, err)
	assert.IsType(t, &Mix{}, g)

	_, err = ByName("rainbow")
	assert.Error(t, err)
}

func TestNewColorTokens(t *testing.T) {
	for _, name := range Names() {
		g, err := ByName(name)
		assert.NoError(t, err)
		ct := colors.NewColorTokens(g, colors.Preset(colors.Blue), false)
		assert.True(t, ct.Complete(), name)
		assert.Equal(t, ct.SolidBackgrounds, ct.Resolve(colors.Token(colors.SolidBackgrounds)), name)
	}
}

func ExampleTonal() {
	ct := colors.NewColorTokens(NewTonal(), colors.Preset(colors.EguiBlue), true)
	fmt.Println(colors.AsHex(ct.SolidBackgrounds), ct.InverseColor(), colors.AsHex(ct.AccentText()))
	// Output: #006d8f false #ffffff
}
