// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeColorRGB(t *testing.T) {
	assert.Equal(t, [3]uint8{117, 117, 117}, ThemeColor{}.RGB())
	assert.Equal(t, [3]uint8{0, 109, 143}, Preset(EguiBlue).RGB())
	assert.Equal(t, color.RGBA{247, 107, 21, 255}, Preset(Orange).RGBA())
	assert.Equal(t, [3]uint8{}, Custom.RGB())
	assert.Equal(t, [3]uint8{}, ThemeColorsN.RGB())

	c := CustomRGB(10, 20, 30)
	assert.Equal(t, [3]uint8{10, 20, 30}, c.RGB())
	assert.Equal(t, "#0a141e", c.String())
	assert.Equal(t, "Tomato", Preset(Tomato).String())

	for _, tc := range ThemeColorsValues() {
		if tc == Custom {
			continue
		}
		assert.NotEqual(t, [3]uint8{}, tc.RGB(), tc.String())
		assert.Equal(t, uint8(255), Preset(tc).RGBA().A)
	}
}

func TestParseThemeColor(t *testing.T) {
	tests := []struct {
		in   string
		want ThemeColor
	}{
		{"Tomato", Preset(Tomato)},
		{"tomato", Preset(Tomato)},
		{" EGUIBLUE ", Preset(EguiBlue)},
		{"#ff0000", CustomRGB(255, 0, 0)},
		{"#f00", CustomRGB(255, 0, 0)},
		{"#0A141E", CustomRGB(10, 20, 30)},
		{"navy", CustomRGB(0, 0, 128)},
	}
	for _, test := range tests {
		tc, err := ParseThemeColor(test.in)
		assert.NoError(t, err, test.in)
		assert.Equal(t, test.want, tc, test.in)
	}

	for _, in := range []string{"", "nope", "#zzz", "#12345", "#1234567", "#ff00001", "#", "Custom"} {
		_, err := ParseThemeColor(in)
		assert.ErrorIs(t, err, ErrInvalidThemeColor, in)
	}
}

func TestThemeColorText(t *testing.T) {
	for _, tc := range []ThemeColor{Preset(Jade), CustomRGB(1, 2, 3), {}} {
		b, err := tc.MarshalText()
		assert.NoError(t, err)
		var res ThemeColor
		assert.NoError(t, res.UnmarshalText(b))
		assert.Equal(t, tc, res)
	}
	var res ThemeColor
	assert.Error(t, res.UnmarshalText([]byte("?")))
}
