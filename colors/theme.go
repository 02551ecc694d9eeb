// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ThemeColors are the base hues that a theme can be generated from.
type ThemeColors int32 //enums:enum

const (
	Gray ThemeColors = iota
	EguiBlue
	Tomato
	Red
	Ruby
	Crimson
	Pink
	Plum
	Purple
	Violet
	Iris
	Indigo
	Blue
	Cyan
	Teal
	Jade
	Green
	Grass
	Brown
	Bronze
	Gold
	Orange

	// Custom is a caller supplied base color, stored in [ThemeColor.Value].
	Custom
)

// presets are the sRGB values of the named [ThemeColors].
var presets = [Custom][3]uint8{
	Gray:     {117, 117, 117},
	EguiBlue: {0, 109, 143},
	Tomato:   {229, 77, 46},
	Red:      {229, 72, 77},
	Ruby:     {229, 70, 102},
	Crimson:  {233, 61, 130},
	Pink:     {214, 64, 159},
	Plum:     {171, 74, 186},
	Purple:   {142, 78, 198},
	Violet:   {110, 86, 207},
	Iris:     {91, 91, 214},
	Indigo:   {62, 99, 214},
	Blue:     {0, 144, 255},
	Cyan:     {0, 162, 199},
	Teal:     {18, 165, 148},
	Jade:     {41, 163, 131},
	Green:    {48, 164, 108},
	Grass:    {70, 167, 88},
	Brown:    {173, 127, 88},
	Bronze:   {161, 128, 114},
	Gold:     {151, 131, 101},
	Orange:   {247, 107, 21},
}

// RGB returns the sRGB value of the preset. [Custom] and
// invalid values have no preset value and return black.
func (tc ThemeColors) RGB() [3]uint8 {
	if tc < 0 || tc >= Custom {
		return [3]uint8{}
	}
	return presets[tc]
}

// ThemeColor is the base color of a theme: either one of the
// preset [ThemeColors], or a [Custom] sRGB value.
// The zero value is the [Gray] preset.
type ThemeColor struct {

	// Preset is the preset hue, or [Custom]
	Preset ThemeColors

	// Value is the sRGB value used when Preset is [Custom]
	Value [3]uint8
}

// Preset returns a [ThemeColor] for the given preset.
func Preset(tc ThemeColors) ThemeColor {
	return ThemeColor{Preset: tc}
}

// CustomRGB returns a [Custom] [ThemeColor] with the given sRGB value.
func CustomRGB(r, g, b uint8) ThemeColor {
	return ThemeColor{Preset: Custom, Value: [3]uint8{r, g, b}}
}

// RGB returns the sRGB value of the theme color.
// It is useful, for example, for serializing a theme.
func (t ThemeColor) RGB() [3]uint8 {
	if t.Preset == Custom {
		return t.Value
	}
	return t.Preset.RGB()
}

// RGBA returns the theme color as an opaque [color.RGBA].
func (t ThemeColor) RGBA() color.RGBA {
	v := t.RGB()
	return color.RGBA{v[0], v[1], v[2], 255}
}

// Linear returns the linear-light representation of the theme color,
// which is what scale generators work from.
func (t ThemeColor) Linear() LinearColor {
	return Linear(t.RGBA())
}

// String returns the preset name, or the #rrggbb hex
// value for [Custom] theme colors.
func (t ThemeColor) String() string {
	if t.Preset == Custom {
		return AsHex(t.RGBA())
	}
	return t.Preset.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t ThemeColor) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *ThemeColor) UnmarshalText(text []byte) error {
	tc, err := ParseThemeColor(string(text))
	if err != nil {
		return err
	}
	*t = tc
	return nil
}

// ErrInvalidThemeColor is returned by [ParseThemeColor] for
// strings that do not name a theme color.
var ErrInvalidThemeColor = errors.New("invalid theme color")

// ParseThemeColor parses a [ThemeColor] from the given string, which
// can be a preset name (case insensitive), a #rgb or #rrggbb hex value,
// or a CSS color name. Hex values and CSS names result in [Custom].
func ParseThemeColor(s string) (ThemeColor, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return ThemeColor{}, fmt.Errorf("%w %q: hex value must be #rgb or #rrggbb", ErrInvalidThemeColor, s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return ThemeColor{}, fmt.Errorf("%w %q: %w", ErrInvalidThemeColor, s, err)
		}
		return CustomRGB(c.RGB255()), nil
	}
	for _, tc := range ThemeColorsValues() {
		if tc != Custom && strings.EqualFold(tc.String(), s) {
			return Preset(tc), nil
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return CustomRGB(c.R, c.G, c.B), nil
	}
	return ThemeColor{}, fmt.Errorf("%w %q", ErrInvalidThemeColor, s)
}
