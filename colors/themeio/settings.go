// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package themeio saves and loads theme settings, and exports
// resolved color tokens in several text formats.
package themeio

//go:generate core generate

import (
	"cogentcore.org/core/base/iox/tomlx"
	"github.com/frankvgompel/xilem/colors"
	"github.com/frankvgompel/xilem/colors/scale"
)

// Settings are the user settings that a set of
// [colors.ColorTokens] is generated from.
type Settings struct {

	// Theme is the base color of the theme
	Theme colors.ThemeColor `toml:"theme" yaml:"theme" json:"theme"`

	// Dark is whether to use a dark theme
	Dark bool `toml:"dark" yaml:"dark" json:"dark"`

	// Scale is the name of the scale generator; see [scale.Names]
	Scale string `toml:"scale" yaml:"scale" json:"scale"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{Theme: colors.Preset(colors.EguiBlue), Scale: scale.Default}
}

// Open opens the settings from the given TOML file.
// Fields that are missing from the file keep their current value.
func (s *Settings) Open(filename string) error {
	return tomlx.Open(s, filename)
}

// Save saves the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// Tokens returns the complete [colors.ColorTokens] for the settings.
func (s *Settings) Tokens() (colors.ColorTokens, error) {
	gen, err := scale.ByName(s.Scale)
	if err != nil {
		return colors.ColorTokens{}, err
	}
	return colors.NewColorTokens(gen, s.Theme, s.Dark), nil
}
