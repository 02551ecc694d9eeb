// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xilemcolors shows and exports the color tokens of a theme.
package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/frankvgompel/xilem/colors"
	"github.com/frankvgompel/xilem/colors/scale"
	"github.com/frankvgompel/xilem/colors/themeio"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the xilemcolors cli.
type Config struct {

	// Theme is the theme color: a preset name such as Tomato,
	// a #rrggbb hex value, or a CSS color name.
	Theme string `default:"EguiBlue" posarg:"0" required:"-"`

	// Dark is whether to use a dark theme.
	Dark bool `flag:"d,dark"`

	// Scale is the name of the scale generator (tonal or mix).
	Scale string `default:"tonal"`

	// Settings is an optional TOML settings file. If it is set,
	// the theme settings are read from it instead of from the flags,
	// and the save command writes the flags to it.
	Settings string `flag:"s,settings"`

	// Format is the export format, used when it can not
	// be determined from the Output file extension.
	Format themeio.Formats `cmd:"export" default:"toml"`

	// Output is the file to export to. The tokens are
	// written to standard output if it is empty.
	Output string `cmd:"export" flag:"o,output"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("xilemcolors", "Show and export the accessible color tokens of a theme.")
	cli.Run(opts, &Config{}, Show, Export, Presets, Save)
}

// settings returns the theme settings for the config.
func (c *Config) settings() (*themeio.Settings, error) {
	s := themeio.DefaultSettings()
	if c.Settings != "" {
		return s, s.Open(c.Settings)
	}
	tc, err := colors.ParseThemeColor(c.Theme)
	if err != nil {
		return nil, err
	}
	s.Theme = tc
	s.Dark = c.Dark
	s.Scale = c.Scale
	return s, nil
}

// Show prints every color token of the theme with a swatch,
// and the contrast of white text on the solid background.
func Show(c *Config) error { //cli:cmd -root
	return show(os.Stdout, c)
}

func show(w io.Writer, c *Config) error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	ct, err := s.Tokens()
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	for t := colors.AppBackground; t <= colors.AccentText; t++ {
		col := ct.Resolve(colors.Token(t))
		hex := colors.AsHex(col)
		sw := out.String("    ").Background(out.Color(hex))
		fmt.Fprintf(out, "%s %s %s\n", sw, hex, t.Kebab())
	}
	sample := out.String(" Aa ").Foreground(out.Color(colors.AsHex(ct.AccentText()))).Background(out.Color(colors.AsHex(ct.SolidBackgrounds)))
	fmt.Fprintf(out, "%s Lc %.1f, inverse %v\n", sample, colors.AccentContrast(ct.SolidBackgrounds), ct.InverseColor())
	return nil
}

// Export exports the color tokens of the theme to the output
// file, or to standard output if there is none.
func Export(c *Config) error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	ct, err := s.Tokens()
	if err != nil {
		return err
	}
	if c.Output == "" {
		return themeio.Export(os.Stdout, s, &ct, c.Format)
	}
	f := c.Format
	if ff, ok := themeio.FormatOf(c.Output); ok {
		f = ff
	}
	fp, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	err = themeio.Export(fp, s, &ct, f)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		logx.PrintlnDebug("exported", f, "tokens to", c.Output)
	}
	return err
}

// Presets prints the preset theme colors with a swatch of each.
func Presets(c *Config) error {
	return presets(os.Stdout)
}

func presets(w io.Writer) error {
	out := termenv.NewOutput(w)
	for _, tc := range colors.ThemeColorsValues() {
		if tc == colors.Custom {
			continue
		}
		fg, inv := colors.OnAccent(colors.Preset(tc).RGBA())
		hex := colors.AsHex(colors.Preset(tc).RGBA())
		fgHex := colors.AsHex(fg)
		sw := out.String(" Aa ").Foreground(out.Color(fgHex)).Background(out.Color(hex))
		fmt.Fprintf(out, "%s %s %-9s text %s inverse %v\n", sw, hex, tc, fgHex, inv)
	}
	fmt.Fprintln(out, "scales:", scale.Names())
	return nil
}

// Save saves the theme settings given by the flags to the settings file.
func Save(c *Config) error {
	if c.Settings == "" {
		return errors.New("the settings file must be specified with -settings")
	}
	tc, err := colors.ParseThemeColor(c.Theme)
	if err != nil {
		return err
	}
	s := &themeio.Settings{Theme: tc, Dark: c.Dark, Scale: c.Scale}
	if _, err := s.Tokens(); err != nil {
		return err
	}
	return s.Save(c.Settings)
}
