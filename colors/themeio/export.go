// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package themeio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"github.com/frankvgompel/xilem/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the formats that color tokens can be exported in.
type Formats int32 //enums:enum -transform lower

const (
	// TOML is a TOML document.
	TOML Formats = iota

	// YAML is a YAML document.
	YAML

	// JSON is an indented JSON document.
	JSON

	// CSS is a block of CSS custom properties.
	CSS
)

// FormatOf returns the format matching the extension
// of the given filename, and whether there is one.
func FormatOf(filename string) (Formats, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "yml" {
		ext = "yaml"
	}
	var f Formats
	if ext == "" || f.SetString(ext) != nil {
		return TOML, false
	}
	return f, true
}

// Document is the exported form of a set of resolved color tokens.
type Document struct {

	// Theme is the theme color the tokens were generated from
	Theme string `toml:"theme" yaml:"theme" json:"theme"`

	// Dark is whether the tokens are for a dark theme
	Dark bool `toml:"dark" yaml:"dark" json:"dark"`

	// Scale is the name of the scale generator
	Scale string `toml:"scale" yaml:"scale" json:"scale"`

	// InverseColor is whether the accent text is a dark color
	InverseColor bool `toml:"inverse_color" yaml:"inverse_color" json:"inverse_color"`

	// Tokens are the #rrggbb hex values of the tokens, keyed by kebab-case name
	Tokens map[string]string `toml:"tokens" yaml:"tokens" json:"tokens"`
}

// NewDocument returns the [Document] for the given settings
// and the tokens resolved from them.
func NewDocument(s *Settings, ct *colors.ColorTokens) *Document {
	d := &Document{
		Theme:        s.Theme.String(),
		Dark:         s.Dark,
		Scale:        s.Scale,
		InverseColor: ct.InverseColor(),
		Tokens:       map[string]string{},
	}
	for t, c := range ct.Tokens() {
		d.Tokens[t.Kebab()] = colors.AsHex(c)
	}
	return d
}

// Export writes the given tokens, resolved from the given
// settings, to the given writer in the given format.
func Export(w io.Writer, s *Settings, ct *colors.ColorTokens, f Formats) error {
	d := NewDocument(s, ct)
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		return jsonx.WriteIndent(d, w)
	case CSS:
		return writeCSS(w, s, ct)
	}
	return fmt.Errorf("themeio: invalid format %v", f)
}

// writeCSS writes the tokens as CSS custom properties in slot order.
func writeCSS(w io.Writer, s *Settings, ct *colors.ColorTokens) error {
	mode := "light"
	if s.Dark {
		mode = "dark"
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "/* %s %s theme (%s scale) */\n", s.Theme, mode, s.Scale)
	b.WriteString(":root {\n")
	for t := colors.AppBackground; t <= colors.AccentText; t++ {
		fmt.Fprintf(b, "\t--%s: %s;\n", t.Kebab(), colors.AsHex(ct.Resolve(colors.Token(t))))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
