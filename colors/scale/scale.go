// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides generators of the 12 step color
// scales that [colors.ColorTokens] are populated from.
package scale

import (
	"fmt"
	"slices"

	"github.com/frankvgompel/xilem/colors"
)

// Default is the name of the default generator.
const Default = "tonal"

// generators are the named generators, created on demand
// so that callers can modify the result freely.
var generators = map[string]func() colors.Generator{
	"tonal": func() colors.Generator { return NewTonal() },
	"mix":   func() colors.Generator { return NewMix() },
}

// ByName returns a new generator with the given name, which must be
// one of [Names]. An empty name returns the [Default] generator.
func ByName(name string) (colors.Generator, error) {
	if name == "" {
		name = Default
	}
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("scale: unknown generator %q (must be one of %v)", name, Names())
	}
	return f(), nil
}

// Names returns the sorted names of the available generators.
func Names() []string {
	names := make([]string, 0, len(generators))
	for nm := range generators {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}
