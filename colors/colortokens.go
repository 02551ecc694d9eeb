// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
)

// ColorTokens contains the resolved color of every functional UI slot,
// populated from a 12 step scale, and the accent text color derived
// from the solid background. A ColorTokens is a plain value: once it is
// complete it can be copied and read concurrently without locking.
//
// The zero value is usable but incomplete: slots that were never set
// hold the zero color, and the accent text resolves to [Black] until
// [ColorTokens.ComputeOnAccent] has run. Use [NewColorTokens] to build
// a complete set in one step.
type ColorTokens struct {
	AppBackground                color.RGBA
	SubtleBackground             color.RGBA
	UIElementBackground          color.RGBA
	HoveredUIElementBackground   color.RGBA
	ActiveUIElementBackground    color.RGBA
	SubtleBordersAndSeparators   color.RGBA
	UIElementBorderAndFocusRings color.RGBA
	HoveredUIElementBorder       color.RGBA
	SolidBackgrounds             color.RGBA
	HoveredSolidBackgrounds      color.RGBA
	LowContrastText              color.RGBA
	HighContrastText             color.RGBA

	// OnAccent is the text color on [ColorTokens.SolidBackgrounds],
	// set by [ColorTokens.ComputeOnAccent].
	OnAccent color.RGBA

	// inverse is whether OnAccent is a dark color instead of white
	inverse bool

	// derived is whether ComputeOnAccent has run
	derived bool

	// populated has bit i set once slot i has been set
	populated uint16
}

// slot returns a pointer to the functional slot at the given
// scale index, or nil if the index is out of range.
func (ct *ColorTokens) slot(i int) *color.RGBA {
	switch i {
	case 0:
		return &ct.AppBackground
	case 1:
		return &ct.SubtleBackground
	case 2:
		return &ct.UIElementBackground
	case 3:
		return &ct.HoveredUIElementBackground
	case 4:
		return &ct.ActiveUIElementBackground
	case 5:
		return &ct.SubtleBordersAndSeparators
	case 6:
		return &ct.UIElementBorderAndFocusRings
	case 7:
		return &ct.HoveredUIElementBorder
	case 8:
		return &ct.SolidBackgrounds
	case 9:
		return &ct.HoveredSolidBackgrounds
	case 10:
		return &ct.LowContrastText
	case 11:
		return &ct.HighContrastText
	}
	return nil
}

// UpdateSchema sets the functional slot at the given scale index (0-11)
// to the given color. Indices out of range are ignored, as the index
// stream comes from a scale generator rather than from user input.
func (ct *ColorTokens) UpdateSchema(i int, c color.RGBA) {
	s := ct.slot(i)
	if s == nil {
		return
	}
	*s = c
	ct.populated |= 1 << i
}

// Slot returns the color of the functional slot at the given scale
// index, and [Transparent] for indices out of range.
func (ct *ColorTokens) Slot(i int) color.RGBA {
	s := ct.slot(i)
	if s == nil {
		return Transparent
	}
	return *s
}

// Scale returns the functional slots in scale order.
func (ct *ColorTokens) Scale() [ScaleSteps]color.RGBA {
	var sc [ScaleSteps]color.RGBA
	for i := range sc {
		sc[i] = ct.Slot(i)
	}
	return sc
}

// Complete returns whether all functional slots have been set
// and the accent text has been derived.
func (ct *ColorTokens) Complete() bool {
	return ct.populated == 1<<ScaleSteps-1 && ct.derived
}

// ComputeOnAccent derives the accent text color from the current
// solid background using [OnAccent], and records whether a dark
// (inverse) color had to be used. It only reads SolidBackgrounds,
// so it must run after that slot has been set.
func (ct *ColorTokens) ComputeOnAccent() {
	ct.OnAccent, ct.inverse = OnAccent(ct.SolidBackgrounds)
	ct.derived = true
}

// InverseColor returns whether the accent text is a dark color
// because white did not contrast enough with the solid background.
// It is false until [ColorTokens.ComputeOnAccent] has run.
func (ct *ColorTokens) InverseColor() bool {
	return ct.inverse
}

// AccentText returns the text color for the solid background,
// or [Black] if it has not been derived yet.
func (ct *ColorTokens) AccentText() color.RGBA {
	if !ct.derived {
		return Black
	}
	return ct.OnAccent
}

// Resolve returns the concrete color for the given [TokenColor].
// It never fails: custom colors are returned unchanged, the
// transparent token always gives [Transparent], and functional
// tokens give whatever their slot currently holds.
func (ct *ColorTokens) Resolve(tc TokenColor) color.RGBA {
	switch {
	case tc.Token.IsSlot():
		return ct.Slot(int(tc.Token))
	case tc.Token == AccentText:
		return ct.AccentText()
	case tc.Token == CustomToken:
		return tc.Color
	}
	return Transparent
}

// Tokens returns the resolved color of every functional slot and the
// accent text, keyed by token.
func (ct *ColorTokens) Tokens() map[Tokens]color.RGBA {
	m := make(map[Tokens]color.RGBA, ScaleSteps+1)
	for t := AppBackground; t <= AccentText; t++ {
		m[t] = ct.Resolve(Token(t))
	}
	return m
}
