// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/core/base/strcase"
)

// Tokens are the semantic color tokens that UI code asks for,
// instead of picking concrete colors. The first [ScaleSteps] tokens
// are the functional slots, in the order of the scale steps.
type Tokens int32 //enums:enum

const (
	// AppBackground is the background of the app (step 1).
	AppBackground Tokens = iota

	// SubtleBackground is the background of subtle areas such as
	// cards and sidebars (step 2).
	SubtleBackground

	// UIElementBackground is the background of UI elements (step 3).
	UIElementBackground

	// HoveredUIElementBackground is the background of hovered UI elements (step 4).
	HoveredUIElementBackground

	// ActiveUIElementBackground is the background of active or selected
	// UI elements (step 5).
	ActiveUIElementBackground

	// SubtleBordersAndSeparators is used for borders of non-interactive
	// elements and separators (step 6).
	SubtleBordersAndSeparators

	// UIElementBorderAndFocusRings is used for borders of interactive
	// elements and focus rings (step 7).
	UIElementBorderAndFocusRings

	// HoveredUIElementBorder is the border of hovered interactive elements (step 8).
	HoveredUIElementBorder

	// SolidBackgrounds is the solid accent background, the purest
	// step of the scale (step 9).
	SolidBackgrounds

	// HoveredSolidBackgrounds is the hovered solid accent background (step 10).
	HoveredSolidBackgrounds

	// LowContrastText is used for secondary text (step 11).
	LowContrastText

	// HighContrastText is used for primary text (step 12).
	HighContrastText

	// AccentText is the text color on [SolidBackgrounds], derived by [OnAccent].
	AccentText

	// TransparentToken always resolves to [Transparent].
	TransparentToken

	// CustomToken resolves to the color carried by the [TokenColor].
	CustomToken
)

// ScaleSteps is the number of steps in a color scale,
// and the number of functional slots in [ColorTokens].
const ScaleSteps = 12

// IsSlot returns whether the token is one of the
// [ScaleSteps] functional slots of [ColorTokens].
func (t Tokens) IsSlot() bool {
	return t >= 0 && t < ScaleSteps
}

// Kebab returns the kebab-case name of the token
// (for example "app-background"), as used in exported themes.
func (t Tokens) Kebab() string {
	return strcase.ToKebab(t.String())
}

// TokenColor is a request for a color: either a semantic [Tokens]
// value, or a caller supplied custom color that bypasses the theme.
// The zero value requests the [AppBackground].
type TokenColor struct {

	// Token is the requested token
	Token Tokens

	// Color is the color returned for [CustomToken]
	Color color.RGBA
}

// Token returns a [TokenColor] requesting the given token.
func Token(t Tokens) TokenColor {
	return TokenColor{Token: t}
}

// CustomColor returns a [TokenColor] that always resolves to the given color.
func CustomColor(c color.RGBA) TokenColor {
	return TokenColor{Token: CustomToken, Color: c}
}

func (tc TokenColor) String() string {
	if tc.Token == CustomToken {
		return "Custom(" + AsHex(tc.Color) + ")"
	}
	return tc.Token.String()
}
