// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on the APCA-W3 0.0.98G-4g reference implementation:
// https://github.com/Myndex/apca-w3

// Package apca provides the Accessible Perceptual Contrast Algorithm (APCA)
// lightness contrast estimate (Lc) between a text color and a background color.
package apca

import (
	"image/color"
	"math"
)

// Constants of the 0.0.98G-4g model.
const (
	mainTRC = 2.4

	sRco = 0.2126729
	sGco = 0.7151522
	sBco = 0.0721750

	normBG  = 0.56
	normTXT = 0.57
	revTXT  = 0.62
	revBG   = 0.65

	blkThrs = 0.022
	blkClmp = 1.414

	scaleBoW    = 1.14
	scaleWoB    = 1.14
	loBoWoffset = 0.027
	loWoBoffset = 0.027
	deltaYmin   = 0.0005
	loClip      = 0.1
)

// EstimateLc returns the lightness contrast (Lc) of the given text color
// on the given background color, roughly in the range -108 to 106.
// Positive values mean dark text on a light background, negative
// values mean light text on a dark background, and 0 means that the
// contrast is too low to be measured. The alpha channels are ignored.
func EstimateLc(txt, bg color.RGBA) float64 {
	return Contrast(SRGBToY(txt), SRGBToY(bg))
}

// SRGBToY returns the estimated screen luminance (Y) of the given
// color, using the simple exponent of the APCA model rather than
// the piecewise sRGB transfer function.
func SRGBToY(c color.RGBA) float64 {
	return sRco*linearize(c.R) + sGco*linearize(c.G) + sBco*linearize(c.B)
}

func linearize(v uint8) float64 {
	return math.Pow(float64(v)/255, mainTRC)
}

// Contrast returns the lightness contrast (Lc) for the given text and
// background luminance values, as computed by [SRGBToY].
func Contrast(txtY, bgY float64) float64 {
	if math.IsNaN(txtY) || math.IsNaN(bgY) || min(txtY, bgY) < 0 || max(txtY, bgY) > 1.1 {
		return 0
	}

	txtY = softClamp(txtY)
	bgY = softClamp(bgY)

	if math.Abs(bgY-txtY) < deltaYmin {
		return 0
	}

	var out float64
	if bgY > txtY {
		// dark text on light background
		sapc := (math.Pow(bgY, normBG) - math.Pow(txtY, normTXT)) * scaleBoW
		if sapc < loClip {
			return 0
		}
		out = sapc - loBoWoffset
	} else {
		// light text on dark background
		sapc := (math.Pow(bgY, revBG) - math.Pow(txtY, revTXT)) * scaleWoB
		if sapc > -loClip {
			return 0
		}
		out = sapc + loWoBoffset
	}
	return out * 100
}

// softClamp lifts near black luminance values, which accounts
// for flare and the low end of the display's response.
func softClamp(y float64) float64 {
	if y > blkThrs {
		return y
	}
	return y + math.Pow(blkThrs-y, blkClmp)
}
