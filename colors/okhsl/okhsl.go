// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson, MIT License (see oklab.go)

package okhsl

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Okhsl is a hue, saturation, lightness color model built on
// Oklab, in which saturation is relative to the sRGB gamut
// and lightness matches perceived lightness more closely than
// the lightness of HSL.
type Okhsl struct {

	// Hue is the hue angle in degrees (0-360), shared with [Oklab.Hue]
	Hue float32 `min:"0" max:"360"`

	// Saturation is the chroma relative to the sRGB gamut at the given
	// hue and lightness, 0-1
	Saturation float32 `min:"0" max:"1"`

	// Lightness is the perceived lightness, 0-1
	Lightness float32 `min:"0" max:"1"`
}

// New returns a new [Okhsl] color for the given hue (degrees),
// saturation (0-1) and lightness (0-1).
func New(hue, saturation, lightness float32) Okhsl {
	return Okhsl{Hue: hue, Saturation: saturation, Lightness: lightness}
}

func (c Okhsl) String() string {
	return fmt.Sprintf("okhsl(%g, %g, %g)", c.Hue, c.Saturation, c.Lightness)
}

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// Toe maps Oklab lightness to Okhsl lightness, which lines up
// with the lightness of CIELAB near black.
func Toe(x float32) float32 {
	y := toeK3*x - toeK1
	return 0.5 * (y + math32.Sqrt(y*y+4*toeK2*toeK3*x))
}

// ToeInv is the inverse of [Toe].
func ToeInv(x float32) float32 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// chromas are the reference chroma values that saturation
// is interpolated between for a given lightness and hue.
type chromas struct {
	zero, mid, max float32
}

// stMid returns an approximation of the saturation and
// toe-lightness slopes of the gamut mid point for the given
// normalized hue direction.
func stMid(a, b float32) (s, t float32) {
	s = 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t = 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return
}

func getChromas(L, a, b float32) chromas {
	cusp := FindCusp(a, b)

	cmax := GamutIntersection(a, b, L, 1, L, cusp)
	stS := cusp.C / cusp.L
	stT := cusp.C / (1 - cusp.L)

	// compensates for the curved part of the gamut shape
	k := cmax / min(L*stS, (1-L)*stT)

	ms, mt := stMid(a, b)
	ca := L * ms
	cb := (1 - L) * mt
	cmid := 0.9 * k * math32.Sqrt(math32.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	// hue independent, roughly the average of the gamut slopes
	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 := math32.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return chromas{zero: c0, mid: cmid, max: cmax}
}

const (
	mid    = 0.8
	midInv = 1.25
)

// FromOklab converts the given [Oklab] color to [Okhsl].
// Neutral colors and pure black and white get a hue
// and saturation of 0.
func FromOklab(lab Oklab) Okhsl {
	l := Toe(lab.L)
	C := lab.Chroma()
	if C == 0 || lab.L <= 0 || lab.L >= 1 {
		return Okhsl{Lightness: l}
	}
	a := lab.A / C
	b := lab.B / C
	cs := getChromas(lab.L, a, b)

	var s float32
	if C < cs.mid {
		k1 := mid * cs.zero
		k2 := 1 - k1/cs.mid
		t := C / (k1 + k2*C)
		s = t * mid
	} else {
		k0 := cs.mid
		k1 := (1 - mid) * cs.mid * cs.mid * midInv * midInv / cs.zero
		k2 := 1 - k1/(cs.max-cs.mid)
		t := (C - k0) / (k1 + k2*(C-k0))
		s = mid + (1-mid)*t
	}
	return Okhsl{Hue: lab.Hue(), Saturation: s, Lightness: l}
}

// FromLinear converts the given linear sRGB components to [Okhsl].
func FromLinear(r, g, b float32) Okhsl {
	return FromOklab(LinearToOklab(r, g, b))
}

// Oklab converts the color to [Oklab].
func (c Okhsl) Oklab() Oklab {
	switch {
	case c.Lightness >= 1:
		return Oklab{L: 1}
	case c.Lightness <= 0:
		return Oklab{}
	}
	hr := math32.DegToRad(c.Hue)
	a := math32.Cos(hr)
	b := math32.Sin(hr)
	L := ToeInv(c.Lightness)
	cs := getChromas(L, a, b)

	s := c.Saturation
	var C float32
	if s < mid {
		t := midInv * s
		k1 := mid * cs.zero
		k2 := 1 - k1/cs.mid
		C = t * k1 / (1 - k2*t)
	} else {
		t := (s - mid) / (1 - mid)
		k0 := cs.mid
		k1 := (1 - mid) * cs.mid * cs.mid * midInv * midInv / cs.zero
		k2 := 1 - k1/(cs.max-cs.mid)
		C = k0 + t*k1/(1-k2*t)
	}
	return Oklab{L: L, A: C * a, B: C * b}
}

// Linear converts the color to linear sRGB components.
func (c Okhsl) Linear() (r, g, b float32) {
	return c.Oklab().Linear()
}
