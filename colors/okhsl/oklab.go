// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package okhsl provides the Oklab and Okhsl perceptual color spaces,
// converting to and from linear sRGB.
package okhsl

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Oklab is a color in the Oklab perceptual color space.
type Oklab struct {

	// L is the perceived lightness, 0-1
	L float32

	// A is the green-red axis
	A float32

	// B is the blue-yellow axis
	B float32
}

// Chroma returns the distance of the color from the neutral axis.
func (lab Oklab) Chroma() float32 {
	return math32.Sqrt(lab.A*lab.A + lab.B*lab.B)
}

// Hue returns the hue angle of the color in degrees (0-360).
// Neutral colors have a hue of 0.
func (lab Oklab) Hue() float32 {
	h := math32.RadToDeg(math32.Atan2(lab.B, lab.A))
	if h < 0 {
		h += 360
	}
	return h
}

func (lab Oklab) String() string {
	return fmt.Sprintf("oklab(%g, %g, %g)", lab.L, lab.A, lab.B)
}

// LinearToOklab converts the given linear sRGB components to Oklab.
func LinearToOklab(r, g, b float32) Oklab {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l = math32.Cbrt(l)
	m = math32.Cbrt(m)
	s = math32.Cbrt(s)

	return Oklab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// Linear converts the color to linear sRGB components.
// The result is not clamped, so colors outside of the
// sRGB gamut have components outside of 0-1.
func (lab Oklab) Linear() (r, g, b float32) {
	l := lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B
	m := lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B
	s := lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

// gamut weights of the linear sRGB channels, in r, g, b order
var (
	redW   = [3]float32{4.0767416621, -3.3077115913, 0.2309699292}
	greenW = [3]float32{-1.2684380046, 2.6097574011, -0.3413193965}
	blueW  = [3]float32{-0.0041960863, -0.7034186147, 1.7076147010}
)

// lmsCoefficients returns how the cube roots of the lms
// cone responses change along the normalized hue direction (a, b).
func lmsCoefficients(a, b float32) (kl, km, ks float32) {
	kl = 0.3963377774*a + 0.2158037573*b
	km = -0.1055613458*a - 0.0638541728*b
	ks = -0.0894841775*a - 1.2914855480*b
	return
}

// MaxSaturation returns the maximum saturation (chroma / lightness)
// possible for the given normalized hue direction (a, b), such
// that a*a + b*b == 1, within the sRGB gamut.
func MaxSaturation(a, b float32) float32 {
	// polynomial approximation per limiting channel,
	// refined with one step of Halley's method
	var k0, k1, k2, k3, k4 float32
	var w [3]float32
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		w = redW
	case 1.81444104*a-1.19445276*b > 1:
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		w = greenW
	default:
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		w = blueW
	}

	S := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl, km, ks := lmsCoefficients(a, b)

	l_ := 1 + S*kl
	m_ := 1 + S*km
	s_ := 1 + S*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ldS := 3 * kl * l_ * l_
	mdS := 3 * km * m_ * m_
	sdS := 3 * ks * s_ * s_

	ldS2 := 6 * kl * kl * l_
	mdS2 := 6 * km * km * m_
	sdS2 := 6 * ks * ks * s_

	f := w[0]*l + w[1]*m + w[2]*s
	f1 := w[0]*ldS + w[1]*mdS + w[2]*sdS
	f2 := w[0]*ldS2 + w[1]*mdS2 + w[2]*sdS2

	return S - f*f1/(f1*f1-0.5*f*f2)
}

// Cusp is the point of maximum chroma for a hue within the sRGB gamut.
type Cusp struct {
	L, C float32
}

// FindCusp returns the [Cusp] for the given normalized hue direction (a, b).
func FindCusp(a, b float32) Cusp {
	sCusp := MaxSaturation(a, b)
	r, g, bl := Oklab{1, sCusp * a, sCusp * b}.Linear()
	lCusp := math32.Cbrt(1 / max(r, g, bl))
	return Cusp{L: lCusp, C: lCusp * sCusp}
}

// GamutIntersection returns the fraction t along the line from (L0, 0)
// to (L1, C1) in the plane of the normalized hue direction (a, b) at
// which the line leaves the sRGB gamut.
func GamutIntersection(a, b, L1, C1, L0 float32, cusp Cusp) float32 {
	if (L1-L0)*cusp.C-(cusp.L-L0)*C1 <= 0 {
		// lower half of the triangle
		return cusp.C * L0 / (C1*cusp.L + cusp.C*(L0-L1))
	}

	// upper half: the triangle approximation is refined
	// with one step of Halley's method per channel
	t := cusp.C * (L0 - 1) / (C1*(cusp.L-1) + cusp.C*(L0-L1))

	dL := L1 - L0
	dC := C1
	kl, km, ks := lmsCoefficients(a, b)

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := L0*(1-t) + t*L1
	C := t * C1

	l_ := L + C*kl
	m_ := L + C*km
	s_ := L + C*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ld := 3 * ldt * l_ * l_
	md := 3 * mdt * m_ * m_
	sd := 3 * sdt * s_ * s_

	ld2 := 6 * ldt * ldt * l_
	md2 := 6 * mdt * mdt * m_
	sd2 := 6 * sdt * sdt * s_

	step := func(w [3]float32) float32 {
		v := w[0]*l + w[1]*m + w[2]*s - 1
		v1 := w[0]*ld + w[1]*md + w[2]*sd
		v2 := w[0]*ld2 + w[1]*md2 + w[2]*sd2
		u := v1 / (v1*v1 - 0.5*v*v2)
		if u < 0 {
			return math32.MaxFloat32
		}
		return -v * u
	}
	return t + min(step(redW), step(greenW), step(blueW))
}
