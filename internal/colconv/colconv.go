// seehuhn.de/go/prepress - colour and separation analysis of PDF page content
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package colconv converts device colours to CIE L*a*b* and measures
// perceptual colour differences.
//
// Device colours are interpreted as sRGB: CMYK values are first mapped to RGB
// using the naive (1-c)(1-k) formula, linearised with the sRGB transfer curve,
// converted to XYZ and normalised by the D65 white point.
package colconv

import "math"

// WhitePointD65 is the CIE XYZ tristimulus value of the D65 white point.
var WhitePointD65 = [3]float64{0.95047, 1.0, 1.08883}

// labEpsilon is the CIE threshold (216/24389) below which the L*a*b* transfer
// function is linear.
const labEpsilon = 0.008856

// Lab is a colour in the CIE L*a*b* colour space.
type Lab struct {
	L, A, B float64
}

// DeviceGrayToLab converts a DeviceGray value (0-1 range) to L*a*b*.
func DeviceGrayToLab(gray float64) Lab {
	return DeviceRGBToLab(gray, gray, gray)
}

// DeviceRGBToLab converts RGB values (0-1 range) to L*a*b*.
func DeviceRGBToLab(r, g, b float64) Lab {
	r = linearize(clamp(r, 0, 1))
	g = linearize(clamp(g, 0, 1))
	b = linearize(clamp(b, 0, 1))

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / WhitePointD65[0])
	fy := labF(y / WhitePointD65[1])
	fz := labF(z / WhitePointD65[2])

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// DeviceCMYKToLab converts CMYK values (0-1 range) to L*a*b*.
func DeviceCMYKToLab(c, m, y, k float64) Lab {
	r, g, b := CMYKToRGB(c, m, y, k)
	return DeviceRGBToLab(r, g, b)
}

// CMYKToRGB converts CMYK to RGB using the naive device formula.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	c = clamp(c, 0, 1)
	m = clamp(m, 0, 1)
	y = clamp(y, 0, 1)
	k = clamp(k, 0, 1)
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}

// RGBToCMYK converts RGB to CMYK with full black generation.
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	r = clamp(r, 0, 1)
	g = clamp(g, 0, 1)
	b = clamp(b, 0, 1)

	k = 1 - math.Max(math.Max(r, g), b)
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return c, m, y, k
}

// LabToDeviceRGB converts L*a*b* values to sRGB (0-1 range).
// Out-of-gamut values are clipped.
func LabToDeviceRGB(L, A, B float64) (r, g, b float64) {
	fy := (L + 16) / 116
	fx := A/500 + fy
	fz := fy - B/200

	x := labFInv(fx) * WhitePointD65[0]
	y := labFInv(fy) * WhitePointD65[1]
	z := labFInv(fz) * WhitePointD65[2]

	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z

	r = delinearize(clamp(r, 0, 1))
	g = delinearize(clamp(g, 0, 1))
	b = delinearize(clamp(b, 0, 1))
	return r, g, b
}

// DeltaE returns the CIE76 colour difference between two L*a*b* colours.
func DeltaE(p, q Lab) float64 {
	dL := p.L - q.L
	dA := p.A - q.A
	dB := p.B - q.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// DeltaECMYK returns the CIE76 colour difference between two CMYK colours.
func DeltaECMYK(p, q [4]float64) float64 {
	return DeltaE(
		DeviceCMYKToLab(p[0], p[1], p[2], p[3]),
		DeviceCMYKToLab(q[0], q[1], q[2], q[3]),
	)
}

func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
