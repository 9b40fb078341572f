// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in scaled CSS pixels, i.e. 1/65536 px. On screen a CSS pixel
// is what PDF calls a big point.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = PX / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // CSS pixels
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// RootFontSize is the browser default for the font size of the root element,
// which is the reference for `rem` units.
const RootFontSize Dimen = 16 * PX

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Px creates a dimension of n CSS pixels.
func Px(n int) Dimen {
	return Dimen(n) * PX
}

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Pixels returns a dimension in CSS pixels.
func (d Dimen) Pixels() float64 {
	return float64(d) / float64(PX)
}

// Rem returns d relative to a root font size. With root = 16px, 55px will be
// 3.4375 and 8px will be 0.5. A zero root is replaced by RootFontSize.
func (d Dimen) Rem(root Dimen) float64 {
	if root == 0 {
		root = RootFontSize
	}
	return float64(d) / float64(root)
}

// FormatRem formats a relative size as a CSS value, e.g. "3.4375rem".
// The shortest representation is used, without trailing zeros.
func FormatRem(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + "rem"
}

// FormatPx formats a dimension as a CSS pixel value, e.g. "480px".
func (d Dimen) FormatPx() string {
	return strconv.FormatFloat(d.Pixels(), 'f', -1, 64) + "px"
}

// ---------------------------------------------------------------------------

// Unit tells how a parsed dimension has to be interpreted.
type Unit int

// Units of parsed dimensions.
const (
	Absolute Unit = iota // value is a fixed dimension
	Percent              // value is a percentage, unscaled
	Relative             // value is a multiple of the root font size, scaled by PX
)

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|rem|[a-z]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// Valid dimensions are
//
//     15px
//     80%
//     1.125rem
//
// Percentages are returned unscaled (`80%` => 80) with unit Percent.
// `rem` values are returned as multiples of PX with unit Relative and have to be
// resolved against a root font size, see Resolve.
func ParseDimen(s string) (Dimen, Unit, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, Absolute, errors.New("format error parsing dimension")
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, Absolute, errors.New("format error parsing dimension")
	}
	scale, unit := SP, Absolute
	switch d[2] {
	case "pt":
		scale = PT
	case "mm":
		scale = MM
	case "bp", "px":
		scale = PX
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "sp", "":
		scale = SP
	case "%":
		scale, unit = 1, Percent
	case "rem":
		scale, unit = PX, Relative
	default:
		return 0, Absolute, errors.New("format error parsing dimension")
	}
	return Dimen(math.Round(n * float64(scale))), unit, nil
}

// Resolve converts a parsed dimension to an absolute one. Relative values
// are multiplied with root (RootFontSize if zero), percentages are taken of base.
func Resolve(d Dimen, unit Unit, root Dimen, base Dimen) Dimen {
	switch unit {
	case Relative:
		if root == 0 {
			root = RootFontSize
		}
		return Dimen(math.Round(float64(d) / float64(PX) * float64(root)))
	case Percent:
		return Dimen(math.Round(float64(base) * float64(d) / 100))
	}
	return d
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
