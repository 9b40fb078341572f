/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "family" is a family of fonts, as presented to CSS. An example is
"Lato". A family lists the faces which a design system offers for it.

* A "face" is a variant of a family with a certain weight. Every face of a
family is shown upright and italic on a specimen page. Faces which are
listed for completeness only are flagged as not advised.

* A "scalable font" is a font file, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Lato Bold Italic".

* A "typecase" is a scaled font, i.e. a font in a certain size. The name
is reminiscend on the wooden boxes of typesetters in the aera of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core/dimen"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'specimen.font'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.font")
}

// --- Weights and styles ----------------------------------------------------

// Weight is a CSS font weight, 100…900 in steps of 100.
type Weight int

// Weights with their common names.
const (
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Normal     Weight = 400
	Medium     Weight = 500
	SemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

// Valid returns true for the nine CSS numeric weights.
func (w Weight) Valid() bool {
	return w >= Thin && w <= Black && w%100 == 0
}

func (w Weight) String() string {
	return strconv.Itoa(int(w))
}

// XWeight converts w to the x/image notion of a weight, which is centered
// at 400 = WeightNormal.
func (w Weight) XWeight() xfont.Weight {
	if w < Thin {
		w = Thin
	} else if w > Black {
		w = Black
	}
	return xfont.Weight(int(w)/100 - 4)
}

// WeightOf converts an x/image weight to a CSS weight.
func WeightOf(xw xfont.Weight) Weight {
	return Weight((int(xw) + 4) * 100)
}

// Style is the slant of a font: upright or italic.
type Style int

// Font styles
const (
	Upright Style = iota
	Italic
)

func (s Style) String() string {
	if s == Italic {
		return "italic"
	}
	return "normal"
}

// XStyle converts s to the x/image notion of a style.
func (s Style) XStyle() xfont.Style {
	if s == Italic {
		return xfont.StyleItalic
	}
	return xfont.StyleNormal
}

// --- Faces and families ----------------------------------------------------

// Face is an entry in the list of faces of a family.
// Faces with Advised = false are listed for completeness, but are not
// recommended for use.
type Face struct {
	Weight  Weight `json:"fontWeight" yaml:"fontWeight"`
	Advised bool   `json:"advised" yaml:"advised"`
	Name    string `json:"name" yaml:"name"`
}

// Family is a font family name (a CSS family identifier) together with the
// ordered list of its faces, lightest to heaviest.
type Family struct {
	Name  string `json:"fontFamily" yaml:"fontFamily"`
	Faces []Face `json:"fontFaces" yaml:"fontFaces"`
}

// Clone returns a deep copy of a family.
func (fam Family) Clone() Family {
	c := Family{Name: fam.Name, Faces: make([]Face, len(fam.Faces))}
	copy(c.Faces, fam.Faces)
	return c
}

// Weights returns the distinct weights of a family's faces in ascending order.
func (fam Family) Weights() []Weight {
	seen := make(map[Weight]bool, len(fam.Faces))
	weights := make([]Weight, 0, len(fam.Faces))
	for _, face := range fam.Faces {
		if !seen[face.Weight] {
			seen[face.Weight] = true
			weights = append(weights, face.Weight)
		}
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
	return weights
}

// DisplayName returns the family name with an initial capital letter
// ("lato" => "Lato"), as font services expect it.
func (fam Family) DisplayName() string {
	words := strings.Fields(fam.Name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Descriptor describes a font which is available from some source, e.g.
// the system's font directory or a font service. Variants are named
// the way Google Fonts names them ("regular", "italic", "700", "700italic").
type Descriptor struct {
	Family   string
	Path     string
	Variants []string
}

// VariantName returns the Google Fonts variant key for a weight and style.
func VariantName(w Weight, s Style) string {
	if w == Normal {
		if s == Italic {
			return "italic"
		}
		return "regular"
	}
	if s == Italic {
		return w.String() + "italic"
	}
	return w.String()
}

// --- Scalable fonts and typecases ------------------------------------------

// ScalableFont is a font loaded from a font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scalable font prepared for a size in CSS pixels.
type TypeCase struct {
	scalableFontParent *ScalableFont
	font               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// NullTypeCase returns a typecase without a font.
func NullTypeCase() *TypeCase {
	return &TypeCase{
		font: nil,
		size: 16,
	}
}

// LoadOpenTypeFont loads a TrueType or OpenType font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err == nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont parses the binary of a TrueType or OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// HasGlyph returns true if the font maps code-point r to a glyph
// other than .notdef.
func (sf *ScalableFont) HasGlyph(r rune) bool {
	if sf == nil || sf.SFNT == nil {
		return false
	}
	var buf sfnt.Buffer
	gid, err := sf.SFNT.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// UnitsPerEm returns the design units of a font.
func (sf *ScalableFont) UnitsPerEm() int {
	if sf == nil || sf.SFNT == nil {
		return 1000
	}
	return int(sf.SFNT.UnitsPerEm())
}

// PrepareCase creates a typecase for a size in CSS pixels. Sizes are
// expected to be between 5px and 500px; other values are set to 16px.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Errorf("font size must be 5px < size < 500px, is %g (set to 16px)", fontsize)
		fontsize = 16.0
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     72, // 1pt = 1px
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.font = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the font a typecase has been prepared from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PxSize returns the size of a typecase in CSS pixels.
func (tc *TypeCase) PxSize() float64 {
	return tc.size
}

// Face returns the x/image face of a typecase, or nil for a null typecase.
func (tc *TypeCase) Face() xfont.Face {
	return tc.font
}

// Measure returns the advance width of a string set in this typecase.
func (tc *TypeCase) Measure(s string) dimen.Dimen {
	if tc == nil || tc.font == nil {
		return 0
	}
	adv := xfont.MeasureString(tc.font, s)
	return dimen.Dimen(int64(adv) * int64(dimen.PX) / 64)
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
