/*
Package harfbuzz uses HarfBuzz to measure text set in a font.

We use the Go port of HarfBuzz from github.com/benoitkugler/textlayout, so
no CGo is involved. Shaping respects kerning and ligatures, which makes
measurements more exact than summing up glyph advances.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/engine/text"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// tracer traces with key 'specimen.text'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.text")
}

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// Direction4HB translates a direction to a HarfBuzz direction.
func Direction4HB(d bidi.Direction) hb.Direction {
	if d == bidi.RightToLeft {
		return hb.RightToLeft
	}
	return hb.LeftToRight
}

// --- Shaper ----------------------------------------------------------------

// Shaper shapes text with a single font. It implements text.Measurer and is
// safe for concurrent use.
type Shaper struct {
	Direction bidi.Direction
	Language  language.Tag
	sfont     *font.ScalableFont
	once      sync.Once
	hbfont    *hb.Font
	err       error
	mx        sync.Mutex // HarfBuzz fonts cache shaping plans
}

// NewShaper creates a shaper for a font. Defaults are English, left-to-right.
func NewShaper(f *font.ScalableFont) *Shaper {
	return &Shaper{
		Direction: bidi.LeftToRight,
		Language:  language.English,
		sfont:     f,
	}
}

func (sh *Shaper) font() (*hb.Font, error) {
	sh.once.Do(func() {
		if sh.sfont == nil || len(sh.sfont.Binary) == 0 {
			sh.err = core.Error(core.EINVALID, "no font binary to shape with")
			return
		}
		face, err := hbtt.Parse(bytes.NewReader(sh.sfont.Binary), true)
		if err != nil {
			sh.err = core.WrapError(err, core.EINVALID, "HarfBuzz cannot parse font %s", sh.sfont.Fontname)
			return
		}
		sh.hbfont = hb.NewFont(face)
	})
	return sh.hbfont, sh.err
}

// Advances shapes a string and returns the horizontal advance of every
// resulting glyph, in font design units.
func (sh *Shaper) Advances(s string) ([]int32, error) {
	hbfont, err := sh.font()
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, nil
	}
	sh.mx.Lock()
	defer sh.mx.Unlock()
	buf := hb.NewBuffer()
	buf.Props = hb.SegmentProperties{
		Direction: Direction4HB(sh.Direction),
		Language:  Lang4HB(sh.Language),
	}
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(hbfont, nil)
	adv := make([]int32, len(buf.Pos))
	for i := range buf.Pos {
		adv[i] = int32(buf.Pos[i].XAdvance)
	}
	tracer().Debugf("HarfBuzz shaped %d runes into %d glyphs", len(runes), len(adv))
	return adv, nil
}

// Measure is part of interface text.Measurer. If shaping fails, the width is
// estimated.
func (sh *Shaper) Measure(s string, size dimen.Dimen) dimen.Dimen {
	adv, err := sh.Advances(s)
	if err != nil {
		tracer().Errorf("shaping failed: %v", err)
		return text.EstimateMeasurer{}.Measure(s, size)
	}
	var du int64
	for _, a := range adv {
		du += int64(a)
	}
	upem := float64(sh.sfont.UnitsPerEm())
	return dimen.Dimen(math.Round(float64(du) / upem * float64(size)))
}

var _ text.Measurer = &Shaper{}
