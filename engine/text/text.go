/*
Package text prepares lines of sample characters for display.

Lines are segmented into grapheme clusters (github.com/npillmayer/uax), so
that accented letters stay intact when characters are spaced out or when a
line is split into halves. Measuring is done through a Measurer, either
estimated from East Asian width classes (UAX #11) or taken from a font.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'specimen.text'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.text")
}

var setupGraphemes sync.Once

// Graphemes splits a string into grapheme clusters. The input is normalized
// to NFC first.
func Graphemes(s string) []string {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(norm.NFC.String(s))
	l := gstr.Len()
	g := make([]string, 0, l)
	for i := 0; i < l; i++ {
		g = append(g, gstr.Nth(i))
	}
	return g
}

// SpaceOut separates the graphemes of a line by single spaces, e.g.
// "AĆ1" => "A Ć 1".
func SpaceOut(line string) string {
	return strings.Join(Graphemes(line), " ")
}

// SplitHalves splits a line at its grapheme midpoint. For an odd number of
// graphemes the first half is the shorter one. Concatenating both halves
// yields the NFC form of line.
func SplitHalves(line string) (string, string) {
	g := Graphemes(line)
	mid := len(g) / 2
	return strings.Join(g[:mid], ""), strings.Join(g[mid:], "")
}

// --- Measuring -------------------------------------------------------------

// Measurer measures the advance width of a string set at a font size.
type Measurer interface {
	Measure(s string, size dimen.Dimen) dimen.Dimen
}

// EstimateMeasurer estimates widths from UAX #11 width classes: a narrow
// grapheme takes half of the font size, a wide one the full font size.
type EstimateMeasurer struct {
	Context *uax11.Context // defaults to uax11.LatinContext
}

// Measure is part of interface Measurer.
func (em EstimateMeasurer) Measure(s string, size dimen.Dimen) dimen.Dimen {
	ctx := em.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	var w dimen.Dimen
	for _, g := range Graphemes(s) {
		w += dimen.Dimen(uax11.Width([]byte(g), ctx)) * size / 2
	}
	return w
}

// FontMeasurer measures with the metrics of a font.
type FontMeasurer struct {
	Font *font.ScalableFont
}

// Measure is part of interface Measurer. Without a font, FontMeasurer
// falls back to estimating.
func (fm FontMeasurer) Measure(s string, size dimen.Dimen) dimen.Dimen {
	if fm.Font == nil {
		return EstimateMeasurer{}.Measure(s, size)
	}
	tc, err := fm.Font.PrepareCase(size.Pixels())
	if err != nil {
		tracer().Errorf("cannot prepare typecase for %s: %v", fm.Font.Fontname, err)
		return EstimateMeasurer{}.Measure(s, size)
	}
	return tc.Measure(s)
}

var _ Measurer = EstimateMeasurer{}
var _ Measurer = FontMeasurer{}

// LineWidth returns the width of a spaced-out line, including letter spacing
// after every grapheme.
func LineWidth(m Measurer, line string, size, letterSpacing dimen.Dimen) dimen.Dimen {
	spaced := SpaceOut(line)
	n := len(Graphemes(spaced))
	return m.Measure(spaced, size) + dimen.Dimen(n)*letterSpacing
}

// NeedsSplit returns true if a spaced-out line is wider than a column.
func NeedsSplit(m Measurer, line string, size, letterSpacing, column dimen.Dimen) bool {
	if column <= 0 {
		return false
	}
	w := LineWidth(m, line, size, letterSpacing)
	tracer().Debugf("line %q measures %.1fpx, column is %.1fpx", line, w.Pixels(), column.Pixels())
	return w > column
}
