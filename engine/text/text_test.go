package text

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/font"
	"github.com/stretchr/testify/assert"
)

func TestGraphemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.text")
	defer teardown()
	//
	assert.Equal(t, []string{"A", "Ć", "1"}, Graphemes("AĆ1"))
	// decomposed C + combining acute is normalized to a single code-point
	assert.Equal(t, []string{"\u0106", "D"}, Graphemes("C\u0301D"))
	assert.Empty(t, Graphemes(""))
}

func TestSpaceOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.text")
	defer teardown()
	//
	assert.Equal(t, "1 2 3", SpaceOut("123"))
	assert.Equal(t, "š t", SpaceOut("št"))
	assert.Equal(t, "", SpaceOut(""))
}

func TestSplitHalves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.text")
	defer teardown()
	//
	l, r := SplitHalves("1234567890")
	assert.Equal(t, "12345", l)
	assert.Equal(t, "67890", r)
	l, r = SplitHalves("ABCĆD")
	assert.Equal(t, "AB", l)
	assert.Equal(t, "CĆD", r)
	l, r = SplitHalves("")
	assert.Equal(t, "", l+r)
}

func TestMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.text")
	defer teardown()
	//
	size := 18 * dimen.PX
	est := EstimateMeasurer{}
	assert.Equal(t, 9*dimen.PX, est.Measure("A", size))
	assert.Equal(t, 18*dimen.PX, est.Measure("世", size))
	w := LineWidth(est, "12", size, 2*dimen.PX)
	assert.Equal(t, (3*9+3*2)*dimen.PX, w) // "1 2"
	assert.True(t, NeedsSplit(est, "1234567890", size, 2*dimen.PX, 100*dimen.PX))
	assert.False(t, NeedsSplit(est, "1234567890", size, 2*dimen.PX, 480*dimen.PX))
	assert.False(t, NeedsSplit(est, "1234567890", size, 2*dimen.PX, 0))
	//
	fm := FontMeasurer{Font: font.FallbackFont()}
	wa, wi := fm.Measure("WWW", size), fm.Measure("iii", size)
	assert.Greater(t, int(wa), int(wi))
	assert.Equal(t, est.Measure("AB", size), FontMeasurer{}.Measure("AB", size))
}
