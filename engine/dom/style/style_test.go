package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.css")
	defer teardown()
	//
	decls, err := ParseDeclarations("font-size: 3.4375rem; line-height: 3.5")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	fs, ok := decls.Get("font-size")
	assert.True(t, ok)
	assert.Equal(t, Property("3.4375rem"), fs)
	decls = decls.Set("line-height", "1")
	assert.Equal(t, "font-size: 3.4375rem; line-height: 1", decls.String())
	_, ok = decls.Get("color")
	assert.False(t, ok)
}

func TestPropertyDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.css")
	defer teardown()
	//
	d, err := Property("1.125rem").Dimen(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 18*dimen.PX, d)
	d, err = Property("90%").Dimen(0, 480*dimen.PX)
	require.NoError(t, err)
	assert.Equal(t, 432*dimen.PX, d)
	_, err = Property("auto").Dimen(0, 0)
	assert.Error(t, err)
}

func TestColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, Property("red").Color())
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0xff}, Property("#123").Color())
	assert.Equal(t, color.RGBA{0x1b, 0x2a, 0x3c, 0xff}, Property(" #1B2A3C").Color())
	assert.Equal(t, color.Black, Property("chartreuse-ish").Color())
}
