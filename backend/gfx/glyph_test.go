package gfx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestRenderSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.gfx")
	defer teardown()
	//
	tc, err := font.FallbackFont().PrepareCase(48)
	require.NoError(t, err)
	img, err := Render(tc, Sample{Text: "Aa", Background: color.White, Padding: 4})
	require.NoError(t, err)
	b := img.Bounds()
	assert.Greater(t, b.Dx(), 48)
	assert.Greater(t, b.Dy(), 48)
	// padding stays background
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	inked := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.R < 128 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 100, "glyphs should leave ink")
	//
	wider, err := Render(tc, Sample{Text: "AaAa"})
	require.NoError(t, err)
	assert.Greater(t, wider.Bounds().Dx(), b.Dx()-8)
}

func TestRenderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.gfx")
	defer teardown()
	//
	_, err := Render(font.NullTypeCase(), Sample{Text: "Aa"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	tc, _ := font.FallbackFont().PrepareCase(12)
	_, err = Render(tc, Sample{})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Render(tc, Sample{Text: strings.Repeat("W", MaxSampleGraphemes+1)})
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestCheckSampleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.gfx")
	defer teardown()
	//
	assert.NoError(t, CheckSampleText(strings.Repeat("W", MaxSampleGraphemes)))
	// combining marks belong to their base character
	assert.NoError(t, CheckSampleText(strings.Repeat("e\u0301\u0327", MaxSampleGraphemes)))
	assert.Error(t, CheckSampleText(strings.Repeat("W", MaxSampleGraphemes+1)))
	assert.Error(t, CheckSampleText(strings.Repeat("W", 20000)))
	assert.Error(t, CheckSampleText(""))
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, PNG))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	buf.Reset()
	require.NoError(t, Encode(&buf, img, BMP))
	decoded, err = bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(".TIF")
	assert.NoError(t, err)
	assert.Equal(t, TIFF, f)
	assert.Equal(t, "image/tiff", f.ContentType())
	f, _ = ParseFormat("")
	assert.Equal(t, PNG, f)
	_, err = ParseFormat("gif")
	assert.Error(t, err)
}
