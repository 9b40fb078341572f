/*
Package gfx renders type samples to raster images.

Images are drawn with golang.org/x/image/font from a prepared typecase and
may be encoded as PNG, BMP or TIFF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/engine/text"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
)

// tracer traces with key 'specimen.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.gfx")
}

// Sample describes a line of text to be rendered.
type Sample struct {
	Text       string
	Foreground color.Color // default black
	Background color.Color // default transparent
	Padding    int         // in pixels, on every side
}

// MaxSampleGraphemes is the maximum length of a sample text. Images grow
// with the width of the text.
const MaxSampleGraphemes = 64

// CheckSampleText returns an EINVALID error for an empty sample text or
// one longer than MaxSampleGraphemes.
func CheckSampleText(s string) error {
	if s == "" {
		return core.Error(core.EINVALID, "cannot render empty sample")
	}
	// bound the byte length before segmenting
	if len(s) > MaxSampleGraphemes*32 || len(text.Graphemes(s)) > MaxSampleGraphemes {
		return core.Error(core.EINVALID, "sample text longer than %d characters", MaxSampleGraphemes)
	}
	return nil
}

// Render draws a sample with a typecase onto an image just large enough to
// hold the text plus padding.
func Render(tc *font.TypeCase, sample Sample) (*image.RGBA, error) {
	if tc == nil || tc.Face() == nil {
		return nil, core.Error(core.EINVALID, "cannot render sample without a font")
	}
	if err := CheckSampleText(sample.Text); err != nil {
		return nil, err
	}
	fg, bg := sample.Foreground, sample.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.Transparent
	}
	pad := sample.Padding
	if pad < 0 {
		pad = 0
	}
	face := tc.Face()
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	width := xfont.MeasureString(face, sample.Text).Ceil()
	bounds := image.Rect(0, 0, width+2*pad, ascent+descent+2*pad)
	tracer().Debugf("rendering %q into %v", sample.Text, bounds)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(bg), image.Point{}, draw.Src)
	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(pad, pad+ascent),
	}
	d.DrawString(sample.Text)
	return img, nil
}

// Format is an image encoding.
type Format string

// Supported image formats.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat accepts a format name or a file extension, e.g. ".png".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	switch s {
	case "png", "":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return PNG, core.Error(core.EINVALID, "unsupported image format: %s", s)
}

// ContentType returns the MIME type of a format.
func (f Format) ContentType() string {
	switch f {
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	}
	return "image/png"
}

// Encode writes an image in a given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode %s image", format)
	}
	return nil
}
