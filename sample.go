package specimen

import (
	"strconv"

	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/engine/dom"
	"github.com/npillmayer/specimen/engine/dom/style"
	"github.com/npillmayer/specimen/engine/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSS classes of the page's building blocks. Their rules are part of
// Stylesheet.
const (
	ClassSectionBlock     = "section-block"
	ClassParagraph        = "paragraph"
	ClassHeading          = "heading"
	ClassFamilySampleGrid = "font-family-sample-grid"
	ClassGlyph            = "glyph"
	ClassCharacterMap     = "character-map"
	ClassCharacterLine    = "character-line"
	ClassFontWeightGrid   = "font-weight-grid"
	ClassFontFace         = "font-face"
	ClassFontWeight       = "font-weight"
	ClassAdvised          = "face-advised"
	ClassNotAdvised       = "face-not-advised"
	ClassFontSizeGrid     = "font-size-grid"
	ClassSizeLabel        = "size-label"
	ClassSizeSample       = "size-sample"
)

// Metrics of character lines, shared by the stylesheet and by measuring
// lines for splitting.
const (
	characterLineFontSize      = "1.125rem"
	characterLineLetterSpacing = "0.125rem"
	characterLineHeight        = "1.875rem"
)

// GlyphSample is the text shown as the big glyph of a family.
const GlyphSample = "Aa"

// FontFamilySample renders the specimen block of a font family: a big
// glyph, the character map and the grid of weights, each face upright
// and italic. Without WithCharacters the default character set is used.
func FontFamilySample(family font.Family, opts ...Option) *html.Node {
	conf := newConfig(opts)
	chars := conf.characters
	if chars == nil {
		chars = Characters()
	}
	tracer().Debugf("rendering sample for family %q with %d faces", family.Name, len(family.Faces))
	return dom.Element(atom.Div,
		dom.Class(ClassFamilySampleGrid),
		dom.Class(conf.props.NestedClasses()...),
		dom.Children(
			glyph(family),
			dom.Element(atom.Div, dom.Children(
				LabeledHeading("Characters"),
				characterMap(chars, conf),
				LabeledHeading("Styles"),
				weightGrid(family),
			)),
		))
}

func glyph(family font.Family) *html.Node {
	sample := Paragraph(style.Declarations{
		style.Decl("font-size", "5rem"),
		style.Decl("line-height", "5"),
		style.Decl("font-weight", "bold"),
		style.Decl("font-family", family.Name),
	}, dom.Text(GlyphSample))
	dom.Class(ClassGlyph)(sample)
	return dom.Element(atom.Div, dom.Children(LabeledHeading("Glyph"), sample))
}

func characterMap(chars CharacterSet, conf *config) *html.Node {
	cmap := Text(style.Declarations{
		style.Decl("display", "block"),
		style.Decl("font-size", "1rem"),
		style.Decl("font-weight", "bold"),
		style.Decl("white-space", "pre-wrap"),
	})
	dom.Class(ClassCharacterMap)(cmap)
	for _, line := range chars {
		if !conf.splitLine(line) {
			dom.Append(cmap, characterLine(line))
			continue
		}
		left, right := text.SplitHalves(line)
		tracer().Debugf("splitting character line %q", line)
		dom.Append(cmap,
			characterLine(left),
			dom.Text(" "),
			characterLine(right),
			dom.Text("\n"),
		)
	}
	return cmap
}

func characterLine(line string) *html.Node {
	return dom.Element(atom.Div,
		dom.Class(ClassCharacterLine),
		dom.Children(dom.Text(text.SpaceOut(line))))
}

func weightGrid(family font.Family) *html.Node {
	grid := Text(style.Declarations{
		style.Decl("font-size", "1rem"),
		style.Decl("line-height", "2"),
		style.Decl("font-family", family.Name),
	})
	dom.Class(ClassFontWeightGrid)(grid)
	for _, face := range family.Faces {
		dom.Append(grid, dom.Element(atom.Div,
			dom.Class(ClassFontFace),
			dom.Style(style.Decl("width", "min-content")),
			dom.Children(
				fontWeight(face, font.Upright),
				fontWeight(face, font.Italic),
			)))
	}
	return grid
}

func fontWeight(face font.Face, slant font.Style) *html.Node {
	decls := style.Declarations{style.Decl("font-weight", face.Weight.String())}
	if slant == font.Italic {
		decls = decls.Set("font-style", style.Property(slant.String()))
	}
	advised := ClassAdvised
	if !face.Advised {
		advised = ClassNotAdvised
	}
	span := Text(decls, dom.Text(face.Name))
	dom.Class(ClassFontWeight, advised)(span)
	dom.SetAttr(span, "data-advised", strconv.FormatBool(face.Advised))
	return span
}

// --- Configuration ---------------------------------------------------------

// Option configures rendering.
type Option func(*config)

type config struct {
	regs        *parameters.Registers
	measurer    text.Measurer
	characters  CharacterSet
	props       parameters.Props
	splitPolicy *int
	columnWidth dimen.Dimen
}

func newConfig(opts []Option) *config {
	conf := &config{
		regs:     parameters.NewRegisters(),
		measurer: text.EstimateMeasurer{},
	}
	for _, opt := range opts {
		opt(conf)
	}
	return conf
}

// WithCharacters replaces the default character set of a sample.
func WithCharacters(cs CharacterSet) Option {
	return func(conf *config) {
		conf.characters = cs.Clone()
	}
}

// WithProps sets presentational props of a sample.
func WithProps(props parameters.Props) Option {
	return func(conf *config) {
		conf.props = props
	}
}

// WithRegisters sets the render parameters. Split policy and column width
// are read from them unless given explicitly.
func WithRegisters(regs *parameters.Registers) Option {
	return func(conf *config) {
		if regs != nil {
			conf.regs = regs
		}
	}
}

// WithSplitPolicy selects how character lines are broken, either
// parameters.SplitNever (the default) or parameters.SplitByWidth.
func WithSplitPolicy(policy int) Option {
	return func(conf *config) {
		conf.splitPolicy = &policy
	}
}

// WithColumnWidth sets the width available for character lines.
func WithColumnWidth(w dimen.Dimen) Option {
	return func(conf *config) {
		conf.columnWidth = w
	}
}

// WithMeasurer sets how character lines are measured for splitting.
func WithMeasurer(m text.Measurer) Option {
	return func(conf *config) {
		if m != nil {
			conf.measurer = m
		}
	}
}

func (conf *config) policy() int {
	if conf.splitPolicy != nil {
		return *conf.splitPolicy
	}
	return conf.regs.N(parameters.P_SPLITPOLICY)
}

func (conf *config) column() dimen.Dimen {
	if conf.columnWidth > 0 {
		return conf.columnWidth
	}
	return conf.regs.D(parameters.P_COLUMNWIDTH)
}

// splitLine decides if a character line is rendered as two halves.
func (conf *config) splitLine(line string) bool {
	if conf.policy() != parameters.SplitByWidth {
		return false
	}
	root := conf.regs.D(parameters.P_ROOTFONTSIZE)
	size, err := style.Property(characterLineFontSize).Dimen(root, 0)
	if err != nil {
		tracer().Errorf("cannot measure character lines: %v", err)
		return false
	}
	spacing, _ := style.Property(characterLineLetterSpacing).Dimen(root, 0)
	return text.NeedsSplit(conf.measurer, line, size, spacing, conf.column())
}
