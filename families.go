package specimen

import (
	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/engine/dom"
	"github.com/npillmayer/specimen/engine/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Texts of the page.
const (
	TitleFontFamilies = "Font Families"
	TitlePrimary      = "Primary — LATO"
	TitleSecondary    = "Secondary — MONTSERRAT"
	TitleFontSizes    = "Font Sizes"
	SizeSampleText    = "Adaptive Financial"

	primaryText = "Lato meaning ‘Summer’ in polish has a clear corporate but modern style that works " +
		"really well in digital products. It is available for free as part of the open-source Open " +
		"Font Licence and can be downloaded directly from Google fonts and used without restriction."
	secondaryText = "Secondary fonts can be used if required to add interest to specific titles or " +
		"summary data. Be sure to select a complimentary style that can work alongside the primary " +
		"font. Montserrat has been chosen for it’s strong bold style at small font sizes. It is also " +
		"available to be used without restriction from Google fonts."
	sizesText = "You should be free to select a font size that seems appropriate for the use however " +
		"try to control the number of similar sized fonts used unless there really is a clear visual " +
		"benefit. Defining a paragraph size is very important and can be used to define the headings " +
		"and sub-heading sizes. Always ensure you are maintaining a clear hierarchy in your screen " +
		"layout by using the correctly weighted and sized fonts."
	noteText = ": You can use the Fibonacci numbers to define the upper and lower font sizes. " +
		"Starting from 8, 13, 21, 34, 55, and then add minor increments inbetween as you see the need."
)

// FontFamilies renders the page as a sequence of four sections: the page
// heading, the primary family, the secondary family and the font size
// scale. props apply to the two family sections, overriding their intent.
//
// Options other than props configure the family samples, e.g. the split
// policy for character lines.
func FontFamilies(props parameters.Props, opts ...Option) []*html.Node {
	tracer().Debugf("rendering font families page with props %v", props.Classes())
	return []*html.Node{
		SectionBlock(parameters.Props{MarginH: 1}, H2(TitleFontFamilies)),
		SectionBlock(parameters.Props{Intent: parameters.IntentInverted}.Merge(props),
			H3(TitlePrimary),
			Paragraph(nil, dom.Text(primaryText)),
			FontFamilySample(Lato(), opts...),
		),
		SectionBlock(parameters.Props{Intent: parameters.IntentSecondary}.Merge(props),
			H3(TitleSecondary),
			Paragraph(nil, dom.Text(secondaryText)),
			FontFamilySample(Montserrat(), opts...),
		),
		fontSizes(),
	}
}

func fontSizes() *html.Node {
	note := Paragraph(style.Declarations{style.Decl("font-style", "italic")},
		dom.Element(atom.Strong, dom.Children(dom.Text("Note"))),
		dom.Text(noteText),
	)
	dom.Class(parameters.Props{MarginV: 3}.Spacing()...)(note)
	grid := dom.Element(atom.Div, dom.Class(ClassFontSizeGrid))
	for _, size := range Sizes() {
		label := Text(nil, dom.Text(size.Caption()))
		dom.Class(ClassSizeLabel, "color-secondary-1")(label)
		sample := Paragraph(style.Declarations{
			style.Decl("font-size", size.FontSize()),
			style.Decl("line-height", size.LineHeightValue()),
		}, dom.Text(SizeSampleText))
		dom.Class(ClassSizeSample)(sample)
		dom.Append(grid, label, sample)
	}
	return SectionBlock(parameters.Props{MarginH: 5},
		H2(TitleFontSizes),
		Paragraph(nil, dom.Text(sizesText)),
		note,
		grid,
	)
}
