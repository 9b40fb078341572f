package specimen

import (
	"strconv"

	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/engine/dom"
	"github.com/npillmayer/specimen/engine/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SectionBlock creates a section of the page, styled by props.
func SectionBlock(props parameters.Props, children ...*html.Node) *html.Node {
	return dom.Element(atom.Section,
		dom.Class(ClassSectionBlock),
		dom.Class(props.Classes()...),
		dom.Children(children...))
}

// H2 creates a second level heading.
func H2(title string) *html.Node {
	return dom.Element(atom.H2, dom.Children(dom.Text(title)))
}

// H3 creates a third level heading.
func H3(title string) *html.Node {
	return dom.Element(atom.H3, dom.Children(dom.Text(title)))
}

// Paragraph creates a paragraph with an inline style. decls may be empty.
func Paragraph(decls style.Declarations, children ...*html.Node) *html.Node {
	opts := []dom.Option{dom.Class(ClassParagraph), dom.Children(children...)}
	if len(decls) > 0 {
		opts = append(opts, dom.Style(decls...))
	}
	return dom.Element(atom.P, opts...)
}

// Text creates a text span with an inline style. decls may be empty.
func Text(decls style.Declarations, children ...*html.Node) *html.Node {
	opts := []dom.Option{dom.Children(children...)}
	if len(decls) > 0 {
		opts = append(opts, dom.Style(decls...))
	}
	return dom.Element(atom.Span, opts...)
}

// LabeledHeading creates a small bold caption, used above the blocks of a
// font family sample ("Glyph", "Characters", "Styles").
func LabeledHeading(label string) *html.Node {
	p := Paragraph(style.Declarations{
		style.Decl("display", "block"),
		style.Decl("font-size", "1rem"),
		style.Decl("line-height", "2"),
	}, dom.Text(label))
	dom.Class(ClassHeading, marginTop(2))(p)
	return p
}

func marginTop(step int) string {
	return "mt-" + strconv.Itoa(step)
}
