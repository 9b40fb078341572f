/*
Package page assembles a complete HTML document around the font families
page.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"bufio"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/locate/resources"
	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/engine/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
)

// tracer traces with key 'specimen.page'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.page")
}

// DefaultTitle is the document title if none is configured.
const DefaultTitle = "Styleguide · " + specimen.TitleFontFamilies

// Config describes a page document. The zero value produces a standalone
// document with an embedded stylesheet and no external resources.
type Config struct {
	Title     string
	Lang      language.Tag      // default English
	Props     parameters.Props  // props for the family sections
	Options   []specimen.Option // options for the family samples
	StyleHref string            // link the stylesheet at this URL instead of embedding it
	WebFonts  bool              // load the families from the Google Fonts service
	Families  []font.Family     // families to load as web fonts; default all
}

// Document builds the HTML document node for a page.
func Document(conf Config) *html.Node {
	title := conf.Title
	if title == "" {
		title = DefaultTitle
	}
	lang := conf.Lang
	if lang == language.Und {
		lang = language.English
	}
	head := dom.Element(atom.Head,
		dom.Children(
			dom.Element(atom.Meta, dom.Attr("charset", "utf-8")),
			dom.Element(atom.Meta, dom.Attr("name", "viewport"),
				dom.Attr("content", "width=device-width, initial-scale=1")),
			dom.Element(atom.Title, dom.Children(dom.Text(title))),
		))
	if conf.WebFonts {
		families := conf.Families
		if len(families) == 0 {
			families = specimen.Families()
		}
		dom.Append(head,
			dom.Element(atom.Link, dom.Attr("rel", "preconnect"),
				dom.Attr("href", "https://fonts.gstatic.com"), dom.Attr("crossorigin", "")),
			dom.Element(atom.Link, dom.Attr("rel", "stylesheet"),
				dom.Attr("href", resources.StylesheetURL(families...))),
		)
	}
	if conf.StyleHref != "" {
		dom.Append(head, dom.Element(atom.Link, dom.Attr("rel", "stylesheet"),
			dom.Attr("href", conf.StyleHref)))
	} else {
		dom.Append(head, dom.Element(atom.Style,
			dom.Children(dom.Text("\n"+specimen.Stylesheet().String()+"\n"))))
	}
	body := dom.Element(atom.Body, dom.Children(specimen.FontFamilies(conf.Props, conf.Options...)...))
	root := dom.Element(atom.Html, dom.Attr("lang", lang.String()), dom.Children(head, body))
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

// Write renders a page document to w.
func Write(w io.Writer, conf Config) error {
	tracer().Debugf("writing page document")
	bw := bufio.NewWriter(w)
	if err := html.Render(bw, Document(conf)); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render page")
	}
	if err := bw.Flush(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write page")
	}
	return nil
}
