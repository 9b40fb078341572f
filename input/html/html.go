/*
Package html reads HTML documents, e.g. pages written by a previous
render, so they can be queried like freshly built ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"golang.org/x/net/html"
)

// tracer traces with key 'specimen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.dom")
}

// Read parses an HTML document.
func Read(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("unable to parse HTML: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "unable to parse HTML")
	}
	return doc, nil
}

// ReadFile parses an HTML document from a file.
func ReadFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open HTML file %s", path)
	}
	defer f.Close()
	tracer().Debugf("reading HTML document %s", path)
	return Read(f)
}
