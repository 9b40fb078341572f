package xpathadapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/engine/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func page() *html.Node {
	weights := dom.Element(atom.Div, dom.Class("font-weight-grid"))
	for _, name := range []string{"Hairline", "Light", "Bold"} {
		advised := "true"
		if name == "Hairline" {
			advised = "false"
		}
		dom.Append(weights,
			dom.Element(atom.Span, dom.Attr("data-advised", advised), dom.Children(dom.Text(name))),
			dom.Element(atom.Span, dom.Attr("data-advised", advised), dom.Class("italic"), dom.Children(dom.Text(name))),
		)
	}
	return dom.Fragment(
		dom.Element(atom.H2, dom.Children(dom.Text("Font Families"))),
		dom.Element(atom.Section, dom.Children(
			dom.Element(atom.H3, dom.Children(dom.Text("Primary"))),
			weights,
		)),
	)
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	root := page()
	nodes, err := Query(root, "//span")
	require.NoError(t, err)
	require.Len(t, nodes, 6)
	assert.Equal(t, "Hairline", dom.TextContent(nodes[0]))
	assert.Equal(t, "Bold", dom.TextContent(nodes[5]))
	//
	nodes, err = Query(root, "//span[@data-advised='false']")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
	//
	nodes, err = Query(root, "//section/h3/following-sibling::div")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.True(t, dom.HasClass(nodes[0], "font-weight-grid"))
	//
	_, err = Query(root, "//span[")
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	root := page()
	v, err := Evaluate(root, "count(//span[@class='italic'])")
	require.NoError(t, err)
	assert.Equal(t, float64(3), v)
	v, err = Evaluate(root, "string(//h2)")
	require.NoError(t, err)
	assert.Equal(t, "Font Families", v)
}
