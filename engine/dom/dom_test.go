package dom

import (
	"bytes"
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/engine/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func sample() *html.Node {
	return Element(atom.Div, Class("sample", "intent-inverted"),
		Children(
			Element(atom.H3, Children(Text("Primary"))),
			Element(atom.P, Attr("data-advised", "false"),
				Style(style.Decl("font-weight", "100")),
				Children(Text("Hairline"), nil, Text(" Light"))),
		))
}

func TestBuildAndRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, sample()))
	assert.Equal(t, `<div class="sample intent-inverted"><h3>Primary</h3>`+
		`<p data-advised="false" style="font-weight: 100">Hairline Light</p></div>`, buf.String())
}

func TestClassesAndStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	p := Element(atom.P, Class("a"), Class(" b  c", ""),
		Style(style.Decl("font-size", "1rem")),
		Style(style.Decl("line-height", "2"), style.Decl("font-size", "0.5rem")))
	assert.True(t, HasClass(p, "b"))
	assert.False(t, HasClass(p, "d"))
	c, _ := AttrValue(p, "class")
	assert.Equal(t, "a b c", c)
	fs, ok := InlineStyle(p).Get("font-size")
	assert.True(t, ok)
	assert.Equal(t, style.Property("0.5rem"), fs)
	s, _ := AttrValue(p, "style")
	assert.Equal(t, "font-size: 0.5rem; line-height: 2", s)
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	root := sample()
	text, err := InnerText(root)
	require.NoError(t, err)
	assert.Equal(t, "PrimaryHairline Light", text.String())
	assert.Equal(t, uint64(len("PrimaryHairline Light")), text.Len())
	_, err = InnerText(nil)
	assert.Error(t, err)
	assert.Equal(t, "", TextContent(Element(atom.Br)))
}

func TestInnerTextLeafs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	text, err := InnerText(sample())
	require.NoError(t, err)
	assert.Equal(t, 3, text.FragmentCount())
	var tags []string
	err = text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		leaf, ok := l.(*Leaf)
		require.True(t, ok)
		tags = append(tags, leaf.Element().Data+":"+leaf.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"h3:Primary", "p:Hairline", "p: Light"}, tags)
}

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.dom")
	defer teardown()
	//
	root := Fragment(sample(), sample())
	nodes, err := Select(root, "div.intent-inverted > p[data-advised=false]")
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
	assert.Len(t, MustSelect(root, "h3"), 2)
	assert.NotNil(t, SelectFirst(root, "p"))
	assert.Nil(t, SelectFirst(root, "p["))
	_, err = Select(root, "p[")
	assert.Error(t, err)
}
