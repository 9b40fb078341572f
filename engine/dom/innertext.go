package dom

import (
	"github.com/npillmayer/cords"
	"golang.org/x/net/html"
)

// InnerText creates a text cord for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// The fragment organization of the resulting cord will reflect the hierarchy of
// the element node's descendents: every text node becomes a leaf.
//
func InnerText(n *html.Node) (cords.Cord, error) {
	if n == nil {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	if err := collectText(n, b); err != nil {
		return cords.Cord{}, err
	}
	return b.Cord(), nil
}

// TextContent returns the inner text of a node as a string.
func TextContent(n *html.Node) string {
	text, err := InnerText(n)
	if err != nil {
		tracer().Errorf("inner text: %v", err)
		return ""
	}
	if text.IsVoid() {
		return ""
	}
	return text.String()
}

func collectText(n *html.Node, b *cords.Builder) error {
	if n.Type == html.TextNode {
		if n.Data == "" {
			return nil
		}
		parent := n.Parent
		for parent != nil && parent.Type != html.ElementNode {
			parent = parent.Parent
		}
		leaf := &Leaf{
			element: parent,
			length:  uint64(len(n.Data)),
			content: n.Data,
		}
		return b.Append(leaf)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------

// Leaf is the leaf type created for cords from calls to InnerText(…).
type Leaf struct {
	element *html.Node
	length  uint64
	content string
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return l.length
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{
		element: l.element,
		length:  i,
		content: l.content[:i],
	}
	right := &Leaf{
		element: l.element,
		length:  l.length - i,
		content: l.content[i:],
	}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

// Element returns the element node enclosing the text of a leaf.
func (l Leaf) Element() *html.Node {
	return l.element
}

var _ cords.Leaf = Leaf{}
