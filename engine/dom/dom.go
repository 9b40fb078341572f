/*
Package dom builds and inspects HTML node trees.

Trees are made of golang.org/x/net/html nodes, so they can be rendered with
html.Render and queried with CSS selectors (github.com/andybalholm/cascadia)
or XPath (package xpathadapter).

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/engine/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'specimen.dom'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.dom")
}

// Option modifies an element node during construction.
type Option func(*html.Node)

// Element creates an element node for a tag.
func Element(tag atom.Atom, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr sets an attribute, replacing an existing one with the same key.
func Attr(key, val string) Option {
	return func(n *html.Node) {
		SetAttr(n, key, val)
	}
}

// Class adds class names. Empty names are skipped.
func Class(names ...string) Option {
	return func(n *html.Node) {
		var classes []string
		if c, ok := AttrValue(n, "class"); ok && c != "" {
			classes = strings.Fields(c)
		}
		for _, name := range names {
			classes = append(classes, strings.Fields(name)...)
		}
		if len(classes) > 0 {
			SetAttr(n, "class", strings.Join(classes, " "))
		}
	}
}

// Style sets the inline style of an element. Declarations are merged with
// an existing style attribute, later declarations winning.
func Style(decls ...style.Declaration) Option {
	return func(n *html.Node) {
		var current style.Declarations
		if s, ok := AttrValue(n, "style"); ok {
			var err error
			if current, err = style.ParseDeclarations(s); err != nil {
				tracer().Errorf("ignoring malformed inline style %q", s)
			}
		}
		for _, d := range decls {
			current = current.Set(d.Key, d.Value)
		}
		if len(current) > 0 {
			SetAttr(n, "style", current.String())
		}
	}
}

// Children appends child nodes. Nil children are skipped.
func Children(children ...*html.Node) Option {
	return func(n *html.Node) {
		Append(n, children...)
	}
}

// Append appends children to a parent node. Nil children are skipped.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	return parent
}

// SetAttr sets an attribute of an element node.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// AttrValue returns the value of an attribute.
func AttrValue(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass returns true if an element carries a class name.
func HasClass(n *html.Node, class string) bool {
	c, ok := AttrValue(n, "class")
	if !ok {
		return false
	}
	for _, name := range strings.Fields(c) {
		if name == class {
			return true
		}
	}
	return false
}

// InlineStyle returns the parsed inline style of an element.
func InlineStyle(n *html.Node) style.Declarations {
	s, ok := AttrValue(n, "style")
	if !ok {
		return nil
	}
	decls, _ := style.ParseDeclarations(s)
	return decls
}

// Fragment wraps nodes into a document-fragment node, so that a sequence
// of sibling nodes may be queried as a whole.
func Fragment(nodes ...*html.Node) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	return Append(root, nodes...)
}

// --- Selecting -------------------------------------------------------------

// Select returns all descendants of root matching a CSS selector, in
// document order.
func Select(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid CSS selector: %s", selector)
	}
	return sel.MatchAll(root), nil
}

// MustSelect is like Select, but panics for an invalid selector. It is
// meant for selectors which are constants in the code.
func MustSelect(root *html.Node, selector string) []*html.Node {
	return cascadia.MustCompile(selector).MatchAll(root)
}

// SelectFirst returns the first descendant of root matching a selector,
// or nil.
func SelectFirst(root *html.Node, selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Errorf("invalid CSS selector %q: %v", selector, err)
		return nil
	}
	return sel.MatchFirst(root)
}
