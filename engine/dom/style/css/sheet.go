/*
Package css builds and reads CSS stylesheets.

Sheets wrap the stylesheet model of github.com/aymerick/douceur, which we
use for parsing and printing. Rules keep the order in which they have been
added, so printing a sheet is stable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/engine/dom/style"
)

// tracer traces with key 'specimen.css'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.css")
}

// Sheet is a CSS stylesheet.
type Sheet struct {
	sheet *css.Stylesheet
}

// NewSheet creates an empty stylesheet.
func NewSheet() *Sheet {
	return &Sheet{sheet: css.NewStylesheet()}
}

// Parse reads a stylesheet from CSS source text.
func Parse(text string) (*Sheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse stylesheet")
	}
	return &Sheet{sheet: sheet}, nil
}

// Rule appends a qualified rule for a selector. Several selectors may be
// given separated by commas.
func (s *Sheet) Rule(selector string, decls ...style.Declaration) *Sheet {
	s.sheet.Rules = append(s.sheet.Rules, qualifiedRule(selector, 0, decls))
	return s
}

// Media appends an @media rule. Rules added to the returned media block are
// nested inside it. A media block without rules will not be printed.
func (s *Sheet) Media(query string) *Media {
	r := css.NewRule(css.AtRule)
	r.Name = "@media"
	r.Prelude = query
	s.sheet.Rules = append(s.sheet.Rules, r)
	return &Media{rule: r}
}

// Media is an @media block of a sheet.
type Media struct {
	rule *css.Rule
}

// Rule appends a nested rule to a media block.
func (m *Media) Rule(selector string, decls ...style.Declaration) *Media {
	m.rule.Rules = append(m.rule.Rules, qualifiedRule(selector, 1, decls))
	return m
}

func qualifiedRule(selector string, level int, decls []style.Declaration) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.EmbedLevel = level
	for _, sel := range strings.Split(selector, ",") {
		if sel = strings.TrimSpace(sel); sel != "" {
			r.Selectors = append(r.Selectors, sel)
		}
	}
	r.Prelude = strings.Join(r.Selectors, ", ")
	for _, d := range decls {
		r.Declarations = append(r.Declarations, &css.Declaration{
			Property: d.Key,
			Value:    d.Value.String(),
		})
	}
	return r
}

// AppendRules appends all the rules of another sheet.
func (s *Sheet) AppendRules(other *Sheet) {
	if other == nil {
		return
	}
	s.sheet.Rules = append(s.sheet.Rules, other.sheet.Rules...)
}

// Empty returns true if s contains no rules.
func (s *Sheet) Empty() bool {
	return len(s.sheet.Rules) == 0
}

// Len returns the number of top-level rules.
func (s *Sheet) Len() int {
	return len(s.sheet.Rules)
}

func (s *Sheet) String() string {
	var b strings.Builder
	for _, r := range s.sheet.Rules {
		if r.Kind == css.AtRule && len(r.Rules) == 0 && len(r.Declarations) == 0 {
			tracer().Debugf("skipping empty %s %s", r.Name, r.Prelude)
			continue
		}
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Lookup returns the declarations of all top-level rules which list selector,
// later rules overriding earlier ones.
func (s *Sheet) Lookup(selector string) style.Declarations {
	return lookup(s.sheet.Rules, selector)
}

// LookupMedia is like Lookup, but searches the rules nested in @media blocks
// with the given query.
func (s *Sheet) LookupMedia(query, selector string) style.Declarations {
	var decls style.Declarations
	for _, r := range s.sheet.Rules {
		if r.Kind == css.AtRule && r.Name == "@media" && normalize(r.Prelude) == normalize(query) {
			for _, d := range lookup(r.Rules, selector) {
				decls = decls.Set(d.Key, d.Value)
			}
		}
	}
	return decls
}

// MediaQueries lists the preludes of all @media blocks, in order.
func (s *Sheet) MediaQueries() []string {
	var queries []string
	for _, r := range s.sheet.Rules {
		if r.Kind == css.AtRule && r.Name == "@media" {
			queries = append(queries, r.Prelude)
		}
	}
	return queries
}

func lookup(rules []*css.Rule, selector string) style.Declarations {
	var decls style.Declarations
	for _, r := range rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range r.Selectors {
			if sel == selector {
				for _, d := range r.Declarations {
					decls = decls.Set(d.Property, style.Property(d.Value))
				}
				break
			}
		}
	}
	return decls
}

func normalize(query string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(query, ":", ": ")), " ")
}
