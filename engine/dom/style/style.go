/*
Package style holds CSS property values and inline declaration blocks.

Declaration blocks are parsed with github.com/aymerick/douceur and kept in
source order, so that printing them again is stable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/dimen"
)

// tracer traces with key 'specimen.css'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.css")
}

// Property is a raw value for a CSS property, e.g. "1.125rem".
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty returns true for an unset property value.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// Dimen interprets a property value as a dimension. `rem` values are resolved
// against root, percentages against base.
func (p Property) Dimen(root, base dimen.Dimen) (dimen.Dimen, error) {
	d, unit, err := dimen.ParseDimen(strings.TrimSpace(string(p)))
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "property is not a dimension: %q", p)
	}
	return dimen.Resolve(d, unit, root, base), nil
}

// Declaration is a CSS key/value pair, e.g. "font-size: 0.5rem".
type Declaration struct {
	Key   string
	Value Property
}

// Decl is a shortcut for creating a declaration.
func Decl(key string, value string) Declaration {
	return Declaration{Key: key, Value: Property(value)}
}

func (d Declaration) String() string {
	return d.Key + ": " + d.Value.String()
}

// Declarations is an ordered block of declarations, as found in a style
// attribute. Keys are unique.
type Declarations []Declaration

// Get returns the value of a property key.
func (decls Declarations) Get(key string) (Property, bool) {
	for _, d := range decls {
		if d.Key == key {
			return d.Value, true
		}
	}
	return NullStyle, false
}

// Set replaces or appends a property, keeping the position of an existing key.
func (decls Declarations) Set(key string, value Property) Declarations {
	for i := range decls {
		if decls[i].Key == key {
			decls[i].Value = value
			return decls
		}
	}
	return append(decls, Declaration{Key: key, Value: value})
}

// String formats decls as the value of a style attribute, e.g.
// "font-size: 0.5rem; line-height: 1".
func (decls Declarations) String() string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// ParseDeclarations parses the content of a style attribute.
func ParseDeclarations(s string) (Declarations, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parsed, err := parser.ParseDeclarations(s)
	if err != nil {
		tracer().Debugf("cannot parse declarations %q: %v", s, err)
		return nil, core.WrapError(err, core.EINVALID, "invalid declaration block")
	}
	var decls Declarations
	for _, d := range parsed {
		decls = decls.Set(d.Property, Property(d.Value))
	}
	return decls, nil
}
