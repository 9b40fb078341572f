/*
Package parameters holds the parameters which steer rendering of a
specimen page.

Render-wide settings live in Registers, which may be grouped: values pushed
inside a group are dropped at the end of the group, restoring the outer
values. Presentational settings for a single section are given as Props.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/specimen/core/dimen"
)

// RenderParameter is a key for a render-wide setting.
type RenderParameter int

const (
	none RenderParameter = iota
	P_LANGUAGE
	P_TEXTDIRECTION
	P_ROOTFONTSIZE
	P_SPLITPOLICY
	P_COLUMNWIDTH
	P_STOPPER
)

// Split policies for character lines.
const (
	SplitNever   = 0 // render every character line as a single block
	SplitByWidth = 1 // split lines wider than P_COLUMNWIDTH into two halves
)

type parameterGroup struct {
	params map[RenderParameter]interface{}
	level  int
	next   *parameterGroup
}

// Registers is a stack of render parameters.
type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *parameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRegisters creates a set of registers with default values.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = language.English       // a language.Tag
	p[P_TEXTDIRECTION] = bidi.LeftToRight  // a bidi.Direction
	p[P_ROOTFONTSIZE] = dimen.RootFontSize // dimension
	p[P_SPLITPOLICY] = SplitNever          // an int
	p[P_COLUMNWIDTH] = 480 * dimen.PX      // dimension
}

// Begingroup opens a new group of parameters.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the innermost group, dropping the values pushed inside it.
func (regs *Registers) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a parameter, either in the current group or globally if no group
// is open.
func (regs *Registers) Push(key RenderParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of render parameters")
	}
	if regs.grouplevel > 0 {
		var g *parameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &parameterGroup{
				params: make(map[RenderParameter]interface{}),
				level:  regs.grouplevel,
				next:   regs.groups,
			}
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get returns the innermost value of a parameter.
func (regs *Registers) Get(key RenderParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of render parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// N returns an integer parameter.
func (regs *Registers) N(key RenderParameter) int {
	return regs.Get(key).(int)
}

// D returns a dimension parameter.
func (regs *Registers) D(key RenderParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}

// Lang returns the language parameter.
func (regs *Registers) Lang() language.Tag {
	return regs.Get(P_LANGUAGE).(language.Tag)
}

// Direction returns the text direction parameter.
func (regs *Registers) Direction() bidi.Direction {
	return regs.Get(P_TEXTDIRECTION).(bidi.Direction)
}
