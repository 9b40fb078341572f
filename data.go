package specimen

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/font"
)

// SizeSpec is an entry of the font size scale.
type SizeSpec struct {
	Label      string  `json:"label" yaml:"label"`
	FontSizePx int     `json:"fontSize" yaml:"fontSize"`
	LineHeight float64 `json:"lineHeight" yaml:"lineHeight"`
}

// Rem returns the font size relative to a root font size of 16px,
// e.g. 55px => 3.4375.
func (s SizeSpec) Rem() float64 {
	return dimen.Px(s.FontSizePx).Rem(dimen.RootFontSize)
}

// Caption is the label shown next to a size sample, e.g. "Body — 11px".
func (s SizeSpec) Caption() string {
	return fmt.Sprintf("%s — %dpx", s.Label, s.FontSizePx)
}

// FontSize formats the font size as a CSS value.
func (s SizeSpec) FontSize() string {
	return dimen.FormatRem(s.Rem())
}

// LineHeightValue formats the line height multiplier as a CSS value.
func (s SizeSpec) LineHeightValue() string {
	return strconv.FormatFloat(s.LineHeight, 'f', -1, 64)
}

// Largest to smallest; display order is declaration order.
var sizes = [...]SizeSpec{
	{"Heading H1", 55, 3.5},
	{"Heading H2", 34, 2.5},
	{"Heading H3", 21, 1.5},
	{"Heading H4", 13, 1},
	{"Body", 11, 1},
	{"Caption", 8, 1},
}

// Sizes returns the font size scale.
func Sizes() []SizeSpec {
	s := make([]SizeSpec, len(sizes))
	copy(s, sizes[:])
	return s
}

// CharacterSet is a sequence of lines of sample characters.
type CharacterSet []string

// Clone returns a copy of cs.
func (cs CharacterSet) Clone() CharacterSet {
	if cs == nil {
		return nil
	}
	c := make(CharacterSet, len(cs))
	copy(c, cs)
	return c
}

var characters = [...]string{
	`ABCĆDEFGHIJKLMNOPQRSŠTUVWXYZŽ`,
	`abcćdefghijklmnopqrsštuvwxyzž`,
	`1234567890`,
	`‘?’“!”(%)[#]{@}/&\<-+÷×=>®©$€£¥¢:;,.*`,
}

// Characters returns the default character set: uppercase and lowercase
// Latin letters including the accented ones of Central European languages,
// digits, and punctuation and symbols.
func Characters() CharacterSet {
	return CharacterSet(characters[:]).Clone()
}

var lato = font.Family{
	Name: "lato",
	Faces: []font.Face{
		{Weight: font.Thin, Advised: false, Name: "Hairline"},
		{Weight: font.ExtraLight, Advised: true, Name: "Light"},
		{Weight: font.Medium, Advised: true, Name: "Regular"},
		{Weight: font.Bold, Advised: true, Name: "Bold"},
		{Weight: font.Black, Advised: true, Name: "Black"},
	},
}

var montserrat = font.Family{
	Name: "montserrat",
	Faces: []font.Face{
		{Weight: font.Thin, Advised: true, Name: "Thin"},
		{Weight: font.ExtraLight, Advised: true, Name: "Extra Light"},
		{Weight: font.Light, Advised: true, Name: "Light"},
		{Weight: font.Normal, Advised: true, Name: "Regular"},
		{Weight: font.Medium, Advised: true, Name: "Medium"},
		{Weight: font.SemiBold, Advised: true, Name: "Semi Bold"},
		{Weight: font.Bold, Advised: true, Name: "Bold"},
		{Weight: font.ExtraBold, Advised: true, Name: "Extra Bold"},
		{Weight: font.Black, Advised: true, Name: "Black"},
	},
}

// Lato returns the primary font family.
func Lato() font.Family {
	return lato.Clone()
}

// Montserrat returns the secondary font family.
func Montserrat() font.Family {
	return montserrat.Clone()
}

// Families returns the font families shown on the page, primary first.
func Families() []font.Family {
	return []font.Family{Lato(), Montserrat()}
}
