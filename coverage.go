package specimen

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/specimen/core/font"
)

// CharacterRunes returns the distinct code-points of a character set, in
// ascending order. Spaces are not part of the result.
func CharacterRunes(cs CharacterSet) []rune {
	set := treeset.NewWith(utils.RuneComparator)
	for _, line := range cs {
		for _, r := range line {
			if r != ' ' {
				set.Add(r)
			}
		}
	}
	runes := make([]rune, 0, set.Size())
	for _, v := range set.Values() {
		runes = append(runes, v.(rune))
	}
	return runes
}

// Coverage reports which characters of a character set a font has glyphs for.
type Coverage struct {
	Family  string `json:"family"`
	Font    string `json:"font"`
	Total   int    `json:"total"`
	Missing []rune `json:"missing"`
}

// Complete returns true if no glyph is missing.
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0
}

// MissingString returns the missing characters as a string.
func (c Coverage) MissingString() string {
	return string(c.Missing)
}

// CheckCoverage checks a font against a character set. A nil character set
// checks the default one.
func CheckCoverage(family string, f *font.ScalableFont, cs CharacterSet) Coverage {
	if cs == nil {
		cs = Characters()
	}
	runes := CharacterRunes(cs)
	cov := Coverage{Family: family, Total: len(runes)}
	if f != nil {
		cov.Font = f.Fontname
	}
	for _, r := range runes {
		if !f.HasGlyph(r) {
			cov.Missing = append(cov.Missing, r)
		}
	}
	tracer().Infof("font %q covers %d of %d characters", cov.Font, cov.Total-len(cov.Missing), cov.Total)
	return cov
}
