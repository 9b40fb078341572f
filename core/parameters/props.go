package parameters

import (
	"fmt"
	"strconv"
	"strings"
)

// Intent selects a visual variant of a section.
type Intent int

// Intents known to the stylesheet. IntentDefault is the zero value.
const (
	IntentDefault Intent = iota
	IntentPrimary
	IntentSecondary
	IntentInverted
)

var intentNames = [...]string{"default", "primary", "secondary", "inverted"}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "Intent(" + strconv.Itoa(int(i)) + ")"
	}
	return intentNames[i]
}

// ParseIntent converts an intent name. The empty string is IntentDefault.
func ParseIntent(s string) (Intent, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return IntentDefault, nil
	}
	for i, name := range intentNames {
		if name == s {
			return Intent(i), nil
		}
	}
	return IntentDefault, fmt.Errorf("unknown intent %q", s)
}

// SpacingSteps is the number of steps on the spacing scale.
const SpacingSteps = 9

// Props are presentational settings for a section of a page. They replace
// an open-ended property bag with named fields. The zero value holds the
// defaults:
//
//     MarginH  horizontal margin, a step 1…8 on the spacing scale; default 0 = none
//     MarginV  vertical margin, a step 1…8 on the spacing scale; default 0 = none
//     Intent   visual variant; default IntentDefault
//     Class    additional CSS class names, space separated; default none
//
type Props struct {
	MarginH int
	MarginV int
	Intent  Intent
	Class   string
}

// Normalize clamps spacing steps to the scale and tidies class names.
func (p Props) Normalize() Props {
	p.MarginH = clampStep(p.MarginH)
	p.MarginV = clampStep(p.MarginV)
	if p.Intent < IntentDefault || p.Intent > IntentInverted {
		p.Intent = IntentDefault
	}
	p.Class = strings.Join(strings.Fields(p.Class), " ")
	return p
}

// Merge overlays the fields set in other onto p. Fields of other which are
// at their default leave p's values unchanged; classes are concatenated.
func (p Props) Merge(other Props) Props {
	p, other = p.Normalize(), other.Normalize()
	if other.MarginH != 0 {
		p.MarginH = other.MarginH
	}
	if other.MarginV != 0 {
		p.MarginV = other.MarginV
	}
	if other.Intent != IntentDefault {
		p.Intent = other.Intent
	}
	if other.Class != "" {
		p.Class = strings.TrimSpace(p.Class + " " + other.Class)
	}
	return p
}

// Classes returns the CSS class names which express p in the stylesheet,
// in a stable order.
func (p Props) Classes() []string {
	p = p.Normalize()
	classes := []string{"intent-" + p.Intent.String()}
	classes = append(classes, p.Spacing()...)
	if p.Class != "" {
		classes = append(classes, strings.Fields(p.Class)...)
	}
	return classes
}

// NestedClasses is like Classes, but leaves out the intent class for
// IntentDefault. Nested elements use it to keep the colours of their
// enclosing section.
func (p Props) NestedClasses() []string {
	classes := p.Classes()
	if p.Normalize().Intent == IntentDefault {
		classes = classes[1:]
	}
	return classes
}

// Spacing returns the CSS class names for the margins of p only.
func (p Props) Spacing() []string {
	p = p.Normalize()
	var classes []string
	if p.MarginH != 0 {
		classes = append(classes, "mh-"+strconv.Itoa(p.MarginH))
	}
	if p.MarginV != 0 {
		classes = append(classes, "my-"+strconv.Itoa(p.MarginV))
	}
	return classes
}

func clampStep(n int) int {
	switch {
	case n < 0:
		return 0
	case n >= SpacingSteps:
		return SpacingSteps - 1
	}
	return n
}
