package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/core/dimen"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestRegisterGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.core")
	defer teardown()
	//
	regs := NewRegisters()
	assert.Equal(t, SplitNever, regs.N(P_SPLITPOLICY))
	assert.Equal(t, dimen.RootFontSize, regs.D(P_ROOTFONTSIZE))
	assert.Equal(t, language.English, regs.Lang())
	regs.Begingroup()
	regs.Push(P_SPLITPOLICY, SplitByWidth)
	regs.Push(P_COLUMNWIDTH, 300*dimen.PX)
	assert.Equal(t, SplitByWidth, regs.N(P_SPLITPOLICY))
	regs.Begingroup()
	regs.Push(P_COLUMNWIDTH, 200*dimen.PX)
	assert.Equal(t, 200*dimen.PX, regs.D(P_COLUMNWIDTH))
	assert.Equal(t, SplitByWidth, regs.N(P_SPLITPOLICY), "outer group value expected")
	regs.Endgroup()
	assert.Equal(t, 300*dimen.PX, regs.D(P_COLUMNWIDTH))
	regs.Endgroup()
	assert.Equal(t, SplitNever, regs.N(P_SPLITPOLICY))
	assert.Equal(t, 480*dimen.PX, regs.D(P_COLUMNWIDTH))
}

func TestPropsDefaultsAndMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.core")
	defer teardown()
	//
	var zero Props
	assert.Equal(t, []string{"intent-default"}, zero.Classes())
	//
	section := Props{Intent: IntentInverted}
	caller := Props{MarginV: 3}
	merged := section.Merge(caller)
	assert.Equal(t, []string{"intent-inverted", "my-3"}, merged.Classes())
	//
	caller.Intent = IntentPrimary
	caller.Class = " wide  hero "
	merged = section.Merge(caller)
	assert.Equal(t, []string{"intent-primary", "my-3", "wide", "hero"}, merged.Classes())
	//
	assert.Equal(t, SpacingSteps-1, Props{MarginH: 42}.Normalize().MarginH)
	assert.Equal(t, 0, Props{MarginH: -2}.Normalize().MarginH)
	assert.Equal(t, IntentDefault, Props{Intent: Intent(7)}.Normalize().Intent)
}

func TestParseIntent(t *testing.T) {
	for s, i := range map[string]Intent{"": IntentDefault, "Inverted": IntentInverted, "secondary": IntentSecondary} {
		intent, err := ParseIntent(s)
		assert.NoError(t, err)
		assert.Equal(t, i, intent)
	}
	_, err := ParseIntent("loud")
	assert.Error(t, err)
	assert.Equal(t, "Intent(9)", Intent(9).String())
}

func TestNestedClasses(t *testing.T) {
	assert.Empty(t, Props{}.NestedClasses())
	assert.Equal(t, []string{"my-2", "wide"}, Props{MarginV: 2, Class: "wide"}.NestedClasses())
	assert.Equal(t, []string{"intent-primary"}, Props{Intent: IntentPrimary}.NestedClasses())
}

func TestSpacing(t *testing.T) {
	assert.Empty(t, Props{Intent: IntentPrimary}.Spacing())
	assert.Equal(t, []string{"mh-5", "my-3"}, Props{MarginH: 5, MarginV: 3, Class: "x"}.Spacing())
}
