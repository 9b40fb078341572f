package specimen

import (
	"strconv"

	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/core/percent"
	"github.com/npillmayer/specimen/engine/dom/style"
	"github.com/npillmayer/specimen/engine/dom/style/css"
)

// Breakpoints of the responsive grids.
var (
	BreakpointSmall  = dimen.Px(480)
	BreakpointMedium = dimen.Px(640)
)

// SpacingScale holds the margins for the steps of parameters.Props.
var SpacingScale = [parameters.SpacingSteps]dimen.Dimen{
	0, dimen.Px(4), dimen.Px(8), dimen.Px(16), dimen.Px(32),
	dimen.Px(64), dimen.Px(128), dimen.Px(256), dimen.Px(512),
}

// intent colors as foreground, background
var intentColors = map[parameters.Intent][2]string{
	parameters.IntentDefault:   {"#1b2a3c", "#ffffff"},
	parameters.IntentPrimary:   {"#1b2a3c", "#e8f0fb"},
	parameters.IntentSecondary: {"#1b2a3c", "#f4f6f9"},
	parameters.IntentInverted:  {"#ffffff", "#1b2a3c"},
}

func maxWidth(d dimen.Dimen) string {
	return "all and (max-width: " + d.FormatPx() + ")"
}

func minWidth(d dimen.Dimen) string {
	return "all and (min-width: " + d.FormatPx() + ")"
}

func weightColumns(p int) string {
	return "repeat(auto-fill, minmax(" + percent.FromInt(p).CalcMinus("1rem") + ", 1fr))"
}

// Stylesheet creates the CSS rules for the page.
func Stylesheet() *css.Sheet {
	sheet := css.NewSheet()
	for step := 1; step < parameters.SpacingSteps; step++ {
		n := strconv.Itoa(step)
		m := SpacingScale[step].FormatPx()
		sheet.Rule(".mh-"+n, style.Decl("margin-left", m), style.Decl("margin-right", m))
		sheet.Rule(".my-"+n, style.Decl("margin-top", m), style.Decl("margin-bottom", m))
		sheet.Rule(".mt-"+n, style.Decl("margin-top", m))
	}
	for i := parameters.IntentDefault; i <= parameters.IntentInverted; i++ {
		c := intentColors[i]
		sheet.Rule(".intent-"+i.String(), style.Decl("color", c[0]), style.Decl("background-color", c[1]))
	}
	sheet.Rule("."+ClassSectionBlock, style.Decl("padding", "1rem 2rem"))
	sheet.Rule(".color-secondary-1", style.Decl("color", "#8c9db1"))
	//
	sheet.Rule("."+ClassFamilySampleGrid,
		style.Decl("display", "grid"),
		style.Decl("grid-template-columns", "minmax(auto, 0.2fr) 1fr"),
		style.Decl("grid-column-gap", "1rem"),
		style.Decl("max-width", percent.FromInt(100).String()),
		style.Decl("overflow", "hidden"))
	sheet.Rule("."+ClassCharacterMap,
		style.Decl("display", "block"),
		style.Decl("font-weight", "bold"),
		style.Decl("white-space", "pre-wrap"))
	sheet.Rule("."+ClassCharacterLine,
		style.Decl("line-height", characterLineHeight),
		style.Decl("font-size", characterLineFontSize),
		style.Decl("letter-spacing", characterLineLetterSpacing))
	sheet.Media(maxWidth(BreakpointSmall)).Rule("."+ClassCharacterLine,
		style.Decl("max-width", percent.FromInt(90).String()),
		style.Decl("line-height", "1.5rem"),
		style.Decl("margin-bottom", "0.75rem"))
	sheet.Media(minWidth(BreakpointMedium))
	//
	sheet.Rule("."+ClassFontWeightGrid,
		style.Decl("display", "grid"),
		style.Decl("grid-column-gap", "0.5rem"),
		style.Decl("grid-template-rows", "auto"),
		style.Decl("grid-template-columns", weightColumns(50)))
	sheet.Media(minWidth(BreakpointSmall)).Rule("."+ClassFontWeightGrid,
		style.Decl("grid-template-columns", weightColumns(33)))
	sheet.Media(minWidth(BreakpointMedium)).Rule("."+ClassFontWeightGrid,
		style.Decl("grid-template-columns", weightColumns(20)))
	sheet.Rule("."+ClassFontWeight,
		style.Decl("display", "block"),
		style.Decl("white-space", "nowrap"),
		style.Decl("overflow", "hidden"),
		style.Decl("width", "min-content"))
	sheet.Rule("."+ClassAdvised, style.Decl("position", "relative"))
	sheet.Rule("."+ClassAdvised+":after",
		style.Decl("position", "absolute"),
		style.Decl("left", "0"),
		style.Decl("right", "0"),
		style.Decl("height", "1px"),
		style.Decl("box-shadow", "0 0 0 1px rgba(0, 0, 0, 0)"))
	sheet.Rule("."+ClassNotAdvised,
		style.Decl("text-decoration", "line-through"),
		style.Decl("opacity", "0.5"))
	//
	sheet.Rule("."+ClassFontSizeGrid,
		style.Decl("display", "grid"),
		style.Decl("grid-template-rows", "auto"),
		style.Decl("grid-template-columns", "minmax(25%, max-content) 1fr"),
		style.Decl("grid-column-gap", "1rem"),
		style.Decl("align-items", "baseline"))
	return sheet
}
