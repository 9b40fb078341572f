package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/engine/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetBuildAndPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.css")
	defer teardown()
	//
	sheet := NewSheet()
	sheet.Rule(".character-line",
		style.Decl("line-height", "1.875rem"),
		style.Decl("font-size", "1.125rem"))
	sheet.Media("all and (max-width: 480px)").
		Rule(".character-line", style.Decl("max-width", "90%"))
	sheet.Media("all and (min-width: 640px)")
	out := sheet.String()
	t.Logf("\n%s", out)
	assert.Contains(t, out, ".character-line {")
	assert.Contains(t, out, "font-size: 1.125rem;")
	assert.Contains(t, out, "@media all and (max-width: 480px) {")
	assert.NotContains(t, out, "min-width: 640px")
	assert.Equal(t, 3, sheet.Len())
}

func TestSheetParseAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.css")
	defer teardown()
	//
	sheet, err := Parse(`
.grid, .other { display: grid; gap: 1rem }
.grid { gap: .5rem }
@media all and (min-width: 480px) {
  .grid { grid-template-columns: 1fr }
}`)
	require.NoError(t, err)
	decls := sheet.Lookup(".grid")
	gap, ok := decls.Get("gap")
	assert.True(t, ok)
	assert.Equal(t, style.Property(".5rem"), gap)
	display, _ := decls.Get("display")
	assert.Equal(t, style.Property("grid"), display)
	cols, ok := sheet.LookupMedia("all and (min-width:480px)", ".grid").Get("grid-template-columns")
	assert.True(t, ok)
	assert.Equal(t, style.Property("1fr"), cols)
	assert.Len(t, sheet.MediaQueries(), 1)
}
