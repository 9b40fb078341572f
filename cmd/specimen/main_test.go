package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen"
	"github.com/npillmayer/specimen/backend/page"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/engine/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	yml := `
app-key: specimen-test
fontconfig: /usr/bin/fc-list
trace:
  root: Info
  specimen.resources: Debug
google:
  subsets: [latin, latin-ext]
`
	conf := testconfig.Conf{}
	require.NoError(t, readConfig(strings.NewReader(yml), conf))
	assert.Equal(t, "specimen-test", conf.GetString("app-key"))
	assert.Equal(t, "/usr/bin/fc-list", conf.GetString("fontconfig"))
	assert.Equal(t, "Info", conf.GetString("trace.root"))
	assert.Equal(t, "Debug", conf.GetString("trace.specimen.resources"))
	assert.Equal(t, "latin,latin-ext", conf.GetString("google.subsets"))
	//
	assert.NoError(t, readConfig(strings.NewReader(""), testconfig.Conf{}))
	assert.Error(t, readConfig(strings.NewReader("app-key: [unclosed"), testconfig.Conf{}))
}

func TestLoadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nothing.yaml")
	conf, err := loadConfig(missing, false)
	assert.NoError(t, err)
	assert.Equal(t, "specimen", conf.GetString("app-key"))
	_, err = loadConfig(missing, true)
	assert.Equal(t, core.ECONFIG, core.Code(err))
	//
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app-key: other\n"), 0644))
	conf, err = loadConfig(path, true)
	assert.NoError(t, err)
	assert.Equal(t, "other", conf.GetString("app-key"))
	assert.Equal(t, "go", conf.GetString("tracing.adapter"), "defaults should survive")
}

func TestPageFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.cli")
	defer teardown()
	//
	pf := pageFlags{intent: "primary", marginV: 2, split: true, column: "10rem", lang: "de"}
	pconf, err := pf.config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, parameters.Props{MarginV: 2, Intent: parameters.IntentPrimary}, pconf.Props)
	assert.Equal(t, "de", pconf.Lang.String())
	doc := page.Document(pconf)
	// 160px splits every character line, digits included
	lines := dom.MustSelect(doc, "section:nth-of-type(2) ."+specimen.ClassCharacterLine)
	assert.Len(t, lines, 2*len(specimen.Characters()))
	//
	_, err = (&pageFlags{intent: "loud"}).config(context.Background())
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = (&pageFlags{split: true, column: "wide"}).config(context.Background())
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = (&pageFlags{split: true, column: "50%"}).config(context.Background())
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Contains(t, core.UserMessage(err), "absolute or rem")
	_, err = (&pageFlags{measure: "guess"}).config(context.Background())
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestCharactersFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "chars.txt")
	require.NoError(t, os.WriteFile(path, []byte("ÄÖÜ äöü\r\n\n  \nß€\n"), 0644))
	cs, err := readCharacters(path)
	require.NoError(t, err)
	assert.Equal(t, specimen.CharacterSet{"ÄÖÜ äöü", "ß€"}, cs)
	pconf, err := (&pageFlags{characters: path}).config(context.Background())
	require.NoError(t, err)
	doc := page.Document(pconf)
	assert.Len(t, dom.MustSelect(doc, "section:nth-of-type(2) ."+specimen.ClassCharacterLine), 2)
	//
	_, err = readCharacters(filepath.Join(t.TempDir(), "none.txt"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestQueryInterpreter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.cli")
	defer teardown()
	//
	var out bytes.Buffer
	intp := &Intp{doc: page.Document(page.Config{}), out: &out}
	quit, err := intp.execute("section.section-block > h3")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), `<h3>  "`+specimen.TitlePrimary+`"`)
	assert.True(t, strings.HasSuffix(out.String(), "2 matches\n"))
	//
	out.Reset()
	_, err = intp.execute("eval count(//section)")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out.String())
	//
	out.Reset()
	_, err = intp.execute("xpath //h2")
	require.NoError(t, err)
	assert.Contains(t, out.String(), specimen.TitleFontSizes)
	//
	_, err = intp.execute("css ][")
	assert.Equal(t, core.EINVALID, core.Code(err))
	quit, _ = intp.execute("quit")
	assert.True(t, quit)
}

func TestSplitCommand(t *testing.T) {
	for line, want := range map[string][2]string{
		"css  div.x ":     {"css", "div.x"},
		"span.font-face":  {"css", "span.font-face"},
		"xpath //p[1]":    {"xpath", "//p[1]"},
		"help":            {"help", ""},
		"section > h2":    {"css", "section > h2"},
		"evaluate things": {"css", "evaluate things"},
	} {
		op, arg := splitCommand(line)
		assert.Equal(t, want, [2]string{op, arg}, line)
	}
}
