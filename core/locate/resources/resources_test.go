package resources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryJSON = `{
  "kind": "webfonts#webfontList",
  "items": [
    {
      "family": "Lato",
      "version": "v24",
      "variants": ["100", "100italic", "300", "regular", "italic", "700", "700italic", "900"],
      "subsets": ["latin", "latin-ext"],
      "files": {
        "regular": "%[1]s/lato/regular.ttf",
        "700italic": "%[1]s/lato/700italic.ttf"
      }
    },
    {
      "family": "Lateef",
      "version": "v30",
      "variants": ["regular"],
      "subsets": ["arabic"],
      "files": {"regular": "%[1]s/lateef/regular.ttf"}
    },
    {
      "family": "Montserrat",
      "version": "v26",
      "variants": ["100", "regular", "italic", "500", "800", "800italic"],
      "subsets": ["latin"],
      "files": {"800": "%[1]s/montserrat/800.ttf"}
    }
  ]
}`

func fontService(t *testing.T) *httptest.Server {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/webfonts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, directoryJSON, srv.URL)
	})
	mux.HandleFunc("/lato/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not really a font"))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleFontsDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	srv := fontService(t)
	dir, err := FetchGoogleFontsDirectory(context.Background(), srv.URL+"/webfonts", "test-key")
	require.NoError(t, err)
	assert.Equal(t, 3, dir.Len())
	finfo, ok := dir.Family("LATO")
	assert.True(t, ok)
	assert.Equal(t, "v24", finfo.Version)
	_, ok = dir.Family("Roboto")
	assert.False(t, ok)
	//
	var names []string
	for _, finfo := range dir.WithPrefix("la") {
		names = append(names, finfo.Family)
	}
	assert.Equal(t, []string{"Lateef", "Lato"}, names)
	assert.Empty(t, dir.WithPrefix("x"))
}

func TestGoogleFontsDirectoryErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	srv := fontService(t)
	_, err := FetchGoogleFontsDirectory(context.Background(), srv.URL+"/webfonts", "")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = FetchGoogleFontsDirectory(context.Background(), srv.URL+"/webfonts", "wrong-key")
	assert.Equal(t, core.ECONNECTION, core.Code(err))
	_, err = ParseGoogleFontsDirectory(strings.NewReader("{ not json"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestFindGoogleFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	srv := fontService(t)
	dir, err := FetchGoogleFontsDirectory(context.Background(), srv.URL+"/webfonts", "test-key")
	require.NoError(t, err)
	_, variant, err := dir.FindGoogleFont("Lato", font.Italic, font.Bold)
	assert.NoError(t, err)
	assert.Equal(t, "700italic", variant)
	_, variant, err = dir.FindGoogleFont("lato", font.Upright, font.Normal)
	assert.NoError(t, err)
	assert.Equal(t, "regular", variant)
	_, variant, err = dir.FindGoogleFont("Montserrat", font.Upright, font.ExtraBold)
	assert.NoError(t, err)
	assert.Equal(t, "800", variant)
	_, _, err = dir.FindGoogleFont("Lateef", font.Italic, font.Normal)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, _, err = dir.FindGoogleFont("Roboto", font.Upright, font.Normal)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestCacheGoogleFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	srv := fontService(t)
	dir, err := FetchGoogleFontsDirectory(context.Background(), srv.URL+"/webfonts", "test-key")
	require.NoError(t, err)
	finfo, _ := dir.Family("Lato")
	conf := testconfig.Conf{"app-key": "specimen-test"}
	fpath, err := CacheGoogleFont(context.Background(), conf, finfo, "700italic")
	require.NoError(t, err)
	assert.Equal(t, "Lato-700italic.ttf", filepath.Base(fpath))
	content, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Equal(t, "not really a font", string(content))
	// second call is served from the cache
	srv.Close()
	again, err := CacheGoogleFont(context.Background(), conf, finfo, "700italic")
	assert.NoError(t, err)
	assert.Equal(t, fpath, again)
	//
	_, err = CacheGoogleFont(context.Background(), conf, finfo, "900")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestCacheDirPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	_, err := CacheDirPath(testconfig.Conf{})
	assert.Equal(t, core.ECONFIG, core.Code(err))
	dir, err := CacheDirPath(testconfig.Conf{"app-key": "specimen-test"}, "fonts", "google")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "specimen-test", "fonts", "google"), dir)
	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestStylesheetURL(t *testing.T) {
	lato := font.Family{Name: "lato", Faces: []font.Face{
		{Weight: font.Thin}, {Weight: font.Bold}, {Weight: font.Bold, Advised: true},
	}}
	sans := font.Family{Name: "open sans"}
	assert.Equal(t,
		"https://fonts.googleapis.com/css2?family=Lato:ital,wght@0,100;0,700;1,100;1,700&family=Open+Sans&display=swap",
		StylesheetURL(lato, sans))
	assert.Equal(t, GoogleFontsCSS, StylesheetURL())
}

func TestStylesheetURLServedWeights(t *testing.T) {
	lato := font.Family{Name: "lato", Faces: []font.Face{
		{Weight: font.Thin}, {Weight: font.ExtraLight}, {Weight: font.Medium},
		{Weight: font.Bold}, {Weight: font.Black},
	}}
	assert.Equal(t, []font.Weight{font.Thin, font.Normal, font.Bold, font.Black}, ServedWeights(lato))
	assert.Equal(t,
		"https://fonts.googleapis.com/css2?family=Lato:ital,wght@0,100;0,400;0,700;0,900;1,100;1,400;1,700;1,900&display=swap",
		StylesheetURL(lato))
	montserrat := font.Family{Name: "montserrat", Faces: []font.Face{
		{Weight: font.ExtraLight}, {Weight: font.Medium},
	}}
	assert.Equal(t, []font.Weight{font.ExtraLight, font.Medium}, ServedWeights(montserrat))
}

func TestParseFontConfigLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	desc, ok := parseFontConfigLine("/usr/share/fonts/Lato-BoldItalic.ttf: Lato:style=Bold Italic")
	require.True(t, ok)
	assert.Equal(t, "Lato", desc.Family)
	assert.Equal(t, "/usr/share/fonts/Lato-BoldItalic.ttf", desc.Path)
	assert.Equal(t, []string{"700italic"}, desc.Variants)
	//
	desc, ok = parseFontConfigLine("/fonts/Montserrat-Regular.otf: Montserrat,Montserrat Regular:style=Regular,Normal")
	require.True(t, ok)
	assert.Equal(t, "Montserrat", desc.Family)
	assert.Equal(t, []string{"regular"}, desc.Variants)
	//
	_, ok = parseFontConfigLine("/System/Library/Fonts/Helvetica.ttc: Helvetica:style=Bold")
	assert.False(t, ok)
	_, ok = parseFontConfigLine("   ")
	assert.False(t, ok)
	_, ok = parseFontConfigLine("/fonts/broken.ttf")
	assert.False(t, ok)
}

func TestSystemFontNames(t *testing.T) {
	assert.Equal(t, []string{"Lato-BoldItalic"}, SystemFontNames("lato", font.Italic, font.Bold))
	assert.Equal(t, []string{"Lato-Italic"}, SystemFontNames("lato", font.Italic, font.Normal))
	assert.Equal(t, []string{"Lato-Thin", "Lato-Hairline"}, SystemFontNames("lato", font.Upright, font.Thin))
	assert.Equal(t, []string{"OpenSans-Regular"}, SystemFontNames("open sans", font.Upright, font.Normal))
}

func TestResolveUnknownFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.resources")
	defer teardown()
	//
	promise := ResolveTypeCase(context.Background(), nil, "No Such Family Anywhere", font.Upright, font.Normal, 12)
	tc, err := promise.TypeCase()
	assert.Equal(t, core.EMISSING, core.Code(err))
	require.NotNil(t, tc, "fallback typecase expected")
}

func TestResolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f, err := ResolveFont(ctx, nil, "No Such Family Anywhere", font.Upright, font.Normal).Await(ctx)
	assert.Nil(t, f)
	assert.Error(t, err)
}
