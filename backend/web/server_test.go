package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/specimen"
	"github.com/npillmayer/specimen/backend/gfx"
	"github.com/npillmayer/specimen/backend/page"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	calls    int32
	fallback bool
}

func (cr *countingResolver) resolve(ctx context.Context, family string, style font.Style,
	weight font.Weight, size float64) (*font.TypeCase, error) {
	//
	atomic.AddInt32(&cr.calls, 1)
	tc, err := font.FallbackFont().PrepareCase(size)
	if err != nil {
		return nil, err
	}
	if cr.fallback {
		return tc, core.Missing("font", family)
	}
	return tc, nil
}

func newTestServer(t *testing.T, cr *countingResolver) *httptest.Server {
	srv := httptest.NewServer(NewServer(page.Config{}, cr.resolve))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestPageAndStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	srv := newTestServer(t, &countingResolver{})
	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), `<link rel="stylesheet" href="/styles.css"/>`)
	assert.Contains(t, string(body), specimen.TitlePrimary)
	//
	resp, body = get(t, srv.URL+"/styles.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	assert.Equal(t, specimen.Stylesheet().String(), string(body))
	//
	resp, _ = get(t, srv.URL+"/nothing-here")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	srv := newTestServer(t, &countingResolver{})
	resp, body := get(t, srv.URL+"/api/families")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var families []font.Family
	require.NoError(t, json.Unmarshal(body, &families))
	assert.Equal(t, specimen.Families(), families)
	//
	_, body = get(t, srv.URL+"/api/sizes")
	var sizes []specimen.SizeSpec
	require.NoError(t, json.Unmarshal(body, &sizes))
	require.Len(t, sizes, 6)
	assert.Equal(t, 55, sizes[0].FontSizePx)
	assert.Equal(t, "Caption", sizes[5].Label)
	//
	_, body = get(t, srv.URL+"/api/characters")
	var chars []string
	require.NoError(t, json.Unmarshal(body, &chars))
	assert.Equal(t, []string(specimen.Characters()), chars)
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	srv := newTestServer(t, &countingResolver{})
	resp, body := get(t, srv.URL+"/api/coverage/Lato")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cov specimen.Coverage
	require.NoError(t, json.Unmarshal(body, &cov))
	assert.Equal(t, "lato", cov.Family)
	assert.Equal(t, "Go Sans", cov.Font)
	assert.Equal(t, len(specimen.CharacterRunes(specimen.Characters())), cov.Total)
	//
	resp, _ = get(t, srv.URL+"/api/coverage/comic-sans")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	//
	srv = newTestServer(t, &countingResolver{fallback: true})
	resp, _ = get(t, srv.URL+"/api/coverage/lato")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	cr := &countingResolver{}
	srv := newTestServer(t, cr)
	resp, body := get(t, srv.URL+"/glyph/lato.png?weight=700&style=italic&size=48")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Empty(t, resp.Header.Get("X-Font-Fallback"))
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dy(), 48)
	// served from cache
	_, again := get(t, srv.URL+"/glyph/lato.png?weight=700&style=italic&size=48")
	assert.Equal(t, body, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&cr.calls))
	//
	resp, _ = get(t, srv.URL+"/glyph/Montserrat.bmp")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/bmp", resp.Header.Get("Content-Type"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&cr.calls))
}

func TestGlyphFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	srv := newTestServer(t, &countingResolver{fallback: true})
	resp, _ := get(t, srv.URL+"/glyph/lato.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Font-Fallback"))
	resp, _ = get(t, srv.URL+"/glyph/lato.png")
	assert.Equal(t, "true", resp.Header.Get("X-Font-Fallback"), "cached glyph keeps fallback flag")
}

func TestGlyphBadRequests(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	srv := newTestServer(t, &countingResolver{})
	for url, status := range map[string]int{
		"/glyph/helvetica.png":          http.StatusNotFound,
		"/glyph/lato.gif":               http.StatusNotFound,
		"/glyph/lato.png?weight=450":    http.StatusBadRequest,
		"/glyph/lato.png?weight=heavy":  http.StatusBadRequest,
		"/glyph/lato.png?style=oblique": http.StatusBadRequest,
		"/glyph/lato.png?size=4":        http.StatusBadRequest,
		"/glyph/lato.png?size=1000":     http.StatusBadRequest,
	} {
		resp, _ := get(t, srv.URL+url)
		assert.Equal(t, status, resp.StatusCode, url)
	}
}

func TestGlyphTextLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "specimen.web")
	defer teardown()
	//
	cr := &countingResolver{}
	srv := newTestServer(t, cr)
	resp, body := get(t, srv.URL+"/glyph/lato.png?size=256&text="+strings.Repeat("W", 20000))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "longer than")
	assert.Equal(t, int32(0), atomic.LoadInt32(&cr.calls), "no font should be resolved")
	//
	resp, _ = get(t, srv.URL+"/glyph/lato.png?text="+strings.Repeat("W", gfx.MaxSampleGraphemes))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGlyphCacheIsBounded(t *testing.T) {
	s := NewServer(page.Config{}, (&countingResolver{}).resolve)
	for i := 0; i < maxCachedGlyphs+10; i++ {
		s.storeGlyph(strings.Repeat("x", i+1), cachedGlyph{})
	}
	assert.Equal(t, maxCachedGlyphs, s.glyphs.Size())
	_, _, ok := s.cachedGlyph("x")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, _, ok = s.cachedGlyph(strings.Repeat("x", maxCachedGlyphs+10))
	assert.True(t, ok)
}

func TestGlyphCacheKeepsRecentlyUsed(t *testing.T) {
	s := NewServer(page.Config{}, (&countingResolver{}).resolve)
	for i := 0; i < maxCachedGlyphs; i++ {
		s.storeGlyph(strings.Repeat("x", i+1), cachedGlyph{})
	}
	_, _, ok := s.cachedGlyph("x")
	require.True(t, ok)
	s.storeGlyph("y", cachedGlyph{})
	_, _, ok = s.cachedGlyph("x")
	assert.True(t, ok, "entry used last should survive eviction")
	_, _, ok = s.cachedGlyph("xx")
	assert.False(t, ok, "least recently used entry should have been evicted")
	assert.Equal(t, maxCachedGlyphs, s.glyphs.Size())
}

func TestListenAndServeShutdown(t *testing.T) {
	s := NewServer(page.Config{}, (&countingResolver{}).resolve)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-done)
}
