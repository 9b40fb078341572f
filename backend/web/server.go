/*
Package web serves the font families page over HTTP.

Routes

    GET /                      the page, linking /styles.css
    GET /styles.css            the stylesheet
    GET /glyph/{family}.{ext}  a rendered glyph sample (png, bmp, tiff);
                               query parameters weight, style, size and text
    GET /api/families          the font families as JSON
    GET /api/sizes             the font size scale as JSON
    GET /api/characters        the character set as JSON
    GET /api/coverage/{family} glyph coverage of the family's regular face

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen"
	"github.com/npillmayer/specimen/backend/gfx"
	"github.com/npillmayer/specimen/backend/page"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/locate/resources"
)

// tracer traces with key 'specimen.web'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.web")
}

// FontResolver produces a typecase for a font variant. It may return a
// fallback typecase together with an error.
type FontResolver func(ctx context.Context, family string, style font.Style,
	weight font.Weight, size float64) (*font.TypeCase, error)

// ResolveWith returns a font resolver which uses the resources package
// with a given configuration.
func ResolveWith(conf schuko.Configuration) FontResolver {
	return func(ctx context.Context, family string, style font.Style, weight font.Weight,
		size float64) (*font.TypeCase, error) {
		//
		return resources.ResolveTypeCase(ctx, conf, family, style, weight, size).TypeCase()
	}
}

// Glyph sample limits.
const (
	DefaultGlyphSize = 64
	MinGlyphSize     = 8
	MaxGlyphSize     = 256
	maxCachedGlyphs  = 128
)

// Server holds the routes and state of the page server.
type Server struct {
	router  chi.Router
	page    page.Config
	resolve FontResolver
	mx      sync.Mutex
	glyphs  *linkedhashmap.Map // rendered samples, least recently used first
}

// NewServer creates a server for a page configuration. The page links its
// stylesheet at /styles.css.
func NewServer(pconf page.Config, resolve FontResolver) *Server {
	pconf.StyleHref = "/styles.css"
	s := &Server{
		page:    pconf,
		resolve: resolve,
		glyphs:  linkedhashmap.New(),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/", s.servePage)
	r.Get("/styles.css", s.serveStylesheet)
	r.Get("/glyph/{family}.{ext}", s.serveGlyph)
	r.Route("/api", func(r chi.Router) {
		r.Get("/families", serveJSON(func() interface{} { return specimen.Families() }))
		r.Get("/sizes", serveJSON(func() interface{} { return specimen.Sizes() }))
		r.Get("/characters", serveJSON(func() interface{} { return specimen.Characters() }))
		r.Get("/coverage/{family}", s.serveCoverage)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		tracer().Infof("serving font families page on %s", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return core.WrapError(err, core.ECONNECTION, "cannot serve on %s", addr)
	case <-ctx.Done():
	}
	tracer().Infof("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// --- Handlers --------------------------------------------------------------

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := page.Write(&buf, s.page); err != nil {
		tracer().Errorf("page: %v", err)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) serveStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(specimen.Stylesheet().String()))
}

func serveJSON(data func() interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(data()); err != nil {
			tracer().Errorf("encoding JSON for %s: %v", r.URL.Path, err)
		}
	}
}

func findFamily(name string) (font.Family, bool) {
	for _, fam := range specimen.Families() {
		if strings.EqualFold(fam.Name, name) {
			return fam, true
		}
	}
	return font.Family{}, false
}

type glyphRequest struct {
	family font.Family
	style  font.Style
	weight font.Weight
	size   int
	text   string
	format gfx.Format
}

func (g glyphRequest) key() string {
	return fmt.Sprintf("%s|%d|%d|%d|%s|%s", g.family.Name, g.style, g.weight, g.size, g.format, g.text)
}

func parseGlyphRequest(r *http.Request) (glyphRequest, int, error) {
	var g glyphRequest
	var ok bool
	if g.family, ok = findFamily(chi.URLParam(r, "family")); !ok {
		return g, http.StatusNotFound, core.Missing("font family", chi.URLParam(r, "family"))
	}
	var err error
	if g.format, err = gfx.ParseFormat(chi.URLParam(r, "ext")); err != nil {
		return g, http.StatusNotFound, err
	}
	q := r.URL.Query()
	g.weight = font.Normal
	if w := q.Get("weight"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || !font.Weight(n).Valid() {
			return g, http.StatusBadRequest, core.Error(core.EINVALID, "invalid font weight: %s", w)
		}
		g.weight = font.Weight(n)
	}
	switch q.Get("style") {
	case "", "normal":
		g.style = font.Upright
	case "italic":
		g.style = font.Italic
	default:
		return g, http.StatusBadRequest, core.Error(core.EINVALID, "invalid font style: %s", q.Get("style"))
	}
	g.size = DefaultGlyphSize
	if sz := q.Get("size"); sz != "" {
		n, err := strconv.Atoi(sz)
		if err != nil || n < MinGlyphSize || n > MaxGlyphSize {
			return g, http.StatusBadRequest, core.Error(core.EINVALID,
				"font size must be %d…%d px: %s", MinGlyphSize, MaxGlyphSize, sz)
		}
		g.size = n
	}
	g.text = specimen.GlyphSample
	if t := q.Get("text"); t != "" {
		if err := gfx.CheckSampleText(t); err != nil {
			return g, http.StatusBadRequest, err
		}
		g.text = t
	}
	return g, http.StatusOK, nil
}

func (s *Server) serveGlyph(w http.ResponseWriter, r *http.Request) {
	g, status, err := parseGlyphRequest(r)
	if err != nil {
		http.Error(w, core.UserMessage(err), status)
		return
	}
	key := g.key()
	img, fallback, ok := s.cachedGlyph(key)
	if !ok {
		tc, err := s.resolve(r.Context(), g.family.DisplayName(), g.style, g.weight, float64(g.size))
		if tc == nil {
			tracer().Errorf("no typecase for %s: %v", key, err)
			http.Error(w, "font not available", http.StatusServiceUnavailable)
			return
		}
		fallback = err != nil
		if fallback {
			tracer().Infof("rendering %s with fallback font: %v", key, err)
		}
		sample, err := gfx.Render(tc, gfx.Sample{Text: g.text, Padding: g.size / 8})
		if err != nil {
			http.Error(w, core.UserMessage(err), http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := gfx.Encode(&buf, sample, g.format); err != nil {
			http.Error(w, core.UserMessage(err), http.StatusInternalServerError)
			return
		}
		img = buf.Bytes()
		s.storeGlyph(key, cachedGlyph{img: img, fallback: fallback})
	}
	w.Header().Set("Content-Type", g.format.ContentType())
	if fallback {
		w.Header().Set("X-Font-Fallback", "true")
	}
	_, _ = w.Write(img)
}

type cachedGlyph struct {
	img      []byte
	fallback bool
}

func (s *Server) cachedGlyph(key string) ([]byte, bool, bool) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if v, found := s.glyphs.Get(key); found {
		// move to the end of the eviction order
		s.glyphs.Remove(key)
		s.glyphs.Put(key, v)
		c := v.(cachedGlyph)
		return c.img, c.fallback, true
	}
	return nil, false, false
}

func (s *Server) storeGlyph(key string, c cachedGlyph) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.glyphs.Put(key, c)
	for s.glyphs.Size() > maxCachedGlyphs {
		oldest := s.glyphs.Keys()[0]
		s.glyphs.Remove(oldest)
	}
}

func (s *Server) serveCoverage(w http.ResponseWriter, r *http.Request) {
	fam, ok := findFamily(chi.URLParam(r, "family"))
	if !ok {
		http.Error(w, "unknown font family", http.StatusNotFound)
		return
	}
	tc, err := s.resolve(r.Context(), fam.DisplayName(), font.Upright, font.Normal, DefaultGlyphSize)
	if err != nil || tc == nil {
		http.Error(w, core.UserMessage(err), http.StatusServiceUnavailable)
		return
	}
	cov := specimen.CheckCoverage(fam.Name, tc.ScalableFontParent(), nil)
	serveJSON(func() interface{} { return cov })(w, r)
}
