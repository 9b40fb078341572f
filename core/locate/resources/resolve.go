package resources

import (
	"context"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/font/fontregistry"
)

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise delivers a font which is loaded in the background.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
	Await(ctx context.Context) (*font.ScalableFont, error)
}

type fontLoader struct {
	ch <-chan fontPlusErr
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.Await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.ScalableFont, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-loader.ch:
		return r.font, r.err
	}
}

// ResolveFont resolves a font of a family with a given style and weight.
// Fonts are searched for in the global font registry, as system fonts,
// with fontconfig and at the Google Fonts service, in this order. Fonts
// found are stored in the registry.
func ResolveFont(ctx context.Context, conf schuko.Configuration, family string,
	style font.Style, weight font.Weight) FontPromise {
	//
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		f, err := resolveFont(ctx, conf, family, style, weight)
		ch <- fontPlusErr{font: f, err: err}
	}(ch)
	return fontLoader{ch: ch}
}

func resolveFont(ctx context.Context, conf schuko.Configuration, family string,
	style font.Style, weight font.Weight) (*font.ScalableFont, error) {
	//
	name := fontregistry.NormalizeFontname(family, style, weight)
	registry := fontregistry.GlobalRegistry()
	if f, ok := registry.Font(name); ok {
		return f, nil
	}
	var f *font.ScalableFont
	var err error
	if fpath, ok := findSystemFont(family, style, weight); ok {
		tracer().Debugf("%s is a system font", name)
		f, err = font.LoadOpenTypeFont(fpath)
	}
	if f == nil && conf != nil {
		if desc, variant := findFontConfigFont(conf, regexp.QuoteMeta(family), style, weight); desc.Path != "" {
			tracer().Debugf("fontconfig found %s %s", desc.Family, variant)
			f, err = font.LoadOpenTypeFont(desc.Path)
		}
	}
	if f == nil && conf != nil {
		f, err = resolveGoogleFont(ctx, conf, family, style, weight)
	}
	if f == nil {
		if err == nil {
			err = core.Missing("font", name)
		}
		return nil, core.WrapError(err, core.EMISSING, "font not found: %s", name)
	}
	registry.StoreFont(name, f)
	return f, nil
}

func resolveGoogleFont(ctx context.Context, conf schuko.Configuration, family string,
	style font.Style, weight font.Weight) (*font.ScalableFont, error) {
	//
	dir, err := GoogleFonts(ctx, conf)
	if err != nil {
		return nil, err
	}
	finfo, variant, err := dir.FindGoogleFont(family, style, weight)
	if err != nil {
		return nil, err
	}
	fpath, err := CacheGoogleFont(ctx, conf, finfo, variant)
	if err != nil {
		return nil, err
	}
	return font.LoadOpenTypeFont(fpath)
}

// TypeCasePromise delivers a typecase which is prepared in the background.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
}

type typeCaseLoader struct {
	fonts FontPromise
	name  string
	size  float64
}

// TypeCase returns the typecase, waiting for the font to be loaded. If the
// font could not be loaded, a typecase of the fallback font is returned,
// together with the error.
func (loader typeCaseLoader) TypeCase() (*font.TypeCase, error) {
	_, err := loader.fonts.Font()
	tc, tcerr := fontregistry.GlobalRegistry().TypeCase(loader.name, loader.size)
	if err != nil {
		return tc, err
	}
	return tc, tcerr
}

// ResolveTypeCase resolves a font type case with a given size.
func ResolveTypeCase(ctx context.Context, conf schuko.Configuration, family string,
	style font.Style, weight font.Weight, size float64) TypeCasePromise {
	//
	return typeCaseLoader{
		fonts: ResolveFont(ctx, conf, family, style, weight),
		name:  fontregistry.NormalizeFontname(family, style, weight),
		size:  size,
	}
}

// --- System fonts ----------------------------------------------------------

var weightFileNames = map[font.Weight][]string{
	font.Thin:       {"Thin", "Hairline"},
	font.ExtraLight: {"ExtraLight", "Light"},
	font.Light:      {"Light"},
	font.Normal:     {"Regular"},
	font.Medium:     {"Medium"},
	font.SemiBold:   {"SemiBold"},
	font.Bold:       {"Bold"},
	font.ExtraBold:  {"ExtraBold"},
	font.Black:      {"Black", "Heavy"},
}

// SystemFontNames returns candidate file names of a font variant, following
// the usual naming of font files, e.g. "Lato-BoldItalic".
func SystemFontNames(family string, style font.Style, weight font.Weight) []string {
	base := strings.ReplaceAll(font.Family{Name: family}.DisplayName(), " ", "")
	var names []string
	for _, w := range weightFileNames[weight] {
		if style == font.Italic {
			if weight == font.Normal {
				w = ""
			}
			w += "Italic"
		}
		names = append(names, base+"-"+w)
	}
	return names
}

func findSystemFont(family string, style font.Style, weight font.Weight) (string, bool) {
	for _, name := range SystemFontNames(family, style, weight) {
		fpath, err := findfont.Find(name + ".ttf")
		if err != nil {
			continue
		}
		// findfont accepts partial matches
		base := strings.TrimSuffix(filepath.Base(fpath), filepath.Ext(fpath))
		if strings.EqualFold(base, name) {
			return fpath, true
		}
		tracer().Debugf("system font %s does not match %s", fpath, name)
	}
	return "", false
}

// SystemFonts lists the font files installed on the system with a base name
// starting with prefix, ignoring case.
func SystemFonts(prefix string) []string {
	index := trie.New()
	for _, fpath := range findfont.List() {
		base := strings.ToLower(filepath.Base(fpath))
		index.Add(base, fpath)
	}
	var paths []string
	for _, key := range index.PrefixSearch(strings.ToLower(prefix)) {
		if node, ok := index.Find(key); ok {
			paths = append(paths, node.Meta().(string))
		}
	}
	sort.Strings(paths)
	return paths
}
