package fontregistry

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core/font"
)

// Registry is a type for holding information about loaded fonts for a
// specimen renderer.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns a stored font, if present.
func (fr *Registry) Font(normalizedName string) (*font.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[normalizedName]
	return f, ok
}

// TypeCase returns a concrete typecase with a given font and size.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a suitable font has previously been stored under key
// `normalizedName`, a typecase will be derived from this font.
//
// If no typecase can be produced, TypeCase will derive one from the
// fallback font and return it, together with an error.
//
func (fr *Registry) TypeCase(normalizedName string, size float64) (*font.TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", normalizedName, size)
	tname := appendSize(normalizedName, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found font %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[normalizedName]; ok {
		t, err := f.PrepareCase(size)
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches at %.2f", normalizedName, size)
		fr.typecases[tname] = t
		return t, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := errors.New("font " + normalizedName + " not found in registry")
	//
	// store typecase from fallback font, if not present yet, and return it
	fname := "fallback"
	tname = appendSize(fname, size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := font.FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size)
	fr.fonts[fname] = f
	fr.typecases[tname] = t
	return t, err
}

// Names returns the normalized names of all stored fonts, sorted.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Infof("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname creates a registry key from a font name, a style and a
// weight, e.g. "Lato" + italic + 700 => "lato-italic-700". File extensions
// are stripped, spaces replaced by underscores.
func NormalizeFontname(fname string, style font.Style, weight font.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	if style == font.Italic {
		fname += "-italic"
	}
	if weight != font.Normal && weight.Valid() {
		fname += "-" + weight.String()
	}
	return fname
}

func appendSize(fname string, size float64) string {
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name, e.g. "Lato-BlackItalic.ttf" => (italic, 900).
func GuessStyleAndWeight(fontfilename string) (font.Style, font.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	style := font.Upright
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		style = font.Italic
	}
	s := strings.Split(fontfilename, "-")
	variant := strings.TrimSuffix(s[len(s)-1], "italic")
	if len(s) > 1 {
		switch variant {
		case "hairline", "thin":
			return style, font.Thin
		case "extralight", "xlight":
			return style, font.ExtraLight
		case "light":
			return style, font.Light
		case "", "normal", "regular", "r", "text", "book":
			return style, font.Normal
		case "medium":
			return style, font.Medium
		case "semibold":
			return style, font.SemiBold
		case "bold", "b":
			return style, font.Bold
		case "extrabold", "xbold":
			return style, font.ExtraBold
		case "black", "heavy":
			return style, font.Black
		}
	}
	weight := font.Normal
	if strings.Contains(fontfilename, "light") {
		weight = font.Light
	}
	if strings.Contains(fontfilename, "bold") {
		weight = font.Bold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight.
func Matches(fontfilename, pattern string, style font.Style, weight font.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	tracer().Debugf("basename of font = %s", basename)
	if !strings.Contains(basename, strings.ToLower(pattern)) {
		return false
	}
	s, w := GuessStyleAndWeight(fontfilename)
	return s == style && w == weight
}

// MatchConfidence is a type for expressing the confidence level of font matching.
type MatchConfidence int

const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font desriptors and returns the closest match
// for a given set of parametesrs.
// If no variant matches, returns `NoConfidence`.
//
func ClosestMatch(fdescs []font.Descriptor, pattern string, style font.Style,
	weight font.Weight) (match font.Descriptor, variant string, confidence MatchConfidence) {
	//
	r, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		tracer().Errorf("invalid font name pattern")
		return
	}
	for _, fdesc := range fdescs {
		if !r.MatchString(strings.ToLower(fdesc.Family)) {
			continue
		}
		for _, v := range fdesc.Variants {
			s := MatchStyle(v, style)
			w := MatchWeight(v, weight)
			if s == NoConfidence || w == NoConfidence {
				continue
			}
			if (s+w)/2 > confidence {
				confidence = (s + w) / 2
				variant = v
				match = fdesc
			}
		}
	}
	return
}

// ---------------------------------------------------------------------------

// MatchStyle trys to match a font-variant to a given style.
// Variant names follow the Google Fonts convention ("700italic").
func MatchStyle(variantName string, style font.Style) MatchConfidence {
	variantName = strings.ToLower(variantName)
	italic := strings.Contains(variantName, "italic")
	oblique := strings.Contains(variantName, "obliq")
	switch style {
	case font.Upright:
		if italic || oblique {
			return NoConfidence
		}
		return PerfectConfidence
	case font.Italic:
		if italic {
			return PerfectConfidence
		}
		if oblique {
			return HighConfidence
		}
	}
	return NoConfidence
}

// MatchWeight trys to match a font-variant to a given weight.
func MatchWeight(variantName string, weight font.Weight) MatchConfidence {
	variantName = strings.ToLower(variantName)
	variantName = strings.TrimSuffix(variantName, "italic")
	variantName = strings.TrimSuffix(variantName, "oblique")
	var vw font.Weight
	switch variantName {
	case "", "regular", "normal", "text":
		vw = font.Normal
	case "light":
		vw = font.Light
	case "bold":
		vw = font.Bold
	case "black":
		vw = font.Black
	default:
		var n int
		if _, err := fmt.Sscanf(variantName, "%d", &n); err != nil {
			return NoConfidence
		}
		vw = font.Weight(n)
	}
	switch d := vw - weight; {
	case d == 0:
		return PerfectConfidence
	case d == 100 || d == -100:
		return HighConfidence
	case d == 200 || d == -200:
		return LowConfidence
	}
	return NoConfidence
}

// FallbackWeight selects from a set of available weights the one a browser
// would use for a wanted weight (CSS Fonts Level 4, font matching). Returns
// want if available is empty.
func FallbackWeight(want font.Weight, available []font.Weight) font.Weight {
	if len(available) == 0 {
		return want
	}
	sorted := append([]font.Weight(nil), available...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	lighter := func(limit font.Weight) (font.Weight, bool) { // heaviest weight ≤ limit
		for i := len(sorted) - 1; i >= 0; i-- {
			if sorted[i] <= limit {
				return sorted[i], true
			}
		}
		return 0, false
	}
	heavier := func(from, limit font.Weight) (font.Weight, bool) { // lightest weight in [from,limit]
		for _, w := range sorted {
			if w >= from && w <= limit {
				return w, true
			}
		}
		return 0, false
	}
	var w font.Weight
	var ok bool
	switch {
	case want >= 400 && want <= 500:
		if w, ok = heavier(want, 500); ok {
			return w
		}
		if w, ok = lighter(want); ok {
			return w
		}
		w, _ = heavier(want, font.Weight(1000))
	case want < 400:
		if w, ok = lighter(want); ok {
			return w
		}
		w, _ = heavier(want, font.Weight(1000))
	default:
		if w, ok = heavier(want, font.Weight(1000)); ok {
			return w
		}
		w, _ = lighter(want)
	}
	return w
}
