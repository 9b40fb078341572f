package resources

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/font/fontregistry"
)

// GoogleFontInfo is an entry of the Google Fonts directory.
type GoogleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []GoogleFontInfo `json:"items"`
}

// GoogleFontsDirectory is the list of fonts offered by the Google Fonts
// service, indexed by lowercase family name.
type GoogleFontsDirectory struct {
	items []GoogleFontInfo
	index *trie.Trie
}

// GoogleFontsAPI is the public endpoint of the Google Fonts developer API.
const GoogleFontsAPI = `https://www.googleapis.com/webfonts/v1/webfonts`

// GoogleFontsCSS is the endpoint of the Google Fonts CSS API, version 2.
const GoogleFontsCSS = `https://fonts.googleapis.com/css2`

// ParseGoogleFontsDirectory reads the JSON response of the Google Fonts
// developer API.
func ParseGoogleFontsDirectory(r io.Reader) (*GoogleFontsDirectory, error) {
	var list googleFontsList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, core.WrapError(err, core.EINVALID,
			"could not decode fonts-list from Google font service")
	}
	dir := &GoogleFontsDirectory{items: list.Items, index: trie.New()}
	for i, finfo := range list.Items {
		dir.index.Add(strings.ToLower(finfo.Family), i)
	}
	tracer().Debugf("Google Fonts directory holds %d families", len(list.Items))
	return dir, nil
}

// FetchGoogleFontsDirectory requests the font list from a Google Fonts API
// endpoint.
func FetchGoogleFontsDirectory(ctx context.Context, endpoint, apikey string) (*GoogleFontsDirectory, error) {
	if apikey == "" {
		return nil, core.Error(core.EMISSING,
			`Google Fonts API-key must be set in configuration or as GOOGLE_API_KEY in environment;
      please refer to https://developers.google.com/fonts/docs/developer_api`)
	}
	values := url.Values{
		"sort": []string{"alpha"},
		"key":  []string{apikey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return nil, core.WrapError(err, core.ECONFIG, "invalid Google Fonts endpoint: %s", endpoint)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		tracer().Errorf("Google Fonts API request not OK: %s", err.Error())
		return nil, core.WrapError(err, core.ECONNECTION,
			"could not get fonts-directory from Google font service")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		tracer().Errorf("Google Fonts API request not OK: %v", resp.Status)
		return nil, core.Error(core.ECONNECTION,
			"could not get fonts-directory from Google font service: %v", resp.Status)
	}
	return ParseGoogleFontsDirectory(resp.Body)
}

var loadGoogleFontsDir sync.Once
var googleFontsDirectory *GoogleFontsDirectory
var googleFontsLoadError error

// GoogleFonts returns the Google Fonts directory, loading it on first use.
// Keys 'google-api-key' and 'google-fonts-api' of conf are respected.
func GoogleFonts(ctx context.Context, conf schuko.Configuration) (*GoogleFontsDirectory, error) {
	loadGoogleFontsDir.Do(func() {
		apikey := conf.GetString("google-api-key")
		if apikey == "" {
			apikey = os.Getenv("GOOGLE_API_KEY")
		}
		endpoint := conf.GetString("google-fonts-api")
		if endpoint == "" {
			endpoint = GoogleFontsAPI
		}
		googleFontsDirectory, googleFontsLoadError = FetchGoogleFontsDirectory(ctx, endpoint, apikey)
	})
	return googleFontsDirectory, googleFontsLoadError
}

// Len returns the number of families in the directory.
func (dir *GoogleFontsDirectory) Len() int {
	return len(dir.items)
}

// Family returns the entry for a family name, ignoring case.
func (dir *GoogleFontsDirectory) Family(name string) (GoogleFontInfo, bool) {
	node, ok := dir.index.Find(strings.ToLower(name))
	if !ok {
		return GoogleFontInfo{}, false
	}
	return dir.items[node.Meta().(int)], true
}

// WithPrefix returns all entries with a family name starting with prefix,
// ignoring case, sorted by family name.
func (dir *GoogleFontsDirectory) WithPrefix(prefix string) []GoogleFontInfo {
	keys := dir.index.PrefixSearch(strings.ToLower(prefix))
	sort.Strings(keys)
	infos := make([]GoogleFontInfo, 0, len(keys))
	for _, k := range keys {
		if node, ok := dir.index.Find(k); ok {
			infos = append(infos, dir.items[node.Meta().(int)])
		}
	}
	return infos
}

// Descriptors converts directory entries to font descriptors.
func Descriptors(infos []GoogleFontInfo) []font.Descriptor {
	descs := make([]font.Descriptor, len(infos))
	for i, finfo := range infos {
		descs[i] = font.Descriptor{Family: finfo.Family, Variants: finfo.Variants}
	}
	return descs
}

// FindGoogleFont searches the directory for a family and returns the
// variant matching style and weight best.
func (dir *GoogleFontsDirectory) FindGoogleFont(family string, style font.Style, weight font.Weight) (
	GoogleFontInfo, string, error) {
	//
	finfo, ok := dir.Family(family)
	if !ok {
		return GoogleFontInfo{}, "", core.Missing("Google font", family)
	}
	_, variant, confidence := fontregistry.ClosestMatch(Descriptors([]GoogleFontInfo{finfo}),
		regexp.QuoteMeta(family), style, weight)
	if confidence == fontregistry.NoConfidence {
		return finfo, "", core.Missing("Google font variant",
			family+" "+font.VariantName(weight, style))
	}
	return finfo, variant, nil
}

// CacheGoogleFont downloads a variant of a Google font to the user's cache
// directory, if it is not already present, and returns the file path.
func CacheGoogleFont(ctx context.Context, conf schuko.Configuration, finfo GoogleFontInfo, variant string) (string, error) {
	fileurl, ok := finfo.Files[variant]
	if !ok {
		return "", core.Missing("Google font variant", finfo.Family+" "+variant)
	}
	cachedir, err := CacheDirPath(conf, "fonts")
	if err != nil {
		return "", err
	}
	filename := strings.ReplaceAll(finfo.Family, " ", "") + "-" + variant + path.Ext(fileurl)
	filepath := path.Join(cachedir, filename)
	if _, err := os.Stat(filepath); err == nil {
		tracer().Debugf("font %s found in cache", filename)
		return filepath, nil
	}
	tracer().Infof("downloading %s", fileurl)
	if err := DownloadCachedFile(ctx, filepath, fileurl); err != nil {
		os.Remove(filepath)
		return "", err
	}
	return filepath, nil
}

// ListGoogleFonts produces a listing of fonts from the directory with
// font-family names matching a given pattern.
func ListGoogleFonts(dir *GoogleFontsDirectory, pattern string) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot list Google fonts: invalid pattern: %v", err)
		return
	}
	tracer().Infof("%d fonts in list", len(dir.items))
	tracer().Infof("======================================")
	for i, finfo := range dir.items {
		if r.MatchString(finfo.Family) {
			tracer().Infof("[%4d] %-20s: %s", i, finfo.Family, finfo.Version)
			tracer().Infof("       subsets: %v", finfo.Subsets)
		}
	}
}

// --- CSS API ---------------------------------------------------------------

// googleServedWeights lists the weights the Google Fonts service has for
// families which do not come in all nine weights. The CSS2 API rejects a
// request for a weight a family does not have.
var googleServedWeights = map[string][]font.Weight{
	"lato": {font.Thin, font.Light, font.Normal, font.Bold, font.Black},
}

// ServedWeights returns the weights to request from the Google Fonts service
// for a family, in ascending order. Weights the service does not have are
// replaced by the ones a browser would fall back to.
func ServedWeights(fam font.Family) []font.Weight {
	weights := fam.Weights()
	served, ok := googleServedWeights[strings.ToLower(fam.Name)]
	if !ok {
		return weights
	}
	seen := make(map[font.Weight]bool, len(weights))
	var result []font.Weight
	for _, w := range weights {
		fw := fontregistry.FallbackWeight(w, served)
		if !seen[fw] {
			seen[fw] = true
			result = append(result, fw)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// StylesheetURL returns the URL of a Google Fonts stylesheet loading the
// served weights of families, upright and italic, e.g.
//
//    https://fonts.googleapis.com/css2?family=Lato:ital,wght@0,100;0,700;1,100;1,700&display=swap
//
func StylesheetURL(families ...font.Family) string {
	var b strings.Builder
	b.WriteString(GoogleFontsCSS)
	for i, fam := range families {
		if i == 0 {
			b.WriteString("?family=")
		} else {
			b.WriteString("&family=")
		}
		b.WriteString(strings.ReplaceAll(fam.DisplayName(), " ", "+"))
		weights := ServedWeights(fam)
		if len(weights) == 0 {
			continue
		}
		b.WriteString(":ital,wght@")
		sep := ""
		for _, ital := range []string{"0", "1"} {
			for _, w := range weights {
				b.WriteString(sep + ital + "," + w.String())
				sep = ";"
			}
		}
	}
	if len(families) > 0 {
		b.WriteString("&display=swap")
	}
	return b.String()
}
