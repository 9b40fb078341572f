package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/npillmayer/specimen"
	"github.com/npillmayer/specimen/backend/gfx"
	"github.com/npillmayer/specimen/backend/page"
	"github.com/npillmayer/specimen/backend/web"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/dimen"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/locate/resources"
	"github.com/npillmayer/specimen/core/parameters"
	"github.com/npillmayer/specimen/engine/glyphing/harfbuzz"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// --- Page options ----------------------------------------------------------

// pageFlags are the flags shared by commands which build the page.
type pageFlags struct {
	intent     string
	marginH    int
	marginV    int
	split      bool
	column     string
	measure    string
	characters string
	lang       string
	webFonts   bool
}

func (pf *pageFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&pf.intent, "intent", "", "intent of the family sections [primary|secondary|inverted]")
	fl.IntVar(&pf.marginH, "margin-h", 0, "horizontal margin of the family sections, step 1…8")
	fl.IntVar(&pf.marginV, "margin-v", 0, "vertical margin of the family sections, step 1…8")
	fl.BoolVar(&pf.split, "split", false, "split character lines wider than the column")
	fl.StringVar(&pf.column, "column", "480px", "column width for --split, absolute or rem")
	fl.StringVar(&pf.measure, "measure", "estimate", "measuring of character lines [estimate|shape]")
	fl.StringVar(&pf.characters, "characters", "", "file with character lines, replacing the default set")
	fl.StringVar(&pf.lang, "lang", "en", "language of the document")
	fl.BoolVar(&pf.webFonts, "web-fonts", false, "load the families from Google Fonts")
}

func (pf *pageFlags) config(ctx context.Context) (page.Config, error) {
	var pconf page.Config
	intent, err := parameters.ParseIntent(pf.intent)
	if err != nil {
		return pconf, core.WrapError(err, core.EINVALID, "invalid intent %q", pf.intent)
	}
	pconf.Props = parameters.Props{MarginH: pf.marginH, MarginV: pf.marginV, Intent: intent}
	pconf.Lang = language.English
	if pf.lang != "" {
		if pconf.Lang, err = language.Parse(pf.lang); err != nil {
			return pconf, core.WrapError(err, core.EINVALID, "invalid language %q", pf.lang)
		}
	}
	pconf.WebFonts = pf.webFonts
	regs := parameters.NewRegisters()
	regs.Push(parameters.P_LANGUAGE, pconf.Lang)
	if pf.split {
		w, unit, err := dimen.ParseDimen(pf.column)
		if err != nil {
			return pconf, core.WrapError(err, core.EINVALID, "invalid column width %q", pf.column)
		}
		if unit == dimen.Percent {
			// no containing block to resolve against
			return pconf, core.Error(core.EINVALID, "column width %q must be absolute or rem", pf.column)
		}
		regs.Push(parameters.P_SPLITPOLICY, parameters.SplitByWidth)
		regs.Push(parameters.P_COLUMNWIDTH, dimen.Resolve(w, unit, dimen.RootFontSize, dimen.RootFontSize))
	}
	pconf.Options = append(pconf.Options, specimen.WithRegisters(regs))
	switch pf.measure {
	case "", "estimate":
	case "shape":
		m, err := shapingMeasurer(ctx)
		if err != nil {
			return pconf, err
		}
		pconf.Options = append(pconf.Options, specimen.WithMeasurer(m))
	default:
		return pconf, core.Error(core.EINVALID, "unknown measuring %q", pf.measure)
	}
	if pf.characters != "" {
		cs, err := readCharacters(pf.characters)
		if err != nil {
			return pconf, err
		}
		pconf.Options = append(pconf.Options, specimen.WithCharacters(cs))
	}
	return pconf, nil
}

// shapingMeasurer measures character lines by shaping them with the
// primary family's regular face.
func shapingMeasurer(ctx context.Context) (*harfbuzz.Shaper, error) {
	fam := specimen.Lato()
	f, err := resources.ResolveFont(ctx, conf, fam.DisplayName(), font.Upright, font.Normal).Await(ctx)
	if err != nil {
		return nil, err
	}
	tracer().Infof("measuring character lines with %s", f.Fontname)
	return harfbuzz.NewShaper(f), nil
}

// readCharacters reads a character set, one line per character line.
// Empty lines are skipped.
func readCharacters(path string) (specimen.CharacterSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open character set %s", path)
	}
	defer f.Close()
	var cs specimen.CharacterSet
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); strings.TrimSpace(line) != "" {
			cs = append(cs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read character set %s", path)
	}
	return cs, nil
}

func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create %s", path)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// --- render ----------------------------------------------------------------

var (
	renderFlags  pageFlags
	renderOutput string
	renderTitle  string
	renderCSS    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the font families page as an HTML document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pconf, err := renderFlags.config(cmd.Context())
		if err != nil {
			return err
		}
		pconf.Title = renderTitle
		pconf.StyleHref = renderCSS
		out, err := createOutput(renderOutput)
		if err != nil {
			return err
		}
		if err := page.Write(out, pconf); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return core.WrapError(err, core.EINVALID, "cannot write %s", renderOutput)
		}
		if renderOutput != "" && renderOutput != "-" {
			pterm.Success.Printfln("page written to %s", renderOutput)
		}
		return nil
	},
}

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "document title")
	renderCmd.Flags().StringVar(&renderCSS, "link-css", "", "link the stylesheet at this URL instead of embedding it")
}

// --- css -------------------------------------------------------------------

var cssOutput string

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Write the stylesheet of the page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := createOutput(cssOutput)
		if err != nil {
			return err
		}
		defer out.Close()
		_, err = io.WriteString(out, specimen.Stylesheet().String()+"\n")
		return err
	},
}

func init() {
	cssCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "output file (default stdout)")
}

// --- serve -----------------------------------------------------------------

var (
	serveFlags pageFlags
	serveAddr  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page, its stylesheet and glyph previews over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		pconf, err := serveFlags.config(ctx)
		if err != nil {
			return err
		}
		srv := web.NewServer(pconf, web.ResolveWith(conf))
		pterm.Info.Printfln("serving on %s, quit with <ctrl>C", serveAddr)
		return srv.ListenAndServe(ctx, serveAddr)
	},
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "address to listen on")
}

// --- glyph -----------------------------------------------------------------

var (
	glyphWeight int
	glyphItalic bool
	glyphSize   int
	glyphText   string
	glyphOutput string
)

var glyphCmd = &cobra.Command{
	Use:   "glyph <family>",
	Short: "Render a glyph sample of a font family to an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight := font.Weight(glyphWeight)
		if !weight.Valid() {
			return core.Error(core.EINVALID, "invalid font weight %d", glyphWeight)
		}
		style := font.Upright
		if glyphItalic {
			style = font.Italic
		}
		if glyphOutput == "" {
			glyphOutput = strings.ToLower(strings.ReplaceAll(args[0], " ", "")) + ".png"
		}
		format, err := gfx.ParseFormat(filepath.Ext(glyphOutput))
		if err != nil {
			return err
		}
		fam := font.Family{Name: args[0]}
		tc, err := resources.ResolveTypeCase(cmd.Context(), conf, fam.DisplayName(), style, weight,
			float64(glyphSize)).TypeCase()
		if err != nil {
			pterm.Warning.Printfln("using fallback font: %s", core.UserMessage(err))
		}
		img, err := gfx.Render(tc, gfx.Sample{Text: glyphText, Padding: glyphSize / 8})
		if err != nil {
			return err
		}
		out, err := createOutput(glyphOutput)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := gfx.Encode(out, img, format); err != nil {
			return err
		}
		pterm.Success.Printfln("glyph sample written to %s", glyphOutput)
		return nil
	},
}

func init() {
	fl := glyphCmd.Flags()
	fl.IntVarP(&glyphWeight, "weight", "w", int(font.Normal), "font weight 100…900")
	fl.BoolVar(&glyphItalic, "italic", false, "italic style")
	fl.IntVar(&glyphSize, "size", web.DefaultGlyphSize, "font size in pixels")
	fl.StringVar(&glyphText, "text", specimen.GlyphSample, "sample text")
	fl.StringVarP(&glyphOutput, "output", "o", "", "output file (png, bmp or tiff; default <family>.png)")
}
