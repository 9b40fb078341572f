package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/npillmayer/specimen"
	"github.com/npillmayer/specimen/core"
	"github.com/npillmayer/specimen/core/font"
	"github.com/npillmayer/specimen/core/font/fontregistry"
	"github.com/npillmayer/specimen/core/locate/resources"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// --- fonts -----------------------------------------------------------------

var fontsGoogle bool

var fontsCmd = &cobra.Command{
	Use:   "fonts [prefix]",
	Short: "List installed fonts, or Google fonts, with a name prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		if fontsGoogle {
			return listGoogleFonts(cmd.Context(), prefix)
		}
		paths := resources.SystemFonts(prefix)
		if len(paths) == 0 {
			pterm.Info.Printfln("no installed fonts start with %q", prefix)
			return nil
		}
		data := pterm.TableData{{"Font file", "Style", "Weight"}}
		for _, p := range paths {
			style, weight := fontregistry.GuessStyleAndWeight(p)
			data = append(data, []string{p, style.String(), weight.String()})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	fontsCmd.Flags().BoolVar(&fontsGoogle, "google", false, "list fonts of the Google Fonts service")
}

func listGoogleFonts(ctx context.Context, prefix string) error {
	dir, err := resources.GoogleFonts(ctx, conf)
	if err != nil {
		return err
	}
	infos := dir.WithPrefix(prefix)
	if len(infos) == 0 {
		pterm.Info.Printfln("no Google fonts start with %q", prefix)
		return nil
	}
	data := pterm.TableData{{"Family", "Version", "Variants", "Subsets"}}
	for _, finfo := range infos {
		data = append(data, []string{
			finfo.Family,
			finfo.Version,
			strconv.Itoa(len(finfo.Variants)),
			strings.Join(finfo.Subsets, " "),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// --- coverage --------------------------------------------------------------

var coverageAll bool

var coverageCmd = &cobra.Command{
	Use:   "coverage [family…]",
	Short: "Check the glyph coverage of the character set",
	Long: `coverage resolves the faces of font families and checks that they have
glyphs for every character of the page's character set. Without arguments
the families of the page are checked. Only the regular face of a family is
checked, unless --all is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		families := specimen.Families()
		if len(args) > 0 {
			families = families[:0]
			for _, name := range args {
				families = append(families, familyByName(name))
			}
		}
		ctx := cmd.Context()
		data := pterm.TableData{{"Family", "Face", "Font", "Characters", "Missing"}}
		incomplete := 0
		for _, fam := range families {
			for _, face := range coverageFaces(fam) {
				f, err := resources.ResolveFont(ctx, conf, fam.DisplayName(), face.style, face.weight).Await(ctx)
				if err != nil {
					pterm.Warning.Printfln("%s %s: %s", fam.DisplayName(), face, core.UserMessage(err))
					incomplete++
					continue
				}
				cov := specimen.CheckCoverage(fam.Name, f, nil)
				missing := cov.MissingString()
				if !cov.Complete() {
					incomplete++
					missing = pterm.Red(missing)
				}
				data = append(data, []string{
					fam.DisplayName(), face.String(), cov.Font,
					strconv.Itoa(cov.Total - len(cov.Missing)) + "/" + strconv.Itoa(cov.Total),
					missing,
				})
			}
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		if incomplete > 0 {
			return core.Error(core.EMISSING, "%d faces lack glyphs or could not be found", incomplete)
		}
		pterm.Success.Println("all faces cover the character set")
		return nil
	},
}

func init() {
	coverageCmd.Flags().BoolVar(&coverageAll, "all", false, "check every face of a family, upright and italic")
}

type faceSpec struct {
	style  font.Style
	weight font.Weight
}

func (fs faceSpec) String() string {
	return font.VariantName(fs.weight, fs.style)
}

func coverageFaces(fam font.Family) []faceSpec {
	if !coverageAll {
		return []faceSpec{{font.Upright, font.Normal}}
	}
	var faces []faceSpec
	for _, w := range fam.Weights() {
		faces = append(faces, faceSpec{font.Upright, w}, faceSpec{font.Italic, w})
	}
	return faces
}

// familyByName returns a family of the page, or a family without faces
// for other names.
func familyByName(name string) font.Family {
	for _, fam := range specimen.Families() {
		if strings.EqualFold(fam.Name, name) {
			return fam
		}
	}
	return font.Family{Name: name, Faces: []font.Face{{Weight: font.Normal, Advised: true}}}
}
