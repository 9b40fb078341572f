/*
Command specimen renders and serves the font families page of the
styleguide, and inspects the fonts it shows.

    specimen render -o families.html     write the page
    specimen css                         write the stylesheet
    specimen serve --addr :8080          serve page, stylesheet and glyph previews
    specimen query 'span.font-weight'    query the page with CSS selectors or XPath
    specimen coverage lato               check glyph coverage of the character set
    specimen fonts lato                  list installed or Google fonts
    specimen glyph lato -w 700 -o a.png  render a glyph sample

Configuration is read from a YAML file, by default
$XDG_CONFIG_HOME/specimen/config.yaml. Recognized keys are app-key,
fontconfig, google-api-key, google-fonts-api and trace levels below
trace, e.g. trace.specimen.resources: Debug.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/specimen/core"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'specimen.cli'.
func tracer() tracing.Trace {
	return tracing.Select("specimen.cli")
}

var (
	configPath string
	traceLevel string
	conf       testconfig.Conf
)

var rootCmd = &cobra.Command{
	Use:   "specimen",
	Short: "Font families page of the styleguide",
	Long: `specimen renders the "Font Families" page of the styleguide: the primary
and secondary font families with their character sets and weights, and the
font size scale. It serves the page over HTTP and checks installed fonts
against the character set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, explicit := configPath, cmd.Flags().Changed("config")
		if path == "" {
			path = defaultConfigPath()
		}
		var err error
		if conf, err = loadConfig(path, explicit); err != nil {
			return err
		}
		return setupTracing(conf, traceLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.AddCommand(renderCmd, cssCmd, serveCmd, queryCmd, coverageCmd, fontsCmd, glyphCmd)
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		if e := core.AppError(nil); errors.As(err, &e) {
			pterm.Error.Println(e.UserMessage())
			os.Exit(e.ErrorCode())
		}
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
