package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/specimen/core"
	"gopkg.in/yaml.v3"
)

// Tracer keys of the packages of this module.
var traceAreas = []string{
	"specimen.page",
	"specimen.font",
	"specimen.resources",
	"specimen.dom",
	"specimen.css",
	"specimen.text",
	"specimen.gfx",
	"specimen.web",
	"specimen.cli",
}

func defaultConfig() testconfig.Conf {
	return testconfig.Conf{
		"app-key":         "specimen",
		"tracing.adapter": "go",
		"trace.root":      "Error",
	}
}

// defaultConfigPath is $XDG_CONFIG_HOME/specimen/config.yaml or the
// platform equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "specimen", "config.yaml")
}

// loadConfig reads a YAML configuration file. Nested keys are flattened
// with dots, so
//
//    trace:
//      specimen.web: Debug
//
// yields key "trace.specimen.web". A missing file at the default location
// is not an error.
func loadConfig(path string, explicit bool) (testconfig.Conf, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
		return conf, core.WrapError(err, core.ECONFIG, "cannot open configuration %s", path)
	}
	defer f.Close()
	if err := readConfig(f, conf); err != nil {
		return conf, core.WrapError(err, core.ECONFIG, "cannot read configuration %s", path)
	}
	return conf, nil
}

func readConfig(r io.Reader, conf testconfig.Conf) error {
	var m map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		return err
	}
	flatten("", m, conf)
	return nil
}

func flatten(prefix string, m map[string]interface{}, conf testconfig.Conf) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]interface{}:
			flatten(key, x, conf)
		case nil:
			conf[key] = ""
		case []interface{}:
			parts := make([]string, len(x))
			for i, p := range x {
				parts[i] = fmt.Sprintf("%v", p)
			}
			conf[key] = strings.Join(parts, ",")
		default:
			conf[key] = v
		}
	}
}

// setupTracing installs trace2go with the Go log adapter. level, if
// non-empty, overrides the level of every tracer of this module.
func setupTracing(conf testconfig.Conf, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if level != "" {
		conf["trace.root"] = level
		for _, area := range traceAreas {
			conf["trace."+area] = level
		}
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.ECONFIG, "cannot configure tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
