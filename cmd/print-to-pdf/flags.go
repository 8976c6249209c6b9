package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// browserFlags holds browser startup flags.
type browserFlags struct {
	engine    string
	bin       string
	noSandbox bool
}

// convertFlags holds all flags for the conversion.
type convertFlags struct {
	common    commonFlags
	browser   browserFlags
	htmlPath  string
	out       string
	layout    string
	layoutSet bool // --layout given, even as --layout=
	scale     float64
	scaleSet  bool // --scale given; 0 is passed through, not treated as unset
	timeout   string
	logFile   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addBrowserFlags adds browser flags to a FlagSet.
func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.StringVar(&f.engine, "engine", "", "browser driver: rod, chromedp (default: rod)")
	fs.StringVar(&f.bin, "browser-bin", "", "Chrome/Chromium executable")
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (Docker/CI)")
}

// newConvertFlagSet declares the conversion flags on a fresh FlagSet.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("print-to-pdf", flag.ContinueOnError)

	fs.StringVar(&f.htmlPath, "html-path", "", "HTML file to print (required)")
	fs.StringVar(&f.out, "out", "", "PDF file to write (required)")
	fs.StringVar(&f.layout, "layout", "", "page layout: legal, slideshow (default: legal)")
	fs.Float64Var(&f.scale, "scale", 0, "print scale, overrides the layout's 1.0")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "overall browser timeout (e.g. 30s, 2m; default: none)")
	fs.StringVar(&f.logFile, "log-file", "", "also write JSON logs to this file")

	addCommonFlags(fs, &f.common)
	addBrowserFlags(fs, &f.browser)

	return fs
}

// parseConvertFlags parses conversion flags. Positional arguments are rejected.
func parseConvertFlags(args []string, env *Environment) (*convertFlags, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printConvertUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	f.layoutSet = fs.Changed("layout")
	f.scaleSet = fs.Changed("scale")

	return f, nil
}
