package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds overrides for the site configuration.
// Empty values leave the configured value in place.
type siteFlags struct {
	content  string
	static   string
	output   string
	template string
	style    string
	basePath string
	engine   string
	themeDir string
	workers  int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	site   siteFlags
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common  commonFlags
	site    siteFlags
	addr    string
	noBuild bool
}

// initFlags holds all flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds site configuration overrides to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "markdown content directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (emptied on build)")
	fs.StringVarP(&f.template, "template", "t", "", "page template name or path")
	fs.StringVarP(&f.style, "style", "s", "", "CSS style name or path")
	fs.StringVar(&f.basePath, "base-path", "", "prefix for root-relative links, e.g. /blog/")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark, gomarkdown")
	fs.StringVar(&f.themeDir, "theme", "", "theme directory with styles/ and templates/")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseBuildFlags parses flags for the build command.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", w, printBuildUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses flags for the serve command.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", w, printServeUsage)
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default from config, :8888)")
	fs.BoolVar(&f.noBuild, "no-build", false, "serve the output directory without rebuilding")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses flags for the init command.
func parseInitFlags(args []string, w io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newFlagSet("init", w, printInitUsage)
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing config file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether args request verbose output before
// flags are parsed, so startup messages can be logged.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
