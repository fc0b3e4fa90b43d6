package main

import (
	"fmt"
	"io"
	"strings"

	mdsite "github.com/alnah/go-mdsite"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site from markdown (default)")
	fmt.Fprintln(w, "  serve      Build and serve the site locally")
	fmt.Fprintln(w, "  init       Write a default mdsite.yaml")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by build and serve.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --content <dir>       Markdown content directory (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static files directory (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, emptied on build (default: public)")
	fmt.Fprintln(w, "      --base-path <path>    Prefix for root-relative links, e.g. /blog/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintf(w, "  -e, --engine <name>       Markdown engine: %s\n", strings.Join(mdsite.Engines(), ", "))
	fmt.Fprintln(w, "  -t, --template <s>        Page template name or path")
	fmt.Fprintln(w, "  -s, --style <s>           CSS style name or path")
	fmt.Fprintln(w, "      --theme <dir>         Theme directory with styles/ and templates/")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Empty the output directory, copy static files, and convert every")
	fmt.Fprintln(w, ".md and .markdown file into an .html page at the same relative path.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w)
	printEnvVars(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, then serve the output directory under the base path.")
	fmt.Fprintln(w, "Stops gracefully on Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default: :8888)")
	fmt.Fprintln(w, "      --no-build            Serve the existing output directory")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration to path (default: mdsite.yaml).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// printEnvVars lists the supported environment variables.
func printEnvVars(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_STATIC_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_BASE_PATH, MDSITE_TEMPLATE, MDSITE_STYLE, MDSITE_ENGINE,")
	fmt.Fprintln(w, "  MDSITE_THEME_DIR, MDSITE_WORKERS, MDSITE_ADDR")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a command, or the main usage without arguments.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version", "help":
		printUsage(env.Stdout)
	default:
		return fmt.Errorf("%w: unknown help topic %q", ErrUsage, args[0])
	}
	return nil
}
