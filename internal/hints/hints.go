// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and "mdsite init" for creating a config in ~/.config/mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/mdsite.yaml or run 'mdsite init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingTitle returns a hint for pages without a level-1 heading.
func ForMissingTitle() string {
	return format(`start the page with a level-1 heading, e.g. "# My Page"`)
}

// ForUnclosedDelimiter returns a hint for unbalanced inline markup.
func ForUnclosedDelimiter() string {
	return format("every **, _ or ` needs a closing partner in the same block; wrap literal underscores in backticks")
}

// ForContentDir returns a hint for a missing content directory.
func ForContentDir() string {
	return format("use --content or set content.dir in mdsite.yaml")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound() string {
	return format("use a built-in name (default), a path to an .html file, or add templates/<name>.html to assets.themeDir")
}

// ForServeAddr returns hints for listen errors on addr. Inside a container a
// loopback address is unreachable from the host.
func ForServeAddr(addr string) string {
	hints := []string{"use --addr to pick another port"}
	if IsInContainer() && (strings.HasPrefix(addr, "localhost") || strings.HasPrefix(addr, "127.")) {
		hints = append(hints, "listen on 0.0.0.0 inside containers")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
