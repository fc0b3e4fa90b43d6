// Package assets provides page templates and CSS styles for site builds.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in theme)
//	    ├── FilesystemLoader  - loads from a theme directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A theme directory overrides individual assets: a site can ship its own
// templates/default.html and keep the built-in styles.
//
// # Directory Structure
//
//	{themeDir}/
//	├── styles/
//	│   └── {name}.css      # injected into every page
//	└── templates/
//	    └── {name}.html     # page template with {{ Title }} and {{ Content }}
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within its directory.
package assets
