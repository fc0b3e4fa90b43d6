// Package mdsite converts markdown documents into HTML pages for static sites.
//
// # Quick Start
//
//	conv, err := mdsite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := conv.Convert(ctx, mdsite.Input{
//	    Markdown: "# Hello\n\nThis is **bold** text.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", page.HTML, 0644)
//
// For the bare document tree without a page template, use Render:
//
//	html, err := mdsite.Render("# Hello\n\nworld")
//	// <div><h1>Hello</h1><p>world</p></div>
//
// # Pipeline
//
// Convert runs these stages in order:
//
//  1. Source normalization (BOM, line endings)
//  2. Title extraction from the first "# " heading
//  3. Markdown to HTML with the configured engine
//  4. Page template execution ({{ Title }} and {{ Content }})
//  5. CSS injection before </head>
//  6. Base path rewrite of root-relative href and src values
//
// # Engines
//
// The default "native" engine renders the restricted dialect: headings,
// fenced code, quotes, flat lists, and non-nested bold, italic, code spans,
// links and images. "goldmark" and "gomarkdown" render full CommonMark/GFM
// and share the same page stages.
//
//	conv, err := mdsite.NewConverter(mdsite.WithEngine("goldmark"))
//
// # Themes
//
// Styles and templates are resolved by name from a theme directory first,
// then from the built-in theme:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithThemeDir("./theme"),
//	    mdsite.WithTemplate("docs"),
//	    mdsite.WithStyle("minimal"),
//	)
//
// Theme directory structure:
//
//	theme/
//	├── styles/
//	│   └── minimal.css
//	└── templates/
//	    └── docs.html
//
// # Concurrency
//
// A Converter is safe for concurrent use once constructed. Use ResolveWorkers
// to size a worker pool for converting many pages.
package mdsite
