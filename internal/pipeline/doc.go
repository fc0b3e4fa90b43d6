// Package pipeline implements the per-page conversion stages of a site build.
//
// Stages, in the order a page goes through them:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via a selectable engine (native, goldmark, gomarkdown)
//   - Page template rendering ({{ Title }} and {{ Content }} placeholders)
//   - CSS injection into the page head
//   - Base path rewriting of root-relative href and src attributes
//
// Filesystem concerns (static copy, page discovery, writing output) live in
// the CLI. This package only transforms strings.
package pipeline
