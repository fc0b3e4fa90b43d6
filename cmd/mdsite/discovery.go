package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// markdownExts lists the extensions treated as pages.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// PageFile pairs a markdown source with the page it produces.
type PageFile struct {
	SourcePath string
	OutputPath string
}

// discoverPages finds all markdown files under contentDir. Output paths
// mirror the content tree inside outputDir with an .html extension.
// Hidden directories and outputDir itself are skipped.
func discoverPages(contentDir, outputDir string) ([]PageFile, error) {
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", outputDir, err)
	}

	var pages []PageFile
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != contentDir && skipDir(path, d.Name(), absOutput) {
				return filepath.SkipDir
			}
			return nil
		}
		if !markdownExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		pages = append(pages, PageFile{
			SourcePath: path,
			OutputPath: filepath.Join(outputDir, fileutil.ReplaceExt(rel, ".html")),
		})
		return nil
	})

	return pages, err
}

// skipDir reports whether a directory below the content root is left out.
func skipDir(path, name, absOutput string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	abs, err := filepath.Abs(path)
	return err == nil && abs == absOutput
}
