package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// newTestEnv returns an Environment writing to in-memory buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return newEnv(&stdout, &stderr), &stdout, &stderr
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFiles creates files under root from a map of relative path to content.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// testSite lays out a small site and returns its content, static and output dirs.
func testSite(t *testing.T) (content, static, output string) {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"content/index.md":           "# Home\n\nWelcome to **mdsite**.\n\n[Post](/blog/post.html)",
		"content/blog/post.markdown": "# First Post\n\n- one\n- two",
		"content/.drafts/secret.md":  "# Secret",
		"content/notes.txt":          "not a page",
		"static/index.css":           "body { margin: 0 }",
		"static/images/logo.txt":     "logo",
		"public/stale.html":          "old build",
	})
	return filepath.Join(root, "content"), filepath.Join(root, "static"), filepath.Join(root, "public")
}
