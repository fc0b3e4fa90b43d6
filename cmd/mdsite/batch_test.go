package main

// Notes:
// - buildPages is tested with a mock converter for ordering and cancellation,
//   and with the real converter for written output
// - printResults output format is part of the CLI contract

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockPageConverter struct {
	calls atomic.Int32
	err   error
}

func (m *mockPageConverter) Convert(ctx context.Context, input mdsite.Input) (*mdsite.Page, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	title, _, _ := strings.Cut(strings.TrimPrefix(input.Markdown, "# "), "\n")
	return &mdsite.Page{Title: title, HTML: []byte("<p>" + title + "</p>")}, nil
}

// ---------------------------------------------------------------------------
// TestBuildPages
// ---------------------------------------------------------------------------

func TestBuildPages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.md": "# A",
		"b.md": "# B",
		"c.md": "# C",
	})
	var files []PageFile
	for _, name := range []string{"a", "b", "c"} {
		files = append(files, PageFile{
			SourcePath: filepath.Join(root, name+".md"),
			OutputPath: filepath.Join(root, "out", "nested", name+".html"),
		})
	}

	conv := &mockPageConverter{}
	results := buildPages(context.Background(), conv, files, 2)

	want := []PageResult{
		{SourcePath: files[0].SourcePath, OutputPath: files[0].OutputPath, Title: "A"},
		{SourcePath: files[1].SourcePath, OutputPath: files[1].OutputPath, Title: "B"},
		{SourcePath: files[2].SourcePath, OutputPath: files[2].OutputPath, Title: "C"},
	}
	opts := cmpopts.IgnoreFields(PageResult{}, "Duration")
	if diff := cmp.Diff(want, results, opts); diff != "" {
		t.Errorf("buildPages() mismatch (-want +got):\n%s", diff)
	}

	if got := readFile(t, files[1].OutputPath); got != "<p>B</p>" {
		t.Errorf("written page = %q, want %q", got, "<p>B</p>")
	}
}

func TestBuildPages_Empty(t *testing.T) {
	t.Parallel()

	if got := buildPages(context.Background(), &mockPageConverter{}, nil, 4); got != nil {
		t.Errorf("buildPages(nil) = %v, want nil", got)
	}
}

func TestBuildPages_Cancelled(t *testing.T) {
	t.Parallel()

	files := []PageFile{{SourcePath: "a.md"}, {SourcePath: "b.md"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &mockPageConverter{}
	results := buildPages(ctx, conv, files, 1)

	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", r.SourcePath, r.Err)
		}
	}
	if n := conv.calls.Load(); n != 0 {
		t.Errorf("converter called %d times after cancellation", n)
	}
}

func TestBuildPage_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"page.md": "# Page"})

	tests := []struct {
		name     string
		file     PageFile
		convErr  error
		wantErr  error
		wantHint string
	}{
		{
			name:    "missing source",
			file:    PageFile{SourcePath: filepath.Join(root, "missing.md")},
			wantErr: ErrReadMarkdown,
		},
		{
			name:     "missing title",
			file:     PageFile{SourcePath: filepath.Join(root, "page.md")},
			convErr:  mdsite.ErrMissingTitle,
			wantErr:  mdsite.ErrMissingTitle,
			wantHint: "level-1 heading",
		},
		{
			name:     "unclosed delimiter",
			file:     PageFile{SourcePath: filepath.Join(root, "page.md")},
			convErr:  mdsite.ErrUnclosedDelimiter,
			wantErr:  mdsite.ErrUnclosedDelimiter,
			wantHint: "closing partner",
		},
		{
			name: "unwritable output",
			file: PageFile{
				SourcePath: filepath.Join(root, "page.md"),
				OutputPath: filepath.Join(root, "page.md", "index.html"),
			},
			wantErr: ErrWritePage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := buildPage(context.Background(), &mockPageConverter{err: tt.convErr}, tt.file)
			if !errors.Is(r.Err, tt.wantErr) {
				t.Fatalf("buildPage() error = %v, want %v", r.Err, tt.wantErr)
			}
			if tt.wantHint != "" && !strings.Contains(r.Err.Error(), tt.wantHint) {
				t.Errorf("error %q missing hint %q", r.Err, tt.wantHint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []PageResult{
		{SourcePath: "content/a.md", OutputPath: "public/a.html"},
		{SourcePath: "content/b.md", Err: mdsite.ErrMissingTitle},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout string
	}{
		{
			name:       "default",
			wantStdout: "Created public/a.html\n\n1 succeeded, 1 failed\n",
		},
		{
			name:       "quiet",
			quiet:      true,
			wantStdout: "",
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: "content/a.md -> public/a.html (0s)\n\n1 succeeded, 1 failed\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			summary := printResults(results, tt.quiet, tt.verbose, env)

			if summary != (ResultSummary{Succeeded: 1, Failed: 1}) {
				t.Errorf("summary = %+v, want 1 succeeded, 1 failed", summary)
			}
			if diff := cmp.Diff(tt.wantStdout, stdout.String()); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
			wantStderr := "FAILED content/b.md: " + mdsite.ErrMissingTitle.Error() + "\n"
			if stderr.String() != wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), wantStderr)
			}
		})
	}
}

func TestPrintResults_SinglePageNoSummary(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv()
	printResults([]PageResult{{OutputPath: "public/index.html"}}, false, false, env)

	if got := stdout.String(); got != "Created public/index.html\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestFirstError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("second")
	results := []PageResult{{}, {Err: sentinel}, {Err: errors.New("third")}}
	if got := firstError(results); got != sentinel {
		t.Errorf("firstError() = %v, want %v", got, sentinel)
	}
	if got := firstError(results[:1]); got != nil {
		t.Errorf("firstError() = %v, want nil", got)
	}
}
