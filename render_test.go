package mdsite

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     string
		wantErr  error
	}{
		{
			name:     "empty document",
			document: "",
			want:     "<div></div>",
		},
		{
			name:     "heading and paragraph",
			document: "# Title\n\nSome _emphasis_ and `code`.",
			want:     "<div><h1>Title</h1><p>Some <i>emphasis</i> and <code>code</code>.</p></div>",
		},
		{
			name:     "lists",
			document: "- one\n- two\n\n1. first\n2. second",
			want:     "<div><ul><li>one</li><li>two</li></ul><ol><li>first</li><li>second</li></ol></div>",
		},
		{
			name:     "quote and image",
			document: "> a wise\n> saying\n\n![logo](/img/logo.png)",
			want:     "<div><blockquote>a wise\nsaying</blockquote><p><img src=\"/img/logo.png\" alt=\"logo\"></p></div>",
		},
		{
			name:     "unclosed delimiter",
			document: "**open",
			wantErr:  ErrUnclosedDelimiter,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.document)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     string
		wantErr  error
	}{
		{name: "first block", document: "# Hello  ", want: "Hello"},
		{name: "later block", document: "intro\n\n## Sub\n\n# Main", want: "Main"},
		{name: "missing", document: "## Only sub", wantErr: ErrMissingTitle},
		{name: "empty", document: "", wantErr: ErrMissingTitle},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.document)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractTitle() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
