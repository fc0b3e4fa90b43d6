package pipeline

// Notes:
// - Output is the raw input plus the inserted prefix, so cases compare exact bytes
// - Selector tests parse the result to check attribute values as a browser sees them

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

// ---------------------------------------------------------------------------
// TestRewriteBasePath - Exact Output
// ---------------------------------------------------------------------------

func TestRewriteBasePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		basePath string
		want     string
	}{
		{
			name:     "root base path is a no-op",
			html:     `<a href="/about">About</a>`,
			basePath: "/",
			want:     `<a href="/about">About</a>`,
		},
		{
			name:     "empty base path is a no-op",
			html:     `<img src="/logo.png">`,
			basePath: "",
			want:     `<img src="/logo.png">`,
		},
		{
			name:     "link and image",
			html:     `<p><a href="/about">About</a> <img src="/logo.png" alt="logo"></p>`,
			basePath: "/blog/",
			want:     `<p><a href="/blog/about">About</a> <img src="/blog/logo.png" alt="logo"></p>`,
		},
		{
			name:     "base path without trailing slash",
			html:     `<a href="/about">About</a>`,
			basePath: "/blog",
			want:     `<a href="/blog/about">About</a>`,
		},
		{
			name:     "root link",
			html:     `<a href="/">Home</a>`,
			basePath: "/blog/",
			want:     `<a href="/blog/">Home</a>`,
		},
		{
			name:     "external and relative links untouched",
			html:     `<a href="https://example.com/x">x</a><a href="notes.html">n</a><a href="#top">t</a>`,
			basePath: "/blog/",
			want:     `<a href="https://example.com/x">x</a><a href="notes.html">n</a><a href="#top">t</a>`,
		},
		{
			name:     "protocol-relative untouched",
			html:     `<script src="//cdn.example.com/app.js"></script>`,
			basePath: "/blog/",
			want:     `<script src="//cdn.example.com/app.js"></script>`,
		},
		{
			name:     "other attributes untouched",
			html:     `<div data-path="/x" class="wide">y</div>`,
			basePath: "/blog/",
			want:     `<div data-path="/x" class="wide">y</div>`,
		},
		{
			name:     "text mentioning href untouched",
			html:     `<pre><code>href="/not-a-tag"</code></pre>`,
			basePath: "/blog/",
			want:     `<pre><code>href="/not-a-tag"</code></pre>`,
		},
		{
			name:     "full document keeps doctype and comments",
			html:     "<!DOCTYPE html>\n<html><head><!-- x --><link href=\"/index.css\" rel=\"stylesheet\"></head></html>",
			basePath: "/docs/",
			want:     "<!DOCTYPE html>\n<html><head><!-- x --><link href=\"/docs/index.css\" rel=\"stylesheet\"></head></html>",
		},
		{
			name:     "query strings and other values are not escaped",
			html:     `<a href="/search?q=a&b=c">x</a><img src="/i.png" alt="a<b">`,
			basePath: "/blog/",
			want:     `<a href="/blog/search?q=a&b=c">x</a><img src="/blog/i.png" alt="a<b">`,
		},
		{
			name:     "tag and attribute case kept",
			html:     `<A HREF="/about" Class="Nav">About</A>`,
			basePath: "/blog/",
			want:     `<A HREF="/blog/about" Class="Nav">About</A>`,
		},
		{
			name:     "single-quoted and unquoted values",
			html:     `<a href='/one'>1</a><a href=/two>2</a>`,
			basePath: "/blog/",
			want:     `<a href='/blog/one'>1</a><a href=/blog/two>2</a>`,
		},
		{
			name:     "self-closing tag keeps its slash",
			html:     `<img alt="x" src = "/logo.png" />`,
			basePath: "/blog/",
			want:     `<img alt="x" src = "/blog/logo.png" />`,
		},
		{
			name:     "both attributes on one tag",
			html:     `<img src="/a.png" data-x="/y" href="/b">`,
			basePath: "/blog/",
			want:     `<img src="/blog/a.png" data-x="/y" href="/blog/b">`,
		},
		{
			name:     "valueless attribute before src",
			html:     `<script defer src="/app.js"></script>`,
			basePath: "/blog/",
			want:     `<script defer src="/blog/app.js"></script>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteBasePath(tt.html, tt.basePath)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RewriteBasePath() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRewriteBasePath - Parsed Attributes
// ---------------------------------------------------------------------------

func TestRewriteBasePath_Selectors(t *testing.T) {
	t.Parallel()

	page := `<!DOCTYPE html>
<html>
<head><link rel="stylesheet" href="/index.css"></head>
<body>
<nav><a href="/">Home</a><a href="/posts/first">First</a><a href="https://go.dev">Go</a></nav>
<img src="/images/tolkien.png" alt="JRR Tolkien">
<img src="./local.png" alt="local"/>
</body>
</html>`

	got, err := RewriteBasePath(page, "/site/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(got))
	if err != nil {
		t.Fatalf("rewritten HTML does not parse: %v", err)
	}

	tests := []struct {
		selector string
		attr     string
		want     []string
	}{
		{"link[rel=stylesheet]", "href", []string{"/site/index.css"}},
		{"nav a", "href", []string{"/site/", "/site/posts/first", "https://go.dev"}},
		{"img", "src", []string{"/site/images/tolkien.png", "./local.png"}},
		{"img", "alt", []string{"JRR Tolkien", "local"}},
	}

	for _, tt := range tests {
		nodes := cascadia.MustCompile(tt.selector).MatchAll(doc)
		var vals []string
		for _, n := range nodes {
			vals = append(vals, attrValue(n, tt.attr))
		}
		if diff := cmp.Diff(tt.want, vals); diff != "" {
			t.Errorf("%s[%s] mismatch (-want +got):\n%s", tt.selector, tt.attr, diff)
		}
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestIsRootRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/about", true},
		{"//cdn.example.com", false},
		{"about", false},
		{"./about", false},
		{"https://example.com", false},
		{"#top", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isRootRelative(tt.path); got != tt.want {
			t.Errorf("isRootRelative(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
