package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrPathRewrite indicates the HTML could not be tokenized for rewriting.
var ErrPathRewrite = errors.New("base path rewrite failed")

// rewrittenAttrs are the attributes whose root-relative values get the base path.
var rewrittenAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// RewriteBasePath prefixes root-relative href and src values with basePath,
// so a site built for "/blog/" links to "/blog/about" instead of "/about".
// A base path of "" or "/" returns the HTML unchanged.
//
// Does NOT rewrite:
//   - protocol-relative URLs ("//cdn.example.com/x.js")
//   - relative paths, anchors or absolute URLs
//   - srcset attributes and CSS url() references
//
// Output is the input byte for byte apart from the inserted prefix: attribute
// values are never re-escaped, and tag and attribute case is kept.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	prefix := strings.TrimSuffix(basePath, "/")
	if prefix == "" {
		return htmlContent, nil
	}

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	var sb strings.Builder
	sb.Grow(len(htmlContent))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %v", ErrPathRewrite, err)
			}
			return sb.String(), nil
		}

		raw := string(z.Raw())
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			raw = spliceAttrs(raw, prefix)
		}
		sb.WriteString(raw)
	}
}

// spliceAttrs inserts prefix at the start of every root-relative href or src
// value in the raw tag text. Everything else is copied unchanged.
func spliceAttrs(tag, prefix string) string {
	var sb strings.Builder
	last := 0
	for _, at := range rewriteOffsets(tag) {
		sb.WriteString(tag[last:at])
		sb.WriteString(prefix)
		last = at
	}
	if last == 0 {
		return tag
	}
	sb.WriteString(tag[last:])
	return sb.String()
}

// rewriteOffsets scans a raw start tag and returns the offsets of the
// attribute values that need the prefix, in increasing order.
func rewriteOffsets(tag string) []int {
	var offsets []int
	n := len(tag)

	// Skip "<" and the tag name.
	i := 1
	for i < n && !isTagSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
		i++
	}

	for i < n {
		for i < n && (isTagSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= n || tag[i] == '>' {
			break
		}

		nameStart := i
		i++ // a leading "=" belongs to the name
		for i < n && !isTagSpace(tag[i]) && tag[i] != '=' && tag[i] != '>' && tag[i] != '/' {
			i++
		}
		name := strings.ToLower(tag[nameStart:i])

		for i < n && isTagSpace(tag[i]) {
			i++
		}
		if i >= n || tag[i] != '=' {
			continue
		}
		i++
		for i < n && isTagSpace(tag[i]) {
			i++
		}
		if i >= n {
			break
		}

		var valStart, valEnd int
		if q := tag[i]; q == '"' || q == '\'' {
			valStart = i + 1
			end := strings.IndexByte(tag[valStart:], q)
			if end < 0 {
				valEnd = n
			} else {
				valEnd = valStart + end
			}
			i = valEnd + 1
		} else {
			valStart = i
			for i < n && !isTagSpace(tag[i]) && tag[i] != '>' {
				i++
			}
			valEnd = i
		}

		if rewrittenAttrs[name] && isRootRelative(tag[valStart:valEnd]) {
			offsets = append(offsets, valStart)
		}
	}
	return offsets
}

// isTagSpace reports the whitespace bytes HTML allows between attributes.
func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// isRootRelative returns true for "/path" but not "//host/path".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
