package markdown

import "strings"

// Match is an image or link found in text: the bracketed label and the
// parenthesized URL.
type Match struct {
	Label string
	URL   string
}

// ExtractImages returns every ![alt](url) occurrence in text, in order.
func ExtractImages(text string) []Match {
	return scanMarkup(text, true)
}

// ExtractLinks returns every [text](url) occurrence in text that is not part
// of an image, in order.
func ExtractLinks(text string) []Match {
	return scanMarkup(text, false)
}

// scanMarkup walks text left to right. A label may not contain brackets and a
// URL may not contain parentheses; sequences that break either rule are
// skipped. Matches never overlap.
func scanMarkup(text string, images bool) []Match {
	var matches []Match
	for i := 0; i < len(text); {
		open := -1
		switch {
		case images && text[i] == '!' && i+1 < len(text) && text[i+1] == '[':
			open = i + 1
		case !images && text[i] == '[' && (i == 0 || text[i-1] != '!'):
			open = i
		}
		if open < 0 {
			i++
			continue
		}
		m, end, ok := matchAt(text, open)
		if !ok {
			i++
			continue
		}
		matches = append(matches, m)
		i = end
	}
	return matches
}

// matchAt parses "[label](url)" starting at the '[' at index open. It returns
// the index just past the closing parenthesis.
func matchAt(text string, open int) (Match, int, bool) {
	closeLabel := strings.IndexAny(text[open+1:], "[]")
	if closeLabel < 0 || text[open+1+closeLabel] != ']' {
		return Match{}, 0, false
	}
	closeLabel += open + 1

	urlStart := closeLabel + 1
	if urlStart >= len(text) || text[urlStart] != '(' {
		return Match{}, 0, false
	}
	closeURL := strings.IndexAny(text[urlStart+1:], "()")
	if closeURL < 0 || text[urlStart+1+closeURL] != ')' {
		return Match{}, 0, false
	}
	closeURL += urlStart + 1

	return Match{
		Label: text[open+1 : closeLabel],
		URL:   text[urlStart+1 : closeURL],
	}, closeURL + 1, true
}
