// Package markdown converts a small markdown dialect into an htmlnode tree.
//
// A document is split into blocks on blank lines. Each block is classified
// (heading, code, quote, unordered list, ordered list or paragraph) and its
// text is tokenized into inline runs (bold, italic, code spans, links and
// images). Inline markup does not nest: delimiters are resolved in a fixed
// order, one pass per delimiter, over plain text runs only.
//
// All functions are pure and safe for concurrent use.
package markdown
