package markdown

import "errors"

// Sentinel errors for markdown conversion.
var (
	ErrUnclosedDelimiter = errors.New("unclosed inline delimiter")
	ErrMissingTitle      = errors.New("no level-1 heading found")
	ErrUnknownToken      = errors.New("unknown token type")
)
