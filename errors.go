package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Markdown errors.
	ErrUnclosedDelimiter = markdown.ErrUnclosedDelimiter
	ErrMissingTitle      = markdown.ErrMissingTitle
	ErrMalformedNode     = htmlnode.ErrMalformedNode

	// Conversion errors.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownEngine  = pipeline.ErrUnknownEngine
	ErrTemplateParse  = pipeline.ErrTemplateParse
	ErrTemplateRender = pipeline.ErrTemplateRender
	ErrPathRewrite    = pipeline.ErrPathRewrite

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidThemeDir  = assets.ErrInvalidThemeDir

	// Option validation errors.
	ErrInvalidBasePath = errors.New("invalid base path")
)
