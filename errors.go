package md2latex

import (
	"errors"

	"github.com/alnah/go-md2latex/internal/assets"
	"github.com/alnah/go-md2latex/internal/dateutil"
	"github.com/alnah/go-md2latex/internal/doctree"
	"github.com/alnah/go-md2latex/internal/glossary"
	"github.com/alnah/go-md2latex/internal/latex"
	"github.com/alnah/go-md2latex/internal/postproc"
	"github.com/alnah/go-md2latex/internal/tabular"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown      = errors.New("markdown content cannot be empty")
	ErrInvalidSectionKind = errors.New("invalid section kind")
	ErrInvalidAssetPath   = errors.New("invalid asset path")

	// Conversion errors.
	ErrMarkdownParse    = doctree.ErrParse
	ErrMalformedIsland  = latex.ErrMalformedIsland
	ErrImageUnavailable = postproc.ErrImageUnavailable
	ErrImageFetch       = postproc.ErrImageFetch

	// Template errors.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrTemplateParse    = assets.ErrTemplateParse
	ErrTemplateRender   = assets.ErrTemplateRender

	// Input file errors.
	ErrGlossaryParse     = glossary.ErrParse
	ErrCSV               = tabular.ErrCSV
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat
)
