package assets

import (
	"errors"
	"fmt"
	"regexp"
)

// Sentinel errors for template loading and rendering.
var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateParse       = errors.New("template parse failed")
	ErrTemplateRender      = errors.New("template rendering failed")
	ErrTemplateRead        = errors.New("failed to read template")
	ErrInvalidTemplateName = errors.New("invalid template name")
	// ErrInvalidBasePath means the asset directory is missing or not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")
	ErrPathTraversal   = errors.New("path traversal detected")
)

// TemplateLoader returns the source of a template by name, without the .tex
// extension. Unknown names fail with ErrTemplateNotFound.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// templateNameRe keeps names to a single path element without extension.
var templateNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateTemplateName rejects names that could address anything other than
// templates/<name>.tex.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if !templateNameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}
