package assets

import "errors"

// TemplateResolver combines custom and embedded loaders. When a custom loader
// is configured it is tried first, falling back to embedded templates for
// names it does not provide.
type TemplateResolver struct {
	custom   TemplateLoader // nil if no custom path configured
	embedded TemplateLoader
}

// NewTemplateResolver creates an TemplateResolver.
// If customBasePath is empty, only embedded templates are used.
// Returns error if customBasePath is set but invalid.
func NewTemplateResolver(customBasePath string) (*TemplateResolver, error) {
	resolver := &TemplateResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom loader first.
func (r *TemplateResolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// HasCustomLoader returns true if a custom loader is configured.
func (r *TemplateResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ TemplateLoader = (*TemplateResolver)(nil)
