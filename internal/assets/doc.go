// Package assets provides the LaTeX templates used to assemble documents.
// Templates can be loaded from embedded files or a custom filesystem path.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── TemplateResolver     - combines both with custom-first fallback
//
// TemplateResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template is
// not found. This allows overriding one template while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    ├── document.tex     # Full document (class, preamble, body)
//	    └── sectioning.tex   # \part .. \subparagraph with label and body
//
// # Template Syntax
//
// Templates use text/template with << and >> as delimiters, so LaTeX braces
// never collide with template actions.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
