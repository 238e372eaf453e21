// Package pipeline implements the Markdown-to-LaTeX conversion pipeline.
//
// A run goes through these stages, in this order:
//   - Markdown preprocessing (line endings, Unicode NFC, blank lines)
//   - parsing into a document tree via goldmark
//   - rendering the tree to LaTeX with island tokens
//   - text passes: root markers, gls/cite shorthands, sup/sub tags,
//     underline and color spans, math
//   - island passes: tables, images, links
//   - HTML entity unescaping and restoration of code blocks and spans
//
// Text passes are also applied to the text held by pending islands, so a
// link label or table cell sees the same rewriting as running text. Code
// is exempt from every pass.
package pipeline
