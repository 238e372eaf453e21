// Package latex provides the LaTeX building blocks shared by the converter:
// macro helpers, the required-package accumulator, the table model and the
// typed islands that stand in for constructs rendered by later passes.
package latex

import "errors"

// ErrMalformedIsland indicates a table, image or link construct that cannot
// be interpreted.
var ErrMalformedIsland = errors.New("malformed island")
