// Package postproc implements the text passes that run after the tree has
// been rendered: citation and glossary markers, sub/superscripts, underline
// and color spans, math, tables, images and links.
//
// Each pass is a function of its input text and is the identity on text
// without matching patterns. Passes that understand HTML handle both island
// tokens from the renderer and raw HTML written by the author. Raw tables
// and anchors must sit in a block of their own, separated by blank lines;
// raw <img> tags are converted wherever they appear.
package postproc

import (
	"errors"
	"strings"
)

// Sentinel errors for post-processing.
var (
	ErrImageUnavailable = errors.New("remote image unavailable")
	ErrImageFetch       = errors.New("image fetch failed")
)

const blockSep = "\n\n"

// mapBlocks applies f to every blank-line-delimited block and joins the
// results back together.
func mapBlocks(text string, f func(block string) (string, error)) (string, error) {
	blocks := strings.Split(text, blockSep)
	for i, block := range blocks {
		out, err := f(block)
		if err != nil {
			return "", err
		}
		blocks[i] = out
	}
	return strings.Join(blocks, blockSep), nil
}
