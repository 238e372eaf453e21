// Package md2latex converts Markdown documents to LaTeX.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2latex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2latex.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.LaTeX)
//
// The result holds a LaTeX body fragment and the packages it needs. Use
// MakeDocument to wrap fragments in a complete document.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line endings, Unicode normalization)
//  2. Parsing via Goldmark (GFM tables, footnotes) into a document tree
//  3. Rendering the tree to LaTeX, with tables, images, links and code
//     held aside as islands
//  4. Text passes: glossary and citation markers, sub/superscripts,
//     underline and color spans, math
//  5. Island conversion: tables, images (remote ones downloaded), links
//  6. Restoring verbatim code
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2latex.NewConverter(
//	    md2latex.WithImageTimeout(10 * time.Second),
//	    md2latex.WithListings(md2latex.ListingsMinted),
//	    md2latex.WithAssetPath("/path/to/custom/assets"),
//	)
//
// # Documents, Glossaries and Tables
//
// MakeSection and MakeDocument render the sectioning and document
// templates. LoadGlossary reads acronym and term definitions from YAML.
// TabularFromRows, TableFromRows and LongtableFromRows render rows of
// strings, for instance from ReadCSV.
//
// # Parallel Processing
//
// Converters are safe for concurrent use. For batch conversion with a
// bounded number of workers, use ConverterPool:
//
//	pool := md2latex.NewConverterPool(md2latex.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
package md2latex
