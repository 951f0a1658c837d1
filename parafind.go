// Package parafind provides a fluent API for finding the paragraphs of
// recognized page text.
//
// Basic usage:
//
//	results, err := parafind.Open("page.hocr").Detect()
//	if err != nil {
//	    // handle error
//	}
//	for _, block := range results {
//	    for _, para := range block.ParagraphTexts() {
//	        fmt.Println(para)
//	    }
//	}
//
// With options:
//
//	results, err := parafind.Open("scan.png").
//	    Language("eng+fra").
//	    Debug(1).
//	    Detect()
//
// Inputs are hOCR documents, JSON dumps of text blocks or rows, and page
// images (recognized with Tesseract when built with the ocr tag). For
// direct access to the detector, use the layout package.
package parafind

import (
	"errors"

	"github.com/tsawler/parafind/layout"
	"github.com/tsawler/parafind/model"
)

// ErrUnsupportedFormat is returned when an input file is in none of the
// supported formats.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Open returns an Extractor reading the named file. The format is taken
// from the file extension, or from the content when the extension is not
// recognized.
//
// Example:
//
//	results, err := parafind.Open("page.hocr").Detect()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBlocks returns an Extractor working on blocks already in memory, for
// example from a recognizer the caller drives.
func FromBlocks(blocks []layout.TextBlock) *Extractor {
	return &Extractor{
		in:      &input{blocks: blocks},
		options: defaultOptions(),
	}
}

// FromRows returns an Extractor for a single block whose rows have already
// been summarized.
//
// Example:
//
//	results, err := parafind.FromRows(rows).SeedModels(previous...).Detect()
func FromRows(rows []model.RowInfo) *Extractor {
	return &Extractor{
		in:      &input{rows: rows, hasRows: true},
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	results := parafind.Must(parafind.Open("page.hocr").Detect())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
