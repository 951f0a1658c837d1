// Package model provides the data types shared by the paragraph detector and
// its input adapters.
//
// # Rows
//
// A [RowInfo] summarizes one line of text inside a block: its distance from
// the block's left and right edges, its interword spacing, its reading
// direction, and the first and last words ([WordInfo]) with a few lexical
// cues. Rows are produced by the adapters (hOCR, Tesseract) or by
// layout.BuildRowInfos and are never modified by detection.
//
// # Paragraph Models
//
// A [ParagraphModel] captures the shape of a paragraph:
//
//	m := model.NewParagraphModel(model.JustifyLeft, 0, 20, 0, 8)
//	m.ValidFirstLine(0, 20, 300, 0) // true: indented first line
//	m.ValidBodyLine(0, 0, 320, 0)   // true: flush body line
//
// Models are immutable values. [ParagraphModel.Comparable] decides whether two
// models describe the same kind of paragraph; it is intentionally loose and
// not transitive.
//
// # Paragraphs
//
// Detection assigns each row to a [Para], which records the index of its
// model along with list-item, continuation and drop-cap flags.
//
// # Geometry
//
// [Box] is an integer pixel rectangle in image coordinates.
package model
