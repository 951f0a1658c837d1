package parafind

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/parafind/format"
	"github.com/tsawler/parafind/hocr"
	"github.com/tsawler/parafind/layout"
	"github.com/tsawler/parafind/model"
	"github.com/tsawler/parafind/ocr"
)

// BlockResult is the paragraph segmentation of one text block.
type BlockResult struct {
	// Index is the position of the block in the input
	Index int `json:"index"`

	// Rows are the rows the detector worked on
	Rows []model.RowInfo `json:"rows"`

	// Result assigns every row to a paragraph
	Result *layout.Result `json:"result"`
}

// ParagraphTexts returns the text of every paragraph, its rows joined with
// single spaces.
func (b BlockResult) ParagraphTexts() []string {
	texts := make([]string, b.Result.ParagraphCount())
	for i, owner := range b.Result.RowOwners {
		line := strings.TrimSpace(b.Rows[i].Text)
		if line == "" {
			continue
		}
		if texts[owner] != "" {
			texts[owner] += " "
		}
		texts[owner] += line
	}
	return texts
}

// rowsFile is the JSON input layout: either blocks of lines or the rows of
// a single block.
type rowsFile struct {
	Blocks []layout.TextBlock `json:"blocks"`
	Rows   []model.RowInfo    `json:"rows"`
}

// input is what an Extractor detects paragraphs in: blocks, or the rows
// of a single block when hasRows is set.
type input struct {
	blocks  []layout.TextBlock
	rows    []model.RowInfo
	hasRows bool
}

// Extractor provides a fluent interface for detecting paragraphs.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
//
// An Extractor created with Open reads its file on every call to Detect
// and keeps nothing from it.
type Extractor struct {
	// Source: a file, or input given in memory
	filename string
	in       *input

	// Configuration
	options DetectOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		in:       e.in,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Debug sets the detector's debug level, from 0 (silent) to 3.
func (e *Extractor) Debug(level int) *Extractor {
	newExt := e.clone()
	if level < 0 || level > 3 {
		newExt.err = fmt.Errorf("debug level %d out of range 0..3", level)
		return newExt
	}
	newExt.options.debugLevel = level
	return newExt
}

// DebugOutput sets where detector state tables are written.
// Default: standard error.
func (e *Extractor) DebugOutput(w io.Writer) *Extractor {
	newExt := e.clone()
	newExt.options.debugOutput = w
	return newExt
}

// Logger sets the logger for diagnostics. Default: no logging.
func (e *Extractor) Logger(l *zap.Logger) *Extractor {
	newExt := e.clone()
	if l != nil {
		newExt.options.logger = l
	}
	return newExt
}

// PreRecognition treats word texts as unreliable, as they are before
// recognition: only the word boxes are used.
func (e *Extractor) PreRecognition() *Extractor {
	newExt := e.clone()
	newExt.options.textSource = layout.Unrecognized
	return newExt
}

// PlainText reads word cues from the bytes of mostly ASCII word texts
// instead of Unicode character classes, for text that did not come from a
// recognizer. It has no effect after PreRecognition.
func (e *Extractor) PlainText() *Extractor {
	newExt := e.clone()
	if newExt.options.textSource != layout.Unrecognized {
		newExt.options.textSource = layout.PlainText
	}
	return newExt
}

// Language sets the OCR language(s) for image input, e.g. "eng+fra".
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// PageSegMode sets how the recognizer analyzes the layout of image input.
// Default: ocr.PSM_AUTO.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	if !mode.Valid() {
		newExt.err = fmt.Errorf("page segmentation mode %d out of range", mode)
		return newExt
	}
	newExt.options.pageSegMode = mode
	return newExt
}

// SeedModels adds paragraph models known in advance, such as those found
// on the previous page.
func (e *Extractor) SeedModels(models ...model.ParagraphModel) *Extractor {
	newExt := e.clone()
	newExt.options.seed = append(newExt.options.seed, models...)
	return newExt
}

// load returns the in-memory input, or reads the input file.
func (e *Extractor) load() (*input, error) {
	if e.in != nil {
		return e.in, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	kind := format.Detect(e.filename)
	if kind == format.Unknown {
		f, err := os.Open(e.filename)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		kind, err = format.DetectFromReader(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.filename, err)
		}
	}

	switch kind {
	case format.HOCR:
		blocks, err := hocr.Open(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read hOCR: %w", err)
		}
		return &input{blocks: blocks}, nil

	case format.RowsJSON:
		in, err := loadJSON(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON: %w", err)
		}
		return in, nil

	case format.Image:
		blocks, err := e.recognize()
		if err != nil {
			return nil, fmt.Errorf("failed to recognize image: %w", err)
		}
		return &input{blocks: blocks}, nil

	default:
		return nil, fmt.Errorf("%s: %w", e.filename, ErrUnsupportedFormat)
	}
}

func loadJSON(filename string) (*input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		in := &input{}
		if err := json.Unmarshal(trimmed, &in.blocks); err != nil {
			return nil, err
		}
		return in, nil
	}

	var file rowsFile
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, err
	}
	switch {
	case file.Rows != nil:
		return &input{rows: file.Rows, hasRows: true}, nil
	case file.Blocks != nil:
		return &input{blocks: file.Blocks}, nil
	default:
		return nil, fmt.Errorf("neither blocks nor rows found")
	}
}

func (e *Extractor) recognize() ([]layout.TextBlock, error) {
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if e.options.language != "" {
		if err := client.SetLanguage(e.options.language); err != nil {
			return nil, err
		}
	}
	if err := client.SetPageSegMode(e.options.pageSegMode); err != nil {
		return nil, err
	}
	return client.RecognizeBlocks(data)
}

// Detect splits every block of the input into paragraphs.
//
// Models found in a block are offered to the blocks after it, the way the
// seed models are offered to the first.
func (e *Extractor) Detect() ([]BlockResult, error) {
	if e.err != nil {
		return nil, e.err
	}
	in, err := e.load()
	if err != nil {
		return nil, err
	}

	detector := layout.NewDetectorWithConfig(layout.Config{
		DebugLevel:  e.options.debugLevel,
		Logger:      e.options.logger,
		DebugOutput: e.options.debugOutput,
	})
	known := append([]model.ParagraphModel(nil), e.options.seed...)

	if in.hasRows {
		result := detector.DetectWithModels(in.rows, known)
		e.logBlock(0, len(in.rows), result)
		return []BlockResult{{Index: 0, Rows: in.rows, Result: result}}, nil
	}

	results := make([]BlockResult, 0, len(in.blocks))
	for i, block := range in.blocks {
		rows, result := detector.DetectBlock(block, e.options.textSource, known)
		e.logBlock(i, len(rows), result)
		known = mergeModels(known, result.Models)
		results = append(results, BlockResult{Index: i, Rows: rows, Result: result})
	}
	return results, nil
}

func (e *Extractor) logBlock(index, numRows int, result *layout.Result) {
	e.options.logger.Debug("detected paragraphs",
		zap.Int("block", index),
		zap.Int("rows", numRows),
		zap.Int("paragraphs", result.ParagraphCount()),
		zap.Int("models", len(result.Models)))
}

// mergeModels appends to known the models not comparable to one it has.
func mergeModels(known, found []model.ParagraphModel) []model.ParagraphModel {
	for _, m := range found {
		seen := false
		for _, k := range known {
			if k.Comparable(m) {
				seen = true
				break
			}
		}
		if !seen {
			known = append(known, m)
		}
	}
	return known
}
