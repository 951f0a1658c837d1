package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"sort"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/tsawler/parafind/layout"
	"github.com/tsawler/parafind/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Valid reports whether m is one of the modes above.
func (m PageSegMode) Valid() bool {
	return m >= PSM_OSD_ONLY && m <= PSM_RAW_LINE
}

// PageBounds returns the box covering a whole page image. PNG, JPEG, TIFF,
// BMP and WebP are understood.
func PageBounds(imageData []byte) (model.Box, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return model.Box{}, fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return model.Box{}, fmt.Errorf("empty %s image", name)
	}
	return model.NewBox(0, 0, cfg.Width, cfg.Height), nil
}

// recognizedWord is one word reported by the recognizer together with its
// position in the recognizer's layout tree.
type recognizedWord struct {
	Text  string
	Box   model.Box
	Block int
	Para  int
	Line  int
}

// groupWords builds blocks from words listed in layout order. Line numbers
// restart in every paragraph, so a line is keyed by its paragraph too.
// Words of a line are put in left-to-right order. A block's box is the
// union of its words, or page when that is empty.
func groupWords(words []recognizedWord, page model.Box) []layout.TextBlock {
	var blocks []layout.TextBlock
	var block *layout.TextBlock
	var line *layout.TextLine
	lastBlock, lastPara, lastLine := -1, -1, -1

	for _, w := range words {
		if w.Text == "" {
			continue
		}
		if block == nil || w.Block != lastBlock {
			blocks = append(blocks, layout.TextBlock{})
			block = &blocks[len(blocks)-1]
			line = nil
			lastBlock = w.Block
		}
		if line == nil || w.Para != lastPara || w.Line != lastLine {
			block.Lines = append(block.Lines, layout.TextLine{})
			line = &block.Lines[len(block.Lines)-1]
			lastPara, lastLine = w.Para, w.Line
		}
		line.Words = append(line.Words, layout.Word{Text: w.Text, Box: w.Box})
		line.Box = line.Box.Union(w.Box)
		block.Box = block.Box.Union(w.Box)
	}

	for i := range blocks {
		if blocks[i].Box.IsEmpty() {
			blocks[i].Box = page
		}
		for j := range blocks[i].Lines {
			ws := blocks[i].Lines[j].Words
			sort.SliceStable(ws, func(a, b int) bool { return ws[a].Box.Left < ws[b].Box.Left })
		}
	}
	return blocks
}
