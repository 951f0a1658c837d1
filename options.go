package parafind

import (
	"io"

	"go.uber.org/zap"

	"github.com/tsawler/parafind/layout"
	"github.com/tsawler/parafind/model"
	"github.com/tsawler/parafind/ocr"
)

// DetectOptions holds configuration for paragraph detection.
type DetectOptions struct {
	// Debug channel level for the detector, 0 to 3
	debugLevel  int
	debugOutput io.Writer

	logger *zap.Logger

	// Input interpretation
	textSource  layout.TextSource // how far word texts are trusted
	language    string            // OCR language(s) for image input
	pageSegMode ocr.PageSegMode   // OCR page layout analysis for image input

	// Models known before detection starts, e.g. from a previous page
	seed []model.ParagraphModel
}

// defaultOptions returns the default detection options.
func defaultOptions() DetectOptions {
	return DetectOptions{
		debugLevel:  0,
		debugOutput: nil,
		logger:      zap.NewNop(),
		textSource:  layout.Recognized,
		language:    "",
		pageSegMode: ocr.PSM_AUTO,
		seed:        nil,
	}
}

// clone creates a deep copy of DetectOptions.
func (o DetectOptions) clone() DetectOptions {
	newOpts := DetectOptions{
		debugLevel:  o.debugLevel,
		debugOutput: o.debugOutput,
		logger:      o.logger,
		textSource:  o.textSource,
		language:    o.language,
		pageSegMode: o.pageSegMode,
	}

	// Deep copy seed slice
	if o.seed != nil {
		newOpts.seed = make([]model.ParagraphModel, len(o.seed))
		copy(newOpts.seed, o.seed)
	}

	return newOpts
}
