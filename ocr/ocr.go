//go:build ocr

// Package ocr recognizes the words of page images and groups them into the
// text blocks paragraph detection works on.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/parafind/layout"
	"github.com/tsawler/parafind/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeBlocks performs OCR on image data and returns the recognized
// words grouped into blocks and lines, in Tesseract's layout order.
func (c *Client) RecognizeBlocks(imageData []byte) ([]layout.TextBlock, error) {
	page, err := PageBounds(imageData)
	if err != nil {
		return nil, err
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]recognizedWord, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, recognizedWord{
			Text:  b.Word,
			Box:   model.NewBox(b.Box.Min.X, b.Box.Min.Y, b.Box.Max.X, b.Box.Max.Y),
			Block: b.BlockNum,
			Para:  b.ParNum,
			Line:  b.LineNum,
		})
	}
	return groupWords(words, page), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract splits the page into blocks and lines, and so
// the blocks RecognizeBlocks returns.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
