// Package format provides input format detection for parafind.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HOCR indicates an hOCR document produced by an OCR engine.
	HOCR
	// RowsJSON indicates a JSON dump of text blocks or rows.
	RowsJSON
	// Image indicates a page image that must be recognized first.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HOCR:
		return "hOCR"
	case RowsJSON:
		return "JSON"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HOCR:
		return ".hocr"
	case RowsJSON:
		return ".json"
	case Image:
		return ".png"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".hocr", ".html", ".htm", ".xhtml":
		return HOCR
	case ".json":
		return RowsJSON
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp":
		return Image
	default:
		return Unknown
	}
}

var imageMagic = [][]byte{
	{0x89, 'P', 'N', 'G'},
	{0xFF, 0xD8, 0xFF},
	{'I', 'I', 0x2A, 0x00},
	{'M', 'M', 0x00, 0x2A},
	{'B', 'M'},
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	for _, magic := range imageMagic {
		if bytes.HasPrefix(data, magic) {
			return Image
		}
	}
	// WebP: RIFF....WEBP
	if len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP" {
		return Image
	}

	if detectHOCRMagic(data) {
		return HOCR
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return RowsJSON
	}

	return Unknown
}

// detectHOCRMagic checks if the data looks like HTML written by an OCR
// engine. Only the start of the data is inspected, so the ocr_ classes
// must appear early, as they do in the head metadata of Tesseract output.
func detectHOCRMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(len(data), 2048)]))
	isHTML := strings.HasPrefix(upper, "<!DOCTYPE HTML") ||
		strings.HasPrefix(upper, "<HTML") ||
		(strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML"))
	if !isHTML {
		return false
	}
	return strings.Contains(upper, "OCR_PAGE") || strings.Contains(upper, "OCR-SYSTEM") ||
		strings.Contains(upper, "OCRX_WORD")
}

// DetectFromReader inspects the content to determine format, falling back
// to Unknown when the first bytes are not conclusive.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 2048)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
