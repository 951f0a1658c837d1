// Package hocr reads hOCR documents, the HTML format OCR engines such as
// Tesseract use to describe recognized pages, into text blocks for
// paragraph detection.
//
// Every content area (class ocr_carea) becomes one block. Pages without
// content areas are read as a single block. Lines are the elements of class
// ocr_line, ocrx_line, ocr_header, ocr_caption or ocr_textfloat, and their
// words the elements of class ocrx_word. Positions come from the bbox
// property in each element's title.
package hocr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/tsawler/parafind/layout"
	"github.com/tsawler/parafind/model"
)

// ErrNoLines is returned when a document contains no text lines.
var ErrNoLines = errors.New("hocr: no text lines found")

const (
	pageSelector = ".ocr_page"
	areaSelector = ".ocr_carea, .ocr_photo, .ocr_image"
	lineSelector = ".ocr_line, .ocrx_line, .ocr_header, .ocr_caption, .ocr_textfloat"
	wordSelector = ".ocrx_word"
)

// Open reads an hOCR file.
func Open(filename string) ([]layout.TextBlock, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an hOCR document and returns its blocks in document order.
func Parse(r io.Reader) ([]layout.TextBlock, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	pages := doc.Find(pageSelector)
	if pages.Length() == 0 {
		pages = doc.Find("body")
	}

	var blocks []layout.TextBlock
	numLines := 0
	pages.Each(func(_ int, page *goquery.Selection) {
		areas := page.Find(areaSelector)
		if areas.Length() == 0 {
			areas = page
		}
		areas.Each(func(_ int, area *goquery.Selection) {
			block := parseArea(area)
			if len(block.Lines) == 0 {
				return
			}
			numLines += len(block.Lines)
			blocks = append(blocks, block)
		})
	})

	if numLines == 0 {
		return nil, ErrNoLines
	}
	return blocks, nil
}

func parseArea(area *goquery.Selection) layout.TextBlock {
	props := parseTitle(area.AttrOr("title", ""))
	block := layout.TextBlock{
		Box:     props.bbox(),
		IsImage: area.HasClass("ocr_photo") || area.HasClass("ocr_image"),
	}

	var linesBox model.Box
	area.Find(lineSelector).Each(func(_ int, s *goquery.Selection) {
		line := parseLine(s)
		if len(line.Words) == 0 {
			return
		}
		linesBox = linesBox.Union(line.Box)
		block.Lines = append(block.Lines, line)
	})
	if block.Box.IsEmpty() {
		block.Box = linesBox
	}
	return block
}

func parseLine(s *goquery.Selection) layout.TextLine {
	props := parseTitle(s.AttrOr("title", ""))
	line := layout.TextLine{
		Box:     props.bbox(),
		XHeight: props.xHeight(),
	}

	var wordsBox model.Box
	s.Find(wordSelector).Each(func(_ int, w *goquery.Selection) {
		text := strings.TrimSpace(w.Text())
		if text == "" {
			return
		}
		box := parseTitle(w.AttrOr("title", "")).bbox()
		wordsBox = wordsBox.Union(box)
		line.Words = append(line.Words, layout.Word{Text: text, Box: box})
	})
	if line.Box.IsEmpty() {
		line.Box = wordsBox
	}
	// hOCR lists words in reading order; rows want them left to right.
	sort.SliceStable(line.Words, func(i, j int) bool {
		return line.Words[i].Box.Left < line.Words[j].Box.Left
	})
	return line
}

// properties are the entries of an hOCR title attribute, such as
// "bbox 10 20 30 40; x_size 32".
type properties map[string][]string

func parseTitle(title string) properties {
	props := make(properties)
	for _, entry := range strings.Split(title, ";") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

func (p properties) ints(key string) []int {
	values := make([]int, 0, len(p[key]))
	for _, f := range p[key] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		values = append(values, int(v))
	}
	return values
}

func (p properties) float(key string) float64 {
	if len(p[key]) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(p[key][0], 64)
	if err != nil {
		return 0
	}
	return v
}

func (p properties) bbox() model.Box {
	v := p.ints("bbox")
	if len(v) != 4 {
		return model.Box{}
	}
	return model.NewBox(v[0], v[1], v[2], v[3])
}

// xHeight estimates the height of lowercase letters as the line's letter
// size without ascenders and descenders. It returns 0 when unknown.
func (p properties) xHeight() float64 {
	size := p.float("x_size")
	if size <= 0 {
		return 0
	}
	x := size - p.float("x_ascenders") - p.float("x_descenders")
	if x <= 0 {
		return 0
	}
	return x
}
