package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/parafind/model"
	"github.com/tsawler/parafind/text"
)

const (
	// leaderWordThreshold is the number of leader words a line needs
	// before it counts as a leader line.
	leaderWordThreshold = 3

	// longLeaderRunes is the length at which a single leader word is
	// enough, for recognizers that return a dotted leader as one word.
	longLeaderRunes = 8
)

// TextSource says how far the word texts of a block can be trusted.
type TextSource int

const (
	// Recognized texts come from a recognizer. Word cues use Unicode
	// character classes.
	Recognized TextSource = iota

	// PlainText is mostly ASCII text from a source without character
	// classes. Word cues look at bytes only.
	PlainText

	// Unrecognized texts are placeholders. Only the geometry is used and
	// every character becomes an 'x'.
	Unrecognized
)

// Word is a recognized word and its bounding box
type Word struct {
	Text string    `json:"text"`
	Box  model.Box `json:"box"`
}

// TextLine is one line of text as found by a recognizer
type TextLine struct {
	// Box is the bounding box of the line. When empty, the union of the
	// word boxes is used.
	Box model.Box `json:"box"`

	// Words are the words of the line in left-to-right visual order
	Words []Word `json:"words"`

	// Space is the typical gap between words, in pixels. 0 means unknown.
	Space int `json:"space,omitempty"`

	// XHeight is the height of lowercase letters, in pixels. 0 means unknown.
	XHeight float64 `json:"x_height,omitempty"`

	// DropCap is true when the line begins with a drop capital
	DropCap bool `json:"drop_cap,omitempty"`
}

// TextBlock is a block of lines laid out together, such as a column
type TextBlock struct {
	// Box is the bounding box of the block
	Box model.Box `json:"box"`

	// Lines are the lines of the block from top to bottom
	Lines []TextLine `json:"lines"`

	// IsImage is true for blocks recognized inside a picture. Their lines
	// are not split into paragraphs.
	IsImage bool `json:"is_image,omitempty"`
}

// DetectBlock builds the rows of block and splits them into paragraphs,
// starting from the seed models as DetectWithModels does. Lines of image
// blocks all go to one paragraph without a model.
func (d *Detector) DetectBlock(block TextBlock, source TextSource, seed []model.ParagraphModel) ([]model.RowInfo, *Result) {
	rows := BuildRowInfos(block, source)
	if block.IsImage {
		return rows, UnmodeledResult(len(rows))
	}
	return rows, d.DetectWithModels(rows, seed)
}

// UnmodeledResult puts numRows rows in a single paragraph without a model.
func UnmodeledResult(numRows int) *Result {
	return unmodeledResult(numRows)
}

// BuildRowInfos summarizes every line of block for paragraph detection.
//
// Unless source is Unrecognized, the row text, reading direction, leaders
// and word cues all come from the words. The source also picks how word
// cues are read, see [TextSource].
//
// Distances are measured from the block edges and then reduced by the
// smallest distance on each side, since blocks found before recognition are
// often not tight.
func BuildRowInfos(block TextBlock, source TextSource) []model.RowInfo {
	rows := make([]model.RowInfo, 0, len(block.Lines))
	for _, line := range block.Lines {
		rows = append(rows, buildRowInfo(block.Box, line, source))
	}

	if len(rows) > 0 {
		minLeft, minRight := rows[0].LDistance, rows[0].RDistance
		for _, r := range rows[1:] {
			minLeft = minInt(minLeft, r.LDistance)
			minRight = minInt(minRight, r.RDistance)
		}
		if minLeft > 0 || minRight > 0 {
			for i := range rows {
				rows[i].LDistance -= minLeft
				rows[i].RDistance -= minRight
			}
		}
	}
	return rows
}

func buildRowInfo(blockBox model.Box, line TextLine, source TextSource) model.RowInfo {
	lineBox := line.Box
	if lineBox.IsEmpty() {
		for _, w := range line.Words {
			lineBox = lineBox.Union(w.Box)
		}
	}

	ri := model.RowInfo{
		LTR:                   true,
		HasDropCap:            line.DropCap,
		AverageInterwordSpace: interwordSpaceOf(line),
		XHeight:               line.XHeight,
		LDistance:             lineBox.Left - blockBox.Left,
		RDistance:             blockBox.Right - lineBox.Right,
	}
	if ri.XHeight <= 0 {
		ri.XHeight = 1
	}

	if source == Unrecognized {
		fillPreRecognition(&ri, line)
		return ri
	}

	var words []Word
	for _, w := range line.Words {
		if w.Text != "" {
			words = append(words, w)
		}
	}
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	joined := strings.TrimRight(strings.Join(texts, " "), " \t\r\n\f\v")
	if joined == "" {
		return ri
	}
	ri.Text = leadingSpaces(ri) + joined

	ltr, rtl, leaders := 0, 0, 0
	longLeader := false
	for _, w := range words {
		if text.HasLTR(w.Text) {
			ltr++
		}
		if text.HasRTL(w.Text) {
			rtl++
		}
		if text.IsLeaderWord(w.Text) {
			leaders++
			if utf8.RuneCountInString(w.Text) >= longLeaderRunes {
				longLeader = true
			}
		}
	}
	ri.LTR = ltr >= rtl
	ri.HasLeaders = leaders > leaderWordThreshold || longLeader
	ri.NumWords = len(words)

	unicode := source == Recognized
	lword, rword := words[0], words[len(words)-1]
	ri.LWord = wordInfo(lword, text.LeftWordAttributes(lword.Text, unicode))
	ri.RWord = wordInfo(rword, text.RightWordAttributes(rword.Text, unicode))
	return ri
}

// fillPreRecognition describes a line whose words have boxes but no
// trustworthy text.
func fillPreRecognition(ri *model.RowInfo, line TextLine) {
	if len(line.Words) == 0 {
		return
	}
	fakes := make([]string, len(line.Words))
	for i, w := range line.Words {
		n := utf8.RuneCountInString(w.Text)
		if n == 0 {
			n = 1
		}
		fakes[i] = strings.Repeat("x", n)
	}
	ri.Text = leadingSpaces(*ri) + strings.Join(fakes, " ")
	ri.NumWords = len(line.Words)
	ri.LWord = model.WordInfo{Text: fakes[0], Box: line.Words[0].Box}
	ri.RWord = model.WordInfo{Text: fakes[len(fakes)-1], Box: line.Words[len(line.Words)-1].Box}
}

// leadingSpaces indents debug text in proportion to the row's left
// distance.
func leadingSpaces(ri model.RowInfo) string {
	if ri.AverageInterwordSpace <= 0 || ri.LDistance <= 0 {
		return ""
	}
	return strings.Repeat(" ", ri.LDistance/ri.AverageInterwordSpace)
}

// interwordSpaceOf returns the line's own space estimate, else the mean gap
// between its words, else its x-height, and at least 1.
func interwordSpaceOf(line TextLine) int {
	if line.Space > 0 {
		return line.Space
	}
	if len(line.Words) > 1 {
		total, gaps := 0, 0
		for i := 1; i < len(line.Words); i++ {
			if gap := line.Words[i].Box.Left - line.Words[i-1].Box.Right; gap > 0 {
				total += gap
				gaps++
			}
		}
		if gaps > 0 && total/gaps > 0 {
			return total / gaps
		}
	}
	return maxInt(int(line.XHeight), 1)
}

func wordInfo(w Word, attrs text.WordAttributes) model.WordInfo {
	return model.WordInfo{
		Text:              w.Text,
		Box:               w.Box,
		IndicatesListItem: attrs.IsListItem,
		LikelyStartsIdea:  attrs.StartsIdea,
		LikelyEndsIdea:    attrs.EndsIdea,
	}
}
