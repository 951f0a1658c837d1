package model

import (
	"encoding/json"
	"fmt"
)

// ParagraphModel describes the geometry shared by the lines of a paragraph:
// where the first line starts, where the remaining lines start, and how much
// slop is allowed when matching a line against those positions.
//
// Positions are measured from the edge named by the justification. For a
// LEFT model, margin+firstIndent is the distance of the first line from the
// left edge of the block. CENTER models only check that a line is balanced.
//
// ParagraphModel is an immutable value; use NewParagraphModel to build one.
type ParagraphModel struct {
	justification Justification
	margin        int
	firstIndent   int
	bodyIndent    int
	tolerance     int
}

// NewParagraphModel creates a paragraph model. The smaller of the two indents
// is folded into the margin so that one of the indents is always zero.
func NewParagraphModel(j Justification, margin, firstIndent, bodyIndent, tolerance int) ParagraphModel {
	shared := firstIndent
	if bodyIndent < shared {
		shared = bodyIndent
	}
	return ParagraphModel{
		justification: j,
		margin:        margin + shared,
		firstIndent:   firstIndent - shared,
		bodyIndent:    bodyIndent - shared,
		tolerance:     tolerance,
	}
}

// Justification returns the alignment of the model
func (m ParagraphModel) Justification() Justification { return m.justification }

// Margin returns the distance from the aligned edge shared by all lines
func (m ParagraphModel) Margin() int { return m.margin }

// FirstIndent returns the extra indent of the first line
func (m ParagraphModel) FirstIndent() int { return m.firstIndent }

// BodyIndent returns the extra indent of the lines after the first
func (m ParagraphModel) BodyIndent() int { return m.bodyIndent }

// Tolerance returns the allowed deviation, in pixels
func (m ParagraphModel) Tolerance() int { return m.tolerance }

// IsFlush reports whether the first line and body lines start at the same
// position on the aligned edge.
func (m ParagraphModel) IsFlush() bool {
	if m.justification != JustifyLeft && m.justification != JustifyRight {
		return false
	}
	return abs(m.firstIndent-m.bodyIndent) <= m.tolerance
}

// ValidFirstLine reports whether a line with the given margins and indents
// could be the first line of a paragraph following this model.
func (m ParagraphModel) ValidFirstLine(lmargin, lindent, rindent, rmargin int) bool {
	return m.validLine(m.firstIndent, lmargin, lindent, rindent, rmargin)
}

// ValidBodyLine reports whether a line with the given margins and indents
// could be a non-first line of a paragraph following this model.
func (m ParagraphModel) ValidBodyLine(lmargin, lindent, rindent, rmargin int) bool {
	return m.validLine(m.bodyIndent, lmargin, lindent, rindent, rmargin)
}

func (m ParagraphModel) validLine(indent, lmargin, lindent, rindent, rmargin int) bool {
	switch m.justification {
	case JustifyLeft:
		return nearlyEqual(lmargin+lindent, m.margin+indent, m.tolerance)
	case JustifyRight:
		return nearlyEqual(rmargin+rindent, m.margin+indent, m.tolerance)
	case JustifyCenter:
		return nearlyEqual(lindent, rindent, 2*m.tolerance)
	default:
		return false
	}
}

// Comparable reports whether two models are close enough that they would
// describe the same paragraphs. The relation is not transitive.
func (m ParagraphModel) Comparable(other ParagraphModel) bool {
	if m.justification != other.justification {
		return false
	}
	if m.justification == JustifyCenter || m.justification == JustifyUnknown {
		return true
	}
	tolerance := (m.tolerance + other.tolerance) / 4
	return nearlyEqual(m.margin+m.firstIndent, other.margin+other.firstIndent, tolerance) &&
		nearlyEqual(m.margin+m.bodyIndent, other.margin+other.bodyIndent, tolerance)
}

// String returns a compact description of the model
func (m ParagraphModel) String() string {
	return fmt.Sprintf("margin: %d, first_indent: %d, body_indent: %d, alignment: %s",
		m.margin, m.firstIndent, m.bodyIndent, m.justification)
}

type paragraphModelJSON struct {
	Justification Justification `json:"justification"`
	Margin        int           `json:"margin"`
	FirstIndent   int           `json:"first_indent"`
	BodyIndent    int           `json:"body_indent"`
	Tolerance     int           `json:"tolerance"`
}

// MarshalJSON encodes the model's fields
func (m ParagraphModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(paragraphModelJSON{
		Justification: m.justification,
		Margin:        m.margin,
		FirstIndent:   m.firstIndent,
		BodyIndent:    m.bodyIndent,
		Tolerance:     m.tolerance,
	})
}

// UnmarshalJSON decodes a model, normalizing it through NewParagraphModel
func (m *ParagraphModel) UnmarshalJSON(data []byte) error {
	var raw paragraphModelJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = NewParagraphModel(raw.Justification, raw.Margin, raw.FirstIndent, raw.BodyIndent, raw.Tolerance)
	return nil
}

func nearlyEqual(x, y, tolerance int) bool {
	return abs(x-y) <= tolerance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
