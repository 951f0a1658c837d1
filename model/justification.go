package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Justification is the alignment of a paragraph's lines.
type Justification int

const (
	// JustifyUnknown is used for paragraphs whose alignment could not be
	// determined, and for leader-dot lines such as tables of contents.
	JustifyUnknown Justification = iota
	// JustifyLeft aligns lines against the left edge of the block.
	JustifyLeft
	// JustifyCenter centers lines between the block edges.
	JustifyCenter
	// JustifyRight aligns lines against the right edge of the block.
	JustifyRight
)

// String returns a string representation of the justification
func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "LEFT"
	case JustifyCenter:
		return "CENTER"
	case JustifyRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// ParseJustification converts a name produced by String back into a value.
// Matching is case-insensitive.
func ParseJustification(s string) (Justification, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UNKNOWN", "":
		return JustifyUnknown, nil
	case "LEFT":
		return JustifyLeft, nil
	case "CENTER", "CENTRE":
		return JustifyCenter, nil
	case "RIGHT":
		return JustifyRight, nil
	default:
		return JustifyUnknown, fmt.Errorf("unknown justification %q", s)
	}
}

// MarshalJSON encodes the justification by name
func (j Justification) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.String())
}

// UnmarshalJSON decodes a justification name
func (j *Justification) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseJustification(s)
	if err != nil {
		return err
	}
	*j = v
	return nil
}
