package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, whitespace, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// GetCharDirection returns the inherent direction of a single rune from its
// Unicode bidirectional class. Only strong classes (L, R, AL) are directional.
func GetCharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

// DetectDirection returns the dominant direction of s by counting strongly
// directional runes. Ties go to LTR; strings without strong runes are Neutral.
func DetectDirection(s string) Direction {
	ltr, rtl := 0, 0
	for _, r := range s {
		switch GetCharDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// HasLTR reports whether s contains any left-to-right rune.
func HasLTR(s string) bool {
	for _, r := range s {
		if GetCharDirection(r) == LTR {
			return true
		}
	}
	return false
}

// HasRTL reports whether s contains any right-to-left rune.
func HasRTL(s string) bool {
	for _, r := range s {
		if GetCharDirection(r) == RTL {
			return true
		}
	}
	return false
}
