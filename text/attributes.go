package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// WordAttributes are shallow lexical cues about a word at the edge of a line.
type WordAttributes struct {
	// IsListItem is true when the word might be a list number or bullet
	IsListItem bool
	// StartsIdea is true when the word likely starts a sentence
	StartsIdea bool
	// EndsIdea is true when the word likely ends a sentence
	EndsIdea bool
}

const (
	openingPunct  = "'\"({["
	terminalPunct = ":'\".?!]})"
)

// LeftWordAttributes computes the cues for the leftmost word of a line.
//
// When recognized is true the word is treated as recognizer output and
// examined rune by rune with Unicode character classes. Otherwise the word
// is assumed to be mostly ASCII and only its bytes are inspected.
func LeftWordAttributes(word string, recognized bool) WordAttributes {
	if word == "" {
		return WordAttributes{EndsIdea: true}
	}
	var attrs WordAttributes
	if recognized {
		runes := []rune(norm.NFC.String(word))
		if unicodeLikelyListItem(runes) {
			attrs.IsListItem = true
			attrs.StartsIdea = true
			attrs.EndsIdea = true
		}
		if unicode.IsUpper(runes[0]) {
			attrs.StartsIdea = true
		}
		if unicode.IsPunct(runes[0]) {
			attrs.StartsIdea = true
			attrs.EndsIdea = true
		}
		return attrs
	}

	if AsciiLikelyListItem(word) {
		attrs.IsListItem = true
		attrs.StartsIdea = true
	}
	first := word[0]
	if strings.IndexByte(openingPunct, first) >= 0 {
		attrs.StartsIdea = true
	}
	if strings.IndexByte(terminalPunct, first) >= 0 {
		attrs.EndsIdea = true
	}
	if first >= 'A' && first <= 'Z' {
		attrs.StartsIdea = true
	}
	return attrs
}

// RightWordAttributes computes the cues for the rightmost word of a line.
// See LeftWordAttributes for the meaning of recognized.
func RightWordAttributes(word string, recognized bool) WordAttributes {
	if word == "" {
		return WordAttributes{EndsIdea: true}
	}
	var attrs WordAttributes
	if recognized {
		runes := []rune(norm.NFC.String(word))
		if unicodeLikelyListItem(runes) {
			attrs.IsListItem = true
			attrs.StartsIdea = true
		}
		if unicode.IsPunct(runes[len(runes)-1]) {
			attrs.EndsIdea = true
		}
		return attrs
	}

	if AsciiLikelyListItem(word) {
		attrs.IsListItem = true
		attrs.StartsIdea = true
	}
	last := word[len(word)-1]
	if strings.IndexByte(openingPunct, last) >= 0 || strings.IndexByte(terminalPunct, last) >= 0 {
		attrs.EndsIdea = true
	}
	return attrs
}

// unicodeLikelyListItem is the rune-level counterpart of AsciiLikelyListItem.
// Brackets and separators are any punctuation, and digit-like letters
// ("o", "l", ...) count as digits.
func unicodeLikelyListItem(runes []rune) bool {
	if len(runes) == 1 && likelyListMarkRune(runes[0]) {
		return true
	}
	n := len(runes)
	skip := func(pos int, keep func(rune) bool) int {
		for pos < n && keep(runes[pos]) {
			pos++
		}
		return pos
	}
	isRoman := func(r rune) bool {
		return r < 0xF0 && strings.ContainsRune(romanNumerals, r)
	}
	isDigit := func(r rune) bool {
		return unicode.IsDigit(r) || isDigitLike(r)
	}

	pos := 0
	segments := 0
	for pos < n && segments < 3 {
		start := skip(pos, unicode.IsPunct)
		if start > pos+1 {
			break
		}
		end := skip(start, isRoman)
		if end == start {
			end = skip(start, isDigit)
			if end == start {
				end = skip(start, unicode.IsLetter)
				if end-start != 1 {
					break
				}
			}
		}
		segments++
		pos = skip(end, unicode.IsPunct)
		if pos == end {
			break
		}
	}
	return pos == n
}
