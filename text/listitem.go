package text

import (
	"strings"
)

const (
	romanNumerals = "ivxlmdIVXLMD"
	asciiDigits   = "0123456789"
	openBrackets  = "[{("
	closeBrackets = "]})"
	numeralSeps   = ":;-.,"
	listMarks     = "0Oo*.,+."
)

// bullets are non-ASCII runes commonly used as list bullets.
var bullets = map[rune]bool{
	0x00B0: true, // degree sign
	0x2022: true, // bullet
	0x25E6: true, // white bullet
	0x00B7: true, // middle dot
	0x25A1: true, // white square
	0x25A0: true, // black square
	0x25AA: true, // black small square
	0x2B1D: true, // black very small square
	0x25BA: true, // black right-pointing pointer
	0x25CF: true, // black circle
	0x25CB: true, // white circle
}

// AsciiLikelyListItem reports whether a mostly-ASCII word looks like a list
// marker: a one-character bullet ("*", "o", "+") or a numeral such as
// "iii", "A.", "(2)", "3.5." or "[C-4]".
func AsciiLikelyListItem(word string) bool {
	return likelyListMark(word) || likelyListNumeral(word)
}

func likelyListMark(word string) bool {
	return len(word) == 1 && strings.IndexByte(listMarks, word[0]) >= 0
}

// likelyListNumeral accepts up to three numeral segments. Each segment may
// be wrapped in up to two opening brackets, consists of roman numerals,
// digits or one Latin letter, and is followed by closing brackets and
// separators. The whole word must be consumed.
func likelyListNumeral(word string) bool {
	pos := 0
	segments := 0
	for pos < len(word) && segments < 3 {
		start := skipOne(word, skipOne(word, pos, openBrackets), openBrackets)
		end := skipChars(word, start, romanNumerals)
		if end == start {
			end = skipChars(word, start, asciiDigits)
			if end == start {
				end = skipFunc(word, start, isLatinLetter)
				if end-start != 1 {
					break
				}
			}
		}
		segments++
		pos = skipChars(word, skipChars(word, end, closeBrackets), numeralSeps)
		if pos == end {
			break
		}
	}
	return pos == len(word)
}

func skipOne(s string, pos int, set string) int {
	if pos < len(s) && strings.IndexByte(set, s[pos]) >= 0 {
		return pos + 1
	}
	return pos
}

func skipChars(s string, pos int, set string) int {
	for pos < len(s) && strings.IndexByte(set, s[pos]) >= 0 {
		pos++
	}
	return pos
}

func skipFunc(s string, pos int, keep func(byte) bool) int {
	for pos < len(s) && keep(s[pos]) {
		pos++
	}
	return pos
}

func isLatinLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigitLike reports runes that recognizers confuse with digits.
func isDigitLike(r rune) bool {
	return r == 'o' || r == 'O' || r == 'l' || r == 'I'
}

func likelyListMarkRune(r rune) bool {
	if r < 0x80 {
		return likelyListMark(string(r))
	}
	return bullets[r]
}
