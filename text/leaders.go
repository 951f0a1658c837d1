package text

import "unicode/utf8"

// leaderRunes are the characters used to draw leader lines, as in
// "Chapter 1 ........ 12".
var leaderRunes = map[rune]bool{
	'.':    true,
	'-':    true,
	'_':    true,
	0x00B7: true, // middle dot
	0x2026: true, // horizontal ellipsis
	0x2024: true, // one dot leader
	0x2025: true, // two dot leader
}

// IsLeaderWord reports whether a word is a run of a single repeated leader
// character, such as "......" or "____". A lone ellipsis also counts.
func IsLeaderWord(word string) bool {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 || !leaderRunes[first] {
		return false
	}
	if first == 0x2026 && len(word) == size {
		return true
	}
	count := 0
	for _, r := range word {
		if r != first {
			return false
		}
		count++
	}
	return count >= 3
}
