// Package text provides the shallow lexical heuristics used by paragraph
// detection.
//
// # Word Attributes
//
// [LeftWordAttributes] and [RightWordAttributes] look at the first and last
// word of a line and report whether it might be a list marker, whether it
// likely starts a sentence and whether it likely ends one:
//
//	attrs := text.LeftWordAttributes("(iv)", true)
//	attrs.IsListItem // true
//
// Two paths are available. Recognized words are examined rune by rune using
// Unicode classes (after NFC normalization). Unrecognized text falls back to
// an ASCII byte heuristic, [AsciiLikelyListItem].
//
// # Text Direction
//
// The [Direction] type and [DetectDirection] classify text as left-to-right,
// right-to-left or neutral using Unicode bidirectional classes.
//
// # Leaders
//
// [IsLeaderWord] recognizes dot leaders as found in tables of contents.
package text
