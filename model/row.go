package model

// WordInfo holds the geometry and lexical cues of a word at one end of a row.
type WordInfo struct {
	// Text is the word as recognized (empty for rows without words)
	Text string `json:"text"`

	// Box is the word's bounding box
	Box Box `json:"box"`

	// IndicatesListItem is true when the word looks like a list marker
	// such as "1.", "(a)" or a bullet
	IndicatesListItem bool `json:"indicates_list_item"`

	// LikelyStartsIdea is true when the word looks like the start of a
	// sentence (capitalized, a list marker, ...)
	LikelyStartsIdea bool `json:"likely_starts_idea"`

	// LikelyEndsIdea is true when the word looks like the end of a sentence
	LikelyEndsIdea bool `json:"likely_ends_idea"`
}

// RowInfo summarizes one text line of a block: its text, reading direction,
// distance from the block edges and the first and last words.
//
// The left word is the first word in left-to-right order and the right word
// is the last, regardless of reading direction.
type RowInfo struct {
	// Text is the line text, used for debugging only
	Text string `json:"text"`

	// LTR is true when the line reads left to right
	LTR bool `json:"ltr"`

	// HasLeaders is true when the line contains leader dots ("......")
	HasLeaders bool `json:"has_leaders"`

	// HasDropCap is true when the line begins with a drop capital
	HasDropCap bool `json:"has_drop_cap"`

	// AverageInterwordSpace is the typical gap between words, in pixels
	AverageInterwordSpace int `json:"average_interword_space"`

	// XHeight is the height of lowercase letters, in pixels
	XHeight float64 `json:"x_height"`

	// LDistance is the distance from the left edge of the block to the first word
	LDistance int `json:"l_distance"`

	// RDistance is the distance from the last word to the right edge of the block
	RDistance int `json:"r_distance"`

	// NumWords is the number of words on the line
	NumWords int `json:"num_words"`

	// LWord is the leftmost word
	LWord WordInfo `json:"lword"`

	// RWord is the rightmost word
	RWord WordInfo `json:"rword"`
}

// IsEmpty returns true if the row has no words
func (r RowInfo) IsEmpty() bool {
	return r.NumWords == 0
}
