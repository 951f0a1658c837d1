package layout

import (
	"go.uber.org/zap"

	"github.com/tsawler/parafind/model"
)

// firstWordWouldHaveFit reports whether the leading word of after (in
// reading order) would have fit in the space left at the end of before,
// given the alignment j. Rows without words always fit.
func firstWordWouldHaveFit(before, after *scratchRow, j model.Justification) bool {
	if before.ri.NumWords == 0 || after.ri.NumWords == 0 {
		return true
	}
	var available int
	if j == model.JustifyCenter {
		available = before.lindent + before.rindent
	} else {
		available = before.offsideIndent(j)
	}
	available -= before.ri.AverageInterwordSpace
	return leadingWordWidth(before, after) < available
}

// firstWordWouldHaveFitAny is firstWordWouldHaveFit for an unknown
// alignment: the larger indent of before is taken as the free space.
func firstWordWouldHaveFitAny(before, after *scratchRow) bool {
	if before.ri.NumWords == 0 || after.ri.NumWords == 0 {
		return true
	}
	available := maxInt(before.lindent, before.rindent) - before.ri.AverageInterwordSpace
	return leadingWordWidth(before, after) < available
}

// leadingWordWidth is the width of the word of after that would have been
// moved up, taking the reading direction from before.
func leadingWordWidth(before, after *scratchRow) int {
	if before.ri.LTR {
		return after.ri.LWord.Box.Width()
	}
	return after.ri.RWord.Box.Width()
}

// textSupportsBreak reports whether before ends a sentence and after starts
// one.
func textSupportsBreak(before, after *scratchRow) bool {
	if before.ri.LTR {
		return before.ri.RWord.LikelyEndsIdea && after.ri.LWord.LikelyStartsIdea
	}
	return before.ri.LWord.LikelyEndsIdea && after.ri.RWord.LikelyStartsIdea
}

// likelyParagraphStart reports whether both geometry and text suggest a
// paragraph break between before and after.
func likelyParagraphStart(before, after *scratchRow, j model.Justification) bool {
	return before.ri.NumWords == 0 ||
		(firstWordWouldHaveFit(before, after, j) && textSupportsBreak(before, after))
}

func (d *detection) validFirstLine(row int, ref modelRef) bool {
	if !ref.isStrong() {
		d.logger.Error("validFirstLine called without a strong model", zap.Int("row", row))
		return false
	}
	r := &d.rows[row]
	return d.theory.model(ref).ValidFirstLine(r.lmargin, r.lindent, r.rindent, r.rmargin)
}

func (d *detection) validBodyLine(row int, ref modelRef) bool {
	if !ref.isStrong() {
		d.logger.Error("validBodyLine called without a strong model", zap.Int("row", row))
		return false
	}
	r := &d.rows[row]
	return d.theory.model(ref).ValidBodyLine(r.lmargin, r.lindent, r.rindent, r.rmargin)
}

// crownCompatible reports whether rows a and b start at the same place on
// the side a crown reference is aligned to.
func (d *detection) crownCompatible(a, b int, ref modelRef) bool {
	if !ref.isCrown() {
		d.logger.Error("crownCompatible called without a crown model",
			zap.Int("row_a", a), zap.Int("row_b", b))
		return false
	}
	ra, rb := &d.rows[a], &d.rows[b]
	tolerance := epsilon(ra.ri.AverageInterwordSpace)
	if ref.kind == refCrownRight {
		return nearlyEqual(ra.rindent+ra.rmargin, rb.rindent+rb.rmargin, tolerance)
	}
	return nearlyEqual(ra.lindent+ra.lmargin, rb.lindent+rb.lmargin, tolerance)
}
