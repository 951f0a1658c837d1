package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/parafind/model"
)

// typicalJustification is the alignment most text in the row's script uses.
func typicalJustification(r *scratchRow) model.Justification {
	if r.ri.LTR {
		return model.JustifyLeft
	}
	return model.JustifyRight
}

// markStrongEvidence marks rows[start, end) that are clearly body lines or
// clearly paragraph starts. It needs at least two rows.
//
// A start line must show two things: its first word would have fit at the
// end of the previous line, and the line itself runs all the way to the far
// edge. The second condition keeps lineated text such as poetry, source
// code and centered headings from being split at every line.
func (d *detection) markStrongEvidence(start, end int) {
	for i := start + 1; i < end; i++ {
		prev, curr := &d.rows[i-1], &d.rows[i]
		if !curr.ri.RWord.LikelyStartsIdea && !curr.ri.LWord.LikelyStartsIdea &&
			!firstWordWouldHaveFit(prev, curr, typicalJustification(prev)) {
			d.setBodyLine(i)
		}
	}

	{
		curr, next := &d.rows[start], &d.rows[start+1]
		if curr.lineType() == lineUnknown &&
			!firstWordWouldHaveFit(curr, next, typicalJustification(curr)) &&
			(curr.ri.LWord.LikelyStartsIdea || curr.ri.RWord.LikelyStartsIdea) {
			d.setStartLine(start)
		}
	}

	for i := start + 1; i < end-1; i++ {
		prev, curr, next := &d.rows[i-1], &d.rows[i], &d.rows[i+1]
		j := typicalJustification(curr)
		if curr.lineType() == lineUnknown && !firstWordWouldHaveFit(curr, next, j) &&
			likelyParagraphStart(prev, curr, j) {
			d.setStartLine(i)
		}
	}

	{
		prev, curr := &d.rows[end-2], &d.rows[end-1]
		j := typicalJustification(curr)
		if curr.lineType() == lineUnknown && !firstWordWouldHaveFit(curr, curr, j) &&
			likelyParagraphStart(prev, curr, j) {
			d.setStartLine(end - 1)
		}
	}
}

func (d *detection) setStartLine(row int) {
	if !d.rows[row].setStartLine() {
		d.logger.Warn("row was already marked as a body line", zap.Int("row", row))
	}
}

func (d *detection) setBodyLine(row int) {
	if !d.rows[row].setBodyLine() {
		d.logger.Warn("row was already marked as a start line", zap.Int("row", row))
	}
}

// modelStrongEvidence looks for a start line followed by body lines in
// rows[rowStart, rowEnd) and creates a model for every such run whose shape
// is coherent. Flush runs at the top of the range become crowns; elsewhere
// they only get a model when allowFlush is set.
func (d *detection) modelStrongEvidence(rowStart, rowEnd int, allowFlush bool) {
	if !d.acceptableRowArgs(2, "modelStrongEvidence", rowStart, rowEnd) {
		return
	}

	start := rowStart
	for start < rowEnd {
		for start < rowEnd && d.rows[start].lineType() != lineStart {
			start++
		}
		if start >= rowEnd-1 {
			break
		}

		tolerance := epsilon(d.rows[start+1].ri.AverageInterwordSpace)
		end := start
		var lastModel model.ParagraphModel
		for {
			end++
			// rows[start, end) is consistent; see whether the next row
			// extends it.
			nextConsistent := false
			if end < rowEnd-1 {
				next := &d.rows[end]
				lt := next.lineType()
				nextConsistent = lt == lineBody ||
					(lt == lineUnknown && !firstWordWouldHaveFitAny(&d.rows[end-1], next))
			}
			if nextConsistent {
				var nextModel model.ParagraphModel
				nextModel, nextConsistent = d.modelByOutline(start, end+1, tolerance)
				ltr := d.rows[start].ri.LTR
				if (ltr && lastModel.Justification() == model.JustifyLeft && nextModel.Justification() != model.JustifyLeft) ||
					(!ltr && lastModel.Justification() == model.JustifyRight && nextModel.Justification() != model.JustifyRight) {
					nextConsistent = false
				}
				lastModel = nextModel
			}
			if !nextConsistent || end >= rowEnd {
				break
			}
		}

		if end > start+1 {
			ref := noRef
			newModel := d.paragraphModelByOutline(start, end, epsilon(d.interwordSpace(start, end)))
			switch {
			case newModel.Justification() == model.JustifyUnknown:
			case newModel.IsFlush():
				switch {
				case end == start+2:
					// Most likely two paragraph starts in a row.
					end = start + 1
				case start == rowStart:
					if newModel.Justification() == model.JustifyLeft {
						ref = crownLeftRef
					} else {
						ref = crownRightRef
					}
				case allowFlush:
					ref = d.theory.addModel(newModel)
				}
			default:
				ref = d.theory.addModel(newModel)
			}
			if !ref.isNone() {
				d.rows[start].addStartLine(ref)
				for i := start + 1; i < end; i++ {
					d.rows[i].addBodyLine(ref)
				}
			}
		}
		start = end
	}
}

// strongEvidenceClassify clears rows[start, end), marks the rows with strong
// evidence, models the runs found and smears those models over the rest of
// the range.
func (d *detection) strongEvidenceClassify(start, end int) {
	if !d.acceptableRowArgs(2, "strongEvidenceClassify", start, end) {
		return
	}

	if d.debugLevel > 1 {
		fmt.Fprintln(d.out, "#############################################")
		fmt.Fprintf(d.out, "# StrongEvidenceClassify( rows[%d:%d) )\n", start, end)
		fmt.Fprintln(d.out, "#############################################")
	}

	d.recomputeMarginsAndClearHypotheses(start, end, marginPercentile)
	d.markStrongEvidence(start, end)
	d.debugDump(d.debugLevel > 2, "Initial strong signals.")

	d.modelStrongEvidence(start, end, false)
	d.debugDump(d.debugLevel > 2, "Unsmeared hypotheses.")

	newSmearer(d, start, end).smear()
}

// separateSimpleLeaderLines makes the middle row of every three consecutive
// rows with leaders start a paragraph of its own.
func (d *detection) separateSimpleLeaderLines(start, end int) {
	for i := start + 1; i < end-1; i++ {
		if d.rows[i-1].ri.HasLeaders && d.rows[i].ri.HasLeaders && d.rows[i+1].ri.HasLeaders {
			ref := d.theory.addModel(model.NewParagraphModel(model.JustifyUnknown, 0, 0, 0, 0))
			d.rows[i].addStartLine(ref)
		}
	}
}
