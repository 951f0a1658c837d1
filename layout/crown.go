package layout

import (
	"github.com/tsawler/parafind/model"
)

// downgradeWeakestToCrowns turns flush paragraphs that are not preceded by
// another paragraph of the same model into crowns.
//
// Treating flush-left as a real paragraph model is risky: once believed,
// indented paragraphs get chopped wherever a sentence happens to start a
// line. A crown only says the paragraph is flush and should take the model
// of the text that follows it, if that model fits.
//
// The rows are combed bottom up for runs of unique body hypotheses of one
// model that start the block or follow a line the model does not accept as
// a first line.
func (d *detection) downgradeWeakestToCrowns() {
	var start int
	for end := len(d.rows); end > 0; end = start {
		ref := noRef
		for end > 0 {
			ref = d.rows[end-1].uniqueBodyHypothesis()
			if !ref.isNone() {
				break
			}
			end--
		}
		if end == 0 {
			break
		}

		start = end - 1
		for start >= 0 && d.rows[start].uniqueBodyHypothesis() == ref {
			start--
		}
		if start >= 0 && d.rows[start].uniqueStartHypothesis() == ref && ref.isStrong() {
			m := d.theory.model(ref)
			if nearlyEqual(m.FirstIndent(), m.BodyIndent(), m.Tolerance()) {
				start--
			}
		}
		start++
		// rows[start, end) are unique body hypotheses of ref.

		if ref.isStrong() && d.theory.model(ref).Justification() == model.JustifyCenter {
			continue
		}
		if !ref.isStrong() {
			for start > 0 && d.crownCompatible(start-1, start, ref) {
				start--
			}
		}
		if start == 0 || !ref.isStrong() || !d.validFirstLine(start-1, ref) {
			crown := ref
			if ref.isStrong() {
				if d.theory.model(ref).Justification() == model.JustifyLeft {
					crown = crownLeftRef
				} else {
					crown = crownRightRef
				}
			}
			d.rows[start].setUnknown()
			d.rows[start].addStartLine(crown)
			for row := start + 1; row < end; row++ {
				d.rows[row].setUnknown()
				d.rows[row].addBodyLine(crown)
			}
		}
	}
	d.discardUnusedModels()
}

// discardUnusedModels retires the models no row refers to anymore.
func (d *detection) discardUnusedModels() {
	var used modelSet
	for i := range d.rows {
		d.rows[i].strongHypotheses(&used)
	}
	d.theory.discardUnusedModels(used)
}
