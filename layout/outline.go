package layout

import (
	"go.uber.org/zap"

	"github.com/tsawler/parafind/model"
)

// modelByOutline guesses the model of rows[start, end) taken as a single
// paragraph from the shape of its edges. consistent reports whether the rows
// could still be the beginning of one paragraph, even if no model could be
// settled on yet. A zero model (JustifyUnknown) means no model fits.
func (d *detection) modelByOutline(start, end, tolerance int) (m model.ParagraphModel, consistent bool) {
	if start < 0 || end > len(d.rows) || start > end {
		d.logger.Error("invalid row range",
			zap.String("caller", "modelByOutline"),
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Int("rows", len(d.rows)))
		return model.ParagraphModel{}, true
	}
	ltrCount := 0
	for i := start; i < end; i++ {
		if d.rows[i].ri.LTR {
			ltrCount++
		}
	}
	ltr := ltrCount >= (end-start)/2

	if end-start < 2 {
		return model.ParagraphModel{}, true
	}

	lmargin := d.rows[start].lmargin
	rmargin := d.rows[start].rmargin
	lmin, lmax := d.rows[start+1].lindent, d.rows[start+1].lindent
	rmin, rmax := d.rows[start+1].rindent, d.rows[start+1].rindent
	cmin, cmax := 0, 0
	for i := start + 1; i < end; i++ {
		r := &d.rows[i]
		if r.lmargin != lmargin || r.rmargin != rmargin {
			d.logger.Error("margins differ within a range",
				zap.Int("start", start),
				zap.Int("end", end),
				zap.Int("row", i))
			return model.ParagraphModel{}, false
		}
		lmin, lmax = updateRange(r.lindent, lmin, lmax)
		rmin, rmax = updateRange(r.rindent, rmin, rmax)
		cmin, cmax = updateRange(r.rindent-r.lindent, cmin, cmax)
	}
	ldiff := lmax - lmin
	rdiff := rmax - rmin
	cdiff := cmax - cmin

	if rdiff > tolerance && ldiff > tolerance {
		if cdiff < tolerance*2 {
			if end-start < 3 {
				return model.ParagraphModel{}, true
			}
			return model.NewParagraphModel(model.JustifyCenter, 0, 0, 0, tolerance), true
		}
		return model.ParagraphModel{}, false
	}
	// Two lines are not enough to tell a paragraph's shape.
	if end-start < 3 {
		return model.ParagraphModel{}, true
	}

	bodyLeft := ldiff < tolerance
	bodyRight := rdiff < tolerance

	leftModel := model.NewParagraphModel(model.JustifyLeft, lmargin, d.rows[start].lindent, (lmin+lmax)/2, tolerance)
	rightModel := model.NewParagraphModel(model.JustifyRight, rmargin, d.rows[start].rindent, (rmin+rmax)/2, tolerance)

	// A first-line indent on the trailing side of the script rules that
	// alignment out.
	textLeft := ltr || leftModel.IsFlush()
	textRight := !ltr || rightModel.IsFlush()

	// A ragged edge, last line included, cannot be the aligned one.
	if tolerance < rdiff {
		if bodyLeft && textLeft {
			return leftModel, true
		}
		return model.ParagraphModel{}, false
	}
	if tolerance < ldiff {
		if bodyRight && textRight {
			return rightModel, true
		}
		return model.ParagraphModel{}, false
	}

	// Both body edges are straight. A first line jutting out on one side
	// gives that side away.
	firstLeft := d.rows[start].lindent
	firstRight := d.rows[start].rindent
	if ltr && bodyLeft && (firstLeft < lmin || firstLeft > lmax) {
		return leftModel, true
	}
	if !ltr && bodyRight && (firstRight < rmin || firstRight > rmax) {
		return rightModel, true
	}
	return model.ParagraphModel{}, false
}

// paragraphModelByOutline is modelByOutline for callers that only want the
// model.
func (d *detection) paragraphModelByOutline(start, end, tolerance int) model.ParagraphModel {
	m, _ := d.modelByOutline(start, end, tolerance)
	if d.debugLevel >= 2 && m.Justification() == model.JustifyUnknown {
		d.logger.Debug("could not determine a model for this paragraph",
			zap.Int("start", start), zap.Int("end", end))
		d.printRowRange(start, end)
	}
	return m
}

// rowsFitModel reports whether rows[start, end) form one paragraph of ref.
func (d *detection) rowsFitModel(start, end int, ref modelRef) bool {
	if !d.acceptableRowArgs(1, "rowsFitModel", start, end) {
		return false
	}
	if !d.validFirstLine(start, ref) {
		return false
	}
	for i := start + 1; i < end; i++ {
		if !d.validBodyLine(i, ref) {
			return false
		}
	}
	return true
}

// fits returns the first live non-centered model under which rows[start,
// end) form a single paragraph, or noRef.
func (d *detection) fits(start, end int) modelRef {
	for _, ref := range d.theory.liveModels() {
		if d.theory.model(ref).Justification() != model.JustifyCenter && d.rowsFitModel(start, end, ref) {
			return ref
		}
	}
	return noRef
}

// Fits returns the index of the first non-centered model in models under
// which rows[start, end) form a single paragraph, measuring every row
// against the block edges. It returns -1 when none fits.
func Fits(rows []model.RowInfo, start, end int, models []model.ParagraphModel) int {
	det := NewDetector().newDetection(rows, models)
	ref := det.fits(start, end)
	if !ref.isStrong() {
		return -1
	}
	return int(ref.id)
}
