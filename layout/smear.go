package layout

import (
	"github.com/tsawler/parafind/model"
)

// smearer spreads the models found for some rows of a range to the rows
// around them that fit those models.
type smearer struct {
	d        *detection
	rowStart int
	rowEnd   int

	// openModels[row-rowStart+1] holds the models of paragraphs that may
	// still be running when row is reached, starting from rowStart-1.
	openModels []modelSet
}

func newSmearer(d *detection, rowStart, rowEnd int) *smearer {
	s := &smearer{d: d}
	if !d.acceptableRowArgs(0, "newSmearer", rowStart, rowEnd) {
		return s
	}
	s.rowStart = rowStart
	s.rowEnd = rowEnd
	s.openModels = make([]modelSet, rowEnd-rowStart+2)
	return s
}

func (s *smearer) open(row int) *modelSet {
	return &s.openModels[row-s.rowStart+1]
}

// calculateOpenModels recomputes the open models for rows[rowStart,
// rowEnd), clipped to the smearer's range, from the row just above.
func (s *smearer) calculateOpenModels(rowStart, rowEnd int) {
	if rowStart < s.rowStart {
		rowStart = s.rowStart
	}
	if rowEnd > s.rowEnd {
		rowEnd = s.rowEnd
	}

	row := rowStart
	if rowStart > 0 {
		row = rowStart - 1
	}
	for ; row < rowEnd; row++ {
		if s.d.rows[row].ri.NumWords == 0 {
			*s.open(row + 1) = nil
			continue
		}
		opened := s.open(row)
		s.d.rows[row].startHypotheses(opened)

		// Only basic filtering here; whether a row really looks like a
		// start is decided in smear.
		var stillOpen modelSet
		for _, m := range *opened {
			if s.d.validFirstLine(row, m) || s.d.validBodyLine(row, m) {
				stillOpen.add(m)
			}
		}
		*s.open(row + 1) = stillOpen
	}
}

// smear walks the range top to bottom. Every row not yet explained is
// matched against the models still open above it, then against every
// non-centered model known.
func (s *smearer) smear() {
	d := s.d
	s.calculateOpenModels(s.rowStart, s.rowEnd)

	for i := s.rowStart; i < s.rowEnd; i++ {
		row := &d.rows[i]
		if row.ri.NumWords == 0 {
			continue
		}

		// Which alignments are open matters for whether the first word of
		// this row would have fit on the previous one.
		leftOpen, rightOpen := false, false
		for _, m := range *s.open(i) {
			switch d.theory.model(m).Justification() {
			case model.JustifyLeft:
				leftOpen = true
			case model.JustifyRight:
				rightOpen = true
			default:
				leftOpen, rightOpen = true, true
			}
		}

		likelyStart := true
		if i > 0 {
			prev := &d.rows[i-1]
			switch {
			case leftOpen == rightOpen:
				likelyStart = likelyParagraphStart(prev, row, model.JustifyLeft) ||
					likelyParagraphStart(prev, row, model.JustifyRight)
			case leftOpen:
				likelyStart = likelyParagraphStart(prev, row, model.JustifyLeft)
			default:
				likelyStart = likelyParagraphStart(prev, row, model.JustifyRight)
			}
		}

		if likelyStart {
			for _, m := range *s.open(i) {
				if d.validFirstLine(i, m) {
					row.addStartLine(m)
				}
			}
		} else {
			var lastLineModels modelSet
			if i > 0 {
				d.rows[i-1].strongHypotheses(&lastLineModels)
			} else {
				lastLineModels = d.theory.nonCenteredModels()
			}
			for _, m := range lastLineModels {
				if d.validBodyLine(i, m) {
					row.addBodyLine(m)
				}
			}
		}

		// Still unsure: try this row as the start of every known model.
		if lt := row.lineType(); lt == lineUnknown || (lt == lineStart && row.uniqueStartHypothesis().isNone()) {
			for _, m := range d.theory.nonCenteredModels() {
				if d.validFirstLine(i, m) {
					row.addStartLine(m)
				}
			}
		}

		if row.lineType() != lineUnknown {
			s.calculateOpenModels(i+1, s.rowEnd)
		}
	}
}
