package layout

import (
	"go.uber.org/zap"

	"github.com/tsawler/parafind/model"
)

// convertModelRunsToParagraphs turns runs of rows sharing a model into
// paragraphs, scanning bottom up. A run is a start line followed by body
// lines of the first model hypothesized for its last row. Crowns take the
// model of a later paragraph when it fits and otherwise get a flush model of
// their own. Rows in no run have a nil owner.
func (d *detection) convertModelRunsToParagraphs() []*paragraph {
	owners := make([]*paragraph, len(d.rows))

	var start int
	for end := len(d.rows); end > 0; end = start {
		start = end - 1
		ref := noRef
		singleLine := false
		var models modelSet
		d.rows[start].nonNullHypotheses(&models)
		if len(models) > 0 {
			ref = models[0]
			if d.rows[start].lineTypeFor(ref) != lineBody {
				singleLine = true
			}
		}
		if !ref.isNone() && !singleLine {
			// Walk back over body lines to the start line. Row 0 can only
			// close the run as its start.
			start--
			for start > 0 && d.rows[start].lineTypeFor(ref) == lineBody {
				start--
			}
			if start < 0 || d.rows[start].lineTypeFor(ref) != lineStart {
				ref = noRef
			}
		}
		if ref.isNone() {
			continue
		}

		p := &paragraph{}
		if ref.isCrown() {
			p.isVeryFirstOrContinuation = true
			ref = d.resolveCrown(start, end, ref, owners)
		}

		d.rows[start].setUnknown()
		d.rows[start].addStartLine(ref)
		for i := start + 1; i < end; i++ {
			d.rows[i].setUnknown()
			d.rows[i].addBodyLine(ref)
		}

		first := d.rows[start].ri
		p.ref = ref
		p.hasDropCap = first.HasDropCap
		if d.theory.model(ref).Justification() == model.JustifyRight {
			p.isListItem = first.RWord.IndicatesListItem
		} else {
			p.isListItem = first.LWord.IndicatesListItem
		}
		for row := start; row < end; row++ {
			if owners[row] != nil {
				d.logger.Error("row already belongs to a paragraph", zap.Int("row", row))
			}
			owners[row] = p
		}
	}
	return owners
}

// resolveCrown picks the model for a crown paragraph rows[start, end): the
// model of the first later paragraph that accepts the crown's first row as
// a body line, and also as a first line unless the crown opens the block.
// Without one, a flush model pinned at the first row's edge is made up.
func (d *detection) resolveCrown(start, end int, crown modelRef, owners []*paragraph) modelRef {
	for row := end; row < len(owners); row++ {
		if owners[row] == nil {
			continue
		}
		ref := owners[row].ref
		if d.validBodyLine(start, ref) && (start == 0 || d.validFirstLine(start, ref)) {
			return ref
		}
	}

	r := &d.rows[start]
	tolerance := epsilon(r.ri.AverageInterwordSpace)
	if crown.kind == refCrownLeft {
		return d.theory.addModel(model.NewParagraphModel(model.JustifyLeft, r.lmargin+r.lindent, 0, 0, tolerance))
	}
	return d.theory.addModel(model.NewParagraphModel(model.JustifyRight, r.rmargin+r.rindent, 0, 0, tolerance))
}
