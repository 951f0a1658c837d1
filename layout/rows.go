package layout

import (
	"github.com/tsawler/parafind/model"
)

// lineType is the role a row plays in a paragraph. The byte values are the
// codes printed in debug tables.
type lineType byte

const (
	lineUnknown  lineType = 'U'
	lineStart    lineType = 'S'
	lineBody     lineType = 'C'
	lineMultiple lineType = 'M'
)

type refKind uint8

const (
	refNone refKind = iota
	refStrong
	refCrownLeft
	refCrownRight
)

// modelRef names a paragraph model a row may belong to. Strong references
// point into the theory; crown references are placeholders for a flush
// paragraph that continues from before the block and whose real model is
// resolved during conversion.
type modelRef struct {
	kind refKind
	id   modelID
}

var (
	noRef         = modelRef{kind: refNone}
	crownLeftRef  = modelRef{kind: refCrownLeft}
	crownRightRef = modelRef{kind: refCrownRight}
)

func strongRef(id modelID) modelRef {
	return modelRef{kind: refStrong, id: id}
}

func (r modelRef) isNone() bool   { return r.kind == refNone }
func (r modelRef) isStrong() bool { return r.kind == refStrong }
func (r modelRef) isCrown() bool  { return r.kind == refCrownLeft || r.kind == refCrownRight }

type hypothesis struct {
	kind  lineType
	model modelRef
}

// modelSet is an insertion-ordered set of model references.
type modelSet []modelRef

func (s *modelSet) add(r modelRef) {
	if !s.contains(r) {
		*s = append(*s, r)
	}
}

func (s modelSet) contains(r modelRef) bool {
	for _, m := range s {
		if m == r {
			return true
		}
	}
	return false
}

// scratchRow holds the detector's working state for one input row.
//
// The space between the block edge and the text is split into a margin and
// an indent. lmargin+lindent always equals the row's LDistance, and likewise
// on the right.
type scratchRow struct {
	ri *model.RowInfo

	lmargin int
	lindent int
	rmargin int
	rindent int

	hypotheses []hypothesis
}

func newScratchRow(ri *model.RowInfo) scratchRow {
	return scratchRow{
		ri:      ri,
		lindent: ri.LDistance,
		rindent: ri.RDistance,
	}
}

func (r *scratchRow) addHypothesis(h hypothesis) {
	for _, existing := range r.hypotheses {
		if existing == h {
			return
		}
	}
	r.hypotheses = append(r.hypotheses, h)
}

func (r *scratchRow) removeHypothesis(h hypothesis) {
	for i, existing := range r.hypotheses {
		if existing == h {
			r.hypotheses = append(r.hypotheses[:i], r.hypotheses[i+1:]...)
			return
		}
	}
}

// lineType folds all hypotheses into a single role.
func (r *scratchRow) lineType() lineType {
	return r.foldLineType(func(hypothesis) bool { return true })
}

// lineTypeFor folds only the hypotheses for ref. A row that has hypotheses,
// none of them for ref, reports lineBody.
func (r *scratchRow) lineTypeFor(ref modelRef) lineType {
	return r.foldLineType(func(h hypothesis) bool { return h.model == ref })
}

func (r *scratchRow) foldLineType(keep func(hypothesis) bool) lineType {
	if len(r.hypotheses) == 0 {
		return lineUnknown
	}
	hasStart, hasBody := false, false
	for _, h := range r.hypotheses {
		if !keep(h) {
			continue
		}
		switch h.kind {
		case lineStart:
			hasStart = true
		case lineBody:
			hasBody = true
		}
	}
	if hasStart && hasBody {
		return lineMultiple
	}
	if hasStart {
		return lineStart
	}
	return lineBody
}

// setStartLine records a model-less start hypothesis. It returns false when
// the row was already marked as a body line.
func (r *scratchRow) setStartLine() bool {
	current := r.lineType()
	if current == lineUnknown || current == lineBody {
		r.addHypothesis(hypothesis{kind: lineStart})
	}
	return current == lineUnknown || current == lineStart
}

// setBodyLine records a model-less body hypothesis. It returns false when
// the row was already marked as a start line.
func (r *scratchRow) setBodyLine() bool {
	current := r.lineType()
	if current == lineUnknown || current == lineStart {
		r.addHypothesis(hypothesis{kind: lineBody})
	}
	return current == lineUnknown || current == lineBody
}

func (r *scratchRow) addStartLine(ref modelRef) {
	r.addHypothesis(hypothesis{kind: lineStart, model: ref})
	r.removeHypothesis(hypothesis{kind: lineStart})
}

func (r *scratchRow) addBodyLine(ref modelRef) {
	r.addHypothesis(hypothesis{kind: lineBody, model: ref})
	r.removeHypothesis(hypothesis{kind: lineBody})
}

func (r *scratchRow) setUnknown() {
	r.hypotheses = r.hypotheses[:0]
}

// startHypotheses adds the strong models this row may start to set.
func (r *scratchRow) startHypotheses(set *modelSet) {
	for _, h := range r.hypotheses {
		if h.kind == lineStart && h.model.isStrong() {
			set.add(h.model)
		}
	}
}

func (r *scratchRow) strongHypotheses(set *modelSet) {
	for _, h := range r.hypotheses {
		if h.model.isStrong() {
			set.add(h.model)
		}
	}
}

func (r *scratchRow) nonNullHypotheses(set *modelSet) {
	for _, h := range r.hypotheses {
		if !h.model.isNone() {
			set.add(h.model)
		}
	}
}

// uniqueStartHypothesis returns the model of the row's only hypothesis when
// that hypothesis is a start line, and noRef otherwise.
func (r *scratchRow) uniqueStartHypothesis() modelRef {
	if len(r.hypotheses) != 1 || r.hypotheses[0].kind != lineStart {
		return noRef
	}
	return r.hypotheses[0].model
}

func (r *scratchRow) uniqueBodyHypothesis() modelRef {
	if len(r.hypotheses) != 1 || r.hypotheses[0].kind != lineBody {
		return noRef
	}
	return r.hypotheses[0].model
}

// offsideIndent is the indent on the side opposite the alignment.
func (r *scratchRow) offsideIndent(j model.Justification) int {
	switch j {
	case model.JustifyRight:
		return r.lindent
	case model.JustifyLeft:
		return r.rindent
	default:
		return maxInt(r.lindent, r.rindent)
	}
}

// alignsideIndent is the indent on the aligned side.
func (r *scratchRow) alignsideIndent(j model.Justification) int {
	switch j {
	case model.JustifyRight:
		return r.rindent
	case model.JustifyLeft:
		return r.lindent
	default:
		return maxInt(r.lindent, r.rindent)
	}
}

// epsilon is how far aligned text edges may drift given the width of a
// typical interword space.
func epsilon(space int) int {
	return space * 4 / 5
}

func nearlyEqual(x, y, tolerance int) bool {
	return absInt(x-y) <= tolerance
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
