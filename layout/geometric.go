package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/parafind/model"
)

const (
	// fullRowFraction is the share of rows that must span the whole block
	// before the three-stop outline is trusted.
	fullRowFraction = 0.7

	// A tab stop is taken as the first-line indent when fewer than
	// rareStartPercent of its rows look like starts while more than
	// commonStartPercent of the other stop's rows do, or when it trails
	// the other stop by more than commonStartPercent points.
	rareStartPercent   = 20
	commonStartPercent = 30
)

// markRowsWithModel adds hypotheses for ref to every row of [start, end)
// that fits it. A row valid both as a first and a body line is a first line
// when the row above ends short: past eopThreshold for fully justified text,
// or with room for this row's first word otherwise.
func (d *detection) markRowsWithModel(start, end int, ref modelRef, eopThreshold int) {
	if !d.acceptableRowArgs(0, "markRowsWithModel", start, end) {
		return
	}
	j := d.theory.model(ref).Justification()
	for row := start; row < end; row++ {
		validFirst := d.validFirstLine(row, ref)
		validBody := d.validBodyLine(row, ref)
		switch {
		case validFirst && !validBody:
			d.rows[row].addStartLine(ref)
		case validBody && !validFirst:
			d.rows[row].addBodyLine(ref)
		case validBody && validFirst:
			afterEOP := row == start
			if row > start {
				if eopThreshold > 0 {
					if j == model.JustifyLeft {
						afterEOP = d.rows[row-1].rindent > eopThreshold
					} else {
						afterEOP = d.rows[row-1].lindent > eopThreshold
					}
				} else {
					afterEOP = firstWordWouldHaveFit(&d.rows[row-1], &d.rows[row], j)
				}
			}
			if afterEOP {
				d.rows[row].addStartLine(ref)
			} else {
				d.rows[row].addBodyLine(ref)
			}
		}
	}
}

// outlineState collects what the geometric classifier learns about
// rows[start, end) while building a single model for them.
type outlineState struct {
	d     *detection
	start int
	end   int

	// tolerance is how far an aligned edge may drift
	tolerance int

	// ltr is the direction of the first row, taken for the whole range
	ltr bool

	leftTabs  []cluster
	rightTabs []cluster

	just        model.Justification
	margin      int
	firstIndent int
	bodyIndent  int

	// eopThreshold is non-zero when the text is fully justified
	eopThreshold int
}

func newOutlineState(d *detection, start, end int) *outlineState {
	s := &outlineState{d: d, start: start, end: end}
	s.tolerance = d.interwordSpace(start, end)
	s.leftTabs, s.rightTabs = d.calculateTabStops(start, end, s.tolerance)
	if d.debugLevel >= 3 {
		d.logger.Debug("geometry",
			zap.Int("tolerance", s.tolerance),
			zap.Int("left_tabs", len(s.leftTabs)),
			zap.Int("right_tabs", len(s.rightTabs)))
	}
	s.ltr = d.rows[start].ri.LTR
	return s
}

func (s *outlineState) assumeLeftJustification() {
	s.just = model.JustifyLeft
	s.margin = s.d.rows[s.start].lmargin
}

func (s *outlineState) assumeRightJustification() {
	s.just = model.JustifyRight
	s.margin = s.d.rows[s.start].rmargin
}

// alignTabs are the stops on the side the text is aligned to.
func (s *outlineState) alignTabs() []cluster {
	if s.just == model.JustifyRight {
		return s.rightTabs
	}
	return s.leftTabs
}

// offsideTabs are the stops on the other side.
func (s *outlineState) offsideTabs() []cluster {
	if s.just == model.JustifyRight {
		return s.leftTabs
	}
	return s.rightTabs
}

// isFullRow reports whether row i runs from the leftmost to the rightmost
// stop.
func (s *outlineState) isFullRow(i int) bool {
	return closestCluster(s.leftTabs, s.d.rows[i].lindent) == 0 &&
		closestCluster(s.rightTabs, s.d.rows[i].rindent) == 0
}

func (s *outlineState) alignsideTabIndex(row int) int {
	return closestCluster(s.alignTabs(), s.d.rows[row].alignsideIndent(s.just))
}

func (s *outlineState) firstWordWouldHaveFit(a, b int) bool {
	return firstWordWouldHaveFit(&s.d.rows[a], &s.d.rows[b], s.just)
}

func (s *outlineState) fail(minDebugLevel int, why string) {
	s.d.fail(minDebugLevel, why, s.start, s.end)
}

func (s *outlineState) model() model.ParagraphModel {
	return model.NewParagraphModel(s.just, s.margin, s.firstIndent, s.bodyIndent, s.tolerance)
}

// geometricClassify looks for a single model explaining rows[start, end)
// from the outline of the text alone. It is the fallback for text without
// strong textual clues, such as scripts without capital letters.
//
// The hard case is an outline with few short lines:
//
//	xxxxxxxxxxxxxxxxxxxxxx
//	  xxxxxxxxxxxxxxxxxxxx
//	xxxxxxxxxxxxxxxxxxxxxx
//	xxxxxxxxxxxxxxxxxxxxxx
//
// which could be a list item followed by more items, or the end of one
// paragraph followed by an indented one. With far more full lines than
// short ones the second reading is the better guess.
func (d *detection) geometricClassify(start, end int) {
	if !d.acceptableRowArgs(4, "geometricClassify", start, end) {
		return
	}
	if d.debugLevel > 1 {
		fmt.Fprintln(d.out, "###############################################")
		fmt.Fprintf(d.out, "##### GeometricClassify( rows[%d:%d) )   ####\n", start, end)
		fmt.Fprintln(d.out, "###############################################")
	}
	d.recomputeMarginsAndClearHypotheses(start, end, marginPercentile)

	s := newOutlineState(d, start, end)
	if len(s.leftTabs) > 2 && len(s.rightTabs) > 2 {
		s.fail(2, "Too much variety for simple outline classification.")
		return
	}
	if len(s.leftTabs) <= 1 && len(s.rightTabs) <= 1 {
		s.fail(1, "Not enough variety for simple outline classification.")
		return
	}
	if len(s.leftTabs)+len(s.rightTabs) == 3 {
		d.classifyThreeTabStops(s)
		return
	}

	// One side has two or more stops and the other one or two. A side with
	// three or more is ragged, so the text is aligned to the other.
	switch {
	case len(s.rightTabs) > 2:
		s.assumeLeftJustification()
	case len(s.leftTabs) > 2:
		s.assumeRightJustification()
	case s.ltr:
		s.assumeLeftJustification()
	default:
		s.assumeRightJustification()
	}

	align := s.alignTabs()
	if len(align) == 2 {
		// Count how often each aligned stop looks like a paragraph start.
		var firsts [2]int
		firsts[s.alignsideTabIndex(start)]++
		jamPacked := true
		for i := start + 1; i < end; i++ {
			if s.firstWordWouldHaveFit(i-1, i) {
				firsts[s.alignsideTabIndex(i)]++
				jamPacked = false
			}
		}
		// If no line ends short, the last line may be the only short one;
		// if it looks like a paragraph end, the other stop starts them.
		if jamPacked && s.firstWordWouldHaveFit(end-1, end-1) {
			firsts[1-s.alignsideTabIndex(end-1)]++
		}

		percent0 := 100 * firsts[0] / align[0].count
		percent1 := 100 * firsts[1] / align[1].count

		switch {
		case (percent0 < rareStartPercent && commonStartPercent < percent1) || percent0+commonStartPercent < percent1:
			s.firstIndent = align[1].center
			s.bodyIndent = align[0].center
		case (percent1 < rareStartPercent && commonStartPercent < percent0) || percent1+commonStartPercent < percent0:
			s.firstIndent = align[0].center
			s.bodyIndent = align[1].center
		default:
			// Ambiguous, probably lineated text such as poetry.
			if d.debugLevel > 1 {
				side := "right"
				if s.just == model.JustifyLeft {
					side = "left"
				}
				fmt.Fprintf(d.out, "# Cannot determine %s indent likely to start paragraphs.\n", side)
				fmt.Fprintf(d.out, "# Indent of %d looks like a first line %d%% of the time.\n", align[0].center, percent0)
				fmt.Fprintf(d.out, "# Indent of %d looks like a first line %d%% of the time.\n", align[1].center, percent1)
				d.printRowRange(start, end)
			}
			return
		}
	} else {
		s.firstIndent = align[0].center
		s.bodyIndent = align[0].center
	}

	ref := d.theory.addModel(s.model())

	// Assume full justification unless a short line shows up that does not
	// end a paragraph.
	offside := s.offsideTabs()
	s.eopThreshold = (offside[0].center + offside[1].center) / 2
	for i := start; i < end-1; i++ {
		var shortNonFinal bool
		if len(align) == 2 {
			shortNonFinal = d.validFirstLine(i+1, ref)
		} else {
			shortNonFinal = !s.firstWordWouldHaveFit(i, i+1)
		}
		if shortNonFinal && !nearlyEqual(offside[0].center, d.rows[i].offsideIndent(s.just), s.tolerance) {
			s.eopThreshold = 0
			break
		}
	}
	d.markRowsWithModel(start, end, ref, s.eopThreshold)
}

// classifyThreeTabStops handles outlines with exactly three tab stops:
// rectangles with some short lines of equal length.
//
//	(A1)  xxxxxxxxxxxxx  (B1) xxxxxxxxxxxx
//	        xxxxxxxxxxx       xxxxxxxxxx
//	      xxxxxxxxxxxxx       xxxxxxxxxxxx
//	      xxxxxxxxxxxxx       xxxxxxxxxxxx
//
//	(A2)  xxxxxxxxxxxxx  (B2) xxxxxxxxxxxx
//	      xxxxxxxxxxxxx       xxxxxxxxxxxx
//	      xxxxxxxxxxxxx       xxxxxxxxxxxx
//	        xxxxxxxxxxx       xxxxxxxxxx
//
// Read as (first indent, body indent) by script direction:
// A1 is LTR 2,0 and RTL 0,0; B1 is LTR 0,0 and RTL 2,0; A2 is LTR 2,0 and
// an RTL crown; B2 is an LTR crown and RTL 2,0.
func (d *detection) classifyThreeTabStops(s *outlineState) {
	numRows := s.end - s.start
	numFullRows := 0
	lastRowFull := 0
	for i := s.start; i < s.end; i++ {
		if s.isFullRow(i) {
			numFullRows++
			if i == s.end-1 {
				lastRowFull++
			}
		}
	}

	if float64(numFullRows) < fullRowFraction*float64(numRows) {
		s.fail(1, "Not enough full lines to know which lines start paras.")
		return
	}

	s.eopThreshold = 0
	if s.ltr {
		s.assumeLeftJustification()
	} else {
		s.assumeRightJustification()
	}

	if d.debugLevel > 0 {
		side := "right"
		if s.ltr {
			side = "left"
		}
		fmt.Fprintf(d.out, "# Not enough variety for clear outline classification. "+
			"Guessing these are %s aligned based on script.\n", side)
		d.printRowRange(s.start, s.end)
	}

	if align := s.alignTabs(); len(align) == 2 {
		s.firstIndent = align[1].center
		s.bodyIndent = align[0].center
	} else if numRows-1 == numFullRows-lastRowFull {
		crown := crownRightRef
		if s.ltr {
			crown = crownLeftRef
		}
		d.rows[s.start].addStartLine(crown)
		for i := s.start + 1; i < s.end; i++ {
			d.rows[i].addBodyLine(crown)
		}
		return
	} else {
		s.firstIndent = align[0].center
		s.bodyIndent = align[0].center
		offside := s.offsideTabs()
		s.eopThreshold = (offside[0].center + offside[1].center) / 2
	}

	ref := d.theory.addModel(s.model())
	d.markRowsWithModel(s.start, s.end, ref, s.eopThreshold)
}
