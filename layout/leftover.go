package layout

// interval is a half-open range of rows.
type interval struct {
	begin int
	end   int
}

// rowIsStranded reports whether the evidence for row is weak in context:
// none of its models continue into a run of more than two start lines, or
// of a start line plus a body line. Two lines of source code indented like
// body text look like two paragraph starts, while a run of short dialogue
// lines keeps going.
func (d *detection) rowIsStranded(row int) bool {
	var rowModels modelSet
	d.rows[row].strongHypotheses(&rowModels)

	for _, ref := range rowModels {
		allStarts := true
		runLength := 1
		extend := func(i int) bool {
			switch d.rows[i].lineTypeFor(ref) {
			case lineStart:
				runLength++
			case lineMultiple, lineBody:
				runLength++
				allStarts = false
			default:
				return false
			}
			return true
		}
		for i := row - 1; i >= 0; i-- {
			if !extend(i) {
				break
			}
		}
		for i := row + 1; i < len(d.rows); i++ {
			if !extend(i) {
				break
			}
		}
		if runLength > 2 || (!allStarts && runLength > 1) {
			return false
		}
	}
	return true
}

// leftoverSegments returns the maximal runs of rows in [start, end) that
// still need work: rows with words but no model, crown rows not followed by
// a modeled row before an unexplained one, and stranded rows.
func (d *detection) leftoverSegments(start, end int) []interval {
	var toFix []interval
	for i := start; i < end; i++ {
		needsFixing := false

		var models, modelsWithCrowns modelSet
		d.rows[i].strongHypotheses(&models)
		d.rows[i].nonNullHypotheses(&modelsWithCrowns)
		if len(models) == 0 && len(modelsWithCrowns) > 0 {
			for next := i + 1; next < len(d.rows); next++ {
				var endModels, strongEndModels modelSet
				d.rows[next].nonNullHypotheses(&endModels)
				d.rows[next].strongHypotheses(&strongEndModels)
				if len(endModels) == 0 {
					needsFixing = true
					break
				}
				if len(strongEndModels) > 0 {
					break
				}
			}
		} else if len(models) == 0 && d.rows[i].ri.NumWords > 0 {
			needsFixing = true
		}

		if !needsFixing && len(models) > 0 {
			needsFixing = d.rowIsStranded(i)
		}

		if needsFixing {
			if n := len(toFix); n > 0 && toFix[n-1].end == i {
				toFix[n-1].end = i + 1
			} else {
				toFix = append(toFix, interval{begin: i, end: i + 1})
			}
		}
	}
	return toFix
}
