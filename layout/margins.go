package layout

// marginPercentile is the share of rows allowed to stick out past the
// common margin of a range, in percent.
const marginPercentile = 10

// recomputeMarginsAndClearHypotheses forgets everything known about
// rows[start, end) and moves the common part of their edge distances into
// the margins. Rows sticking out past the given percentile of their side
// are ignored when choosing the margin, so a stray glyph in the gutter does
// not shift it.
func (d *detection) recomputeMarginsAndClearHypotheses(start, end, percentile int) {
	if !d.acceptableRowArgs(0, "recomputeMarginsAndClearHypotheses", start, end) {
		return
	}
	if start == end {
		return
	}

	lmin := d.rows[start].lmargin + d.rows[start].lindent
	lmax := lmin
	rmin := d.rows[start].rmargin + d.rows[start].rindent
	rmax := rmin
	for i := start; i < end; i++ {
		r := &d.rows[i]
		r.setUnknown()
		if r.ri.NumWords == 0 {
			continue
		}
		lmin, lmax = updateRange(r.lmargin+r.lindent, lmin, lmax)
		rmin, rmax = updateRange(r.rmargin+r.rindent, rmin, rmax)
	}

	lefts := newHistogram(lmin, lmax)
	rights := newHistogram(rmin, rmax)
	for i := start; i < end; i++ {
		r := &d.rows[i]
		if r.ri.NumWords == 0 {
			continue
		}
		lefts.add(r.lmargin + r.lindent)
		rights.add(r.rmargin + r.rindent)
	}
	frac := float64(clipInt(percentile, 0, 100)) / 100
	ignorableLeft := int(lefts.ile(frac))
	ignorableRight := int(rights.ile(frac))

	for i := start; i < end; i++ {
		r := &d.rows[i]
		ldelta := ignorableLeft - r.lmargin
		r.lmargin += ldelta
		r.lindent -= ldelta
		rdelta := ignorableRight - r.rmargin
		r.rmargin += rdelta
		r.rindent -= rdelta
	}
}

// interwordSpace returns the median interword space of the rows in
// [start, end) that have more than one word, but no less than a third of
// the typical word height and never under 2 pixels.
func (d *detection) interwordSpace(start, end int) int {
	if end < start+1 {
		return 1
	}
	first, last := d.rows[start].ri, d.rows[end-1].ri
	wordHeight := (first.LWord.Box.Height() + last.LWord.Box.Height()) / 2
	wordWidth := (first.LWord.Box.Width() + last.LWord.Box.Width()) / 2

	spacing := newHistogram(0, 4+wordWidth)
	for i := start; i < end; i++ {
		if d.rows[i].ri.NumWords > 1 {
			spacing.add(d.rows[i].ri.AverageInterwordSpace)
		}
	}

	minimum := maxInt(wordHeight/3, 2)
	median := int(spacing.median())
	if median > minimum {
		return median
	}
	return minimum
}

func updateRange(v, lo, hi int) (int, int) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
