package layout

import "math"

// histogram counts integer samples in the closed range [lo, hi]. Samples
// outside the range are clipped into the end buckets.
type histogram struct {
	lo      int
	hi      int
	buckets []int
	total   int
}

func newHistogram(lo, hi int) *histogram {
	if hi < lo {
		lo, hi = 0, 1
	}
	return &histogram{lo: lo, hi: hi, buckets: make([]int, hi-lo+1)}
}

func (h *histogram) add(value int) {
	value = clipInt(value, h.lo, h.hi)
	h.buckets[value-h.lo]++
	h.total++
}

// pileCount returns the number of samples in the bucket holding value.
func (h *histogram) pileCount(value int) int {
	if value <= h.lo {
		return h.buckets[0]
	}
	if value >= h.hi {
		return h.buckets[len(h.buckets)-1]
	}
	return h.buckets[value-h.lo]
}

// ile returns the value below which frac of the samples lie, interpolating
// linearly within the bucket that crosses the target.
func (h *histogram) ile(frac float64) float64 {
	if h.total == 0 {
		return float64(h.lo)
	}
	target := frac * float64(h.total)
	target = math.Max(1, math.Min(target, float64(h.total)))
	sum := 0
	index := 0
	for index < len(h.buckets) && float64(sum) < target {
		sum += h.buckets[index]
		index++
	}
	if index == 0 {
		return float64(h.lo)
	}
	return float64(h.lo+index) - (float64(sum)-target)/float64(h.buckets[index-1])
}

// median returns ile(0.5), except that a median landing in an empty bucket
// is moved to the midpoint of the nearest occupied buckets on either side.
func (h *histogram) median() float64 {
	median := h.ile(0.5)
	pile := int(math.Floor(median))
	if h.total > 1 && h.pileCount(pile) == 0 {
		lo := pile
		for lo > h.lo && h.pileCount(lo) == 0 {
			lo--
		}
		hi := pile
		for hi < h.hi && h.pileCount(hi) == 0 {
			hi++
		}
		median = float64(lo+hi) / 2
	}
	return median
}

func clipInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
