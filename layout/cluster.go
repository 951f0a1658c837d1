package layout

import (
	"sort"

	"go.uber.org/zap"
)

// Rows thresholds for ignoring rare tab stops when clustering.
const (
	fewRows  = 8
	manyRows = 20
)

// cluster is a group of nearby indent values.
type cluster struct {
	center int
	count  int
}

// simpleClusterer groups values greedily: each cluster starts at its
// smallest member and takes every value within maxWidth of it. Centers of
// neighboring clusters can end up closer than maxWidth, and clustering such
// centers again merges them.
type simpleClusterer struct {
	maxWidth int
	values   []int
}

func newSimpleClusterer(maxWidth int) *simpleClusterer {
	return &simpleClusterer{maxWidth: maxWidth}
}

func (c *simpleClusterer) add(value int) {
	c.values = append(c.values, value)
}

func (c *simpleClusterer) size() int {
	return len(c.values)
}

func (c *simpleClusterer) clusters() []cluster {
	sort.Ints(c.values)
	var out []cluster
	for i := 0; i < len(c.values); {
		first := i
		lo := c.values[i]
		hi := lo
		for i++; i < len(c.values) && c.values[i] <= lo+c.maxWidth; i++ {
			hi = c.values[i]
		}
		out = append(out, cluster{center: (lo + hi) / 2, count: i - first})
	}
	return out
}

// closestCluster returns the index of the cluster whose center is nearest
// to value. Ties go to the earlier cluster; an empty slice yields 0.
func closestCluster(clusters []cluster, value int) int {
	best := 0
	for i := range clusters {
		if absInt(value-clusters[i].center) < absInt(value-clusters[best].center) {
			best = i
		}
	}
	return best
}

// infrequentThreshold is the cluster size at or below which a tab stop is
// considered an outlier for a run of n rows.
func infrequentThreshold(n int) int {
	switch {
	case n >= manyRows:
		return 2
	case n >= fewRows:
		return 1
	default:
		return 0
	}
}

// calculateTabStops clusters the left and right indents of rows[start, end).
// Rows whose left and right indents both fall in rare clusters are left out,
// unless one side then ends up with a single stop against a ragged other
// side. The two returned slices are either both empty or both non-empty.
func (d *detection) calculateTabStops(start, end, tolerance int) (leftTabs, rightTabs []cluster) {
	if !d.acceptableRowArgs(1, "calculateTabStops", start, end) {
		return nil, nil
	}

	initialLefts := newSimpleClusterer(tolerance)
	initialRights := newSimpleClusterer(tolerance)
	for i := start; i < end; i++ {
		initialLefts.add(d.rows[i].lindent)
		initialRights.add(d.rows[i].rindent)
	}
	initialLeftTabs := initialLefts.clusters()
	initialRightTabs := initialRights.clusters()

	ignore := infrequentThreshold(end - start)
	frequent := func(i int) bool {
		lidx := closestCluster(initialLeftTabs, d.rows[i].lindent)
		ridx := closestCluster(initialRightTabs, d.rows[i].rindent)
		return initialLeftTabs[lidx].count > ignore || initialRightTabs[ridx].count > ignore
	}

	lefts := newSimpleClusterer(tolerance)
	rights := newSimpleClusterer(tolerance)
	for i := start; i < end; i++ {
		if frequent(i) {
			lefts.add(d.rows[i].lindent)
			rights.add(d.rows[i].rindent)
		}
	}
	leftTabs = lefts.clusters()
	rightTabs = rights.clusters()

	if (len(leftTabs) == 1 && len(rightTabs) >= 4) || (len(rightTabs) == 1 && len(leftTabs) >= 4) {
		// A single stop on one side against a ragged other side is typical
		// of index pages; the outliers matter there.
		for i := start; i < end; i++ {
			if !frequent(i) {
				lefts.add(d.rows[i].lindent)
				rights.add(d.rows[i].rindent)
			}
		}
	}
	leftTabs = lefts.clusters()
	rightTabs = rights.clusters()

	if len(leftTabs) == 3 && len(rightTabs) >= 4 {
		leftTabs = pruneRarestTab(leftTabs, ignore)
	}
	if len(rightTabs) == 3 && len(leftTabs) >= 4 {
		rightTabs = pruneRarestTab(rightTabs, ignore)
	}

	if d.debugLevel >= 3 {
		d.logger.Debug("tab stops",
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Int("tolerance", tolerance),
			zap.Int("left_tabs", len(leftTabs)),
			zap.Int("right_tabs", len(rightTabs)),
			zap.Int("clustered_rows", lefts.size()))
	}
	return leftTabs, rightTabs
}

// pruneRarestTab removes the least populated stop when it is rare enough to
// ignore. Ties go to the latest stop.
func pruneRarestTab(tabs []cluster, ignore int) []cluster {
	prune := -1
	for i := len(tabs) - 1; i >= 0; i-- {
		if prune < 0 || tabs[i].count < tabs[prune].count {
			prune = i
		}
	}
	if prune >= 0 && tabs[prune].count <= ignore {
		return append(tabs[:prune:prune], tabs[prune+1:]...)
	}
	return tabs
}
