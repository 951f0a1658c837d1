package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/parafind/model"
)

func TestSimpleClusterer(t *testing.T) {
	c := newSimpleClusterer(5)
	for _, v := range []int{22, 0, 40, 3, 20} {
		c.add(v)
	}
	assert.Equal(t, 5, c.size())
	clusters := c.clusters()
	assert.Equal(t, []cluster{{center: 1, count: 2}, {center: 21, count: 2}, {center: 40, count: 1}}, clusters)

	assert.Equal(t, 0, closestCluster(clusters, -10))
	assert.Equal(t, 1, closestCluster(clusters, 30))
	assert.Equal(t, 2, closestCluster(clusters, 35))
	assert.Equal(t, 0, closestCluster(nil, 35))
}

func clusterValues(maxWidth int, values ...int) []cluster {
	c := newSimpleClusterer(maxWidth)
	for _, v := range values {
		c.add(v)
	}
	return c.clusters()
}

func centersOf(clusters []cluster) []int {
	centers := make([]int, len(clusters))
	for i, c := range clusters {
		centers[i] = c.center
	}
	return centers
}

func TestClusteringCentersIsStable(t *testing.T) {
	tests := []struct {
		name     string
		maxWidth int
		values   []int
		centers  []int
	}{
		{"indents", 5, []int{22, 0, 40, 3, 20}, []int{1, 21, 40}},
		{"wide clusters", 5, []int{10, 12, 14, 50, 55, 100}, []int{12, 52, 100}},
		{"single value", 10, []int{7}, []int{7}},
		{"repeated values", 6, []int{30, 30, 30, 0, 0}, []int{0, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			centers := centersOf(clusterValues(tt.maxWidth, tt.values...))
			require.Equal(t, tt.centers, centers)

			again := clusterValues(tt.maxWidth, centers...)
			assert.Equal(t, centers, centersOf(again))
			for _, c := range again {
				assert.Equal(t, 1, c.count)
			}
		})
	}
}

func TestClusteringMergesCloseCenters(t *testing.T) {
	// 64 and 70 form one cluster centered on 67; 72 is just out of reach
	// and starts its own, 5 away from the first center.
	clusters := clusterValues(6, 64, 70, 72)
	require.Equal(t, []cluster{{center: 67, count: 2}, {center: 72, count: 1}}, clusters)

	again := clusterValues(6, centersOf(clusters)...)
	assert.Equal(t, []cluster{{center: 69, count: 2}}, again)
}

func TestInfrequentThreshold(t *testing.T) {
	assert.Equal(t, 0, infrequentThreshold(5))
	assert.Equal(t, 1, infrequentThreshold(fewRows))
	assert.Equal(t, 1, infrequentThreshold(manyRows-1))
	assert.Equal(t, 2, infrequentThreshold(manyRows))
}

func TestPruneRarestTab(t *testing.T) {
	tabs := []cluster{{center: 0, count: 3}, {center: 20, count: 1}, {center: 40, count: 1}}
	assert.Equal(t, []cluster{{center: 0, count: 3}, {center: 20, count: 1}}, pruneRarestTab(tabs, 1))
	assert.Equal(t, tabs, pruneRarestTab(tabs, 0))
}

func TestCalculateTabStops(t *testing.T) {
	rows := typewriterRows(twoSimpleParagraphs)
	det := NewDetector().newDetection(rows, nil)

	left, right := det.calculateTabStops(0, len(rows), 10)
	assert.Equal(t, []cluster{{center: 0, count: 7}, {center: 20, count: 2}}, left)
	assert.NotEmpty(t, right)

	left, right = det.calculateTabStops(3, 2, 10)
	assert.Empty(t, left)
	assert.Empty(t, right)
}

func TestCalculateTabStopsBothEmptyOrBothSet(t *testing.T) {
	rows := []model.RowInfo{{NumWords: 1, LDistance: 0, RDistance: 50}}
	det := NewDetector().newDetection(rows, nil)
	left, right := det.calculateTabStops(0, 1, 10)
	assert.Len(t, left, 1)
	assert.Len(t, right, 1)
}
