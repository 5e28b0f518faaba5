package chartspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedBarOffsets_CenteredOnCategory(t *testing.T) {
	assert.Equal(t, []float64{0}, GroupedBarOffsets(1, 0.8))

	two := GroupedBarOffsets(2, 0.8)
	require.Len(t, two, 2)
	assert.InDelta(t, -0.2, two[0], 1e-9)
	assert.InDelta(t, 0.2, two[1], 1e-9)

	three := GroupedBarOffsets(3, 0.9)
	require.Len(t, three, 3)
	assert.InDelta(t, -0.3, three[0], 1e-9)
	assert.InDelta(t, 0, three[1], 1e-9)
	assert.InDelta(t, 0.3, three[2], 1e-9)

	// The group is always centered: offsets sum to zero.
	sum := 0.0
	for _, o := range GroupedBarOffsets(7, 1.4) {
		sum += o
	}
	assert.InDelta(t, 0, sum, 1e-9)

	assert.Nil(t, GroupedBarOffsets(0, 0.8))
	assert.Nil(t, GroupedBarOffsets(-2, 0.8))
}

func TestStackSegments_Accumulates(t *testing.T) {
	segs := StackSegments([][]float64{{1, 2}, {3, 4}})
	require.Len(t, segs, 2)

	assert.Equal(t, StackSegment{Bottom: 0, Top: 1}, segs[0][0])
	assert.Equal(t, StackSegment{Bottom: 0, Top: 2}, segs[0][1])
	assert.Equal(t, StackSegment{Bottom: 1, Top: 4}, segs[1][0])
	assert.Equal(t, StackSegment{Bottom: 2, Top: 6}, segs[1][1])

	// Category totals are the Top of the last series.
	assert.Equal(t, 4.0, segs[1][0].Top)
	assert.Equal(t, 6.0, segs[1][1].Top)
}

func TestStackSegments_RaggedInput(t *testing.T) {
	segs := StackSegments([][]float64{{1}, {3, 4}})
	require.Len(t, segs, 2)
	require.Len(t, segs[0], 2)

	// Missing values read as zero.
	assert.Equal(t, StackSegment{Bottom: 0, Top: 1}, segs[0][0])
	assert.Equal(t, StackSegment{Bottom: 0, Top: 0}, segs[0][1])
	assert.Equal(t, StackSegment{Bottom: 0, Top: 4}, segs[1][1])

	assert.Nil(t, StackSegments(nil))
}

func TestPieWedges_Proportions(t *testing.T) {
	wedges := PieWedges([]float64{1, 1, 2})
	require.Len(t, wedges, 3)

	assert.InDelta(t, 90, wedges[0].Start, 1e-9)
	assert.InDelta(t, 90, wedges[0].Sweep, 1e-9)
	assert.InDelta(t, 180, wedges[1].Start, 1e-9)
	assert.InDelta(t, 90, wedges[1].Sweep, 1e-9)
	assert.InDelta(t, 270, wedges[2].Start, 1e-9)
	assert.InDelta(t, 180, wedges[2].Sweep, 1e-9)

	assert.InDelta(t, 0.25, wedges[0].Frac, 1e-9)
	assert.InDelta(t, 0.5, wedges[2].Frac, 1e-9)
}

func TestPieWedges_Degenerate(t *testing.T) {
	assert.Nil(t, PieWedges(nil))
	assert.Nil(t, PieWedges([]float64{0, 0}))
	assert.Nil(t, PieWedges([]float64{-1, -2}))

	// Negative values keep their slot with zero sweep.
	wedges := PieWedges([]float64{2, -1, 2})
	require.Len(t, wedges, 3)
	assert.InDelta(t, 180, wedges[0].Sweep, 1e-9)
	assert.InDelta(t, 0, wedges[1].Sweep, 1e-9)
	assert.InDelta(t, 180, wedges[2].Sweep, 1e-9)
	assert.InDelta(t, 270, wedges[2].Start, 1e-9)
}
