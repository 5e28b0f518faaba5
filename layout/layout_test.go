package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlaps(a, b Region) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestCardGrid_Shapes(t *testing.T) {
	bounds := Region{X: 0.5, Y: 1.4, W: 12.3, H: 4.8}

	tests := []struct {
		name      string
		n         int
		wantCount int
		wantCols  int
	}{
		{"one card", 1, 1, 1},
		{"two cards", 2, 2, 2},
		{"three cards single row", 3, 3, 3},
		{"four cards two by two", 4, 4, 2},
		{"five cards", 5, 5, 3},
		{"six cards", 6, 6, 3},
		{"seven cards truncated", 7, 6, 3},
		{"many cards truncated", 40, 6, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CardGrid(bounds, tt.n, CardGap)
			require.Len(t, got, tt.wantCount)

			for _, r := range got {
				assert.Greater(t, r.W, 0.0)
				assert.Greater(t, r.H, 0.0)
				assert.GreaterOrEqual(t, r.X, bounds.X)
				assert.GreaterOrEqual(t, r.Y, bounds.Y)
				assert.LessOrEqual(t, r.X+r.W, bounds.X+bounds.W+1e-9)
				assert.LessOrEqual(t, r.Y+r.H, bounds.Y+bounds.H+1e-9)
			}

			// Row-major: the second region of a multi-column grid sits to
			// the right of the first.
			if tt.wantCols > 1 && len(got) > 1 {
				assert.Greater(t, got[1].X, got[0].X)
				assert.Equal(t, got[0].Y, got[1].Y)
			}
		})
	}
}

func TestCardGrid_NonOverlapping(t *testing.T) {
	bounds := Region{X: 0, Y: 0, W: 12, H: 5}
	for n := 1; n <= 12; n++ {
		got := CardGrid(bounds, n, 0.35)
		assert.LessOrEqual(t, len(got), MaxCards)
		for i := range got {
			for j := i + 1; j < len(got); j++ {
				assert.False(t, overlaps(got[i], got[j]),
					"n=%d: regions %d and %d overlap", n, i, j)
			}
		}
	}
}

func TestCardGrid_ZeroAndNegative(t *testing.T) {
	bounds := Region{W: 10, H: 5}
	assert.Nil(t, CardGrid(bounds, 0, 0.35))
	assert.Nil(t, CardGrid(bounds, -3, 0.35))
}

func TestColumns_EqualSplit(t *testing.T) {
	bounds := Region{X: 1, Y: 2, W: 10, H: 4}
	got := Columns(bounds, 3, 0.5)
	require.Len(t, got, 3)

	want := (10.0 - 2*0.5) / 3
	for i, r := range got {
		assert.InDelta(t, want, r.W, 1e-9)
		assert.Equal(t, 2.0, r.Y)
		assert.Equal(t, 4.0, r.H)
		assert.InDelta(t, 1.0+float64(i)*(want+0.5), r.X, 1e-9)
	}

	assert.Nil(t, Columns(bounds, 0, 0.5))
}

func TestStatRow_CapsAtFive(t *testing.T) {
	bounds := StatRowBounds()
	assert.Len(t, StatRow(bounds, 3, StatGap), 3)
	assert.Len(t, StatRow(bounds, 5, StatGap), 5)
	assert.Len(t, StatRow(bounds, 9, StatGap), 5)
	assert.Nil(t, StatRow(bounds, 0, StatGap))
}

func TestTimeline_MarkerPositionsAndAlternation(t *testing.T) {
	bounds := TimelineBounds()
	plan := Timeline(bounds, 4)
	require.Len(t, plan.Steps, 4)

	axisY := bounds.Y + bounds.H/2
	assert.InDelta(t, 3.8, axisY, 1e-9)
	assert.InDelta(t, axisY, plan.Axis.Y, 1e-9)

	step := bounds.W / 4
	for i, ts := range plan.Steps {
		wantCX := bounds.X + float64(i)*step + step/2
		assert.InDelta(t, wantCX, ts.CenterX, 1e-9, "step %d", i)
		assert.Equal(t, i%2 == 0, ts.Above, "step %d", i)

		// Marker is centered on its x position.
		assert.InDelta(t, wantCX, ts.Marker.X+ts.Marker.W/2, 1e-9)

		if ts.Above {
			assert.Less(t, ts.Title.Y, axisY)
		} else {
			assert.Greater(t, ts.Title.Y, axisY)
		}
	}
}

func TestTimeline_NotCapped(t *testing.T) {
	plan := Timeline(TimelineBounds(), 9)
	assert.Len(t, plan.Steps, 9)

	empty := Timeline(TimelineBounds(), 0)
	assert.Empty(t, empty.Steps)
}

func TestAutoColumnWidth_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  float64
	}{
		{"short values hit floor", []string{"a", "bb"}, 10},
		{"empty column hits floor", nil, 10},
		{"mid length", []string{"hello world value"}, 21},
		{"long values hit ceiling", []string{string(make([]byte, 200))}, 50},
		{"multi-byte text counts characters", []string{"季度营收汇总表"}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoColumnWidth(tt.cells))
		})
	}
}

func TestSlideFurniture_Geometry(t *testing.T) {
	assert.Equal(t, Region{0, 0, SlideWidth, 1.1}, TitleBar())
	assert.Equal(t, Region{0.8, 1.05, 3, 0.04}, AccentBar())
	assert.Equal(t, Region{0, 7.2, SlideWidth, 0.3}, FooterBar())
	assert.Equal(t, 5.0, CardGridBounds(2).H)
	assert.Equal(t, 4.8, CardGridBounds(5).H)
}
