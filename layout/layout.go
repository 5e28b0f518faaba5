// Package layout computes rectangular regions for the document composers.
// Every function is pure: it takes a bounding region and an item count and
// returns geometry in inches, with no knowledge of what gets drawn there.
package layout

import "unicode/utf8"

// Region is an axis-aligned rectangle in inches.
type Region struct {
	X, Y, W, H float64
}

// Slide canvas dimensions for 16:9 presentations, in inches.
const (
	SlideWidth  = 13.333
	SlideHeight = 7.5
)

// Shared furniture geometry for content slides.
const (
	titleBarHeight  = 1.1
	contentStartY   = 1.4
	contentMarginX  = 0.5
	contentWidth    = 12.3
	footerBarY      = 7.2
	footerBarHeight = 0.3
)

// TitleBar returns the full-width band at the top of a content slide.
func TitleBar() Region {
	return Region{X: 0, Y: 0, W: SlideWidth, H: titleBarHeight}
}

// TitleTextBox returns the text region inside the title bar.
func TitleTextBox() Region {
	return Region{X: 0.8, Y: 0.15, W: 11, H: 0.8}
}

// AccentBar returns the thin accent strip under the title bar.
func AccentBar() Region {
	return Region{X: 0.8, Y: 1.05, W: 3, H: 0.04}
}

// ContentRegion returns the area between the title bar and the footer.
func ContentRegion() Region {
	return Region{X: contentMarginX, Y: contentStartY, W: contentWidth, H: footerBarY - contentStartY - 0.2}
}

// FooterBar returns the band at the bottom edge of a slide.
func FooterBar() Region {
	return Region{X: 0, Y: footerBarY, W: SlideWidth, H: footerBarHeight}
}

// SlideNumberBox returns the region holding the page number above the
// footer bar.
func SlideNumberBox() Region {
	return Region{X: 12.2, Y: 7.0, W: 0.9, H: 0.4}
}

// Gaps between sibling cards, in inches.
const (
	CardGap = 0.35
	StatGap = 0.4
)

// CardGridBounds returns the canvas area for an n-item card grid. Single
// row grids get slightly more height than two-row grids.
func CardGridBounds(n int) Region {
	h := 4.8
	if n <= 3 {
		h = 5.0
	}
	return Region{X: contentMarginX, Y: contentStartY, W: contentWidth, H: h}
}

// StatRowBounds returns the canvas area for a row of stat cards.
func StatRowBounds() Region {
	return Region{X: contentMarginX, Y: 2.2, W: contentWidth, H: 3.5}
}

// TimelineBounds returns the canvas area for a horizontal timeline; its
// vertical center is the axis line.
func TimelineBounds() Region {
	return Region{X: 0.8, Y: 1.4, W: 11.7, H: 4.8}
}

// MaxCards is the hard cap on cards in a grid. Callers supplying more
// items lose the remainder; the cap is a deliberate layout decision, not
// an input error.
const MaxCards = 6

// MaxStats caps the number of stat cards in a row, with the same
// truncation behavior as MaxCards.
const MaxStats = 5

// CardGrid arranges up to MaxCards items inside bounds:
// n<=3 gives (n,1), n=4 gives (2,2), n in [5,6] gives (3,2), and n>6 is
// truncated to 6 on a (3,2) grid. Regions come back in row-major order
// and never overlap. n<=0 returns nil.
func CardGrid(bounds Region, n int, gap float64) []Region {
	if n <= 0 {
		return nil
	}
	if n > MaxCards {
		n = MaxCards
	}

	var cols, rows int
	switch {
	case n <= 3:
		cols, rows = n, 1
	case n == 4:
		cols, rows = 2, 2
	default:
		cols, rows = 3, 2
	}

	w := (bounds.W - float64(cols-1)*gap) / float64(cols)
	h := (bounds.H - float64(rows-1)*gap) / float64(rows)

	regions := make([]Region, 0, n)
	for i := 0; i < n; i++ {
		row := i / cols
		col := i % cols
		regions = append(regions, Region{
			X: bounds.X + float64(col)*(w+gap),
			Y: bounds.Y + float64(row)*(h+gap),
			W: w,
			H: h,
		})
	}
	return regions
}

// Columns splits bounds into n equal-width columns separated by gap,
// laid out left to right. n<=0 returns nil.
func Columns(bounds Region, n int, gap float64) []Region {
	if n <= 0 {
		return nil
	}
	w := (bounds.W - float64(n-1)*gap) / float64(n)
	regions := make([]Region, 0, n)
	for i := 0; i < n; i++ {
		regions = append(regions, Region{
			X: bounds.X + float64(i)*(w+gap),
			Y: bounds.Y,
			W: w,
			H: bounds.H,
		})
	}
	return regions
}

// StatRow lays out up to MaxStats cards in a single row; extra items are
// truncated.
func StatRow(bounds Region, n int, gap float64) []Region {
	if n <= 0 {
		return nil
	}
	if n > MaxStats {
		n = MaxStats
	}
	return Columns(bounds, n, gap)
}

// TimelineStep is the geometry for one step on a horizontal timeline.
// Above reports whether the step's text stack sits above the axis line;
// steps alternate starting above for index 0.
type TimelineStep struct {
	Index   int
	CenterX float64
	Marker  Region
	Label   Region
	Title   Region
	Body    Region
	Above   bool
}

// TimelinePlan is the full geometry of a timeline: the axis line region
// and one entry per step. Unlike card grids, timelines are not capped.
type TimelinePlan struct {
	Axis  Region
	Steps []TimelineStep
}

// Timeline places n steps along a horizontal axis centered vertically in
// bounds. Step i's marker is centered at bounds.X + i*step + step/2, and
// the text stack alternates above/below the axis by i%2.
func Timeline(bounds Region, n int) TimelinePlan {
	if n <= 0 {
		return TimelinePlan{}
	}

	axisY := bounds.Y + bounds.H/2
	plan := TimelinePlan{
		Axis: Region{X: bounds.X, Y: axisY, W: bounds.W, H: 0.04},
	}

	const markerSize = 0.4
	step := bounds.W / float64(n)
	for i := 0; i < n; i++ {
		cx := bounds.X + float64(i)*step + step/2
		ts := TimelineStep{
			Index:   i,
			CenterX: cx,
			Above:   i%2 == 0,
			Marker: Region{
				X: cx - markerSize/2,
				Y: axisY - markerSize/2 + 0.02,
				W: markerSize,
				H: markerSize,
			},
		}
		textX := cx - step/2 + 0.1
		textW := step - 0.2
		if ts.Above {
			ts.Label = Region{X: textX, Y: axisY - 2.3, W: textW, H: 0.4}
			ts.Title = Region{X: textX, Y: axisY - 1.9, W: textW, H: 0.5}
			ts.Body = Region{X: textX, Y: axisY - 1.4, W: textW, H: 1.2}
		} else {
			ts.Title = Region{X: textX, Y: axisY + 0.4, W: textW, H: 0.5}
			ts.Label = Region{X: textX, Y: axisY + 0.9, W: textW, H: 0.4}
			ts.Body = Region{X: textX, Y: axisY + 1.3, W: textW, H: 1.2}
		}
		plan.Steps = append(plan.Steps, ts)
	}
	return plan
}

// AutoColumnWidth sizes a spreadsheet column from its stringified cells:
// the longest cell plus fixed padding, clamped to [10, 50] character
// units. Lengths count characters, not bytes, so multi-byte text does
// not inflate the width.
func AutoColumnWidth(cells []string) float64 {
	maxLen := 0
	for _, c := range cells {
		if n := utf8.RuneCountInString(c); n > maxLen {
			maxLen = n
		}
	}
	w := maxLen + 4
	if w < 10 {
		w = 10
	}
	if w > 50 {
		w = 50
	}
	return float64(w)
}
