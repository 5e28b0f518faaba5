package plotimg

import (
	"fmt"
	"image"
	"math"

	"github.com/VantageDataChat/GoOffice/chartspec"
)

// vertBarRect builds a pixel rectangle between two value levels on the
// vertical axis, tolerating either order.
func vertBarRect(x0, x1, yA, yB int) image.Rectangle {
	if yA > yB {
		yA, yB = yB, yA
	}
	if yB == yA {
		yB++
	}
	return image.Rect(x0, yA, x1, yB)
}

func (pt *painter) paintGroupedBars() {
	p := &pt.plot
	if len(p.Series) == 0 || len(p.Categories) == 0 {
		return
	}
	pitch := pt.catPitchX()
	slot := 0.8 * pitch
	offsets := chartspec.GroupedBarOffsets(len(p.Series), slot)
	barW := slot / float64(len(p.Series))
	zero := pt.vy(0)

	for si, s := range p.Series {
		c := rgba(s.Color)
		for ci, v := range s.Values {
			cx := float64(pt.catX(ci)) + offsets[si]
			rect := vertBarRect(int(cx-barW/2)+1, int(cx+barW/2), pt.vy(v), zero)
			pt.cv.fillRect(rect, c)
			pt.cv.strokeRect(rect, white, 1)
			if p.ShowValues {
				pt.drawBarValue(v, (rect.Min.X+rect.Max.X)/2, rect)
			}
		}
	}
}

// drawBarValue labels a bar just past its value end.
func (pt *painter) drawBarValue(v float64, cx int, rect image.Rectangle) {
	label := formatValue(v)
	if v >= 0 {
		pt.cv.drawStringCentered(label, pt.smallFace, textColor, cx, rect.Min.Y-3)
	} else {
		pt.cv.drawStringCentered(label, pt.smallFace, textColor, cx,
			rect.Max.Y+textAscent(pt.smallFace)+3)
	}
}

func (pt *painter) paintStackedBars() {
	p := &pt.plot
	if len(p.Series) == 0 || len(p.Categories) == 0 {
		return
	}
	segs := chartspec.StackSegments(seriesValues(p.Series))
	slot := 0.6 * pt.catPitchX()

	for si, s := range p.Series {
		c := rgba(s.Color)
		for ci, seg := range segs[si] {
			if ci >= len(p.Categories) {
				break
			}
			cx := pt.catX(ci)
			rect := vertBarRect(cx-int(slot/2)+1, cx+int(slot/2), pt.vy(seg.Top), pt.vy(seg.Bottom))
			pt.cv.fillRect(rect, c)
			pt.cv.strokeRect(rect, white, 1)
		}
	}
}

func (pt *painter) paintHorizontalBars() {
	p := &pt.plot
	if len(p.Series) == 0 || len(p.Categories) == 0 {
		return
	}
	pitch := pt.catPitchY()
	slot := 0.8 * pitch
	offsets := chartspec.GroupedBarOffsets(len(p.Series), slot)
	barH := slot / float64(len(p.Series))
	zero := pt.vx(0)

	for si, s := range p.Series {
		c := rgba(s.Color)
		for ci, v := range s.Values {
			cy := float64(pt.catY(ci)) + offsets[si]
			x := pt.vx(v)
			x0, x1 := zero, x
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			if x1 == x0 {
				x1++
			}
			rect := image.Rect(x0, int(cy-barH/2)+1, x1, int(cy+barH/2))
			pt.cv.fillRect(rect, c)
			pt.cv.strokeRect(rect, white, 1)
			if p.ShowValues {
				label := formatValue(v)
				lx := rect.Max.X + 4
				if v < 0 {
					lx = rect.Min.X - 4 - textWidth(pt.smallFace, label)
				}
				pt.cv.drawString(label, pt.smallFace, textColor,
					lx, (rect.Min.Y+rect.Max.Y)/2+textAscent(pt.smallFace)/2)
			}
		}
	}
}

// lineWidthPx converts a stroke width in points to pixels.
func (pt *painter) lineWidthPx(points float64) int {
	w := int(points * pt.dpi / 72)
	if w < 1 {
		w = 1
	}
	return w
}

func (pt *painter) seriesPoints(s chartspec.PlotSeries) []point {
	pts := make([]point, 0, len(s.Values))
	for i, v := range s.Values {
		if i >= len(pt.plot.Categories) {
			break
		}
		pts = append(pts, point{X: float64(pt.catX(i)), Y: float64(pt.vy(v))})
	}
	return pts
}

func (pt *painter) paintLines(smooth bool) {
	p := &pt.plot
	if len(p.Categories) == 0 {
		return
	}
	width := pt.lineWidthPx(2)
	markerR := pt.lineWidthPx(2.5)

	for _, s := range p.Series {
		pts := pt.seriesPoints(s)
		if len(pts) == 0 {
			continue
		}
		c := rgba(s.Color)
		path := pts
		if smooth && len(pts) > 2 {
			path = catmullRom(pts, 16)
		}
		for i := 0; i+1 < len(path); i++ {
			pt.cv.drawThickLine(int(path[i].X), int(path[i].Y),
				int(path[i+1].X), int(path[i+1].Y), width, c)
		}
		for _, q := range pts {
			pt.cv.fillCircle(int(q.X), int(q.Y), markerR, c)
		}
		if p.ShowValues {
			offset := pt.lineWidthPx(8)
			for i, q := range pts {
				pt.cv.drawStringCentered(formatValue(s.Values[i]), pt.smallFace,
					textColor, int(q.X), int(q.Y)-offset)
			}
		}
	}
}

// catmullRom samples a Catmull-Rom spline through the points, steps
// segments per span, clamping the end tangents.
func catmullRom(pts []point, steps int) []point {
	if len(pts) < 3 || steps < 2 {
		return pts
	}
	out := make([]point, 0, (len(pts)-1)*steps+1)
	at := func(i int) point {
		if i < 0 {
			i = 0
		}
		if i >= len(pts) {
			i = len(pts) - 1
		}
		return pts[i]
	}
	for i := 0; i+1 < len(pts); i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		for s := 0; s < steps; s++ {
			t := float64(s) / float64(steps)
			t2 := t * t
			t3 := t2 * t
			out = append(out, point{
				X: 0.5 * ((2 * p1.X) + (-p0.X+p2.X)*t +
					(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
				Y: 0.5 * ((2 * p1.Y) + (-p0.Y+p2.Y)*t +
					(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
			})
		}
	}
	out = append(out, pts[len(pts)-1])
	return out
}

func (pt *painter) paintAreas(stacked bool) {
	p := &pt.plot
	if len(p.Categories) == 0 || len(p.Series) == 0 {
		return
	}
	lineW := pt.lineWidthPx(1.5)

	if !stacked {
		zeroY := float64(pt.vy(0))
		for _, s := range p.Series {
			pts := pt.seriesPoints(s)
			if len(pts) < 2 {
				continue
			}
			c := rgba(s.Color)
			poly := append(append([]point(nil), pts...),
				point{X: pts[len(pts)-1].X, Y: zeroY},
				point{X: pts[0].X, Y: zeroY})
			pt.cv.blendPolygon(poly, c, 0.4)
			for i := 0; i+1 < len(pts); i++ {
				pt.cv.drawThickLine(int(pts[i].X), int(pts[i].Y),
					int(pts[i+1].X), int(pts[i+1].Y), lineW, c)
			}
		}
		return
	}

	segs := chartspec.StackSegments(seriesValues(p.Series))
	nCats := len(p.Categories)
	for si, s := range p.Series {
		c := rgba(s.Color)
		var upper, lower []point
		for ci := 0; ci < nCats && ci < len(segs[si]); ci++ {
			x := float64(pt.catX(ci))
			upper = append(upper, point{X: x, Y: float64(pt.vy(segs[si][ci].Top))})
			lower = append(lower, point{X: x, Y: float64(pt.vy(segs[si][ci].Bottom))})
		}
		if len(upper) < 2 {
			continue
		}
		poly := append([]point(nil), upper...)
		for i := len(lower) - 1; i >= 0; i-- {
			poly = append(poly, lower[i])
		}
		pt.cv.blendPolygon(poly, c, 1)
		for i := 0; i+1 < len(upper); i++ {
			pt.cv.drawThickLine(int(upper[i].X), int(upper[i].Y),
				int(upper[i+1].X), int(upper[i+1].Y), lineW, white)
		}
	}
}

func (pt *painter) paintScatter() {
	p := &pt.plot
	r := pt.lineWidthPx(4.4) // matches an area-60 marker
	for _, s := range p.Series {
		c := rgba(s.Color)
		for i := 0; i < len(s.Values) && i < len(s.XValues); i++ {
			x := pt.sx(s.XValues[i])
			y := pt.vy(s.Values[i])
			pt.cv.blendCircle(x, y, r, c, 0.8)
			pt.cv.strokeCircle(x, y, r, white)
		}
	}
}

// paintPieChart draws pie and doughnut charts: wedges from the first
// series, category labels outside, percentage labels inside.
func (pt *painter) paintPieChart() {
	p := &pt.plot
	top := pt.drawTitle()
	b := pt.cv.img.Bounds()
	pad := pt.pad()

	if len(p.Series) == 0 {
		return
	}
	wedges := chartspec.PieWedges(p.Series[0].Values)
	if wedges == nil {
		return
	}

	area := image.Rect(b.Min.X+pad, top, b.Max.X-pad, b.Max.Y-pad)
	cx := float64(area.Min.X+area.Max.X) / 2
	cy := float64(area.Min.Y+area.Max.Y) / 2
	size := area.Dx()
	if area.Dy() < size {
		size = area.Dy()
	}
	radius := 0.38 * float64(size)
	inner := 0.0
	if p.Kind == chartspec.KindDoughnut {
		inner = radius * 0.5
	}

	palette := p.Palette
	if len(palette) == 0 {
		palette = chartspec.DefaultPalette
	}
	for i, w := range wedges {
		pt.cv.fillWedge(cx, cy, inner, radius, w.Start, w.Sweep, rgba(palette[i%len(palette)]))
	}
	// White seams between wedges stand in for wedge separation.
	if len(wedges) > 1 {
		seam := pt.lineWidthPx(1.5)
		for _, w := range wedges {
			rad := w.Start * math.Pi / 180
			pt.cv.drawThickLine(
				int(cx+inner*math.Cos(rad)), int(cy-inner*math.Sin(rad)),
				int(cx+radius*math.Cos(rad)), int(cy-radius*math.Sin(rad)),
				seam, white)
		}
	}

	for i, w := range wedges {
		if w.Sweep <= 0 {
			continue
		}
		mid := (w.Start + w.Sweep/2) * math.Pi / 180

		// Percentage inside the wedge.
		pct := fmt.Sprintf("%.1f%%", w.Frac*100)
		pr := (inner + radius) / 2
		if inner == 0 {
			pr = radius * 0.62
		}
		px := int(cx + pr*math.Cos(mid))
		py := int(cy - pr*math.Sin(mid))
		pt.cv.drawStringCentered(pct, pt.legendFace, textColor, px, py+textAscent(pt.legendFace)/2)

		// Category label outside.
		if i >= len(p.Categories) {
			continue
		}
		lr := radius * 1.12
		lx := cx + lr*math.Cos(mid)
		ly := int(cy-lr*math.Sin(mid)) + textAscent(pt.tickFace)/2
		label := p.Categories[i]
		switch {
		case math.Cos(mid) > 0.15:
			pt.cv.drawString(label, pt.tickFace, textColor, int(lx), ly)
		case math.Cos(mid) < -0.15:
			pt.cv.drawString(label, pt.tickFace, textColor, int(lx)-textWidth(pt.tickFace, label), ly)
		default:
			pt.cv.drawStringCentered(label, pt.tickFace, textColor, int(lx), ly)
		}
	}
}

// paintRadarChart draws each series as a translucent polygon over a
// spoked grid, one spoke per category.
func (pt *painter) paintRadarChart() {
	p := &pt.plot
	top := pt.drawTitle()
	b := pt.cv.img.Bounds()
	pad := pt.pad()

	n := len(p.Categories)
	if n == 0 || len(p.Series) == 0 {
		return
	}

	area := image.Rect(b.Min.X+pad, top, b.Max.X-pad, b.Max.Y-pad)
	cx := float64(area.Min.X+area.Max.X) / 2
	cy := float64(area.Min.Y+area.Max.Y) / 2
	size := area.Dx()
	if area.Dy() < size {
		size = area.Dy()
	}
	radius := 0.38 * float64(size)

	var vr valueRange
	vr.add(0)
	for _, s := range p.Series {
		for _, v := range s.Values {
			vr.add(v)
		}
	}
	_, hi := vr.span()
	ticks := niceTicks(0, hi, 5)
	vmax := ticks[len(ticks)-1]
	if vmax <= 0 {
		vmax = 1
	}

	angle := func(i int) float64 {
		return (90 + float64(i)*360/float64(n)) * math.Pi / 180
	}
	spokeEnd := func(i int, r float64) (float64, float64) {
		a := angle(i)
		return cx + r*math.Cos(a), cy - r*math.Sin(a)
	}

	// Grid rings and spokes.
	for k := 1; k <= 4; k++ {
		pt.cv.strokeCircle(int(cx), int(cy), int(radius*float64(k)/4), gridColor)
	}
	for i := 0; i < n; i++ {
		ex, ey := spokeEnd(i, radius)
		pt.cv.drawLine(int(cx), int(cy), int(ex), int(ey), gridColor)
	}

	// Series polygons.
	lineW := pt.lineWidthPx(2)
	markerR := pt.lineWidthPx(2)
	for _, s := range p.Series {
		pts := make([]point, n)
		for i := 0; i < n; i++ {
			v := 0.0
			if i < len(s.Values) && s.Values[i] > 0 {
				v = s.Values[i]
			}
			x, y := spokeEnd(i, radius*v/vmax)
			pts[i] = point{X: x, Y: y}
		}
		c := rgba(s.Color)
		pt.cv.blendPolygon(pts, c, 0.25)
		pt.cv.strokePolygon(pts, lineW, c)
		for _, q := range pts {
			pt.cv.fillCircle(int(q.X), int(q.Y), markerR, c)
		}
	}

	// Category labels at spoke ends.
	for i, label := range p.Categories {
		a := angle(i)
		lx, ly := spokeEnd(i, radius*1.12)
		base := int(ly) + textAscent(pt.tickFace)/2
		switch {
		case math.Cos(a) > 0.15:
			pt.cv.drawString(label, pt.tickFace, textColor, int(lx), base)
		case math.Cos(a) < -0.15:
			pt.cv.drawString(label, pt.tickFace, textColor, int(lx)-textWidth(pt.tickFace, label), base)
		default:
			pt.cv.drawStringCentered(label, pt.tickFace, textColor, int(lx), base)
		}
	}

	// Legend below the grid.
	if items := pt.legendItems(); len(items) > 0 {
		_, lh := pt.legendSize(items)
		pt.drawLegendRow(items, b.Max.Y-pad-lh)
	}
}
