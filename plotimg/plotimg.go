// Package plotimg rasterizes normalized chart plots to PNG images. It
// is the plotting collaborator behind the chartspec.Rasterizer
// interface: document formats that cannot host native chart parts get
// their charts as pictures drawn here with the x/image font and pixel
// toolkit.
package plotimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"

	"github.com/VantageDataChat/GoOffice/chartspec"
)

// DefaultDPI is the raster resolution in pixels per inch.
const DefaultDPI = 150.0

// Renderer draws chartspec plots. A single Renderer may be shared by
// concurrent renders; the font cache it owns is safe for that.
type Renderer struct {
	// DPI is the output resolution. Zero or negative means DefaultDPI.
	DPI   float64
	fonts *FontCache
}

// NewRenderer creates a Renderer. A nil cache gets a fresh one scanning
// the system font directories.
func NewRenderer(fc *FontCache) *Renderer {
	if fc == nil {
		fc = NewFontCache()
	}
	return &Renderer{DPI: DefaultDPI, fonts: fc}
}

// RenderPNG renders the plot and encodes it as PNG. It implements
// chartspec.Rasterizer.
func (r *Renderer) RenderPNG(p chartspec.Plot) ([]byte, error) {
	img, err := r.Render(p)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return buf.Bytes(), nil
}

// Render draws the plot onto a white canvas sized from the plot's
// width/height in inches at the renderer's DPI.
func (r *Renderer) Render(p chartspec.Plot) (image.Image, error) {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if p.FontSize <= 0 {
		p.FontSize = chartspec.DefaultFontSize
	}
	w := int(p.Width * dpi)
	h := int(p.Height * dpi)
	if w < 64 {
		w = 64
	}
	if h < 64 {
		h = 64
	}

	pt := &painter{
		cv:    newCanvas(w, h, color.RGBA{255, 255, 255, 255}),
		plot:  p,
		dpi:   dpi,
		fonts: r.fonts,
	}
	pt.paint()
	return pt.cv.img, nil
}

// Chart chrome colors, after the clean whitegrid look of the reference
// output.
var (
	textColor  = color.RGBA{0x26, 0x26, 0x26, 255}
	gridColor  = color.RGBA{0xCC, 0xCC, 0xCC, 255}
	spineColor = color.RGBA{0x99, 0x99, 0x99, 255}
	white      = color.RGBA{255, 255, 255, 255}
)

// painter carries the state of one chart render.
type painter struct {
	cv    *canvas
	plot  chartspec.Plot
	dpi   float64
	fonts *FontCache

	// faces, resolved once per render
	titleFace  font.Face // base+3, bold
	axisFace   font.Face // base+1
	tickFace   font.Face // base
	legendFace font.Face // base-1
	smallFace  font.Face // base-2

	// axes geometry, set by paintAxesChart
	plotR      image.Rectangle
	vMin, vMax float64 // value axis
	xMin, xMax float64 // numeric x axis (scatter)
}

// fallbackChain mirrors the CJK-first font preference of the reference
// charts; the embedded Go face catches everything after it.
var fallbackChain = []string{
	"microsoft yahei", "simhei", "wenquanyi micro hei", "wenquanyi zen hei",
	"noto sans cjk sc", "stheiti", "dejavu sans",
	"arial", "helvetica", "liberation sans", "noto sans",
}

// face resolves a font face at sizePt points, preferring the plot's
// font and falling back down the chain to the embedded Go face.
func (pt *painter) face(sizePt float64, bold, italic bool) font.Face {
	px := sizePt * pt.dpi / 72
	if pt.plot.FontName != "" {
		if f := pt.fonts.GetFace(pt.plot.FontName, px, bold, italic); f != nil {
			return f
		}
	}
	for _, name := range fallbackChain {
		if f := pt.fonts.GetFace(name, px, bold, italic); f != nil {
			return f
		}
	}
	return pt.fonts.FallbackFace(px, bold, italic)
}

func (pt *painter) resolveFaces() {
	base := pt.plot.FontSize
	pt.titleFace = pt.face(base+3, true, false)
	pt.axisFace = pt.face(base+1, false, false)
	pt.tickFace = pt.face(base, false, false)
	pt.legendFace = pt.face(base-1, false, false)
	pt.smallFace = pt.face(base-2, false, false)
}

func (pt *painter) paint() {
	pt.resolveFaces()
	switch pt.plot.Kind {
	case chartspec.KindPie, chartspec.KindDoughnut:
		pt.paintPieChart()
	case chartspec.KindRadar:
		pt.paintRadarChart()
	default:
		pt.paintAxesChart()
	}
}

// pad is the outer whitespace unit, proportional to the base font.
func (pt *painter) pad() int {
	return textHeight(pt.tickFace) / 2
}

// drawTitle paints the centered chart title and returns the y where
// content may start.
func (pt *painter) drawTitle() int {
	top := pt.pad()
	if pt.plot.Title == "" {
		return top
	}
	b := pt.cv.img.Bounds()
	title := ellipsize(pt.plot.Title, pt.titleFace, b.Dx()-2*pt.pad())
	pt.cv.drawStringCentered(title, pt.titleFace, textColor, b.Dx()/2, top+textAscent(pt.titleFace))
	return top + textHeight(pt.titleFace) + pt.pad()
}

// legendItems returns the entries the legend shows, or nil when the
// legend is off. Pie-like charts label their wedges instead.
func (pt *painter) legendItems() []chartspec.PlotSeries {
	if !pt.plot.ShowLegend || pt.plot.Kind.PieLike() || len(pt.plot.Series) == 0 {
		return nil
	}
	return pt.plot.Series
}

// legendSize measures the legend block for margin reservation. Row
// layouts (bottom/top) return the full row; column layouts (left/
// right) the widest entry.
func (pt *painter) legendSize(items []chartspec.PlotSeries) (w, h int) {
	if len(items) == 0 {
		return 0, 0
	}
	swatch := textHeight(pt.legendFace) * 2 / 3
	lineH := textHeight(pt.legendFace)
	switch pt.plot.LegendPosition {
	case "l", "r", "tr":
		for _, s := range items {
			if iw := swatch + swatch/2 + textWidth(pt.legendFace, s.Name); iw > w {
				w = iw
			}
		}
		return w, len(items) * (lineH + lineH/3)
	default: // row
		for i, s := range items {
			if i > 0 {
				w += lineH * 3 / 2
			}
			w += swatch + swatch/2 + textWidth(pt.legendFace, s.Name)
		}
		return w, lineH
	}
}

// drawLegendRow paints the legend centered horizontally at baseline
// area starting at y.
func (pt *painter) drawLegendRow(items []chartspec.PlotSeries, y int) {
	w, _ := pt.legendSize(items)
	b := pt.cv.img.Bounds()
	x := (b.Dx() - w) / 2
	swatch := textHeight(pt.legendFace) * 2 / 3
	lineH := textHeight(pt.legendFace)
	for _, s := range items {
		sy := y + (lineH-swatch)/2
		pt.cv.fillRect(image.Rect(x, sy, x+swatch, sy+swatch), rgba(s.Color))
		x += swatch + swatch/2
		pt.cv.drawString(s.Name, pt.legendFace, textColor, x, y+textAscent(pt.legendFace))
		x += textWidth(pt.legendFace, s.Name) + lineH*3/2
	}
}

// drawLegendColumn paints the legend as a vertical stack with its top
// left corner at (x, y).
func (pt *painter) drawLegendColumn(items []chartspec.PlotSeries, x, y int) {
	swatch := textHeight(pt.legendFace) * 2 / 3
	lineH := textHeight(pt.legendFace)
	for _, s := range items {
		sy := y + (lineH-swatch)/2
		pt.cv.fillRect(image.Rect(x, sy, x+swatch, sy+swatch), rgba(s.Color))
		pt.cv.drawString(s.Name, pt.legendFace, textColor, x+swatch+swatch/2, y+textAscent(pt.legendFace))
		y += lineH + lineH/3
	}
}

// paintAxesChart draws every kind that lives in a cartesian frame.
func (pt *painter) paintAxesChart() {
	p := &pt.plot
	b := pt.cv.img.Bounds()
	pad := pt.pad()
	top := pt.drawTitle()

	horizontal := p.Kind.Horizontal()
	items := pt.legendItems()
	legendW, legendH := pt.legendSize(items)

	// Value range and ticks.
	vr := pt.valueRangeFor()
	lo, hi := vr.span()
	ticks := niceTicks(lo, hi, 6)
	pt.vMin, pt.vMax = ticks[0], ticks[len(ticks)-1]
	decimals := tickDecimals(tickStep(ticks))

	// Numeric x range for scatter.
	var xTicks []float64
	xDecimals := 0
	if p.Kind == chartspec.KindScatter {
		var xr valueRange
		for _, s := range p.Series {
			for _, x := range s.XValues {
				xr.add(x)
			}
		}
		xlo, xhi := xr.span()
		xTicks = niceTicks(xlo, xhi, 7)
		pt.xMin, pt.xMax = xTicks[0], xTicks[len(xTicks)-1]
		xDecimals = tickDecimals(tickStep(xTicks))
	}

	// Margins.
	tickH := textHeight(pt.tickFace)
	left := pad
	if p.YAxisTitle != "" {
		left += textHeight(pt.axisFace) + pad
	}
	if horizontal {
		catW := 0
		for _, c := range p.Categories {
			if w := textWidth(pt.tickFace, c); w > catW {
				catW = w
			}
		}
		if max := b.Dx() / 4; catW > max {
			catW = max
		}
		left += catW + pad/2
	} else {
		tickW := 0
		for _, v := range ticks {
			if w := textWidth(pt.tickFace, formatTick(v, decimals)); w > tickW {
				tickW = w
			}
		}
		left += tickW + pad/2
	}

	bottom := pad + tickH + pad/2
	if p.XAxisTitle != "" {
		bottom += textHeight(pt.axisFace) + pad/2
	}
	right := pad
	switch p.LegendPosition {
	case "r", "tr":
		right += legendW + pad
	case "l":
		left += legendW + pad
	case "t":
		top += legendH + pad
	default:
		if len(items) > 0 {
			bottom += legendH + pad/2
		}
	}

	pt.plotR = image.Rect(b.Min.X+left, top, b.Max.X-right, b.Max.Y-bottom)
	if pt.plotR.Dx() < 16 || pt.plotR.Dy() < 16 {
		return
	}

	// Grid and tick labels along the value axis.
	if horizontal {
		for _, v := range ticks {
			x := pt.vx(v)
			pt.cv.drawLine(x, pt.plotR.Min.Y, x, pt.plotR.Max.Y-1, gridColor)
			pt.cv.drawStringCentered(formatTick(v, decimals), pt.tickFace, textColor,
				x, pt.plotR.Max.Y+pad/2+textAscent(pt.tickFace))
		}
		pt.drawCategoryTicksY()
	} else {
		for _, v := range ticks {
			y := pt.vy(v)
			pt.cv.drawLine(pt.plotR.Min.X, y, pt.plotR.Max.X-1, y, gridColor)
			label := formatTick(v, decimals)
			pt.cv.drawString(label, pt.tickFace, textColor,
				pt.plotR.Min.X-pad/2-textWidth(pt.tickFace, label), y+textAscent(pt.tickFace)/2)
		}
		if p.Kind == chartspec.KindScatter {
			for _, v := range xTicks {
				x := pt.sx(v)
				pt.cv.drawLine(x, pt.plotR.Min.Y, x, pt.plotR.Max.Y-1, gridColor)
				pt.cv.drawStringCentered(formatTick(v, xDecimals), pt.tickFace, textColor,
					x, pt.plotR.Max.Y+pad/2+textAscent(pt.tickFace))
			}
		} else {
			pt.drawCategoryTicksX()
		}
	}

	// Spines: left and bottom only.
	pt.cv.drawLine(pt.plotR.Min.X, pt.plotR.Min.Y, pt.plotR.Min.X, pt.plotR.Max.Y-1, spineColor)
	pt.cv.drawLine(pt.plotR.Min.X, pt.plotR.Max.Y-1, pt.plotR.Max.X-1, pt.plotR.Max.Y-1, spineColor)

	// Data marks.
	switch p.Kind {
	case chartspec.KindBar:
		pt.paintGroupedBars()
	case chartspec.KindBarStacked:
		pt.paintStackedBars()
	case chartspec.KindBarHorizontal:
		pt.paintHorizontalBars()
	case chartspec.KindLine, chartspec.KindLineSmooth:
		pt.paintLines(p.Kind == chartspec.KindLineSmooth)
	case chartspec.KindArea, chartspec.KindAreaStacked:
		pt.paintAreas(p.Kind == chartspec.KindAreaStacked)
	case chartspec.KindScatter:
		pt.paintScatter()
	}

	// Axis titles.
	if p.XAxisTitle != "" {
		y := b.Max.Y - pad
		if len(items) > 0 && (p.LegendPosition == "" || p.LegendPosition == "b") {
			y -= legendH + pad/2
		}
		pt.cv.drawStringCentered(p.XAxisTitle, pt.axisFace, textColor,
			(pt.plotR.Min.X+pt.plotR.Max.X)/2, y)
	}
	if p.YAxisTitle != "" {
		pt.cv.drawStringRotated(p.YAxisTitle, pt.axisFace, textColor,
			b.Min.X+pad/2, (pt.plotR.Min.Y+pt.plotR.Max.Y)/2)
	}

	// Legend.
	switch p.LegendPosition {
	case "r", "tr":
		pt.drawLegendColumn(items, pt.plotR.Max.X+pad, pt.plotR.Min.Y)
	case "l":
		pt.drawLegendColumn(items, b.Min.X+pad, pt.plotR.Min.Y)
	case "t":
		if len(items) > 0 {
			pt.drawLegendRow(items, pt.plotR.Min.Y-legendH-pad)
		}
	default:
		if len(items) > 0 {
			pt.drawLegendRow(items, b.Max.Y-pad-legendH)
		}
	}
}

// valueRangeFor collects the data extent of the value axis for the
// current kind. Bar and area charts anchor at zero.
func (pt *painter) valueRangeFor() valueRange {
	p := &pt.plot
	var vr valueRange
	switch {
	case p.Kind.Stacked():
		segs := chartspec.StackSegments(seriesValues(p.Series))
		for _, row := range segs {
			for _, seg := range row {
				vr.add(seg.Bottom)
				vr.add(seg.Top)
			}
		}
		vr.add(0)
	case p.Kind == chartspec.KindBar, p.Kind == chartspec.KindBarHorizontal,
		p.Kind == chartspec.KindArea:
		for _, s := range p.Series {
			for _, v := range s.Values {
				vr.add(v)
			}
		}
		vr.add(0)
	default:
		for _, s := range p.Series {
			for _, v := range s.Values {
				vr.add(v)
			}
		}
	}
	return vr
}

func seriesValues(series []chartspec.PlotSeries) [][]float64 {
	out := make([][]float64, len(series))
	for i, s := range series {
		out[i] = s.Values
	}
	return out
}

// vy maps a value to a pixel y on the vertical value axis.
func (pt *painter) vy(v float64) int {
	span := pt.vMax - pt.vMin
	if span <= 0 {
		span = 1
	}
	return pt.plotR.Max.Y - 1 - int(float64(pt.plotR.Dy()-1)*(v-pt.vMin)/span)
}

// vx maps a value to a pixel x on the horizontal value axis.
func (pt *painter) vx(v float64) int {
	span := pt.vMax - pt.vMin
	if span <= 0 {
		span = 1
	}
	return pt.plotR.Min.X + int(float64(pt.plotR.Dx()-1)*(v-pt.vMin)/span)
}

// sx maps a numeric x value to a pixel x (scatter).
func (pt *painter) sx(v float64) int {
	span := pt.xMax - pt.xMin
	if span <= 0 {
		span = 1
	}
	return pt.plotR.Min.X + int(float64(pt.plotR.Dx()-1)*(v-pt.xMin)/span)
}

// catX returns the pixel center of category i on the x axis.
func (pt *painter) catX(i int) int {
	n := len(pt.plot.Categories)
	if n == 0 {
		n = 1
	}
	pitch := float64(pt.plotR.Dx()) / float64(n)
	return pt.plotR.Min.X + int((float64(i)+0.5)*pitch)
}

// catY returns the pixel center of category i on the y axis
// (horizontal bars). Category 0 sits at the top.
func (pt *painter) catY(i int) int {
	n := len(pt.plot.Categories)
	if n == 0 {
		n = 1
	}
	pitch := float64(pt.plotR.Dy()) / float64(n)
	return pt.plotR.Min.Y + int((float64(i)+0.5)*pitch)
}

// catPitchX is the horizontal width of one category slot.
func (pt *painter) catPitchX() float64 {
	n := len(pt.plot.Categories)
	if n == 0 {
		n = 1
	}
	return float64(pt.plotR.Dx()) / float64(n)
}

// catPitchY is the vertical height of one category slot.
func (pt *painter) catPitchY() float64 {
	n := len(pt.plot.Categories)
	if n == 0 {
		n = 1
	}
	return float64(pt.plotR.Dy()) / float64(n)
}

// drawCategoryTicksX labels category centers under the plot, each label
// ellipsized to its slot.
func (pt *painter) drawCategoryTicksX() {
	pad := pt.pad()
	maxW := int(pt.catPitchX()) - 4
	for i, c := range pt.plot.Categories {
		label := ellipsize(c, pt.tickFace, maxW)
		pt.cv.drawStringCentered(label, pt.tickFace, textColor,
			pt.catX(i), pt.plotR.Max.Y+pad/2+textAscent(pt.tickFace))
	}
}

// drawCategoryTicksY labels category centers left of the plot
// (horizontal bars).
func (pt *painter) drawCategoryTicksY() {
	pad := pt.pad()
	b := pt.cv.img.Bounds()
	maxW := pt.plotR.Min.X - b.Min.X - pad
	for i, c := range pt.plot.Categories {
		label := ellipsize(c, pt.tickFace, maxW)
		pt.cv.drawString(label, pt.tickFace, textColor,
			pt.plotR.Min.X-pad/2-textWidth(pt.tickFace, label),
			pt.catY(i)+textAscent(pt.tickFace)/2)
	}
}
