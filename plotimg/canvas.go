package plotimg

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/VantageDataChat/GoOffice/theme"
)

// canvas wraps the output image with the pixel-level drawing operations
// the chart painters are built from.
type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h int, bg color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return &canvas{img: img}
}

func rgba(c theme.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (cv *canvas) setPixel(x, y int, c color.RGBA) {
	b := cv.img.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		cv.img.SetRGBA(x, y, c)
	}
}

// blendPixel mixes c over the existing pixel with the given opacity.
func (cv *canvas) blendPixel(x, y int, c color.RGBA, alpha float64) {
	b := cv.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if alpha >= 1 {
		cv.img.SetRGBA(x, y, c)
		return
	}
	if alpha <= 0 {
		return
	}
	dst := cv.img.RGBAAt(x, y)
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*alpha + float64(d)*(1-alpha))
	}
	cv.img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: 255,
	})
}

func (cv *canvas) fillRect(rect image.Rectangle, c color.RGBA) {
	draw.Draw(cv.img, rect.Intersect(cv.img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Over)
}

func (cv *canvas) strokeRect(rect image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cv.setPixel(x, rect.Min.Y+i, c)
			cv.setPixel(x, rect.Max.Y-1-i, c)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			cv.setPixel(rect.Min.X+i, y, c)
			cv.setPixel(rect.Max.X-1-i, y, c)
		}
	}
}

// drawLine draws a one-pixel line with Bresenham's algorithm.
func (cv *canvas) drawLine(x1, y1, x2, y2 int, c color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		cv.setPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawThickLine stamps a filled disc along the Bresenham path.
func (cv *canvas) drawThickLine(x1, y1, x2, y2, width int, c color.RGBA) {
	if width <= 1 {
		cv.drawLine(x1, y1, x2, y2, c)
		return
	}
	r := width / 2
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		cv.fillCircle(x1, y1, r, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (cv *canvas) fillCircle(cx, cy, r int, c color.RGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			ddx := px - cx
			ddy := py - cy
			if ddx*ddx+ddy*ddy <= r*r {
				cv.setPixel(px, py, c)
			}
		}
	}
}

func (cv *canvas) blendCircle(cx, cy, r int, c color.RGBA, alpha float64) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			ddx := px - cx
			ddy := py - cy
			if ddx*ddx+ddy*ddy <= r*r {
				cv.blendPixel(px, py, c, alpha)
			}
		}
	}
}

func (cv *canvas) strokeCircle(cx, cy, r int, c color.RGBA) {
	steps := r * 8
	if steps < 32 {
		steps = 32
	}
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		cv.setPixel(cx+int(float64(r)*math.Cos(angle)), cy+int(float64(r)*math.Sin(angle)), c)
	}
}

// fillWedge paints the annular sector between rInner and rOuter that
// spans [startDeg, startDeg+sweepDeg). Angles run counter-clockwise
// from three o'clock, matching chartspec.Wedge.
func (cv *canvas) fillWedge(cx, cy float64, rInner, rOuter, startDeg, sweepDeg float64, c color.RGBA) {
	if sweepDeg <= 0 || rOuter <= 0 {
		return
	}
	minX := int(cx - rOuter - 1)
	maxX := int(cx + rOuter + 1)
	minY := int(cy - rOuter - 1)
	maxY := int(cy + rOuter + 1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			rr := math.Hypot(dx, dy)
			if rr < rInner || rr > rOuter {
				continue
			}
			// Screen y grows downward; flip to get counter-clockwise angles.
			angle := math.Atan2(-dy, dx) * 180 / math.Pi
			if angleInSweep(angle, startDeg, sweepDeg) {
				cv.setPixel(px, py, c)
			}
		}
	}
}

// angleInSweep reports whether angle (degrees, any range) lies within
// the counter-clockwise sweep beginning at start.
func angleInSweep(angle, start, sweep float64) bool {
	a := math.Mod(angle-start, 360)
	if a < 0 {
		a += 360
	}
	return a < sweep
}

// point is a pixel coordinate used by the polygon helpers.
type point struct {
	X, Y float64
}

// blendPolygon fills a closed polygon with even-odd scanlines, blending
// each covered pixel at the given opacity.
func (cv *canvas) blendPolygon(pts []point, c color.RGBA, alpha float64) {
	if len(pts) < 3 {
		return
	}
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, p := range pts {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				cv.blendPixel(x, y, c, alpha)
			}
		}
	}
}

func (cv *canvas) strokePolygon(pts []point, width int, c color.RGBA) {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		cv.drawThickLine(int(a.X), int(a.Y), int(b.X), int(b.Y), width, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- text ---

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func textHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func textAscent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// drawString draws s with its baseline at (x, y).
func (cv *canvas) drawString(s string, face font.Face, c color.RGBA, x, y int) {
	d := &font.Drawer{
		Dst:  cv.img,
		Src:  &image.Uniform{c},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawStringCentered centers s horizontally around cx with its baseline
// at y.
func (cv *canvas) drawStringCentered(s string, face font.Face, c color.RGBA, cx, y int) {
	cv.drawString(s, face, c, cx-textWidth(face, s)/2, y)
}

// drawStringRotated draws s rotated 90 degrees counter-clockwise, so it
// reads bottom-to-top, centered vertically around cy with its left edge
// (after rotation) at x.
func (cv *canvas) drawStringRotated(s string, face font.Face, c color.RGBA, x, cy int) {
	w := textWidth(face, s)
	h := textHeight(face)
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  &image.Uniform{c},
		Face: face,
		Dot:  fixed.P(0, textAscent(face)),
	}
	d.DrawString(s)

	startY := cy + w/2
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			px := tmp.RGBAAt(tx, ty)
			if px.A == 0 {
				continue
			}
			cv.blendPixel(x+ty, startY-tx, px, float64(px.A)/255)
		}
	}
}

// ellipsize trims s so it fits within maxWidth, appending an ellipsis
// when anything was cut.
func ellipsize(s string, face font.Face, maxWidth int) string {
	if maxWidth <= 0 || textWidth(face, s) <= maxWidth {
		return s
	}
	const ell = "…"
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ell
		if textWidth(face, candidate) <= maxWidth {
			return candidate
		}
	}
	return ell
}
