// Package chartspec normalizes declarative chart descriptions into
// rendering plans. A chart arrives as a loosely-keyed JSON object and
// leaves as either a NativeChart (a writer embeds it with live data) or
// a RasterChart (a PNG produced by a plotting collaborator). Which of
// the two a caller gets is a fixed property of the target document
// format, not a caller choice.
package chartspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/VantageDataChat/GoOffice/theme"
)

// Kind identifies a chart drawing strategy.
type Kind string

// Chart kinds. Bar means vertical clustered bars; the horizontal
// variant is its own kind.
const (
	KindBar           Kind = "bar"
	KindBarStacked    Kind = "bar_stacked"
	KindBarHorizontal Kind = "bar_horizontal"
	KindLine          Kind = "line"
	KindLineSmooth    Kind = "line_smooth"
	KindArea          Kind = "area"
	KindAreaStacked   Kind = "area_stacked"
	KindPie           Kind = "pie"
	KindDoughnut      Kind = "doughnut"
	KindScatter       Kind = "scatter"
	KindRadar         Kind = "radar"
)

// ParseKind maps a user-supplied chart type string to a Kind. Matching
// is case-insensitive and folds the column/bar naming split: "column"
// and "grouped_bar" are vertical bars, "bar_horizontal" is horizontal.
// Unknown strings fall back to KindBar.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bar", "column", "grouped_bar", "bar_clustered", "column_clustered":
		return KindBar
	case "bar_stacked", "stacked_bar", "column_stacked", "stacked":
		return KindBarStacked
	case "bar_horizontal", "horizontal_bar", "barh":
		return KindBarHorizontal
	case "line", "line_markers":
		return KindLine
	case "line_smooth", "smooth_line", "spline":
		return KindLineSmooth
	case "area":
		return KindArea
	case "area_stacked", "stacked_area":
		return KindAreaStacked
	case "pie":
		return KindPie
	case "doughnut", "donut":
		return KindDoughnut
	case "scatter", "xy_scatter", "xy":
		return KindScatter
	case "radar", "spider":
		return KindRadar
	default:
		return KindBar
	}
}

// PieLike reports whether the kind renders proportional slices. Pie-like
// charts consume only the first series.
func (k Kind) PieLike() bool { return k == KindPie || k == KindDoughnut }

// Stacked reports whether successive series accumulate on a running
// baseline per category.
func (k Kind) Stacked() bool { return k == KindBarStacked || k == KindAreaStacked }

// Horizontal reports whether the category axis runs vertically.
func (k Kind) Horizontal() bool { return k == KindBarHorizontal }

// CategoryBased reports whether values are positioned by category index.
// Scatter is the only kind that carries its own x coordinates.
func (k Kind) CategoryBased() bool { return k != KindScatter }

// Series is one named sequence of values in a chart description.
type Series struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	XValues []float64 `json:"x_values"` // scatter only; index-as-x when absent
}

// UnmarshalJSON accepts "y_values" as an alias for "values".
func (s *Series) UnmarshalJSON(data []byte) error {
	type plain Series
	aux := struct {
		*plain
		YValues []float64 `json:"y_values"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(s.Values) == 0 {
		s.Values = aux.YValues
	}
	return nil
}

// Spec is a chart description as it appears in an input document. All
// fields are optional; Normalize applies the documented defaults.
type Spec struct {
	Kind           string   `json:"chart_type"`
	Title          string   `json:"title"`
	Categories     []string `json:"categories"`
	Series         []Series `json:"series"`
	Colors         []string `json:"colors"`
	XAxisTitle     string   `json:"x_axis_title"`
	YAxisTitle     string   `json:"y_axis_title"`
	ShowLegend     *bool    `json:"show_legend"`
	LegendPosition string   `json:"legend_position"`
	ShowValues     bool     `json:"show_values"`
	ShowDataLabels bool     `json:"show_data_labels"`
	NumberFormat   string   `json:"number_format"`
	Width          float64  `json:"width"`  // inches
	Height         float64  `json:"height"` // inches
	FontSize       float64  `json:"font_size"`
}

// UnmarshalJSON accepts the alias keys "type" (for "chart_type"),
// "x_label" and "y_label" (for the axis titles).
func (s *Spec) UnmarshalJSON(data []byte) error {
	type plain Spec
	aux := struct {
		*plain
		AltKind string `json:"type"`
		XLabel  string `json:"x_label"`
		YLabel  string `json:"y_label"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.Kind == "" {
		s.Kind = aux.AltKind
	}
	if s.XAxisTitle == "" {
		s.XAxisTitle = aux.XLabel
	}
	if s.YAxisTitle == "" {
		s.YAxisTitle = aux.YLabel
	}
	return nil
}

// DefaultPalette is the series color cycle used when a spec supplies no
// colors of its own.
var DefaultPalette = []theme.RGB{
	mustRGB("4472C4"), mustRGB("ED7D31"), mustRGB("A5A5A5"),
	mustRGB("FFC000"), mustRGB("5B9BD5"), mustRGB("70AD47"),
	mustRGB("264478"), mustRGB("9B57A0"), mustRGB("636363"),
	mustRGB("EB7E30"),
}

func mustRGB(s string) theme.RGB {
	c, ok := theme.Hex(s)
	if !ok {
		panic("chartspec: bad palette literal " + s)
	}
	return c
}

// Default plot dimensions and typography.
const (
	DefaultWidthInches  = 8.0
	DefaultHeightInches = 5.0
	DefaultFontSize     = 11.0
)

// PlotSeries is one normalized series: rectangular values, a resolved
// color and, for scatter, x coordinates of the same length as Values.
type PlotSeries struct {
	Name    string
	Values  []float64
	XValues []float64
	Color   theme.RGB
}

// Plot is the neutral, fully-defaulted chart model shared by the
// rasterizer and the native-chart composers. Everything a renderer
// needs is resolved here; renderers apply no further defaults.
type Plot struct {
	Kind           Kind
	Title          string
	XAxisTitle     string
	YAxisTitle     string
	Categories     []string
	Series         []PlotSeries
	Palette        []theme.RGB
	ShowLegend     bool
	LegendPosition string // "b", "t", "l", "r" or "tr"
	ShowValues     bool
	ShowDataLabels bool
	NumberFormat   string
	FontName       string
	FontSize       float64
	Width          float64 // inches
	Height         float64 // inches
}

// BuildPlot normalizes a Spec against a theme:
//
//   - the kind string is parsed with alias folding, unknown kinds
//     become bars;
//   - pie-like kinds keep only the first series;
//   - category kinds pad or truncate every series to the category count
//     (missing values read as zero);
//   - scatter series take their own x values, or 0..n-1 when absent,
//     trimmed to the shorter of the two arrays;
//   - colors come from the spec when parseable, otherwise the default
//     palette; a single-series non-pie chart with no explicit colors is
//     seeded with the theme accent;
//   - the legend defaults to visible only for multi-series charts, an
//     explicit show_legend wins either way.
func BuildPlot(spec Spec, th theme.Theme) Plot {
	kind := ParseKind(spec.Kind)

	series := spec.Series
	if kind.PieLike() && len(series) > 1 {
		series = series[:1]
	}

	palette := parsePalette(spec.Colors)
	if len(palette) == 0 {
		palette = DefaultPalette
		if len(series) == 1 && !kind.PieLike() {
			seeded := make([]theme.RGB, 0, len(DefaultPalette)+1)
			seeded = append(seeded, th.Accent)
			palette = append(seeded, DefaultPalette...)
		}
	}

	plot := Plot{
		Kind:           kind,
		Title:          spec.Title,
		XAxisTitle:     spec.XAxisTitle,
		YAxisTitle:     spec.YAxisTitle,
		Categories:     spec.Categories,
		Palette:        palette,
		ShowLegend:     len(series) > 1,
		LegendPosition: parseLegendPosition(spec.LegendPosition),
		ShowValues:     spec.ShowValues,
		ShowDataLabels: spec.ShowDataLabels,
		NumberFormat:   spec.NumberFormat,
		FontName:       th.FontName,
		FontSize:       spec.FontSize,
		Width:          spec.Width,
		Height:         spec.Height,
	}
	if spec.ShowLegend != nil {
		plot.ShowLegend = *spec.ShowLegend
	}
	if plot.FontSize <= 0 {
		plot.FontSize = DefaultFontSize
	}
	if plot.Width <= 0 {
		plot.Width = DefaultWidthInches
	}
	if plot.Height <= 0 {
		plot.Height = DefaultHeightInches
	}
	if plot.NumberFormat == "" {
		plot.NumberFormat = "0"
	}

	plot.Series = make([]PlotSeries, len(series))
	for i, s := range series {
		ps := PlotSeries{
			Name:  s.Name,
			Color: palette[i%len(palette)],
		}
		if ps.Name == "" {
			ps.Name = fmt.Sprintf("Series %d", i+1)
		}
		if kind.CategoryBased() {
			ps.Values = padValues(s.Values, len(spec.Categories))
		} else {
			ps.Values, ps.XValues = scatterXY(s)
		}
		plot.Series[i] = ps
	}
	return plot
}

// padValues fits values to n entries. Missing entries become zero,
// extras are dropped. n <= 0 keeps the values as given.
func padValues(values []float64, n int) []float64 {
	if n <= 0 {
		return append([]float64(nil), values...)
	}
	out := make([]float64, n)
	copy(out, values)
	return out
}

// scatterXY pairs a series' y values with its x values, generating
// 0..n-1 when no x values are supplied. Mismatched lengths trim to the
// shorter array.
func scatterXY(s Series) (ys, xs []float64) {
	ys = append([]float64(nil), s.Values...)
	if len(s.XValues) == 0 {
		xs = make([]float64, len(ys))
		for i := range xs {
			xs[i] = float64(i)
		}
		return ys, xs
	}
	xs = append([]float64(nil), s.XValues...)
	if len(xs) < len(ys) {
		ys = ys[:len(xs)]
	} else if len(ys) < len(xs) {
		xs = xs[:len(ys)]
	}
	return ys, xs
}

// parsePalette keeps the colors that parse and drops the rest.
func parsePalette(colors []string) []theme.RGB {
	out := make([]theme.RGB, 0, len(colors))
	for _, s := range colors {
		if c, ok := theme.Lookup(s); ok {
			out = append(out, c)
		}
	}
	return out
}

// parseLegendPosition folds the accepted spellings ("BOTTOM", "bottom",
// "b", ...) onto the single-letter wire values. Unknown input means
// bottom.
func parseLegendPosition(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "top":
		return "t"
	case "l", "left":
		return "l"
	case "r", "right":
		return "r"
	case "tr", "top_right", "corner":
		return "tr"
	default:
		return "b"
	}
}

// Target identifies the document format a chart is destined for. The
// format alone decides between the native and raster paths.
type Target int

const (
	// TargetPresentation embeds native charts in .pptx slides.
	TargetPresentation Target = iota
	// TargetWorkbook embeds native charts in .xlsx sheets.
	TargetWorkbook
	// TargetDocument places rasterized chart images in .docx files.
	TargetDocument
)

// Native reports whether the target embeds charts as live chart parts
// rather than images.
func (t Target) Native() bool { return t != TargetDocument }

// RenderedChart is the outcome of Normalize. Exactly two
// implementations exist: NativeChart and RasterChart.
type RenderedChart interface {
	isRenderedChart()
}

// NativeChart carries a normalized plot for a writer that embeds live
// chart parts.
type NativeChart struct {
	Plot Plot
}

func (NativeChart) isRenderedChart() {}

// RasterChart carries a rendered PNG plus the collision-free file name
// it should be written under (inside TempDirName, next to the output
// document).
type RasterChart struct {
	Plot     Plot
	PNG      []byte
	FileName string
}

func (RasterChart) isRenderedChart() {}

// TempDirName is the per-document scratch directory for rasterized
// chart images.
const TempDirName = ".charts"

// Rasterizer turns a normalized plot into a PNG image. Implemented by
// the plotimg package; swapped out in tests.
type Rasterizer interface {
	RenderPNG(p Plot) ([]byte, error)
}

// Adapter normalizes chart specs for a render pass.
type Adapter struct {
	rasterizer Rasterizer
}

// NewAdapter creates an Adapter. The rasterizer may be nil if only
// native targets will be requested.
func NewAdapter(r Rasterizer) *Adapter {
	return &Adapter{rasterizer: r}
}

// Normalize builds the plot for spec and routes it down the path fixed
// by target: native formats receive a NativeChart, document targets a
// RasterChart. Raster file names embed a fresh random id so concurrent
// renders to different output paths never collide.
func (a *Adapter) Normalize(spec Spec, th theme.Theme, target Target) (RenderedChart, error) {
	plot := BuildPlot(spec, th)
	if target.Native() {
		return NativeChart{Plot: plot}, nil
	}
	if a.rasterizer == nil {
		return nil, errors.New("chartspec: no rasterizer configured for image charts")
	}
	png, err := a.rasterizer.RenderPNG(plot)
	if err != nil {
		return nil, fmt.Errorf("rasterize chart: %w", err)
	}
	return RasterChart{Plot: plot, PNG: png, FileName: tempFileName()}, nil
}

// tempFileName returns "chart_<hex8>.png" with eight hex characters of
// a fresh UUID.
func tempFileName() string {
	u := uuid.New()
	return fmt.Sprintf("chart_%x.png", u[:4])
}
