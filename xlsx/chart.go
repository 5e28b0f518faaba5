package xlsx

// Chart kinds.
const (
	ChartTypeBar           = "bar"
	ChartTypeBarStacked    = "bar_stacked"
	ChartTypeBarHorizontal = "bar_horizontal"
	ChartTypeLine          = "line"
	ChartTypeLineSmooth    = "line_smooth"
	ChartTypeArea          = "area"
	ChartTypeAreaStacked   = "area_stacked"
	ChartTypePie           = "pie"
	ChartTypeDoughnut      = "doughnut"
	ChartTypeScatter       = "scatter"
	ChartTypeRadar         = "radar"
)

// Chart is a native chart anchored on a sheet. Its data is embedded in
// the chart part itself, so the chart does not reference sheet cells.
type Chart struct {
	chartType    string
	title        string
	categories   []string
	series       []*ChartSeries
	showLegend   bool
	legendPos    string // "b", "t", "l", "r" or "tr"
	showValues   bool
	numberFormat string
	xAxisTitle   string
	yAxisTitle   string
	holeSize     int // doughnut hole, percent of diameter

	fromRow, fromCol int // anchor cell, zero-based
	rowSpan, colSpan int // extent in cells
}

// NewChart creates a chart of the given kind anchored at A1 with a
// default extent of 8 columns by 15 rows.
func NewChart(chartType string) *Chart {
	c := &Chart{
		chartType:  chartType,
		showLegend: true,
		legendPos:  "b",
		colSpan:    8,
		rowSpan:    15,
	}
	if chartType == ChartTypeDoughnut {
		c.holeSize = 50
	}
	return c
}

// GetType returns the chart kind.
func (c *Chart) GetType() string { return c.chartType }

// SetTitle sets the chart title.
func (c *Chart) SetTitle(title string) *Chart {
	c.title = title
	return c
}

// GetTitle returns the chart title.
func (c *Chart) GetTitle() string { return c.title }

// SetCategories sets the category labels shared by all series.
func (c *Chart) SetCategories(categories []string) *Chart {
	c.categories = categories
	return c
}

// GetCategories returns the category labels.
func (c *Chart) GetCategories() []string { return c.categories }

// AddSeries appends a data series and returns it for further chaining.
func (c *Chart) AddSeries(name string, values []float64) *ChartSeries {
	s := &ChartSeries{name: name, values: values}
	c.series = append(c.series, s)
	return s
}

// GetSeries returns the chart's series.
func (c *Chart) GetSeries() []*ChartSeries { return c.series }

// SetLegend controls legend visibility and position. Position accepts
// "b", "t", "l", "r" and "tr"; anything else falls back to "b".
func (c *Chart) SetLegend(visible bool, position string) *Chart {
	c.showLegend = visible
	switch position {
	case "b", "t", "l", "r", "tr":
		c.legendPos = position
	default:
		c.legendPos = "b"
	}
	return c
}

// GetLegend returns legend visibility and position.
func (c *Chart) GetLegend() (bool, string) { return c.showLegend, c.legendPos }

// SetShowValues toggles data labels on every series.
func (c *Chart) SetShowValues(show bool) *Chart {
	c.showValues = show
	return c
}

// GetShowValues reports whether data labels are shown.
func (c *Chart) GetShowValues() bool { return c.showValues }

// SetNumberFormat sets the format code applied to values and labels.
func (c *Chart) SetNumberFormat(format string) *Chart {
	c.numberFormat = format
	return c
}

// GetNumberFormat returns the value format code.
func (c *Chart) GetNumberFormat() string { return c.numberFormat }

// SetAxisTitles sets the category and value axis titles.
func (c *Chart) SetAxisTitles(xTitle, yTitle string) *Chart {
	c.xAxisTitle = xTitle
	c.yAxisTitle = yTitle
	return c
}

// GetAxisTitles returns the category and value axis titles.
func (c *Chart) GetAxisTitles() (string, string) { return c.xAxisTitle, c.yAxisTitle }

// SetHoleSize sets the doughnut hole diameter in percent, clamped to
// 10..90.
func (c *Chart) SetHoleSize(percent int) *Chart {
	if percent < 10 {
		percent = 10
	}
	if percent > 90 {
		percent = 90
	}
	c.holeSize = percent
	return c
}

// GetHoleSize returns the doughnut hole size in percent.
func (c *Chart) GetHoleSize() int { return c.holeSize }

// SetAnchor places the chart's top-left corner on the zero-based cell
// and sizes it to span the given number of rows and columns.
func (c *Chart) SetAnchor(fromRow, fromCol, rowSpan, colSpan int) *Chart {
	if fromRow >= 0 {
		c.fromRow = fromRow
	}
	if fromCol >= 0 {
		c.fromCol = fromCol
	}
	if rowSpan > 0 {
		c.rowSpan = rowSpan
	}
	if colSpan > 0 {
		c.colSpan = colSpan
	}
	return c
}

// GetAnchor returns the anchor cell and extent.
func (c *Chart) GetAnchor() (fromRow, fromCol, rowSpan, colSpan int) {
	return c.fromRow, c.fromCol, c.rowSpan, c.colSpan
}

// ChartSeries is one named sequence of chart values.
type ChartSeries struct {
	name        string
	values      []float64
	xValues     []float64 // scatter only
	color       string    // hex fill for the whole series
	pointColors []string  // per-point fills, pie-like kinds
}

// GetName returns the series name.
func (s *ChartSeries) GetName() string { return s.name }

// GetValues returns the series values.
func (s *ChartSeries) GetValues() []float64 { return s.values }

// SetXValues sets explicit x coordinates for a scatter series.
func (s *ChartSeries) SetXValues(xs []float64) *ChartSeries {
	s.xValues = xs
	return s
}

// GetXValues returns the scatter x coordinates.
func (s *ChartSeries) GetXValues() []float64 { return s.xValues }

// SetColor sets the series fill as a hex string, "RRGGBB" or
// "AARRGGBB", with or without a leading '#'.
func (s *ChartSeries) SetColor(hex string) *ChartSeries {
	s.color = hex
	return s
}

// GetColor returns the series fill hex string.
func (s *ChartSeries) GetColor() string { return s.color }

// SetPointColors sets per-point fills, used by pie and doughnut charts
// to color individual slices.
func (s *ChartSeries) SetPointColors(hexes []string) *ChartSeries {
	s.pointColors = hexes
	return s
}

// GetPointColors returns the per-point fills.
func (s *ChartSeries) GetPointColors() []string { return s.pointColors }
