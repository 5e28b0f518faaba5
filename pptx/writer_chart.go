package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

// getCategories returns the category labels driving the value caches.
// All series of one chart share the first series' category order.
func getCategories(series []*ChartSeries) []string {
	if len(series) == 0 {
		return nil
	}
	return series[0].Categories
}

func (w *writer) writeChartPart(zw *zip.Writer, chart *ChartShape, chartIdx int) error {
	ct := chart.plotArea.chartType
	if ct == nil {
		return nil
	}

	series := chartSeriesOf(ct)
	categories := getCategories(series)

	var chartTypeXML strings.Builder
	switch c := ct.(type) {
	case *BarChart:
		chartTypeXML.WriteString(w.writeBarChartXML(c, categories))
	case *LineChart:
		chartTypeXML.WriteString(w.writeLineChartXML(c, categories))
	case *AreaChart:
		chartTypeXML.WriteString(w.writeAreaChartXML(c, categories))
	case *PieChart:
		chartTypeXML.WriteString(w.writePieChartXML(c, categories))
	case *DoughnutChart:
		chartTypeXML.WriteString(w.writeDoughnutChartXML(c, categories))
	case *ScatterChart:
		chartTypeXML.WriteString(w.writeScatterChartXML(c, categories))
	case *RadarChart:
		chartTypeXML.WriteString(w.writeRadarChartXML(c, categories))
	}

	// Title XML
	titleXML := ""
	if chart.title.Visible && chart.title.Text != "" {
		titleXML = fmt.Sprintf(`  <c:title>
    <c:tx>
      <c:rich>
        <a:bodyPr/>
        <a:lstStyle/>
        <a:p>
          <a:r>
            <a:rPr lang="en-US" sz="%d" b="%s"/>
            <a:t>%s</a:t>
          </a:r>
        </a:p>
      </c:rich>
    </c:tx>
    <c:overlay val="0"/>
  </c:title>
`, chart.title.Font.Size*100, boolToXML(chart.title.Font.Bold), xmlEscape(chart.title.Text))
	} else if !chart.title.Visible {
		titleXML = `  <c:autoTitleDeleted val="1"/>
`
	}

	// Legend XML
	legendXML := ""
	if chart.legend.Visible {
		legendXML = fmt.Sprintf(`  <c:legend>
    <c:legendPos val="%s"/>
    <c:overlay val="0"/>
  </c:legend>
`, chart.legend.Position)
	}

	// Axis XML
	axisXML := ""
	if !isPieType(ct) {
		axisXML = w.writeAxesXML(chart)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="%s" xmlns:r="%s">
  <c:chart>
%s    <c:plotArea>
      <c:layout/>
%s%s    </c:plotArea>
%s    <c:plotVisOnly val="1"/>
    <c:dispBlanksAs val="%s"/>
  </c:chart>
</c:chartSpace>`,
		nsDrawingML, nsOfficeDocRels,
		titleXML,
		chartTypeXML.String(), axisXML,
		legendXML,
		chart.displayBlankAs)

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/charts/chart%d.xml", chartIdx), content)
}

func boolToXML(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func isPieType(ct ChartType) bool {
	switch ct.(type) {
	case *PieChart, *DoughnutChart:
		return true
	}
	return false
}

func (w *writer) writeAxesXML(chart *ChartShape) string {
	axX := chart.plotArea.axisX
	axY := chart.plotArea.axisY

	catAxisXML := fmt.Sprintf(`      <c:catAx>
        <c:axId val="1"/>
        <c:scaling><c:orientation val="%s"/></c:scaling>
        <c:delete val="%s"/>
        <c:axPos val="b"/>
        <c:crossAx val="2"/>
        <c:crosses val="%s"/>
        <c:tickLblPos val="%s"/>
`, w.axisOrientation(axX), boolToXML(!axX.Visible), axX.CrossesAt, axX.TickLabelPos)

	if axX.NumberFormat != "" {
		catAxisXML += fmt.Sprintf(`        <c:numFmt formatCode="%s" sourceLinked="0"/>
`, xmlEscape(axX.NumberFormat))
	}
	if axX.MajorTickMark != "" {
		catAxisXML += fmt.Sprintf(`        <c:majorTickMark val="%s"/>
`, axX.MajorTickMark)
	}
	if axX.Title != "" {
		catAxisXML += fmt.Sprintf(`        <c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></c:rich></c:tx></c:title>
`, xmlEscape(axX.Title))
	}
	if axX.MajorGridlines != nil {
		catAxisXML += w.writeGridlinesXML("c:majorGridlines", axX.MajorGridlines)
	}
	catAxisXML += "      </c:catAx>\n"

	valAxisXML := fmt.Sprintf(`      <c:valAx>
        <c:axId val="2"/>
        <c:scaling>
          <c:orientation val="%s"/>`, w.axisOrientation(axY))

	if axY.MinBounds != nil {
		valAxisXML += fmt.Sprintf(`
          <c:min val="%g"/>`, *axY.MinBounds)
	}
	if axY.MaxBounds != nil {
		valAxisXML += fmt.Sprintf(`
          <c:max val="%g"/>`, *axY.MaxBounds)
	}
	valAxisXML += `
        </c:scaling>
`
	valAxisXML += fmt.Sprintf(`        <c:delete val="%s"/>
        <c:axPos val="l"/>
        <c:crossAx val="1"/>
        <c:crosses val="%s"/>
        <c:tickLblPos val="%s"/>
`, boolToXML(!axY.Visible), axY.CrossesAt, axY.TickLabelPos)

	if axY.NumberFormat != "" {
		valAxisXML += fmt.Sprintf(`        <c:numFmt formatCode="%s" sourceLinked="0"/>
`, xmlEscape(axY.NumberFormat))
	}
	if axY.MajorTickMark != "" {
		valAxisXML += fmt.Sprintf(`        <c:majorTickMark val="%s"/>
`, axY.MajorTickMark)
	}
	if axY.MajorUnit != nil {
		valAxisXML += fmt.Sprintf(`        <c:majorUnit val="%g"/>
`, *axY.MajorUnit)
	}
	if axY.MinorUnit != nil {
		valAxisXML += fmt.Sprintf(`        <c:minorUnit val="%g"/>
`, *axY.MinorUnit)
	}
	if axY.Title != "" {
		valAxisXML += fmt.Sprintf(`        <c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></c:rich></c:tx></c:title>
`, xmlEscape(axY.Title))
	}
	if axY.MajorGridlines != nil {
		valAxisXML += w.writeGridlinesXML("c:majorGridlines", axY.MajorGridlines)
	}
	if axY.MinorGridlines != nil {
		valAxisXML += w.writeGridlinesXML("c:minorGridlines", axY.MinorGridlines)
	}
	valAxisXML += "      </c:valAx>\n"

	return catAxisXML + valAxisXML
}

func (w *writer) axisOrientation(ax *ChartAxis) string {
	if ax.ReversedOrder {
		return "maxMin"
	}
	return "minMax"
}

func (w *writer) writeGridlinesXML(tag string, gl *Gridlines) string {
	return fmt.Sprintf(`        <%s>
          <c:spPr>
            <a:ln w="%d">
              <a:solidFill><a:srgbClr val="%s"/></a:solidFill>
            </a:ln>
          </c:spPr>
        </%s>
`, tag, gl.Width*12700, colorRGB(gl.Color), tag)
}

// seriesShapePropsXML builds the <c:spPr> for a series from its fill and outline.
func seriesShapePropsXML(s *ChartSeries) string {
	if s.FillColor.ARGB == "" && s.Outline == nil {
		return ""
	}
	inner := ""
	if s.FillColor.ARGB != "" {
		inner += fmt.Sprintf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorRGB(s.FillColor))
	}
	if s.Outline != nil {
		inner += fmt.Sprintf(`<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`,
			s.Outline.Width*12700, colorRGB(s.Outline.Color))
	}
	return fmt.Sprintf(`          <c:spPr>%s</c:spPr>
`, inner)
}

// seriesPointColorsXML builds per-point <c:dPt> overrides, cycling the
// color list over the data points. Pie and doughnut slices get their
// fills this way.
func seriesPointColorsXML(s *ChartSeries, pointCount int) string {
	if len(s.PointColors) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < pointCount; i++ {
		c := s.PointColors[i%len(s.PointColors)]
		fmt.Fprintf(&sb, `          <c:dPt>
            <c:idx val="%d"/>
            <c:bubble3D val="0"/>
            <c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr>
          </c:dPt>
`, i, colorRGB(c))
	}
	return sb.String()
}

func seriesFormatCode(s *ChartSeries) string {
	if s.NumberFormat != "" {
		return s.NumberFormat
	}
	return "General"
}

func (w *writer) writeSeriesXML(series []*ChartSeries, categories []string, withMarker bool) string {
	var sb strings.Builder
	for idx, s := range series {
		sb.WriteString(fmt.Sprintf(`        <c:ser>
          <c:idx val="%d"/>
          <c:order val="%d"/>
          <c:tx><c:strRef><c:f>Sheet1!$B$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>
%s%s`, idx, idx, xmlEscape(s.Title), seriesShapePropsXML(s), seriesPointColorsXML(s, len(categories))))

		// Data labels
		if s.ShowValue || s.ShowCategoryName || s.ShowPercentage || s.ShowSeriesName {
			sb.WriteString("          <c:dLbls>\n")
			if s.ShowLegendKey {
				sb.WriteString("            <c:showLegendKey val=\"1\"/>\n")
			}
			if s.ShowValue {
				sb.WriteString("            <c:showVal val=\"1\"/>\n")
			}
			if s.ShowCategoryName {
				sb.WriteString("            <c:showCatName val=\"1\"/>\n")
			}
			if s.ShowPercentage {
				sb.WriteString("            <c:showPercent val=\"1\"/>\n")
			}
			if s.ShowSeriesName {
				sb.WriteString("            <c:showSerName val=\"1\"/>\n")
			}
			if s.Separator != "" && s.Separator != "," {
				sb.WriteString(fmt.Sprintf("            <c:separator>%s</c:separator>\n", xmlEscape(s.Separator)))
			}
			if s.LabelPosition != "" {
				sb.WriteString(fmt.Sprintf("            <c:dLblPos val=\"%s\"/>\n", s.LabelPosition))
			}
			sb.WriteString("          </c:dLbls>\n")
		}

		// Categories
		if len(categories) > 0 {
			sb.WriteString("          <c:cat>\n            <c:strRef><c:f>Sheet1!$A$2</c:f><c:strCache>\n")
			sb.WriteString(fmt.Sprintf("              <c:ptCount val=\"%d\"/>\n", len(categories)))
			for i, cat := range categories {
				sb.WriteString(fmt.Sprintf("              <c:pt idx=\"%d\"><c:v>%s</c:v></c:pt>\n", i, xmlEscape(cat)))
			}
			sb.WriteString("            </c:strCache></c:strRef>\n          </c:cat>\n")
		}

		// Values
		sb.WriteString("          <c:val>\n            <c:numRef><c:f>Sheet1!$B$2</c:f><c:numCache>\n")
		sb.WriteString(fmt.Sprintf("              <c:formatCode>%s</c:formatCode>\n              <c:ptCount val=\"%d\"/>\n",
			xmlEscape(seriesFormatCode(s)), len(categories)))
		for i, cat := range categories {
			val := s.Values[cat]
			sb.WriteString(fmt.Sprintf("              <c:pt idx=\"%d\"><c:v>%g</c:v></c:pt>\n", i, val))
		}
		sb.WriteString("            </c:numCache></c:numRef>\n          </c:val>\n")

		if withMarker && s.Marker != nil {
			sb.WriteString(fmt.Sprintf("          <c:marker><c:symbol val=\"%s\"/><c:size val=\"%d\"/></c:marker>\n",
				s.Marker.Symbol, s.Marker.Size))
		}

		sb.WriteString("        </c:ser>\n")
	}
	return sb.String()
}

func (w *writer) writeBarChartXML(c *BarChart, cats []string) string {
	return fmt.Sprintf(`      <c:barChart>
        <c:barDir val="%s"/>
        <c:grouping val="%s"/>
        <c:varyColors val="0"/>
%s        <c:gapWidth val="%d"/>
        <c:overlap val="%d"/>
        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:barChart>
`, c.BarDirection, c.BarGrouping, w.writeSeriesXML(c.Series, cats, false),
		c.GapWidthPercent, c.OverlapPercent)
}

func (w *writer) writeLineChartXML(c *LineChart, cats []string) string {
	smooth := "0"
	if c.IsSmooth {
		smooth = "1"
	}
	seriesXML := w.writeSeriesXML(c.Series, cats, true)
	// Add smooth to each series
	seriesXML = strings.ReplaceAll(seriesXML, "</c:ser>",
		fmt.Sprintf("          <c:smooth val=\"%s\"/>\n        </c:ser>", smooth))

	return fmt.Sprintf(`      <c:lineChart>
        <c:grouping val="standard"/>
        <c:varyColors val="0"/>
%s        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:lineChart>
`, seriesXML)
}

func (w *writer) writeAreaChartXML(c *AreaChart, cats []string) string {
	grouping := c.Grouping
	if grouping == "" {
		grouping = AreaGroupingStandard
	}
	return fmt.Sprintf(`      <c:areaChart>
        <c:grouping val="%s"/>
        <c:varyColors val="0"/>
%s        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:areaChart>
`, grouping, w.writeSeriesXML(c.Series, cats, false))
}

func (w *writer) writePieChartXML(c *PieChart, cats []string) string {
	return fmt.Sprintf(`      <c:pieChart>
        <c:varyColors val="1"/>
%s      </c:pieChart>
`, w.writeSeriesXML(c.Series, cats, false))
}

func (w *writer) writeDoughnutChartXML(c *DoughnutChart, cats []string) string {
	return fmt.Sprintf(`      <c:doughnutChart>
        <c:varyColors val="1"/>
%s        <c:holeSize val="%d"/>
      </c:doughnutChart>
`, w.writeSeriesXML(c.Series, cats, false), c.HoleSize)
}

func (w *writer) writeScatterChartXML(c *ScatterChart, cats []string) string {
	smooth := "0"
	if c.IsSmooth {
		smooth = "1"
	}

	var sb strings.Builder
	for idx, s := range c.Series {
		sb.WriteString(fmt.Sprintf(`        <c:ser>
          <c:idx val="%d"/>
          <c:order val="%d"/>
          <c:tx><c:strRef><c:f>Sheet1!$B$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>
%s`, idx, idx, xmlEscape(s.Title), seriesShapePropsXML(s)))

		// X values
		sb.WriteString("          <c:xVal>\n            <c:numRef><c:f>Sheet1!$A$2</c:f><c:numCache>\n")
		sb.WriteString(fmt.Sprintf("              <c:formatCode>General</c:formatCode>\n              <c:ptCount val=\"%d\"/>\n", len(cats)))
		for i, cat := range cats {
			sb.WriteString(fmt.Sprintf("              <c:pt idx=\"%d\"><c:v>%s</c:v></c:pt>\n", i, xmlEscape(cat)))
		}
		sb.WriteString("            </c:numCache></c:numRef>\n          </c:xVal>\n")

		// Y values
		sb.WriteString("          <c:yVal>\n            <c:numRef><c:f>Sheet1!$B$2</c:f><c:numCache>\n")
		sb.WriteString(fmt.Sprintf("              <c:formatCode>%s</c:formatCode>\n              <c:ptCount val=\"%d\"/>\n",
			xmlEscape(seriesFormatCode(s)), len(cats)))
		for i, cat := range cats {
			val := s.Values[cat]
			sb.WriteString(fmt.Sprintf("              <c:pt idx=\"%d\"><c:v>%g</c:v></c:pt>\n", i, val))
		}
		sb.WriteString("            </c:numCache></c:numRef>\n          </c:yVal>\n")

		sb.WriteString(fmt.Sprintf("          <c:smooth val=\"%s\"/>\n", smooth))
		sb.WriteString("        </c:ser>\n")
	}

	return fmt.Sprintf(`      <c:scatterChart>
        <c:scatterStyle val="lineMarker"/>
        <c:varyColors val="0"/>
%s        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:scatterChart>
`, sb.String())
}

func (w *writer) writeRadarChartXML(c *RadarChart, cats []string) string {
	return fmt.Sprintf(`      <c:radarChart>
        <c:radarStyle val="marker"/>
        <c:varyColors val="0"/>
%s        <c:axId val="1"/>
        <c:axId val="2"/>
      </c:radarChart>
`, w.writeSeriesXML(c.Series, cats, true))
}
