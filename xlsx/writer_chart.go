package xlsx

import (
	"archive/zip"
	"fmt"
	"strconv"
	"strings"
)

// writeDrawing writes xl/drawings/drawingN.xml: one twoCellAnchor
// graphic frame per chart on the sheet. Chart parts are numbered
// globally across the workbook starting at firstChartNum.
func (w *writer) writeDrawing(zw *zip.Writer, sheet *Sheet, drawingNum, firstChartNum int) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<xdr:wsDr xmlns:xdr="%s" xmlns:a="%s">`, nsSpreadsheetDr, nsDrawingML))
	for i, chart := range sheet.charts {
		fromRow, fromCol, rowSpan, colSpan := chart.GetAnchor()
		b.WriteString(`<xdr:twoCellAnchor>`)
		b.WriteString(fmt.Sprintf(
			`<xdr:from><xdr:col>%d</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>%d</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>`,
			fromCol, fromRow))
		b.WriteString(fmt.Sprintf(
			`<xdr:to><xdr:col>%d</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>%d</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>`,
			fromCol+colSpan, fromRow+rowSpan))
		b.WriteString(`<xdr:graphicFrame macro="">`)
		b.WriteString(fmt.Sprintf(
			`<xdr:nvGraphicFramePr><xdr:cNvPr id="%d" name="Chart %d"/><xdr:cNvGraphicFramePr/></xdr:nvGraphicFramePr>`,
			i+2, firstChartNum+i))
		b.WriteString(`<xdr:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/></xdr:xfrm>`)
		b.WriteString(fmt.Sprintf(
			`<a:graphic><a:graphicData uri="%s"><c:chart xmlns:c="%s" xmlns:r="%s" r:id="rId%d"/></a:graphicData></a:graphic>`,
			nsChartML, nsChartML, nsOfficeDocRels, i+1))
		b.WriteString(`</xdr:graphicFrame><xdr:clientData/></xdr:twoCellAnchor>`)
	}
	b.WriteString(`</xdr:wsDr>`)
	return writeRawXMLToZip(zw, fmt.Sprintf("xl/drawings/drawing%d.xml", drawingNum), b.String())
}

func (w *writer) writeDrawingRels(zw *zip.Writer, drawingNum, firstChartNum, chartCount int) error {
	rels := xmlRelationships{Xmlns: nsRelationships}
	for i := 0; i < chartCount; i++ {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     fmt.Sprintf("rId%d", i+1),
			Type:   relTypeChart,
			Target: fmt.Sprintf("../charts/chart%d.xml", firstChartNum+i),
		})
	}
	return writeXMLToZip(zw, fmt.Sprintf("xl/drawings/_rels/drawing%d.xml.rels", drawingNum), rels)
}

// writeChartPart writes xl/charts/chartN.xml. The chart data is
// embedded as literal caches (c:strLit / c:numLit) rather than sheet
// references, so the chart does not depend on cell layout.
func (w *writer) writeChartPart(zw *zip.Writer, chart *Chart, chartNum int) error {
	titleXML := ""
	if chart.title != "" {
		titleXML = fmt.Sprintf(
			`<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="1400" b="1"/><a:t>%s</a:t></a:r></a:p></c:rich></c:tx><c:overlay val="0"/></c:title><c:autoTitleDeleted val="0"/>`,
			xmlEscape(chart.title))
	}

	legendXML := ""
	if chart.showLegend {
		legendXML = fmt.Sprintf(`<c:legend><c:legendPos val="%s"/><c:overlay val="0"/></c:legend>`, chart.legendPos)
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="%s" xmlns:a="%s" xmlns:r="%s"><c:chart>%s<c:plotArea><c:layout/>%s%s</c:plotArea>%s<c:plotVisOnly val="1"/><c:dispBlanksAs val="zero"/></c:chart></c:chartSpace>`,
		nsChartML, nsDrawingML, nsOfficeDocRels,
		titleXML, chartGroupXML(chart), chartAxesXML(chart), legendXML)

	return writeRawXMLToZip(zw, fmt.Sprintf("xl/charts/chart%d.xml", chartNum), content)
}

// chartGroupXML renders the kind-specific chart group element.
func chartGroupXML(c *Chart) string {
	switch c.chartType {
	case ChartTypeBar, ChartTypeBarStacked, ChartTypeBarHorizontal:
		return barGroupXML(c)
	case ChartTypeLine, ChartTypeLineSmooth:
		return lineGroupXML(c)
	case ChartTypeArea, ChartTypeAreaStacked:
		return areaGroupXML(c)
	case ChartTypePie, ChartTypeDoughnut:
		return pieGroupXML(c)
	case ChartTypeScatter:
		return scatterGroupXML(c)
	case ChartTypeRadar:
		return radarGroupXML(c)
	}
	return barGroupXML(c)
}

func barGroupXML(c *Chart) string {
	barDir := "col"
	if c.chartType == ChartTypeBarHorizontal {
		barDir = "bar"
	}
	grouping := "clustered"
	overlap := 0
	if c.chartType == ChartTypeBarStacked {
		grouping = "stacked"
		overlap = 100
	}
	return fmt.Sprintf(
		`<c:barChart><c:barDir val="%s"/><c:grouping val="%s"/><c:varyColors val="0"/>%s%s<c:gapWidth val="150"/><c:overlap val="%d"/><c:axId val="1"/><c:axId val="2"/></c:barChart>`,
		barDir, grouping, categorySeriesXML(c, false), chartDLblsXML(c), overlap)
}

func lineGroupXML(c *Chart) string {
	return fmt.Sprintf(
		`<c:lineChart><c:grouping val="standard"/><c:varyColors val="0"/>%s%s<c:marker val="1"/><c:axId val="1"/><c:axId val="2"/></c:lineChart>`,
		categorySeriesXML(c, true), chartDLblsXML(c))
}

func areaGroupXML(c *Chart) string {
	grouping := "standard"
	if c.chartType == ChartTypeAreaStacked {
		grouping = "stacked"
	}
	return fmt.Sprintf(
		`<c:areaChart><c:grouping val="%s"/><c:varyColors val="0"/>%s%s<c:axId val="1"/><c:axId val="2"/></c:areaChart>`,
		grouping, categorySeriesXML(c, false), chartDLblsXML(c))
}

func pieGroupXML(c *Chart) string {
	// Pie-like charts consume only the first series.
	series := c.series
	if len(series) > 1 {
		series = series[:1]
	}
	trimmed := *c
	trimmed.series = series

	if c.chartType == ChartTypeDoughnut {
		return fmt.Sprintf(
			`<c:doughnutChart><c:varyColors val="1"/>%s%s<c:firstSliceAng val="0"/><c:holeSize val="%d"/></c:doughnutChart>`,
			categorySeriesXML(&trimmed, false), chartDLblsXML(c), c.holeSize)
	}
	return fmt.Sprintf(
		`<c:pieChart><c:varyColors val="1"/>%s%s<c:firstSliceAng val="0"/></c:pieChart>`,
		categorySeriesXML(&trimmed, false), chartDLblsXML(c))
}

func scatterGroupXML(c *Chart) string {
	var sb strings.Builder
	for idx, s := range c.series {
		sb.WriteString(fmt.Sprintf(`<c:ser><c:idx val="%d"/><c:order val="%d"/>%s%s`,
			idx, idx, seriesNameXML(s, idx), seriesShapePropsXML(c, s)))

		xs := s.xValues
		if len(xs) == 0 {
			xs = make([]float64, len(s.values))
			for i := range xs {
				xs[i] = float64(i)
			}
		}
		sb.WriteString(`<c:xVal>` + numLitXML(xs, "General") + `</c:xVal>`)
		sb.WriteString(`<c:yVal>` + numLitXML(s.values, chartFormatCode(c)) + `</c:yVal>`)
		sb.WriteString(`<c:smooth val="0"/></c:ser>`)
	}
	return fmt.Sprintf(
		`<c:scatterChart><c:scatterStyle val="lineMarker"/><c:varyColors val="0"/>%s%s<c:axId val="1"/><c:axId val="2"/></c:scatterChart>`,
		sb.String(), chartDLblsXML(c))
}

func radarGroupXML(c *Chart) string {
	return fmt.Sprintf(
		`<c:radarChart><c:radarStyle val="marker"/><c:varyColors val="0"/>%s%s<c:axId val="1"/><c:axId val="2"/></c:radarChart>`,
		categorySeriesXML(c, false), chartDLblsXML(c))
}

// categorySeriesXML renders the series of a category-based chart group,
// optionally ending each series with a smooth flag (line kinds).
func categorySeriesXML(c *Chart, withSmooth bool) string {
	var sb strings.Builder
	for idx, s := range c.series {
		sb.WriteString(fmt.Sprintf(`<c:ser><c:idx val="%d"/><c:order val="%d"/>%s%s%s`,
			idx, idx, seriesNameXML(s, idx), seriesShapePropsXML(c, s), seriesPointColorsXML(s)))
		if len(c.categories) > 0 {
			sb.WriteString(`<c:cat>` + strLitXML(c.categories) + `</c:cat>`)
		}
		sb.WriteString(`<c:val>` + numLitXML(s.values, chartFormatCode(c)) + `</c:val>`)
		if withSmooth {
			smooth := "0"
			if c.chartType == ChartTypeLineSmooth {
				smooth = "1"
			}
			sb.WriteString(fmt.Sprintf(`<c:smooth val="%s"/>`, smooth))
		}
		sb.WriteString(`</c:ser>`)
	}
	return sb.String()
}

func seriesNameXML(s *ChartSeries, idx int) string {
	name := s.name
	if name == "" {
		name = fmt.Sprintf("Series %d", idx+1)
	}
	return fmt.Sprintf(`<c:tx><c:v>%s</c:v></c:tx>`, xmlEscape(name))
}

// seriesShapePropsXML fills the series: line kinds color the stroke,
// everything else the area.
func seriesShapePropsXML(c *Chart, s *ChartSeries) string {
	rgb := argbToRGB(normalizeARGB(s.color))
	if rgb == "" {
		return ""
	}
	switch c.chartType {
	case ChartTypeLine, ChartTypeLineSmooth, ChartTypeScatter, ChartTypeRadar:
		return fmt.Sprintf(
			`<c:spPr><a:ln w="28575"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></c:spPr>`, rgb)
	default:
		return fmt.Sprintf(`<c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr>`, rgb)
	}
}

// seriesPointColorsXML builds per-point overrides, cycling the color
// list over the data points.
func seriesPointColorsXML(s *ChartSeries) string {
	if len(s.pointColors) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range s.values {
		rgb := argbToRGB(normalizeARGB(s.pointColors[i%len(s.pointColors)]))
		if rgb == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(
			`<c:dPt><c:idx val="%d"/><c:bubble3D val="0"/><c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr></c:dPt>`,
			i, rgb))
	}
	return sb.String()
}

func chartDLblsXML(c *Chart) string {
	if !c.showValues {
		return ""
	}
	return `<c:dLbls><c:showLegendKey val="0"/><c:showVal val="1"/><c:showCatName val="0"/><c:showSerName val="0"/><c:showPercent val="0"/><c:showBubbleSize val="0"/></c:dLbls>`
}

func chartFormatCode(c *Chart) string {
	if c.numberFormat != "" {
		return c.numberFormat
	}
	return "General"
}

func strLitXML(items []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<c:strLit><c:ptCount val="%d"/>`, len(items)))
	for i, item := range items {
		sb.WriteString(fmt.Sprintf(`<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, xmlEscape(item)))
	}
	sb.WriteString(`</c:strLit>`)
	return sb.String()
}

func numLitXML(values []float64, formatCode string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<c:numLit><c:formatCode>%s</c:formatCode><c:ptCount val="%d"/>`,
		xmlEscape(formatCode), len(values)))
	for i, v := range values {
		sb.WriteString(fmt.Sprintf(`<c:pt idx="%d"><c:v>%s</c:v></c:pt>`,
			i, strconv.FormatFloat(v, 'g', -1, 64)))
	}
	sb.WriteString(`</c:numLit>`)
	return sb.String()
}

// chartAxesXML renders the axis pair for axis-based kinds. Horizontal
// bars swap the axis positions; scatter uses two value axes.
func chartAxesXML(c *Chart) string {
	switch c.chartType {
	case ChartTypePie, ChartTypeDoughnut:
		return ""
	case ChartTypeScatter:
		return valAxXML(1, "b", c.xAxisTitle, "General", 2, false) +
			valAxXML(2, "l", c.yAxisTitle, chartFormatCode(c), 1, true)
	}
	catPos, valPos := "b", "l"
	if c.chartType == ChartTypeBarHorizontal {
		catPos, valPos = "l", "b"
	}
	return catAxXML(catPos, c.xAxisTitle) + valAxXML(2, valPos, c.yAxisTitle, chartFormatCode(c), 1, true)
}

func catAxXML(axPos, title string) string {
	return fmt.Sprintf(
		`<c:catAx><c:axId val="1"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:delete val="0"/><c:axPos val="%s"/>%s<c:tickLblPos val="nextTo"/><c:crossAx val="2"/></c:catAx>`,
		axPos, axisTitleXML(title))
}

func valAxXML(axID int, axPos, title, formatCode string, crossAx int, gridlines bool) string {
	grid := ""
	if gridlines {
		grid = `<c:majorGridlines/>`
	}
	return fmt.Sprintf(
		`<c:valAx><c:axId val="%d"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:delete val="0"/><c:axPos val="%s"/>%s%s<c:numFmt formatCode="%s" sourceLinked="0"/><c:tickLblPos val="nextTo"/><c:crossAx val="%d"/></c:valAx>`,
		axID, axPos, grid, axisTitleXML(title), xmlEscape(formatCode), crossAx)
}

func axisTitleXML(title string) string {
	if title == "" {
		return ""
	}
	return fmt.Sprintf(
		`<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></c:rich></c:tx><c:overlay val="0"/></c:title>`,
		xmlEscape(title))
}

// argbToRGB strips the alpha byte off a normalized ARGB string.
func argbToRGB(argb string) string {
	if len(argb) != 8 {
		return ""
	}
	return argb[2:]
}
