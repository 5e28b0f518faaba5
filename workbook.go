package gooffice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/layout"
	"github.com/VantageDataChat/GoOffice/theme"
	"github.com/VantageDataChat/GoOffice/xlsx"
)

// Default workbook styling, used when the spec leaves styles unset.
const (
	defaultHeaderFill    = "4472C4"
	defaultHeaderFont    = "FFFFFF"
	defaultGridColor     = "D9D9D9"
	defaultBarColor      = "4472C4"
	defaultScaleMinColor = "FF0000"
	defaultScaleMaxColor = "00FF00"
	defaultIconStyle     = "3Arrows"
)

// bookComposer builds one workbook from parsed sheet specs.
type bookComposer struct {
	wb       *xlsx.Workbook
	th       theme.Theme
	warnings []string
}

// composeBook renders every sheet of the spec and returns the workbook
// plus any soft warnings. A spec with no sheets yields a single empty
// default sheet so the file stays openable.
func composeBook(spec *WorkbookSpec, th theme.Theme) (*xlsx.Workbook, []string) {
	b := &bookComposer{wb: xlsx.New(), th: th}

	props := b.wb.GetDocumentProperties()
	if spec.Settings.Author != "" {
		props.Creator = spec.Settings.Author
		props.LastModifiedBy = spec.Settings.Author
	}
	props.Company = spec.Settings.Company

	if len(spec.Sheets) == 0 {
		b.wb.AddSheet("Sheet1")
		return b.wb, b.warnings
	}
	for i := range spec.Sheets {
		b.buildSheet(i, &spec.Sheets[i])
	}
	return b.wb, b.warnings
}

func (b *bookComposer) warnf(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}

// rangeFormat is a pre-parsed number format rule from the sheet's
// numberFormats map.
type rangeFormat struct {
	r1, c1, r2, c2 int
	code           string
}

// rangeFormats parses the numberFormats keys, accepting both ranges
// ("B2:B10") and single cells ("C4").
func (b *bookComposer) rangeFormats(sheetName string, formats map[string]string) []rangeFormat {
	out := make([]rangeFormat, 0, len(formats))
	for ref, code := range formats {
		if r1, c1, r2, c2, err := xlsx.ParseRangeRef(ref); err == nil {
			out = append(out, rangeFormat{r1, c1, r2, c2, code})
			continue
		}
		if r, c, err := xlsx.ParseCellRef(ref); err == nil {
			out = append(out, rangeFormat{r, c, r, c, code})
			continue
		}
		b.warnf("sheet %s: number format range %q skipped", sheetName, ref)
	}
	return out
}

func formatFor(formats []rangeFormat, r, c int) string {
	for _, f := range formats {
		if r >= f.r1 && r <= f.r2 && c >= f.c1 && c <= f.c2 {
			return f.code
		}
	}
	return ""
}

func (b *bookComposer) buildSheet(index int, spec *SheetSpec) {
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	sheet := b.wb.AddSheet(name)
	formats := b.rangeFormats(name, spec.NumberFormats)

	colText := map[int][]string{}

	hasHeader := len(spec.Headers) > 0
	if hasHeader {
		hs := headerStyleOf(spec.HeaderStyle)
		for c, h := range spec.Headers {
			sheet.SetValue(0, c, h).SetStyle(hs)
			colText[c] = append(colText[c], h)
		}
	}

	cols := len(spec.Headers)
	for _, row := range spec.Data {
		if len(row) > cols {
			cols = len(row)
		}
	}

	offset := 0
	if hasHeader {
		offset = 1
	}
	for j, row := range spec.Data {
		r := j + offset
		for c := 0; c < cols; c++ {
			cell := sheet.Cell(r, c)
			if c < len(row) {
				switch v := row[c].Value().(type) {
				case string:
					if strings.HasPrefix(v, "=") {
						cell.SetFormula(v)
					} else if v != "" {
						cell.SetString(v)
					}
					if v != "" {
						colText[c] = append(colText[c], v)
					}
				case float64:
					cell.SetNumber(v)
					colText[c] = append(colText[c], strconv.FormatFloat(v, 'f', -1, 64))
				case bool:
					cell.SetBool(v)
					colText[c] = append(colText[c], strconv.FormatBool(v))
				}
			}
			cell.SetStyle(b.dataStyle(spec, formats, r, c))
		}
	}

	for _, f := range spec.Formulas {
		r, c, err := xlsx.ParseCellRef(f.Cell)
		if err != nil {
			b.warnf("sheet %s: formula cell %q skipped: %v", name, f.Cell, err)
			continue
		}
		cell := sheet.Cell(r, c)
		cell.SetFormula(f.Formula)
		cell.SetStyle(b.dataStyle(spec, formats, r, c))
		colText[c] = append(colText[c], f.Formula)
	}

	if len(spec.ColumnWidths) > 0 {
		for col, w := range spec.ColumnWidths {
			sheet.SetColumnWidth(col, w)
		}
	} else {
		// Auto width: longest cell text per column plus padding, so
		// sparse columns still land on the floor width.
		autoCols := cols
		for col := range colText {
			if col >= autoCols {
				autoCols = col + 1
			}
		}
		for c := 0; c < autoCols; c++ {
			sheet.SetColumnWidth(c, layout.AutoColumnWidth(colText[c]))
		}
	}
	for row, h := range spec.RowHeights {
		sheet.SetRowHeight(row, h)
	}
	for _, ref := range spec.Merges {
		sheet.MergeCells(ref)
	}

	if spec.FreezePanes != "" {
		sheet.FreezePanes(spec.FreezePanes)
	}
	if spec.AutoFilter != "" {
		sheet.SetAutoFilter(spec.AutoFilter)
	}
	if spec.PrintTitleRows != "" {
		sheet.SetPrintTitleRows(spec.PrintTitleRows)
	}

	for i := range spec.Validations {
		v := &spec.Validations[i]
		if v.Range == "" || len(v.Options) == 0 {
			b.warnf("sheet %s: list validation needs a range and options", name)
			continue
		}
		sheet.AddDataValidation(xlsx.NewListValidation(v.Range, v.Options))
	}
	for i := range spec.CondFormats {
		if rule := b.condFormat(name, &spec.CondFormats[i]); rule != nil {
			sheet.AddConditionalFormat(rule)
		}
	}
	for i := range spec.Charts {
		b.addChart(sheet, name, &spec.Charts[i])
	}
}

// dataStyle is the default body cell style: thin grid, centered, with
// the sheet's stripe fill and any matching number format layered in.
// The stripe index counts the header row so the first data row lands on
// the second stripe color.
func (b *bookComposer) dataStyle(spec *SheetSpec, formats []rangeFormat, r, c int) *xlsx.CellStyle {
	st := xlsx.NewCellStyle().
		SetBorder("thin", defaultGridColor).
		SetHorizontalAlign("center")
	if len(spec.StripeColors) > 0 {
		st.SetFillColor(spec.StripeColors[r%len(spec.StripeColors)])
	}
	if code := formatFor(formats, r, c); code != "" {
		st.SetNumberFormat(code)
	}
	return st
}

// headerStyleOf builds the header row style, falling back to bold
// white on the standard blue.
func headerStyleOf(hs *HeaderStyleSpec) *xlsx.CellStyle {
	st := xlsx.NewCellStyle().
		SetBold(true).
		SetFontSize(11).
		SetFontColor(defaultHeaderFont).
		SetFillColor(defaultHeaderFill).
		SetHorizontalAlign("center").
		SetVerticalAlign("center").
		SetBorder("thin", defaultHeaderFill)
	if hs == nil {
		return st
	}
	if hs.Bold != nil {
		st.SetBold(*hs.Bold)
	}
	if hs.FontSize > 0 {
		st.SetFontSize(hs.FontSize)
	}
	if hs.FontName != "" {
		st.SetFontName(hs.FontName)
	}
	if hs.FontColor != "" {
		st.SetFontColor(hs.FontColor)
	}
	if hs.Background != "" {
		st.SetFillColor(hs.Background)
		st.SetBorder("thin", hs.Background)
	}
	if hs.Alignment != "" {
		st.SetHorizontalAlign(hs.Alignment)
	}
	return st
}

// condFormat maps one conditional formatting spec onto a sheet rule,
// filling in the stock colors where the spec leaves them out.
func (b *bookComposer) condFormat(sheetName string, cf *CondFormatSpec) *xlsx.ConditionalFormat {
	if cf.Range == "" {
		b.warnf("sheet %s: conditional format without a range", sheetName)
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(cf.Type)) {
	case "color_scale", "colorscale":
		minColor, maxColor := cf.MinColor, cf.MaxColor
		if minColor == "" {
			minColor = defaultScaleMinColor
		}
		if maxColor == "" {
			maxColor = defaultScaleMaxColor
		}
		return xlsx.NewColorScale(cf.Range, minColor, maxColor)
	case "data_bar", "databar":
		color := cf.Color
		if color == "" {
			color = defaultBarColor
		}
		return xlsx.NewDataBar(cf.Range, color)
	case "cell_is", "cellis":
		op := cf.Operator
		if op == "" {
			op = "greaterThan"
		}
		rule := xlsx.NewCellIs(cf.Range, op, string(cf.Value))
		if cf.Background != "" {
			rule.SetFill(cf.Background)
		}
		if cf.FontColor != "" {
			rule.SetFontColor(cf.FontColor)
		}
		return rule
	case "icon_set", "iconset":
		style := cf.IconStyle
		if style == "" {
			style = defaultIconStyle
		}
		return xlsx.NewIconSet(cf.Range, style)
	default:
		b.warnf("sheet %s: unknown conditional format type %q", sheetName, cf.Type)
		return nil
	}
}

// addChart renders a chart spec as a native sheet chart anchored at
// its position, defaulting to the top-left corner.
func (b *bookComposer) addChart(sheet *xlsx.Sheet, sheetName string, sc *SheetChart) {
	plot := chartspec.BuildPlot(sc.Spec, b.th)

	chart := xlsx.NewChart(string(plot.Kind))
	if plot.Title != "" {
		chart.SetTitle(plot.Title)
	}
	chart.SetCategories(plot.Categories)
	for _, ps := range plot.Series {
		s := chart.AddSeries(ps.Name, ps.Values)
		if plot.Kind.PieLike() {
			hexes := make([]string, len(plot.Palette))
			for i, c := range plot.Palette {
				hexes[i] = c.Hex()
			}
			s.SetPointColors(hexes)
		} else {
			s.SetColor(ps.Color.Hex())
		}
		if !plot.Kind.CategoryBased() {
			s.SetXValues(ps.XValues)
		}
	}
	chart.SetLegend(plot.ShowLegend, plot.LegendPosition)
	chart.SetShowValues(plot.ShowValues || plot.ShowDataLabels)
	chart.SetNumberFormat(plot.NumberFormat)
	chart.SetAxisTitles(plot.XAxisTitle, plot.YAxisTitle)

	if sc.Position != "" {
		row, col, err := xlsx.ParseCellRef(sc.Position)
		if err != nil {
			b.warnf("sheet %s: chart position %q ignored: %v", sheetName, sc.Position, err)
		} else {
			chart.SetAnchor(row, col, sc.RowSpan, sc.ColSpan)
		}
	} else if sc.RowSpan > 0 || sc.ColSpan > 0 {
		chart.SetAnchor(0, 0, sc.RowSpan, sc.ColSpan)
	}
	sheet.AddChart(chart)
}
