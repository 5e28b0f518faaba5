package xlsx

import (
	"archive/zip"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// writeSheet writes xl/worksheets/sheetN.xml. Child elements must
// follow the schema order: sheetViews, cols, sheetData, autoFilter,
// mergeCells, conditionalFormatting, dataValidations, pageMargins,
// drawing.
func (w *writer) writeSheet(zw *zip.Writer, sheet *Sheet, sheetNum int, selected bool) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<worksheet xmlns="%s" xmlns:r="%s">`, nsSpreadsheetML, nsOfficeDocRels))

	b.WriteString(fmt.Sprintf(`<dimension ref="%s"/>`, sheet.Dimension()))
	b.WriteString(w.sheetViewsXML(sheet, selected))
	b.WriteString(`<sheetFormatPr defaultRowHeight="15"/>`)
	b.WriteString(colsXML(sheet))
	b.WriteString(w.sheetDataXML(sheet))

	if sheet.autoFilterRef != "" {
		b.WriteString(fmt.Sprintf(`<autoFilter ref="%s"/>`, sheet.autoFilterRef))
	}
	if len(sheet.merges) > 0 {
		b.WriteString(fmt.Sprintf(`<mergeCells count="%d">`, len(sheet.merges)))
		for _, ref := range sheet.merges {
			b.WriteString(fmt.Sprintf(`<mergeCell ref="%s"/>`, ref))
		}
		b.WriteString(`</mergeCells>`)
	}
	b.WriteString(w.condFormatsXML(sheet))
	b.WriteString(validationsXML(sheet))
	b.WriteString(`<pageMargins left="0.7" right="0.7" top="0.75" bottom="0.75" header="0.3" footer="0.3"/>`)
	if len(sheet.charts) > 0 {
		b.WriteString(`<drawing r:id="rId1"/>`)
	}

	b.WriteString(`</worksheet>`)
	return writeRawXMLToZip(zw, fmt.Sprintf("xl/worksheets/sheet%d.xml", sheetNum), b.String())
}

// writeSheetRels writes the per-sheet relationship part. Only sheets
// with a drawing have one.
func (w *writer) writeSheetRels(zw *zip.Writer, sheetNum, drawingNum int) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeDrawing, Target: fmt.Sprintf("../drawings/drawing%d.xml", drawingNum)},
		},
	}
	return writeXMLToZip(zw, fmt.Sprintf("xl/worksheets/_rels/sheet%d.xml.rels", sheetNum), rels)
}

func (w *writer) sheetViewsXML(sheet *Sheet, selected bool) string {
	var b strings.Builder
	b.WriteString(`<sheetViews><sheetView workbookViewId="0"`)
	if selected {
		b.WriteString(` tabSelected="1"`)
	}
	pane := freezePaneXML(sheet.freezeCell)
	if pane == "" {
		b.WriteString(`/></sheetViews>`)
		return b.String()
	}
	b.WriteString(`>` + pane + `</sheetView></sheetViews>`)
	return b.String()
}

// freezePaneXML converts a freeze cell like "B2" into a frozen-pane
// element: the cell is the top-left of the scrollable pane, so its
// column index is the number of frozen columns and its row index the
// number of frozen rows.
func freezePaneXML(freezeCell string) string {
	if freezeCell == "" {
		return ""
	}
	row, col, err := ParseCellRef(freezeCell)
	if err != nil || (row == 0 && col == 0) {
		return ""
	}
	activePane := "bottomRight"
	switch {
	case col == 0:
		activePane = "bottomLeft"
	case row == 0:
		activePane = "topRight"
	}
	return fmt.Sprintf(`<pane xSplit="%d" ySplit="%d" topLeftCell="%s" activePane="%s" state="frozen"/>`,
		col, row, freezeCell, activePane)
}

func colsXML(sheet *Sheet) string {
	if len(sheet.colWidths) == 0 {
		return ""
	}
	cols := make([]int, 0, len(sheet.colWidths))
	for col := range sheet.colWidths {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	var b strings.Builder
	b.WriteString(`<cols>`)
	for _, col := range cols {
		b.WriteString(fmt.Sprintf(`<col min="%d" max="%d" width="%s" customWidth="1"/>`,
			col+1, col+1, formatFloat(sheet.colWidths[col])))
	}
	b.WriteString(`</cols>`)
	return b.String()
}

func (w *writer) sheetDataXML(sheet *Sheet) string {
	var b strings.Builder
	b.WriteString(`<sheetData>`)
	for _, row := range sheet.usedRows() {
		b.WriteString(fmt.Sprintf(`<row r="%d"`, row+1))
		if height, ok := sheet.rowHeights[row]; ok {
			b.WriteString(fmt.Sprintf(` ht="%s" customHeight="1"`, formatFloat(height)))
		}
		cells := sheet.rowCells(row)
		if len(cells) == 0 {
			b.WriteString(`/>`)
			continue
		}
		b.WriteString(`>`)
		for _, c := range cells {
			b.WriteString(w.cellXML(c))
		}
		b.WriteString(`</row>`)
	}
	b.WriteString(`</sheetData>`)
	return b.String()
}

// cellXML renders one cell. Strings point into the shared string table,
// formulas are written without a cached value so the application
// recalculates them on open.
func (w *writer) cellXML(c *Cell) string {
	attrs := fmt.Sprintf(` r="%s"`, c.Ref())
	if s := w.cellXf[c]; s > 0 {
		attrs += fmt.Sprintf(` s="%d"`, s)
	}
	switch c.cellType {
	case CellTypeString:
		return fmt.Sprintf(`<c%s t="s"><v>%d</v></c>`, attrs, w.sst.lookup(c.str))
	case CellTypeNumber:
		return fmt.Sprintf(`<c%s><v>%s</v></c>`, attrs, strconv.FormatFloat(c.num, 'g', -1, 64))
	case CellTypeBool:
		v := "0"
		if c.boolean {
			v = "1"
		}
		return fmt.Sprintf(`<c%s t="b"><v>%s</v></c>`, attrs, v)
	case CellTypeFormula:
		return fmt.Sprintf(`<c%s><f>%s</f></c>`, attrs, xmlEscape(strings.TrimPrefix(c.formula, "=")))
	default:
		if w.cellXf[c] > 0 {
			return fmt.Sprintf(`<c%s/>`, attrs)
		}
		return ""
	}
}

func (w *writer) condFormatsXML(sheet *Sheet) string {
	var b strings.Builder
	for i, cf := range sheet.condFormats {
		b.WriteString(fmt.Sprintf(`<conditionalFormatting sqref="%s">`, cf.Range))
		b.WriteString(w.cfRuleXML(cf, i+1))
		b.WriteString(`</conditionalFormatting>`)
	}
	return b.String()
}

func (w *writer) cfRuleXML(cf *ConditionalFormat, priority int) string {
	switch cf.Type {
	case CondFormatColorScale:
		var b strings.Builder
		b.WriteString(fmt.Sprintf(`<cfRule type="colorScale" priority="%d"><colorScale>`, priority))
		if len(cf.ScaleColors) >= 3 {
			b.WriteString(`<cfvo type="min"/><cfvo type="percentile" val="50"/><cfvo type="max"/>`)
		} else {
			b.WriteString(`<cfvo type="min"/><cfvo type="max"/>`)
		}
		for _, hex := range cf.ScaleColors {
			b.WriteString(fmt.Sprintf(`<color rgb="%s"/>`, normalizeARGB(hex)))
		}
		b.WriteString(`</colorScale></cfRule>`)
		return b.String()
	case CondFormatDataBar:
		return fmt.Sprintf(
			`<cfRule type="dataBar" priority="%d"><dataBar><cfvo type="min"/><cfvo type="max"/><color rgb="%s"/></dataBar></cfRule>`,
			priority, normalizeARGB(cf.BarColor))
	case CondFormatCellIs:
		formulas := fmt.Sprintf(`<formula>%s</formula>`, xmlEscape(cf.Formula))
		if cf.Formula2 != "" {
			formulas += fmt.Sprintf(`<formula>%s</formula>`, xmlEscape(cf.Formula2))
		}
		return fmt.Sprintf(`<cfRule type="cellIs" dxfId="%d" priority="%d" operator="%s">%s</cfRule>`,
			w.dxfID[cf], priority, cf.Operator, formulas)
	case CondFormatIconSet:
		return fmt.Sprintf(
			`<cfRule type="iconSet" priority="%d"><iconSet iconSet="%s"><cfvo type="percent" val="0"/><cfvo type="percent" val="33"/><cfvo type="percent" val="67"/></iconSet></cfRule>`,
			priority, xmlEscape(cf.IconStyle))
	}
	return ""
}

func validationsXML(sheet *Sheet) string {
	if len(sheet.validations) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<dataValidations count="%d">`, len(sheet.validations)))
	for _, v := range sheet.validations {
		allowBlank := "0"
		if v.AllowBlank {
			allowBlank = "1"
		}
		b.WriteString(fmt.Sprintf(
			`<dataValidation type="%s" allowBlank="%s" showInputMessage="1" showErrorMessage="1" sqref="%s"><formula1>%s</formula1></dataValidation>`,
			v.Type, allowBlank, v.Range, xmlEscape(v.Formula1)))
	}
	b.WriteString(`</dataValidations>`)
	return b.String()
}
