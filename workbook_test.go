package gooffice

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VantageDataChat/GoOffice/xlsx"
)

func cellValues(t *testing.T, doc string) [][]CellValue {
	t.Helper()
	var data [][]CellValue
	require.NoError(t, json.Unmarshal([]byte(doc), &data))
	return data
}

func TestComposeBook_ZeroSheetsGetsDefault(t *testing.T) {
	wb, warnings := composeBook(&WorkbookSpec{}, testTheme())
	assert.Empty(t, warnings)
	require.Equal(t, 1, wb.GetSheetCount())
	sheet, err := wb.GetSheet(0)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet.GetName())
}

func TestComposeBook_HeadersAndData(t *testing.T) {
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name:    "Sales",
		Headers: []string{"Region", "Total"},
		Data:    cellValues(t, `[["North", 120], ["South", 98.5]]`),
	}}}
	wb, warnings := composeBook(spec, testTheme())
	assert.Empty(t, warnings)

	sheet := wb.GetSheetByName("Sales")
	require.NotNil(t, sheet)
	assert.Equal(t, "Region", sheet.GetCell(0, 0).String())
	assert.Equal(t, "North", sheet.GetCell(1, 0).String())
	assert.Equal(t, 120.0, sheet.GetCell(1, 1).Number())
	assert.Equal(t, 98.5, sheet.GetCell(2, 1).Number())

	header := sheet.GetCell(0, 0).GetStyle()
	require.NotNil(t, header)
	assert.True(t, header.Bold)
}

func TestComposeBook_FormulaCells(t *testing.T) {
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name: "Calc",
		Data: cellValues(t, `[[1], [2], ["=SUM(A1:A2)"]]`),
		Formulas: []FormulaSpec{
			{Cell: "B1", Formula: "=A1*2"},
			{Cell: "bogus", Formula: "=1"},
		},
	}}}
	wb, warnings := composeBook(spec, testTheme())

	sheet := wb.GetSheetByName("Calc")
	assert.Equal(t, "=SUM(A1:A2)", sheet.GetCell(2, 0).Formula())
	assert.Equal(t, "=A1*2", sheet.GetCell(0, 1).Formula())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "bogus")
}

func TestComposeBook_LayoutFeatures(t *testing.T) {
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name:           "Layout",
		Headers:        []string{"A", "B"},
		Data:           cellValues(t, `[["x", 1]]`),
		ColumnWidths:   ColumnWidths{0: 18},
		RowHeights:     RowHeights{0: 30},
		Merges:         []string{"A1:B1"},
		FreezePanes:    "A2",
		AutoFilter:     "A1:B2",
		PrintTitleRows: "1:1",
		Validations:    []ValidationSpec{{Range: "B2:B10", Options: []string{"yes", "no"}}},
	}}}
	wb, warnings := composeBook(spec, testTheme())
	assert.Empty(t, warnings)

	sheet := wb.GetSheetByName("Layout")
	assert.Equal(t, 18.0, sheet.GetColumnWidth(0))
	assert.Equal(t, 30.0, sheet.GetRowHeight(0))
	assert.Equal(t, []string{"A1:B1"}, sheet.GetMerges())
	assert.Equal(t, "A2", sheet.GetFreezePanes())
	assert.Equal(t, "A1:B2", sheet.GetAutoFilter())
	assert.Equal(t, "1:1", sheet.GetPrintTitleRows())
	assert.Len(t, sheet.GetDataValidations(), 1)
}

func TestComposeBook_AutoColumnWidths(t *testing.T) {
	long := strings.Repeat("x", 55)
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name:    "Auto",
		Headers: []string{"abc", "long", "中文"},
		Data:    cellValues(t, `[["xy", "`+long+`", "宽度测试"]]`),
	}}}
	wb, warnings := composeBook(spec, testTheme())
	assert.Empty(t, warnings)

	sheet := wb.GetSheetByName("Auto")
	// Longest cell plus 4, clamped to [10, 50].
	assert.Equal(t, 10.0, sheet.GetColumnWidth(0))
	assert.Equal(t, 50.0, sheet.GetColumnWidth(1))
	// Multi-byte text counts characters, not bytes.
	assert.Equal(t, 10.0, sheet.GetColumnWidth(2))
}

func TestComposeBook_ExplicitWidthsSkipAutoSizing(t *testing.T) {
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name:         "Fixed",
		Headers:      []string{"a", strings.Repeat("y", 80)},
		Data:         cellValues(t, `[["x", "y"]]`),
		ColumnWidths: ColumnWidths{0: 18},
	}}}
	wb, _ := composeBook(spec, testTheme())

	sheet := wb.GetSheetByName("Fixed")
	assert.Equal(t, 18.0, sheet.GetColumnWidth(0))
	assert.Equal(t, 0.0, sheet.GetColumnWidth(1), "unlisted columns stay at the writer default")
}

func TestComposeBook_ConditionalFormats(t *testing.T) {
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name: "CF",
		Data: cellValues(t, `[[1]]`),
		CondFormats: []CondFormatSpec{
			{Range: "A1:A5", Type: "color_scale"},
			{Range: "B1:B5", Type: "data_bar", Color: "638EC6"},
			{Range: "C1:C5", Type: "cell_is", Operator: "lessThan", Value: "0", Background: "FFC7CE"},
			{Range: "D1:D5", Type: "icon_set"},
			{Range: "E1:E5", Type: "glitter"},
			{Type: "data_bar"},
		},
	}}}
	wb, warnings := composeBook(spec, testTheme())

	sheet := wb.GetSheetByName("CF")
	assert.Len(t, sheet.GetConditionalFormats(), 4)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "glitter")
	assert.Contains(t, warnings[1], "without a range")
}

func TestComposeBook_NativeChart(t *testing.T) {
	var chart SheetChart
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "pie",
		"title": "Share",
		"categories": ["A", "B"],
		"series": [
			{"name": "first", "values": [3, 7]},
			{"name": "second", "values": [5, 5]}
		],
		"position": "D2"
	}`), &chart))

	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name:   "Charts",
		Data:   cellValues(t, `[[1]]`),
		Charts: []SheetChart{chart},
	}}}
	wb, warnings := composeBook(spec, testTheme())
	assert.Empty(t, warnings)

	charts := wb.GetSheetByName("Charts").GetCharts()
	require.Len(t, charts, 1)
	assert.Equal(t, "pie", charts[0].GetType())
	// Pie charts consult the first series only.
	require.Len(t, charts[0].GetSeries(), 1)
	assert.Equal(t, "first", charts[0].GetSeries()[0].GetName())
	fromRow, fromCol, _, _ := charts[0].GetAnchor()
	assert.Equal(t, 1, fromRow)
	assert.Equal(t, 3, fromCol)
}

func TestComposeBook_StripeFills(t *testing.T) {
	spec := &WorkbookSpec{Sheets: []SheetSpec{{
		Name:         "Stripes",
		Headers:      []string{"A"},
		Data:         cellValues(t, `[["r1"], ["r2"]]`),
		StripeColors: []string{"FFFFFF", "F2F2F2"},
	}}}
	wb, _ := composeBook(spec, testTheme())

	sheet := wb.GetSheetByName("Stripes")
	first := sheet.GetCell(1, 0).GetStyle()
	second := sheet.GetCell(2, 0).GetStyle()
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.FillColor, second.FillColor)
}

func TestComposeBook_UsesXlsxRefHelpers(t *testing.T) {
	// Guard the 1-based/0-based boundary between spec refs and sheet
	// coordinates.
	r, c, err := xlsx.ParseCellRef("D2")
	require.NoError(t, err)
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
}
