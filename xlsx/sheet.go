package xlsx

import (
	"fmt"
	"sort"
	"strings"
)

// Sheet is a single worksheet: a sparse cell grid plus the layout and
// presentation features that apply to the whole sheet.
type Sheet struct {
	name           string
	cells          map[cellKey]*Cell
	maxRow, maxCol int // highest used indices, -1 when empty

	colWidths      map[int]float64 // zero-based column -> width in characters
	rowHeights     map[int]float64 // zero-based row -> height in points
	merges         []string
	freezeCell     string
	autoFilterRef  string
	printTitleRows string // e.g. "1:1"
	validations    []*DataValidation
	condFormats    []*ConditionalFormat
	charts         []*Chart
}

type cellKey struct{ row, col int }

func newSheet(name string) *Sheet {
	return &Sheet{
		name:       name,
		cells:      make(map[cellKey]*Cell),
		maxRow:     -1,
		maxCol:     -1,
		colWidths:  make(map[int]float64),
		rowHeights: make(map[int]float64),
	}
}

// GetName returns the sheet name.
func (s *Sheet) GetName() string { return s.name }

// SetName renames the sheet. Name constraints are checked by
// Workbook.Validate.
func (s *Sheet) SetName(name string) *Sheet {
	s.name = name
	return s
}

// Cell returns the cell at the zero-based coordinates, creating it on
// first access. Negative coordinates return nil.
func (s *Sheet) Cell(row, col int) *Cell {
	if row < 0 || col < 0 {
		return nil
	}
	key := cellKey{row, col}
	if c, ok := s.cells[key]; ok {
		return c
	}
	c := &Cell{row: row, col: col}
	s.cells[key] = c
	if row > s.maxRow {
		s.maxRow = row
	}
	if col > s.maxCol {
		s.maxCol = col
	}
	return c
}

// SetValue is shorthand for Cell(row, col).SetValue(v).
func (s *Sheet) SetValue(row, col int, v interface{}) *Cell {
	c := s.Cell(row, col)
	if c == nil {
		return nil
	}
	return c.SetValue(v)
}

// GetCell returns the cell at the coordinates, or nil when it was never
// written.
func (s *Sheet) GetCell(row, col int) *Cell {
	return s.cells[cellKey{row, col}]
}

// RowCount returns the number of rows in the used range.
func (s *Sheet) RowCount() int { return s.maxRow + 1 }

// ColCount returns the number of columns in the used range.
func (s *Sheet) ColCount() int { return s.maxCol + 1 }

// Dimension returns the used range as an A1-style reference, "A1" for
// an empty sheet.
func (s *Sheet) Dimension() string {
	if s.maxRow < 0 {
		return "A1"
	}
	if s.maxRow == 0 && s.maxCol == 0 {
		return "A1"
	}
	return RangeRef(0, 0, s.maxRow, s.maxCol)
}

// SetColumnWidth sets an explicit width, in characters, for a
// zero-based column.
func (s *Sheet) SetColumnWidth(col int, width float64) *Sheet {
	if col >= 0 {
		s.colWidths[col] = width
	}
	return s
}

// GetColumnWidth returns the explicit width for a column, 0 when unset.
func (s *Sheet) GetColumnWidth(col int) float64 { return s.colWidths[col] }

// SetRowHeight sets an explicit height, in points, for a zero-based row.
func (s *Sheet) SetRowHeight(row int, height float64) *Sheet {
	if row >= 0 {
		s.rowHeights[row] = height
	}
	return s
}

// GetRowHeight returns the explicit height for a row, 0 when unset.
func (s *Sheet) GetRowHeight(row int) float64 { return s.rowHeights[row] }

// MergeCells merges the A1-style range, e.g. "A1:C1".
func (s *Sheet) MergeCells(ref string) *Sheet {
	s.merges = append(s.merges, ref)
	return s
}

// GetMerges returns the merged ranges.
func (s *Sheet) GetMerges() []string { return s.merges }

// FreezePanes freezes rows above and columns left of the given cell,
// which becomes the top-left cell of the scrollable pane. "B2" freezes
// the first row and the first column; "A1" or "" clears the freeze.
func (s *Sheet) FreezePanes(cellRef string) *Sheet {
	if cellRef == "A1" {
		cellRef = ""
	}
	s.freezeCell = cellRef
	return s
}

// GetFreezePanes returns the freeze cell reference, "" when unset.
func (s *Sheet) GetFreezePanes() string { return s.freezeCell }

// SetAutoFilter puts a filter dropdown row on the A1-style range.
func (s *Sheet) SetAutoFilter(ref string) *Sheet {
	s.autoFilterRef = ref
	return s
}

// GetAutoFilter returns the auto filter range, "" when unset.
func (s *Sheet) GetAutoFilter() string { return s.autoFilterRef }

// SetPrintTitleRows repeats the given one-based row span, e.g. "1:1",
// at the top of every printed page.
func (s *Sheet) SetPrintTitleRows(span string) *Sheet {
	s.printTitleRows = span
	return s
}

// GetPrintTitleRows returns the repeated print rows, "" when unset.
func (s *Sheet) GetPrintTitleRows() string { return s.printTitleRows }

// AddDataValidation attaches a data validation rule.
func (s *Sheet) AddDataValidation(v *DataValidation) *Sheet {
	s.validations = append(s.validations, v)
	return s
}

// GetDataValidations returns the sheet's validation rules.
func (s *Sheet) GetDataValidations() []*DataValidation { return s.validations }

// AddConditionalFormat attaches a conditional formatting rule.
func (s *Sheet) AddConditionalFormat(cf *ConditionalFormat) *Sheet {
	s.condFormats = append(s.condFormats, cf)
	return s
}

// GetConditionalFormats returns the sheet's conditional formats.
func (s *Sheet) GetConditionalFormats() []*ConditionalFormat { return s.condFormats }

// AddChart anchors a chart on this sheet.
func (s *Sheet) AddChart(c *Chart) *Sheet {
	s.charts = append(s.charts, c)
	return s
}

// GetCharts returns the sheet's charts.
func (s *Sheet) GetCharts() []*Chart { return s.charts }

// usedRows returns the used row indices in ascending order.
func (s *Sheet) usedRows() []int {
	seen := make(map[int]bool)
	for k := range s.cells {
		seen[k.row] = true
	}
	for r := range s.rowHeights {
		seen[r] = true
	}
	rows := make([]int, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// rowCells returns the cells of one row in column order.
func (s *Sheet) rowCells(row int) []*Cell {
	var cells []*Cell
	for k, c := range s.cells {
		if k.row == row {
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
	return cells
}

// DataValidation restricts what may be entered into a cell range.
type DataValidation struct {
	Range      string // sqref, e.g. "C2:C50"
	Type       string // "list" is the supported kind
	Formula1   string
	AllowBlank bool
}

// NewListValidation builds a dropdown-list validation over the range.
// The options are joined into the quoted literal form Excel expects.
func NewListValidation(rangeRef string, options []string) *DataValidation {
	cleaned := make([]string, len(options))
	for i, o := range options {
		cleaned[i] = strings.ReplaceAll(o, `"`, "")
	}
	return &DataValidation{
		Range:      rangeRef,
		Type:       "list",
		Formula1:   fmt.Sprintf("%q", strings.Join(cleaned, ",")),
		AllowBlank: true,
	}
}
