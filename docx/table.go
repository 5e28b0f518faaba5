package docx

// Table is a rectangular grid of cells. Tables are centered and drawn
// with a full single-line grid.
type Table struct {
	cells     [][]*TableCell
	colWidths []int // twips; empty = split the content width evenly
	alignment string
}

func newTable(rows, cols int) *Table {
	t := &Table{alignment: AlignCenter}
	t.cells = make([][]*TableCell, rows)
	for r := range t.cells {
		t.cells[r] = make([]*TableCell, cols)
		for c := range t.cells[r] {
			t.cells[r][c] = &TableCell{paragraph: newParagraph()}
		}
	}
	return t
}

func (t *Table) blockNode() {}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns the number of columns.
func (t *Table) Cols() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Cell returns the cell at row, col or nil when out of range.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= t.Rows() || col < 0 || col >= t.Cols() {
		return nil
	}
	return t.cells[row][col]
}

// SetColumnWidths sets explicit column widths in centimeters. Extra
// values are ignored; missing columns keep an even share.
func (t *Table) SetColumnWidths(cm ...float64) *Table {
	t.colWidths = t.colWidths[:0]
	for i, w := range cm {
		if i >= t.Cols() {
			break
		}
		t.colWidths = append(t.colWidths, cmToTwips(w))
	}
	return t
}

// SetAlignment sets the table alignment on the page.
func (t *Table) SetAlignment(alignment string) *Table {
	t.alignment = alignment
	return t
}

// GetAlignment returns the table alignment.
func (t *Table) GetAlignment() string { return t.alignment }

// TableCell is one grid cell holding a single paragraph.
type TableCell struct {
	paragraph *Paragraph
	shading   string // RRGGBB background fill
}

// Paragraph returns the cell's paragraph for full run-level control.
func (c *TableCell) Paragraph() *Paragraph { return c.paragraph }

// SetText replaces the cell content with one plain run.
func (c *TableCell) SetText(text string) *TableCell {
	c.paragraph.runs = nil
	c.paragraph.AddRun(text)
	return c
}

// SetShading fills the cell background with a hex color.
func (c *TableCell) SetShading(hex string) *TableCell {
	c.shading = hex
	return c
}

// GetShading returns the cell background fill.
func (c *TableCell) GetShading() string { return c.shading }
