package xlsx

import (
	"fmt"
	"strings"
)

// CellType identifies what a cell holds.
type CellType int

const (
	CellTypeEmpty CellType = iota
	CellTypeString
	CellTypeNumber
	CellTypeBool
	CellTypeFormula
)

// Cell is a single grid cell. Cells are created on first access through
// Sheet.Cell and keep their zero-based coordinates.
type Cell struct {
	row, col int
	cellType CellType
	str      string
	num      float64
	boolean  bool
	formula  string
	style    *CellStyle
}

// Row returns the zero-based row index.
func (c *Cell) Row() int { return c.row }

// Col returns the zero-based column index.
func (c *Cell) Col() int { return c.col }

// Ref returns the cell's A1-style reference.
func (c *Cell) Ref() string { return CellRef(c.row, c.col) }

// Type returns the cell type.
func (c *Cell) Type() CellType { return c.cellType }

// SetValue stores v with the type inferred from its Go type. Strings
// with a leading "=" become formulas; nil empties the cell; other
// unrecognized types are stored via fmt.Sprint.
func (c *Cell) SetValue(v interface{}) *Cell {
	switch val := v.(type) {
	case nil:
		c.cellType = CellTypeEmpty
	case string:
		if strings.HasPrefix(val, "=") {
			return c.SetFormula(val)
		}
		return c.SetString(val)
	case bool:
		return c.SetBool(val)
	case float64:
		return c.SetNumber(val)
	case float32:
		return c.SetNumber(float64(val))
	case int:
		return c.SetNumber(float64(val))
	case int8:
		return c.SetNumber(float64(val))
	case int16:
		return c.SetNumber(float64(val))
	case int32:
		return c.SetNumber(float64(val))
	case int64:
		return c.SetNumber(float64(val))
	case uint:
		return c.SetNumber(float64(val))
	case uint8:
		return c.SetNumber(float64(val))
	case uint16:
		return c.SetNumber(float64(val))
	case uint32:
		return c.SetNumber(float64(val))
	case uint64:
		return c.SetNumber(float64(val))
	default:
		return c.SetString(fmt.Sprint(v))
	}
	return c
}

// SetString stores a text value.
func (c *Cell) SetString(s string) *Cell {
	c.cellType = CellTypeString
	c.str = s
	return c
}

// SetNumber stores a numeric value.
func (c *Cell) SetNumber(n float64) *Cell {
	c.cellType = CellTypeNumber
	c.num = n
	return c
}

// SetBool stores a boolean value.
func (c *Cell) SetBool(b bool) *Cell {
	c.cellType = CellTypeBool
	c.boolean = b
	return c
}

// SetFormula stores a formula. A leading "=" is accepted and stripped
// when the file is written.
func (c *Cell) SetFormula(f string) *Cell {
	c.cellType = CellTypeFormula
	c.formula = f
	return c
}

// String returns the text value of a string cell.
func (c *Cell) String() string { return c.str }

// Number returns the numeric value of a number cell.
func (c *Cell) Number() float64 { return c.num }

// Bool returns the boolean value of a bool cell.
func (c *Cell) Bool() bool { return c.boolean }

// Formula returns the stored formula with its leading "=" intact.
func (c *Cell) Formula() string { return c.formula }

// GetStyle returns the cell's style, creating a default one if needed.
func (c *Cell) GetStyle() *CellStyle {
	if c.style == nil {
		c.style = NewCellStyle()
	}
	return c.style
}

// SetStyle replaces the cell's style.
func (c *Cell) SetStyle(st *CellStyle) *Cell {
	c.style = st
	return c
}
