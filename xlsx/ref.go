package xlsx

import (
	"fmt"
	"strings"
)

// ColumnName converts a zero-based column index to its letter name:
// 0 is "A", 25 is "Z", 26 is "AA".
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

// ParseColumnName converts a column letter name back to its zero-based
// index.
func ParseColumnName(name string) (int, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		col = col*26 + int(r-'A') + 1
	}
	return col - 1, nil
}

// CellRef builds an A1-style reference from zero-based row and column
// indices: (0, 0) is "A1".
func CellRef(row, col int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row+1)
}

// ParseCellRef parses an A1-style reference into zero-based row and
// column indices. Absolute markers ($B$2) are accepted and ignored.
func ParseCellRef(ref string) (row, col int, err error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	i := 0
	for i < len(ref) {
		c := ref[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			i++
			continue
		}
		break
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	col, err = ParseColumnName(ref[:i])
	if err != nil {
		return 0, 0, err
	}
	rowNum := 0
	for _, r := range ref[i:] {
		if r < '0' || r > '9' {
			return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
		}
		rowNum = rowNum*10 + int(r-'0')
	}
	if rowNum < 1 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}
	return rowNum - 1, col, nil
}

// RangeRef builds an A1-style range reference from zero-based corners.
func RangeRef(row1, col1, row2, col2 int) string {
	return CellRef(row1, col1) + ":" + CellRef(row2, col2)
}

// ParseRangeRef parses "A1:C3" into zero-based corners. A single cell
// reference is treated as a one-cell range.
func ParseRangeRef(ref string) (row1, col1, row2, col2 int, err error) {
	parts := strings.Split(strings.TrimSpace(ref), ":")
	switch len(parts) {
	case 1:
		row1, col1, err = ParseCellRef(parts[0])
		return row1, col1, row1, col1, err
	case 2:
		if row1, col1, err = ParseCellRef(parts[0]); err != nil {
			return 0, 0, 0, 0, err
		}
		if row2, col2, err = ParseCellRef(parts[1]); err != nil {
			return 0, 0, 0, 0, err
		}
		if row2 < row1 {
			row1, row2 = row2, row1
		}
		if col2 < col1 {
			col1, col2 = col2, col1
		}
		return row1, col1, row2, col2, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("invalid range reference %q", ref)
	}
}
