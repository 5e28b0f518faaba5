package xlsx

import (
	"fmt"
	"strings"
)

// sheetNameForbidden lists the characters Excel rejects in sheet names.
const sheetNameForbidden = `[]:*?/\`

// Validate checks the workbook for structural issues and returns an
// error describing all problems found, or nil if the workbook is valid.
func (w *Workbook) Validate() error {
	var errs []string

	if w.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if len(w.sheets) == 0 {
		errs = append(errs, "workbook must have at least one sheet")
	}

	seen := make(map[string]bool)
	for i, sheet := range w.sheets {
		prefix := fmt.Sprintf("sheet %d", i+1)
		lower := strings.ToLower(sheet.name)
		if seen[lower] {
			errs = append(errs, prefix+": duplicate sheet name "+sheet.name)
		}
		seen[lower] = true
		for _, e := range validateSheet(sheet) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateSheet(s *Sheet) []string {
	var errs []string

	switch {
	case s.name == "":
		errs = append(errs, "sheet name is empty")
	case len(s.name) > 31:
		errs = append(errs, "sheet name exceeds 31 characters")
	case strings.ContainsAny(s.name, sheetNameForbidden):
		errs = append(errs, "sheet name contains a forbidden character")
	}

	for col, width := range s.colWidths {
		if width <= 0 {
			errs = append(errs, fmt.Sprintf("column %s width must be positive", ColumnName(col)))
		}
	}
	for row, height := range s.rowHeights {
		if height <= 0 {
			errs = append(errs, fmt.Sprintf("row %d height must be positive", row+1))
		}
	}

	for _, ref := range s.merges {
		if _, _, _, _, err := ParseRangeRef(ref); err != nil {
			errs = append(errs, "invalid merge range "+ref)
		}
	}
	if s.autoFilterRef != "" {
		if _, _, _, _, err := ParseRangeRef(s.autoFilterRef); err != nil {
			errs = append(errs, "invalid auto filter range "+s.autoFilterRef)
		}
	}
	if s.freezeCell != "" {
		if _, _, err := ParseCellRef(s.freezeCell); err != nil {
			errs = append(errs, "invalid freeze panes cell "+s.freezeCell)
		}
	}

	for j, v := range s.validations {
		prefix := fmt.Sprintf("data validation %d", j+1)
		if _, _, _, _, err := ParseRangeRef(v.Range); err != nil {
			errs = append(errs, prefix+": invalid range "+v.Range)
		}
		if v.Type == "list" && v.Formula1 == "" {
			errs = append(errs, prefix+": list validation has no options")
		}
	}

	for j, cf := range s.condFormats {
		prefix := fmt.Sprintf("conditional format %d", j+1)
		if _, _, _, _, err := ParseRangeRef(cf.Range); err != nil {
			errs = append(errs, prefix+": invalid range "+cf.Range)
		}
		switch cf.Type {
		case CondFormatColorScale:
			if n := len(cf.ScaleColors); n < 2 || n > 3 {
				errs = append(errs, prefix+": color scale needs 2 or 3 colors")
			}
		case CondFormatDataBar:
			if cf.BarColor == "" {
				errs = append(errs, prefix+": data bar has no color")
			}
		case CondFormatCellIs:
			if cf.Operator == "" || cf.Formula == "" {
				errs = append(errs, prefix+": cell-is rule needs an operator and a formula")
			}
		case CondFormatIconSet:
			if cf.IconStyle == "" {
				errs = append(errs, prefix+": icon set has no style")
			}
		default:
			errs = append(errs, prefix+": unknown type "+cf.Type)
		}
	}

	for j, c := range s.charts {
		prefix := fmt.Sprintf("chart %d", j+1)
		if len(c.series) == 0 {
			errs = append(errs, prefix+": chart has no data series")
		}
		if c.rowSpan <= 0 || c.colSpan <= 0 {
			errs = append(errs, prefix+": chart extent must be positive")
		}
	}
	return errs
}
