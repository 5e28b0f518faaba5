package xlsx

import "strings"

// Alignment constants for CellStyle.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignMiddle = "center"
	AlignBottom = "bottom"
)

// Border style constants for CellStyle.
const (
	BorderNone   = ""
	BorderThin   = "thin"
	BorderMedium = "medium"
	BorderThick  = "thick"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
)

// CellStyle describes cell formatting. Zero values mean "inherit the
// workbook default" (Calibri 11, no fill, General format).
type CellStyle struct {
	Bold            bool
	Italic          bool
	FontSize        float64
	FontName        string
	FontColor       string // hex RRGGBB or AARRGGBB
	FillColor       string // hex; empty means no fill
	HorizontalAlign string
	VerticalAlign   string
	WrapText        bool
	NumberFormat    string
	BorderStyle     string
	BorderColor     string
}

// NewCellStyle creates an empty style.
func NewCellStyle() *CellStyle {
	return &CellStyle{}
}

// SetBold sets bold text.
func (s *CellStyle) SetBold(b bool) *CellStyle {
	s.Bold = b
	return s
}

// SetItalic sets italic text.
func (s *CellStyle) SetItalic(i bool) *CellStyle {
	s.Italic = i
	return s
}

// SetFontSize sets the font size in points.
func (s *CellStyle) SetFontSize(size float64) *CellStyle {
	s.FontSize = size
	return s
}

// SetFontName sets the typeface.
func (s *CellStyle) SetFontName(name string) *CellStyle {
	s.FontName = name
	return s
}

// SetFontColor sets the text color from a hex string.
func (s *CellStyle) SetFontColor(hex string) *CellStyle {
	s.FontColor = hex
	return s
}

// SetFillColor sets a solid cell fill from a hex string.
func (s *CellStyle) SetFillColor(hex string) *CellStyle {
	s.FillColor = hex
	return s
}

// SetHorizontalAlign sets the horizontal alignment.
func (s *CellStyle) SetHorizontalAlign(a string) *CellStyle {
	s.HorizontalAlign = a
	return s
}

// SetVerticalAlign sets the vertical alignment.
func (s *CellStyle) SetVerticalAlign(a string) *CellStyle {
	s.VerticalAlign = a
	return s
}

// SetWrapText enables text wrapping.
func (s *CellStyle) SetWrapText(w bool) *CellStyle {
	s.WrapText = w
	return s
}

// SetNumberFormat sets the number format code, e.g. "#,##0.00" or "0%".
func (s *CellStyle) SetNumberFormat(code string) *CellStyle {
	s.NumberFormat = code
	return s
}

// SetBorder sets a uniform border on all four sides.
func (s *CellStyle) SetBorder(style, colorHex string) *CellStyle {
	s.BorderStyle = style
	s.BorderColor = colorHex
	return s
}

// isZero reports whether the style carries no formatting at all, in
// which case the cell maps to the default xf.
func (s *CellStyle) isZero() bool {
	return s == nil || (!s.Bold && !s.Italic && s.FontSize == 0 && s.FontName == "" &&
		s.FontColor == "" && s.FillColor == "" && s.HorizontalAlign == "" &&
		s.VerticalAlign == "" && !s.WrapText && s.NumberFormat == "" &&
		s.BorderStyle == "")
}

// normalizeARGB folds the accepted color spellings onto 8-digit
// uppercase ARGB; a missing alpha channel becomes FF. Unparseable input
// returns "".
func normalizeARGB(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return ""
	}
	for _, r := range hex {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return ""
		}
	}
	return hex
}
