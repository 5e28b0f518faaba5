package pptx

import (
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack  = Color{ARGB: "FF000000"}
	ColorWhite  = Color{ARGB: "FFFFFFFF"}
	ColorRed    = Color{ARGB: "FFFF0000"}
	ColorGreen  = Color{ARGB: "FF00FF00"}
	ColorBlue   = Color{ARGB: "FF0000FF"}
	ColorYellow = Color{ARGB: "FFFFFF00"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "2E86C1") or 8-char ARGB (e.g. "FF2E86C1").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"} // fallback to black
	}
	return Color{ARGB: argb}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 {
	return parseHexByte(c.ARGB, 2)
}

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 {
	return parseHexByte(c.ARGB, 4)
}

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 {
	return parseHexByte(c.ARGB, 6)
}

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 {
	return parseHexByte(c.ARGB, 0)
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Font represents text font properties.
type Font struct {
	Name          string // latin typeface
	NameEA        string // east-asian typeface, empty inherits Name
	Size          int    // in points
	Bold          bool
	Italic        bool
	Underline     UnderlineType
	Strikethrough bool
	Color         Color
}

// UnderlineType represents the underline style.
type UnderlineType string

const (
	UnderlineNone   UnderlineType = "none"
	UnderlineSingle UnderlineType = "sng"
	UnderlineDouble UnderlineType = "dbl"
	UnderlineHeavy  UnderlineType = "heavy"
	UnderlineDash   UnderlineType = "dash"
	UnderlineWavy   UnderlineType = "wavy"
)

// NewFont creates a new Font with defaults.
func NewFont() *Font {
	return &Font{
		Name:      "Calibri",
		Size:      10,
		Underline: UnderlineNone,
		Color:     ColorBlack,
	}
}

// SetBold sets the bold property and returns the font for chaining.
func (f *Font) SetBold(bold bool) *Font {
	f.Bold = bold
	return f
}

// SetItalic sets the italic property.
func (f *Font) SetItalic(italic bool) *Font {
	f.Italic = italic
	return f
}

// SetSize sets the font size in points (clamped to 1–4000).
func (f *Font) SetSize(size int) *Font {
	if size < 1 {
		size = 1
	}
	if size > 4000 {
		size = 4000
	}
	f.Size = size
	return f
}

// SetColor sets the font color.
func (f *Font) SetColor(color Color) *Font {
	f.Color = color
	return f
}

// SetName sets the latin typeface.
func (f *Font) SetName(name string) *Font {
	f.Name = name
	return f
}

// SetNameEA sets the east-asian typeface. CJK text falls back to this
// face when the latin face has no glyph.
func (f *Font) SetNameEA(name string) *Font {
	f.NameEA = name
	return f
}

// SetUnderline sets the underline type.
func (f *Font) SetUnderline(u UnderlineType) *Font {
	f.Underline = u
	return f
}

// SetStrikethrough sets the strikethrough property.
func (f *Font) SetStrikethrough(s bool) *Font {
	f.Strikethrough = s
	return f
}

// Alignment represents paragraph alignment properties.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
	Level      int // indentation level, 0 is top level
}

// HorizontalAlignment represents horizontal text alignment.
type HorizontalAlignment string

const (
	HorizontalLeft    HorizontalAlignment = "l"
	HorizontalCenter  HorizontalAlignment = "ctr"
	HorizontalRight   HorizontalAlignment = "r"
	HorizontalJustify HorizontalAlignment = "just"
)

// VerticalAlignment represents vertical text alignment.
type VerticalAlignment string

const (
	VerticalTop    VerticalAlignment = "t"
	VerticalMiddle VerticalAlignment = "ctr"
	VerticalBottom VerticalAlignment = "b"
)

// NewAlignment creates a new Alignment with defaults.
func NewAlignment() *Alignment {
	return &Alignment{
		Horizontal: HorizontalLeft,
		Vertical:   VerticalTop,
	}
}

// SetHorizontal sets horizontal alignment.
func (a *Alignment) SetHorizontal(h HorizontalAlignment) *Alignment {
	a.Horizontal = h
	return a
}

// SetVertical sets vertical alignment.
func (a *Alignment) SetVertical(v VerticalAlignment) *Alignment {
	a.Vertical = v
	return a
}

// SetLevel sets the indentation level (clamped to 0–8).
func (a *Alignment) SetLevel(lvl int) *Alignment {
	if lvl < 0 {
		lvl = 0
	}
	if lvl > 8 {
		lvl = 8
	}
	a.Level = lvl
	return a
}

// GradientStop is one color stop along a gradient ramp. Position runs
// from 0 to 100000 in thousandths of a percent, matching the OOXML
// <a:gs pos> encoding.
type GradientStop struct {
	Color    Color
	Position int
}

// Fill represents a shape or background fill.
type Fill struct {
	Type     FillType
	Color    Color
	EndColor Color          // for two-stop gradient fills
	Rotation int            // gradient rotation in degrees
	Stops    []GradientStop // multi-stop gradients; overrides Color/EndColor when set
}

// FillType represents the type of fill.
type FillType int

const (
	FillNone FillType = iota
	FillSolid
	FillGradientLinear
)

// NewFill creates a new Fill with no fill.
func NewFill() *Fill {
	return &Fill{Type: FillNone}
}

// SetSolid sets a solid fill.
func (f *Fill) SetSolid(color Color) *Fill {
	f.Type = FillSolid
	f.Color = color
	f.Stops = nil
	return f
}

// SetGradientLinear sets a two-stop linear gradient fill. Rotation is
// normalized to 0–359 degrees.
func (f *Fill) SetGradientLinear(startColor, endColor Color, rotation int) *Fill {
	f.Type = FillGradientLinear
	f.Color = startColor
	f.EndColor = endColor
	f.Rotation = ((rotation % 360) + 360) % 360
	f.Stops = nil
	return f
}

// SetGradientStops sets a linear gradient from an explicit stop list.
// Stops must be ordered by position; at least two are required for a
// visible ramp. Rotation is normalized to 0–359 degrees.
func (f *Fill) SetGradientStops(stops []GradientStop, rotation int) *Fill {
	f.Type = FillGradientLinear
	f.Stops = stops
	f.Rotation = ((rotation % 360) + 360) % 360
	if len(stops) > 0 {
		f.Color = stops[0].Color
		f.EndColor = stops[len(stops)-1].Color
	}
	return f
}

// Border represents a shape border.
type Border struct {
	Style BorderStyle
	Width int // in EMU
	Color Color
}

// BorderStyle represents the border line style.
type BorderStyle string

const (
	BorderNone  BorderStyle = "none"
	BorderSolid BorderStyle = "solid"
	BorderDash  BorderStyle = "dash"
	BorderDot   BorderStyle = "dot"
)

// NewBorder creates a new Border with no border.
func NewBorder() *Border {
	return &Border{Style: BorderNone}
}

// SetSolid sets a solid border with the given width in EMU.
func (b *Border) SetSolid(color Color, widthEMU int) *Border {
	b.Style = BorderSolid
	b.Color = color
	b.Width = widthEMU
	return b
}

// Shadow represents a shape shadow.
type Shadow struct {
	Visible    bool
	Direction  int // in degrees
	Distance   int // in points
	BlurRadius int // in points
	Color      Color
	Alpha      int // 0-100
}

// NewShadow creates a new Shadow.
func NewShadow() *Shadow {
	return &Shadow{
		Color: Color{ARGB: "80000000"},
		Alpha: 50,
	}
}

// SetVisible sets shadow visibility.
func (s *Shadow) SetVisible(v bool) *Shadow {
	s.Visible = v
	return s
}

// SetDirection sets shadow direction in degrees (normalized to 0–359).
func (s *Shadow) SetDirection(d int) *Shadow {
	s.Direction = ((d % 360) + 360) % 360
	return s
}

// SetDistance sets shadow distance in points (clamped to >= 0).
func (s *Shadow) SetDistance(d int) *Shadow {
	if d < 0 {
		d = 0
	}
	s.Distance = d
	return s
}

// Hyperlink represents a hyperlink on a text run.
type Hyperlink struct {
	URL         string
	Tooltip     string
	IsInternal  bool
	SlideNumber int
}

// NewHyperlink creates a new external hyperlink.
func NewHyperlink(url string) *Hyperlink {
	return &Hyperlink{URL: url}
}

// NewInternalHyperlink creates a hyperlink to another slide.
func NewInternalHyperlink(slideNumber int) *Hyperlink {
	return &Hyperlink{
		IsInternal:  true,
		SlideNumber: slideNumber,
	}
}

// SetTooltip sets the hover tooltip.
func (h *Hyperlink) SetTooltip(tip string) *Hyperlink {
	h.Tooltip = tip
	return h
}
