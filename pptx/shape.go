package pptx

import (
	"fmt"
	"os"
	"strings"
)

// Shape is the interface that all shapes implement.
type Shape interface {
	GetType() ShapeType
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	GetName() string
	GetRotation() int
	// base returns the underlying BaseShape (unexported, internal use only).
	base() *BaseShape
}

// ShapeType represents the type of shape.
type ShapeType int

const (
	ShapeTypeRichText ShapeType = iota
	ShapeTypeDrawing
	ShapeTypeTable
	ShapeTypeAutoShape
	ShapeTypeLine
	ShapeTypeChart
	ShapeTypeGroup
)

// BaseShape contains common shape properties.
type BaseShape struct {
	name           string
	description    string
	offsetX        int64 // in EMU
	offsetY        int64 // in EMU
	width          int64 // in EMU
	height         int64 // in EMU
	rotation       int   // in degrees
	flipHorizontal bool
	flipVertical   bool
	fill           *Fill
	border         *Border
	shadow         *Shadow
}

func (b *BaseShape) GetOffsetX() int64 { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64 { return b.offsetY }
func (b *BaseShape) GetWidth() int64   { return b.width }
func (b *BaseShape) GetHeight() int64  { return b.height }
func (b *BaseShape) GetName() string   { return b.name }
func (b *BaseShape) GetRotation() int  { return b.rotation }
func (b *BaseShape) base() *BaseShape  { return b }

func (b *BaseShape) SetOffsetX(x int64) *BaseShape { b.offsetX = x; return b }
func (b *BaseShape) SetOffsetY(y int64) *BaseShape { b.offsetY = y; return b }
func (b *BaseShape) SetWidth(w int64) *BaseShape   { b.width = w; return b }
func (b *BaseShape) SetHeight(h int64) *BaseShape  { b.height = h; return b }
func (b *BaseShape) SetName(n string) *BaseShape   { b.name = n; return b }
func (b *BaseShape) SetRotation(r int) *BaseShape  { b.rotation = ((r % 360) + 360) % 360; return b }

// SetPosition sets both offset X and Y in EMU.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX = x
	b.offsetY = y
	return b
}

// SetSize sets both width and height in EMU.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width = w
	b.height = h
	return b
}

// SetFlipHorizontal controls horizontal flipping.
func (b *BaseShape) SetFlipHorizontal(flip bool) *BaseShape {
	b.flipHorizontal = flip
	return b
}

// GetFlipHorizontal returns whether the shape is flipped horizontally.
func (b *BaseShape) GetFlipHorizontal() bool { return b.flipHorizontal }

// SetFlipVertical controls vertical flipping.
func (b *BaseShape) SetFlipVertical(flip bool) *BaseShape {
	b.flipVertical = flip
	return b
}

// GetFlipVertical returns whether the shape is flipped vertically.
func (b *BaseShape) GetFlipVertical() bool { return b.flipVertical }

// GetDescription returns the alt-text description.
func (b *BaseShape) GetDescription() string { return b.description }

// SetDescription sets the alt-text description.
func (b *BaseShape) SetDescription(d string) { b.description = d }

func (b *BaseShape) GetFill() *Fill {
	if b.fill == nil {
		b.fill = NewFill()
	}
	return b.fill
}

func (b *BaseShape) SetFill(f *Fill) { b.fill = f }

func (b *BaseShape) GetBorder() *Border {
	if b.border == nil {
		b.border = NewBorder()
	}
	return b.border
}

func (b *BaseShape) SetBorder(border *Border) { b.border = border }

func (b *BaseShape) GetShadow() *Shadow {
	if b.shadow == nil {
		b.shadow = NewShadow()
	}
	return b.shadow
}

func (b *BaseShape) SetShadow(s *Shadow) { b.shadow = s }

// RichTextShape represents a text box holding formatted paragraphs.
type RichTextShape struct {
	BaseShape
	paragraphs      []*Paragraph
	activeParagraph int
	fontScale       int // normAutofit fontScale in thousandths of a percent, 0 means 100%
	wordWrap        bool
	textAnchor      TextAnchorType
	columns         int
}

// TextAnchorType represents the vertical position of text within a shape.
type TextAnchorType string

const (
	TextAnchorTop    TextAnchorType = "t"
	TextAnchorMiddle TextAnchorType = "ctr"
	TextAnchorBottom TextAnchorType = "b"
	TextAnchorNone   TextAnchorType = ""
)

func (r *RichTextShape) GetType() ShapeType { return ShapeTypeRichText }

// NewRichTextShape creates a new rich text shape with one empty paragraph.
func NewRichTextShape() *RichTextShape {
	return &RichTextShape{
		paragraphs: []*Paragraph{NewParagraph()},
		wordWrap:   true,
		columns:    1,
	}
}

// SetHeight sets the height and returns the shape for chaining.
func (r *RichTextShape) SetHeight(h int64) *RichTextShape {
	r.height = h
	return r
}

// SetWidth sets the width and returns the shape for chaining.
func (r *RichTextShape) SetWidth(w int64) *RichTextShape {
	r.width = w
	return r
}

// SetOffsetX sets the X offset and returns the shape for chaining.
func (r *RichTextShape) SetOffsetX(x int64) *RichTextShape {
	r.offsetX = x
	return r
}

// SetOffsetY sets the Y offset and returns the shape for chaining.
func (r *RichTextShape) SetOffsetY(y int64) *RichTextShape {
	r.offsetY = y
	return r
}

// GetActiveParagraph returns the active paragraph.
func (r *RichTextShape) GetActiveParagraph() *Paragraph {
	if len(r.paragraphs) == 0 {
		r.paragraphs = append(r.paragraphs, NewParagraph())
		r.activeParagraph = 0
	}
	return r.paragraphs[r.activeParagraph]
}

// CreateParagraph creates a new paragraph and makes it active.
func (r *RichTextShape) CreateParagraph() *Paragraph {
	p := NewParagraph()
	r.paragraphs = append(r.paragraphs, p)
	r.activeParagraph = len(r.paragraphs) - 1
	return p
}

// GetParagraphs returns all paragraphs.
func (r *RichTextShape) GetParagraphs() []*Paragraph {
	return r.paragraphs
}

// CreateTextRun creates a text run in the active paragraph.
func (r *RichTextShape) CreateTextRun(text string) *TextRun {
	return r.GetActiveParagraph().CreateTextRun(text)
}

// CreateBreak creates a line break in the active paragraph.
func (r *RichTextShape) CreateBreak() *BreakElement {
	return r.GetActiveParagraph().CreateBreak()
}

// SetWordWrap sets word wrap.
func (r *RichTextShape) SetWordWrap(wrap bool) {
	r.wordWrap = wrap
}

// GetWordWrap returns word wrap setting.
func (r *RichTextShape) GetWordWrap() bool {
	return r.wordWrap
}

// SetColumns sets the number of text columns (clamped to >= 1).
func (r *RichTextShape) SetColumns(cols int) {
	if cols < 1 {
		cols = 1
	}
	r.columns = cols
}

// GetColumns returns the number of text columns.
func (r *RichTextShape) GetColumns() int {
	return r.columns
}

// SetTextAnchor sets the vertical position of text within the shape.
func (r *RichTextShape) SetTextAnchor(anchor TextAnchorType) {
	r.textAnchor = anchor
}

// GetTextAnchor returns the text anchoring type.
func (r *RichTextShape) GetTextAnchor() TextAnchorType {
	return r.textAnchor
}

// SetFontScale shrinks rendered text to the given percentage (1-100) via
// normAutofit. Zero restores native size.
func (r *RichTextShape) SetFontScale(percent int) {
	if percent <= 0 || percent >= 100 {
		r.fontScale = 0
		return
	}
	r.fontScale = percent * 1000
}

// GetFontScale returns the font scale in thousandths of a percent.
func (r *RichTextShape) GetFontScale() int {
	return r.fontScale
}

// Paragraph represents a text paragraph.
type Paragraph struct {
	elements    []ParagraphElement
	alignment   *Alignment
	bullet      *Bullet
	lineSpacing int // >0: points*100 (spcPts), <0: -percent*1000 (spcPct)
	spaceBefore int // in points*100
	spaceAfter  int // in points*100
}

// ParagraphElement is the interface for paragraph content.
type ParagraphElement interface {
	GetElementType() string
}

// NewParagraph creates a new paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{
		elements:  make([]ParagraphElement, 0),
		alignment: NewAlignment(),
	}
}

// GetAlignment returns the paragraph alignment.
func (p *Paragraph) GetAlignment() *Alignment {
	return p.alignment
}

// SetAlignment sets the paragraph alignment.
func (p *Paragraph) SetAlignment(a *Alignment) {
	p.alignment = a
}

// GetBullet returns the paragraph bullet, or nil.
func (p *Paragraph) GetBullet() *Bullet {
	return p.bullet
}

// SetBullet sets the paragraph bullet.
func (p *Paragraph) SetBullet(b *Bullet) {
	p.bullet = b
}

// GetLineSpacing returns the raw line spacing value.
func (p *Paragraph) GetLineSpacing() int {
	return p.lineSpacing
}

// SetLineSpacing sets exact line spacing in hundredths of a point.
func (p *Paragraph) SetLineSpacing(spacing int) {
	p.lineSpacing = spacing
}

// SetLineSpacingPercent sets proportional line spacing, e.g. 115 for
// 1.15-line spacing.
func (p *Paragraph) SetLineSpacingPercent(percent int) {
	if percent <= 0 {
		p.lineSpacing = 0
		return
	}
	p.lineSpacing = -percent * 1000
}

// GetElements returns all paragraph elements.
func (p *Paragraph) GetElements() []ParagraphElement {
	return p.elements
}

// GetSpaceBefore returns the space before the paragraph in points*100.
func (p *Paragraph) GetSpaceBefore() int { return p.spaceBefore }

// SetSpaceBefore sets the space before the paragraph in points*100.
func (p *Paragraph) SetSpaceBefore(v int) { p.spaceBefore = v }

// GetSpaceAfter returns the space after the paragraph in points*100.
func (p *Paragraph) GetSpaceAfter() int { return p.spaceAfter }

// SetSpaceAfter sets the space after the paragraph in points*100.
func (p *Paragraph) SetSpaceAfter(v int) { p.spaceAfter = v }

// CreateTextRun creates a new text run.
func (p *Paragraph) CreateTextRun(text string) *TextRun {
	tr := &TextRun{
		text: text,
		font: NewFont(),
	}
	p.elements = append(p.elements, tr)
	return tr
}

// CreateBreak creates a line break element.
func (p *Paragraph) CreateBreak() *BreakElement {
	br := &BreakElement{}
	p.elements = append(p.elements, br)
	return br
}

// TextRun represents a run of text with uniform formatting.
type TextRun struct {
	text      string
	font      *Font
	hyperlink *Hyperlink
}

func (tr *TextRun) GetElementType() string { return "textrun" }

// GetText returns the text content.
func (tr *TextRun) GetText() string { return tr.text }

// SetText sets the text content.
func (tr *TextRun) SetText(text string) { tr.text = text }

// GetFont returns the font properties.
func (tr *TextRun) GetFont() *Font { return tr.font }

// SetFont sets the font properties.
func (tr *TextRun) SetFont(f *Font) { tr.font = f }

// GetHyperlink returns the hyperlink, or nil.
func (tr *TextRun) GetHyperlink() *Hyperlink { return tr.hyperlink }

// SetHyperlink sets the hyperlink.
func (tr *TextRun) SetHyperlink(h *Hyperlink) { tr.hyperlink = h }

// BreakElement represents a line break within a paragraph.
type BreakElement struct{}

func (br *BreakElement) GetElementType() string { return "break" }

// DrawingShape represents an image placed on a slide.
type DrawingShape struct {
	BaseShape
	path     string // file path, read at save time
	data     []byte // raw image data, takes precedence over path
	mimeType string
}

func (d *DrawingShape) GetType() ShapeType { return ShapeTypeDrawing }

// NewDrawingShape creates a new drawing shape.
func NewDrawingShape() *DrawingShape {
	return &DrawingShape{}
}

// SetPath sets the image file path.
func (d *DrawingShape) SetPath(path string) *DrawingShape {
	d.path = path
	return d
}

// GetPath returns the image file path.
func (d *DrawingShape) GetPath() string { return d.path }

// SetImageData sets the raw image data.
func (d *DrawingShape) SetImageData(data []byte, mimeType string) *DrawingShape {
	d.data = data
	d.mimeType = mimeType
	return d
}

// GetImageData returns the raw image data.
func (d *DrawingShape) GetImageData() []byte { return d.data }

// GetMimeType returns the image MIME type.
func (d *DrawingShape) GetMimeType() string { return d.mimeType }

// maxImageFileSize is the maximum allowed size for an image file loaded from disk.
const maxImageFileSize = 50 << 20 // 50 MB

// SetImageFromFile loads an image from a file path and sets the data and
// MIME type. Returns an error if the file exceeds maxImageFileSize or
// cannot be read.
func (d *DrawingShape) SetImageFromFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.Size() > maxImageFileSize {
		return fmt.Errorf("image file too large: %d bytes (max %d)", info.Size(), maxImageFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}
	d.data = data
	d.mimeType = guessMimeFromPath(path)
	return nil
}

// guessMimeFromPath guesses the MIME type from a file extension.
func guessMimeFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".bmp"):
		return "image/bmp"
	case strings.HasSuffix(lower, ".svg"):
		return "image/svg+xml"
	default:
		return "image/png"
	}
}

// SetHeight sets the height and returns for chaining.
func (d *DrawingShape) SetHeight(h int64) *DrawingShape {
	d.height = h
	return d
}

// SetWidth sets the width and returns for chaining.
func (d *DrawingShape) SetWidth(w int64) *DrawingShape {
	d.width = w
	return d
}

// SetOffsetX sets the X offset and returns for chaining.
func (d *DrawingShape) SetOffsetX(x int64) *DrawingShape {
	d.offsetX = x
	return d
}

// SetOffsetY sets the Y offset and returns for chaining.
func (d *DrawingShape) SetOffsetY(y int64) *DrawingShape {
	d.offsetY = y
	return d
}

// AutoShape represents a predefined shape (rectangle, ellipse, etc.)
// optionally carrying a short centered label.
type AutoShape struct {
	BaseShape
	shapeType  AutoShapeType
	text       string
	font       *Font
	textAlign  HorizontalAlignment
	textAnchor TextAnchorType
}

// AutoShapeType represents the preset geometry of an auto shape.
type AutoShapeType string

const (
	AutoShapeRectangle     AutoShapeType = "rect"
	AutoShapeRoundedRect   AutoShapeType = "roundRect"
	AutoShapeEllipse       AutoShapeType = "ellipse"
	AutoShapeTriangle      AutoShapeType = "triangle"
	AutoShapeRtTriangle    AutoShapeType = "rtTriangle"
	AutoShapeDiamond       AutoShapeType = "diamond"
	AutoShapeParallelogram AutoShapeType = "parallelogram"
	AutoShapePentagon      AutoShapeType = "pentagon"
	AutoShapeHexagon       AutoShapeType = "hexagon"
	AutoShapeChevron       AutoShapeType = "chevron"
	AutoShapeHomePlate     AutoShapeType = "homePlate"
	AutoShapeArrowRight    AutoShapeType = "rightArrow"
	AutoShapeArrowLeft     AutoShapeType = "leftArrow"
	AutoShapeArrowUp       AutoShapeType = "upArrow"
	AutoShapeArrowDown     AutoShapeType = "downArrow"
	AutoShapeStar5         AutoShapeType = "star5"
)

func (a *AutoShape) GetType() ShapeType { return ShapeTypeAutoShape }

// NewAutoShape creates a new rectangle auto shape.
func NewAutoShape() *AutoShape {
	return &AutoShape{
		shapeType: AutoShapeRectangle,
	}
}

// SetAutoShapeType sets the preset geometry.
func (a *AutoShape) SetAutoShapeType(t AutoShapeType) *AutoShape {
	a.shapeType = t
	return a
}

// GetAutoShapeType returns the preset geometry.
func (a *AutoShape) GetAutoShapeType() AutoShapeType {
	return a.shapeType
}

// SetSolidFill sets a solid fill on the auto shape.
func (a *AutoShape) SetSolidFill(c Color) *AutoShape {
	a.GetFill().SetSolid(c)
	return a
}

// SetText sets the label text.
func (a *AutoShape) SetText(text string) *AutoShape {
	a.text = text
	return a
}

// GetText returns the label text.
func (a *AutoShape) GetText() string {
	return a.text
}

// GetFont returns the label font, creating a default one on first use.
func (a *AutoShape) GetFont() *Font {
	if a.font == nil {
		a.font = NewFont()
	}
	return a.font
}

// SetTextAlign sets horizontal alignment of the label text.
func (a *AutoShape) SetTextAlign(h HorizontalAlignment) *AutoShape {
	a.textAlign = h
	return a
}

// SetTextAnchor sets vertical anchoring of the label text.
func (a *AutoShape) SetTextAnchor(anchor TextAnchorType) *AutoShape {
	a.textAnchor = anchor
	return a
}

// LineShape represents a straight connector line.
type LineShape struct {
	BaseShape
	lineStyle    BorderStyle
	lineWidth    int // in points
	lineWidthEMU int // raw line width in EMU for sub-point precision; 0 means lineWidth*12700
	lineColor    Color
	headEnd      *LineEnd
	tailEnd      *LineEnd
}

func (l *LineShape) GetType() ShapeType { return ShapeTypeLine }

// NewLineShape creates a new line shape.
func NewLineShape() *LineShape {
	return &LineShape{
		lineStyle: BorderSolid,
		lineWidth: 1,
		lineColor: ColorBlack,
	}
}

// SetLineStyle sets the line dash style.
func (l *LineShape) SetLineStyle(s BorderStyle) *LineShape {
	l.lineStyle = s
	return l
}

// GetLineStyle returns the line dash style.
func (l *LineShape) GetLineStyle() BorderStyle { return l.lineStyle }

// SetLineWidth sets the line width in whole points.
func (l *LineShape) SetLineWidth(w int) *LineShape {
	l.lineWidth = w
	l.lineWidthEMU = 0
	return l
}

// SetLineWidthPoints sets the line width with sub-point precision.
func (l *LineShape) SetLineWidthPoints(pts float64) *LineShape {
	l.lineWidthEMU = int(pts * 12700)
	return l
}

// GetLineWidth returns the line width in whole points.
func (l *LineShape) GetLineWidth() int { return l.lineWidth }

// GetLineWidthEMU returns the line width in EMU for precise rendering.
func (l *LineShape) GetLineWidthEMU() int {
	if l.lineWidthEMU > 0 {
		return l.lineWidthEMU
	}
	return l.lineWidth * 12700
}

// SetLineColor sets the line color.
func (l *LineShape) SetLineColor(c Color) *LineShape {
	l.lineColor = c
	return l
}

// GetLineColor returns the line color.
func (l *LineShape) GetLineColor() Color { return l.lineColor }

// SetHeadEnd sets the arrowhead at the start of the line.
func (l *LineShape) SetHeadEnd(e *LineEnd) *LineShape {
	l.headEnd = e
	return l
}

// GetHeadEnd returns the head end, or nil.
func (l *LineShape) GetHeadEnd() *LineEnd { return l.headEnd }

// SetTailEnd sets the arrowhead at the end of the line.
func (l *LineShape) SetTailEnd(e *LineEnd) *LineShape {
	l.tailEnd = e
	return l
}

// GetTailEnd returns the tail end, or nil.
func (l *LineShape) GetTailEnd() *LineEnd { return l.tailEnd }

// TableShape represents a table placed on a slide.
type TableShape struct {
	BaseShape
	rows       [][]*TableCell
	numRows    int
	numCols    int
	colWidths  []int64 // per-column widths in EMU; empty means equal split
	rowHeights []int64 // per-row heights in EMU; empty means equal split
}

func (t *TableShape) GetType() ShapeType { return ShapeTypeTable }

// NewTableShape creates a new table shape with empty cells.
func NewTableShape(rows, cols int) *TableShape {
	table := &TableShape{
		numRows: rows,
		numCols: cols,
		rows:    make([][]*TableCell, rows),
	}
	for i := 0; i < rows; i++ {
		table.rows[i] = make([]*TableCell, cols)
		for j := 0; j < cols; j++ {
			table.rows[i][j] = NewTableCell()
		}
	}
	return table
}

// GetCell returns a cell at the given row and column, or nil when out of
// range.
func (t *TableShape) GetCell(row, col int) *TableCell {
	if row < 0 || row >= t.numRows || col < 0 || col >= t.numCols {
		return nil
	}
	return t.rows[row][col]
}

// GetRows returns all rows.
func (t *TableShape) GetRows() [][]*TableCell {
	return t.rows
}

// GetNumRows returns the number of rows.
func (t *TableShape) GetNumRows() int { return t.numRows }

// GetNumCols returns the number of columns.
func (t *TableShape) GetNumCols() int { return t.numCols }

// SetColumnWidths sets per-column widths in EMU. The slice is ignored
// unless its length matches the column count.
func (t *TableShape) SetColumnWidths(widths []int64) *TableShape {
	if len(widths) == t.numCols {
		t.colWidths = widths
	}
	return t
}

// GetColumnWidths returns the per-column widths, or nil for equal split.
func (t *TableShape) GetColumnWidths() []int64 { return t.colWidths }

// SetRowHeights sets per-row heights in EMU. The slice is ignored unless
// its length matches the row count.
func (t *TableShape) SetRowHeights(heights []int64) *TableShape {
	if len(heights) == t.numRows {
		t.rowHeights = heights
	}
	return t
}

// SetHeight sets the height and returns for chaining.
func (t *TableShape) SetHeight(h int64) *TableShape {
	t.height = h
	return t
}

// SetWidth sets the width and returns for chaining.
func (t *TableShape) SetWidth(w int64) *TableShape {
	t.width = w
	return t
}

// TableCell represents a table cell.
type TableCell struct {
	paragraphs []*Paragraph
	fill       *Fill
	border     *CellBorders
	anchor     TextAnchorType
}

// CellBorders represents the four borders of a table cell.
type CellBorders struct {
	Top    *Border
	Bottom *Border
	Left   *Border
	Right  *Border
}

// NewTableCell creates a new table cell with one empty paragraph.
func NewTableCell() *TableCell {
	return &TableCell{
		paragraphs: []*Paragraph{NewParagraph()},
		fill:       NewFill(),
		border: &CellBorders{
			Top:    NewBorder(),
			Bottom: NewBorder(),
			Left:   NewBorder(),
			Right:  NewBorder(),
		},
	}
}

// SetText replaces the cell content with a single plain text run.
func (tc *TableCell) SetText(text string) *TableCell {
	tc.paragraphs = []*Paragraph{NewParagraph()}
	tc.paragraphs[0].CreateTextRun(text)
	return tc
}

// CreateTextRun appends a formatted run to the cell's first paragraph.
func (tc *TableCell) CreateTextRun(text string) *TextRun {
	if len(tc.paragraphs) == 0 {
		tc.paragraphs = []*Paragraph{NewParagraph()}
	}
	return tc.paragraphs[0].CreateTextRun(text)
}

// GetParagraphs returns the cell paragraphs.
func (tc *TableCell) GetParagraphs() []*Paragraph {
	return tc.paragraphs
}

// GetFill returns the cell fill.
func (tc *TableCell) GetFill() *Fill { return tc.fill }

// SetFill sets the cell fill.
func (tc *TableCell) SetFill(f *Fill) { tc.fill = f }

// GetBorders returns the cell borders.
func (tc *TableCell) GetBorders() *CellBorders { return tc.border }

// SetTextAnchor sets vertical anchoring of the cell text.
func (tc *TableCell) SetTextAnchor(anchor TextAnchorType) *TableCell {
	tc.anchor = anchor
	return tc
}

// GetTextAnchor returns the cell text anchor.
func (tc *TableCell) GetTextAnchor() TextAnchorType { return tc.anchor }
