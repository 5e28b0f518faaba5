package docx

import (
	"fmt"
	"os"
	"strings"
)

// Paragraph alignment values.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// runElement is anything that serializes as a <w:r> inside a paragraph.
type runElement interface {
	runNode()
}

// borderEdge is one side of a paragraph border. Width is in eighths of
// a point, padding in points.
type borderEdge struct {
	size  int
	space int
	color string
}

// Paragraph is a block of runs with shared paragraph-level formatting.
type Paragraph struct {
	style           string // Heading1..Heading4, empty = Normal
	alignment       string
	numID           int // 0 = not a list item
	listLevel       int
	spaceBefore     float64 // points, negative = inherit
	spaceAfter      float64
	lineSpacing     float64 // multiple, 0 = inherit
	leftIndent      float64 // cm, 0 = none
	firstLineIndent float64 // cm
	shading         string  // RRGGBB background fill
	topBorder       *borderEdge
	leftBorder      *borderEdge
	bottomBorder    *borderEdge
	rightBorder     *borderEdge
	runs            []runElement
}

func newParagraph() *Paragraph {
	return &Paragraph{spaceBefore: -1, spaceAfter: -1}
}

func (p *Paragraph) blockNode() {}

// SetStyle sets the paragraph style id (Heading1..Heading4).
func (p *Paragraph) SetStyle(style string) *Paragraph {
	p.style = style
	return p
}

// GetStyle returns the paragraph style id.
func (p *Paragraph) GetStyle() string { return p.style }

// SetAlignment sets left, center, right or justify.
func (p *Paragraph) SetAlignment(alignment string) *Paragraph {
	p.alignment = alignment
	return p
}

// GetAlignment returns the paragraph alignment.
func (p *Paragraph) GetAlignment() string { return p.alignment }

// SetNumbering marks the paragraph as a list item of the given numbering
// instance and level.
func (p *Paragraph) SetNumbering(numID, level int) *Paragraph {
	p.numID = numID
	p.listLevel = clampListLevel(level)
	return p
}

// SetSpaceBefore sets the space before the paragraph in points.
func (p *Paragraph) SetSpaceBefore(pt float64) *Paragraph {
	p.spaceBefore = pt
	return p
}

// SetSpaceAfter sets the space after the paragraph in points.
func (p *Paragraph) SetSpaceAfter(pt float64) *Paragraph {
	p.spaceAfter = pt
	return p
}

// SetLineSpacing sets the paragraph line spacing as a multiple of single
// spacing.
func (p *Paragraph) SetLineSpacing(multiple float64) *Paragraph {
	p.lineSpacing = multiple
	return p
}

// SetLeftIndent indents the whole paragraph from the left margin, in
// centimeters.
func (p *Paragraph) SetLeftIndent(cm float64) *Paragraph {
	p.leftIndent = cm
	return p
}

// SetFirstLineIndent indents only the first line, in centimeters.
func (p *Paragraph) SetFirstLineIndent(cm float64) *Paragraph {
	p.firstLineIndent = cm
	return p
}

// SetShading fills the paragraph background with a hex color.
func (p *Paragraph) SetShading(hex string) *Paragraph {
	p.shading = hex
	return p
}

// SetTopBorder draws a single line above the paragraph. Width is in
// eighths of a point, padding in points.
func (p *Paragraph) SetTopBorder(hex string, width, padding int) *Paragraph {
	p.topBorder = &borderEdge{size: width, space: padding, color: hex}
	return p
}

// SetLeftBorder draws a single line left of the paragraph.
func (p *Paragraph) SetLeftBorder(hex string, width, padding int) *Paragraph {
	p.leftBorder = &borderEdge{size: width, space: padding, color: hex}
	return p
}

// SetBottomBorder draws a single line under the paragraph.
func (p *Paragraph) SetBottomBorder(hex string, width, padding int) *Paragraph {
	p.bottomBorder = &borderEdge{size: width, space: padding, color: hex}
	return p
}

// SetRightBorder draws a single line right of the paragraph.
func (p *Paragraph) SetRightBorder(hex string, width, padding int) *Paragraph {
	p.rightBorder = &borderEdge{size: width, space: padding, color: hex}
	return p
}

// AddRun appends a text run.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.runs = append(p.runs, r)
	return r
}

// AddLineBreak appends a manual line break.
func (p *Paragraph) AddLineBreak() *Paragraph {
	return p.addBreak(false)
}

func (p *Paragraph) addBreak(page bool) *Paragraph {
	p.runs = append(p.runs, &breakRun{page: page})
	return p
}

// AddField appends a simple field (begin, instruction, end), like PAGE.
func (p *Paragraph) AddField(instr string) *Paragraph {
	p.runs = append(p.runs,
		&fieldRun{charType: "begin"},
		&instrRun{instr: instr},
		&fieldRun{charType: "end"})
	return p
}

// AddFieldWithResult appends a field with a cached placeholder result,
// like TOC. The returned run is the placeholder, for styling.
func (p *Paragraph) AddFieldWithResult(instr, placeholder string) *Run {
	p.runs = append(p.runs,
		&fieldRun{charType: "begin"},
		&instrRun{instr: instr},
		&fieldRun{charType: "separate"})
	result := &Run{text: placeholder}
	p.runs = append(p.runs, result, &fieldRun{charType: "end"})
	return result
}

// AddImage appends an inline picture from raw bytes.
func (p *Paragraph) AddImage(data []byte, mimeType string) *ImageRun {
	ir := &ImageRun{data: data, mimeType: mimeType}
	p.runs = append(p.runs, ir)
	return ir
}

// maxImageFileSize is the maximum allowed size for an image file loaded
// from disk.
const maxImageFileSize = 50 << 20 // 50 MB

// AddImageFromFile loads an image from a file path and appends it as an
// inline picture. Returns an error if the file exceeds maxImageFileSize
// or cannot be read.
func (p *Paragraph) AddImageFromFile(path string) (*ImageRun, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.Size() > maxImageFileSize {
		return nil, fmt.Errorf("image file too large: %d bytes (max %d)", info.Size(), maxImageFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return p.AddImage(data, guessMimeFromPath(path)), nil
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
	default:
		return "image/png"
	}
}

// Run is a span of text with uniform character formatting.
type Run struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	strike    bool
	fontSize  float64 // points, 0 = inherit
	fontName  string
	color     string // RRGGBB
}

func (r *Run) runNode() {}

// GetText returns the run text.
func (r *Run) GetText() string { return r.text }

// SetBold sets bold and returns for chaining.
func (r *Run) SetBold(b bool) *Run {
	r.bold = b
	return r
}

// SetItalic sets italic and returns for chaining.
func (r *Run) SetItalic(i bool) *Run {
	r.italic = i
	return r
}

// SetUnderline sets a single underline and returns for chaining.
func (r *Run) SetUnderline(u bool) *Run {
	r.underline = u
	return r
}

// SetStrike sets strikethrough and returns for chaining.
func (r *Run) SetStrike(s bool) *Run {
	r.strike = s
	return r
}

// SetFontSize sets the font size in points.
func (r *Run) SetFontSize(pt float64) *Run {
	r.fontSize = pt
	return r
}

// SetFontName sets the font family.
func (r *Run) SetFontName(name string) *Run {
	r.fontName = name
	return r
}

// SetColor sets the text color as an RRGGBB hex string.
func (r *Run) SetColor(hex string) *Run {
	r.color = hex
	return r
}

// ImageRun is an inline picture. When only one dimension is set the
// other is derived from the image's intrinsic aspect ratio at write
// time; when neither is set the natural pixel size at 96 dpi is used.
type ImageRun struct {
	data     []byte
	mimeType string
	width    int64 // EMU, 0 = derive
	height   int64
	relID    int // assigned by the writer
}

func (ir *ImageRun) runNode() {}

// SetWidth sets the display width in EMU.
func (ir *ImageRun) SetWidth(emu int64) *ImageRun {
	ir.width = emu
	return ir
}

// SetHeight sets the display height in EMU.
func (ir *ImageRun) SetHeight(emu int64) *ImageRun {
	ir.height = emu
	return ir
}

// GetImageData returns the raw image bytes.
func (ir *ImageRun) GetImageData() []byte { return ir.data }

// GetMimeType returns the image MIME type.
func (ir *ImageRun) GetMimeType() string { return ir.mimeType }

// fieldRun is a field character boundary (begin, separate, end).
type fieldRun struct {
	charType string
}

func (f *fieldRun) runNode() {}

// instrRun carries a field instruction like " PAGE ".
type instrRun struct {
	instr string
}

func (i *instrRun) runNode() {}

// breakRun is a manual line or page break.
type breakRun struct {
	page bool
}

func (b *breakRun) runNode() {}

// normalizeHex uppercases an RRGGBB color and strips a leading '#'.
// Returns "" for anything that is not six hex digits.
func normalizeHex(hex string) string {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return ""
	}
	for _, r := range h {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return ""
		}
	}
	return strings.ToUpper(h)
}
