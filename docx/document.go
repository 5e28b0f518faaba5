// Package docx writes Word documents (.docx) following the Office Open
// XML (OOXML) standard.
//
// A Document is assembled in memory from paragraphs, tables, images and
// sections using a fluent API, then serialized as a ZIP package by Save
// or WriteTo.
package docx

import (
	"fmt"
	"time"
)

// Block is a body-level element of a section: a paragraph or a table.
type Block interface {
	blockNode()
}

// Numbering definition instances. Bullet items share one instance;
// every numbered list gets its own so numbering restarts at 1.
const (
	bulletNumID     = 1
	decimalNumID    = 2
	restartNumIDMin = 3
)

// Document represents an in-memory Word document.
type Document struct {
	properties      *DocumentProperties
	defaultFont     string
	defaultFontSize float64 // points
	lineSpacing     float64 // multiple of single spacing, 0 = single
	headerText      string
	footerText      string
	pageNumbers     bool
	watermark       string
	sections        []*Section
	numInstances    int
}

// New creates an empty Document with a single US-Letter portrait section.
func New() *Document {
	return &Document{
		properties: NewDocumentProperties(),
		sections:   []*Section{newSection()},
	}
}

// GetDocumentProperties returns the document properties.
func (d *Document) GetDocumentProperties() *DocumentProperties {
	return d.properties
}

// SetDocumentProperties sets the document properties.
func (d *Document) SetDocumentProperties(props *DocumentProperties) {
	d.properties = props
}

// SetDefaultFont sets the body font name and size in points. The zero
// values fall back to Calibri 11 when the file is written.
func (d *Document) SetDefaultFont(name string, sizePt float64) *Document {
	d.defaultFont = name
	d.defaultFontSize = sizePt
	return d
}

// GetDefaultFont returns the configured body font name and size.
func (d *Document) GetDefaultFont() (string, float64) {
	return d.defaultFont, d.defaultFontSize
}

// SetLineSpacing sets the default line spacing as a multiple of single
// spacing (1.5 = one-and-a-half lines). Zero keeps single spacing.
func (d *Document) SetLineSpacing(multiple float64) *Document {
	d.lineSpacing = multiple
	return d
}

// GetLineSpacing returns the default line spacing multiple.
func (d *Document) GetLineSpacing() float64 { return d.lineSpacing }

// SetHeaderText sets a centered header line shown on every page.
func (d *Document) SetHeaderText(text string) *Document {
	d.headerText = text
	return d
}

// GetHeaderText returns the header line.
func (d *Document) GetHeaderText() string { return d.headerText }

// SetFooterText sets a centered footer line shown on every page.
func (d *Document) SetFooterText(text string) *Document {
	d.footerText = text
	return d
}

// GetFooterText returns the footer line.
func (d *Document) GetFooterText() string { return d.footerText }

// SetPageNumbers enables a PAGE field in the footer.
func (d *Document) SetPageNumbers(enabled bool) *Document {
	d.pageNumbers = enabled
	return d
}

// GetPageNumbers reports whether page numbers are enabled.
func (d *Document) GetPageNumbers() bool { return d.pageNumbers }

// SetWatermark places large light-gray text in the page header of every
// section. An empty string removes the watermark.
func (d *Document) SetWatermark(text string) *Document {
	d.watermark = text
	return d
}

// GetWatermark returns the watermark text.
func (d *Document) GetWatermark() string { return d.watermark }

// CurrentSection returns the section new blocks are appended to.
func (d *Document) CurrentSection() *Section {
	return d.sections[len(d.sections)-1]
}

// AddSection starts a new section. Blocks added afterwards flow into it.
// The previous section's page setup is carried over.
func (d *Document) AddSection() *Section {
	prev := d.CurrentSection()
	s := newSection()
	s.pageWidth = prev.pageWidth
	s.pageHeight = prev.pageHeight
	s.orientation = prev.orientation
	s.marginTop = prev.marginTop
	s.marginBottom = prev.marginBottom
	s.marginLeft = prev.marginLeft
	s.marginRight = prev.marginRight
	d.sections = append(d.sections, s)
	return s
}

// GetSections returns the sections in document order.
func (d *Document) GetSections() []*Section { return d.sections }

// BlockCount returns the total number of body blocks across sections.
func (d *Document) BlockCount() int {
	n := 0
	for _, s := range d.sections {
		n += len(s.blocks)
	}
	return n
}

// AddParagraph appends an empty paragraph to the current section.
func (d *Document) AddParagraph() *Paragraph {
	p := newParagraph()
	d.CurrentSection().addBlock(p)
	return p
}

// AddHeading appends a heading paragraph. Levels outside 1..4 are
// clamped.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	p := d.AddParagraph()
	p.SetStyle(fmt.Sprintf("Heading%d", level))
	p.AddRun(text)
	return p
}

// AddBulletItem appends one bullet list item. Levels outside 0..2 are
// clamped. Consecutive calls build a single visual list.
func (d *Document) AddBulletItem(text string, level int) *Paragraph {
	p := d.AddParagraph()
	p.SetNumbering(bulletNumID, clampListLevel(level))
	p.AddRun(text)
	return p
}

// NumberedList appends decimal-numbered items that share one numbering
// instance, so every list created by AddNumberedList restarts at 1.
type NumberedList struct {
	doc   *Document
	numID int
}

// AddNumberedList starts a new numbered list.
func (d *Document) AddNumberedList() *NumberedList {
	d.numInstances++
	return &NumberedList{doc: d, numID: restartNumIDMin + d.numInstances - 1}
}

// AddItem appends one numbered item. Levels outside 0..2 are clamped.
func (l *NumberedList) AddItem(text string, level int) *Paragraph {
	p := l.doc.AddParagraph()
	p.SetNumbering(l.numID, clampListLevel(level))
	p.AddRun(text)
	return p
}

func clampListLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 2 {
		return 2
	}
	return level
}

// AddTable appends an empty rows x cols table to the current section.
// Returns nil if either dimension is not positive.
func (d *Document) AddTable(rows, cols int) *Table {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	t := newTable(rows, cols)
	d.CurrentSection().addBlock(t)
	return t
}

// AddPageBreak appends a paragraph containing an explicit page break.
func (d *Document) AddPageBreak() {
	d.AddParagraph().addBreak(true)
}

// Close releases the document contents. The document must not be used
// afterwards.
func (d *Document) Close() error {
	d.sections = nil
	d.properties = nil
	return nil
}

// DocumentProperties holds the docProps metadata.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Description    string
	Subject        string
	Keywords       string
	Category       string
	Company        string
}

// NewDocumentProperties creates properties with creation timestamps set
// to now.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        "GoOffice",
		LastModifiedBy: "GoOffice",
		Created:        now,
		Modified:       now,
	}
}
