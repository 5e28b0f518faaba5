package pptx

import "strings"

// Slide is a single slide: an ordered list of shapes plus optional
// speaker notes and an explicit background fill. Shapes are rendered in
// insertion order, so later shapes paint over earlier ones.
type Slide struct {
	name       string
	shapes     []Shape
	notes      string
	background *Fill
	visible    bool
}

func newSlide() *Slide {
	return &Slide{
		shapes:  make([]Shape, 0),
		visible: true,
	}
}

// GetName returns the slide name.
func (s *Slide) GetName() string { return s.name }

// SetName sets the slide name.
func (s *Slide) SetName(name string) *Slide {
	s.name = name
	return s
}

// IsVisible reports whether the slide is shown during a slideshow.
func (s *Slide) IsVisible() bool { return s.visible }

// SetVisible controls slideshow visibility. Hidden slides keep their
// position and numbering but are skipped when presenting.
func (s *Slide) SetVisible(v bool) *Slide {
	s.visible = v
	return s
}

// GetNotes returns the speaker notes text.
func (s *Slide) GetNotes() string { return s.notes }

// SetNotes sets the speaker notes. Non-empty notes produce a notes slide
// part in the saved file.
func (s *Slide) SetNotes(notes string) *Slide {
	s.notes = notes
	return s
}

// GetBackground returns the background fill, or nil when the slide
// inherits the master background.
func (s *Slide) GetBackground() *Fill { return s.background }

// SetBackground sets an explicit background fill.
func (s *Slide) SetBackground(f *Fill) *Slide {
	s.background = f
	return s
}

// CreateRichTextShape creates a text box and adds it to the slide.
func (s *Slide) CreateRichTextShape() *RichTextShape {
	rt := NewRichTextShape()
	s.shapes = append(s.shapes, rt)
	return rt
}

// CreateDrawingShape creates an image shape and adds it to the slide.
func (s *Slide) CreateDrawingShape() *DrawingShape {
	d := NewDrawingShape()
	s.shapes = append(s.shapes, d)
	return d
}

// CreateAutoShape creates a preset-geometry shape and adds it to the slide.
func (s *Slide) CreateAutoShape() *AutoShape {
	a := NewAutoShape()
	s.shapes = append(s.shapes, a)
	return a
}

// CreateLineShape creates a line and adds it to the slide.
func (s *Slide) CreateLineShape() *LineShape {
	l := NewLineShape()
	s.shapes = append(s.shapes, l)
	return l
}

// CreateTableShape creates a rows x cols table and adds it to the slide.
func (s *Slide) CreateTableShape(rows, cols int) *TableShape {
	t := NewTableShape(rows, cols)
	s.shapes = append(s.shapes, t)
	return t
}

// CreateChartShape creates a chart frame and adds it to the slide. Set a
// chart type on its plot area before saving.
func (s *Slide) CreateChartShape() *ChartShape {
	c := NewChartShape()
	s.shapes = append(s.shapes, c)
	return c
}

// CreateGroupShape creates a shape group and adds it to the slide.
func (s *Slide) CreateGroupShape() *GroupShape {
	g := NewGroupShape()
	s.shapes = append(s.shapes, g)
	return g
}

// AddShape appends an existing shape to the slide.
func (s *Slide) AddShape(shape Shape) {
	s.shapes = append(s.shapes, shape)
}

// GetShapes returns all shapes on the slide.
func (s *Slide) GetShapes() []Shape { return s.shapes }

// GetShapeCount returns the number of top-level shapes on the slide.
func (s *Slide) GetShapeCount() int { return len(s.shapes) }

// RemoveShapeByIndex removes a shape by index.
func (s *Slide) RemoveShapeByIndex(index int) error {
	if index < 0 || index >= len(s.shapes) {
		return errOutOfRange
	}
	s.shapes = append(s.shapes[:index], s.shapes[index+1:]...)
	return nil
}

// RemoveShapeByPointer removes the given shape from the slide.
// Returns true if the shape was found and removed.
func (s *Slide) RemoveShapeByPointer(shape Shape) bool {
	for i, sh := range s.shapes {
		if sh == shape {
			s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
			return true
		}
	}
	return false
}

// ExtractText returns all text content from the slide, one line per
// paragraph, in shape order. Useful for search and assertions.
func (s *Slide) ExtractText() string {
	var parts []string
	for _, shape := range s.shapes {
		parts = append(parts, shapeText(shape)...)
	}
	return joinNonEmpty(parts, "\n")
}

func shapeText(shape Shape) []string {
	var parts []string
	switch sh := shape.(type) {
	case *RichTextShape:
		parts = append(parts, extractParagraphsText(sh.paragraphs)...)
	case *AutoShape:
		if sh.text != "" {
			parts = append(parts, sh.text)
		}
	case *TableShape:
		for _, row := range sh.rows {
			var cells []string
			for _, cell := range row {
				if txt := strings.Join(extractParagraphsText(cell.paragraphs), " "); txt != "" {
					cells = append(cells, txt)
				}
			}
			if len(cells) > 0 {
				parts = append(parts, strings.Join(cells, "\t"))
			}
		}
	case *ChartShape:
		if sh.title.Visible && sh.title.Text != "" {
			parts = append(parts, sh.title.Text)
		}
	case *GroupShape:
		for _, child := range sh.shapes {
			parts = append(parts, shapeText(child)...)
		}
	}
	return parts
}

// Bullet describes the marker rendered before a paragraph.
type Bullet struct {
	Type      BulletType
	Style     string // bullet character for BulletTypeChar
	Font      string // typeface for the bullet character, empty inherits
	Color     *Color // nil inherits the run color
	Size      int    // percent of the run size, 100 means same size
	NumFormat string // numbering scheme for BulletTypeNumeric
	StartAt   int    // first number for BulletTypeNumeric
}

// BulletType represents the bullet marker kind.
type BulletType int

const (
	BulletTypeNone BulletType = iota
	BulletTypeChar
	BulletTypeNumeric
)

// Automatic numbering scheme constants (a:buAutoNum type values).
const (
	NumFormatArabicPeriod  = "arabicPeriod"  // 1. 2. 3.
	NumFormatArabicParenR  = "arabicParenR"  // 1) 2) 3)
	NumFormatAlphaLcPeriod = "alphaLcPeriod" // a. b. c.
	NumFormatAlphaUcPeriod = "alphaUcPeriod" // A. B. C.
	NumFormatRomanLcPeriod = "romanLcPeriod" // i. ii. iii.
	NumFormatRomanUcPeriod = "romanUcPeriod" // I. II. III.
)

// NewBullet creates a character bullet with the default round marker.
func NewBullet() *Bullet {
	return &Bullet{
		Type:  BulletTypeChar,
		Style: "•",
		Size:  100,
	}
}

// NewNumericBullet creates an automatically numbered bullet.
func NewNumericBullet() *Bullet {
	return &Bullet{
		Type:      BulletTypeNumeric,
		NumFormat: NumFormatArabicPeriod,
		StartAt:   1,
		Size:      100,
	}
}

// SetColor sets the bullet color.
func (b *Bullet) SetColor(c Color) *Bullet {
	b.Color = &c
	return b
}

// SetChar sets the bullet character and marks the bullet as a character
// bullet.
func (b *Bullet) SetChar(ch string) *Bullet {
	b.Type = BulletTypeChar
	b.Style = ch
	return b
}

// LineEnd describes an arrowhead at one end of a line shape.
type LineEnd struct {
	Type   ArrowType
	Width  string // ArrowSizeSmall, ArrowSizeMed or ArrowSizeLarge
	Length string
}

// ArrowType represents the arrowhead style.
type ArrowType string

// Arrowhead style constants (a:headEnd / a:tailEnd type values).
const (
	ArrowNone     ArrowType = "none"
	ArrowTriangle ArrowType = "triangle"
	ArrowStealth  ArrowType = "stealth"
	ArrowDiamond  ArrowType = "diamond"
	ArrowOval     ArrowType = "oval"
	ArrowOpen     ArrowType = "arrow"
)

// Arrowhead size constants.
const (
	ArrowSizeSmall = "sm"
	ArrowSizeMed   = "med"
	ArrowSizeLarge = "lg"
)

// NewLineEnd creates an arrowhead of the given style at medium size.
func NewLineEnd(t ArrowType) *LineEnd {
	return &LineEnd{Type: t, Width: ArrowSizeMed, Length: ArrowSizeMed}
}
