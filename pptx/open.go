package pptx

import (
	"fmt"
	"io"
	"strings"
)

// Open reads a PPTX file from disk and returns a Presentation.
func Open(path string) (*Presentation, error) {
	return readPPTXFile(path)
}

// ReadFrom reads a PPTX from an io.ReaderAt with the given size.
func ReadFrom(r io.ReaderAt, size int64) (*Presentation, error) {
	return readPPTX(r, size)
}

// Save writes the presentation to a PPTX file.
func (p *Presentation) Save(path string) error {
	return newWriter(p).Save(path)
}

// WriteTo writes the presentation to a writer in PPTX format.
func (p *Presentation) WriteTo(w io.Writer) error {
	return newWriter(p).WriteTo(w)
}

// Close releases resources held by the presentation.
// It clears internal references to allow garbage collection.
func (p *Presentation) Close() error {
	p.slides = nil
	p.properties = nil
	p.presentationProperties = nil
	p.layout = nil
	return nil
}

// Slides returns all slides.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// CopySlide creates a deep copy of the slide at the given index and appends it.
// Note: shapes are shallow-copied (reference types). Modify the returned slide's
// shapes independently by replacing them rather than mutating in place.
func (p *Presentation) CopySlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(p.slides)-1)
	}
	src := p.slides[index]
	dst := newSlide()
	dst.name = src.name
	dst.notes = src.notes
	dst.visible = src.visible
	if src.background != nil {
		bg := *src.background
		dst.background = &bg
	}
	// Copy shapes slice (shapes are reference types)
	dst.shapes = make([]Shape, len(src.shapes))
	copy(dst.shapes, src.shapes)
	p.slides = append(p.slides, dst)
	return dst, nil
}

// ExtractText returns all text content from the presentation as a single string.
// Useful for search/indexing.
func (p *Presentation) ExtractText() string {
	var parts []string
	for _, slide := range p.slides {
		if text := slide.ExtractText(); text != "" {
			parts = append(parts, text)
		}
		if slide.notes != "" {
			parts = append(parts, slide.notes)
		}
	}
	return joinNonEmpty(parts, "\n")
}

func extractParagraphsText(paragraphs []*Paragraph) []string {
	var parts []string
	for _, para := range paragraphs {
		var sb strings.Builder
		for _, elem := range para.elements {
			if tr, ok := elem.(*TextRun); ok {
				sb.WriteString(tr.text)
			}
		}
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
		}
	}
	return parts
}

func joinNonEmpty(parts []string, sep string) string {
	var result []string
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return strings.Join(result, sep)
}
