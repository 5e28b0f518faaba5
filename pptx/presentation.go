// Package pptx writes PowerPoint presentation files (.pptx) following the
// Office Open XML (OOXML) standard, and reads back the subset it writes.
//
// A Presentation is assembled in memory from slides and shapes using a
// fluent API, then serialized as a ZIP package by Save or WriteTo.
package pptx

import (
	"errors"
	"sort"
	"time"
)

// Presentation represents an in-memory PowerPoint presentation.
type Presentation struct {
	properties             *DocumentProperties
	presentationProperties *PresentationProperties
	slides                 []*Slide
	activeSlideIndex       int
	layout                 *DocumentLayout
}

// New creates an empty Presentation with 16:9 slide dimensions.
// Add at least one slide with CreateSlide before saving.
func New() *Presentation {
	return &Presentation{
		properties:             NewDocumentProperties(),
		presentationProperties: NewPresentationProperties(),
		slides:                 make([]*Slide, 0),
		activeSlideIndex:       0,
		layout:                 NewDocumentLayout(),
	}
}

// GetDocumentProperties returns the document properties.
func (p *Presentation) GetDocumentProperties() *DocumentProperties {
	return p.properties
}

// SetDocumentProperties sets the document properties.
func (p *Presentation) SetDocumentProperties(props *DocumentProperties) {
	p.properties = props
}

// GetPresentationProperties returns the presentation properties.
func (p *Presentation) GetPresentationProperties() *PresentationProperties {
	return p.presentationProperties
}

// GetLayout returns the document layout.
func (p *Presentation) GetLayout() *DocumentLayout {
	return p.layout
}

// SetLayout sets the document layout.
func (p *Presentation) SetLayout(layout *DocumentLayout) {
	p.layout = layout
}

// CreateSlide creates a new slide, appends it, and makes it active.
func (p *Presentation) CreateSlide() *Slide {
	slide := newSlide()
	p.slides = append(p.slides, slide)
	p.activeSlideIndex = len(p.slides) - 1
	return slide
}

// AddSlide adds an existing slide to the presentation.
func (p *Presentation) AddSlide(slide *Slide) *Slide {
	p.slides = append(p.slides, slide)
	return slide
}

// GetActiveSlide returns the currently active slide, or nil when empty.
func (p *Presentation) GetActiveSlide() *Slide {
	if len(p.slides) == 0 {
		return nil
	}
	if p.activeSlideIndex >= len(p.slides) {
		p.activeSlideIndex = 0
	}
	return p.slides[p.activeSlideIndex]
}

// SetActiveSlideIndex sets the active slide by index.
func (p *Presentation) SetActiveSlideIndex(index int) error {
	if index < 0 || index >= len(p.slides) {
		return errors.New("slide index out of range")
	}
	p.activeSlideIndex = index
	return nil
}

// GetActiveSlideIndex returns the active slide index.
func (p *Presentation) GetActiveSlideIndex() int {
	return p.activeSlideIndex
}

// GetSlide returns a slide by index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, errors.New("slide index out of range")
	}
	return p.slides[index], nil
}

// GetAllSlides returns all slides.
func (p *Presentation) GetAllSlides() []*Slide {
	return p.slides
}

// GetSlideCount returns the number of slides.
func (p *Presentation) GetSlideCount() int {
	return len(p.slides)
}

// RemoveSlideByIndex removes a slide by index.
func (p *Presentation) RemoveSlideByIndex(index int) error {
	if index < 0 || index >= len(p.slides) {
		return errors.New("slide index out of range")
	}
	p.slides = append(p.slides[:index], p.slides[index+1:]...)
	if p.activeSlideIndex >= len(p.slides) && len(p.slides) > 0 {
		p.activeSlideIndex = len(p.slides) - 1
	}
	return nil
}

// MoveSlide moves a slide from one index to another.
func (p *Presentation) MoveSlide(fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(p.slides) {
		return errors.New("fromIndex out of range")
	}
	if toIndex < 0 || toIndex >= len(p.slides) {
		return errors.New("toIndex out of range")
	}
	if fromIndex == toIndex {
		return nil
	}
	slide := p.slides[fromIndex]
	p.slides = append(p.slides[:fromIndex], p.slides[fromIndex+1:]...)
	p.slides = append(p.slides, nil) // grow by one
	copy(p.slides[toIndex+1:], p.slides[toIndex:])
	p.slides[toIndex] = slide
	return nil
}

// DocumentProperties holds standard and custom document properties.
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
	Revision       string
	customProps    map[string]*CustomProperty
}

// CustomProperty represents a custom document property.
type CustomProperty struct {
	Name  string
	Value interface{}
	Type  PropertyType
}

// PropertyType represents the type of a custom property.
type PropertyType int

const (
	PropertyTypeString PropertyType = iota
	PropertyTypeBoolean
	PropertyTypeInteger
	PropertyTypeFloat
	PropertyTypeDate
	PropertyTypeUnknown
)

// NewDocumentProperties creates new document properties with defaults.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        "GoOffice",
		LastModifiedBy: "GoOffice",
		Created:        now,
		Modified:       now,
		customProps:    make(map[string]*CustomProperty),
	}
}

// SetCustomProperty sets a custom property. Custom properties are written
// to docProps/custom.xml.
func (dp *DocumentProperties) SetCustomProperty(name string, value interface{}, propType PropertyType) {
	dp.customProps[name] = &CustomProperty{
		Name:  name,
		Value: value,
		Type:  propType,
	}
}

// IsCustomPropertySet checks if a custom property exists.
func (dp *DocumentProperties) IsCustomPropertySet(name string) bool {
	_, ok := dp.customProps[name]
	return ok
}

// GetCustomProperties returns all custom property names, sorted so that
// output order is deterministic.
func (dp *DocumentProperties) GetCustomProperties() []string {
	names := make([]string, 0, len(dp.customProps))
	for name := range dp.customProps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCustomPropertyValue returns the value of a custom property.
func (dp *DocumentProperties) GetCustomPropertyValue(name string) interface{} {
	if prop, ok := dp.customProps[name]; ok {
		return prop.Value
	}
	return nil
}

// GetCustomPropertyType returns the type of a custom property.
func (dp *DocumentProperties) GetCustomPropertyType(name string) PropertyType {
	if prop, ok := dp.customProps[name]; ok {
		return prop.Type
	}
	return PropertyTypeUnknown
}
