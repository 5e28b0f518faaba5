package pptx

// PresentationProperties holds presentation-level view and status
// settings that land in viewProps.xml and the core properties part.
type PresentationProperties struct {
	zoom          float64
	markedAsFinal bool
}

// NewPresentationProperties creates new presentation properties with defaults.
func NewPresentationProperties() *PresentationProperties {
	return &PresentationProperties{
		zoom: 1.0,
	}
}

// GetZoom returns the zoom level.
func (pp *PresentationProperties) GetZoom() float64 {
	return pp.zoom
}

// SetZoom sets the zoom level (clamped to 0.1–4.0).
func (pp *PresentationProperties) SetZoom(zoom float64) {
	if zoom < 0.1 {
		zoom = 0.1
	}
	if zoom > 4.0 {
		zoom = 4.0
	}
	pp.zoom = zoom
}

// IsMarkedAsFinal returns whether the presentation is marked as final.
func (pp *PresentationProperties) IsMarkedAsFinal() bool {
	return pp.markedAsFinal
}

// MarkAsFinal marks the presentation as final.
func (pp *PresentationProperties) MarkAsFinal(final ...bool) {
	if len(final) == 0 {
		pp.markedAsFinal = true
		return
	}
	pp.markedAsFinal = final[0]
}

// DocumentLayout represents the slide dimensions.
type DocumentLayout struct {
	CX   int64 // width in EMU (English Metric Units)
	CY   int64 // height in EMU
	Name string
}

// Standard layout constants (in EMU: 1 inch = 914400 EMU).
const (
	LayoutScreen4x3   = "screen4x3"
	LayoutScreen16x9  = "screen16x9"
	LayoutScreen16x10 = "screen16x10"
	LayoutA4          = "A4"
	LayoutLetter      = "letter"
	LayoutCustom      = "custom"
)

// NewDocumentLayout creates a default 16:9 layout.
func NewDocumentLayout() *DocumentLayout {
	return &DocumentLayout{
		CX:   12192000, // 13.333 inches
		CY:   6858000,  // 7.5 inches
		Name: LayoutScreen16x9,
	}
}

// SetLayout sets a predefined layout.
func (dl *DocumentLayout) SetLayout(name string) {
	dl.Name = name
	switch name {
	case LayoutScreen4x3:
		dl.CX = 9144000
		dl.CY = 6858000
	case LayoutScreen16x9:
		dl.CX = 12192000
		dl.CY = 6858000
	case LayoutScreen16x10:
		dl.CX = 10972800
		dl.CY = 6858000
	case LayoutA4:
		dl.CX = 9906000
		dl.CY = 6858000
	case LayoutLetter:
		dl.CX = 9144000
		dl.CY = 6858000
	}
}

// SetCustomLayout sets custom dimensions in EMU. Both values must be positive.
func (dl *DocumentLayout) SetCustomLayout(cx, cy int64) {
	if cx <= 0 {
		cx = 12192000
	}
	if cy <= 0 {
		cy = 6858000
	}
	dl.CX = cx
	dl.CY = cy
	dl.Name = LayoutCustom
}
