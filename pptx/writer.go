package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writer serializes a Presentation into the PPTX package format.
type writer struct {
	presentation *Presentation
	relID        int
}

func newWriter(p *Presentation) *writer {
	return &writer{presentation: p}
}

func (w *writer) nextRelID() string {
	w.relID++
	return fmt.Sprintf("rId%d", w.relID)
}

// Save writes the presentation to a file.
func (w *writer) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := w.WriteTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		// Attempt cleanup on write failure
		os.Remove(path)
		return writeErr
	}
	return closeErr
}

// WriteTo writes the presentation to a writer.
func (w *writer) WriteTo(out io.Writer) error {
	if w.presentation == nil {
		return fmt.Errorf("presentation is nil")
	}

	zw := zip.NewWriter(out)

	w.relID = 0

	// Write [Content_Types].xml
	if err := w.writeContentTypes(zw); err != nil {
		return err
	}

	// Write _rels/.rels
	if err := w.writeRootRels(zw); err != nil {
		return err
	}

	// Write docProps/app.xml
	if err := w.writeAppProperties(zw); err != nil {
		return err
	}

	// Write docProps/core.xml
	if err := w.writeCoreProperties(zw); err != nil {
		return err
	}

	// Write docProps/custom.xml when custom properties are present
	if len(w.presentation.properties.customProps) > 0 {
		if err := w.writeCustomProperties(zw); err != nil {
			return err
		}
	}

	// Write ppt/presentation.xml
	if err := w.writePresentation(zw); err != nil {
		return err
	}

	// Write ppt/_rels/presentation.xml.rels
	if err := w.writePresentationRels(zw); err != nil {
		return err
	}

	// Write ppt/presProps.xml
	if err := w.writePresProps(zw); err != nil {
		return err
	}

	// Write ppt/viewProps.xml
	if err := w.writeViewProps(zw); err != nil {
		return err
	}

	// Write ppt/tableStyles.xml
	if err := w.writeTableStyles(zw); err != nil {
		return err
	}

	// Write slide master and layout
	if err := w.writeSlideMaster(zw); err != nil {
		return err
	}

	if err := w.writeSlideLayout(zw); err != nil {
		return err
	}

	// Write theme
	if err := w.writeTheme(zw); err != nil {
		return err
	}

	// Write slides
	for i, slide := range w.presentation.slides {
		hlinkRelMap := w.buildHyperlinkRelMap(slide)
		if err := w.writeSlide(zw, slide, i+1, hlinkRelMap); err != nil {
			return err
		}
		if err := w.writeSlideRels(zw, slide, i+1, hlinkRelMap); err != nil {
			return err
		}
	}

	// Write images
	if err := w.writeMedia(zw); err != nil {
		return err
	}

	// Write charts, numbered in slide order with groups flattened so the
	// part names match the relationship IDs assigned in writeSlideRels.
	chartIdx := 1
	for _, slide := range w.presentation.slides {
		for _, shape := range flattenShapes(slide.shapes) {
			if cs, ok := shape.(*ChartShape); ok {
				if err := w.writeChartPart(zw, cs, chartIdx); err != nil {
					return err
				}
				chartIdx++
			}
		}
	}

	// Write notes slides
	for i, slide := range w.presentation.slides {
		if slide.notes != "" {
			if err := w.writeNotesSlide(zw, slide, i+1); err != nil {
				return err
			}
		}
	}

	return zw.Close()
}

// flattenShapes returns shapes in pre-order with group children expanded
// in place. Groups themselves are included (they carry no relationship)
// followed by their children, which keeps relationship numbering stable
// for shapes nested inside groups.
func flattenShapes(shapes []Shape) []Shape {
	var flat []Shape
	for _, s := range shapes {
		flat = append(flat, s)
		if g, ok := s.(*GroupShape); ok {
			flat = append(flat, flattenShapes(g.shapes)...)
		}
	}
	return flat
}
