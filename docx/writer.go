package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writer serializes a Document into the DOCX package format.
type writer struct {
	document    *Document
	images      []*ImageRun
	needHeader  bool
	needFooter  bool
	headerRelID int
	footerRelID int
	drawingSeq  int
}

func newWriter(d *Document) *writer {
	return &writer{document: d}
}

// Save writes the document to a file.
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

// WriteTo writes the document to a writer.
func (w *writer) WriteTo(out io.Writer) error {
	if w.document == nil {
		return fmt.Errorf("document is nil")
	}

	w.prepare()
	zw := zip.NewWriter(out)

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

	// Write word/document.xml
	if err := w.writeDocument(zw); err != nil {
		return err
	}

	// Write word/_rels/document.xml.rels
	if err := w.writeDocumentRels(zw); err != nil {
		return err
	}

	// Write word/styles.xml
	if err := w.writeStyles(zw); err != nil {
		return err
	}

	// Write word/numbering.xml
	if err := w.writeNumbering(zw); err != nil {
		return err
	}

	if w.needHeader {
		if err := w.writeHeader(zw); err != nil {
			return err
		}
	}
	if w.needFooter {
		if err := w.writeFooter(zw); err != nil {
			return err
		}
	}

	// Write word/media/imageN.*
	for i, img := range w.images {
		path := fmt.Sprintf("word/media/image%d.%s", i+1, imageExtension(img.mimeType))
		fw, err := zw.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s in zip: %w", path, err)
		}
		if _, err := fw.Write(img.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return zw.Close()
}

// prepare decides which header/footer parts exist and assigns
// relationship ids before any part is written, so document.xml and
// document.xml.rels agree. Styles and numbering hold rId1 and rId2.
func (w *writer) prepare() {
	d := w.document
	w.images = nil
	w.drawingSeq = 0
	w.needHeader = d.headerText != "" || d.watermark != ""
	w.needFooter = d.footerText != "" || d.pageNumbers

	rel := 3
	if w.needHeader {
		w.headerRelID = rel
		rel++
	}
	if w.needFooter {
		w.footerRelID = rel
		rel++
	}
	for _, section := range d.sections {
		for _, block := range section.blocks {
			switch blk := block.(type) {
			case *Paragraph:
				rel = w.collectImages(blk, rel)
			case *Table:
				for _, row := range blk.cells {
					for _, cell := range row {
						rel = w.collectImages(cell.paragraph, rel)
					}
				}
			}
		}
	}
}

func (w *writer) collectImages(p *Paragraph, rel int) int {
	for _, el := range p.runs {
		if ir, ok := el.(*ImageRun); ok {
			ir.relID = rel
			rel++
			w.images = append(w.images, ir)
		}
	}
	return rel
}

// Save writes the document to a DOCX file.
func (d *Document) Save(path string) error {
	return newWriter(d).Save(path)
}

// WriteTo writes the document to a writer in DOCX format.
func (d *Document) WriteTo(out io.Writer) error {
	return newWriter(d).WriteTo(out)
}
