package xlsx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writer serializes a Workbook into the XLSX package format.
type writer struct {
	workbook    *Workbook
	sst         *sharedStrings
	styles      *stylesRegistry
	cellXf      map[*Cell]int
	dxfID       map[*ConditionalFormat]int
	hasFormulas bool
}

func newWriter(wb *Workbook) *writer {
	return &writer{workbook: wb}
}

// Save writes the workbook to a file.
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

// WriteTo writes the workbook to a writer.
func (w *writer) WriteTo(out io.Writer) error {
	if w.workbook == nil {
		return fmt.Errorf("workbook is nil")
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

	// Write xl/workbook.xml
	if err := w.writeWorkbook(zw); err != nil {
		return err
	}

	// Write xl/_rels/workbook.xml.rels
	if err := w.writeWorkbookRels(zw); err != nil {
		return err
	}

	// Write xl/styles.xml
	if err := w.writeStyles(zw); err != nil {
		return err
	}

	// Write xl/sharedStrings.xml
	if err := w.writeSharedStrings(zw); err != nil {
		return err
	}

	// Write worksheets with their drawings and chart parts. Drawings and
	// charts are numbered globally so part names stay unique across sheets.
	drawingIdx := 1
	chartIdx := 1
	for i, sheet := range w.workbook.sheets {
		if err := w.writeSheet(zw, sheet, i+1, i == 0); err != nil {
			return err
		}
		if len(sheet.charts) == 0 {
			continue
		}
		if err := w.writeSheetRels(zw, i+1, drawingIdx); err != nil {
			return err
		}
		if err := w.writeDrawing(zw, sheet, drawingIdx, chartIdx); err != nil {
			return err
		}
		if err := w.writeDrawingRels(zw, drawingIdx, chartIdx, len(sheet.charts)); err != nil {
			return err
		}
		for _, chart := range sheet.charts {
			if err := w.writeChartPart(zw, chart, chartIdx); err != nil {
				return err
			}
			chartIdx++
		}
		drawingIdx++
	}

	return zw.Close()
}

// prepare builds the shared string table and the style registry in one
// deterministic pass over all sheets before any part is written, so
// sharedStrings.xml and styles.xml agree with the cell references
// emitted later.
func (w *writer) prepare() {
	w.sst = newSharedStrings()
	w.styles = newStylesRegistry()
	w.cellXf = make(map[*Cell]int)
	w.dxfID = make(map[*ConditionalFormat]int)
	w.hasFormulas = false

	for _, sheet := range w.workbook.sheets {
		for _, row := range sheet.usedRows() {
			for _, c := range sheet.rowCells(row) {
				switch c.cellType {
				case CellTypeString:
					w.sst.add(c.str)
				case CellTypeFormula:
					w.hasFormulas = true
				}
				if c.style != nil && !c.style.isZero() {
					w.cellXf[c] = w.styles.register(c.style)
				}
			}
		}
		for _, cf := range sheet.condFormats {
			if cf.Type == CondFormatCellIs {
				w.dxfID[cf] = w.styles.registerDxf(cf.Fill, cf.FontCol)
			}
		}
	}
}

// Save writes the workbook to an XLSX file.
func (wb *Workbook) Save(path string) error {
	return newWriter(wb).Save(path)
}

// WriteTo writes the workbook to a writer in XLSX format.
func (wb *Workbook) WriteTo(out io.Writer) error {
	return newWriter(wb).WriteTo(out)
}

// Close releases resources held by the workbook.
// It clears internal references to allow garbage collection.
func (wb *Workbook) Close() error {
	wb.sheets = nil
	wb.properties = nil
	return nil
}
