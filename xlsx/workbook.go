// Package xlsx writes Excel workbook files (.xlsx) following the
// Office Open XML (OOXML) standard.
//
// A Workbook is assembled in memory from sheets and cells using a
// fluent API, then serialized as a ZIP package by Save or WriteTo.
package xlsx

import (
	"errors"
	"fmt"
	"time"
)

// Workbook represents an in-memory Excel workbook.
type Workbook struct {
	properties *DocumentProperties
	sheets     []*Sheet
}

// New creates an empty Workbook. Add at least one sheet with AddSheet
// before saving.
func New() *Workbook {
	return &Workbook{
		properties: NewDocumentProperties(),
		sheets:     make([]*Sheet, 0),
	}
}

// GetDocumentProperties returns the document properties.
func (w *Workbook) GetDocumentProperties() *DocumentProperties {
	return w.properties
}

// SetDocumentProperties sets the document properties.
func (w *Workbook) SetDocumentProperties(props *DocumentProperties) {
	w.properties = props
}

// AddSheet appends a new sheet. An empty name becomes "SheetN" with N
// the one-based sheet position.
func (w *Workbook) AddSheet(name string) *Sheet {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", len(w.sheets)+1)
	}
	sheet := newSheet(name)
	w.sheets = append(w.sheets, sheet)
	return sheet
}

// GetSheet returns a sheet by index.
func (w *Workbook) GetSheet(index int) (*Sheet, error) {
	if index < 0 || index >= len(w.sheets) {
		return nil, errors.New("sheet index out of range")
	}
	return w.sheets[index], nil
}

// GetSheetByName returns the sheet with the given name, or nil.
func (w *Workbook) GetSheetByName(name string) *Sheet {
	for _, s := range w.sheets {
		if s.name == name {
			return s
		}
	}
	return nil
}

// GetAllSheets returns all sheets.
func (w *Workbook) GetAllSheets() []*Sheet {
	return w.sheets
}

// GetSheetCount returns the number of sheets.
func (w *Workbook) GetSheetCount() int {
	return len(w.sheets)
}

// RemoveSheetByIndex removes a sheet by index.
func (w *Workbook) RemoveSheetByIndex(index int) error {
	if index < 0 || index >= len(w.sheets) {
		return errors.New("sheet index out of range")
	}
	w.sheets = append(w.sheets[:index], w.sheets[index+1:]...)
	return nil
}

// DocumentProperties holds the standard document properties written to
// docProps/core.xml and docProps/app.xml.
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

// NewDocumentProperties creates new document properties with defaults.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Creator:        "GoOffice",
		LastModifiedBy: "GoOffice",
		Created:        now,
		Modified:       now,
	}
}
