package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespace constants
const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsSpreadsheetML  = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsSpreadsheetDr  = "http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
	nsChartML        = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsVTypes         = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeOfficeDoc     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeWorksheet     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relTypeStyles        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeSharedStrings = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	relTypeDrawing       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing"
	relTypeChart         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"

	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ctDrawing       = "application/vnd.openxmlformats-officedocument.drawing+xml"
	ctChart         = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels          = "application/vnd.openxmlformats-package.relationships+xml"
)

func writeXMLToZip(zw *zip.Writer, path string, v interface{}) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	if _, err := fw.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(fw)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func writeRawXMLToZip(zw *zip.Writer, path string, content string) error {
	fw, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	_, err = fw.Write([]byte(content))
	return err
}

func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		// EscapeText writing to strings.Builder never fails, but handle gracefully.
		return s
	}
	return b.String()
}

// --- Content Types ---

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (w *writer) writeContentTypes(zw *zip.Writer) error {
	ct := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/xl/workbook.xml", ContentType: ctWorkbook},
			{PartName: "/xl/styles.xml", ContentType: ctStyles},
			{PartName: "/xl/sharedStrings.xml", ContentType: ctSharedStrings},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtProps},
		},
	}

	for i := range w.workbook.sheets {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/xl/worksheets/sheet%d.xml", i+1),
			ContentType: ctWorksheet,
		})
	}

	drawingIdx := 1
	chartIdx := 1
	for _, sheet := range w.workbook.sheets {
		if len(sheet.charts) == 0 {
			continue
		}
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/xl/drawings/drawing%d.xml", drawingIdx),
			ContentType: ctDrawing,
		})
		drawingIdx++
		for range sheet.charts {
			ct.Overrides = append(ct.Overrides, xmlOverride{
				PartName:    fmt.Sprintf("/xl/charts/chart%d.xml", chartIdx),
				ContentType: ctChart,
			})
			chartIdx++
		}
	}

	return writeXMLToZip(zw, "[Content_Types].xml", ct)
}

// --- Relationships ---

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

func (w *writer) writeRootRels(zw *zip.Writer) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeOfficeDoc, Target: "xl/workbook.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeExtProps, Target: "docProps/app.xml"},
		},
	}
	return writeXMLToZip(zw, "_rels/.rels", rels)
}

func (w *writer) writeWorkbookRels(zw *zip.Writer) error {
	rels := xmlRelationships{Xmlns: nsRelationships}

	relIdx := 1
	for i := range w.workbook.sheets {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     fmt.Sprintf("rId%d", relIdx),
			Type:   relTypeWorksheet,
			Target: fmt.Sprintf("worksheets/sheet%d.xml", i+1),
		})
		relIdx++
	}
	rels.Relationships = append(rels.Relationships, xmlRelationship{
		ID:     fmt.Sprintf("rId%d", relIdx),
		Type:   relTypeStyles,
		Target: "styles.xml",
	})
	relIdx++
	rels.Relationships = append(rels.Relationships, xmlRelationship{
		ID:     fmt.Sprintf("rId%d", relIdx),
		Type:   relTypeSharedStrings,
		Target: "sharedStrings.xml",
	})

	return writeXMLToZip(zw, "xl/_rels/workbook.xml.rels", rels)
}

// --- App Properties ---

func (w *writer) writeAppProperties(zw *zip.Writer) error {
	props := w.workbook.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="%s" xmlns:vt="%s">
  <Application>GoOffice v%s</Application>
  <Company>%s</Company>
  <AppVersion>%s</AppVersion>
</Properties>`, nsExtProperties, nsVTypes, Version, xmlEscape(props.Company), Version)
	return writeRawXMLToZip(zw, "docProps/app.xml", content)
}

// --- Core Properties ---

func (w *writer) writeCoreProperties(zw *zip.Writer) error {
	props := w.workbook.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:creator>%s</dc:creator>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <dc:title>%s</dc:title>
  <dc:description>%s</dc:description>
  <dc:subject>%s</dc:subject>
  <cp:keywords>%s</cp:keywords>
  <cp:category>%s</cp:category>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(props.Creator),
		xmlEscape(props.LastModifiedBy),
		xmlEscape(props.Title),
		xmlEscape(props.Description),
		xmlEscape(props.Subject),
		xmlEscape(props.Keywords),
		xmlEscape(props.Category),
		props.Created.UTC().Format("2006-01-02T15:04:05Z"),
		props.Modified.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return writeRawXMLToZip(zw, "docProps/core.xml", content)
}

// --- Workbook ---

func (w *writer) writeWorkbook(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<workbook xmlns="%s" xmlns:r="%s">`, nsSpreadsheetML, nsOfficeDocRels))
	b.WriteString(`<workbookPr/>`)
	b.WriteString(`<bookViews><workbookView xWindow="0" yWindow="0" windowWidth="16384" windowHeight="8192"/></bookViews>`)

	b.WriteString(`<sheets>`)
	for i, sheet := range w.workbook.sheets {
		b.WriteString(fmt.Sprintf(`<sheet name="%s" sheetId="%d" r:id="rId%d"/>`,
			xmlEscape(sheet.name), i+1, i+1))
	}
	b.WriteString(`</sheets>`)

	var defined []string
	for i, sheet := range w.workbook.sheets {
		if sheet.printTitleRows == "" {
			continue
		}
		defined = append(defined, fmt.Sprintf(
			`<definedName name="_xlnm.Print_Titles" localSheetId="%d">%s</definedName>`,
			i, printTitlesRef(sheet.name, sheet.printTitleRows)))
	}
	if len(defined) > 0 {
		b.WriteString(`<definedNames>` + strings.Join(defined, "") + `</definedNames>`)
	}

	if w.hasFormulas {
		// Formula cells carry no cached values, so the application must
		// recalculate on open.
		b.WriteString(`<calcPr calcId="124519" fullCalcOnLoad="1"/>`)
	} else {
		b.WriteString(`<calcPr calcId="124519"/>`)
	}
	b.WriteString(`</workbook>`)
	return writeRawXMLToZip(zw, "xl/workbook.xml", b.String())
}

// printTitlesRef builds the defined-name value for repeated print rows:
// 'Sheet Name'!$1:$1. Single quotes inside the sheet name are doubled.
func printTitlesRef(sheetName, span string) string {
	parts := strings.SplitN(span, ":", 2)
	if len(parts) != 2 {
		parts = []string{span, span}
	}
	quoted := strings.ReplaceAll(sheetName, "'", "''")
	return fmt.Sprintf("'%s'!$%s:$%s", xmlEscape(quoted), parts[0], parts[1])
}

// --- Shared Strings ---

// sharedStrings interns workbook strings in first-seen order.
type sharedStrings struct {
	index map[string]int
	items []string
	refs  int
}

func newSharedStrings() *sharedStrings {
	return &sharedStrings{index: make(map[string]int)}
}

// add interns v and returns its table index, counting the reference.
func (s *sharedStrings) add(v string) int {
	s.refs++
	if idx, ok := s.index[v]; ok {
		return idx
	}
	idx := len(s.items)
	s.index[v] = idx
	s.items = append(s.items, v)
	return idx
}

// lookup returns the table index assigned by a prior add.
func (s *sharedStrings) lookup(v string) int {
	return s.index[v]
}

func (w *writer) writeSharedStrings(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<sst xmlns="%s" count="%d" uniqueCount="%d">`,
		nsSpreadsheetML, w.sst.refs, len(w.sst.items)))
	for _, item := range w.sst.items {
		if item != strings.TrimSpace(item) {
			b.WriteString(fmt.Sprintf(`<si><t xml:space="preserve">%s</t></si>`, xmlEscape(item)))
		} else {
			b.WriteString(fmt.Sprintf(`<si><t>%s</t></si>`, xmlEscape(item)))
		}
	}
	b.WriteString(`</sst>`)
	return writeRawXMLToZip(zw, "xl/sharedStrings.xml", b.String())
}
