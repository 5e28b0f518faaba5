package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"strings"

	// Decoders registered for probing intrinsic image sizes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// writeDocument writes word/document.xml. Each section's blocks are
// followed by its sectPr: mid-document section properties ride inside
// an empty paragraph, the final section's close the body directly.
func (w *writer) writeDocument(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<w:document xmlns:w="%s" xmlns:r="%s" xmlns:wp="%s" xmlns:a="%s" xmlns:pic="%s">`,
		nsWordML, nsOfficeDocRels, nsWordDrawing, nsDrawingML, nsPicture))
	b.WriteString(`<w:body>`)

	sections := w.document.sections
	for i, section := range sections {
		for _, block := range section.blocks {
			switch blk := block.(type) {
			case *Paragraph:
				b.WriteString(w.paragraphXML(blk))
			case *Table:
				b.WriteString(w.tableXML(blk, section.contentWidth()))
			}
		}
		sectPr := w.sectPrXML(section)
		if i < len(sections)-1 {
			b.WriteString(`<w:p><w:pPr>` + sectPr + `</w:pPr></w:p>`)
		} else {
			b.WriteString(sectPr)
		}
	}

	b.WriteString(`</w:body>`)
	b.WriteString(`</w:document>`)
	return writeRawXMLToZip(zw, "word/document.xml", b.String())
}

// sectPrXML renders section properties: page size, margins and the
// shared header/footer references.
func (w *writer) sectPrXML(s *Section) string {
	var b strings.Builder
	b.WriteString(`<w:sectPr>`)
	if w.needHeader {
		b.WriteString(fmt.Sprintf(`<w:headerReference w:type="default" r:id="rId%d"/>`, w.headerRelID))
	}
	if w.needFooter {
		b.WriteString(fmt.Sprintf(`<w:footerReference w:type="default" r:id="rId%d"/>`, w.footerRelID))
	}
	if s.orientation == OrientationLandscape {
		b.WriteString(fmt.Sprintf(`<w:pgSz w:w="%d" w:h="%d" w:orient="landscape"/>`, s.pageWidth, s.pageHeight))
	} else {
		b.WriteString(fmt.Sprintf(`<w:pgSz w:w="%d" w:h="%d"/>`, s.pageWidth, s.pageHeight))
	}
	b.WriteString(fmt.Sprintf(`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="%d" w:footer="%d" w:gutter="0"/>`,
		s.marginTop, s.marginRight, s.marginBottom, s.marginLeft, defaultHeaderDist, defaultHeaderDist))
	b.WriteString(`<w:cols w:space="708"/>`)
	b.WriteString(`<w:docGrid w:linePitch="360"/>`)
	b.WriteString(`</w:sectPr>`)
	return b.String()
}

func (w *writer) paragraphXML(p *Paragraph) string {
	props := paragraphPropsXML(p)
	if props == "" && len(p.runs) == 0 {
		return `<w:p/>`
	}
	var b strings.Builder
	b.WriteString(`<w:p>`)
	b.WriteString(props)
	for _, el := range p.runs {
		b.WriteString(w.runXML(el))
	}
	b.WriteString(`</w:p>`)
	return b.String()
}

// paragraphPropsXML renders pPr children in schema order: pStyle,
// numPr, pBdr, shd, spacing, ind, jc.
func paragraphPropsXML(p *Paragraph) string {
	var b strings.Builder
	if p.style != "" {
		b.WriteString(fmt.Sprintf(`<w:pStyle w:val="%s"/>`, xmlEscape(p.style)))
	}
	if p.numID > 0 {
		b.WriteString(fmt.Sprintf(`<w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr>`, p.listLevel, p.numID))
	}
	if p.topBorder != nil || p.leftBorder != nil || p.bottomBorder != nil || p.rightBorder != nil {
		b.WriteString(`<w:pBdr>`)
		edges := []struct {
			name string
			edge *borderEdge
		}{
			{"top", p.topBorder},
			{"left", p.leftBorder},
			{"bottom", p.bottomBorder},
			{"right", p.rightBorder},
		}
		for _, e := range edges {
			if e.edge == nil {
				continue
			}
			color := normalizeHex(e.edge.color)
			if color == "" {
				color = "auto"
			}
			b.WriteString(fmt.Sprintf(`<w:%s w:val="single" w:sz="%d" w:space="%d" w:color="%s"/>`,
				e.name, e.edge.size, e.edge.space, color))
		}
		b.WriteString(`</w:pBdr>`)
	}
	if fill := normalizeHex(p.shading); fill != "" {
		b.WriteString(fmt.Sprintf(`<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, fill))
	}
	var spacing strings.Builder
	if p.spaceBefore >= 0 {
		spacing.WriteString(fmt.Sprintf(` w:before="%d"`, pointsToTwips(p.spaceBefore)))
	}
	if p.spaceAfter >= 0 {
		spacing.WriteString(fmt.Sprintf(` w:after="%d"`, pointsToTwips(p.spaceAfter)))
	}
	if p.lineSpacing > 0 {
		spacing.WriteString(fmt.Sprintf(` w:line="%d" w:lineRule="auto"`, int(p.lineSpacing*240)))
	}
	if spacing.Len() > 0 {
		b.WriteString(`<w:spacing` + spacing.String() + `/>`)
	}
	var ind strings.Builder
	if p.leftIndent > 0 {
		ind.WriteString(fmt.Sprintf(` w:left="%d"`, cmToTwips(p.leftIndent)))
	}
	if p.firstLineIndent > 0 {
		ind.WriteString(fmt.Sprintf(` w:firstLine="%d"`, cmToTwips(p.firstLineIndent)))
	}
	if ind.Len() > 0 {
		b.WriteString(`<w:ind` + ind.String() + `/>`)
	}
	if p.alignment != "" {
		b.WriteString(fmt.Sprintf(`<w:jc w:val="%s"/>`, jcValue(p.alignment)))
	}
	if b.Len() == 0 {
		return ""
	}
	return `<w:pPr>` + b.String() + `</w:pPr>`
}

// jcValue maps the package alignment names onto ST_Jc. Word spells
// justified text "both".
func jcValue(alignment string) string {
	if alignment == AlignJustify {
		return "both"
	}
	return alignment
}

func (w *writer) runXML(el runElement) string {
	switch r := el.(type) {
	case *Run:
		return textRunXML(r)
	case *ImageRun:
		return w.imageRunXML(r)
	case *fieldRun:
		return fmt.Sprintf(`<w:r><w:fldChar w:fldCharType="%s"/></w:r>`, r.charType)
	case *instrRun:
		return fmt.Sprintf(`<w:r><w:instrText xml:space="preserve">%s</w:instrText></w:r>`, xmlEscape(r.instr))
	case *breakRun:
		if r.page {
			return `<w:r><w:br w:type="page"/></w:r>`
		}
		return `<w:r><w:br/></w:r>`
	}
	return ""
}

// textRunXML renders a formatted run. Embedded newlines become soft
// line breaks between the text segments.
func textRunXML(r *Run) string {
	var b strings.Builder
	b.WriteString(`<w:r>`)
	b.WriteString(runPropsXML(r))
	for i, segment := range strings.Split(r.text, "\n") {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		if segment != "" {
			b.WriteString(`<w:t xml:space="preserve">` + xmlEscape(segment) + `</w:t>`)
		}
	}
	b.WriteString(`</w:r>`)
	return b.String()
}

// runPropsXML renders rPr children in schema order: rFonts, b, i,
// strike, color, sz, szCs, u.
func runPropsXML(r *Run) string {
	var b strings.Builder
	if r.fontName != "" {
		name := xmlEscape(r.fontName)
		b.WriteString(fmt.Sprintf(`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:eastAsia="%s" w:cs="%s"/>`, name, name, name, name))
	}
	if r.bold {
		b.WriteString(`<w:b/>`)
	}
	if r.italic {
		b.WriteString(`<w:i/>`)
	}
	if r.strike {
		b.WriteString(`<w:strike/>`)
	}
	if c := normalizeHex(r.color); c != "" {
		b.WriteString(fmt.Sprintf(`<w:color w:val="%s"/>`, c))
	}
	if r.fontSize > 0 {
		hp := halfPoints(r.fontSize)
		b.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, hp, hp))
	}
	if r.underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if b.Len() == 0 {
		return ""
	}
	return `<w:rPr>` + b.String() + `</w:rPr>`
}

// imageRunXML renders an inline picture drawing. The relationship id
// is assigned in prepare; the drawing id only has to be unique within
// the document.
func (w *writer) imageRunXML(ir *ImageRun) string {
	cx, cy := imageExtent(ir)
	w.drawingSeq++
	id := w.drawingSeq
	name := fmt.Sprintf("Picture %d", id)

	var b strings.Builder
	b.WriteString(`<w:r><w:drawing>`)
	b.WriteString(`<wp:inline distT="0" distB="0" distL="0" distR="0">`)
	b.WriteString(fmt.Sprintf(`<wp:extent cx="%d" cy="%d"/>`, cx, cy))
	b.WriteString(fmt.Sprintf(`<wp:docPr id="%d" name="%s"/>`, id, name))
	b.WriteString(fmt.Sprintf(`<a:graphic><a:graphicData uri="%s">`, nsPicture))
	b.WriteString(`<pic:pic>`)
	b.WriteString(fmt.Sprintf(`<pic:nvPicPr><pic:cNvPr id="%d" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`, id, name))
	b.WriteString(fmt.Sprintf(`<pic:blipFill><a:blip r:embed="rId%d"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, ir.relID))
	b.WriteString(`<pic:spPr><a:xfrm><a:off x="0" y="0"/>`)
	b.WriteString(fmt.Sprintf(`<a:ext cx="%d" cy="%d"/>`, cx, cy))
	b.WriteString(`</a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`)
	b.WriteString(`</pic:pic>`)
	b.WriteString(`</a:graphicData></a:graphic>`)
	b.WriteString(`</wp:inline>`)
	b.WriteString(`</w:drawing></w:r>`)
	return b.String()
}

// imageExtent resolves the display size of a picture in EMU. Explicit
// dimensions win; a missing one is derived from the intrinsic pixel
// size at 96 DPI, falling back to a 4:3 box when the data cannot be
// decoded.
func imageExtent(ir *ImageRun) (int64, int64) {
	cw, ch := ir.width, ir.height
	if cw > 0 && ch > 0 {
		return cw, ch
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(ir.data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		switch {
		case cw > 0:
			return cw, cw * 3 / 4
		case ch > 0:
			return ch * 4 / 3, ch
		default:
			cw = Inch(5)
			return cw, cw * 3 / 4
		}
	}

	px := int64(cfg.Width)
	py := int64(cfg.Height)
	switch {
	case cw > 0:
		return cw, cw * py / px
	case ch > 0:
		return ch * px / py, ch
	default:
		return px * emuPerPixel, py * emuPerPixel
	}
}

func (w *writer) tableXML(t *Table, contentWidth int) string {
	rows := t.Rows()
	cols := t.Cols()
	if rows == 0 || cols == 0 {
		return ""
	}
	widths := tableGridWidths(t, contentWidth)

	var b strings.Builder
	b.WriteString(`<w:tbl>`)
	b.WriteString(`<w:tblPr>`)
	b.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	if t.alignment != "" {
		b.WriteString(fmt.Sprintf(`<w:jc w:val="%s"/>`, jcValue(t.alignment)))
	}
	b.WriteString(`<w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b.WriteString(fmt.Sprintf(`<w:%s w:val="single" w:sz="4" w:space="0" w:color="auto"/>`, edge))
	}
	b.WriteString(`</w:tblBorders>`)
	b.WriteString(`</w:tblPr>`)

	b.WriteString(`<w:tblGrid>`)
	for _, width := range widths {
		b.WriteString(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, width))
	}
	b.WriteString(`</w:tblGrid>`)

	for r := 0; r < rows; r++ {
		b.WriteString(`<w:tr>`)
		for c := 0; c < cols; c++ {
			cell := t.cells[r][c]
			b.WriteString(`<w:tc><w:tcPr>`)
			b.WriteString(fmt.Sprintf(`<w:tcW w:w="%d" w:type="dxa"/>`, widths[c]))
			if fill := normalizeHex(cell.shading); fill != "" {
				b.WriteString(fmt.Sprintf(`<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, fill))
			}
			b.WriteString(`</w:tcPr>`)
			b.WriteString(w.paragraphXML(cell.paragraph))
			b.WriteString(`</w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}

	b.WriteString(`</w:tbl>`)
	return b.String()
}

// tableGridWidths resolves column widths in twips: explicit widths
// first, then an even split of the leftover content width.
func tableGridWidths(t *Table, contentWidth int) []int {
	cols := t.Cols()
	widths := make([]int, cols)
	used := 0
	for i := range t.colWidths {
		widths[i] = t.colWidths[i]
		used += widths[i]
	}
	rest := cols - len(t.colWidths)
	if rest > 0 {
		share := (contentWidth - used) / rest
		if share < 1 {
			share = 1
		}
		for i := len(t.colWidths); i < cols; i++ {
			widths[i] = share
		}
	}
	return widths
}

// dimRunProps is the muted 9pt styling shared by header and footer
// text, including the page number field runs so the footer reads as
// one piece.
const dimRunProps = `<w:rPr><w:color w:val="808080"/><w:sz w:val="18"/><w:szCs w:val="18"/></w:rPr>`

// writeHeader writes word/header1.xml: one centered paragraph carrying
// the header text and, oversized and pale, the watermark text.
func (w *writer) writeHeader(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<w:hdr xmlns:w="%s">`, nsWordML))
	b.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)
	if w.document.headerText != "" {
		b.WriteString(`<w:r>` + dimRunProps + `<w:t xml:space="preserve">` + xmlEscape(w.document.headerText) + `</w:t></w:r>`)
	}
	if w.document.watermark != "" {
		if w.document.headerText != "" {
			b.WriteString(`<w:r><w:br/></w:r>`)
		}
		b.WriteString(`<w:r><w:rPr><w:b/><w:color w:val="DCDCDC"/><w:sz w:val="96"/><w:szCs w:val="96"/></w:rPr>`)
		b.WriteString(`<w:t xml:space="preserve">` + xmlEscape(w.document.watermark) + `</w:t></w:r>`)
	}
	b.WriteString(`</w:p></w:hdr>`)
	return writeRawXMLToZip(zw, "word/header1.xml", b.String())
}

// writeFooter writes word/footer1.xml: footer text and the PAGE field
// in one centered paragraph.
func (w *writer) writeFooter(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<w:ftr xmlns:w="%s">`, nsWordML))
	b.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)
	if w.document.footerText != "" {
		text := w.document.footerText
		if w.document.pageNumbers {
			text += "  "
		}
		b.WriteString(`<w:r>` + dimRunProps + `<w:t xml:space="preserve">` + xmlEscape(text) + `</w:t></w:r>`)
	}
	if w.document.pageNumbers {
		b.WriteString(`<w:r>` + dimRunProps + `<w:fldChar w:fldCharType="begin"/></w:r>`)
		b.WriteString(`<w:r>` + dimRunProps + `<w:instrText xml:space="preserve"> PAGE </w:instrText></w:r>`)
		b.WriteString(`<w:r>` + dimRunProps + `<w:fldChar w:fldCharType="end"/></w:r>`)
	}
	b.WriteString(`</w:p></w:ftr>`)
	return writeRawXMLToZip(zw, "word/footer1.xml", b.String())
}
