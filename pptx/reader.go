package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// maxZipEntrySize is the maximum allowed size for a single file extracted from a ZIP.
// This prevents zip bomb attacks. 50 MB is generous for any legitimate PPTX part.
const maxZipEntrySize = 50 << 20 // 50 MB

// maxZipTotalSize is the cumulative limit for all extracted content from a single ZIP.
const maxZipTotalSize = 200 << 20 // 200 MB

// maxZipEntries is the maximum number of files allowed in a ZIP archive.
const maxZipEntries = 10000

func readPPTXFile(path string) (*Presentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return readPPTX(f, info.Size())
}

func readPPTX(reader io.ReaderAt, size int64) (*Presentation, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid reader size: %d", size)
	}
	if size > int64(maxZipTotalSize) {
		return nil, fmt.Errorf("file size %d exceeds maximum allowed (%d bytes)", size, maxZipTotalSize)
	}

	zr, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}

	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("zip archive contains too many entries (%d > %d)", len(zr.File), maxZipEntries)
	}

	pres := &Presentation{
		properties:             NewDocumentProperties(),
		presentationProperties: NewPresentationProperties(),
		slides:                 make([]*Slide, 0),
		layout:                 NewDocumentLayout(),
	}

	// Property parts are non-fatal: a package without them is still a deck.
	readCoreProperties(zr, pres)
	readAppProperties(zr, pres)
	readCustomProperties(zr, pres)
	readViewProps(zr, pres)

	slideRelIDs, err := readPresentationPart(zr, pres)
	if err != nil {
		return nil, err
	}

	presRels, err := readRelationships(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}

	for _, relID := range slideRelIDs {
		rel := findRelByID(presRels, relID)
		if rel == nil {
			continue
		}
		target := rel.Target
		if !strings.HasPrefix(target, "ppt/") {
			target = "ppt/" + target
		}

		slide, err := readSlidePart(zr, target)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", target, err)
		}
		pres.slides = append(pres.slides, slide)
	}

	return pres, nil
}

func readFileFromZip(zr *zip.Reader, name string) ([]byte, error) {
	if len(zr.File) > maxZipEntries {
		return nil, fmt.Errorf("zip archive contains too many entries (%d > %d)", len(zr.File), maxZipEntries)
	}
	for _, f := range zr.File {
		if f.Name == name {
			if f.UncompressedSize64 > maxZipEntrySize {
				return nil, fmt.Errorf("file %s exceeds maximum allowed size (%d bytes)", name, maxZipEntrySize)
			}
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open %s in zip: %w", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(io.LimitReader(rc, int64(maxZipEntrySize)+1))
			if err != nil {
				return nil, fmt.Errorf("failed to read %s from zip: %w", name, err)
			}
			if int64(len(data)) > int64(maxZipEntrySize) {
				return nil, fmt.Errorf("file %s actual size exceeds maximum allowed size", name)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("file not found in zip: %s", name)
}

// --- Relationship reading ---

type xmlRelForRead struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type xmlRelsForRead struct {
	XMLName       xml.Name        `xml:"Relationships"`
	Relationships []xmlRelForRead `xml:"Relationship"`
}

func readRelationships(zr *zip.Reader, path string) ([]xmlRelForRead, error) {
	data, err := readFileFromZip(zr, path)
	if err != nil {
		return nil, nil // relationships file may not exist
	}

	var rels xmlRelsForRead
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships %s: %w", path, err)
	}
	return rels.Relationships, nil
}

func findRelByID(rels []xmlRelForRead, id string) *xmlRelForRead {
	for i := range rels {
		if rels[i].ID == id {
			return &rels[i]
		}
	}
	return nil
}

// resolvePartPath resolves a relationship target relative to the part that
// declared it. The resulting path never escapes the package root.
func resolvePartPath(partPath, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	dir := ""
	if idx := strings.LastIndex(partPath, "/"); idx >= 0 {
		dir = partPath[:idx]
	}
	parts := []string{}
	if dir != "" {
		parts = strings.Split(dir, "/")
	}
	for _, seg := range strings.Split(target, "/") {
		switch seg {
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		case ".", "":
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

// --- Attribute helpers ---

func attrVal(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func attrInt(se xml.StartElement, local string) int {
	v, _ := strconv.Atoi(attrVal(se, local))
	return v
}

func attrInt64(se xml.StartElement, local string) int64 {
	v, _ := strconv.ParseInt(attrVal(se, local), 10, 64)
	return v
}

// --- Document and presentation properties ---

type xmlCorePropsForRead struct {
	Title          string `xml:"title"`
	Subject        string `xml:"subject"`
	Creator        string `xml:"creator"`
	Keywords       string `xml:"keywords"`
	Description    string `xml:"description"`
	LastModifiedBy string `xml:"lastModifiedBy"`
	Revision       string `xml:"revision"`
	Category       string `xml:"category"`
	ContentStatus  string `xml:"contentStatus"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
}

func readCoreProperties(zr *zip.Reader, pres *Presentation) {
	data, err := readFileFromZip(zr, "docProps/core.xml")
	if err != nil {
		return
	}
	var cp xmlCorePropsForRead
	if err := xml.Unmarshal(data, &cp); err != nil {
		return
	}
	props := pres.properties
	props.Title = cp.Title
	props.Subject = cp.Subject
	props.Creator = cp.Creator
	props.Keywords = cp.Keywords
	props.Description = cp.Description
	props.LastModifiedBy = cp.LastModifiedBy
	props.Revision = cp.Revision
	props.Category = cp.Category
	if t, err := time.Parse(time.RFC3339, cp.Created); err == nil {
		props.Created = t
	}
	if t, err := time.Parse(time.RFC3339, cp.Modified); err == nil {
		props.Modified = t
	}
	if cp.ContentStatus == "Final" {
		pres.presentationProperties.MarkAsFinal(true)
	}
}

type xmlAppPropsForRead struct {
	Company string `xml:"Company"`
}

func readAppProperties(zr *zip.Reader, pres *Presentation) {
	data, err := readFileFromZip(zr, "docProps/app.xml")
	if err != nil {
		return
	}
	var ap xmlAppPropsForRead
	if err := xml.Unmarshal(data, &ap); err != nil {
		return
	}
	pres.properties.Company = ap.Company
}

func readCustomProperties(zr *zip.Reader, pres *Presentation) {
	data, err := readFileFromZip(zr, "docProps/custom.xml")
	if err != nil {
		return
	}
	d := xml.NewDecoder(bytes.NewReader(data))
	var name string
	var valueKind string
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "property":
				name = attrVal(t, "name")
			case "bool", "i4", "r8", "lpwstr":
				valueKind = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if valueKind != "" {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "bool", "i4", "r8", "lpwstr":
				setCustomPropertyFromXML(pres.properties, name, valueKind, text.String())
				valueKind = ""
			case "property":
				name = ""
			}
		}
	}
}

func setCustomPropertyFromXML(props *DocumentProperties, name, kind, raw string) {
	if name == "" {
		return
	}
	switch kind {
	case "bool":
		props.SetCustomProperty(name, raw == "true" || raw == "1", PropertyTypeBoolean)
	case "i4":
		if v, err := strconv.Atoi(raw); err == nil {
			props.SetCustomProperty(name, v, PropertyTypeInteger)
		}
	case "r8":
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			props.SetCustomProperty(name, v, PropertyTypeFloat)
		}
	default:
		props.SetCustomProperty(name, raw, PropertyTypeString)
	}
}

func readViewProps(zr *zip.Reader, pres *Presentation) {
	data, err := readFileFromZip(zr, "ppt/viewProps.xml")
	if err != nil {
		return
	}
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "sx" {
			n := attrInt(se, "n")
			dv := attrInt(se, "d")
			if n > 0 && dv > 0 {
				pres.presentationProperties.SetZoom(float64(n) / float64(dv))
			}
			return
		}
	}
}

// readPresentationPart parses ppt/presentation.xml and returns the slide
// relationship IDs in presentation order.
func readPresentationPart(zr *zip.Reader, pres *Presentation) ([]string, error) {
	data, err := readFileFromZip(zr, "ppt/presentation.xml")
	if err != nil {
		return nil, fmt.Errorf("failed to read presentation.xml: %w", err)
	}

	var relIDs []string
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse presentation.xml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "sldId":
			// The relationship reference carries a namespace; the numeric
			// slide id attribute does not.
			for _, a := range se.Attr {
				if a.Name.Local == "id" && a.Name.Space != "" {
					relIDs = append(relIDs, a.Value)
				}
			}
		case "sldSz":
			cx := attrInt64(se, "cx")
			cy := attrInt64(se, "cy")
			if cx > 0 && cy > 0 {
				pres.layout.CX = cx
				pres.layout.CY = cy
				if name := attrVal(se, "type"); name != "" {
					pres.layout.Name = name
				} else {
					pres.layout.Name = LayoutCustom
				}
			}
		}
	}
	return relIDs, nil
}

// --- Slide parsing ---

// slideContext carries what shape parsers need to resolve relationship
// targets: the ZIP, the slide's rels, and the slide part path.
type slideContext struct {
	zr   *zip.Reader
	rels []xmlRelForRead
	path string
}

func (c *slideContext) relTarget(id string) string {
	rel := findRelByID(c.rels, id)
	if rel == nil {
		return ""
	}
	if rel.TargetMode == "External" {
		return rel.Target
	}
	return resolvePartPath(c.path, rel.Target)
}

func readSlidePart(zr *zip.Reader, path string) (*Slide, error) {
	data, err := readFileFromZip(zr, path)
	if err != nil {
		return nil, err
	}

	relsPath := strings.Replace(path, "slides/", "slides/_rels/", 1) + ".rels"
	rels, _ := readRelationships(zr, relsPath)
	ctx := &slideContext{zr: zr, rels: rels, path: path}

	slide := newSlide()
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "sld":
			if attrVal(se, "show") == "0" {
				slide.visible = false
			}
		case "bg":
			fill, err := parseBackground(d, se)
			if err != nil {
				return nil, err
			}
			if fill != nil {
				slide.background = fill
			}
		case "sp", "pic", "cxnSp", "graphicFrame", "grpSp":
			shape, err := parseShapeElement(d, se, ctx)
			if err != nil {
				return nil, err
			}
			if shape != nil {
				slide.shapes = append(slide.shapes, shape)
			}
		}
	}

	readSlideNotes(ctx, slide)
	return slide, nil
}

func readSlideNotes(ctx *slideContext, slide *Slide) {
	for _, rel := range ctx.rels {
		if rel.Type != relTypeNotesSlide {
			continue
		}
		target := resolvePartPath(ctx.path, rel.Target)
		data, err := readFileFromZip(ctx.zr, target)
		if err != nil {
			continue
		}
		slide.notes = parseNotesText(data)
	}
}

// parseNotesText extracts the concatenated run text from a notes slide part.
func parseNotesText(data []byte) string {
	d := xml.NewDecoder(bytes.NewReader(data))
	var inText bool
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		}
	}
	return sb.String()
}

// parseShapeElement dispatches one shape subtree to its parser. The
// decoder is consumed through the shape's end element.
func parseShapeElement(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (Shape, error) {
	switch se.Name.Local {
	case "sp":
		return parseSp(d, se, ctx)
	case "pic":
		return parsePic(d, se, ctx)
	case "cxnSp":
		return parseCxnSp(d, se)
	case "graphicFrame":
		return parseGraphicFrame(d, se, ctx)
	case "grpSp":
		return parseGrpSp(d, se, ctx)
	}
	return nil, d.Skip()
}

// geometry captures an <a:xfrm> as it is parsed.
type geometry struct {
	offX, offY   int64
	extX, extY   int64
	chOffX, chOffY int64
	chExtX, chExtY int64
	rotation     int
	flipH, flipV bool
}

func (g *geometry) applyTo(b *BaseShape) {
	b.SetPosition(g.offX, g.offY)
	b.SetSize(g.extX, g.extY)
	if g.rotation != 0 {
		b.SetRotation(g.rotation / 60000)
	}
	b.SetFlipHorizontal(g.flipH)
	b.SetFlipVertical(g.flipV)
}

// parseXfrm consumes an <a:xfrm> (or <p:xfrm>) element.
func parseXfrm(d *xml.Decoder, se xml.StartElement) (*geometry, error) {
	g := &geometry{}
	g.rotation = attrInt(se, "rot")
	g.flipH = attrVal(se, "flipH") == "1"
	g.flipV = attrVal(se, "flipV") == "1"
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "off":
				g.offX = attrInt64(t, "x")
				g.offY = attrInt64(t, "y")
			case "ext":
				g.extX = attrInt64(t, "cx")
				g.extY = attrInt64(t, "cy")
			case "chOff":
				g.chOffX = attrInt64(t, "x")
				g.chOffY = attrInt64(t, "y")
			case "chExt":
				g.chExtX = attrInt64(t, "cx")
				g.chExtY = attrInt64(t, "cy")
			}
		case xml.EndElement:
			if t.Name.Local == "xfrm" {
				return g, nil
			}
		}
	}
}

// parseSolidFill consumes an <a:solidFill> and returns its color.
func parseSolidFill(d *xml.Decoder, se xml.StartElement) (Color, error) {
	var c Color
	for {
		tok, err := d.Token()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "srgbClr" {
				c = NewColor(attrVal(t, "val"))
			}
		case xml.EndElement:
			if t.Name.Local == "solidFill" {
				return c, nil
			}
		}
	}
}

// parseGradFill consumes an <a:gradFill> and returns a linear gradient fill.
func parseGradFill(d *xml.Decoder, se xml.StartElement) (*Fill, error) {
	var stops []GradientStop
	rotation := 0
	pos := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gs":
				pos = attrInt(t, "pos")
			case "srgbClr":
				stops = append(stops, GradientStop{Color: NewColor(attrVal(t, "val")), Position: pos})
			case "lin":
				rotation = attrInt(t, "ang") / 60000
			}
		case xml.EndElement:
			if t.Name.Local == "gradFill" {
				f := &Fill{Type: FillGradientLinear, Stops: stops, Rotation: rotation}
				if len(stops) > 0 {
					f.Color = stops[0].Color
					f.EndColor = stops[len(stops)-1].Color
				}
				return f, nil
			}
		}
	}
}

func parseBackground(d *xml.Decoder, se xml.StartElement) (*Fill, error) {
	var fill *Fill
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "solidFill":
				c, err := parseSolidFill(d, t)
				if err != nil {
					return nil, err
				}
				fill = &Fill{Type: FillSolid, Color: c}
			case "gradFill":
				f, err := parseGradFill(d, t)
				if err != nil {
					return nil, err
				}
				fill = f
			}
		case xml.EndElement:
			if t.Name.Local == "bg" {
				return fill, nil
			}
		}
	}
}

// parseLn consumes an <a:ln> and returns the equivalent border.
func parseLn(d *xml.Decoder, se xml.StartElement) (*Border, error) {
	b := &Border{Style: BorderSolid, Width: attrInt(se, "w")}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "srgbClr":
				b.Color = NewColor(attrVal(t, "val"))
			case "prstDash":
				switch attrVal(t, "val") {
				case "dash":
					b.Style = BorderDash
				case "dot":
					b.Style = BorderDot
				}
			}
		case xml.EndElement:
			if t.Name.Local == "ln" {
				return b, nil
			}
		}
	}
}

// bodyProps captures <a:bodyPr> and paragraph content of a text body.
type bodyProps struct {
	wrap       string
	anchor     string
	columns    int
	fontScale  int
	paragraphs []*Paragraph
}

// parseTxBody consumes a <p:txBody> (or <a:txBody>) element.
func parseTxBody(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (*bodyProps, error) {
	bp := &bodyProps{wrap: "square", columns: 1}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "bodyPr":
				bp.wrap = attrVal(t, "wrap")
				bp.anchor = attrVal(t, "anchor")
				if v := attrInt(t, "numCol"); v > 0 {
					bp.columns = v
				}
			case "normAutofit":
				bp.fontScale = attrInt(t, "fontScale")
			case "lstStyle":
				if err := d.Skip(); err != nil {
					return nil, err
				}
			case "p":
				para, err := parseParagraph(d, t, ctx)
				if err != nil {
					return nil, err
				}
				bp.paragraphs = append(bp.paragraphs, para)
			}
		case xml.EndElement:
			if t.Name.Local == "txBody" {
				return bp, nil
			}
		}
	}
}

// parseParagraph consumes an <a:p> element.
func parseParagraph(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (*Paragraph, error) {
	para := NewParagraph()
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if v := attrVal(t, "algn"); v != "" {
					para.alignment.Horizontal = HorizontalAlignment(v)
				}
				para.alignment.Level = attrInt(t, "lvl")
			case "spcPct":
				para.lineSpacing = -attrInt(t, "val")
			case "spcPts":
				para.lineSpacing = attrInt(t, "val")
			case "spcBef":
				v, err := parseSpcPoints(d, t)
				if err != nil {
					return nil, err
				}
				para.spaceBefore = v
			case "spcAft":
				v, err := parseSpcPoints(d, t)
				if err != nil {
					return nil, err
				}
				para.spaceAfter = v
			case "buNone":
				para.bullet = &Bullet{Type: BulletTypeNone}
			case "buClr":
				c, err := parseBulletColor(d, t)
				if err != nil {
					return nil, err
				}
				ensureBullet(para).Color = &c
			case "buSzPct":
				ensureBullet(para).Size = attrInt(t, "val") / 1000
			case "buFont":
				ensureBullet(para).Font = attrVal(t, "typeface")
			case "buChar":
				b := ensureBullet(para)
				b.Type = BulletTypeChar
				b.Style = attrVal(t, "char")
			case "buAutoNum":
				b := ensureBullet(para)
				b.Type = BulletTypeNumeric
				b.NumFormat = attrVal(t, "type")
				b.StartAt = attrInt(t, "startAt")
				if b.StartAt == 0 {
					b.StartAt = 1
				}
			case "r":
				run, err := parseRun(d, t, ctx)
				if err != nil {
					return nil, err
				}
				para.elements = append(para.elements, run)
			case "br":
				para.elements = append(para.elements, &BreakElement{})
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return para, nil
			}
		}
	}
}

// parseSpcPoints consumes <a:spcBef> or <a:spcAft> and returns its spcPts value.
func parseSpcPoints(d *xml.Decoder, se xml.StartElement) (int, error) {
	v := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return 0, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "spcPts" {
				v = attrInt(t, "val")
			}
		case xml.EndElement:
			if t.Name.Local == se.Name.Local {
				return v, nil
			}
		}
	}
}

func parseBulletColor(d *xml.Decoder, se xml.StartElement) (Color, error) {
	var c Color
	for {
		tok, err := d.Token()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "srgbClr" {
				c = NewColor(attrVal(t, "val"))
			}
		case xml.EndElement:
			if t.Name.Local == "buClr" {
				return c, nil
			}
		}
	}
}

func ensureBullet(p *Paragraph) *Bullet {
	if p.bullet == nil {
		p.bullet = &Bullet{Type: BulletTypeChar, Size: 100}
	}
	return p.bullet
}

// parseRun consumes an <a:r> element.
func parseRun(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (*TextRun, error) {
	run := &TextRun{font: NewFont()}
	var inText bool
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if sz := attrInt(t, "sz"); sz > 0 {
					run.font.Size = sz / 100
				}
				if attrVal(t, "b") == "1" {
					run.font.Bold = true
				}
				if attrVal(t, "i") == "1" {
					run.font.Italic = true
				}
				if u := attrVal(t, "u"); u != "" {
					run.font.Underline = UnderlineType(u)
				}
				if attrVal(t, "strike") == "sngStrike" {
					run.font.Strikethrough = true
				}
			case "solidFill":
				c, err := parseSolidFill(d, t)
				if err != nil {
					return nil, err
				}
				if c.ARGB != "" {
					run.font.Color = c
				}
			case "latin":
				run.font.Name = attrVal(t, "typeface")
			case "ea":
				run.font.NameEA = attrVal(t, "typeface")
			case "hlinkClick":
				hl := &Hyperlink{Tooltip: attrVal(t, "tooltip")}
				if ctx != nil {
					hl.URL = ctx.relTarget(attrVal(t, "id"))
				}
				run.hyperlink = hl
			case "t":
				inText = true
				text.Reset()
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
				run.text = text.String()
			case "r":
				return run, nil
			}
		}
	}
}

// parseSp consumes a <p:sp> and returns a RichTextShape or an AutoShape.
// A text box is recognized by the txBox attribute on cNvSpPr.
func parseSp(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (Shape, error) {
	var (
		name, descr string
		txBox       bool
		prst        string
		geom        *geometry
		fill        *Fill
		border      *Border
		body        *bodyProps
	)

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				name = attrVal(t, "name")
				descr = attrVal(t, "descr")
			case "cNvSpPr":
				if attrVal(t, "txBox") == "1" {
					txBox = true
				}
			case "xfrm":
				if geom, err = parseXfrm(d, t); err != nil {
					return nil, err
				}
			case "prstGeom":
				prst = attrVal(t, "prst")
			case "solidFill":
				c, err := parseSolidFill(d, t)
				if err != nil {
					return nil, err
				}
				fill = &Fill{Type: FillSolid, Color: c}
			case "gradFill":
				if fill, err = parseGradFill(d, t); err != nil {
					return nil, err
				}
			case "ln":
				if border, err = parseLn(d, t); err != nil {
					return nil, err
				}
			case "txBody":
				if body, err = parseTxBody(d, t, ctx); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "sp" {
				return buildSpShape(name, descr, txBox, prst, geom, fill, border, body), nil
			}
		}
	}
}

func buildSpShape(name, descr string, txBox bool, prst string, geom *geometry, fill *Fill, border *Border, body *bodyProps) Shape {
	if txBox {
		rt := NewRichTextShape()
		rt.SetName(name)
		rt.SetDescription(descr)
		if geom != nil {
			geom.applyTo(&rt.BaseShape)
		}
		if fill != nil {
			rt.fill = fill
		}
		if border != nil {
			rt.border = border
		}
		if body != nil {
			rt.SetWordWrap(body.wrap != "none")
			rt.SetColumns(body.columns)
			rt.SetTextAnchor(TextAnchorType(body.anchor))
			rt.fontScale = body.fontScale
			if len(body.paragraphs) > 0 {
				rt.paragraphs = body.paragraphs
				rt.activeParagraph = len(body.paragraphs) - 1
			}
		}
		return rt
	}

	as := NewAutoShape()
	as.SetName(name)
	as.SetDescription(descr)
	if prst != "" {
		as.SetAutoShapeType(AutoShapeType(prst))
	}
	if geom != nil {
		geom.applyTo(&as.BaseShape)
	}
	if fill != nil {
		as.fill = fill
	}
	if border != nil {
		as.border = border
	}
	if body != nil {
		as.SetTextAnchor(TextAnchorType(body.anchor))
		if len(body.paragraphs) > 0 {
			p := body.paragraphs[0]
			if p.alignment != nil {
				as.SetTextAlign(p.alignment.Horizontal)
			}
			for _, el := range p.elements {
				if tr, ok := el.(*TextRun); ok {
					as.SetText(tr.text)
					as.font = tr.font
					break
				}
			}
		}
	}
	return as
}

// parsePic consumes a <p:pic> and returns a DrawingShape with the image
// bytes loaded from the package media directory.
func parsePic(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (Shape, error) {
	ds := NewDrawingShape()
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				ds.SetName(attrVal(t, "name"))
				ds.SetDescription(attrVal(t, "descr"))
			case "blip":
				target := ctx.relTarget(attrVal(t, "embed"))
				if target != "" {
					if data, err := readFileFromZip(ctx.zr, target); err == nil {
						ds.SetImageData(data, guessMimeFromPath(target))
					}
				}
			case "xfrm":
				g, err := parseXfrm(d, t)
				if err != nil {
					return nil, err
				}
				g.applyTo(&ds.BaseShape)
			case "outerShdw":
				if err := parseShadow(d, t, ds.GetShadow()); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "pic" {
				return ds, nil
			}
		}
	}
}

// parseShadow consumes an <a:outerShdw> into the shape's shadow settings.
func parseShadow(d *xml.Decoder, se xml.StartElement, shadow *Shadow) error {
	shadow.Visible = true
	shadow.BlurRadius = attrInt(se, "blurRad") / 12700
	shadow.Distance = attrInt(se, "dist") / 12700
	shadow.Direction = attrInt(se, "dir") / 60000
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "srgbClr":
				shadow.Color = NewColor(attrVal(t, "val"))
			case "alpha":
				shadow.Alpha = attrInt(t, "val") / 1000
			}
		case xml.EndElement:
			if t.Name.Local == "outerShdw" {
				return nil
			}
		}
	}
}

// parseCxnSp consumes a <p:cxnSp> and returns a LineShape. The <a:ln>
// element is walked inline because head and tail arrowheads live inside it.
func parseCxnSp(d *xml.Decoder, se xml.StartElement) (Shape, error) {
	ln := NewLineShape()
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				ln.SetName(attrVal(t, "name"))
			case "xfrm":
				g, err := parseXfrm(d, t)
				if err != nil {
					return nil, err
				}
				g.applyTo(&ln.BaseShape)
			case "ln":
				if w := attrInt(t, "w"); w > 0 {
					ln.lineWidthEMU = w
					ln.lineWidth = w / 12700
				}
			case "srgbClr":
				ln.SetLineColor(NewColor(attrVal(t, "val")))
			case "prstDash":
				switch attrVal(t, "val") {
				case "dash":
					ln.SetLineStyle(BorderDash)
				case "dot":
					ln.SetLineStyle(BorderDot)
				}
			case "headEnd":
				ln.SetHeadEnd(parseLineEnd(t))
			case "tailEnd":
				ln.SetTailEnd(parseLineEnd(t))
			}
		case xml.EndElement:
			if t.Name.Local == "cxnSp" {
				return ln, nil
			}
		}
	}
}

func parseLineEnd(se xml.StartElement) *LineEnd {
	le := &LineEnd{
		Type:   ArrowType(attrVal(se, "type")),
		Width:  attrVal(se, "w"),
		Length: attrVal(se, "len"),
	}
	if le.Width == "" {
		le.Width = ArrowSizeMed
	}
	if le.Length == "" {
		le.Length = ArrowSizeMed
	}
	return le
}

// parseGraphicFrame consumes a <p:graphicFrame>, which holds either a
// table or a chart reference.
func parseGraphicFrame(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (Shape, error) {
	var (
		name  string
		geom  *geometry
		shape Shape
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				name = attrVal(t, "name")
			case "xfrm":
				if geom, err = parseXfrm(d, t); err != nil {
					return nil, err
				}
			case "tbl":
				if shape, err = parseTable(d, t, ctx); err != nil {
					return nil, err
				}
			case "chart":
				target := ctx.relTarget(attrVal(t, "id"))
				if target != "" {
					cs, err := readChartPart(ctx.zr, target)
					if err != nil {
						return nil, err
					}
					shape = cs
				}
			}
		case xml.EndElement:
			if t.Name.Local == "graphicFrame" {
				if shape != nil {
					shape.base().SetName(name)
					if geom != nil {
						geom.applyTo(shape.base())
					}
				}
				return shape, nil
			}
		}
	}
}

// parseTable consumes an <a:tbl> element.
func parseTable(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (Shape, error) {
	var (
		colWidths  []int64
		rowHeights []int64
		rows       [][]*TableCell
		currentRow []*TableCell
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "gridCol":
				colWidths = append(colWidths, attrInt64(t, "w"))
			case "tr":
				rowHeights = append(rowHeights, attrInt64(t, "h"))
				currentRow = nil
			case "tc":
				cell, err := parseTableCell(d, t, ctx)
				if err != nil {
					return nil, err
				}
				currentRow = append(currentRow, cell)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tr":
				rows = append(rows, currentRow)
			case "tbl":
				numRows := len(rows)
				numCols := len(colWidths)
				if numRows == 0 || numCols == 0 {
					return nil, fmt.Errorf("table has no rows or columns")
				}
				ts := NewTableShape(numRows, numCols)
				ts.SetColumnWidths(colWidths)
				ts.SetRowHeights(rowHeights)
				for i, row := range rows {
					for j, cell := range row {
						if j < numCols {
							ts.rows[i][j] = cell
						}
					}
				}
				return ts, nil
			}
		}
	}
}

// parseTableCell consumes an <a:tc> element.
func parseTableCell(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (*TableCell, error) {
	cell := NewTableCell()
	var paragraphs []*Paragraph
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para, err := parseParagraph(d, t, ctx)
				if err != nil {
					return nil, err
				}
				paragraphs = append(paragraphs, para)
			case "tcPr":
				cell.anchor = TextAnchorType(attrVal(t, "anchor"))
			case "lnL":
				if cell.border.Left, err = parseCellBorder(d, t); err != nil {
					return nil, err
				}
			case "lnR":
				if cell.border.Right, err = parseCellBorder(d, t); err != nil {
					return nil, err
				}
			case "lnT":
				if cell.border.Top, err = parseCellBorder(d, t); err != nil {
					return nil, err
				}
			case "lnB":
				if cell.border.Bottom, err = parseCellBorder(d, t); err != nil {
					return nil, err
				}
			case "solidFill":
				c, err := parseSolidFill(d, t)
				if err != nil {
					return nil, err
				}
				cell.fill = &Fill{Type: FillSolid, Color: c}
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				if len(paragraphs) > 0 {
					cell.paragraphs = paragraphs
				}
				return cell, nil
			}
		}
	}
}

// parseCellBorder consumes one of <a:lnL>, <a:lnR>, <a:lnT>, <a:lnB>.
func parseCellBorder(d *xml.Decoder, se xml.StartElement) (*Border, error) {
	b := &Border{Style: BorderSolid, Width: attrInt(se, "w")}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "srgbClr":
				b.Color = NewColor(attrVal(t, "val"))
			case "prstDash":
				switch attrVal(t, "val") {
				case "dash":
					b.Style = BorderDash
				case "dot":
					b.Style = BorderDot
				}
			}
		case xml.EndElement:
			if t.Name.Local == se.Name.Local {
				return b, nil
			}
		}
	}
}

// parseGrpSp consumes a <p:grpSp>, recursively parsing child shapes.
func parseGrpSp(d *xml.Decoder, se xml.StartElement, ctx *slideContext) (Shape, error) {
	g := NewGroupShape()
	sawNvPr := false
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "cNvPr":
				// only the group's own cNvPr; children consume theirs
				if !sawNvPr {
					g.SetName(attrVal(t, "name"))
					sawNvPr = true
				}
			case "xfrm":
				geom, err := parseXfrm(d, t)
				if err != nil {
					return nil, err
				}
				geom.applyTo(&g.BaseShape)
				if geom.chExtX > 0 && geom.chExtY > 0 {
					g.SetChildSpace(geom.chOffX, geom.chOffY, geom.chExtX, geom.chExtY)
				}
			case "sp", "pic", "cxnSp", "graphicFrame", "grpSp":
				child, err := parseShapeElement(d, t, ctx)
				if err != nil {
					return nil, err
				}
				if child != nil {
					g.AddShape(child)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "grpSp" {
				return g, nil
			}
		}
	}
}

// --- Chart part parsing ---

// readChartPart parses a ppt/charts/chartN.xml part into a ChartShape.
func readChartPart(zr *zip.Reader, path string) (*ChartShape, error) {
	data, err := readFileFromZip(zr, path)
	if err != nil {
		return nil, err
	}

	cs := NewChartShape()
	cs.legend.Visible = false

	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse chart %s: %w", path, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "title":
			text, err := parseChartTitleText(d, se)
			if err != nil {
				return nil, err
			}
			cs.title.Text = text
			cs.title.Visible = true
		case "autoTitleDeleted":
			if attrVal(se, "val") == "1" {
				cs.title.Visible = false
			}
		case "legend":
			if err := parseChartLegend(d, se, cs.legend); err != nil {
				return nil, err
			}
		case "dispBlanksAs":
			cs.SetDisplayBlankAs(attrVal(se, "val"))
		case "barChart", "lineChart", "areaChart", "pieChart", "doughnutChart", "scatterChart", "radarChart":
			ct, err := parseChartKind(d, se)
			if err != nil {
				return nil, err
			}
			cs.plotArea.SetType(ct)
		case "catAx":
			if err := parseChartAxis(d, se, cs.plotArea.axisX); err != nil {
				return nil, err
			}
		case "valAx":
			if err := parseChartAxis(d, se, cs.plotArea.axisY); err != nil {
				return nil, err
			}
		}
	}
	return cs, nil
}

func parseChartTitleText(d *xml.Decoder, se xml.StartElement) (string, error) {
	var inText bool
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "title":
				return sb.String(), nil
			}
		}
	}
}

func parseChartLegend(d *xml.Decoder, se xml.StartElement, legend *ChartLegend) error {
	legend.Visible = true
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "legendPos" {
				legend.Position = LegendPosition(attrVal(t, "val"))
			}
		case xml.EndElement:
			if t.Name.Local == "legend" {
				return nil
			}
		}
	}
}

func parseChartAxis(d *xml.Decoder, se xml.StartElement, axis *ChartAxis) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "delete":
				axis.Visible = attrVal(t, "val") != "1"
			case "numFmt":
				axis.NumberFormat = attrVal(t, "formatCode")
			case "title":
				text, err := parseChartTitleText(d, t)
				if err != nil {
					return err
				}
				axis.Title = text
			case "min":
				if v, err := strconv.ParseFloat(attrVal(t, "val"), 64); err == nil {
					axis.MinBounds = &v
				}
			case "max":
				if v, err := strconv.ParseFloat(attrVal(t, "val"), 64); err == nil {
					axis.MaxBounds = &v
				}
			case "majorUnit":
				if v, err := strconv.ParseFloat(attrVal(t, "val"), 64); err == nil {
					axis.MajorUnit = &v
				}
			case "minorUnit":
				if v, err := strconv.ParseFloat(attrVal(t, "val"), 64); err == nil {
					axis.MinorUnit = &v
				}
			case "majorTickMark":
				axis.MajorTickMark = attrVal(t, "val")
			case "minorTickMark":
				axis.MinorTickMark = attrVal(t, "val")
			case "tickLblPos":
				axis.TickLabelPos = attrVal(t, "val")
			case "majorGridlines":
				axis.MajorGridlines = NewGridlines()
				if err := d.Skip(); err != nil {
					return err
				}
			case "minorGridlines":
				axis.MinorGridlines = NewGridlines()
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == se.Name.Local {
				return nil
			}
		}
	}
}

// parseChartKind consumes one of the c:*Chart elements and builds the
// corresponding chart type with its series.
func parseChartKind(d *xml.Decoder, se xml.StartElement) (ChartType, error) {
	kind := se.Name.Local
	var (
		series   []*ChartSeries
		barDir   string
		grouping string
		gapWidth int
		overlap  int
		holeSize int
		smooth   bool
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ser":
				s, serSmooth, err := parseChartSeries(d, t)
				if err != nil {
					return nil, err
				}
				series = append(series, s)
				smooth = smooth || serSmooth
			case "barDir":
				barDir = attrVal(t, "val")
			case "grouping":
				grouping = attrVal(t, "val")
			case "gapWidth":
				gapWidth = attrInt(t, "val")
			case "overlap":
				overlap = attrInt(t, "val")
			case "holeSize":
				holeSize = attrInt(t, "val")
			}
		case xml.EndElement:
			if t.Name.Local != kind {
				continue
			}
			switch kind {
			case "barChart":
				c := NewBarChart()
				if barDir != "" {
					c.BarDirection = barDir
				}
				if grouping != "" {
					c.BarGrouping = grouping
				}
				if gapWidth > 0 {
					c.GapWidthPercent = gapWidth
				}
				c.OverlapPercent = overlap
				c.Series = series
				return c, nil
			case "lineChart":
				c := NewLineChart()
				c.IsSmooth = smooth
				c.Series = series
				return c, nil
			case "areaChart":
				c := NewAreaChart()
				if grouping != "" {
					c.Grouping = grouping
				}
				c.Series = series
				return c, nil
			case "pieChart":
				c := NewPieChart()
				c.Series = series
				return c, nil
			case "doughnutChart":
				c := NewDoughnutChart()
				if holeSize > 0 {
					c.HoleSize = holeSize
				}
				c.Series = series
				return c, nil
			case "scatterChart":
				c := NewScatterChart()
				c.IsSmooth = smooth
				c.Series = series
				return c, nil
			default:
				c := NewRadarChart()
				c.Series = series
				return c, nil
			}
		}
	}
}

// parseChartSeries consumes a <c:ser> element. The bool result reports
// whether the series carried smooth="1".
func parseChartSeries(d *xml.Decoder, se xml.StartElement) (*ChartSeries, bool, error) {
	var (
		title      string
		cats       []string
		vals       []float64
		fillColor  Color
		outline    *SeriesOutline
		pointCols  []Color
		marker     *SeriesMarker
		formatCode string
		labelPos   string
		separator  string
		hasSep     bool
		showLgnd   bool
		showVal    bool
		showCat    bool
		showSer    bool
		showPct    bool
		smooth     bool
		section    string // "tx", "cat", "val"
		inValue    bool
		text       strings.Builder
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, false, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tx", "cat", "val", "yVal":
				if t.Name.Local == "yVal" {
					section = "val"
				} else {
					section = t.Name.Local
				}
			case "xVal":
				// scatter X values are written from the category labels
				section = "cat"
			case "dPt":
				c, err := parsePointColor(d, t)
				if err != nil {
					return nil, false, err
				}
				if c.ARGB != "" {
					pointCols = append(pointCols, c)
				}
			case "spPr":
				c, o, err := parseSeriesFill(d, t)
				if err != nil {
					return nil, false, err
				}
				if c.ARGB != "" {
					fillColor = c
				}
				if o != nil {
					outline = o
				}
			case "symbol":
				if marker == nil {
					marker = &SeriesMarker{}
				}
				marker.Symbol = attrVal(t, "val")
			case "size":
				if marker == nil {
					marker = &SeriesMarker{}
				}
				marker.Size = attrInt(t, "val")
			case "dLblPos":
				labelPos = attrVal(t, "val")
			case "showLegendKey":
				showLgnd = attrVal(t, "val") == "1"
			case "showVal":
				showVal = attrVal(t, "val") == "1"
			case "showCatName":
				showCat = attrVal(t, "val") == "1"
			case "showSerName":
				showSer = attrVal(t, "val") == "1"
			case "showPercent":
				showPct = attrVal(t, "val") == "1"
			case "separator":
				inValue = true
				text.Reset()
			case "smooth":
				if attrVal(t, "val") == "1" {
					smooth = true
				}
			case "formatCode":
				if section == "val" {
					inValue = true
					text.Reset()
				}
			case "v":
				inValue = true
				text.Reset()
			}
		case xml.CharData:
			if inValue {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "separator":
				separator = text.String()
				hasSep = true
				inValue = false
			case "formatCode":
				if inValue {
					formatCode = text.String()
					inValue = false
				}
			case "v":
				inValue = false
				switch section {
				case "tx":
					title = text.String()
				case "cat":
					cats = append(cats, text.String())
				case "val":
					if f, err := strconv.ParseFloat(text.String(), 64); err == nil {
						vals = append(vals, f)
					} else {
						vals = append(vals, 0)
					}
				}
			case "tx", "cat", "val", "xVal", "yVal":
				section = ""
			case "ser":
				s := NewChartSeriesOrdered(title, cats, vals)
				s.FillColor = fillColor
				s.Outline = outline
				s.PointColors = pointCols
				s.Marker = marker
				s.LabelPosition = labelPos
				s.ShowLegendKey = showLgnd
				s.ShowValue = showVal
				s.ShowCategoryName = showCat
				s.ShowSeriesName = showSer
				s.ShowPercentage = showPct
				if hasSep {
					s.Separator = separator
				}
				if formatCode != "" && formatCode != "General" {
					s.NumberFormat = formatCode
				}
				return s, smooth, nil
			}
		}
	}
}

// parsePointColor consumes a <c:dPt> and returns its solid fill color.
func parsePointColor(d *xml.Decoder, se xml.StartElement) (Color, error) {
	var c Color
	for {
		tok, err := d.Token()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "srgbClr" {
				c = NewColor(attrVal(t, "val"))
			}
		case xml.EndElement:
			if t.Name.Local == "dPt" {
				return c, nil
			}
		}
	}
}

// parseSeriesFill consumes a series-level <c:spPr> and returns the solid
// fill color plus the outline, when present.
func parseSeriesFill(d *xml.Decoder, se xml.StartElement) (Color, *SeriesOutline, error) {
	var c Color
	var outline *SeriesOutline
	inLn := false
	for {
		tok, err := d.Token()
		if err != nil {
			return c, outline, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ln":
				inLn = true
				outline = &SeriesOutline{Width: attrInt(t, "w") / 12700}
			case "srgbClr":
				if inLn {
					outline.Color = NewColor(attrVal(t, "val"))
				} else if c.ARGB == "" {
					c = NewColor(attrVal(t, "val"))
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "ln":
				inLn = false
			case "spPr":
				return c, outline, nil
			}
		}
	}
}
