package xlsx

import (
	"archive/zip"
	"fmt"
	"strconv"
	"strings"
)

// builtinNumFmts maps well-known format codes onto the built-in numFmt
// ids so they are not re-registered as custom formats.
var builtinNumFmts = map[string]int{
	"General":  0,
	"0":        1,
	"0.00":     2,
	"#,##0":    3,
	"#,##0.00": 4,
	"0%":       9,
	"0.00%":    10,
	"mm-dd-yy": 14,
	"d-mmm-yy": 15,
	"h:mm":     20,
	"h:mm:ss":  21,
	"@":        49,
}

// customNumFmtBase is the first id available for custom format codes.
const customNumFmtBase = 164

type fontDef struct {
	size         float64
	name         string
	bold, italic bool
	color        string // ARGB, "" for the theme default
}

type fillDef struct {
	pattern string // "none", "gray125" or "solid"
	color   string // ARGB fg for solid fills
}

type borderDef struct {
	style string // "", "thin", "medium", ...
	color string // ARGB
}

type xfDef struct {
	numFmtID, fontID, fillID, borderID int
	hAlign, vAlign                     string
	wrap                               bool
}

type dxfDef struct {
	fillColor string // ARGB
	fontColor string // ARGB
}

// stylesRegistry interns every distinct style component used by the
// workbook and assigns the ids referenced from cell and cfRule XML.
// Index 0 of each table is the spreadsheet default; fills additionally
// reserve index 1 for the gray125 pattern as applications expect.
type stylesRegistry struct {
	numFmtCodes []string // custom codes, id customNumFmtBase+i
	numFmtIDs   map[string]int
	fonts       []fontDef
	fontIDs     map[string]int
	fills       []fillDef
	fillIDs     map[string]int
	borders     []borderDef
	borderIDs   map[string]int
	xfs         []xfDef
	xfIDs       map[string]int
	dxfs        []dxfDef
	dxfIDs      map[string]int
}

func newStylesRegistry() *stylesRegistry {
	r := &stylesRegistry{
		numFmtIDs: make(map[string]int),
		fontIDs:   make(map[string]int),
		fillIDs:   make(map[string]int),
		borderIDs: make(map[string]int),
		xfIDs:     make(map[string]int),
		dxfIDs:    make(map[string]int),
	}
	r.fonts = []fontDef{{size: 11, name: "Calibri"}}
	r.fontIDs[fontKey(r.fonts[0])] = 0
	r.fills = []fillDef{{pattern: "none"}, {pattern: "gray125"}}
	r.fillIDs["none|"] = 0
	r.fillIDs["gray125|"] = 1
	r.borders = []borderDef{{}}
	r.borderIDs["|"] = 0
	r.xfs = []xfDef{{}}
	r.xfIDs[xfKey(r.xfs[0])] = 0
	return r
}

// register interns the style and returns its cellXfs index. Nil and
// zero styles map to the default xf 0.
func (r *stylesRegistry) register(cs *CellStyle) int {
	if cs == nil || cs.isZero() {
		return 0
	}
	xf := xfDef{
		numFmtID: r.registerNumFmt(cs.NumberFormat),
		fontID:   r.registerFont(cs),
		fillID:   r.registerFill(cs.FillColor),
		borderID: r.registerBorder(cs.BorderStyle, cs.BorderColor),
		hAlign:   cs.HorizontalAlign,
		vAlign:   cs.VerticalAlign,
		wrap:     cs.WrapText,
	}
	key := xfKey(xf)
	if id, ok := r.xfIDs[key]; ok {
		return id
	}
	id := len(r.xfs)
	r.xfs = append(r.xfs, xf)
	r.xfIDs[key] = id
	return id
}

func (r *stylesRegistry) registerNumFmt(code string) int {
	if code == "" {
		return 0
	}
	if id, ok := builtinNumFmts[code]; ok {
		return id
	}
	if id, ok := r.numFmtIDs[code]; ok {
		return id
	}
	id := customNumFmtBase + len(r.numFmtCodes)
	r.numFmtCodes = append(r.numFmtCodes, code)
	r.numFmtIDs[code] = id
	return id
}

func (r *stylesRegistry) registerFont(cs *CellStyle) int {
	f := fontDef{
		size:   cs.FontSize,
		name:   cs.FontName,
		bold:   cs.Bold,
		italic: cs.Italic,
		color:  normalizeARGB(cs.FontColor),
	}
	if f.size <= 0 {
		f.size = 11
	}
	if f.name == "" {
		f.name = "Calibri"
	}
	key := fontKey(f)
	if id, ok := r.fontIDs[key]; ok {
		return id
	}
	id := len(r.fonts)
	r.fonts = append(r.fonts, f)
	r.fontIDs[key] = id
	return id
}

func (r *stylesRegistry) registerFill(hex string) int {
	argb := normalizeARGB(hex)
	if argb == "" {
		return 0
	}
	key := "solid|" + argb
	if id, ok := r.fillIDs[key]; ok {
		return id
	}
	id := len(r.fills)
	r.fills = append(r.fills, fillDef{pattern: "solid", color: argb})
	r.fillIDs[key] = id
	return id
}

func (r *stylesRegistry) registerBorder(style, hex string) int {
	if style == "" {
		return 0
	}
	argb := normalizeARGB(hex)
	if argb == "" {
		argb = "FF000000"
	}
	key := style + "|" + argb
	if id, ok := r.borderIDs[key]; ok {
		return id
	}
	id := len(r.borders)
	r.borders = append(r.borders, borderDef{style: style, color: argb})
	r.borderIDs[key] = id
	return id
}

// registerDxf interns a differential format for a cell-is conditional
// rule and returns its dxfs index.
func (r *stylesRegistry) registerDxf(fillHex, fontHex string) int {
	d := dxfDef{fillColor: normalizeARGB(fillHex), fontColor: normalizeARGB(fontHex)}
	key := d.fillColor + "|" + d.fontColor
	if id, ok := r.dxfIDs[key]; ok {
		return id
	}
	id := len(r.dxfs)
	r.dxfs = append(r.dxfs, d)
	r.dxfIDs[key] = id
	return id
}

func fontKey(f fontDef) string {
	return fmt.Sprintf("%g|%s|%t|%t|%s", f.size, f.name, f.bold, f.italic, f.color)
}

func xfKey(xf xfDef) string {
	return fmt.Sprintf("%d|%d|%d|%d|%s|%s|%t",
		xf.numFmtID, xf.fontID, xf.fillID, xf.borderID, xf.hAlign, xf.vAlign, xf.wrap)
}

// --- styles.xml ---

func (w *writer) writeStyles(zw *zip.Writer) error {
	r := w.styles
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<styleSheet xmlns="%s">`, nsSpreadsheetML))

	if len(r.numFmtCodes) > 0 {
		b.WriteString(fmt.Sprintf(`<numFmts count="%d">`, len(r.numFmtCodes)))
		for i, code := range r.numFmtCodes {
			b.WriteString(fmt.Sprintf(`<numFmt numFmtId="%d" formatCode="%s"/>`,
				customNumFmtBase+i, xmlEscape(code)))
		}
		b.WriteString(`</numFmts>`)
	}

	b.WriteString(fmt.Sprintf(`<fonts count="%d">`, len(r.fonts)))
	for _, f := range r.fonts {
		b.WriteString(`<font>`)
		if f.bold {
			b.WriteString(`<b/>`)
		}
		if f.italic {
			b.WriteString(`<i/>`)
		}
		b.WriteString(fmt.Sprintf(`<sz val="%s"/>`, formatFloat(f.size)))
		if f.color != "" {
			b.WriteString(fmt.Sprintf(`<color rgb="%s"/>`, f.color))
		}
		b.WriteString(fmt.Sprintf(`<name val="%s"/>`, xmlEscape(f.name)))
		b.WriteString(`</font>`)
	}
	b.WriteString(`</fonts>`)

	b.WriteString(fmt.Sprintf(`<fills count="%d">`, len(r.fills)))
	for _, f := range r.fills {
		switch f.pattern {
		case "solid":
			b.WriteString(fmt.Sprintf(
				`<fill><patternFill patternType="solid"><fgColor rgb="%s"/><bgColor indexed="64"/></patternFill></fill>`,
				f.color))
		default:
			b.WriteString(fmt.Sprintf(`<fill><patternFill patternType="%s"/></fill>`, f.pattern))
		}
	}
	b.WriteString(`</fills>`)

	b.WriteString(fmt.Sprintf(`<borders count="%d">`, len(r.borders)))
	for _, bd := range r.borders {
		if bd.style == "" {
			b.WriteString(`<border><left/><right/><top/><bottom/><diagonal/></border>`)
			continue
		}
		side := func(name string) string {
			return fmt.Sprintf(`<%s style="%s"><color rgb="%s"/></%s>`, name, bd.style, bd.color, name)
		}
		b.WriteString(`<border>` + side("left") + side("right") + side("top") + side("bottom") + `<diagonal/></border>`)
	}
	b.WriteString(`</borders>`)

	b.WriteString(`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>`)

	b.WriteString(fmt.Sprintf(`<cellXfs count="%d">`, len(r.xfs)))
	for _, xf := range r.xfs {
		b.WriteString(fmt.Sprintf(`<xf numFmtId="%d" fontId="%d" fillId="%d" borderId="%d" xfId="0"`,
			xf.numFmtID, xf.fontID, xf.fillID, xf.borderID))
		if xf.numFmtID > 0 {
			b.WriteString(` applyNumberFormat="1"`)
		}
		if xf.fontID > 0 {
			b.WriteString(` applyFont="1"`)
		}
		if xf.fillID > 0 {
			b.WriteString(` applyFill="1"`)
		}
		if xf.borderID > 0 {
			b.WriteString(` applyBorder="1"`)
		}
		if xf.hAlign != "" || xf.vAlign != "" || xf.wrap {
			b.WriteString(` applyAlignment="1"><alignment`)
			if xf.hAlign != "" {
				b.WriteString(fmt.Sprintf(` horizontal="%s"`, xf.hAlign))
			}
			if xf.vAlign != "" {
				b.WriteString(fmt.Sprintf(` vertical="%s"`, xf.vAlign))
			}
			if xf.wrap {
				b.WriteString(` wrapText="1"`)
			}
			b.WriteString(`/></xf>`)
		} else {
			b.WriteString(`/>`)
		}
	}
	b.WriteString(`</cellXfs>`)

	b.WriteString(`<cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>`)

	if len(r.dxfs) > 0 {
		b.WriteString(fmt.Sprintf(`<dxfs count="%d">`, len(r.dxfs)))
		for _, d := range r.dxfs {
			b.WriteString(`<dxf>`)
			if d.fontColor != "" {
				b.WriteString(fmt.Sprintf(`<font><color rgb="%s"/></font>`, d.fontColor))
			}
			if d.fillColor != "" {
				b.WriteString(fmt.Sprintf(
					`<fill><patternFill><bgColor rgb="%s"/></patternFill></fill>`, d.fillColor))
			}
			b.WriteString(`</dxf>`)
		}
		b.WriteString(`</dxfs>`)
	}

	b.WriteString(`</styleSheet>`)
	return writeRawXMLToZip(zw, "xl/styles.xml", b.String())
}

// formatFloat renders a float attribute with minimal digits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
