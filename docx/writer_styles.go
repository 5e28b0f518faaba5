package docx

import (
	"archive/zip"
	"fmt"
	"strings"
)

// headingDefs drive the built-in Heading1..Heading4 styles. Sizes are
// half-points, spacing twips. Headings inherit the body font and carry
// outline levels so TOC fields can collect them.
var headingDefs = []struct {
	id     string
	name   string
	before int
	after  int
	size   int
	color  string
	italic bool
}{
	{"Heading1", "heading 1", 240, 60, 32, "2F5496", false},
	{"Heading2", "heading 2", 200, 40, 26, "2F5496", false},
	{"Heading3", "heading 3", 160, 40, 24, "1F3863", false},
	{"Heading4", "heading 4", 120, 40, 22, "2F5496", true},
}

func (w *writer) writeStyles(zw *zip.Writer) error {
	font := w.document.defaultFont
	if font == "" {
		font = "Calibri"
	}
	size := w.document.defaultFontSize
	if size <= 0 {
		size = 11
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<w:styles xmlns:w="%s">`, nsWordML))

	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	b.WriteString(fmt.Sprintf(`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:eastAsia="%s" w:cs="%s"/>`,
		xmlEscape(font), xmlEscape(font), xmlEscape(font), xmlEscape(font)))
	b.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, halfPoints(size), halfPoints(size)))
	b.WriteString(`</w:rPr></w:rPrDefault>`)
	if w.document.lineSpacing > 0 {
		b.WriteString(fmt.Sprintf(
			`<w:pPrDefault><w:pPr><w:spacing w:line="%d" w:lineRule="auto"/></w:pPr></w:pPrDefault>`,
			int(w.document.lineSpacing*240)))
	} else {
		b.WriteString(`<w:pPrDefault/>`)
	}
	b.WriteString(`</w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	for i, h := range headingDefs {
		b.WriteString(fmt.Sprintf(`<w:style w:type="paragraph" w:styleId="%s">`, h.id))
		b.WriteString(fmt.Sprintf(`<w:name w:val="%s"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`, h.name))
		b.WriteString(fmt.Sprintf(
			`<w:pPr><w:keepNext/><w:spacing w:before="%d" w:after="%d"/><w:outlineLvl w:val="%d"/></w:pPr>`,
			h.before, h.after, i))
		b.WriteString(`<w:rPr><w:b/>`)
		if h.italic {
			b.WriteString(`<w:i/>`)
		}
		b.WriteString(fmt.Sprintf(`<w:color w:val="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/>`,
			h.color, h.size, h.size))
		b.WriteString(`</w:rPr></w:style>`)
	}

	b.WriteString(`</w:styles>`)
	return writeRawXMLToZip(zw, "word/styles.xml", b.String())
}

// Bullet glyphs for the three list levels: Symbol bullet, Courier "o",
// Wingdings square.
var bulletLevels = []struct {
	char string
	font string
}{
	{"", "Symbol"},
	{"o", "Courier New"},
	{"", "Wingdings"},
}

// writeNumbering writes word/numbering.xml: abstract definition 0 is the
// shared bullet list, 1 the decimal list. Instance 1 maps to bullets,
// instance 2 to a continuous decimal list, and every AddNumberedList
// instance gets its own numId with a level-0 start override so the list
// restarts at 1.
func (w *writer) writeNumbering(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<w:numbering xmlns:w="%s">`, nsWordML))

	b.WriteString(`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="hybridMultilevel"/>`)
	for lvl, def := range bulletLevels {
		b.WriteString(fmt.Sprintf(`<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="bullet"/>`, lvl))
		b.WriteString(fmt.Sprintf(`<w:lvlText w:val="%s"/><w:lvlJc w:val="left"/>`, def.char))
		b.WriteString(fmt.Sprintf(`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr>`, (lvl+1)*720))
		b.WriteString(fmt.Sprintf(`<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:hint="default"/></w:rPr></w:lvl>`,
			def.font, def.font))
	}
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:abstractNum w:abstractNumId="1"><w:multiLevelType w:val="hybridMultilevel"/>`)
	for lvl := 0; lvl < 3; lvl++ {
		b.WriteString(fmt.Sprintf(`<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="decimal"/>`, lvl))
		b.WriteString(fmt.Sprintf(`<w:lvlText w:val="%%%d."/><w:lvlJc w:val="left"/>`, lvl+1))
		b.WriteString(fmt.Sprintf(`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`, (lvl+1)*720))
	}
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>`)
	b.WriteString(`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>`)
	for i := 0; i < w.document.numInstances; i++ {
		b.WriteString(fmt.Sprintf(
			`<w:num w:numId="%d"><w:abstractNumId w:val="1"/><w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`,
			restartNumIDMin+i))
	}

	b.WriteString(`</w:numbering>`)
	return writeRawXMLToZip(zw, "word/numbering.xml", b.String())
}
