package gooffice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/docx"
	"github.com/VantageDataChat/GoOffice/theme"
)

// Default report styling, used when the spec leaves fields unset.
const (
	defaultReportFont     = "Calibri"
	defaultReportFontSize = 11.0
	coverTitleColor       = "003366"
	quoteBorderColor      = "4472C4"
	codeFillColor         = "F5F5F5"
	ruleColor             = "CCCCCC"
	captionColor          = "646464"
)

// reportComposer builds one word-processor document from parsed block
// specs. Chart blocks go through the adapter's raster path; the PNG is
// written under the scratch directory before it is embedded, so a
// failed save leaves the image behind for inspection.
type reportComposer struct {
	doc       *docx.Document
	th        theme.Theme
	adapter   *chartspec.Adapter
	outDir    string
	warnings  []string
	tempFiles []string
}

// composeReport renders every block of the spec and returns the
// document, the scratch files it wrote and any soft warnings.
func composeReport(spec *ReportSpec, th theme.Theme, adapter *chartspec.Adapter, outDir string) (*docx.Document, []string, []string) {
	r := &reportComposer{doc: docx.New(), th: th, adapter: adapter, outDir: outDir}

	props := r.doc.GetDocumentProperties()
	props.Title = spec.Title

	r.applySettings(&spec.Settings)
	for i := range spec.Blocks {
		r.buildBlock(i, &spec.Blocks[i])
	}
	return r.doc, r.tempFiles, r.warnings
}

func (r *reportComposer) applySettings(s *ReportSettings) {
	font := s.DefaultFont
	if font == "" {
		font = defaultReportFont
	}
	size := s.FontSize
	if size <= 0 {
		size = defaultReportFontSize
	}
	r.doc.SetDefaultFont(font, size)

	if s.LineSpacing > 0 {
		r.doc.SetLineSpacing(s.LineSpacing)
	}
	if m := s.Margins; m != nil {
		r.doc.CurrentSection().SetMargins(m.Top, m.Bottom, m.Left, m.Right)
	}
	if strings.EqualFold(s.Orientation, "landscape") {
		r.doc.CurrentSection().SetOrientation("landscape")
	}
	r.doc.SetHeaderText(s.HeaderText)
	r.doc.SetFooterText(s.FooterText)
	r.doc.SetPageNumbers(s.PageNumbers)
}

// reportBuilders routes canonical block tags to their builders.
var reportBuilders = map[string]func(*reportComposer, int, *BlockSpec){
	"cover_page":      (*reportComposer).coverPage,
	"toc":             (*reportComposer).tableOfContents,
	"heading":         (*reportComposer).heading,
	"paragraph":       (*reportComposer).paragraph,
	"rich_paragraph":  (*reportComposer).richParagraph,
	"bullet_list":     (*reportComposer).bulletList,
	"numbered_list":   (*reportComposer).numberedList,
	"table":           (*reportComposer).table,
	"image":           (*reportComposer).image,
	"chart":           (*reportComposer).chart,
	"quote":           (*reportComposer).quote,
	"code_block":      (*reportComposer).codeBlock,
	"horizontal_rule": (*reportComposer).horizontalRule,
	"page_break":      (*reportComposer).pageBreak,
	"section_break":   (*reportComposer).sectionBreak,
	"watermark":       (*reportComposer).watermark,
}

func (r *reportComposer) buildBlock(index int, spec *BlockSpec) {
	tag := canonicalBlockTag(spec.Type)
	if tag == "" {
		r.warnf("block %d: unknown type %q, rendered as paragraph", index+1, spec.Type)
		tag = "paragraph"
	}
	reportBuilders[tag](r, index, spec)
}

func (r *reportComposer) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *reportComposer) coverPage(index int, spec *BlockSpec) {
	for i := 0; i < 4; i++ {
		r.doc.AddParagraph()
	}

	title := r.doc.AddParagraph().SetAlignment("center")
	title.AddRun(spec.Title).SetBold(true).SetFontSize(36).SetColor(coverTitleColor)

	if spec.Subtitle != "" {
		sub := r.doc.AddParagraph().SetAlignment("center").SetSpaceBefore(12)
		sub.AddRun(spec.Subtitle).SetFontSize(18).SetColor("666666")
	}

	r.doc.AddParagraph()
	r.doc.AddParagraph()

	if spec.Author != "" || spec.Date != "" {
		info := r.doc.AddParagraph().SetAlignment("center")
		text := spec.Author
		if spec.Date != "" {
			if text != "" {
				text += "\n"
			}
			text += spec.Date
		}
		info.AddRun(text).SetFontSize(14).SetColor(captionColor)
	}

	r.doc.AddPageBreak()
}

func (r *reportComposer) tableOfContents(index int, spec *BlockSpec) {
	levels := spec.Levels
	if levels < 1 || levels > 9 {
		levels = 3
	}
	instr := fmt.Sprintf(` TOC \o "1-%d" \h \z \u `, levels)
	run := r.doc.AddParagraph().
		AddFieldWithResult(instr, "(Right-click and select 'Update Field' to refresh TOC)")
	run.SetItalic(true).SetColor("808080")
	r.doc.AddPageBreak()
}

func (r *reportComposer) heading(index int, spec *BlockSpec) {
	level := spec.Level
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	r.doc.AddHeading(spec.Text, level)
}

func (r *reportComposer) paragraph(index int, spec *BlockSpec) {
	p := r.doc.AddParagraph()
	if spec.Alignment != "" {
		p.SetAlignment(spec.Alignment)
	}
	run := p.AddRun(spec.Text)
	if spec.Bold {
		run.SetBold(true)
	}
	if spec.Italic {
		run.SetItalic(true)
	}
}

func (r *reportComposer) richParagraph(index int, spec *BlockSpec) {
	p := r.doc.AddParagraph()
	if spec.Alignment != "" {
		p.SetAlignment(spec.Alignment)
	}
	for _, seg := range parseInlineMarkdown(spec.Text) {
		run := p.AddRun(seg.Text)
		if seg.Bold {
			run.SetBold(true)
		}
		if seg.Italic {
			run.SetItalic(true)
		}
		if seg.Code {
			run.SetFontName("Consolas").SetColor("C7254E")
		}
	}
}

func (r *reportComposer) bulletList(index int, spec *BlockSpec) {
	for _, item := range spec.Items {
		r.doc.AddBulletItem(item.Text, item.Level)
	}
}

func (r *reportComposer) numberedList(index int, spec *BlockSpec) {
	list := r.doc.AddNumberedList()
	for _, item := range spec.Items {
		list.AddItem(item.Text, item.Level)
	}
}

func (r *reportComposer) table(index int, spec *BlockSpec) {
	rows := make([][]CellText, 0, len(spec.Rows)+1)
	if len(spec.Headers) > 0 {
		header := make([]CellText, len(spec.Headers))
		for i, h := range spec.Headers {
			header[i] = CellText(h)
		}
		rows = append(rows, header)
	}
	rows = append(rows, spec.Rows...)
	if len(rows) == 0 {
		r.warnf("block %d: table without rows skipped", index+1)
		return
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		r.warnf("block %d: table without columns skipped", index+1)
		return
	}

	headerBg := spec.HeaderBackground
	if headerBg == "" {
		headerBg = defaultHeaderFill
	}
	stripes := spec.StripeColors
	if len(stripes) == 0 {
		stripes = []string{"FFFFFF", "F2F2F2"}
	}

	table := r.doc.AddTable(len(rows), cols).SetAlignment("center")
	for ri, row := range rows {
		for ci := 0; ci < cols; ci++ {
			var text string
			if ci < len(row) {
				text = string(row[ci])
			}
			cell := table.Cell(ri, ci)
			p := cell.Paragraph().SetAlignment("center")
			run := p.AddRun(text).SetFontSize(10)
			if ri == 0 && len(spec.Headers) > 0 {
				run.SetBold(true).SetColor("FFFFFF")
				cell.SetShading(headerBg)
			} else {
				cell.SetShading(stripes[ri%len(stripes)])
			}
		}
	}
}

func (r *reportComposer) image(index int, spec *BlockSpec) {
	path := spec.Path
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.outDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		r.warnf("block %d: image %s skipped: %v", index+1, spec.Path, err)
		return
	}

	p := r.doc.AddParagraph().SetAlignment("center")
	ir, err := p.AddImageFromFile(path)
	if err != nil {
		r.warnf("block %d: image %s skipped: %v", index+1, spec.Path, err)
		return
	}
	width := spec.Width
	if width <= 0 {
		width = 5
	}
	ir.SetWidth(docx.Inch(width))
	r.caption(spec.Caption)
}

func (r *reportComposer) chart(index int, spec *BlockSpec) {
	if spec.Chart == nil {
		r.warnf("block %d: chart block without chart data", index+1)
		return
	}
	rendered, err := r.adapter.Normalize(*spec.Chart, r.th, chartspec.TargetDocument)
	if err != nil {
		r.warnf("block %d: chart skipped: %v", index+1, err)
		return
	}
	raster := rendered.(chartspec.RasterChart)

	// The intermediate PNG lands in the scratch directory first; the
	// engine sweeps it after a successful save.
	scratch := filepath.Join(r.outDir, chartspec.TempDirName)
	if err := os.MkdirAll(scratch, 0750); err != nil {
		r.warnf("block %d: chart skipped: %v", index+1, err)
		return
	}
	tempPath := filepath.Join(scratch, raster.FileName)
	if err := os.WriteFile(tempPath, raster.PNG, 0640); err != nil {
		r.warnf("block %d: chart skipped: %v", index+1, err)
		return
	}
	r.tempFiles = append(r.tempFiles, tempPath)

	width := spec.Width
	if width <= 0 {
		width = 6
	}
	p := r.doc.AddParagraph().SetAlignment("center")
	p.AddImage(raster.PNG, "image/png").SetWidth(docx.Inch(width))
	r.caption(raster.Plot.Title)
}

// caption emits the small italic line under images and charts.
func (r *reportComposer) caption(text string) {
	if text == "" {
		return
	}
	p := r.doc.AddParagraph().SetAlignment("center")
	p.AddRun(text).SetItalic(true).SetFontSize(9).SetColor(captionColor)
}

func (r *reportComposer) quote(index int, spec *BlockSpec) {
	p := r.doc.AddParagraph().
		SetLeftIndent(1.5).
		SetSpaceBefore(6).
		SetSpaceAfter(6).
		SetLeftBorder(quoteBorderColor, 18, 8)
	p.AddRun(spec.Text).SetItalic(true).SetFontSize(11).SetColor("505050")

	if spec.Author != "" {
		author := r.doc.AddParagraph().SetLeftIndent(1.5)
		author.AddRun("— "+spec.Author).SetFontSize(10).SetColor("787878")
	}
}

func (r *reportComposer) codeBlock(index int, spec *BlockSpec) {
	p := r.doc.AddParagraph().
		SetLeftIndent(0.5).
		SetSpaceBefore(6).
		SetSpaceAfter(6).
		SetShading(codeFillColor)
	p.AddRun(spec.Code).SetFontName("Consolas").SetFontSize(9).SetColor("323232")
}

func (r *reportComposer) horizontalRule(index int, spec *BlockSpec) {
	r.doc.AddParagraph().SetBottomBorder(ruleColor, 6, 1)
}

func (r *reportComposer) pageBreak(index int, spec *BlockSpec) {
	r.doc.AddPageBreak()
}

func (r *reportComposer) sectionBreak(index int, spec *BlockSpec) {
	section := r.doc.AddSection()
	if strings.EqualFold(spec.Orientation, "landscape") {
		section.SetOrientation("landscape")
	}
}

func (r *reportComposer) watermark(index int, spec *BlockSpec) {
	text := spec.Text
	if text == "" {
		text = "DRAFT"
	}
	r.doc.SetWatermark(text)
}
