package gooffice

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/docx"
)

// fakeRasterizer returns a fixed PNG so report tests never depend on
// fonts or drawing.
type fakeRasterizer struct {
	err   error
	plots []chartspec.Plot
}

func (f *fakeRasterizer) RenderPNG(p chartspec.Plot) ([]byte, error) {
	f.plots = append(f.plots, p)
	if f.err != nil {
		return nil, f.err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func testReportAdapter(f *fakeRasterizer) *chartspec.Adapter {
	return chartspec.NewAdapter(f)
}

// docPartXML writes the document and returns one zip part as a string.
func docPartXML(t *testing.T, doc *docx.Document, part string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, doc.WriteTo(&buf))
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	for _, zf := range zr.File {
		if zf.Name != part {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", part)
	return ""
}

func TestComposeReport_BlockSequence(t *testing.T) {
	spec := &ReportSpec{
		Title: "Q3 Review",
		Blocks: []BlockSpec{
			{Type: "cover_page", Title: "Q3 Review", Subtitle: "Internal", Author: "Ops", Date: "2026-08-01"},
			{Type: "toc"},
			{Type: "heading", Text: "Overview", Level: 1},
			{Type: "paragraph", Text: "Revenue grew."},
			{Type: "bullet_list", Items: []ListItem{{Text: "a"}, {Text: "b", Level: 1}}},
			{Type: "numbered_list", Items: []ListItem{{Text: "first"}, {Text: "second"}}},
			{Type: "horizontal_rule"},
			{Type: "page_break"},
		},
	}
	doc, tempFiles, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())

	assert.Empty(t, warnings)
	assert.Empty(t, tempFiles)
	assert.Equal(t, "Q3 Review", doc.GetDocumentProperties().Title)

	xml := docPartXML(t, doc, "word/document.xml")
	assert.Contains(t, xml, "Revenue grew.")
	assert.Contains(t, xml, "Overview")
	assert.Contains(t, xml, ` TOC \o &#34;1-3&#34; \h \z \u `)
	assert.Contains(t, xml, "Q3 Review")
	assert.Contains(t, xml, "2026-08-01")
}

func TestComposeReport_UnknownTypeFallsBackToParagraph(t *testing.T) {
	spec := &ReportSpec{Blocks: []BlockSpec{
		{Type: "sidebar", Text: "lost text"},
	}}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "sidebar")
	assert.Contains(t, docPartXML(t, doc, "word/document.xml"), "lost text")
}

func TestComposeReport_RichParagraphSegments(t *testing.T) {
	spec := &ReportSpec{Blocks: []BlockSpec{
		{Type: "rich_paragraph", Text: "plain **bold** and `code`"},
	}}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())
	assert.Empty(t, warnings)

	xml := docPartXML(t, doc, "word/document.xml")
	assert.Contains(t, xml, "bold")
	assert.Contains(t, xml, "<w:b/>")
	assert.Contains(t, xml, "Consolas")
}

func TestComposeReport_TableStyling(t *testing.T) {
	spec := &ReportSpec{Blocks: []BlockSpec{{
		Type:    "table",
		Headers: []string{"Region", "Total"},
		Rows:    [][]CellText{{"North", "120"}, {"South", "98"}},
	}}}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())
	assert.Empty(t, warnings)

	xml := docPartXML(t, doc, "word/document.xml")
	assert.Contains(t, xml, "Region")
	assert.Contains(t, xml, defaultHeaderFill)
	assert.Contains(t, xml, "F2F2F2")
}

func TestComposeReport_EmptyTableSkipped(t *testing.T) {
	spec := &ReportSpec{Blocks: []BlockSpec{{Type: "table"}}}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "table without rows")
	assert.Equal(t, 0, doc.BlockCount())
}

func TestComposeReport_MissingImageSkipped(t *testing.T) {
	spec := &ReportSpec{Blocks: []BlockSpec{
		{Type: "image", Path: filepath.Join(t.TempDir(), "missing.png")},
	}}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "skipped")
	assert.Equal(t, 0, doc.BlockCount())
}

func TestComposeReport_ChartWritesScratchImage(t *testing.T) {
	outDir := t.TempDir()
	fake := &fakeRasterizer{}
	spec := &ReportSpec{Blocks: []BlockSpec{{
		Type: "chart",
		Chart: &chartspec.Spec{
			Kind:       "bar",
			Title:      "Sales",
			Categories: []string{"A", "B"},
			Series:     []chartspec.Series{{Name: "s", Values: []float64{1, 2}}},
		},
	}}}
	doc, tempFiles, warnings := composeReport(spec, testTheme(), testReportAdapter(fake), outDir)

	assert.Empty(t, warnings)
	require.Len(t, fake.plots, 1)
	assert.Equal(t, chartspec.KindBar, fake.plots[0].Kind)

	require.Len(t, tempFiles, 1)
	assert.Equal(t, filepath.Join(outDir, chartspec.TempDirName), filepath.Dir(tempFiles[0]))
	_, err := os.Stat(tempFiles[0])
	require.NoError(t, err)

	xml := docPartXML(t, doc, "word/document.xml")
	assert.Contains(t, xml, "Sales")
	assert.Contains(t, docPartXML(t, doc, "[Content_Types].xml"), "png")
}

func TestComposeReport_ChartRasterFailureWarns(t *testing.T) {
	fake := &fakeRasterizer{err: errors.New("boom")}
	spec := &ReportSpec{Blocks: []BlockSpec{
		{Type: "chart", Chart: &chartspec.Spec{Kind: "bar", Categories: []string{"A"}, Series: []chartspec.Series{{Values: []float64{1}}}}},
		{Type: "chart"},
	}}
	doc, tempFiles, warnings := composeReport(spec, testTheme(), testReportAdapter(fake), t.TempDir())

	assert.Empty(t, tempFiles)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "boom")
	assert.Contains(t, warnings[1], "without chart data")
	assert.Equal(t, 0, doc.BlockCount())
}

func TestComposeReport_SettingsApplied(t *testing.T) {
	spec := &ReportSpec{
		Blocks: []BlockSpec{
			{Type: "paragraph", Text: "body"},
			{Type: "section_break", Orientation: "landscape"},
			{Type: "paragraph", Text: "wide"},
			{Type: "watermark", Text: "CONFIDENTIAL"},
		},
		Settings: ReportSettings{
			DefaultFont: "Georgia",
			FontSize:    12,
			HeaderText:  "Q3",
			FooterText:  "internal",
			PageNumbers: true,
			LineSpacing: 1.5,
			Margins:     &MarginSpec{Top: 2, Bottom: 2, Left: 2.5, Right: 2.5},
			Orientation: "portrait",
		},
	}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())
	assert.Empty(t, warnings)

	font, size := doc.GetDefaultFont()
	assert.Equal(t, "Georgia", font)
	assert.Equal(t, 12.0, size)
	assert.Equal(t, 1.5, doc.GetLineSpacing())
	assert.Equal(t, "Q3", doc.GetHeaderText())
	assert.Equal(t, "internal", doc.GetFooterText())
	assert.True(t, doc.GetPageNumbers())
	assert.Equal(t, "CONFIDENTIAL", doc.GetWatermark())

	sections := doc.GetSections()
	require.Len(t, sections, 2)
	assert.Equal(t, "portrait", sections[0].GetOrientation())
	assert.Equal(t, "landscape", sections[1].GetOrientation())
}

func TestComposeReport_QuoteAndCode(t *testing.T) {
	spec := &ReportSpec{Blocks: []BlockSpec{
		{Type: "quote", Text: "Measure twice.", Author: "Anon"},
		{Type: "code_block", Code: "fmt.Println(1)", Language: "go"},
	}}
	doc, _, warnings := composeReport(spec, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())
	assert.Empty(t, warnings)

	xml := docPartXML(t, doc, "word/document.xml")
	assert.Contains(t, xml, "Measure twice.")
	assert.Contains(t, xml, "— Anon")
	assert.Contains(t, xml, quoteBorderColor)
	assert.Contains(t, xml, codeFillColor)
	assert.Contains(t, xml, "fmt.Println(1)")
}

func TestComposeReport_ZeroBlocks(t *testing.T) {
	doc, tempFiles, warnings := composeReport(&ReportSpec{}, testTheme(), testReportAdapter(&fakeRasterizer{}), t.TempDir())
	assert.Empty(t, warnings)
	assert.Empty(t, tempFiles)
	assert.Equal(t, 0, doc.BlockCount())

	var buf bytes.Buffer
	require.NoError(t, doc.WriteTo(&buf))
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.NotEmpty(t, zr.File)
}
