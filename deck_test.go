package gooffice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/pptx"
	"github.com/VantageDataChat/GoOffice/theme"
)

func testTheme() theme.Theme {
	return theme.Resolve("ocean", nil)
}

func TestComposeDeck_SlidePerSpec(t *testing.T) {
	spec := &PresentationSpec{
		Title: "Annual Review",
		Slides: []SlideSpec{
			{Type: "title", Title: "Annual Review", Subtitle: "FY25"},
			{Type: "section", Title: "Highlights"},
			{Type: "content", Title: "Notes", Content: ContentList{{Text: "one"}, {Text: "two", Level: 1}}},
			{Type: "ending", Title: "Thanks"},
		},
	}
	pres, warnings := composeDeck(spec, testTheme())

	assert.Empty(t, warnings)
	assert.Equal(t, 4, pres.GetSlideCount())
	assert.Equal(t, "Annual Review", pres.GetDocumentProperties().Title)

	slides := pres.GetAllSlides()
	assert.Contains(t, slides[0].ExtractText(), "Annual Review")
	assert.Contains(t, slides[0].ExtractText(), "FY25")
	assert.Contains(t, slides[2].ExtractText(), "two")
}

func TestComposeDeck_UnknownTypeFallsBackToContent(t *testing.T) {
	content := &PresentationSpec{Slides: []SlideSpec{
		{Type: "content", Title: "T", Content: ContentList{{Text: "body"}}},
	}}
	unknown := &PresentationSpec{Slides: []SlideSpec{
		{Type: "hologram", Title: "T", Content: ContentList{{Text: "body"}}},
	}}

	wantPres, wantWarnings := composeDeck(content, testTheme())
	gotPres, gotWarnings := composeDeck(unknown, testTheme())

	assert.Empty(t, wantWarnings)
	require.Len(t, gotWarnings, 1)
	assert.Contains(t, gotWarnings[0], "hologram")

	want := wantPres.GetAllSlides()[0]
	got := gotPres.GetAllSlides()[0]
	assert.Equal(t, want.GetShapeCount(), got.GetShapeCount())
	assert.Equal(t, want.ExtractText(), got.ExtractText())
}

func TestComposeDeck_NotesPassThrough(t *testing.T) {
	spec := &PresentationSpec{Slides: []SlideSpec{
		{Type: "content", Title: "T", Notes: "speak slowly"},
	}}
	pres, _ := composeDeck(spec, testTheme())
	assert.Equal(t, "speak slowly", pres.GetAllSlides()[0].GetNotes())
}

func findChartShape(t *testing.T, slide *pptx.Slide) *pptx.ChartShape {
	t.Helper()
	for _, shape := range slide.GetShapes() {
		if cs, ok := shape.(*pptx.ChartShape); ok {
			return cs
		}
	}
	t.Fatal("no chart shape on slide")
	return nil
}

func TestComposeDeck_PieChartKeepsFirstSeriesOnly(t *testing.T) {
	spec := &PresentationSpec{Slides: []SlideSpec{{
		Type:  "chart",
		Title: "Share",
		Chart: &chartspec.Spec{
			Kind:       "pie",
			Categories: []string{"A", "B"},
			Series: []chartspec.Series{
				{Name: "first", Values: []float64{3, 7}},
				{Name: "second", Values: []float64{5, 5}},
				{Name: "third", Values: []float64{1, 9}},
			},
		},
	}}}
	pres, warnings := composeDeck(spec, testTheme())
	assert.Empty(t, warnings)

	shape := findChartShape(t, pres.GetAllSlides()[0])
	pie, ok := shape.GetPlotArea().GetType().(*pptx.PieChart)
	require.True(t, ok, "expected a pie chart, got %T", shape.GetPlotArea().GetType())
	require.Len(t, pie.Series, 1)
	assert.Equal(t, "first", pie.Series[0].Title)
	assert.Equal(t, 3.0, pie.Series[0].Values["A"])
}

func TestComposeDeck_StackedBarGrouping(t *testing.T) {
	spec := &PresentationSpec{Slides: []SlideSpec{{
		Type: "chart",
		Chart: &chartspec.Spec{
			Kind:       "stacked_bar",
			Categories: []string{"c0", "c1"},
			Series: []chartspec.Series{
				{Name: "s0", Values: []float64{1, 2}},
				{Name: "s1", Values: []float64{3, 4}},
			},
		},
	}}}
	pres, _ := composeDeck(spec, testTheme())

	shape := findChartShape(t, pres.GetAllSlides()[0])
	bar, ok := shape.GetPlotArea().GetType().(*pptx.BarChart)
	require.True(t, ok)
	assert.Equal(t, pptx.BarGroupingStacked, bar.BarGrouping)
	require.Len(t, bar.Series, 2)
}

func TestComposeDeck_ChartSlideWithoutData(t *testing.T) {
	spec := &PresentationSpec{Slides: []SlideSpec{{Type: "chart", Title: "Empty"}}}
	pres, warnings := composeDeck(spec, testTheme())

	assert.Equal(t, 1, pres.GetSlideCount())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "without chart data")
}

func TestComposeDeck_MissingImageSkipped(t *testing.T) {
	spec := &PresentationSpec{Slides: []SlideSpec{
		{Type: "image", Title: "Map", Path: "does/not/exist.png", Caption: "cap"},
	}}
	pres, warnings := composeDeck(spec, testTheme())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "skipped")
	for _, shape := range pres.GetAllSlides()[0].GetShapes() {
		_, isImage := shape.(*pptx.DrawingShape)
		assert.False(t, isImage, "image shape should have been removed")
	}
	assert.Contains(t, pres.GetAllSlides()[0].ExtractText(), "cap")
}

func TestComposeDeck_CardsCappedAtSix(t *testing.T) {
	cards := make([]CardSpec, 9)
	for i := range cards {
		cards[i] = CardSpec{Title: string(rune('A' + i))}
	}
	spec := &PresentationSpec{Slides: []SlideSpec{{Type: "cards", Title: "Nine", Cards: cards}}}
	pres, _ := composeDeck(spec, testTheme())

	text := pres.GetAllSlides()[0].ExtractText()
	assert.Contains(t, text, "F")
	assert.NotContains(t, text, "G")
	assert.NotContains(t, text, "I")
}

func TestComposeDeck_ZeroSlides(t *testing.T) {
	pres, warnings := composeDeck(&PresentationSpec{}, testTheme())
	assert.Empty(t, warnings)
	assert.Equal(t, 0, pres.GetSlideCount())
}
