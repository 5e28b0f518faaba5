package gooffice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/layout"
	"github.com/VantageDataChat/GoOffice/pptx"
	"github.com/VantageDataChat/GoOffice/theme"
)

// Fixed grays shared by several slide builders.
var (
	grayBody    = theme.RGB{R: 0x55, G: 0x55, B: 0x55}
	grayCaption = theme.RGB{R: 0x88, G: 0x88, B: 0x88}
	trendUp     = theme.RGB{R: 0x27, G: 0xAE, B: 0x60}
	trendDown   = theme.RGB{R: 0xC0, G: 0x39, B: 0x2B}
)

// deckComposer builds one presentation from parsed slide specs. Slide
// builders append shapes only; nothing here performs IO, so a builder
// can fail at most softly by recording a warning.
type deckComposer struct {
	pres     *pptx.Presentation
	th       theme.Theme
	font     string
	total    int
	warnings []string
}

// composeDeck renders every slide of the spec against the resolved
// theme and returns the presentation plus any soft warnings.
func composeDeck(spec *PresentationSpec, th theme.Theme) (*pptx.Presentation, []string) {
	font := spec.Settings.DefaultFont
	if font == "" {
		font = th.FontName
	}
	d := &deckComposer{pres: pptx.New(), th: th, font: font, total: len(spec.Slides)}

	props := d.pres.GetDocumentProperties()
	props.Title = spec.Title
	if spec.Settings.Author != "" {
		props.Creator = spec.Settings.Author
		props.LastModifiedBy = spec.Settings.Author
	}
	props.Company = spec.Settings.Company

	for i := range spec.Slides {
		d.buildSlide(i, &spec.Slides[i])
	}
	return d.pres, d.warnings
}

// deckBuilders routes canonical slide tags to their builders.
var deckBuilders = map[string]func(*deckComposer, *pptx.Slide, int, *SlideSpec){
	"title":        (*deckComposer).titleSlide,
	"section":      (*deckComposer).sectionSlide,
	"content":      (*deckComposer).contentSlide,
	"two_column":   (*deckComposer).twoColumnSlide,
	"three_column": (*deckComposer).threeColumnSlide,
	"cards":        (*deckComposer).cardsSlide,
	"chart":        (*deckComposer).chartSlide,
	"stats":        (*deckComposer).statsSlide,
	"timeline":     (*deckComposer).timelineSlide,
	"table":        (*deckComposer).tableSlide,
	"image":        (*deckComposer).imageSlide,
	"comparison":   (*deckComposer).comparisonSlide,
	"quote":        (*deckComposer).quoteSlide,
	"ending":       (*deckComposer).endingSlide,
}

func (d *deckComposer) buildSlide(index int, spec *SlideSpec) {
	tag := canonicalSlideTag(spec.Type)
	if tag == "" {
		d.warnf("slide %d: unknown type %q, rendered as content", index+1, spec.Type)
		tag = "content"
	}
	slide := d.pres.CreateSlide()
	deckBuilders[tag](d, slide, index, spec)
	if spec.Notes != "" {
		slide.SetNotes(spec.Notes)
	}
}

func (d *deckComposer) warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// --- drawing helpers ---

// rgb converts a theme color to a drawing color.
func rgb(c theme.RGB) pptx.Color { return pptx.NewColor(c.Hex()) }

// gradientFill converts a theme gradient to a slide fill. Stop
// positions scale from [0,1] to the writer's 1000ths of a percent.
func gradientFill(g theme.Gradient) *pptx.Fill {
	stops := make([]pptx.GradientStop, 0, len(g.Stops))
	for _, s := range g.Stops {
		stops = append(stops, pptx.GradientStop{
			Color:    rgb(s.Color),
			Position: int(s.Position * 100000),
		})
	}
	return pptx.NewFill().SetGradientStops(stops, int(g.Angle))
}

// rect draws a borderless filled rectangle.
func rect(slide *pptx.Slide, r layout.Region, c pptx.Color) *pptx.AutoShape {
	shape := slide.CreateAutoShape()
	shape.SetAutoShapeType(pptx.AutoShapeRectangle)
	shape.SetPosition(pptx.Inch(r.X), pptx.Inch(r.Y))
	shape.SetSize(pptx.Inch(r.W), pptx.Inch(r.H))
	shape.SetSolidFill(c)
	return shape
}

// circle draws a filled ellipse with its top-left corner at (x, y).
func circle(slide *pptx.Slide, x, y, diameter float64, c pptx.Color) *pptx.AutoShape {
	shape := slide.CreateAutoShape()
	shape.SetAutoShapeType(pptx.AutoShapeEllipse)
	shape.SetPosition(pptx.Inch(x), pptx.Inch(y))
	shape.SetSize(pptx.Inch(diameter), pptx.Inch(diameter))
	shape.SetSolidFill(c)
	return shape
}

// panel draws a rounded rectangle with the theme card fill and the
// given border.
func (d *deckComposer) panel(slide *pptx.Slide, r layout.Region, border theme.RGB, borderPt float64) *pptx.AutoShape {
	shape := slide.CreateAutoShape()
	shape.SetAutoShapeType(pptx.AutoShapeRoundedRect)
	shape.SetPosition(pptx.Inch(r.X), pptx.Inch(r.Y))
	shape.SetSize(pptx.Inch(r.W), pptx.Inch(r.H))
	shape.SetSolidFill(rgb(d.th.CardBackground))
	shape.SetBorder(pptx.NewBorder().SetSolid(rgb(border), int(pptx.Point(borderPt))))
	return shape
}

// card is a panel with the default card border.
func (d *deckComposer) card(slide *pptx.Slide, r layout.Region, borderPt float64) *pptx.AutoShape {
	return d.panel(slide, r, d.th.CardBorder, borderPt)
}

// textBox positions an empty rich text shape over r.
func textBox(slide *pptx.Slide, r layout.Region) *pptx.RichTextShape {
	shape := slide.CreateRichTextShape()
	shape.SetPosition(pptx.Inch(r.X), pptx.Inch(r.Y))
	shape.SetSize(pptx.Inch(r.W), pptx.Inch(r.H))
	return shape
}

// style applies the deck font plus size and color to a run.
func (d *deckComposer) style(run *pptx.TextRun, size int, c theme.RGB) *pptx.Font {
	return run.GetFont().SetName(d.font).SetNameEA(d.font).SetSize(size).SetColor(rgb(c))
}

// addSegments writes inline-markdown styled runs into a paragraph,
// turning embedded newlines into soft breaks.
func (d *deckComposer) addSegments(p *pptx.Paragraph, text string, size int, c theme.RGB, bold bool) {
	for _, seg := range parseInlineMarkdown(text) {
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				p.CreateBreak()
			}
			if line == "" {
				continue
			}
			f := d.style(p.CreateTextRun(line), size, c)
			if bold || seg.Bold {
				f.SetBold(true)
			}
			if seg.Italic {
				f.SetItalic(true)
			}
			if seg.Code {
				f.SetName("Consolas")
			}
		}
	}
}

// oneLiner fills a text box with a single styled paragraph.
func (d *deckComposer) oneLiner(box *pptx.RichTextShape, text string, size int, c theme.RGB, align pptx.HorizontalAlignment) {
	p := box.GetActiveParagraph()
	if align != "" {
		p.SetAlignment(pptx.NewAlignment().SetHorizontal(align))
	}
	d.addSegments(p, text, size, c, false)
}

// contentBlock renders content lines into r with accent bullets and
// per-item indent levels.
func (d *deckComposer) contentBlock(slide *pptx.Slide, r layout.Region, items ContentList, size int, c theme.RGB, spacingPct int) {
	if len(items) == 0 {
		return
	}
	box := textBox(slide, r)
	for i, item := range items {
		p := box.GetActiveParagraph()
		if i > 0 {
			p = box.CreateParagraph()
		}
		if spacingPct > 0 {
			p.SetLineSpacingPercent(spacingPct)
		}
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		level := item.Level
		if level > 8 {
			level = 8
		}
		if level > 0 {
			p.SetAlignment(pptx.NewAlignment().SetLevel(level))
		}
		p.SetBullet(pptx.NewBullet().SetColor(rgb(d.th.Accent)))
		d.addSegments(p, item.Text, size, c, item.Bold)
	}
}

// textBlock renders plain multi-line text into r, one paragraph per
// line, without bullets.
func (d *deckComposer) textBlock(slide *pptx.Slide, r layout.Region, text string, size int, c theme.RGB, spacingPct int) {
	box := textBox(slide, r)
	for i, line := range strings.Split(text, "\n") {
		p := box.GetActiveParagraph()
		if i > 0 {
			p = box.CreateParagraph()
		}
		if spacingPct > 0 {
			p.SetLineSpacingPercent(spacingPct)
		}
		d.addSegments(p, line, size, c, false)
	}
}

// contentFrame draws the furniture shared by framed slides: solid
// background, title bar with accent strip, footer line and page number.
func (d *deckComposer) contentFrame(slide *pptx.Slide, index int, title string) {
	slide.SetBackground(pptx.NewFill().SetSolid(rgb(d.th.Background)))
	rect(slide, layout.TitleBar(), rgb(d.th.Primary))
	if title != "" {
		box := textBox(slide, layout.TitleTextBox())
		box.SetTextAnchor(pptx.TextAnchorMiddle)
		p := box.GetActiveParagraph()
		d.addSegments(p, title, 26, d.th.TextLight, true)
	}
	rect(slide, layout.AccentBar(), rgb(d.th.Accent))
	d.footer(slide, index)
}

// footer draws the accent line and slide number at the bottom edge.
func (d *deckComposer) footer(slide *pptx.Slide, index int) {
	fb := layout.FooterBar()
	rect(slide, layout.Region{X: fb.X, Y: fb.Y, W: fb.W, H: 0.04}, rgb(d.th.Accent))

	box := textBox(slide, layout.SlideNumberBox())
	box.SetTextAnchor(pptx.TextAnchorMiddle)
	d.oneLiner(box, fmt.Sprintf("%d / %d", index+1, d.total), 10, d.th.Secondary, pptx.HorizontalRight)
}

// bottomEdge draws the thin accent band used by full-bleed slides.
func (d *deckComposer) bottomEdge(slide *pptx.Slide) {
	rect(slide, layout.Region{X: 0, Y: 7.25, W: layout.SlideWidth, H: 0.08}, rgb(d.th.Accent))
}

// joinMeta joins non-empty parts with the cover separator.
func joinMeta(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "  |  ")
}

// padSectionNumber left-pads plain integers to two digits; anything
// else passes through.
func padSectionNumber(s string) string {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return fmt.Sprintf("%02d", n)
	}
	return s
}

// --- slide builders ---

func (d *deckComposer) titleSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	slide.SetBackground(gradientFill(d.th.TitleGradient()))
	circle(slide, 10.5, -1.5, 4, rgb(d.th.Accent.Lighten(0.2)))
	circle(slide, -1.5, 5.5, 3.5, rgb(d.th.Primary.Darken(0.5)))

	rect(slide, layout.Region{X: 1.5, Y: 3.2, W: 2.5, H: 0.06}, rgb(d.th.Accent))

	title := textBox(slide, layout.Region{X: 1.5, Y: 1.5, W: 10, H: 1.8})
	title.SetTextAnchor(pptx.TextAnchorBottom)
	p := title.GetActiveParagraph()
	p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalLeft))
	d.addSegments(p, spec.Title, 42, d.th.TextLight, true)

	if spec.Subtitle != "" {
		box := textBox(slide, layout.Region{X: 1.5, Y: 3.5, W: 9, H: 1.0})
		d.oneLiner(box, spec.Subtitle, 20, d.th.TextLight.Lighten(0.15), "")
	}

	if meta := joinMeta(spec.Author, spec.Date); meta != "" {
		box := textBox(slide, layout.Region{X: 1.5, Y: 5.8, W: 8, H: 0.5})
		d.oneLiner(box, meta, 14, d.th.TextLight.Lighten(0.3), "")
	}

	d.bottomEdge(slide)
}

func (d *deckComposer) sectionSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	g := theme.BuildGradient(d.th.GradientStart, d.th.GradientEnd.Darken(0.8), 200)
	slide.SetBackground(gradientFill(g))

	if spec.SectionNumber != "" {
		box := textBox(slide, layout.Region{X: 1, Y: 1.5, W: 4, H: 3})
		box.SetTextAnchor(pptx.TextAnchorMiddle)
		run := box.CreateTextRun(padSectionNumber(spec.SectionNumber))
		d.style(run, 96, d.th.Accent.Lighten(0.15)).SetBold(true)
	}

	title := textBox(slide, layout.Region{X: 1.5, Y: 3.0, W: 10, H: 2.0})
	title.SetTextAnchor(pptx.TextAnchorMiddle)
	p := title.GetActiveParagraph()
	d.addSegments(p, spec.Title, 38, d.th.TextLight, true)

	if spec.Subtitle != "" {
		rect(slide, layout.Region{X: 1.5, Y: 5.0, W: 2, H: 0.05}, rgb(d.th.Accent))
		box := textBox(slide, layout.Region{X: 1.5, Y: 5.2, W: 9, H: 0.8})
		d.oneLiner(box, spec.Subtitle, 18, d.th.TextLight.Lighten(0.2), "")
	}

	d.bottomEdge(slide)
}

func (d *deckComposer) contentSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	body := spec.Content
	if len(body) == 0 && spec.Text != "" {
		body = ContentList{{Text: spec.Text}}
	}
	d.contentBlock(slide, layout.Region{X: 0.8, Y: 1.4, W: 11.5, H: 5.2}, body, 18, d.th.TextDark, 150)
}

func (d *deckComposer) twoColumnSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	cols := layout.Columns(layout.Region{X: 0.5, Y: 1.5, W: 12.3, H: 5.2}, 2, 0.5)
	titles := [2]string{spec.LeftTitle, spec.RightTitle}
	bodies := [2]ContentList{spec.Left, spec.Right}
	for i, col := range cols {
		d.card(slide, col, 1.5)
		inner := layout.Region{X: col.X + 0.3, Y: 0, W: col.W - 0.6, H: 0}
		if titles[i] != "" {
			rect(slide, layout.Region{X: inner.X, Y: 1.7, W: 1.5, H: 0.05}, rgb(d.th.Accent))
			box := textBox(slide, layout.Region{X: inner.X, Y: 1.85, W: inner.W, H: 0.5})
			p := box.GetActiveParagraph()
			d.addSegments(p, titles[i], 18, d.th.Primary, true)
			d.contentBlock(slide, layout.Region{X: inner.X, Y: 2.5, W: inner.W, H: 3.8}, bodies[i], 15, d.th.TextDark, 150)
		} else {
			d.contentBlock(slide, layout.Region{X: inner.X, Y: 1.8, W: inner.W, H: 4.5}, bodies[i], 15, d.th.TextDark, 150)
		}
	}
}

func (d *deckComposer) threeColumnSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	n := len(spec.Columns)
	if n == 0 {
		return
	}
	if n > 3 {
		d.warnf("slide %d: %d columns truncated to 3", index+1, n)
		n = 3
	}
	cols := layout.Columns(layout.Region{X: 0.5, Y: 1.5, W: 12.3, H: 5.2}, n, 0.45)
	for i, col := range cols {
		cs := spec.Columns[i]
		d.card(slide, col, 1)
		rect(slide, layout.Region{X: col.X + 0.3, Y: 1.7, W: 1.2, H: 0.05}, rgb(d.th.Accent))

		titleY := 2.0
		if cs.Icon != "" {
			box := textBox(slide, layout.Region{X: col.X + 0.3, Y: 1.9, W: 1, H: 0.8})
			run := box.CreateTextRun(cs.Icon)
			d.style(run, 28, d.th.Primary).SetBold(true)
			titleY = 2.7
		}
		if cs.Title != "" {
			box := textBox(slide, layout.Region{X: col.X + 0.3, Y: titleY, W: col.W - 0.6, H: 0.5})
			p := box.GetActiveParagraph()
			d.addSegments(p, cs.Title, 16, d.th.Primary, true)
		}
		bodyY := titleY + 0.6
		d.contentBlock(slide, layout.Region{X: col.X + 0.3, Y: bodyY, W: col.W - 0.6, H: col.Y + col.H - bodyY - 0.2}, cs.Content, 13, d.th.TextDark, 140)
	}
}

func (d *deckComposer) cardsSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	n := len(spec.Cards)
	if n == 0 {
		return
	}
	if n > layout.MaxCards {
		d.warnf("slide %d: %d cards truncated to %d", index+1, n, layout.MaxCards)
	}
	grid := layout.CardGrid(layout.CardGridBounds(n), n, layout.CardGap)
	for i, r := range grid {
		card := spec.Cards[i]
		d.card(slide, r, 1)
		rect(slide, layout.Region{X: r.X + 0.25, Y: r.Y + 0.15, W: 0.8, H: 0.04}, rgb(d.th.Accent))

		y := r.Y + 0.3
		if card.Icon != "" {
			circle(slide, r.X+0.25, y, 0.55, rgb(d.th.Accent.Lighten(0.75)))
			box := textBox(slide, layout.Region{X: r.X + 0.25, Y: y, W: 0.55, H: 0.55})
			box.SetTextAnchor(pptx.TextAnchorMiddle)
			d.oneLiner(box, card.Icon, 22, d.th.Primary, pptx.HorizontalCenter)
			y += 0.65
		}
		if card.Title != "" {
			box := textBox(slide, layout.Region{X: r.X + 0.25, Y: y, W: r.W - 0.5, H: 0.4})
			p := box.GetActiveParagraph()
			d.addSegments(p, card.Title, 14, d.th.Primary, true)
			y += 0.45
		}
		if card.Description != "" {
			d.textBlock(slide, layout.Region{X: r.X + 0.25, Y: y, W: r.W - 0.5, H: r.Y + r.H - y - 0.15}, card.Description, 12, grayBody, 130)
		}
	}
}

func (d *deckComposer) chartSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	if spec.Chart == nil {
		d.warnf("slide %d: chart slide without chart data", index+1)
		return
	}
	plot := chartspec.BuildPlot(*spec.Chart, d.th)

	region := layout.Region{X: 0.8, Y: 1.4, W: 11.5, H: 5.3}
	if spec.Description != "" {
		region = layout.Region{X: 0.5, Y: 1.4, W: 8, H: 5.2}
		d.card(slide, layout.Region{X: 8.8, Y: 1.5, W: 4.2, H: 5.0}, 1)
		d.textBlock(slide, layout.Region{X: 9.0, Y: 1.7, W: 3.8, H: 4.6}, spec.Description, 14, d.th.TextDark, 140)
	}
	d.nativeChart(slide, region, plot)
}

func (d *deckComposer) statsSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	n := len(spec.Stats)
	if n == 0 {
		return
	}
	if n > layout.MaxStats {
		d.warnf("slide %d: %d stats truncated to %d", index+1, n, layout.MaxStats)
	}
	row := layout.StatRow(layout.StatRowBounds(), n, layout.StatGap)
	for i, r := range row {
		st := spec.Stats[i]
		d.card(slide, r, 1)
		rect(slide, layout.Region{X: r.X, Y: r.Y, W: r.W, H: 0.06}, rgb(d.th.Accent))

		y := r.Y + 0.25
		if st.Icon != "" {
			box := textBox(slide, layout.Region{X: r.X, Y: y, W: r.W, H: 0.6})
			d.oneLiner(box, st.Icon, 24, d.th.Accent, pptx.HorizontalCenter)
			y += 0.6
		}

		value := textBox(slide, layout.Region{X: r.X, Y: y, W: r.W, H: 1.0})
		value.SetTextAnchor(pptx.TextAnchorMiddle)
		p := value.GetActiveParagraph()
		p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
		run := p.CreateTextRun(string(st.Value))
		d.style(run, 36, d.th.Primary).SetBold(true)
		y += 1.0

		if st.Label != "" {
			box := textBox(slide, layout.Region{X: r.X, Y: y, W: r.W, H: 0.5})
			d.oneLiner(box, st.Label, 14, d.th.TextDark, pptx.HorizontalCenter)
			y += 0.5
		}
		if st.Trend != "" {
			text, c := trendParts(st.Trend)
			box := textBox(slide, layout.Region{X: r.X, Y: y, W: r.W, H: 0.35})
			p := box.GetActiveParagraph()
			p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			d.style(p.CreateTextRun(text), 12, c).SetBold(true)
			y += 0.4
		}
		if st.Description != "" {
			box := textBox(slide, layout.Region{X: r.X + 0.1, Y: y, W: r.W - 0.2, H: r.Y + r.H - y - 0.1})
			para := box.GetActiveParagraph()
			para.SetLineSpacingPercent(120)
			para.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			d.addSegments(para, st.Description, 11, grayCaption, false)
		}
	}
}

// trendParts splits a trend string into display text and color. A
// leading '-' means down; the sign itself is replaced by the arrow.
func trendParts(trend string) (string, theme.RGB) {
	t := strings.TrimSpace(trend)
	if strings.HasPrefix(t, "-") {
		return "▼ " + strings.TrimPrefix(t, "-"), trendDown
	}
	return "▲ " + strings.TrimPrefix(t, "+"), trendUp
}

func (d *deckComposer) timelineSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	if len(spec.Steps) == 0 {
		return
	}
	plan := layout.Timeline(layout.TimelineBounds(), len(spec.Steps))
	rect(slide, plan.Axis, rgb(d.th.Secondary))

	for i, ts := range plan.Steps {
		step := spec.Steps[i]

		marker := circle(slide, ts.Marker.X, ts.Marker.Y, ts.Marker.W, rgb(d.th.Accent))
		marker.SetBorder(pptx.NewBorder().SetSolid(rgb(d.th.Primary), int(pptx.Point(2))))
		marker.SetText(strconv.Itoa(i + 1))
		marker.GetFont().SetName(d.font).SetNameEA(d.font).SetSize(12).SetBold(true).SetColor(rgb(d.th.TextLight))
		marker.SetTextAlign(pptx.HorizontalCenter)
		marker.SetTextAnchor(pptx.TextAnchorMiddle)

		if step.TimeLabel != "" {
			box := textBox(slide, ts.Label)
			p := box.GetActiveParagraph()
			p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			run := p.CreateTextRun(step.TimeLabel)
			d.style(run, 11, d.th.Accent).SetBold(true)
		}
		if step.Title != "" {
			box := textBox(slide, ts.Title)
			p := box.GetActiveParagraph()
			p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			d.addSegments(p, step.Title, 14, d.th.Primary, true)
		}
		if step.Description != "" {
			box := textBox(slide, ts.Body)
			p := box.GetActiveParagraph()
			p.SetLineSpacingPercent(120)
			p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			d.addSegments(p, step.Description, 11, grayBody, false)
		}
	}
}

func (d *deckComposer) tableSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	cols := len(spec.Headers)
	for _, row := range spec.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	hasHeader := len(spec.Headers) > 0
	totalRows := len(spec.Rows)
	if hasHeader {
		totalRows++
	}
	if cols == 0 || totalRows == 0 {
		d.warnf("slide %d: table slide without rows", index+1)
		return
	}

	table := slide.CreateTableShape(totalRows, cols)
	table.SetPosition(pptx.Inch(0.5), pptx.Inch(1.5))
	table.SetWidth(pptx.Inch(12.3))
	table.SetHeight(pptx.Inch(float64(totalRows) * 0.5))

	widths := make([]int64, cols)
	for c := range widths {
		widths[c] = pptx.Inch(12.3 / float64(cols))
	}
	table.SetColumnWidths(widths)
	heights := make([]int64, totalRows)
	for r := range heights {
		heights[r] = pptx.Inch(0.5)
	}
	table.SetRowHeights(heights)

	stripes := [2]theme.RGB{{R: 0xFF, G: 0xFF, B: 0xFF}, d.th.Light}

	if hasHeader {
		for c := 0; c < cols; c++ {
			cell := table.GetCell(0, c)
			cell.SetFill(pptx.NewFill().SetSolid(rgb(d.th.Primary)))
			cell.SetTextAnchor(pptx.TextAnchorMiddle)
			text := ""
			if c < len(spec.Headers) {
				text = spec.Headers[c]
			}
			run := cell.CreateTextRun(text)
			run.GetFont().SetName(d.font).SetNameEA(d.font).SetSize(13).SetBold(true).SetColor(pptx.NewColor("FFFFFF"))
			for _, p := range cell.GetParagraphs() {
				p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			}
		}
	}

	for j, row := range spec.Rows {
		r := j
		if hasHeader {
			r++
		}
		for c := 0; c < cols; c++ {
			cell := table.GetCell(r, c)
			cell.SetFill(pptx.NewFill().SetSolid(rgb(stripes[r%2])))
			cell.SetTextAnchor(pptx.TextAnchorMiddle)
			text := ""
			if c < len(row) {
				text = string(row[c])
			}
			run := cell.CreateTextRun(text)
			run.GetFont().SetName(d.font).SetNameEA(d.font).SetSize(12).SetColor(rgb(d.th.TextDark))
			for _, p := range cell.GetParagraphs() {
				p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			}
		}
	}
}

func (d *deckComposer) imageSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	region := layout.Region{X: 1.5, Y: 1.5, W: 10, H: 5}
	if spec.Description != "" {
		region = layout.Region{X: 0.8, Y: 1.5, W: 7.5, H: 5}
		d.textBlock(slide, layout.Region{X: 8.8, Y: 1.5, W: 4, H: 5}, spec.Description, 14, d.th.TextDark, 140)
	}

	if spec.Path == "" {
		d.warnf("slide %d: image slide without path", index+1)
	} else {
		img := slide.CreateDrawingShape()
		if err := img.SetImageFromFile(spec.Path); err != nil {
			d.warnf("slide %d: image %s skipped: %v", index+1, spec.Path, err)
			slide.RemoveShapeByPointer(img)
		} else {
			img.SetOffsetX(pptx.Inch(region.X)).SetOffsetY(pptx.Inch(region.Y)).SetWidth(pptx.Inch(region.W)).SetHeight(pptx.Inch(region.H))
		}
	}

	if spec.Caption != "" {
		box := textBox(slide, layout.Region{X: 0.8, Y: 6.5, W: 11.5, H: 0.5})
		p := box.GetActiveParagraph()
		p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
		run := p.CreateTextRun(spec.Caption)
		d.style(run, 12, grayCaption).SetItalic(true)
	}
}

func (d *deckComposer) comparisonSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	d.contentFrame(slide, index, spec.Title)

	cols := layout.Columns(layout.Region{X: 0.5, Y: 1.5, W: 12.3, H: 5.2}, 2, 0.5)
	borders := [2]theme.RGB{d.th.Primary, d.th.Accent}
	titles := [2]string{spec.LeftTitle, spec.RightTitle}
	bodies := [2]ContentList{spec.LeftItems, spec.RightItems}

	for i, col := range cols {
		d.panel(slide, col, borders[i], 2)
		rect(slide, layout.Region{X: col.X, Y: col.Y, W: col.W, H: 0.06}, rgb(borders[i]))

		if titles[i] != "" {
			box := textBox(slide, layout.Region{X: col.X + 0.3, Y: 1.7, W: col.W - 0.6, H: 0.6})
			p := box.GetActiveParagraph()
			p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
			d.addSegments(p, titles[i], 20, borders[i], true)
		}
		d.contentBlock(slide, layout.Region{X: col.X + 0.3, Y: 2.5, W: col.W - 0.6, H: 3.8}, bodies[i], 14, d.th.TextDark, 150)
	}

	vs := circle(slide, 6.1, 3.5, 0.8, rgb(d.th.Secondary))
	vs.SetText("VS")
	vs.GetFont().SetName(d.font).SetNameEA(d.font).SetSize(14).SetBold(true).SetColor(rgb(d.th.TextLight))
	vs.SetTextAlign(pptx.HorizontalCenter)
	vs.SetTextAnchor(pptx.TextAnchorMiddle)
}

func (d *deckComposer) quoteSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	slide.SetBackground(gradientFill(d.th.TitleGradient()))

	mark := textBox(slide, layout.Region{X: 1, Y: 1.2, W: 3, H: 2})
	mark.SetTextAnchor(pptx.TextAnchorTop)
	run := mark.CreateTextRun("“")
	d.style(run, 120, d.th.Accent.Lighten(0.2)).SetBold(true)

	quote := textBox(slide, layout.Region{X: 2, Y: 2.5, W: 9.5, H: 3})
	quote.SetTextAnchor(pptx.TextAnchorMiddle)
	p := quote.GetActiveParagraph()
	p.SetLineSpacingPercent(150)
	p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
	for _, seg := range parseInlineMarkdown(spec.Text) {
		if seg.Text == "" {
			continue
		}
		f := d.style(p.CreateTextRun(seg.Text), 28, d.th.TextLight)
		f.SetItalic(true)
		if seg.Bold {
			f.SetBold(true)
		}
	}

	if spec.Author != "" {
		rect(slide, layout.Region{X: 5.5, Y: 5.5, W: 2, H: 0.04}, rgb(d.th.Accent))
		box := textBox(slide, layout.Region{X: 2, Y: 5.7, W: 9.5, H: 0.6})
		d.oneLiner(box, "— "+spec.Author, 18, d.th.TextLight.Lighten(0.2), pptx.HorizontalCenter)
	}

	d.bottomEdge(slide)
}

func (d *deckComposer) endingSlide(slide *pptx.Slide, index int, spec *SlideSpec) {
	slide.SetBackground(gradientFill(d.th.TitleGradient()))
	circle(slide, 10, -1, 3.5, rgb(d.th.Accent.Lighten(0.15)))
	circle(slide, -1, 5, 3, rgb(d.th.Primary.Darken(0.5)))

	text := spec.Title
	if text == "" {
		text = "Thank You"
	}
	title := textBox(slide, layout.Region{X: 1, Y: 2.0, W: 11.3, H: 2.5})
	title.SetTextAnchor(pptx.TextAnchorMiddle)
	p := title.GetActiveParagraph()
	p.SetAlignment(pptx.NewAlignment().SetHorizontal(pptx.HorizontalCenter))
	d.addSegments(p, text, 48, d.th.TextLight, true)

	if spec.Subtitle != "" {
		box := textBox(slide, layout.Region{X: 2, Y: 4.5, W: 9.3, H: 1.0})
		d.oneLiner(box, spec.Subtitle, 20, d.th.TextLight.Lighten(0.2), pptx.HorizontalCenter)
	}

	d.bottomEdge(slide)
}

// --- native charts ---

// nativeChart renders a normalized plot as an editable chart shape.
func (d *deckComposer) nativeChart(slide *pptx.Slide, r layout.Region, plot chartspec.Plot) {
	shape := slide.CreateChartShape()
	shape.SetPosition(pptx.Inch(r.X), pptx.Inch(r.Y))
	shape.SetSize(pptx.Inch(r.W), pptx.Inch(r.H))

	title := shape.GetTitle()
	if plot.Title != "" {
		title.SetText(plot.Title)
		title.Font.SetName(d.font).SetNameEA(d.font).SetSize(14).SetBold(true)
	} else {
		title.SetVisible(false)
	}

	legend := shape.GetLegend()
	legend.Visible = plot.ShowLegend
	legend.Position = pptx.LegendPosition(plot.LegendPosition)
	legend.Font.SetName(d.font).SetNameEA(d.font).SetSize(11)

	pa := shape.GetPlotArea()
	if plot.XAxisTitle != "" {
		pa.GetAxisX().SetTitle(plot.XAxisTitle)
	}
	if plot.YAxisTitle != "" {
		pa.GetAxisY().SetTitle(plot.YAxisTitle)
	}
	pa.SetType(d.chartOf(plot))
}

// chartOf maps a plot onto the matching chart type with its series
// attached.
func (d *deckComposer) chartOf(plot chartspec.Plot) pptx.ChartType {
	series := d.seriesOf(plot)
	switch plot.Kind {
	case chartspec.KindLine, chartspec.KindLineSmooth:
		c := pptx.NewLineChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		c.SetSmooth(plot.Kind == chartspec.KindLineSmooth)
		return c
	case chartspec.KindArea, chartspec.KindAreaStacked:
		c := pptx.NewAreaChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		if plot.Kind.Stacked() {
			c.SetGrouping(pptx.AreaGroupingStacked)
		}
		return c
	case chartspec.KindPie:
		c := pptx.NewPieChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case chartspec.KindDoughnut:
		c := pptx.NewDoughnutChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case chartspec.KindScatter:
		c := pptx.NewScatterChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	case chartspec.KindRadar:
		c := pptx.NewRadarChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		return c
	default:
		c := pptx.NewBarChart()
		for _, s := range series {
			c.AddSeries(s)
		}
		if plot.Kind.Stacked() {
			c.SetBarGrouping(pptx.BarGroupingStacked)
		}
		if plot.Kind.Horizontal() {
			c.SetBarDirection(pptx.BarDirectionHorizontal)
		}
		return c
	}
}

// seriesOf converts normalized plot series to chart series. Pie-like
// charts take per-slice palette colors; scatter charts use formatted x
// values as categories.
func (d *deckComposer) seriesOf(plot chartspec.Plot) []*pptx.ChartSeries {
	out := make([]*pptx.ChartSeries, 0, len(plot.Series))
	for _, ps := range plot.Series {
		cats := plot.Categories
		if !plot.Kind.CategoryBased() {
			cats = make([]string, len(ps.XValues))
			for i, x := range ps.XValues {
				cats[i] = strconv.FormatFloat(x, 'f', -1, 64)
			}
		}
		s := pptx.NewChartSeriesOrdered(ps.Name, cats, ps.Values)
		s.SetNumberFormat(plot.NumberFormat)
		if plot.Kind.PieLike() {
			points := make([]pptx.Color, len(plot.Palette))
			for i, c := range plot.Palette {
				points[i] = rgb(c)
			}
			s.SetPointColors(points)
		} else {
			s.SetFillColor(rgb(ps.Color))
		}
		if plot.ShowValues || plot.ShowDataLabels {
			s.ShowValue = true
			s.SetLabelPosition(labelPositionFor(plot.Kind))
			s.Font.SetName(d.font).SetNameEA(d.font).SetSize(10)
		}
		out = append(out, s)
	}
	return out
}

// labelPositionFor picks the data label anchor per chart family.
func labelPositionFor(kind chartspec.Kind) string {
	switch {
	case kind.PieLike():
		return pptx.LabelBestFit
	case kind.Stacked():
		return pptx.LabelCenter
	default:
		return pptx.LabelOutsideEnd
	}
}
