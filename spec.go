package gooffice

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/VantageDataChat/GoOffice/chartspec"
	"github.com/VantageDataChat/GoOffice/xlsx"
)

// The parse layer turns raw spec JSON into fully typed blocks before
// any builder runs. Builders never touch raw maps; every alias key is
// folded here and every scalar is coerced to its canonical form.

// --- Presentation ---

// PresentationSpec is a parsed presentation description.
type PresentationSpec struct {
	Title        string            `json:"title"`
	Theme        string            `json:"theme"`
	CustomColors map[string]string `json:"customColors"`
	Slides       []SlideSpec       `json:"slides"`
	Settings     DeckSettings      `json:"settings"`
}

// UnmarshalJSON accepts "custom_colors" as an alias for "customColors".
func (s *PresentationSpec) UnmarshalJSON(data []byte) error {
	type plain PresentationSpec
	aux := struct {
		*plain
		CustomColorsAlias map[string]string `json:"custom_colors"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.CustomColors == nil {
		s.CustomColors = aux.CustomColorsAlias
	}
	return nil
}

// DeckSettings are presentation-level settings.
type DeckSettings struct {
	Author      string `json:"author"`
	Company     string `json:"company"`
	DefaultFont string `json:"defaultFont"`
}

func (s *DeckSettings) UnmarshalJSON(data []byte) error {
	type plain DeckSettings
	aux := struct {
		*plain
		DefaultFontAlias string `json:"default_font"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.DefaultFont == "" {
		s.DefaultFont = aux.DefaultFontAlias
	}
	return nil
}

// SlideSpec is one parsed slide. Only the fields matching the slide's
// type are consulted by its builder; the rest stay at their zero
// values.
type SlideSpec struct {
	Type          string          `json:"type"`
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle"`
	Author        string          `json:"author"`
	Date          string          `json:"date"`
	SectionNumber string          `json:"sectionNumber"`
	Content       ContentList     `json:"content"`
	Left          ContentList     `json:"left"`
	Right         ContentList     `json:"right"`
	LeftTitle     string          `json:"leftTitle"`
	RightTitle    string          `json:"rightTitle"`
	Columns       []ColumnSpec    `json:"columns"`
	Cards         []CardSpec      `json:"cards"`
	Chart         *chartspec.Spec `json:"chart"`
	Description   string          `json:"description"`
	Stats         []StatSpec      `json:"stats"`
	Steps         []StepSpec      `json:"steps"`
	Headers       []string        `json:"headers"`
	Rows          [][]CellText    `json:"rows"`
	Path          string          `json:"path"`
	Caption       string          `json:"caption"`
	LeftItems     ContentList     `json:"leftItems"`
	RightItems    ContentList     `json:"rightItems"`
	Text          string          `json:"text"`
	Notes         string          `json:"notes"`
}

// UnmarshalJSON folds the snake_case alias keys onto their canonical
// fields: slide_type, section_number, left_column/right_column,
// left_title/right_title, left_items/right_items and image_path.
func (s *SlideSpec) UnmarshalJSON(data []byte) error {
	type plain SlideSpec
	aux := struct {
		*plain
		SlideType     string      `json:"slide_type"`
		SectionNumber string      `json:"section_number"`
		LeftColumn    ContentList `json:"left_column"`
		RightColumn   ContentList `json:"right_column"`
		LeftTitle     string      `json:"left_title"`
		RightTitle    string      `json:"right_title"`
		LeftItems     ContentList `json:"left_items"`
		RightItems    ContentList `json:"right_items"`
		ImagePath     string      `json:"image_path"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.Type == "" {
		s.Type = aux.SlideType
	}
	if s.SectionNumber == "" {
		s.SectionNumber = aux.SectionNumber
	}
	if len(s.Left) == 0 {
		s.Left = aux.LeftColumn
	}
	if len(s.Right) == 0 {
		s.Right = aux.RightColumn
	}
	if s.LeftTitle == "" {
		s.LeftTitle = aux.LeftTitle
	}
	if s.RightTitle == "" {
		s.RightTitle = aux.RightTitle
	}
	if len(s.LeftItems) == 0 {
		s.LeftItems = aux.LeftItems
	}
	if len(s.RightItems) == 0 {
		s.RightItems = aux.RightItems
	}
	if s.Path == "" {
		s.Path = aux.ImagePath
	}
	return nil
}

// ContentItem is one line of slide content.
type ContentItem struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Bold  bool   `json:"bold"`
}

// ContentList is slide body content. It accepts three JSON shapes: a
// plain string, an array of strings, or an array of objects with text,
// level and bold fields. The shapes may be mixed within one array.
type ContentList []ContentItem

func (c *ContentList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = ContentList{{Text: single}}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content must be a string or an array")
	}
	items := make(ContentList, 0, len(raw))
	for i, r := range raw {
		var line string
		if err := json.Unmarshal(r, &line); err == nil {
			items = append(items, ContentItem{Text: line})
			continue
		}
		var item ContentItem
		if err := json.Unmarshal(r, &item); err != nil {
			return fmt.Errorf("content item %d: %w", i, err)
		}
		if item.Level < 0 {
			item.Level = 0
		}
		items = append(items, item)
	}
	*c = items
	return nil
}

// ColumnSpec is one column of a three-column slide.
type ColumnSpec struct {
	Title   string      `json:"title"`
	Icon    string      `json:"icon"`
	Content ContentList `json:"content"`
}

// CardSpec is one card on a cards slide. "content" is accepted as an
// alias for "description".
type CardSpec struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (c *CardSpec) UnmarshalJSON(data []byte) error {
	type plain CardSpec
	aux := struct {
		*plain
		Content string `json:"content"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.Description == "" {
		c.Description = aux.Content
	}
	return nil
}

// StatSpec is one highlighted figure on a stats slide. Trend carries an
// optional signed delta such as "+12%" or "-3pt"; its sign picks the
// arrow drawn next to the value.
type StatSpec struct {
	Value       CellText `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Trend       string   `json:"trend"`
}

// StepSpec is one step on a timeline slide.
type StepSpec struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeLabel   string `json:"timeLabel"`
}

func (s *StepSpec) UnmarshalJSON(data []byte) error {
	type plain StepSpec
	aux := struct {
		*plain
		TimeLabelAlias string `json:"time_label"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.TimeLabel == "" {
		s.TimeLabel = aux.TimeLabelAlias
	}
	return nil
}

// CellText is table cell content coerced to a string: JSON strings
// pass through, numbers and booleans are formatted, null reads as "".
type CellText string

func (c *CellText) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		*c = CellText(val)
	case float64:
		*c = CellText(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		*c = CellText(strconv.FormatBool(val))
	case nil:
		*c = ""
	default:
		return fmt.Errorf("cell must be a string, number, boolean or null")
	}
	return nil
}

// canonicalSlideTag folds the accepted slide type aliases onto one
// canonical tag. Unknown strings map to "", which the dispatcher routes
// to the content builder with a warning.
func canonicalSlideTag(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "cover":
		return "title"
	case "section", "divider":
		return "section"
	case "content", "text":
		return "content"
	case "two_column", "two_columns":
		return "two_column"
	case "three_column", "three_columns":
		return "three_column"
	case "cards":
		return "cards"
	case "chart":
		return "chart"
	case "stats", "statistics":
		return "stats"
	case "timeline":
		return "timeline"
	case "table":
		return "table"
	case "image":
		return "image"
	case "comparison":
		return "comparison"
	case "quote":
		return "quote"
	case "ending", "thank_you":
		return "ending"
	default:
		return ""
	}
}

// --- Workbook ---

// WorkbookSpec is a parsed spreadsheet description.
type WorkbookSpec struct {
	Sheets   []SheetSpec  `json:"sheets"`
	Settings BookSettings `json:"settings"`
}

// BookSettings are workbook-level settings.
type BookSettings struct {
	Author  string `json:"author"`
	Company string `json:"company"`
}

// SheetSpec is one parsed worksheet.
type SheetSpec struct {
	Name           string            `json:"name"`
	Headers        []string          `json:"headers"`
	Data           [][]CellValue     `json:"data"`
	Formulas       []FormulaSpec     `json:"formulas"`
	ColumnWidths   ColumnWidths      `json:"columnWidths"`
	RowHeights     RowHeights        `json:"rowHeights"`
	Merges         []string          `json:"merges"`
	HeaderStyle    *HeaderStyleSpec  `json:"headerStyle"`
	StripeColors   []string          `json:"stripeColors"`
	NumberFormats  map[string]string `json:"numberFormats"`
	FreezePanes    string            `json:"freezePanes"`
	AutoFilter     string            `json:"autoFilter"`
	PrintTitleRows string            `json:"printTitleRows"`
	Validations    []ValidationSpec  `json:"validations"`
	CondFormats    []CondFormatSpec  `json:"conditionalFormatting"`
	Charts         []SheetChart      `json:"charts"`
}

// UnmarshalJSON folds the snake_case sheet key aliases.
func (s *SheetSpec) UnmarshalJSON(data []byte) error {
	type plain SheetSpec
	aux := struct {
		*plain
		ColumnWidths   ColumnWidths      `json:"column_widths"`
		RowHeights     RowHeights        `json:"row_heights"`
		MergeCells     []string          `json:"merge_cells"`
		HeaderStyle    *HeaderStyleSpec  `json:"header_style"`
		StripeColors   []string          `json:"stripe_colors"`
		NumberFormats  map[string]string `json:"number_formats"`
		FreezePanes    string            `json:"freeze_panes"`
		AutoFilter     string            `json:"auto_filter"`
		PrintTitleRows string            `json:"print_title_rows"`
		Validations    []ValidationSpec  `json:"data_validations"`
		CondFormats    []CondFormatSpec  `json:"conditional_formatting"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.ColumnWidths == nil {
		s.ColumnWidths = aux.ColumnWidths
	}
	if s.RowHeights == nil {
		s.RowHeights = aux.RowHeights
	}
	if s.Merges == nil {
		s.Merges = aux.MergeCells
	}
	if s.HeaderStyle == nil {
		s.HeaderStyle = aux.HeaderStyle
	}
	if s.StripeColors == nil {
		s.StripeColors = aux.StripeColors
	}
	if s.NumberFormats == nil {
		s.NumberFormats = aux.NumberFormats
	}
	if s.FreezePanes == "" {
		s.FreezePanes = aux.FreezePanes
	}
	if s.AutoFilter == "" {
		s.AutoFilter = aux.AutoFilter
	}
	if s.PrintTitleRows == "" {
		s.PrintTitleRows = aux.PrintTitleRows
	}
	if s.Validations == nil {
		s.Validations = aux.Validations
	}
	if s.CondFormats == nil {
		s.CondFormats = aux.CondFormats
	}
	return nil
}

// CellValue is one spreadsheet cell scalar: string, number, boolean or
// null. Strings starting with '=' are treated as formulas by the
// composer.
type CellValue struct {
	val any
}

func (c *CellValue) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case string, float64, bool, nil:
		c.val = v
	default:
		return fmt.Errorf("cell must be a string, number, boolean or null")
	}
	return nil
}

// Value returns the decoded scalar: string, float64, bool or nil.
func (c CellValue) Value() any { return c.val }

// FormulaSpec injects a formula into a single cell.
type FormulaSpec struct {
	Cell    string `json:"cell"`
	Formula string `json:"formula"`
}

// ColumnWidths maps zero-based column indexes to widths in character
// units. The JSON form is either a positional array ([15, 20]) or an
// object keyed by column letter ({"A": 15}).
type ColumnWidths map[int]float64

func (cw *ColumnWidths) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		m := make(ColumnWidths, len(arr))
		for i, w := range arr {
			m[i] = w
		}
		*cw = m
		return nil
	}

	var byLetter map[string]float64
	if err := json.Unmarshal(data, &byLetter); err != nil {
		return fmt.Errorf("column widths must be an array or an object keyed by column letter")
	}
	m := make(ColumnWidths, len(byLetter))
	for letter, w := range byLetter {
		col, err := xlsx.ParseColumnName(letter)
		if err != nil {
			return fmt.Errorf("column widths: invalid column %q", letter)
		}
		m[col] = w
	}
	*cw = m
	return nil
}

// RowHeights maps zero-based row indexes to heights in points. The
// JSON form uses 1-based row numbers as keys ({"1": 30}).
type RowHeights map[int]float64

func (rh *RowHeights) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("row heights must be an object keyed by row number")
	}
	m := make(RowHeights, len(raw))
	for key, h := range raw {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 {
			return fmt.Errorf("row heights: invalid row number %q", key)
		}
		m[n-1] = h
	}
	*rh = m
	return nil
}

// HeaderStyleSpec styles the header row of a sheet. Zero-value fields
// fall back to the composer defaults (bold white on 4472C4, centered).
type HeaderStyleSpec struct {
	Bold       *bool   `json:"bold"`
	FontSize   float64 `json:"fontSize"`
	FontName   string  `json:"fontName"`
	FontColor  string  `json:"fontColor"`
	Background string  `json:"background"`
	Alignment  string  `json:"alignment"`
}

func (h *HeaderStyleSpec) UnmarshalJSON(data []byte) error {
	type plain HeaderStyleSpec
	aux := struct {
		*plain
		FontSize   float64 `json:"font_size"`
		FontName   string  `json:"font_name"`
		FontColor  string  `json:"font_color"`
		BgColor    string  `json:"bg_color"`
		Fill       string  `json:"fill"`
	}{plain: (*plain)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if h.FontSize == 0 {
		h.FontSize = aux.FontSize
	}
	if h.FontName == "" {
		h.FontName = aux.FontName
	}
	if h.FontColor == "" {
		h.FontColor = aux.FontColor
	}
	if h.Background == "" {
		h.Background = aux.BgColor
	}
	if h.Background == "" {
		h.Background = aux.Fill
	}
	return nil
}

// ValidationSpec adds a dropdown-list validation over a range.
type ValidationSpec struct {
	Range   string   `json:"range"`
	Options []string `json:"options"`
}

// CondFormatSpec is one conditional formatting rule. Type selects the
// consulted fields: color_scale uses minColor/maxColor, data_bar uses
// color, cell_is uses operator/value/fontColor/background, icon_set
// uses iconStyle.
type CondFormatSpec struct {
	Range      string   `json:"range"`
	Type       string   `json:"type"`
	MinColor   string   `json:"minColor"`
	MaxColor   string   `json:"maxColor"`
	Color      string   `json:"color"`
	Operator   string   `json:"operator"`
	Value      CellText `json:"value"`
	FontColor  string   `json:"fontColor"`
	Background string   `json:"background"`
	IconStyle  string   `json:"iconStyle"`
}

func (c *CondFormatSpec) UnmarshalJSON(data []byte) error {
	type plain CondFormatSpec
	aux := struct {
		*plain
		MinColor  string `json:"min_color"`
		MaxColor  string `json:"max_color"`
		FontColor string `json:"font_color"`
		BgColor   string `json:"bg_color"`
		IconStyle string `json:"icon_style"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.MinColor == "" {
		c.MinColor = aux.MinColor
	}
	if c.MaxColor == "" {
		c.MaxColor = aux.MaxColor
	}
	if c.FontColor == "" {
		c.FontColor = aux.FontColor
	}
	if c.Background == "" {
		c.Background = aux.BgColor
	}
	if c.IconStyle == "" {
		c.IconStyle = aux.IconStyle
	}
	return nil
}

// SheetChart is a chart spec plus its cell anchor on the sheet.
type SheetChart struct {
	Spec     chartspec.Spec
	Position string
	RowSpan  int
	ColSpan  int
}

func (c *SheetChart) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &c.Spec); err != nil {
		return err
	}
	var aux struct {
		Position string `json:"position"`
		RowSpan  int    `json:"rowSpan"`
		ColSpan  int    `json:"colSpan"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Position = aux.Position
	c.RowSpan = aux.RowSpan
	c.ColSpan = aux.ColSpan
	return nil
}

// --- Report ---

// ReportSpec is a parsed word-processor document description.
type ReportSpec struct {
	Title    string         `json:"title"`
	Blocks   []BlockSpec    `json:"blocks"`
	Settings ReportSettings `json:"settings"`
}

// ReportSettings are document-level settings for reports.
type ReportSettings struct {
	DefaultFont string      `json:"defaultFont"`
	FontSize    float64     `json:"fontSize"`
	Margins     *MarginSpec `json:"margins"`
	HeaderText  string      `json:"headerText"`
	FooterText  string      `json:"footerText"`
	PageNumbers bool        `json:"pageNumbers"`
	LineSpacing float64     `json:"lineSpacing"`
	Orientation string      `json:"orientation"`
}

func (s *ReportSettings) UnmarshalJSON(data []byte) error {
	type plain ReportSettings
	aux := struct {
		*plain
		DefaultFont     string  `json:"default_font"`
		FontSize        float64 `json:"font_size"`
		DefaultFontSize float64 `json:"default_font_size"`
		HeaderText      string  `json:"header_text"`
		FooterText      string  `json:"footer_text"`
		PageNumbers     bool    `json:"page_numbers"`
		LineSpacing     float64 `json:"line_spacing"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.DefaultFont == "" {
		s.DefaultFont = aux.DefaultFont
	}
	if s.FontSize == 0 {
		s.FontSize = aux.FontSize
	}
	if s.FontSize == 0 {
		s.FontSize = aux.DefaultFontSize
	}
	if s.HeaderText == "" {
		s.HeaderText = aux.HeaderText
	}
	if s.FooterText == "" {
		s.FooterText = aux.FooterText
	}
	if !s.PageNumbers {
		s.PageNumbers = aux.PageNumbers
	}
	if s.LineSpacing == 0 {
		s.LineSpacing = aux.LineSpacing
	}
	return nil
}

// MarginSpec sets page margins in centimeters. Zero values keep the
// writer default.
type MarginSpec struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// BlockSpec is one parsed report block. Only the fields matching the
// block's type are consulted by its builder.
type BlockSpec struct {
	Type             string          `json:"type"`
	Title            string          `json:"title"`
	Subtitle         string          `json:"subtitle"`
	Author           string          `json:"author"`
	Date             string          `json:"date"`
	Levels           int             `json:"levels"`
	Text             string          `json:"text"`
	Level            int             `json:"level"`
	Bold             bool            `json:"bold"`
	Italic           bool            `json:"italic"`
	Alignment        string          `json:"alignment"`
	Items            []ListItem      `json:"items"`
	Headers          []string        `json:"headers"`
	Rows             [][]CellText    `json:"rows"`
	HeaderBackground string          `json:"headerBackground"`
	StripeColors     []string        `json:"stripeColors"`
	Path             string          `json:"path"`
	Width            float64         `json:"width"`
	Caption          string          `json:"caption"`
	Chart            *chartspec.Spec `json:"chart"`
	Code             string          `json:"code"`
	Language         string          `json:"language"`
	Orientation      string          `json:"orientation"`
}

func (b *BlockSpec) UnmarshalJSON(data []byte) error {
	type plain BlockSpec
	aux := struct {
		*plain
		HeaderBg     string   `json:"header_bg_color"`
		StripeColors []string `json:"stripe_colors"`
	}{plain: (*plain)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if b.HeaderBackground == "" {
		b.HeaderBackground = aux.HeaderBg
	}
	if b.StripeColors == nil {
		b.StripeColors = aux.StripeColors
	}
	return nil
}

// ListItem is one list entry: a plain string or {text, level}.
type ListItem struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

func (li *ListItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		li.Text = s
		li.Level = 0
		return nil
	}
	type plain ListItem
	if err := json.Unmarshal(data, (*plain)(li)); err != nil {
		return fmt.Errorf("list item must be a string or an object: %w", err)
	}
	if li.Level < 0 {
		li.Level = 0
	}
	return nil
}

// canonicalBlockTag validates a report block type. Unknown strings map
// to "", which the dispatcher routes to the paragraph builder with a
// warning.
func canonicalBlockTag(s string) string {
	tag := strings.ToLower(strings.TrimSpace(s))
	switch tag {
	case "cover_page", "toc", "heading", "paragraph", "rich_paragraph",
		"bullet_list", "numbered_list", "table", "image", "chart",
		"quote", "code_block", "horizontal_rule", "page_break",
		"section_break", "watermark":
		return tag
	default:
		return ""
	}
}
