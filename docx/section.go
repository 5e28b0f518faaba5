package docx

// Page orientation values.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// US-Letter page geometry in twips, matching the common Word defaults.
const (
	defaultPageWidth  = 12240 // 8.5 in
	defaultPageHeight = 15840 // 11 in
	defaultMargin     = 1440  // 1 in
	defaultHeaderDist = 720   // 0.5 in
)

// Section is a run of body blocks sharing one page setup. Word stores
// the page size, margins and header references per section, so
// orientation changes mid-document always start a new section.
type Section struct {
	pageWidth    int // twips
	pageHeight   int
	orientation  string
	marginTop    int
	marginBottom int
	marginLeft   int
	marginRight  int
	blocks       []Block
}

func newSection() *Section {
	return &Section{
		pageWidth:    defaultPageWidth,
		pageHeight:   defaultPageHeight,
		orientation:  OrientationPortrait,
		marginTop:    defaultMargin,
		marginBottom: defaultMargin,
		marginLeft:   defaultMargin,
		marginRight:  defaultMargin,
	}
}

func (s *Section) addBlock(b Block) {
	s.blocks = append(s.blocks, b)
}

// GetBlocks returns the section's body blocks in order.
func (s *Section) GetBlocks() []Block { return s.blocks }

// SetOrientation sets portrait or landscape, swapping the page
// dimensions when the current ones do not match.
func (s *Section) SetOrientation(orientation string) *Section {
	if orientation != OrientationPortrait && orientation != OrientationLandscape {
		s.orientation = orientation // validation reports it
		return s
	}
	s.orientation = orientation
	landscape := orientation == OrientationLandscape
	if (landscape && s.pageWidth < s.pageHeight) || (!landscape && s.pageWidth > s.pageHeight) {
		s.pageWidth, s.pageHeight = s.pageHeight, s.pageWidth
	}
	return s
}

// GetOrientation returns the section orientation.
func (s *Section) GetOrientation() string { return s.orientation }

// SetMargins sets the page margins in centimeters. Non-positive values
// keep the current margin for that side.
func (s *Section) SetMargins(top, bottom, left, right float64) *Section {
	if top > 0 {
		s.marginTop = cmToTwips(top)
	}
	if bottom > 0 {
		s.marginBottom = cmToTwips(bottom)
	}
	if left > 0 {
		s.marginLeft = cmToTwips(left)
	}
	if right > 0 {
		s.marginRight = cmToTwips(right)
	}
	return s
}

// contentWidth is the usable width between the margins in twips. Tables
// without explicit column widths split it evenly.
func (s *Section) contentWidth() int {
	w := s.pageWidth - s.marginLeft - s.marginRight
	if w < 1 {
		return 1
	}
	return w
}
