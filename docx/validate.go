package docx

import (
	"fmt"
	"strings"
)

// Validate checks the document for structural issues and returns an
// error describing all problems found, or nil if the document is valid.
func (d *Document) Validate() error {
	var errs []string

	if d.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if d.defaultFontSize < 0 {
		errs = append(errs, "default font size must not be negative")
	}
	if d.lineSpacing < 0 {
		errs = append(errs, "line spacing must not be negative")
	}

	for i, section := range d.sections {
		prefix := fmt.Sprintf("section %d", i+1)
		if section.orientation != OrientationPortrait && section.orientation != OrientationLandscape {
			errs = append(errs, fmt.Sprintf("%s: unknown orientation %q", prefix, section.orientation))
		}
		for j, block := range section.blocks {
			bp := fmt.Sprintf("%s block %d", prefix, j+1)
			switch b := block.(type) {
			case *Paragraph:
				for _, e := range validateParagraph(b) {
					errs = append(errs, bp+": "+e)
				}
			case *Table:
				for _, e := range validateTable(b) {
					errs = append(errs, bp+": "+e)
				}
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateParagraph(p *Paragraph) []string {
	var errs []string

	if !validAlignment(p.alignment) {
		errs = append(errs, fmt.Sprintf("unknown alignment %q", p.alignment))
	}
	switch p.style {
	case "", "Normal", "Heading1", "Heading2", "Heading3", "Heading4":
	default:
		errs = append(errs, fmt.Sprintf("unknown paragraph style %q", p.style))
	}
	if p.numID < 0 {
		errs = append(errs, "numbering id must not be negative")
	}

	for _, el := range p.runs {
		switch r := el.(type) {
		case *Run:
			if r.fontSize < 0 {
				errs = append(errs, "run font size must not be negative")
			}
		case *ImageRun:
			if len(r.data) == 0 {
				errs = append(errs, "image has no data")
			}
			switch r.mimeType {
			case "image/png", "image/jpeg", "image/gif", "image/bmp":
			default:
				errs = append(errs, fmt.Sprintf("unsupported image type %q", r.mimeType))
			}
		}
	}
	return errs
}

func validateTable(t *Table) []string {
	var errs []string

	if t.Rows() == 0 || t.Cols() == 0 {
		errs = append(errs, "table has no cells")
	}
	if !validAlignment(t.alignment) {
		errs = append(errs, fmt.Sprintf("unknown table alignment %q", t.alignment))
	}
	for r, row := range t.cells {
		for c, cell := range row {
			for _, e := range validateParagraph(cell.paragraph) {
				errs = append(errs, fmt.Sprintf("cell %d,%d: %s", r, c, e))
			}
		}
	}
	return errs
}

func validAlignment(a string) bool {
	switch a {
	case "", AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}
