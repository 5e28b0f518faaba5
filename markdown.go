package gooffice

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// inlineSegment is a run of text with uniform styling.
type inlineSegment struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

var inlineParser = goldmark.New()

// parseInlineMarkdown splits one logical paragraph into styled
// segments, honoring **bold**, *italic* and `code` spans. Strings that
// parse to anything more structured than a single paragraph (lists,
// headings, multiple blocks) are returned literally so markers like
// "1. " survive.
func parseInlineMarkdown(src string) []inlineSegment {
	if src == "" {
		return nil
	}
	if !strings.ContainsAny(src, "*_`") {
		return []inlineSegment{{Text: src}}
	}

	source := []byte(src)
	doc := inlineParser.Parser().Parse(text.NewReader(source))
	if doc.ChildCount() != 1 {
		return []inlineSegment{{Text: src}}
	}
	para, ok := doc.FirstChild().(*ast.Paragraph)
	if !ok {
		return []inlineSegment{{Text: src}}
	}

	var segs []inlineSegment
	var walk func(n ast.Node, bold, italic bool)
	walk = func(n ast.Node, bold, italic bool) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch node := child.(type) {
			case *ast.Text:
				if v := node.Segment.Value(source); len(v) > 0 {
					segs = append(segs, inlineSegment{Text: string(v), Bold: bold, Italic: italic})
				}
				if node.SoftLineBreak() || node.HardLineBreak() {
					segs = append(segs, inlineSegment{Text: "\n", Bold: bold, Italic: italic})
				}
			case *ast.Emphasis:
				if node.Level >= 2 {
					walk(node, true, italic)
				} else {
					walk(node, bold, true)
				}
			case *ast.CodeSpan:
				segs = append(segs, inlineSegment{Text: string(node.Text(source)), Bold: bold, Italic: italic, Code: true})
			default:
				if child.HasChildren() {
					walk(child, bold, italic)
				}
			}
		}
	}
	walk(para, false, false)
	if len(segs) == 0 {
		return []inlineSegment{{Text: src}}
	}
	return segs
}
