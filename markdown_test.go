package gooffice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInlineMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []inlineSegment
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "plain text fast path",
			src:  "no markup here",
			want: []inlineSegment{{Text: "no markup here"}},
		},
		{
			name: "bold",
			src:  "a **b** c",
			want: []inlineSegment{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}},
		},
		{
			name: "italic",
			src:  "a *b* c",
			want: []inlineSegment{{Text: "a "}, {Text: "b", Italic: true}, {Text: " c"}},
		},
		{
			name: "code span",
			src:  "run `go test` now",
			want: []inlineSegment{{Text: "run "}, {Text: "go test", Code: true}, {Text: " now"}},
		},
		{
			name: "nested bold italic",
			src:  "**a *b***",
			want: []inlineSegment{{Text: "a ", Bold: true}, {Text: "b", Bold: true, Italic: true}},
		},
		{
			name: "list marker survives literally",
			src:  "1. not a list item with `x`",
			want: []inlineSegment{{Text: "1. not a list item with `x`"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlineMarkdown(tt.src))
		})
	}
}

func TestParseInlineMarkdown_UnbalancedMarkers(t *testing.T) {
	segs := parseInlineMarkdown("dangling ** marker")
	text := ""
	for _, s := range segs {
		text += s.Text
	}
	assert.Contains(t, text, "dangling")
	assert.Contains(t, text, "marker")
}
