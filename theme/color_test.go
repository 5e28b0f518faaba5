package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex_Forms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{"hash prefixed", "#1A5276", RGB{0x1A, 0x52, 0x76}, true},
		{"bare", "2980B9", RGB{0x29, 0x80, 0xB9}, true},
		{"shorthand", "#abc", RGB{0xAA, 0xBB, 0xCC}, true},
		{"lowercase", "#ff00aa", RGB{0xFF, 0x00, 0xAA}, true},
		{"whitespace", "  #FFFFFF ", RGB{255, 255, 255}, true},
		{"too short", "#FFFF", RGB{}, false},
		{"not hex", "#GGGGGG", RGB{}, false},
		{"empty", "", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Hex(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseColor_NamedAndFallback(t *testing.T) {
	def := RGB{0x33, 0x33, 0x33}

	assert.Equal(t, RGB{0xFF, 0x00, 0x00}, ParseColor("red", def))
	assert.Equal(t, RGB{0x88, 0x88, 0x88}, ParseColor("GREY", def))
	assert.Equal(t, RGB{0x00, 0x33, 0x66}, ParseColor("navy", def))
	assert.Equal(t, RGB{0x00, 0x80, 0x80}, ParseColor("teal", def))
	assert.Equal(t, RGB{0x12, 0x34, 0x56}, ParseColor("#123456", def))

	assert.Equal(t, def, ParseColor("chartreuse-ish", def))
	assert.Equal(t, def, ParseColor("", def))
}

func TestDarkenLighten_TruncationContract(t *testing.T) {
	white, _ := Hex("#FFFFFF")
	black, _ := Hex("#000000")

	assert.Equal(t, "#7F7F7F", white.Darken(0.5).Hex())
	assert.Equal(t, "#7F7F7F", black.Lighten(0.5).Hex())
}

func TestDarkenLighten_Clamping(t *testing.T) {
	c := RGB{200, 100, 50}

	assert.Equal(t, RGB{255, 255, 255}, c.Lighten(1.0))
	assert.Equal(t, RGB{0, 0, 0}, c.Darken(0))
	assert.Equal(t, c, c.Darken(1.0))
	assert.Equal(t, c, c.Lighten(0))

	// Out-of-range factors clamp instead of wrapping.
	assert.Equal(t, RGB{255, 200, 100}, c.Darken(2.0))
	assert.Equal(t, RGB{0, 0, 0}, c.Darken(-1))
}

func TestBuildGradient_StopInvariants(t *testing.T) {
	start, _ := Hex("#2C3E50")
	end, _ := Hex("#34495E")
	mid, _ := Hex("#1ABC9C")

	tests := []struct {
		name  string
		extra []GradientStop
		count int
	}{
		{"no extra stops", nil, 2},
		{"one mid stop", []GradientStop{{0.5, mid}}, 3},
		{"unsorted extras", []GradientStop{{0.8, mid}, {0.2, mid}}, 4},
		{"out of range dropped", []GradientStop{{-0.5, mid}, {1.5, mid}}, 2},
		{"boundary positions dropped", []GradientStop{{0, mid}, {1, mid}}, 2},
		{"duplicate positions collapse", []GradientStop{{0.4, mid}, {0.4, end}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGradient(start, end, 270, tt.extra...)
			require.Len(t, g.Stops, tt.count)

			assert.Equal(t, 0.0, g.Stops[0].Position)
			assert.Equal(t, 1.0, g.Stops[len(g.Stops)-1].Position)
			assert.Equal(t, start, g.Stops[0].Color)
			assert.Equal(t, end, g.Stops[len(g.Stops)-1].Color)
			for i := 1; i < len(g.Stops); i++ {
				assert.Greater(t, g.Stops[i].Position, g.Stops[i-1].Position)
			}
		})
	}
}
