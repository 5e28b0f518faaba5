// Package theme provides the color model and named theme registry used by
// the document composers: hex/named color parsing, per-channel lighten and
// darken transforms, multi-stop gradient descriptions, and resolution of a
// preset palette merged with caller overrides.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// RGB is a 24-bit color. The zero value is black.
type RGB struct {
	R, G, B uint8
}

// namedColors maps the supported color names to their hex values.
var namedColors = map[string]string{
	"red":       "FF0000",
	"green":     "00AA00",
	"blue":      "0066CC",
	"black":     "000000",
	"white":     "FFFFFF",
	"gray":      "888888",
	"grey":      "888888",
	"orange":    "FF8800",
	"purple":    "8800CC",
	"yellow":    "FFCC00",
	"navy":      "003366",
	"teal":      "008080",
	"darkblue":  "003366",
	"darkgreen": "006600",
	"darkred":   "990000",
}

// Hex parses a color of the form "#RRGGBB", "RRGGBB", or the shorthand
// "#RGB". The second return value reports whether the input was valid.
func Hex(s string) (RGB, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, false
	}
	var c RGB
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, false
	}
	return c, true
}

func mustHex(s string) RGB {
	c, ok := Hex(s)
	if !ok {
		panic("theme: bad hex literal " + s)
	}
	return c
}

// Lookup resolves a color from a hex string or a color name
// (red, green, blue, navy, teal, ...). The second return value reports
// whether the input was recognized.
func Lookup(s string) (RGB, bool) {
	if s == "" {
		return RGB{}, false
	}
	if hex, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return mustHex(hex), true
	}
	return Hex(s)
}

// ParseColor is Lookup with a fallback: unrecognized input returns def.
func ParseColor(s string, def RGB) RGB {
	if c, ok := Lookup(s); ok {
		return c
	}
	return def
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// clampChannel truncates toward zero after clamping to [0,255]. Truncation
// rather than rounding keeps Darken(white, 0.5) at #7F7F7F.
func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Lighten blends the color toward white: each channel becomes
// ch + (255-ch)*factor. Per-channel linear interpolation, not perceptual.
func (c RGB) Lighten(factor float64) RGB {
	return RGB{
		R: clampChannel(float64(c.R) + (255-float64(c.R))*factor),
		G: clampChannel(float64(c.G) + (255-float64(c.G))*factor),
		B: clampChannel(float64(c.B) + (255-float64(c.B))*factor),
	}
}

// Darken scales each channel by factor.
func (c RGB) Darken(factor float64) RGB {
	return RGB{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}
}

// GradientStop is one point along a gradient. Position is a fraction of the
// gradient run in [0,1].
type GradientStop struct {
	Position float64
	Color    RGB
}

// Gradient is an ordered list of at least two stops with strictly
// increasing positions, the first at 0 and the last at 1, plus a direction
// angle in degrees (0 = left-to-right, 270 = top-to-bottom).
type Gradient struct {
	Angle float64
	Stops []GradientStop
}

// BuildGradient constructs a linear gradient from start to end. Extra stops
// are clamped strictly inside (0,1), sorted by position, and deduplicated;
// the result always begins at position 0 and ends at position 1.
func BuildGradient(start, end RGB, angle float64, extra ...GradientStop) Gradient {
	inner := make([]GradientStop, 0, len(extra))
	for _, s := range extra {
		p := s.Position
		if p <= 0 || p >= 1 {
			continue
		}
		inner = append(inner, GradientStop{Position: p, Color: s.Color})
	}
	sort.SliceStable(inner, func(i, j int) bool { return inner[i].Position < inner[j].Position })

	stops := make([]GradientStop, 0, len(inner)+2)
	stops = append(stops, GradientStop{Position: 0, Color: start})
	last := 0.0
	for _, s := range inner {
		if s.Position <= last {
			continue
		}
		stops = append(stops, s)
		last = s.Position
	}
	stops = append(stops, GradientStop{Position: 1, Color: end})
	return Gradient{Angle: angle, Stops: stops}
}
