package theme

import (
	"sort"
	"strings"
)

// DefaultName is the preset used when an unknown theme name is requested.
const DefaultName = "midnight"

// DefaultFont is the font assigned to themes unless settings override it.
const DefaultFont = "微软雅黑"

// Theme is a resolved, immutable set of semantic color roles plus a font
// name. Downstream components treat it as read-only.
type Theme struct {
	Name           string
	Primary        RGB
	Secondary      RGB
	Accent         RGB
	Light          RGB
	Dark           RGB
	TextDark       RGB
	TextLight      RGB
	Background     RGB
	GradientStart  RGB
	GradientEnd    RGB
	CardBackground RGB
	CardBorder     RGB
	FontName       string
}

var presets = map[string]Theme{
	"ocean": {
		Name:    "ocean",
		Primary: mustHex("#1A5276"), Secondary: mustHex("#2980B9"), Accent: mustHex("#3498DB"),
		Light: mustHex("#D6EAF8"), Dark: mustHex("#0E2F44"), TextDark: mustHex("#1C2833"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#F0F8FF"),
		GradientStart: mustHex("#1A5276"), GradientEnd: mustHex("#2980B9"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#AED6F1"),
	},
	"forest": {
		Name:    "forest",
		Primary: mustHex("#1E8449"), Secondary: mustHex("#27AE60"), Accent: mustHex("#2ECC71"),
		Light: mustHex("#D5F5E3"), Dark: mustHex("#0B3D1E"), TextDark: mustHex("#1C2833"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#F0FFF0"),
		GradientStart: mustHex("#1E8449"), GradientEnd: mustHex("#27AE60"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#ABEBC6"),
	},
	"sunset": {
		Name:    "sunset",
		Primary: mustHex("#C0392B"), Secondary: mustHex("#E74C3C"), Accent: mustHex("#F39C12"),
		Light: mustHex("#FDEDEC"), Dark: mustHex("#641E16"), TextDark: mustHex("#1C2833"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#FFF5F0"),
		GradientStart: mustHex("#C0392B"), GradientEnd: mustHex("#E74C3C"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#F5B7B1"),
	},
	"royal": {
		Name:    "royal",
		Primary: mustHex("#6C3483"), Secondary: mustHex("#8E44AD"), Accent: mustHex("#BB8FCE"),
		Light: mustHex("#F4ECF7"), Dark: mustHex("#3B1A5C"), TextDark: mustHex("#1C2833"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#FAF0FF"),
		GradientStart: mustHex("#6C3483"), GradientEnd: mustHex("#8E44AD"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#D2B4DE"),
	},
	"midnight": {
		Name:    "midnight",
		Primary: mustHex("#2C3E50"), Secondary: mustHex("#34495E"), Accent: mustHex("#1ABC9C"),
		Light: mustHex("#EBF5FB"), Dark: mustHex("#1B2631"), TextDark: mustHex("#1C2833"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#F8F9FA"),
		GradientStart: mustHex("#2C3E50"), GradientEnd: mustHex("#34495E"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#AEB6BF"),
	},
	"coral": {
		Name:    "coral",
		Primary: mustHex("#E8725C"), Secondary: mustHex("#F09E8C"), Accent: mustHex("#F7C59F"),
		Light: mustHex("#FFF0EB"), Dark: mustHex("#8B3A2F"), TextDark: mustHex("#2D2D2D"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#FFFAF8"),
		GradientStart: mustHex("#E8725C"), GradientEnd: mustHex("#F09E8C"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#F5C6BA"),
	},
	"tech": {
		Name:    "tech",
		Primary: mustHex("#0D47A1"), Secondary: mustHex("#1565C0"), Accent: mustHex("#42A5F5"),
		Light: mustHex("#E3F2FD"), Dark: mustHex("#0A1929"), TextDark: mustHex("#1A237E"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#F5F9FF"),
		GradientStart: mustHex("#0D47A1"), GradientEnd: mustHex("#1565C0"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#90CAF9"),
	},
	"elegant": {
		Name:    "elegant",
		Primary: mustHex("#2C2C2C"), Secondary: mustHex("#555555"), Accent: mustHex("#C9A96E"),
		Light: mustHex("#F5F0E8"), Dark: mustHex("#1A1A1A"), TextDark: mustHex("#2C2C2C"),
		TextLight: mustHex("#FFFFFF"), Background: mustHex("#FAFAF5"),
		GradientStart: mustHex("#2C2C2C"), GradientEnd: mustHex("#555555"),
		CardBackground: mustHex("#FFFFFF"), CardBorder: mustHex("#D5C4A1"),
	},
}

// Names returns the preset theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a preset by name (case-insensitive) and shallow-merges
// the overrides on top of it. Unknown names fall back to the midnight
// preset. Override keys accept both camelCase and snake_case role names;
// values go through Lookup, and values that parse to nothing leave the
// preset color in place.
func Resolve(name string, overrides map[string]string) Theme {
	t, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		t = presets[DefaultName]
	}
	t.FontName = DefaultFont

	for key, val := range overrides {
		c, valid := Lookup(val)
		if !valid {
			continue
		}
		switch normalizeRole(key) {
		case "primary":
			t.Primary = c
		case "secondary":
			t.Secondary = c
		case "accent":
			t.Accent = c
		case "light":
			t.Light = c
		case "dark":
			t.Dark = c
		case "textdark":
			t.TextDark = c
		case "textlight":
			t.TextLight = c
		case "bg", "background":
			t.Background = c
		case "gradientstart":
			t.GradientStart = c
		case "gradientend":
			t.GradientEnd = c
		case "cardbg", "cardbackground":
			t.CardBackground = c
		case "cardborder":
			t.CardBorder = c
		}
	}
	return t
}

func normalizeRole(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "")
}

// TitleGradient returns the top-to-bottom gradient used behind title and
// section slides, with a mid stop blended toward the theme's secondary
// color.
func (t Theme) TitleGradient() Gradient {
	mid := GradientStop{Position: 0.5, Color: t.GradientStart.Lighten(0.15)}
	return BuildGradient(t.GradientStart, t.GradientEnd, 270, mid)
}
