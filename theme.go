package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

type ThemePalette struct {
	Name     string
	Text     string
	StatusBG string
	StatusFG string
	Muted    string
	Keyword  string
	Key      string
	Tag      string
	Function string
	String   string
	Number   string
	Constant string
	Comment  string
	Operator string
	Error    string
}

var appTheme = mustDefaultTheme()

func SetTheme(name string) error {
	palette, err := LoadThemePalette(name)
	if err != nil {
		return err
	}
	appTheme = palette
	return nil
}

// DefaultThemeName honors TINT_THEME before falling back to the built-in
// default.
func DefaultThemeName() string {
	if env := strings.TrimSpace(os.Getenv("TINT_THEME")); env != "" {
		return env
	}
	return "nord"
}

func LoadThemePalette(name string) (ThemePalette, error) {
	requested := strings.TrimSpace(name)
	if requested == "" {
		requested = DefaultThemeName()
	}

	lookup := normalizeThemeName(requested)
	names := styles.Names()
	available := make(map[string]struct{}, len(names))
	for _, n := range names {
		available[n] = struct{}{}
	}
	unknownThemeErr := func() error {
		sort.Strings(names)
		return fmt.Errorf("unknown theme %q. try one of: %s", requested, strings.Join(topThemeHints(names), ", "))
	}
	if _, ok := available[lookup]; !ok {
		return ThemePalette{}, unknownThemeErr()
	}

	style := styles.Get(lookup)
	if style == nil {
		return ThemePalette{}, unknownThemeErr()
	}

	baseBG := pickBackground(style, "#2E3440", chroma.Background, chroma.LineHighlight)
	baseFG := pickForeground(style, "#D8DEE9", chroma.Text, chroma.Background)
	comment := pickForeground(style, adjustTone(baseFG, -60), chroma.Comment)

	palette := ThemePalette{
		Name:     lookup,
		Text:     baseFG,
		StatusBG: pickBackground(style, autoSelection(baseBG), chroma.LineHighlight),
		StatusFG: pickForeground(style, baseFG, chroma.Text),
		Muted:    pickForeground(style, adjustTone(baseFG, -48), chroma.LineNumbers, chroma.Comment),
		Keyword:  pickForeground(style, baseFG, chroma.Keyword),
		Key:      pickForeground(style, baseFG, chroma.NameTag, chroma.NameAttribute, chroma.Keyword),
		Tag:      pickForeground(style, baseFG, chroma.GenericHeading, chroma.NameTag, chroma.Keyword),
		Function: pickForeground(style, baseFG, chroma.NameFunction, chroma.Name),
		String:   pickForeground(style, baseFG, chroma.LiteralString),
		Number:   pickForeground(style, baseFG, chroma.LiteralNumber),
		Constant: pickForeground(style, baseFG, chroma.KeywordConstant, chroma.LiteralNumber),
		Comment:  comment,
		Operator: pickForeground(style, baseFG, chroma.Operator),
		Error:    pickForeground(style, "#BF616A", chroma.Error),
	}

	return palette, nil
}

func ListThemes() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

func normalizeThemeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "solarized":
		return "solarized-dark"
	case "one-dark":
		return "onedark"
	default:
		return n
	}
}

func pickForeground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Colour.IsSet() {
			return entry.Colour.String()
		}
	}
	return fallback
}

func pickBackground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Background.IsSet() {
			return entry.Background.String()
		}
	}
	return fallback
}

func topThemeHints(all []string) []string {
	wanted := []string{"nord", "dracula", "monokai", "github", "github-dark", "solarized-dark", "solarized-light", "gruvbox", "onedark"}
	set := map[string]bool{}
	for _, n := range all {
		set[n] = true
	}
	out := make([]string, 0, len(wanted))
	for _, name := range wanted {
		if set[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		limit := min(8, len(all))
		return all[:limit]
	}
	return out
}

func autoSelection(bg string) string {
	return adjustTone(bg, autoDelta(bg, 18, -18))
}

func autoDelta(bg string, darkDelta int, lightDelta int) int {
	r, g, b, ok := parseHexRGB(bg)
	if !ok {
		return darkDelta
	}
	l := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	if l < 128 {
		return darkDelta
	}
	return lightDelta
}

func adjustTone(hex string, delta int) string {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return hex
	}
	r = clamp8(r + delta)
	g = clamp8(g + delta)
	b = clamp8(b + delta)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func parseHexRGB(hex string) (int, int, int, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	r := int((v >> 16) & 0xFF)
	g := int((v >> 8) & 0xFF)
	b := int(v & 0xFF)
	return r, g, b, true
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func mustDefaultTheme() ThemePalette {
	p, err := LoadThemePalette("nord")
	if err == nil {
		return p
	}
	return ThemePalette{
		Name:     "fallback",
		Text:     "#D8DEE9",
		StatusBG: "#434C5E",
		StatusFG: "#D8DEE9",
		Muted:    "#4C566A",
		Keyword:  "#81A1C1",
		Key:      "#8FBCBB",
		Tag:      "#88C0D0",
		Function: "#88C0D0",
		String:   "#A3BE8C",
		Number:   "#B48EAD",
		Constant: "#B48EAD",
		Comment:  "#4C566A",
		Operator: "#D8DEE9",
		Error:    "#BF616A",
	}
}
