// Package sniff guesses the format of a byte buffer from its content.
// It is the fallback used when no filename is available (stdin, pipes):
// a fixed chain of per-format heuristics scans a bounded prefix of the
// input and the first rule to commit wins. It is best-effort by design;
// only the JSON rule fully validates what it claims.
package sniff

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"tint/internal/lang"
)

// DefaultMaxProbe is how many leading bytes the heuristics examine.
const DefaultMaxProbe = 2048

type probe struct {
	data  []byte
	text  string
	lines []string
}

// A rule inspects the probe and either commits to a format or abstains by
// returning lang.Unknown, in which case the next rule in the chain runs.
type rule func(*probe) lang.Format

// Rule order is load-bearing: the shebang check must precede anything that
// reacts to a leading '#', and TOML must get its shot at '[section]' lines
// before Markdown sees them as link syntax.
var rules = []rule{
	sniffShell,
	sniffJSON,
	sniffLog,
	sniffTOML,
	sniffMarkdown,
	sniffYAML,
	sniffHTML,
}

// Detect classifies data using the default probe size.
func Detect(data []byte) lang.Format {
	return DetectProbe(data, DefaultMaxProbe)
}

// DetectProbe classifies data, examining at most maxProbe leading bytes
// (the JSON rule alone re-reads the whole buffer). It returns one of the
// lang format constants, lang.Text when the content is valid UTF-8 with no
// stronger signal, or lang.Unknown for empty or binary input. It never
// fails; identical inputs always produce identical results.
func DetectProbe(data []byte, maxProbe int) lang.Format {
	if len(data) == 0 {
		return lang.Unknown
	}
	if maxProbe <= 0 {
		maxProbe = DefaultMaxProbe
	}

	head := data
	if len(head) > maxProbe {
		head = head[:maxProbe]
	}
	if !utf8.Valid(head) {
		return lang.Unknown
	}

	p := &probe{
		data:  data,
		text:  string(head),
		lines: splitLines(string(head)),
	}
	for _, r := range rules {
		if f := r(p); f != lang.Unknown {
			return f
		}
	}
	return lang.Text
}

var shellInterpreters = []string{"sh", "bash", "zsh", "fish", "ksh"}

func sniffShell(p *probe) lang.Format {
	if !strings.HasPrefix(p.text, "#!") || len(p.lines) == 0 {
		return lang.Unknown
	}
	shebang := strings.ToLower(p.lines[0])
	for _, interp := range shellInterpreters {
		if strings.Contains(shebang, interp) {
			return lang.Shell
		}
	}
	return lang.Unknown
}

// sniffJSON runs a strict parse over the entire original buffer, not just
// the probe window, once the cheap prefix check passes. A JSON-shaped but
// invalid buffer abstains rather than committing to text: later rules
// still get a chance to claim it.
func sniffJSON(p *probe) lang.Format {
	trimmed := strings.TrimLeftFunc(p.text, unicode.IsSpace)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return lang.Unknown
	}
	if utf8.Valid(p.data) && json.Valid(p.data) {
		return lang.JSON
	}
	return lang.Unknown
}

var (
	reISOStamp  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}`)
	reDateStamp = regexp.MustCompile(`^(\[\d{4}-\d{2}-\d{2}|\d{4}/\d{2}/\d{2})`)
	reLevelMark = regexp.MustCompile(`\[(INFO|ERROR|WARN|DEBUG)\]|\s(INFO|ERROR|WARN|DEBUG)\s| (INFO|ERROR|WARN|DEBUG):`)
)

func sniffLog(p *probe) lang.Format {
	score := 0
	if len(p.lines) > 0 {
		first := p.lines[0]
		if reISOStamp.MatchString(first) {
			score += 2
		}
		if reDateStamp.MatchString(first) {
			score += 2
		}
	}
	// One pass over the whole probe; the first level marker is enough.
	if reLevelMark.MatchString(p.text) {
		score += 2
	}
	if score >= 2 {
		return lang.Log
	}
	return lang.Unknown
}

var (
	reTableHeader = regexp.MustCompile(`^\[\[?[^\]]+\]\]?$`)
	reTOMLKey     = regexp.MustCompile(`^[A-Za-z0-9_\-]+(\.?[A-Za-z0-9_\-]+)*\s*=`)
	reMDHeading   = regexp.MustCompile(`^#{1,6}\s+\S`)
)

func sniffTOML(p *probe) lang.Format {
	score := 0
	markdownLike := false
	for _, line := range capLines(p.lines, 50) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// A [section] or [[array]] header spanning the whole line is the
		// one decisive TOML signal.
		if reTableHeader.MatchString(trimmed) {
			score += 3
		} else if reTOMLKey.MatchString(trimmed) {
			score++
		}
		if strings.Contains(line, `"""`) || strings.Contains(line, "'''") {
			score++
		}
		if reMDHeading.MatchString(trimmed) {
			markdownLike = true
		}
	}

	if score >= 3 {
		return lang.TOML
	}
	if !markdownLike {
		if score >= 1 && len(p.lines) < 5 {
			return lang.TOML
		}
		if score >= 2 {
			return lang.TOML
		}
	}
	return lang.Unknown
}

var (
	reListMarker = regexp.MustCompile(`^[-*+]\s+`)
	reInlineLink = regexp.MustCompile(`\[.+?\]\(.+?\)`)
	reKeyColon   = regexp.MustCompile(`^[A-Za-z0-9_\-]+\s*:\s*`)
)

func sniffMarkdown(p *probe) lang.Format {
	score := 0
	yamlSignals := 0
	for _, line := range capLines(p.lines, 30) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if reMDHeading.MatchString(trimmed) {
			score += 2
		}
		if reListMarker.MatchString(trimmed) {
			score++
		}
		if strings.HasPrefix(trimmed, ">") {
			score++
		}
		if strings.HasPrefix(trimmed, "```") {
			score += 2
		}
		if reInlineLink.MatchString(line) {
			score++
		}
		if reKeyColon.MatchString(trimmed) {
			yamlSignals++
		}
	}

	// Bare key: lines are a stronger YAML signal than anything scored
	// above; defer to the YAML rule entirely.
	if yamlSignals >= 1 {
		return lang.Unknown
	}
	if score >= 1 && len(p.lines) < 5 {
		return lang.Markdown
	}
	if score >= 2 {
		return lang.Markdown
	}
	return lang.Unknown
}

var reYAMLItem = regexp.MustCompile(`^-\s+`)

func sniffYAML(p *probe) lang.Format {
	score := 0
	if strings.HasPrefix(p.text, "---") {
		score += 2
	}
	for _, line := range capLines(p.lines, 50) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if reKeyColon.MatchString(trimmed) {
			score++
		}
		if reYAMLItem.MatchString(trimmed) {
			score++
		}
		if trimmed == "..." {
			score++
		}

		if score >= 1 && len(p.lines) < 5 {
			return lang.YAML
		}
		if score >= 2 {
			return lang.YAML
		}
	}
	return lang.Unknown
}

var htmlNeedles = []string{
	"<!doctype html",
	"<html",
	"<head>",
	"<body>",
	"<div",
	"<span",
}

func sniffHTML(p *probe) lang.Format {
	window := p.text
	if runes := []rune(window); len(runes) > 2000 {
		window = string(runes[:2000])
	}
	lower := strings.ToLower(window)
	for _, needle := range htmlNeedles {
		if strings.Contains(lower, needle) {
			return lang.HTML
		}
	}
	return lang.Unknown
}

func capLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// splitLines breaks on \n, \r\n, and lone \r without synthesizing a
// trailing empty line, so line counts match what the thresholds expect.
func splitLines(s string) []string {
	lines := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
