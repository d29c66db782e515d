package highlighter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reLogTimestamp = regexp.MustCompile(`\d{4}[-/]\d{2}[-/]\d{2}([ T]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?)?|\d{2}:\d{2}:\d{2}(\.\d+)?`)
	reLogLevel     = regexp.MustCompile(`\b(TRACE|DEBUG|INFO|NOTICE|WARN|WARNING|ERROR|FATAL|PANIC)\b`)
	reLogQuoted    = regexp.MustCompile(`"[^"]*"`)
)

// Log files have no grammar; a line scanner marks the pieces worth
// coloring and leaves the rest plain.
func highlightLog(lines []string) [][]Span {
	out := make([][]Span, len(lines))
	for i, line := range lines {
		spans := make([]Span, 0, 4)
		for _, m := range reLogTimestamp.FindAllStringIndex(line, -1) {
			spans = append(spans, byteSpan(line, m[0], m[1], TokenNumber))
		}
		for _, m := range reLogLevel.FindAllStringIndex(line, -1) {
			spans = append(spans, byteSpan(line, m[0], m[1], levelCategory(line[m[0]:m[1]])))
		}
		for _, m := range reLogQuoted.FindAllStringIndex(line, -1) {
			spans = append(spans, byteSpan(line, m[0], m[1], TokenString))
		}
		out[i] = normalizeSpans(spans, utf8.RuneCountInString(line))
	}
	return out
}

func levelCategory(level string) TokenCategory {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL", "PANIC":
		return TokenError
	case "WARN", "WARNING":
		return TokenKeyword
	case "INFO", "NOTICE":
		return TokenFunction
	default:
		return TokenComment
	}
}

func byteSpan(line string, start int, end int, cat TokenCategory) Span {
	return Span{
		Start: byteToRuneIndex(line, start),
		End:   byteToRuneIndex(line, end),
		Cat:   cat,
	}
}
