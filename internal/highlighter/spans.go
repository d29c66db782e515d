package highlighter

import (
	"sort"
	"unicode/utf8"
)

func plainLine(line string) []Span {
	runeLen := utf8.RuneCountInString(line)
	if runeLen == 0 {
		return nil
	}
	return []Span{{Start: 0, End: runeLen, Cat: TokenPlain}}
}

func plainDocument(lines []string) [][]Span {
	out := make([][]Span, len(lines))
	for i, line := range lines {
		out[i] = plainLine(line)
	}
	return out
}

// spansByLine distributes document-level byte spans onto the lines they
// overlap, converting to per-line rune indices. raw must be ordered by
// start offset, which a leaf walk and a lexer pass both produce.
func spansByLine(lines []string, raw []rawSpan) [][]Span {
	out := make([][]Span, len(lines))
	lineStart := 0
	next := 0
	for i, line := range lines {
		lineEnd := lineStart + len(line)

		for next < len(raw) && raw[next].End <= lineStart {
			next++
		}

		var collected []Span
		for j := next; j < len(raw) && raw[j].Start < lineEnd; j++ {
			start := max(raw[j].Start, lineStart)
			end := min(raw[j].End, lineEnd)
			if end <= start {
				continue
			}
			collected = append(collected, Span{
				Start: byteToRuneIndex(line, start-lineStart),
				End:   byteToRuneIndex(line, end-lineStart),
				Cat:   raw[j].Cat,
			})
		}

		out[i] = normalizeSpans(collected, utf8.RuneCountInString(line))
		lineStart = lineEnd + 1 // the newline
	}
	return out
}

// normalizeSpans clips spans to the line, resolves overlaps in favor of
// the earlier span, fills gaps with plain spans, and merges adjacent spans
// of the same category. The result always covers [0, runeLen).
func normalizeSpans(spans []Span, runeLen int) []Span {
	if runeLen <= 0 {
		return nil
	}

	clean := make([]Span, 0, len(spans))
	for _, span := range spans {
		start := span.Start
		end := span.End
		if start < 0 {
			start = 0
		}
		if end > runeLen {
			end = runeLen
		}
		if end <= start {
			continue
		}
		clean = append(clean, Span{Start: start, End: end, Cat: span.Cat})
	}

	sort.Slice(clean, func(i, j int) bool {
		if clean[i].Start == clean[j].Start {
			return clean[i].End < clean[j].End
		}
		return clean[i].Start < clean[j].Start
	})

	out := make([]Span, 0, len(clean)+2)
	cursor := 0
	for _, span := range clean {
		start := span.Start
		end := span.End

		if start < cursor {
			start = cursor
		}
		if end <= start {
			continue
		}

		if start > cursor {
			out = appendMergedSpan(out, cursor, start, TokenPlain)
		}
		out = appendMergedSpan(out, start, end, span.Cat)

		cursor = end
	}

	if cursor < runeLen {
		out = appendMergedSpan(out, cursor, runeLen, TokenPlain)
	}

	return out
}

func appendMergedSpan(spans []Span, start int, end int, cat TokenCategory) []Span {
	if end <= start {
		return spans
	}

	if len(spans) > 0 {
		last := &spans[len(spans)-1]
		if last.End == start && last.Cat == cat {
			last.End = end
			return spans
		}
	}

	return append(spans, Span{Start: start, End: end, Cat: cat})
}

func byteToRuneIndex(s string, b int) int {
	if b <= 0 {
		return 0
	}
	if b >= len(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(s[:b])
}
