package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tint/internal/highlighter"
)

type styleSet map[highlighter.TokenCategory]lipgloss.Style

func buildStyles(p ThemePalette) styleSet {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return styleSet{
		highlighter.TokenPlain:    fg(p.Text),
		highlighter.TokenKeyword:  fg(p.Keyword),
		highlighter.TokenKey:      fg(p.Key),
		highlighter.TokenTag:      fg(p.Tag).Bold(true),
		highlighter.TokenFunction: fg(p.Function),
		highlighter.TokenString:   fg(p.String),
		highlighter.TokenNumber:   fg(p.Number),
		highlighter.TokenConstant: fg(p.Constant),
		highlighter.TokenComment:  fg(p.Comment).Italic(true),
		highlighter.TokenOperator: fg(p.Operator),
		highlighter.TokenError:    fg(p.Error),
	}
}

func renderDocument(lines []string, spans [][]highlighter.Span, styles styleSet) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		var lineSpans []highlighter.Span
		if i < len(spans) {
			lineSpans = spans[i]
		}
		out[i] = renderLine(line, lineSpans, styles)
	}
	return out
}

func renderLine(line string, spans []highlighter.Span, styles styleSet) string {
	if line == "" {
		return ""
	}
	if len(spans) == 0 {
		return styles[highlighter.TokenPlain].Render(line)
	}

	runes := []rune(line)
	var b strings.Builder
	for _, span := range spans {
		start := span.Start
		end := span.End
		if start < 0 || end > len(runes) || end <= start {
			continue
		}
		style, ok := styles[span.Cat]
		if !ok {
			style = styles[highlighter.TokenPlain]
		}
		b.WriteString(style.Render(string(runes[start:end])))
	}
	return b.String()
}
