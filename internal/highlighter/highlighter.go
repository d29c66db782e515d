package highlighter

import (
	"context"
	"strings"

	"tint/internal/lang"

	sitter "github.com/smacker/go-tree-sitter"
	bashlang "github.com/smacker/go-tree-sitter/bash"
	htmllang "github.com/smacker/go-tree-sitter/html"
	tomllang "github.com/smacker/go-tree-sitter/toml"
	yamllang "github.com/smacker/go-tree-sitter/yaml"
	tsjson "github.com/tree-sitter/tree-sitter-json/bindings/go"
)

type TokenCategory int

const (
	TokenPlain TokenCategory = iota
	TokenKeyword
	TokenKey
	TokenTag
	TokenFunction
	TokenString
	TokenNumber
	TokenConstant
	TokenComment
	TokenOperator
	TokenError
)

// Span is a half-open rune range within a single line.
type Span struct {
	Start int
	End   int
	Cat   TokenCategory
}

var grammars = map[lang.Format]*sitter.Language{
	lang.JSON:  sitter.NewLanguage(tsjson.Language()),
	lang.TOML:  tomllang.GetLanguage(),
	lang.YAML:  yamllang.GetLanguage(),
	lang.Shell: bashlang.GetLanguage(),
	lang.HTML:  htmllang.GetLanguage(),
}

// Highlight tokenizes text as the given format and returns one span slice
// per line, contiguous over each line's runes. It never fails: formats
// without a tokenizer, parse errors, and empty lines all degrade to plain
// spans.
func Highlight(format lang.Format, text string) [][]Span {
	normalized := normalizeNewlines(text)
	lines := strings.Split(normalized, "\n")

	if language, ok := grammars[format]; ok {
		return highlightTree(format, language, normalized, lines)
	}
	switch format {
	case lang.Markdown:
		return highlightMarkdown(normalized, lines)
	case lang.Log:
		return highlightLog(lines)
	}
	return plainDocument(lines)
}

// Lines splits text the same way Highlight does, so callers can pair raw
// lines with the spans returned for them.
func Lines(text string) []string {
	return strings.Split(normalizeNewlines(text), "\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

type rawSpan struct {
	Start int // byte offset into the normalized document
	End   int
	Cat   TokenCategory
}

func highlightTree(format lang.Format, language *sitter.Language, normalized string, lines []string) [][]Span {
	source := []byte(normalized)

	parser := sitter.NewParser()
	parser.SetLanguage(language)
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return plainDocument(lines)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return plainDocument(lines)
	}

	raw := make([]rawSpan, 0, 64)
	collectLeafSpans(root, source, format, "", "", "", &raw)
	return spansByLine(lines, raw)
}

// collectLeafSpans walks to the leaves, carrying the lowercased parent and
// grandparent node types plus the nearest enclosing field name (a child
// without its own field inherits the parent's, so a mapping key's quotes
// and content both see field "key").
func collectLeafSpans(node *sitter.Node, src []byte, format lang.Format, parentType string, grandType string, field string, out *[]rawSpan) {
	if node == nil {
		return
	}

	if node.ChildCount() == 0 {
		start := int(node.StartByte())
		end := int(node.EndByte())
		if end <= start || start >= len(src) {
			return
		}
		if end > len(src) {
			end = len(src)
		}
		cat := classifyLeaf(format, node, parentType, grandType, field, src[start:end])
		*out = append(*out, rawSpan{Start: start, End: end, Cat: cat})
		return
	}

	nextParent := strings.ToLower(node.Type())
	for i := 0; i < int(node.ChildCount()); i++ {
		childField := node.FieldNameForChild(i)
		if childField == "" {
			childField = field
		}
		collectLeafSpans(node.Child(i), src, format, nextParent, parentType, childField, out)
	}
}
