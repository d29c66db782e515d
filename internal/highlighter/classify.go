package highlighter

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"tint/internal/lang"
)

func classifyLeaf(format lang.Format, node *sitter.Node, parentType string, grandType string, field string, text []byte) TokenCategory {
	nodeType := strings.ToLower(node.Type())
	lexeme := strings.ToLower(strings.TrimSpace(string(text)))

	if nodeType == "error" || strings.Contains(nodeType, "invalid") {
		return TokenError
	}
	if strings.Contains(nodeType, "comment") {
		return TokenComment
	}

	if field == "key" || strings.Contains(nodeType, "key") {
		if format == lang.TOML && isTableContext(parentType, grandType) {
			return TokenTag
		}
		return TokenKey
	}

	switch format {
	case lang.HTML:
		switch {
		case nodeType == "tag_name":
			return TokenTag
		case nodeType == "attribute_name":
			return TokenKey
		case strings.Contains(nodeType, "attribute_value"):
			return TokenString
		case strings.Contains(nodeType, "doctype") || lexeme == "doctype":
			return TokenKeyword
		case strings.Contains(nodeType, "entity"):
			return TokenConstant
		}
	case lang.Shell:
		if field == "name" || parentType == "command_name" {
			return TokenFunction
		}
		if strings.Contains(nodeType, "variable_name") {
			return TokenConstant
		}
	case lang.YAML:
		if strings.Contains(nodeType, "anchor") || strings.Contains(nodeType, "alias") || strings.Contains(nodeType, "tag") {
			return TokenKeyword
		}
	}

	if strings.Contains(nodeType, "string") || strings.Contains(nodeType, "heredoc") || strings.Contains(parentType, "string") {
		return TokenString
	}
	if strings.Contains(nodeType, "number") || strings.Contains(nodeType, "integer") || strings.Contains(nodeType, "float") || strings.Contains(nodeType, "numeric") {
		return TokenNumber
	}
	if strings.Contains(nodeType, "boolean") || strings.Contains(nodeType, "null") {
		return TokenConstant
	}
	// TOML datetimes read as literals.
	if strings.Contains(nodeType, "date") || strings.Contains(nodeType, "time") {
		return TokenNumber
	}
	if lexeme == "true" || lexeme == "false" || lexeme == "null" || lexeme == "~" {
		return TokenConstant
	}

	if keywordSet[lexeme] {
		return TokenKeyword
	}
	if !node.IsNamed() && looksLikePunctuation(lexeme) {
		return TokenOperator
	}
	return TokenPlain
}

// A key directly inside a [table] header (possibly through a dotted_key)
// renders as the header itself; keys under a pair keep the key color.
func isTableContext(parentType string, grandType string) bool {
	if strings.Contains(parentType, "table") {
		return true
	}
	return strings.Contains(parentType, "key") && strings.Contains(grandType, "table")
}

func looksLikePunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case '{', '}', '[', ']', '(', ')', '<', '>', ':', ';', ',', '.',
			'=', '-', '+', '*', '/', '%', '!', '?', '&', '|', '^', '~',
			'"', '\'', '`', '$', '#', '@', '\\':
		default:
			return false
		}
	}
	return true
}

// Shell control words; the data formats have no keywords of their own.
var keywordSet = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "in": true, "function": true,
	"local": true, "export": true, "readonly": true, "return": true,
	"break": true, "continue": true, "declare": true, "source": true,
}
