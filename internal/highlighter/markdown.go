package highlighter

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Markdown has no tree-sitter grammar in our stack; the chroma lexer
// already ships with the theme dependency, so its token stream is mapped
// onto the category set instead.
func highlightMarkdown(normalized string, lines []string) [][]Span {
	lexer := lexers.Get("markdown")
	if lexer == nil {
		return plainDocument(lines)
	}

	it, err := lexer.Tokenise(nil, normalized)
	if err != nil {
		return plainDocument(lines)
	}

	raw := make([]rawSpan, 0, 64)
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		end := offset + len(tok.Value)
		if cat := categoryForChromaType(tok.Type); cat != TokenPlain {
			raw = append(raw, rawSpan{Start: offset, End: end, Cat: cat})
		}
		offset = end
	}
	return spansByLine(lines, raw)
}

func categoryForChromaType(tt chroma.TokenType) TokenCategory {
	switch {
	case tt == chroma.GenericHeading || tt == chroma.GenericSubheading:
		return TokenTag
	case tt == chroma.GenericStrong || tt == chroma.GenericEmph:
		return TokenKeyword
	case tt == chroma.NameTag:
		return TokenTag
	case tt == chroma.NameAttribute:
		return TokenKey
	case tt.InCategory(chroma.Comment):
		return TokenComment
	case tt.InCategory(chroma.Keyword):
		return TokenKeyword
	case tt.InCategory(chroma.LiteralString):
		return TokenString
	case tt.InCategory(chroma.LiteralNumber):
		return TokenNumber
	case tt.InCategory(chroma.Operator) || tt.InCategory(chroma.Punctuation):
		return TokenOperator
	default:
		return TokenPlain
	}
}
