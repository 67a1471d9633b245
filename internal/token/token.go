package token

import (
	"cclex/internal/source"
)

// Token is one lexeme with its class. Text is always the exact source bytes of Span,
// including digraph spellings such as "<%".
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a character, string or numeric constant.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsWide reports whether a string or char literal carries the L prefix.
func (t Token) IsWide() bool {
	return (t.Kind == StringLit || t.Kind == CharConst) && len(t.Text) > 0 && t.Text[0] == 'L'
}

// IsDigraph reports whether a bracket punctuator was spelled with a two-character digraph.
func (t Token) IsDigraph() bool {
	switch t.Kind {
	case LBrace, RBrace, LBracket, RBracket:
		return len(t.Text) == 2
	default:
		return false
	}
}
