package lexer

import (
	"cclex/internal/token"
)

// scanIdentOrKeyword вызывается после первого байта [A-Za-z_].
// Ключевые слова регистрозависимые; Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword(start position) token.Token {
	lx.eatWhile(isIdentContinueByte)

	tok := lx.emit(token.Ident, start)
	if token.LookupKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}
