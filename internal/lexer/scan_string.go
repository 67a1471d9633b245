package lexer

import (
	"cclex/internal/token"
)

// scanQuoted is entered after the opening quote (and the optional L prefix).
// '\' escapes exactly the next byte without validation; a raw newline is allowed.
func (lx *Lexer) scanQuoted(start position, quote byte) (token.Token, error) {
	kind, what := token.StringLit, "string literal"
	if quote == '\'' {
		kind, what = token.CharConst, "character literal"
	}

	body := 0
	for {
		if lx.buf.EOF() {
			return token.Token{}, lx.fail(start, ErrUnterminatedStringOrChar, 0, "unterminated %s", what)
		}
		c := lx.get()
		if c == quote {
			break
		}
		body++
		if c == '\\' {
			// грубая обработка escape: съесть следующий байт; EOF поймает проверка выше
			lx.get()
		}
	}

	if kind == token.CharConst && body == 0 {
		return token.Token{}, lx.fail(start, ErrEmptyCharLiteral, 0, "empty character literal")
	}
	return lx.emit(kind, start), nil
}
