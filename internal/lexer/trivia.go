package lexer

// skipTrivia пропускает пробелы и комментарии перед значимым токеном.
//   - ' ', '\t', '\n', '\v', '\f', '\r'
//   - // ... до '\n'
//   - /* ... */ без вложенности; незакрытый — ошибка
func (lx *Lexer) skipTrivia() error {
	for !lx.buf.EOF() {
		b := lx.buf.Peek()
		if isSpace(b) {
			lx.get()
			continue
		}
		if b != '/' {
			return nil
		}

		start := lx.here()
		lx.get() // '/'
		switch lx.buf.Peek() {
		case '/':
			lx.skipLineComment()
		case '*':
			lx.get()
			if err := lx.skipBlockComment(start); err != nil {
				return err
			}
		default:
			// это не комментарий — вернём '/', пусть сканируется как оператор
			lx.unget()
			return nil
		}
	}
	return nil
}

func (lx *Lexer) skipLineComment() {
	for !lx.buf.EOF() && lx.buf.Peek() != '\n' {
		lx.get()
	}
}

// skipBlockComment is entered after "/*" and stops after the first "*/".
func (lx *Lexer) skipBlockComment(start position) error {
	for {
		if lx.buf.EOF() {
			return lx.fail(start, ErrUnterminatedComment, 0, "unterminated block comment")
		}
		if lx.get() == '*' && lx.eat('/') {
			return nil
		}
	}
}
