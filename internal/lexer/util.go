package lexer

// ===== Чтение с учётом строки/колонки =====

// get consumes one byte and advances line/column. At EOF it returns 0 and changes nothing.
func (lx *Lexer) get() byte {
	if lx.buf.EOF() {
		return 0
	}
	c := lx.buf.Get()
	if c == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col = lx.nextCol(lx.col, c)
	}
	return c
}

// unget rewinds one byte. Rewinding over a newline or a tab recovers the column
// by rescanning from the start of the line.
func (lx *Lexer) unget() {
	if !lx.buf.Unget() {
		return
	}
	switch lx.buf.Peek() {
	case '\n':
		lx.line--
		lx.col = lx.columnAt(lx.buf.Pos())
	case '\t':
		lx.col = lx.columnAt(lx.buf.Pos())
	default:
		lx.col--
	}
}

func (lx *Lexer) nextCol(col uint32, c byte) uint32 {
	if c == '\t' && lx.tab > 1 {
		return col + lx.tab - col%lx.tab
	}
	return col + 1
}

// columnAt возвращает колонку смещения off, идя назад до начала строки.
func (lx *Lexer) columnAt(off uint32) uint32 {
	lineStart := off
	for lineStart > lx.buf.Begin() && lx.buf.At(lineStart-1) != '\n' {
		lineStart--
	}
	var col uint32
	for i := lineStart; i < off; i++ {
		col = lx.nextCol(col, lx.buf.At(i))
	}
	return col
}

// ===== Классификаторы =====

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isQuote(b byte) bool { return b == '"' || b == '\'' }

func isDec(b byte) bool   { return b >= '0' && b <= '9' }
func isOctal(b byte) bool { return b >= '0' && b <= '7' }
func isBin(b byte) bool   { return b == '0' || b == '1' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// eatWhile consumes bytes matching pred and returns how many were taken.
func (lx *Lexer) eatWhile(pred func(byte) bool) int {
	n := 0
	for !lx.buf.EOF() && pred(lx.buf.Peek()) {
		lx.get()
		n++
	}
	return n
}

// eat consumes the next byte if it equals b.
func (lx *Lexer) eat(b byte) bool {
	if lx.buf.Peek() != b || lx.buf.EOF() {
		return false
	}
	lx.get()
	return true
}
