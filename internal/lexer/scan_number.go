package lexer

import (
	"strings"

	"cclex/internal/token"
)

// scanNumber is entered after the first decimal digit.
// Формы:
//   - 0x1F, 0XffUL          HexConst
//   - 0b1010                BinConst
//   - 0, 0755, 017u         OctConst
//   - 42, 42lu              IntConst
//   - 1.0, 1., 1e10, 3.5f   FloatConst
func (lx *Lexer) scanNumber(start position, lead byte) (token.Token, error) {
	if lead == '0' {
		switch lx.buf.Peek() {
		case 'x', 'X':
			lx.get()
			return lx.scanRadix(start, token.HexConst, "hexadecimal", isHex)
		case 'b', 'B':
			lx.get()
			return lx.scanRadix(start, token.BinConst, "binary", isBin)
		}
	}

	lx.eatWhile(isDec)

	switch lx.buf.Peek() {
	case '.':
		lx.get()
		return lx.scanFraction(start)
	case 'e', 'E':
		return lx.scanExponentAndSuffix(start)
	}

	if lead == '0' {
		return lx.checkOctal(start)
	}
	return lx.finishInt(start, token.IntConst)
}

// scanFraction is entered right after '.'; digits are optional when an integer part exists.
func (lx *Lexer) scanFraction(start position) (token.Token, error) {
	lx.eatWhile(isDec)
	if b := lx.buf.Peek(); b == 'e' || b == 'E' {
		return lx.scanExponentAndSuffix(start)
	}
	return lx.finishFloat(start)
}

func (lx *Lexer) scanExponentAndSuffix(start position) (token.Token, error) {
	lx.get() // e/E
	if b := lx.buf.Peek(); b == '+' || b == '-' {
		lx.get()
	}
	if lx.eatWhile(isDec) == 0 {
		return token.Token{}, lx.fail(start, ErrInvalidNumberLiteral, lx.buf.Peek(),
			"exponent has no digits")
	}
	return lx.finishFloat(start)
}

// scanRadix is entered after the 0x/0b prefix.
func (lx *Lexer) scanRadix(start position, kind token.Kind, base string, digit func(byte) bool) (token.Token, error) {
	if lx.eatWhile(digit) == 0 {
		return token.Token{}, lx.fail(start, ErrInvalidNumberLiteral, lx.buf.Peek(),
			"%s literal has no digits", base)
	}
	if kind == token.BinConst && isDec(lx.buf.Peek()) {
		return token.Token{}, lx.fail(start, ErrInvalidNumberLiteral, lx.buf.Peek(),
			"invalid digit %q in binary literal", rune(lx.buf.Peek()))
	}
	return lx.finishInt(start, kind)
}

// checkOctal validates the digits of a 0-prefixed integer already consumed.
func (lx *Lexer) checkOctal(start position) (token.Token, error) {
	body := lx.buf.Slice(uint32(start.mark), lx.buf.Pos())
	for _, b := range body[1:] {
		if !isOctal(b) {
			return token.Token{}, lx.fail(start, ErrInvalidNumberLiteral, b,
				"invalid digit %q in octal literal", rune(b))
		}
	}
	return lx.finishInt(start, token.OctConst)
}

func (lx *Lexer) finishInt(start position, kind token.Kind) (token.Token, error) {
	sfx := lx.scanSuffix()
	if !validIntSuffix(sfx) {
		return token.Token{}, lx.fail(start, ErrInvalidNumberLiteral, sfx[0],
			"invalid suffix %q on integer constant", sfx)
	}
	return lx.emit(kind, start), nil
}

func (lx *Lexer) finishFloat(start position) (token.Token, error) {
	sfx := lx.scanSuffix()
	if !validFloatSuffix(sfx) {
		return token.Token{}, lx.fail(start, ErrInvalidNumberLiteral, sfx[0],
			"invalid suffix %q on floating constant", sfx)
	}
	return lx.emit(token.FloatConst, start), nil
}

// scanSuffix жадно забирает хвост [A-Za-z0-9_] после тела числа.
func (lx *Lexer) scanSuffix() string {
	from := lx.buf.Pos()
	lx.eatWhile(isIdentContinueByte)
	return string(lx.buf.Slice(from, lx.buf.Pos()))
}

// validIntSuffix: "", не более одного u/U и не более одного l/L в любом порядке.
func validIntSuffix(s string) bool {
	if len(s) > 2 {
		return false
	}
	var u, l int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'u', 'U':
			u++
		case 'l', 'L':
			l++
		default:
			return false
		}
	}
	return u <= 1 && l <= 1
}

func validFloatSuffix(s string) bool {
	return s == "" || (len(s) == 1 && strings.ContainsRune("fFlL", rune(s[0])))
}
