package lexer

import (
	"cclex/internal/token"
)

// scanOperatorOrPunct вызывается после чтения первого байта c.
// Жадность: сначала самая длинная последовательность, затем короче.
// Диграфы <% %> <: :> дают тот же Kind, что и основное написание.
func (lx *Lexer) scanOperatorOrPunct(start position, c byte) (token.Token, error) {
	k := token.Invalid

	switch c {
	case '=':
		k = lx.pick(token.Assign, '=', token.EqOp)
	case '.':
		if !lx.eat('.') {
			k = token.Dot
			break
		}
		if !lx.eat('.') {
			return token.Token{}, lx.fail(start, ErrBadEllipsis, lx.buf.Peek(), "expected '.' after '..'")
		}
		k = token.Ellipsis
	case '>':
		switch {
		case lx.eat('>'):
			k = lx.pick(token.RightOp, '=', token.RightAssign)
		case lx.eat('='):
			k = token.GeOp
		default:
			k = token.Gt
		}
	case '<':
		switch {
		case lx.eat('<'):
			k = lx.pick(token.LeftOp, '=', token.LeftAssign)
		case lx.eat('='):
			k = token.LeOp
		case lx.eat('%'):
			k = token.LBrace
		case lx.eat(':'):
			k = token.LBracket
		default:
			k = token.Lt
		}
	case '+':
		k = lx.pick2(token.Plus, '+', token.IncOp, '=', token.AddAssign)
	case '-':
		switch {
		case lx.eat('-'):
			k = token.DecOp
		case lx.eat('='):
			k = token.SubAssign
		case lx.eat('>'):
			k = token.PtrOp
		default:
			k = token.Minus
		}
	case '*':
		k = lx.pick(token.Star, '=', token.MulAssign)
	case '/':
		k = lx.pick(token.Slash, '=', token.DivAssign)
	case '%':
		switch {
		case lx.eat('='):
			k = token.ModAssign
		case lx.eat('>'), lx.eat('%'):
			// %> и %% оба закрывают блок
			k = token.RBrace
		default:
			k = token.Percent
		}
	case '&':
		k = lx.pick2(token.Amp, '&', token.AndOp, '=', token.AndAssign)
	case '|':
		k = lx.pick2(token.Pipe, '|', token.OrOp, '=', token.OrAssign)
	case '^':
		k = lx.pick(token.Caret, '=', token.XorAssign)
	case '!':
		k = lx.pick(token.Bang, '=', token.NeOp)
	case ':':
		k = lx.pick(token.Colon, '>', token.RBracket)
	default:
		// ; { } ( ) , [ ] ~ ?
		var ok bool
		if k, ok = token.Punct(c); !ok {
			return token.Token{}, lx.fail(start, ErrUnexpectedCharacter, c,
				"unexpected character %q (0x%02X)", rune(c), c)
		}
	}
	return lx.emit(k, start), nil
}

// pick returns long if the next byte is next (consuming it), else short.
func (lx *Lexer) pick(short token.Kind, next byte, long token.Kind) token.Kind {
	if lx.eat(next) {
		return long
	}
	return short
}

func (lx *Lexer) pick2(short token.Kind, a byte, ka token.Kind, b byte, kb token.Kind) token.Kind {
	switch {
	case lx.eat(a):
		return ka
	case lx.eat(b):
		return kb
	default:
		return short
	}
}
