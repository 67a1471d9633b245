package token

var spellings = [kindCount]string{
	Ellipsis:    "...",
	RightAssign: ">>=",
	LeftAssign:  "<<=",
	AddAssign:   "+=",
	SubAssign:   "-=",
	MulAssign:   "*=",
	DivAssign:   "/=",
	ModAssign:   "%=",
	AndAssign:   "&=",
	XorAssign:   "^=",
	OrAssign:    "|=",
	RightOp:     ">>",
	LeftOp:      "<<",
	IncOp:       "++",
	DecOp:       "--",
	PtrOp:       "->",
	AndOp:       "&&",
	OrOp:        "||",
	LeOp:        "<=",
	GeOp:        ">=",
	EqOp:        "==",
	NeOp:        "!=",
	Semicolon:   ";",
	LBrace:      "{",
	RBrace:      "}",
	Comma:       ",",
	Colon:       ":",
	Assign:      "=",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	Dot:         ".",
	Amp:         "&",
	Bang:        "!",
	Tilde:       "~",
	Minus:       "-",
	Plus:        "+",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Lt:          "<",
	Gt:          ">",
	Caret:       "^",
	Pipe:        "|",
	Question:    "?",
}

var singles [256]Kind

func init() {
	for k := Semicolon; k < kindCount; k++ {
		singles[spellings[k][0]] = k
	}
}

// Punct returns the single-character punctuator kind for c.
func Punct(c byte) (Kind, bool) {
	k := singles[c]
	return k, k != Invalid
}
