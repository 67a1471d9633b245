package token

// Kind represents the class of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Keyword represents one of the reserved C keywords (see LookupKeyword).
	Keyword

	// CharConst represents a character constant, optionally L-prefixed.
	CharConst
	// StringLit represents a string literal, optionally L-prefixed.
	StringLit
	// IntConst represents a decimal integer constant.
	IntConst
	// OctConst represents an octal integer constant, including a lone "0".
	OctConst
	// HexConst represents a 0x-prefixed integer constant.
	HexConst
	// FloatConst represents a decimal floating constant.
	FloatConst
	// BinConst represents a 0b-prefixed integer constant.
	BinConst

	Ellipsis    // ...
	RightAssign // >>=
	LeftAssign  // <<=
	AddAssign   // +=
	SubAssign   // -=
	MulAssign   // *=
	DivAssign   // /=
	ModAssign   // %=
	AndAssign   // &=
	XorAssign   // ^=
	OrAssign    // |=
	RightOp     // >>
	LeftOp      // <<
	IncOp       // ++
	DecOp       // --
	PtrOp       // ->
	AndOp       // &&
	OrOp        // ||
	LeOp        // <=
	GeOp        // >=
	EqOp        // ==
	NeOp        // !=

	Semicolon // ;
	LBrace    // { (also <%)
	RBrace    // } (also %>)
	Comma     // ,
	Colon     // :
	Assign    // =
	LParen    // (
	RParen    // )
	LBracket  // [ (also <:)
	RBracket  // ] (also :>)
	Dot       // .
	Amp       // &
	Bang      // !
	Tilde     // ~
	Minus     // -
	Plus      // +
	Star      // *
	Slash     // /
	Percent   // %
	Lt        // <
	Gt        // >
	Caret     // ^
	Pipe      // |
	Question  // ?

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "IDENTIFIER",
	Keyword:     "KEYWORD",
	CharConst:   "CHAR_CONSTANT",
	StringLit:   "STRING_LITERAL",
	IntConst:    "INT_CONSTANT",
	OctConst:    "OCT_CONSTANT",
	HexConst:    "HEX_CONSTANT",
	FloatConst:  "FLOAT_CONSTANT",
	BinConst:    "BIN_CONSTANT",
	Ellipsis:    "ELLIPSIS",
	RightAssign: "RIGHT_ASSIGN",
	LeftAssign:  "LEFT_ASSIGN",
	AddAssign:   "ADD_ASSIGN",
	SubAssign:   "SUB_ASSIGN",
	MulAssign:   "MUL_ASSIGN",
	DivAssign:   "DIV_ASSIGN",
	ModAssign:   "MOD_ASSIGN",
	AndAssign:   "AND_ASSIGN",
	XorAssign:   "XOR_ASSIGN",
	OrAssign:    "OR_ASSIGN",
	RightOp:     "RIGHT_OP",
	LeftOp:      "LEFT_OP",
	IncOp:       "INC_OP",
	DecOp:       "DEC_OP",
	PtrOp:       "PTR_OP",
	AndOp:       "AND_OP",
	OrOp:        "OR_OP",
	LeOp:        "LE_OP",
	GeOp:        "GE_OP",
	EqOp:        "EQ_OP",
	NeOp:        "NE_OP",
}

// String returns the token class name. Single-character punctuators print as the quoted character.
func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(?)"
	}
	if name := kindNames[k]; name != "" {
		return name
	}
	return "'" + k.Spelling() + "'"
}

// Spelling returns the canonical source text of an operator or punctuator kind,
// or "" for literal/identifier classes. Digraphs spell as their primary form.
func (k Kind) Spelling() string {
	if k >= kindCount {
		return ""
	}
	return spellings[k]
}

// IsLiteral reports whether k is a character, string or numeric constant class.
func (k Kind) IsLiteral() bool {
	return k >= CharConst && k <= BinConst
}

// IsNumber reports whether k is one of the numeric constant classes.
func (k Kind) IsNumber() bool {
	return k >= IntConst && k <= BinConst
}

// IsPunctOrOp reports whether k is an operator or punctuator.
func (k Kind) IsPunctOrOp() bool {
	return k >= Ellipsis && k < kindCount
}

// IsMultiChar reports whether k is one of the multi-character operators.
func (k Kind) IsMultiChar() bool {
	return k >= Ellipsis && k <= NeOp
}
