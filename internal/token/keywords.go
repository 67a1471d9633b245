package token

// keywords — фиксированный набор ключевых слов C99 (регистрозависимо).
var keywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {}, "continue": {},
	"default": {}, "do": {}, "double": {}, "else": {}, "enum": {}, "extern": {},
	"float": {}, "for": {}, "goto": {}, "if": {}, "int": {}, "long": {},
	"restrict": {}, "return": {}, "short": {}, "signed": {}, "sizeof": {}, "static": {},
	"struct": {}, "switch": {}, "typedef": {}, "union": {}, "unsigned": {}, "void": {},
	"volatile": {}, "while": {},
}

// LookupKeyword reports whether ident is a C keyword.
// Keywords are case-sensitive: only the lowercase spellings are reserved.
func LookupKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns the number of reserved words.
func Keywords() int { return len(keywords) }
