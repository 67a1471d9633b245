package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cclex/internal/diag"
	"cclex/internal/lexer"
	"cclex/internal/source"
	"cclex/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	return makeTestLexerTab(input, lexer.DefaultTabWidth)
}

func makeTestLexerTab(input string, tab int) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.c", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{TabWidth: tab, Reporter: reporter})
	return lx, reporter
}

// collectAllTokens собирает все токены до EOF или первой ошибки
func collectAllTokens(lx *lexer.Lexer) ([]token.Token, error) {
	tokens := make([]token.Token, 0)
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens, err := collectAllTokens(lx)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v (%v)", input, err, reporter.ErrorMessages())
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected error for %q: %v (%v)", input, err, reporter.ErrorMessages())
	}
	if tok.Kind != expectedKind {
		t.Errorf("%q: expected kind %v, got %v", input, expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("%q: expected text %q, got %q", input, expectedText, tok.Text)
	}
	if eof, err := lx.Next(); err != nil || eof.Kind != token.EOF {
		t.Errorf("%q: expected EOF after single token, got %v (%v)", input, eof.Kind, err)
	}
}

// expectError проверяет, что вход приводит к ошибке вида want
func expectError(t *testing.T, input string, want error) *lexer.Error {
	t.Helper()
	lx, _ := makeTestLexer(input)
	_, err := collectAllTokens(lx)
	if err == nil {
		t.Fatalf("%q: expected error %v, got none", input, want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("%q: expected %v, got %v", input, want, err)
	}
	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		t.Fatalf("%q: error is not *lexer.Error: %T", input, err)
	}
	return lerr
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== Идентификаторы и ключевые слова ======

func TestIdentifiers(t *testing.T) {
	for _, in := range []string{"foo", "_bar", "__test", "x123", "camelCase", "UPPER", "L", "Lx", "Int", "whilex"} {
		t.Run(in, func(t *testing.T) {
			expectSingleToken(t, in, token.Ident, in)
		})
	}
}

func TestKeywords(t *testing.T) {
	kws := strings.Fields("auto break case char const continue default do double else enum extern " +
		"float for goto if int long restrict return short signed sizeof static struct switch " +
		"typedef union unsigned void volatile while")
	if len(kws) != token.Keywords() {
		t.Fatalf("keyword table has %d entries, test lists %d", token.Keywords(), len(kws))
	}
	for _, kw := range kws {
		t.Run(kw, func(t *testing.T) {
			expectSingleToken(t, kw, token.Keyword, kw)
		})
	}
}

// ====== Операторы и пунктуация ======

func TestOperators_All(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"...", token.Ellipsis},
		{">>=", token.RightAssign},
		{"<<=", token.LeftAssign},
		{"+=", token.AddAssign},
		{"-=", token.SubAssign},
		{"*=", token.MulAssign},
		{"/=", token.DivAssign},
		{"%=", token.ModAssign},
		{"&=", token.AndAssign},
		{"^=", token.XorAssign},
		{"|=", token.OrAssign},
		{">>", token.RightOp},
		{"<<", token.LeftOp},
		{"++", token.IncOp},
		{"--", token.DecOp},
		{"->", token.PtrOp},
		{"&&", token.AndOp},
		{"||", token.OrOp},
		{"<=", token.LeOp},
		{">=", token.GeOp},
		{"==", token.EqOp},
		{"!=", token.NeOp},
		{";", token.Semicolon},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{",", token.Comma},
		{":", token.Colon},
		{"=", token.Assign},
		{"(", token.LParen},
		{")", token.RParen},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{".", token.Dot},
		{"&", token.Amp},
		{"!", token.Bang},
		{"~", token.Tilde},
		{"-", token.Minus},
		{"+", token.Plus},
		{"*", token.Star},
		{"/", token.Slash},
		{"%", token.Percent},
		{"<", token.Lt},
		{">", token.Gt},
		{"^", token.Caret},
		{"|", token.Pipe},
		{"?", token.Question},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestMaximalMunch(t *testing.T) {
	expectTokens(t, ">>=", []token.Kind{token.RightAssign})
	expectTokens(t, "== =", []token.Kind{token.EqOp, token.Assign})
	expectTokens(t, "===", []token.Kind{token.EqOp, token.Assign})
	expectTokens(t, "a+++b", []token.Kind{token.Ident, token.IncOp, token.Plus, token.Ident})
	expectTokens(t, ">>>=", []token.Kind{token.RightOp, token.GeOp})
	expectTokens(t, "x->y", []token.Kind{token.Ident, token.PtrOp, token.Ident})
	expectTokens(t, "-->", []token.Kind{token.DecOp, token.Gt})
	expectTokens(t, "a/b", []token.Kind{token.Ident, token.Slash, token.Ident})
	expectTokens(t, "f(...)", []token.Kind{token.Ident, token.LParen, token.Ellipsis, token.RParen})
}

func TestOperators_EOFAfterLead(t *testing.T) {
	lx, _ := makeTestLexer("== =")
	want := []token.Kind{token.EqOp, token.Assign, token.EOF}
	for i, k := range want {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != k {
			t.Fatalf("token %d: expected %v, got %v", i, k, tok.Kind)
		}
	}
}

func TestDigraphs(t *testing.T) {
	tokens := expectTokens(t, "<% %> <: :> %%", []token.Kind{token.LBrace, token.RBrace, token.LBracket, token.RBracket, token.RBrace})
	for _, tok := range tokens {
		if !tok.IsDigraph() {
			t.Errorf("%q: expected IsDigraph", tok.Text)
		}
		if len(tok.Text) != 2 {
			t.Errorf("digraph text should keep both bytes, got %q", tok.Text)
		}
	}

	plain := expectTokens(t, "{}[]", []token.Kind{token.LBrace, token.RBrace, token.LBracket, token.RBracket})
	for _, tok := range plain {
		if tok.IsDigraph() {
			t.Errorf("%q: unexpected IsDigraph", tok.Text)
		}
	}

	// <%= не оператор: <% затем =
	expectTokens(t, "<%=", []token.Kind{token.LBrace, token.Assign})
	expectTokens(t, "%=>", []token.Kind{token.ModAssign, token.Gt})
	// %% тоже закрывает блок; = после него отдельный токен
	expectTokens(t, "%%=", []token.Kind{token.RBrace, token.Assign})
	expectTokens(t, "%%%", []token.Kind{token.RBrace, token.Percent})
}

func TestBadEllipsis(t *testing.T) {
	e := expectError(t, "..x", lexer.ErrBadEllipsis)
	if !errors.Is(e, lexer.ErrUnexpectedCharacter) {
		t.Errorf("bad ellipsis should also match ErrUnexpectedCharacter")
	}
	if e.Code != diag.LexUnexpectedChar {
		t.Errorf("expected %v, got %v", diag.LexUnexpectedChar, e.Code)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	for _, in := range []string{"@", "$", "`", "#", "\\", "\x01", "\xff"} {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			e := expectError(t, in, lexer.ErrUnexpectedCharacter)
			if e.Char != in[0] {
				t.Errorf("expected offending byte 0x%02X, got 0x%02X", in[0], e.Char)
			}
			if e.Line != 1 || e.Col != 1 {
				t.Errorf("expected 1:1, got %d:%d", e.Line, e.Col)
			}
		})
	}
}

// ====== Числа ======

func TestNumbers_Classification(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.OctConst},
		{"0x1", token.HexConst},
		{"1.0", token.FloatConst},
		{"42", token.IntConst},
		{"0755", token.OctConst},
		{"017u", token.OctConst},
		{"0XffUL", token.HexConst},
		{"0xDEADbeef", token.HexConst},
		{"0b1010", token.BinConst},
		{"0B1", token.BinConst},
		{"1.", token.FloatConst},
		{".5", token.FloatConst},
		{"0.5", token.FloatConst},
		{"07.5", token.FloatConst},
		{"09.5", token.FloatConst},
		{"0e1", token.FloatConst},
		{"1e10", token.FloatConst},
		{"1E+10", token.FloatConst},
		{"1.5e-3f", token.FloatConst},
		{"3.0L", token.FloatConst},
		{"2.f", token.FloatConst},
		{"42u", token.IntConst},
		{"42L", token.IntConst},
		{"42UL", token.IntConst},
		{"42lu", token.IntConst},
		{"42Lu", token.IntConst},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestNumbers_Invalid(t *testing.T) {
	for _, in := range []string{
		"0x", "0X", "0xg", "0b", "0b102", "08", "0789",
		"1e", "1e+", "1.0e", "1.0e10x",
		"42x", "42ull", "42uu", "42LL", "1.5q", "1.0ff", "1.0u", "12abc",
	} {
		t.Run(in, func(t *testing.T) {
			e := expectError(t, in, lexer.ErrInvalidNumberLiteral)
			if e.Code != diag.LexInvalidNumber {
				t.Errorf("expected %v, got %v", diag.LexInvalidNumber, e.Code)
			}
			if e.Span.Start != 0 {
				t.Errorf("error span should start at the literal, got %d", e.Span.Start)
			}
		})
	}
}

func TestNumbers_FollowedByOperators(t *testing.T) {
	expectTokens(t, "a[0]=1;", []token.Kind{
		token.Ident, token.LBracket, token.OctConst, token.RBracket, token.Assign, token.IntConst, token.Semicolon,
	})
	expectTokens(t, "1-2", []token.Kind{token.IntConst, token.Minus, token.IntConst})
	expectTokens(t, "x.y", []token.Kind{token.Ident, token.Dot, token.Ident})
	expectTokens(t, "1..", []token.Kind{token.FloatConst, token.Dot})
}

// ====== Строки и символы ======

func TestStringsAndChars(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		wide  bool
	}{
		{`"hello"`, token.StringLit, false},
		{`""`, token.StringLit, false},
		{`"a\"b"`, token.StringLit, false},
		{`"a\\"`, token.StringLit, false},
		{"\"line\nbreak\"", token.StringLit, false},
		{`L"wide"`, token.StringLit, true},
		{`'a'`, token.CharConst, false},
		{`'\''`, token.CharConst, false},
		{`'\n'`, token.CharConst, false},
		{`'ab'`, token.CharConst, false},
		{`L'x'`, token.CharConst, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok, err := lx.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != tt.kind || tok.Text != tt.input {
				t.Fatalf("expected %v(%q), got %v(%q)", tt.kind, tt.input, tok.Kind, tok.Text)
			}
			if tok.IsWide() != tt.wide {
				t.Errorf("IsWide = %v, want %v", tok.IsWide(), tt.wide)
			}
		})
	}
}

func TestWidePrefixNeedsAdjacentQuote(t *testing.T) {
	expectTokens(t, `L 'a'`, []token.Kind{token.Ident, token.CharConst})
	expectTokens(t, `xL"s"`, []token.Kind{token.Ident, token.StringLit})
}

func TestStrings_Unterminated(t *testing.T) {
	for _, in := range []string{`"abc`, `'a`, `"abc\"`, `'\`, `L"x`} {
		t.Run(in, func(t *testing.T) {
			e := expectError(t, in, lexer.ErrUnterminatedStringOrChar)
			if e.Code != diag.LexUnterminatedStringOrChar {
				t.Errorf("expected %v, got %v", diag.LexUnterminatedStringOrChar, e.Code)
			}
		})
	}
}

func TestChars_Empty(t *testing.T) {
	expectError(t, `''`, lexer.ErrEmptyCharLiteral)
	expectError(t, `L''`, lexer.ErrEmptyCharLiteral)
}

// ====== Trivia ======

func TestComments_Elided(t *testing.T) {
	expectTokens(t, "a /* x */ b // c\n d", []token.Kind{token.Ident, token.Ident, token.Ident})
	expectTokens(t, "/**/x/***/", []token.Kind{token.Ident})
	expectTokens(t, "/* /* */ y", []token.Kind{token.Ident})
	expectTokens(t, "// only a comment", nil)
	expectTokens(t, "x // trailing", []token.Kind{token.Ident})
	expectTokens(t, "/ /", []token.Kind{token.Slash, token.Slash})
}

func TestComments_Unterminated(t *testing.T) {
	for _, in := range []string{"/*", "/* abc", "x /* *", "/*/"} {
		t.Run(in, func(t *testing.T) {
			e := expectError(t, in, lexer.ErrUnterminatedComment)
			if e.Code != diag.LexUnterminatedComment {
				t.Errorf("expected %v, got %v", diag.LexUnterminatedComment, e.Code)
			}
		})
	}
}

func TestWhitespace_AllKinds(t *testing.T) {
	expectTokens(t, " \t\n\v\f\r x \r\n y ", []token.Kind{token.Ident, token.Ident})
	expectTokens(t, "", nil)
	expectTokens(t, "   \n\n\t", nil)
}

// ====== Программы и round-trip ======

func TestProgram_Main(t *testing.T) {
	tokens := expectTokens(t, "int main() { return 0; }", []token.Kind{
		token.Keyword, token.Ident, token.LParen, token.RParen, token.LBrace,
		token.Keyword, token.OctConst, token.Semicolon, token.RBrace,
	})
	want := []string{"int", "main", "(", ")", "{", "return", "0", ";", "}"}
	for i, tok := range tokens {
		if tok.Text != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tok.Text)
		}
	}
}

func TestRoundTrip_Lexemes(t *testing.T) {
	src := "static unsigned long f(int *p, ...) {\n" +
		"\tif (p[0] >= 0x1Fu && *p != 'x') p->n <<= 2;\n" +
		"\treturn L\"s\\n\"[0] ? 1.5e3f : .25;\n" +
		"} /* end */\n"

	lx, _ := makeTestLexer(src)
	tokens, err := collectAllTokens(lx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var joined strings.Builder
	for _, tok := range tokens {
		if got := string(src[tok.Span.Start:tok.Span.End]); got != tok.Text {
			t.Errorf("span %v does not match text %q (got %q)", tok.Span, tok.Text, got)
		}
		joined.WriteString(tok.Text)
	}

	// без пробелов и комментариев исходник должен совпадать с конкатенацией лексем
	stripped := strings.ReplaceAll(src, "/* end */", "")
	stripped = strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(stripped)
	if joined.String() != stripped {
		t.Errorf("round-trip mismatch:\n got %q\nwant %q", joined.String(), stripped)
	}
}

func TestSpans(t *testing.T) {
	tokens := expectTokens(t, "ab  cd", []token.Kind{token.Ident, token.Ident})
	if tokens[1].Span.Start != 4 || tokens[1].Span.End != 6 {
		t.Errorf("expected span [4,6), got %v", tokens[1].Span)
	}
}

// ====== EOF и состояние лексера ======

func TestEOF_Idempotent(t *testing.T) {
	lx, _ := makeTestLexer("x  ")
	if tok, _ := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected IDENTIFIER, got %v", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("call %d: expected EOF, got %v (%v)", i, tok.Kind, err)
		}
		if tok.Span.Start != 3 || !tok.Span.Empty() {
			t.Errorf("EOF span should be empty at end of input, got %v", tok.Span)
		}
	}
}

func TestPeek_DoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p1, _ := lx.Peek()
	p2, _ := lx.Peek()
	n, _ := lx.Next()
	if p1 != p2 || p1 != n || n.Text != "a" {
		t.Fatalf("peek/next mismatch: %v %v %v", p1, p2, n)
	}
	if n, _ := lx.Next(); n.Text != "b" {
		t.Fatalf("expected b, got %q", n.Text)
	}
}

func TestHasMoreTokens(t *testing.T) {
	lx, _ := makeTestLexer("x   ")
	if !lx.HasMoreTokens() {
		t.Fatal("expected more tokens at start")
	}
	lx.Next()
	// хвостовые пробелы ещё не прочитаны
	if !lx.HasMoreTokens() {
		t.Fatal("trailing trivia should keep HasMoreTokens true")
	}
	if tok, _ := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if lx.HasMoreTokens() {
		t.Fatal("expected no more tokens after EOF")
	}

	empty, _ := makeTestLexer("")
	if empty.HasMoreTokens() {
		t.Fatal("empty input has no tokens")
	}

	peeked, _ := makeTestLexer("   ")
	if tok, _ := peeked.Peek(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if peeked.HasMoreTokens() {
		t.Fatal("peeked EOF means no more tokens")
	}
}

func TestErrors_Sticky(t *testing.T) {
	lx, rep := makeTestLexer("a @ b")
	if tok, err := lx.Next(); err != nil || tok.Text != "a" {
		t.Fatalf("expected a, got %v (%v)", tok, err)
	}
	_, first := lx.Next()
	if !errors.Is(first, lexer.ErrUnexpectedCharacter) {
		t.Fatalf("expected unexpected character, got %v", first)
	}
	for i := 0; i < 2; i++ {
		if _, err := lx.Next(); err != first {
			t.Fatalf("call %d: expected the same error, got %v", i, err)
		}
	}
	if lx.Err() != first {
		t.Errorf("Err() should return the first error")
	}
	if lx.HasMoreTokens() {
		t.Errorf("HasMoreTokens should be false after an error")
	}
	if len(rep.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", rep.ErrorMessages())
	}
	d := rep.diagnostics[0]
	if d.Code != diag.LexUnexpectedChar || d.Severity != diag.SevError {
		t.Errorf("unexpected diagnostic %v", rep.ErrorMessages())
	}
	if d.Primary.Start != 2 || d.Primary.End != 3 {
		t.Errorf("expected primary span [2,3), got %v", d.Primary)
	}
}

func TestErrors_BagReporter(t *testing.T) {
	bag := diag.NewBag(10)
	fs := source.NewFileSet()
	id := fs.AddVirtual("bag.c", []byte(`x = "open`))
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	if _, err := collectAllTokens(lx); err == nil {
		t.Fatal("expected error")
	}
	if !bag.HasErrors() || bag.Len() != 1 {
		t.Fatalf("bag should hold exactly one error, got %d", bag.Len())
	}
	if got := bag.Items()[0].Primary; got.Start != 4 || got.End != 9 {
		t.Errorf("expected span [4,9), got %v", got)
	}
}

func TestErrors_NilReporter(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("nil.c", []byte("@"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	if _, err := lx.Next(); !errors.Is(err, lexer.ErrUnexpectedCharacter) {
		t.Fatalf("expected error without reporter, got %v", err)
	}
}

// lexeme пара вид+текст для сравнения целых последовательностей
type lexeme struct {
	kind token.Kind
	text string
}

func TestTokenSequences(t *testing.T) {
	ops := strings.Fields("... >>= <<= == != ++ -- && || += -= *= /= %= &= ^= |= <= >=")
	opKinds := []token.Kind{
		token.Ellipsis, token.RightAssign, token.LeftAssign, token.EqOp, token.NeOp,
		token.IncOp, token.DecOp, token.AndOp, token.OrOp, token.AddAssign, token.SubAssign,
		token.MulAssign, token.DivAssign, token.ModAssign, token.AndAssign, token.XorAssign,
		token.OrAssign, token.LeOp, token.GeOp,
	}
	opWant := make([]lexeme, len(ops))
	for i, op := range ops {
		opWant[i] = lexeme{opKinds[i], op}
	}

	tests := []struct {
		name  string
		input string
		want  []lexeme
	}{
		{"operators", strings.Join(ops, " "), opWant},
		{"identifiers and literals", `identifier another_identifier L"string literal" 'c'`, []lexeme{
			{token.Ident, "identifier"},
			{token.Ident, "another_identifier"},
			{token.StringLit, `L"string literal"`},
			{token.CharConst, "'c'"},
		}},
		{"function with comments", "int main() { /* c */ return 0; // c\n }", []lexeme{
			{token.Keyword, "int"},
			{token.Ident, "main"},
			{token.LParen, "("},
			{token.RParen, ")"},
			{token.LBrace, "{"},
			{token.Keyword, "return"},
			{token.OctConst, "0"},
			{token.Semicolon, ";"},
			{token.RBrace, "}"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kinds := make([]token.Kind, len(tt.want))
			for i, w := range tt.want {
				kinds[i] = w.kind
			}
			got := expectTokens(t, tt.input, kinds)
			for i, tok := range got {
				if tok.Text != tt.want[i].text {
					t.Errorf("token %d: expected text %q, got %q", i, tt.want[i].text, tok.Text)
				}
				if i > 0 && tok.Span.Start < got[i-1].Span.End {
					t.Errorf("token %d starts at %d before previous end %d", i, tok.Span.Start, got[i-1].Span.End)
				}
			}
		})
	}
}
