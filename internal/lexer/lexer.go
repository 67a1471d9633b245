package lexer

import (
	"cclex/internal/source"
	"cclex/internal/token"
)

// Lexer turns one source.File into C tokens on demand.
// A Lexer is bound to a single buffer and is not safe for concurrent use.
type Lexer struct {
	file *source.File
	buf  *source.Buffer
	opts Options
	tab  uint32

	line uint32 // 0-based
	col  uint32 // 0-based, tab-stop aware

	look *token.Token // 1 элементный буфер для Peek
	err  error        // первая ошибка; после неё лексер больше не сканирует
}

// position is the cursor state captured at the start of a construct.
type position struct {
	mark source.Mark
	line uint32
	col  uint32
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file: file,
		buf:  source.NewBuffer(file),
		opts: opts,
		tab:  opts.tabWidth(),
	}
}

// Next возвращает следующий токен.
// После EOF всегда возвращает EOF; после ошибки всегда возвращает ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}
	if lx.err != nil {
		return token.Token{}, lx.err
	}

	// 1) trivia: пробелы и комментарии
	if err := lx.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	// 2) EOF
	if lx.buf.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	// 3) выбор сканера по первому байту
	start := lx.here()
	c := lx.get()

	switch {
	case c == 'L' && isQuote(lx.buf.Peek()):
		// L"..." / L'...' — широкий литерал
		return lx.scanQuoted(start, lx.get())
	case isIdentStartByte(c):
		return lx.scanIdentOrKeyword(start), nil
	case isDec(c):
		return lx.scanNumber(start, c)
	case c == '.' && isDec(lx.buf.Peek()):
		return lx.scanFraction(start)
	case isQuote(c):
		return lx.scanQuoted(start, c)
	default:
		return lx.scanOperatorOrPunct(start, c)
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look != nil {
		return *lx.look, nil
	}
	t, err := lx.Next()
	if err != nil {
		return t, err
	}
	lx.look = &t
	return t, nil
}

// HasMoreTokens reports whether unread input remains. The EOF token is the authoritative signal:
// trailing trivia keeps this true until Next consumes it.
func (lx *Lexer) HasMoreTokens() bool {
	if lx.look != nil {
		return lx.look.Kind != token.EOF
	}
	return lx.err == nil && !lx.buf.EOF()
}

// Pos returns the 0-based line and column of the cursor.
func (lx *Lexer) Pos() (line, col uint32) {
	return lx.line, lx.col
}

// Err returns the error that aborted tokenization, if any.
func (lx *Lexer) Err() error {
	return lx.err
}

// File returns the file being tokenized.
func (lx *Lexer) File() *source.File {
	return lx.file
}

func (lx *Lexer) here() position {
	return position{mark: lx.buf.Mark(), line: lx.line, col: lx.col}
}

func (lx *Lexer) emit(k token.Kind, start position) token.Token {
	sp := lx.buf.SpanFrom(start.mark)
	return token.Token{Kind: k, Span: sp, Text: string(lx.buf.Slice(sp.Start, sp.End))}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.buf.Pos(), End: lx.buf.Pos()}
}
