package lexer

import (
	"errors"
	"fmt"

	"cclex/internal/diag"
	"cclex/internal/source"
)

// Sentinel errors; every *Error unwraps to exactly one of them.
var (
	ErrUnterminatedComment      = errors.New("unterminated block comment")
	ErrUnterminatedStringOrChar = errors.New("unterminated string or character literal")
	ErrEmptyCharLiteral         = errors.New("empty character literal")
	ErrInvalidNumberLiteral     = errors.New("invalid number literal")
	ErrUnexpectedCharacter      = errors.New("unexpected character")
	// ErrBadEllipsis is a two-dot sequence; errors.Is also matches ErrUnexpectedCharacter.
	ErrBadEllipsis = fmt.Errorf("%w: '..' must be followed by '.'", ErrUnexpectedCharacter)
)

// Error is a fatal lexical error. Line and Col are 1-based and point at the
// start of the offending construct; Span runs from there to the point of detection.
type Error struct {
	Err  error
	Code diag.Code
	Span source.Span
	Line uint32
	Col  uint32
	Char byte // offending byte for unexpected-character errors
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

var errCodes = map[error]diag.Code{
	ErrUnterminatedComment:      diag.LexUnterminatedComment,
	ErrUnterminatedStringOrChar: diag.LexUnterminatedStringOrChar,
	ErrEmptyCharLiteral:         diag.LexEmptyCharLiteral,
	ErrInvalidNumberLiteral:     diag.LexInvalidNumber,
	ErrUnexpectedCharacter:      diag.LexUnexpectedChar,
	ErrBadEllipsis:              diag.LexUnexpectedChar,
}

// fail records the first error, forwards it to the reporter and returns it.
func (lx *Lexer) fail(start position, kind error, ch byte, format string, args ...any) error {
	e := &Error{
		Err:  kind,
		Code: errCodes[kind],
		Span: lx.buf.SpanFrom(start.mark),
		Line: start.line + 1,
		Col:  start.col + 1,
		Char: ch,
		Msg:  fmt.Sprintf(format, args...),
	}
	lx.err = e
	diag.ReportError(lx.opts.Reporter, e.Code, e.Span, e.Msg).Emit()
	return e
}
