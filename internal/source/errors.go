package source

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every *IOError via errors.Is.
var ErrIO = errors.New("source i/o error")

var errIsDir = errors.New("is a directory")

// ErrFileTooLarge: смещения в Span 32-битные, больше файл не адресовать.
var ErrFileTooLarge = errors.New("file too large")

// IOOp names the load step that failed.
type IOOp string

const (
	OpOpen   IOOp = "open"
	OpStat   IOOp = "stat"
	OpRead   IOOp = "read"
	OpDecode IOOp = "decode"
)

// IOError reports a failure to bring a translation unit into memory.
type IOError struct {
	Op   IOOp
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) true for any IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }
