package lexer

import (
	"cclex/internal/source"
)

// Open loads path into fs and returns a lexer that owns the loaded bytes.
// Load failures are *source.IOError (errors.Is(err, source.ErrIO)).
func Open(fs *source.FileSet, path string, opts Options) (*Lexer, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return New(fs.Get(id), opts), nil
}

// FromBytes registers content under name without copying it; the caller keeps
// content alive and unmodified for the lexer's lifetime.
func FromBytes(fs *source.FileSet, name string, content []byte, opts Options) *Lexer {
	id := fs.AddVirtual(name, content)
	return New(fs.Get(id), opts)
}

// Close releases the buffer. Owned content is dropped from the buffer; borrowed content is left alone.
// Token.Text values stay valid: they are copies. After Close, Next returns EOF.
func (lx *Lexer) Close() {
	lx.buf.Release()
	lx.look = nil
}
