package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Buffer is a forward cursor over one File's content with one byte of lookahead
// and one byte of rewind. Invariant: 0 <= Pos() <= Len(); EOF() iff Pos() == Len().
type Buffer struct {
	file  *File
	data  []byte
	off   uint32
	limit uint32
}

// NewBuffer creates a buffer positioned at the first byte of f.
func NewBuffer(f *File) *Buffer {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return &Buffer{file: f, data: f.Content, limit: limit}
}

// File returns the file the buffer reads from.
func (b *Buffer) File() *File { return b.file }

// Owned reports whether the underlying bytes were read by the FileSet (true) or borrowed from the caller.
func (b *Buffer) Owned() bool { return b.file.Owned() }

// EOF проверяет, достигнут ли конец буфера
func (b *Buffer) EOF() bool { return b.off >= b.limit }

// Len returns the total number of bytes.
func (b *Buffer) Len() uint32 { return b.limit }

// Pos returns the absolute cursor offset.
func (b *Buffer) Pos() uint32 { return b.off }

// Begin returns the offset of the first byte; lexeme slicing and line-start scans are relative to it.
func (b *Buffer) Begin() uint32 { return 0 }

// Peek читает текущий байт, не сдвигая курсор; на EOF возвращает 0
func (b *Buffer) Peek() byte {
	if b.EOF() {
		return 0
	}
	return b.data[b.off]
}

// Get возвращает текущий байт и сдвигает курсор; на EOF возвращает 0 и остаётся на месте
func (b *Buffer) Get() byte {
	if b.EOF() {
		return 0
	}
	c := b.data[b.off]
	b.off++
	return c
}

// Unget moves the cursor one byte back. It reports false (and does nothing) at the start of the buffer.
func (b *Buffer) Unget() bool {
	if b.off == 0 {
		return false
	}
	b.off--
	return true
}

// Eat consumes the next byte if it matches c.
func (b *Buffer) Eat(c byte) bool {
	if !b.EOF() && b.data[b.off] == c {
		b.off++
		return true
	}
	return false
}

// At returns the byte at an absolute offset, or 0 outside the buffer.
func (b *Buffer) At(off uint32) byte {
	if off >= b.limit {
		return 0
	}
	return b.data[off]
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (b *Buffer) Mark() Mark { return Mark(b.off) }

// SpanFrom получает Span для фрагмента, начиная с метки
func (b *Buffer) SpanFrom(m Mark) Span {
	return Span{File: b.file.ID, Start: uint32(m), End: b.off}
}

// Slice returns the read-only view [start, end) of the buffer.
func (b *Buffer) Slice(start, end uint32) []byte {
	if start > end || end > b.limit {
		return nil
	}
	return b.data[start:end]
}

// Release drops the buffer's reference to content it owns. Borrowed content is left alone.
// Every read after Release behaves as at EOF.
func (b *Buffer) Release() {
	if b.Owned() {
		b.data = nil
	}
	b.off, b.limit = 0, 0
}
