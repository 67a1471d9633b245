package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one File.
// Lexemes are spans plus the File that owns the bytes.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Contains reports whether off lies inside the span.
func (s Span) Contains(off uint32) bool {
	return off >= s.Start && off < s.End
}

// Cover returns the smallest span of the same file containing both spans.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Bytes returns the span's view into f.Content, or nil when the span does not belong to f.
func (s Span) Bytes(f *File) []byte {
	if f == nil || f.ID != s.File || s.End < s.Start || int(s.End) > len(f.Content) {
		return nil
	}
	return f.Content[s.Start:s.End]
}
