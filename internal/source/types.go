package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the content was supplied by the caller (test, stdin, embedding).
	// The FileSet borrows such content and never releases it.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileDecodedUTF16 is set when a UTF-16 BOM forced a re-encode to UTF-8 on load.
	FileDecodedUTF16
)

// File captures metadata and content for a single translation unit.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Owned reports whether the FileSet read Content itself (as opposed to borrowing a caller span).
func (f *File) Owned() bool {
	return f.Flags&FileVirtual == 0
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
