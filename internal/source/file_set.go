package source

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every translation unit loaded for one run and resolves spans to positions.
// A FileSet is not safe for concurrent mutation; load everything first, then lex in parallel.
type FileSet struct {
	files   []File
	byPath  map[string]FileID // последний ID для нормализованного пути
	baseDir string            // "" = текущая директория
}

func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase задаёт директорию, от которой считаются относительные пути.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{byPath: make(map[string]FileID), baseDir: baseDir}
}

// BaseDir returns the configured base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Add registers content under path and returns a fresh FileID, even when the
// path is already known. Content is kept, not copied.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	f := File{
		ID:      FileID(n),
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
	fileSet.files = append(fileSet.files, f)
	fileSet.byPath[f.Path] = f.ID
	return f.ID
}

// Load reads path, decodes a leading BOM, folds CRLF into LF and calls Add.
// Every failure is an *IOError.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	raw, err := readFile(path)
	if err != nil {
		return 0, err
	}
	content, flags, err := decodeBOM(raw)
	if err != nil {
		return 0, &IOError{Op: OpDecode, Path: path, Err: err}
	}
	// UTF-16 -> UTF-8 может вырасти
	if int64(len(content)) > maxFileSize {
		return 0, &IOError{Op: OpDecode, Path: path, Err: fmt.Errorf("%w: %d bytes after decoding", ErrFileTooLarge, len(content))}
	}
	if content, crlf := normalizeCRLF(content); crlf {
		return fileSet.Add(path, content, flags|FileNormalizedCRLF), nil
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual registers caller-owned content (stdin, tests, embedding).
// The caller must keep content unchanged while any lexer reads it.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// maxFileSize is the largest content a Span can address; tests lower it.
var maxFileSize int64 = math.MaxUint32

func readFile(path string) ([]byte, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: OpOpen, Path: path, Err: err}
	}
	defer f.Close()

	st, err := f.Stat()
	switch {
	case err != nil:
		return nil, &IOError{Op: OpStat, Path: path, Err: err}
	case st.IsDir():
		return nil, &IOError{Op: OpStat, Path: path, Err: errIsDir}
	case st.Size() > maxFileSize:
		return nil, &IOError{Op: OpStat, Path: path, Err: fmt.Errorf("%w: %d bytes", ErrFileTooLarge, st.Size())}
	}

	content := make([]byte, st.Size())
	if _, err := io.ReadFull(f, content); err != nil {
		return nil, &IOError{Op: OpRead, Path: path, Err: err}
	}
	return content, nil
}

// Get returns nil for an unknown id.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) < len(fileSet.files) {
		return &fileSet.files[id]
	}
	return nil
}

// GetLatest returns the newest FileID registered for path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.byPath[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into 1-based line and byte-column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fileSet.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

// GetLine возвращает строку lineNum (с 1) без '\n'; несуществующая строка даёт "".
func (f *File) GetLine(lineNum uint32) string {
	start, end, ok := f.lineBounds(lineNum)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// lineBounds: строка k начинается после (k-1)-го '\n' и заканчивается на k-м или на конце файла.
func (f *File) lineBounds(lineNum uint32) (start, end int, ok bool) {
	if lineNum == 0 {
		return 0, 0, false
	}
	k := int(lineNum) - 1
	if k > len(f.LineIdx) {
		return 0, 0, false
	}
	if k > 0 {
		start = int(f.LineIdx[k-1]) + 1
	}
	end = len(f.Content)
	if k < len(f.LineIdx) {
		end = int(f.LineIdx[k])
	}
	if start >= len(f.Content) {
		return 0, 0, false
	}
	return start, min(end, len(f.Content)), true
}
