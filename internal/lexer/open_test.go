package lexer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cclex/internal/lexer"
	"cclex/internal/source"
	"cclex/internal/token"
)

func TestOpen_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")
	if err := os.WriteFile(path, []byte("int x;\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	lx, err := lexer.Open(fs, path, lexer.Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !lx.File().Owned() {
		t.Errorf("file loaded from disk should be owned")
	}
	tokens, err := collectAllTokens(lx)
	if err != nil || len(tokens) != 4 {
		t.Fatalf("expected 3 tokens + EOF, got %v (%v)", tokensToString(tokens), err)
	}

	lx.Close()
	if tok, err := lx.Next(); err != nil || tok.Kind != token.EOF {
		t.Errorf("closed lexer should report EOF, got %v (%v)", tok.Kind, err)
	}
	// Text — копия, переживает Close
	if tokens[1].Text != "x" {
		t.Errorf("token text lost after Close: %q", tokens[1].Text)
	}
}

func TestOpen_Missing(t *testing.T) {
	fs := source.NewFileSet()
	_, err := lexer.Open(fs, filepath.Join(t.TempDir(), "missing.c"), lexer.Options{})
	if !errors.Is(err, source.ErrIO) {
		t.Fatalf("expected IO error, got %v", err)
	}
	var ioErr *source.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != source.OpOpen {
		t.Fatalf("expected open failure, got %#v", err)
	}
}

func TestFromBytes_Borrows(t *testing.T) {
	content := []byte("a b")
	fs := source.NewFileSet()
	lx := lexer.FromBytes(fs, "mem.c", content, lexer.Options{})
	if lx.File().Owned() {
		t.Fatal("in-memory content must be borrowed")
	}
	if _, err := collectAllTokens(lx); err != nil {
		t.Fatal(err)
	}
	lx.Close()
	if string(content) != "a b" || string(lx.File().Content) != "a b" {
		t.Errorf("Close must not touch borrowed content")
	}
}
