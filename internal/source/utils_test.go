package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, d := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	target := filepath.Join(otherDir, "file.c")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.c")

	got, err := RelativePath(target, tmp)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(filepath.Join("nested", "file.c")); got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"a\nb", "a\nb", false},
		{"a\r\nb\r\n", "a\nb\n", true},
		{"a\rb", "a\rb", false},
		{"\r\r\n", "\r\n", true},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q,%v; want %q,%v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestDecodeBOM(t *testing.T) {
	t.Run("utf-8 bom stripped", func(t *testing.T) {
		got, flags, err := decodeBOM([]byte("\xEF\xBB\xBFint"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "int" {
			t.Errorf("got %q, want %q", got, "int")
		}
		if flags != FileHadBOM {
			t.Errorf("flags = %b, want FileHadBOM", flags)
		}
	})

	t.Run("utf-16le decoded", func(t *testing.T) {
		got, flags, err := decodeBOM([]byte{0xFF, 0xFE, 'i', 0, 'n', 0, 't', 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "int" {
			t.Errorf("got %q, want %q", got, "int")
		}
		if flags&FileDecodedUTF16 == 0 {
			t.Errorf("expected FileDecodedUTF16 flag, got %b", flags)
		}
	})

	t.Run("no bom untouched", func(t *testing.T) {
		in := []byte("x")
		got, flags, err := decodeBOM(in)
		if err != nil || flags != 0 || &got[0] != &in[0] {
			t.Errorf("content without BOM must be returned as is")
		}
	})
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\n\ncd")
	idx := buildLineIndex(content)
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{3, 1}},
		{6, LineCol{3, 3}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}
