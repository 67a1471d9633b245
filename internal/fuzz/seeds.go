package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB на файл корпуса
)

// snippets покрывают ветки, которые легко сломать: диграфы, суффиксы, escape, комментарии
var snippets = []string{
	"",
	"int main() { return 0; }\n",
	">>= <<= ... -> ++ -- && || <= >= == !=",
	"<% %> <: :> %:",
	"0 0x1F 0b101 0755 08 0x 1e 1.0e10x 1. .5 42ul 42ull",
	"\"a\\\"b\" L\"w\" 'c' L'\\'' '' '\\",
	"/* block */ // line\n/* open",
	"\t\tx\n\v\f\r\n@",
	"..",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range snippets {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.c и *.h файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".c" && ext != ".h" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
