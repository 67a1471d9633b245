package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[lexer]
tab_width = 4

[output]
format = "json"

[run]
jobs = 3
extensions = [".c"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lexer.TabWidth != 4 || cfg.Output.Format != "json" || cfg.Run.Jobs != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	// не заданные ключи сохраняют значения по умолчанию
	if cfg.Output.MaxDiagnostics != 100 || cfg.Output.Color != "auto" {
		t.Errorf("defaults lost: %+v", cfg.Output)
	}
	if len(cfg.Run.Extensions) != 1 || cfg.Path != path {
		t.Errorf("unexpected run section %+v / path %q", cfg.Run, cfg.Path)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[lexer\n", "failed to parse TOML"},
		{"unknown key", "[lexer]\ntabs = 2\n", "unknown keys: lexer.tabs"},
		{"bad format", "[output]\nformat = \"xml\"\n", "[output].format"},
		{"bad color", "[output]\ncolor = \"always\"\n", "[output].color"},
		{"negative tab", "[lexer]\ntab_width = -1\n", "[lexer].tab_width"},
		{"negative jobs", "[run]\njobs = -2\n", "[run].jobs"},
		{"bad extension", "[run]\nextensions = [\"c\"]\n", "[run].extensions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[lexer]\ntab_width = 2\n")
	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0o700); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(nested, "a.c")
	if err := os.WriteFile(file, []byte("int a;"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{file, nested} {
		cfg, ok, err := Discover(input)
		if err != nil || !ok {
			t.Fatalf("Discover(%s): ok=%v err=%v", input, ok, err)
		}
		if cfg.Lexer.TabWidth != 2 {
			t.Errorf("Discover(%s): expected tab_width 2, got %d", input, cfg.Lexer.TabWidth)
		}
	}
}

func TestDiscoverDefault(t *testing.T) {
	// В /tmp и выше cclex.toml обычно нет; Discover должен вернуть Default.
	dir := t.TempDir()
	if _, ok, _ := Find(dir); ok {
		t.Skip("a cclex.toml exists above the temp directory")
	}
	cfg, ok, err := Discover(filepath.Join(dir, "missing.c"))
	if err != nil || ok {
		t.Fatalf("expected no config, got ok=%v err=%v", ok, err)
	}
	if cfg.Output.Format != "pretty" || cfg.Lexer.TabWidth != 8 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
