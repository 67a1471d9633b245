// Package config loads cclex.toml, the optional per-tree settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up from the input path upwards.
const FileName = "cclex.toml"

// Config mirrors cclex.toml. Zero values mean "not set" except where Default fills them.
type Config struct {
	Path   string       `toml:"-"`
	Lexer  LexerConfig  `toml:"lexer"`
	Output OutputConfig `toml:"output"`
	Run    RunConfig    `toml:"run"`
}

type LexerConfig struct {
	TabWidth int `toml:"tab_width"`
}

type OutputConfig struct {
	Format         string `toml:"format"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Color          string `toml:"color"`
}

type RunConfig struct {
	Jobs       int      `toml:"jobs"`
	Extensions []string `toml:"extensions"`
}

var (
	formats = []string{"pretty", "json", "msgpack"}
	colors  = []string{"auto", "on", "off"}
)

// Default returns the settings used when no cclex.toml is found.
func Default() Config {
	return Config{
		Lexer:  LexerConfig{TabWidth: 8},
		Output: OutputConfig{Format: "pretty", MaxDiagnostics: 100, Color: "auto"},
		Run:    RunConfig{Extensions: []string{".c", ".h"}},
	}
}

// Find walks up from startDir to locate cclex.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the cclex.toml governing input (a file or directory).
// ok is false and cfg is Default when no file exists.
func Discover(input string) (cfg Config, ok bool, err error) {
	start := filepath.Dir(input)
	if info, statErr := os.Stat(input); statErr == nil && info.IsDir() {
		start = input
	}
	path, ok, err := Find(start)
	if err != nil || !ok {
		return Default(), false, err
	}
	cfg, err = Load(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Lexer.TabWidth < 0 {
		return fmt.Errorf("[lexer].tab_width must be >= 0, got %d", c.Lexer.TabWidth)
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("[output].format must be one of %s, got %q", strings.Join(formats, "|"), c.Output.Format)
	}
	if !slices.Contains(colors, c.Output.Color) {
		return fmt.Errorf("[output].color must be one of %s, got %q", strings.Join(colors, "|"), c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must be >= 0, got %d", c.Output.MaxDiagnostics)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must be >= 0, got %d", c.Run.Jobs)
	}
	for _, ext := range c.Run.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[run].extensions: %q must look like \".c\"", ext)
		}
	}
	return nil
}
