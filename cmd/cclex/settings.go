package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cclex/internal/config"
	"cclex/internal/diagfmt"
	"cclex/internal/driver"
)

// tokenizeSettings — итоговые настройки: cclex.toml, поверх него явно заданные флаги.
type tokenizeSettings struct {
	format         string
	diagFormat     string
	tabWidth       int
	maxDiagnostics int
	jobs           int
	extensions     []string
	colorOut       bool
	colorErr       bool
	ui             uiMode
	pathMode       diagfmt.PathMode
	quiet          bool
	timings        bool
	configPath     string
}

func resolveSettings(cmd *cobra.Command, input string) (tokenizeSettings, error) {
	root := cmd.Root().PersistentFlags()
	flags := cmd.Flags()

	cfg, err := loadConfig(cmd, input)
	if err != nil {
		return tokenizeSettings{}, err
	}

	s := tokenizeSettings{
		format:         cfg.Output.Format,
		tabWidth:       cfg.Lexer.TabWidth,
		maxDiagnostics: cfg.Output.MaxDiagnostics,
		jobs:           cfg.Run.Jobs,
		extensions:     cfg.Run.Extensions,
		configPath:     cfg.Path,
	}
	colorMode := cfg.Output.Color

	if flags.Changed("format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return s, fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if flags.Changed("tab-width") {
		if s.tabWidth, err = flags.GetInt("tab-width"); err != nil {
			return s, fmt.Errorf("failed to get tab-width flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("ext") {
		exts, extErr := flags.GetStringSlice("ext")
		if extErr != nil {
			return s, fmt.Errorf("failed to get ext flag: %w", extErr)
		}
		s.extensions = normalizeExts(exts)
	}
	if root.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
			return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if root.Changed("color") {
		if colorMode, err = root.GetString("color"); err != nil {
			return s, fmt.Errorf("failed to get color flag: %w", err)
		}
	}

	switch s.format {
	case "pretty", "json", "msgpack":
	default:
		return s, fmt.Errorf("unknown format: %s (expected pretty|json|msgpack)", s.format)
	}
	if s.tabWidth < 0 {
		return s, fmt.Errorf("--tab-width must be >= 0, got %d", s.tabWidth)
	}
	if s.colorOut, err = useColor(colorMode, os.Stdout); err != nil {
		return s, err
	}
	if s.colorErr, err = useColor(colorMode, os.Stderr); err != nil {
		return s, err
	}

	if s.diagFormat, err = flags.GetString("diag-format"); err != nil {
		return s, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return s, fmt.Errorf("unknown diag format: %s (expected pretty|short|json)", s.diagFormat)
	}

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}
	pathValue, err := flags.GetString("path-mode")
	if err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if s.pathMode, err = diagfmt.ParsePathMode(pathValue); err != nil {
		return s, err
	}
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return s, nil
}

func loadConfig(cmd *cobra.Command, input string) (config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return config.Load(explicit)
	}
	cfg, _, err := config.Discover(input)
	return cfg, err
}

// normalizeExts принимает "c", ".c" и "C" одинаково.
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out
}

func (s tokenizeSettings) driverOptions() driver.Options {
	return driver.Options{
		TabWidth:       s.tabWidth,
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           s.jobs,
		Extensions:     s.extensions,
	}
}

func (s tokenizeSettings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.colorErr,
		Context:   1,
		PathMode:  s.pathMode,
		TabWidth:  s.tabWidth,
		ShowNotes: true,
	}
}
