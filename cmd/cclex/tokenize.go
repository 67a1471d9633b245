package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cclex/internal/diag"
	"cclex/internal/diagfmt"
	"cclex/internal/driver"
	"cclex/internal/lexer"
	"cclex/internal/observ"
	"cclex/internal/progress"
	"cclex/internal/source"
	"cclex/internal/token"
)

func newTokenizeCmd() *cobra.Command {
	tokenizeCmd := &cobra.Command{
		Use:   "tokenize [flags] <file.c|dir>",
		Short: "Tokenize a C source file or directory",
		Long: `Tokenize breaks a C translation unit into tokens.
For a directory every file with a matching extension is tokenized in parallel.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Int("tab-width", lexer.DefaultTabWidth, "tab stop for column numbers (0 or 1: one column per byte)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel lexers for directories (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	tokenizeCmd.Flags().StringSlice("ext", driver.DefaultExtensions, "file extensions scanned in a directory")
	tokenizeCmd.Flags().String("diag-format", "pretty", "diagnostics format on stderr (pretty|short|json)")
	tokenizeCmd.Flags().String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
	return tokenizeCmd
}

// unitDump — токены одного файла, готовые к выводу.
type unitDump struct {
	id     source.FileID
	path   string
	tokens []token.Token
	bag    *diag.Bag
	failed bool
}

func runTokenize(cmd *cobra.Command, args []string) error {
	input := args[0]
	settings, err := resolveSettings(cmd, input)
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if settings.timings {
		timer = observ.NewTimer()
	}

	if info, statErr := os.Stat(input); statErr == nil && info.IsDir() {
		err = tokenizeDir(cmd, input, settings, timer)
	} else {
		err = tokenizeFile(cmd, input, settings, timer)
	}
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return err
}

func tokenizeFile(cmd *cobra.Command, path string, s tokenizeSettings, timer *observ.Timer) error {
	opts := s.driverOptions()
	opts.Observer = driver.TimingObserver(timer)

	res, err := driver.Tokenize(cmd.Context(), path, opts)
	if err != nil {
		return err
	}

	render := beginPhase(timer, "render")
	dump := unitDump{id: res.File.ID, path: path, tokens: res.Tokens, bag: res.Bag, failed: res.Failed()}
	if err := writeTokens(cmd.OutOrStdout(), s, res.FileSet, []unitDump{dump}, false); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	if err := writeDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, s); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}
	render()

	if res.Failed() {
		return errReported
	}
	return nil
}

func tokenizeDir(cmd *cobra.Command, dir string, s tokenizeSettings, timer *observ.Timer) error {
	opts := s.driverOptions()
	opts.Observer = driver.TimingObserver(timer)

	files, err := driver.ListSources(dir, s.extensions)
	if err != nil {
		return err
	}
	display := make([]string, len(files))
	for i, f := range files {
		display[i] = f
		if rel, relErr := source.RelativePath(f, dir); relErr == nil {
			display[i] = rel
		}
	}

	var (
		out      bytes.Buffer
		fileSet  *source.FileSet
		results  []driver.TokenizeDirResult
		stageLog = &progress.TimingSink{}
	)
	pipeline := func(ctx context.Context, sink progress.Sink) error {
		stageLog.Next = sink
		opts.Progress = stageLog

		var runErr error
		fileSet, results, runErr = driver.TokenizeDir(ctx, dir, opts)
		if runErr != nil {
			return runErr
		}

		progress.Emit(stageLog, progress.Event{Stage: progress.StageRender, Status: progress.StatusWorking})
		start := time.Now()
		render := beginPhase(timer, "render")
		dumps := make([]unitDump, len(results))
		for i, r := range results {
			dumps[i] = unitDump{id: r.FileID, path: r.Path, tokens: r.Tokens, bag: r.Bag, failed: r.Failed()}
		}
		runErr = writeTokens(&out, s, fileSet, dumps, true)
		render()
		progress.Emit(stageLog, progress.Event{Stage: progress.StageRender, Status: progress.StatusDone, Elapsed: time.Since(start)})
		return runErr
	}

	if shouldUseTUI(s.ui, len(files), s.quiet) {
		err = runWithUI(cmd.Context(), "cclex tokenize "+dir, display, pipeline)
	} else {
		err = pipeline(cmd.Context(), nil)
	}
	if err != nil {
		return err
	}

	if _, err := io.Copy(cmd.OutOrStdout(), &out); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}

	merged := driver.MergeBags(results, s.maxDiagnostics)
	merged.Sort()
	if err := writeDiagnostics(cmd.ErrOrStderr(), merged, fileSet, s); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}

	failed, total := 0, 0
	for _, r := range results {
		total += len(r.Tokens)
		if r.Failed() {
			failed++
		}
	}
	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "tokenized %d files: %d tokens, %d failed\n", len(results), total, failed)
	}
	if s.timings {
		timings, counts := stageLog.Timings()
		printStageTimings(cmd.ErrOrStderr(), timings, counts)
	}

	if failed > 0 {
		return errReported
	}
	return nil
}

// writeTokens выводит дампы в выбранном формате. withHeaders печатает имя файла перед каждым pretty-дампом.
func writeTokens(w io.Writer, s tokenizeSettings, fs *source.FileSet, dumps []unitDump, withHeaders bool) error {
	switch s.format {
	case "pretty":
		for _, d := range dumps {
			if withHeaders {
				if _, err := fmt.Fprintf(w, "==> %s <==\n", d.path); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatTokensPretty(w, d.tokens, fs, diagfmt.TokenOpts{Color: s.colorOut, PathMode: s.pathMode}); err != nil {
				return err
			}
		}
		return nil
	case "json", "msgpack":
		files := make([]diagfmt.FileTokens, len(dumps))
		for i, d := range dumps {
			files[i] = diagfmt.BuildFileTokens(fs, d.id, d.tokens, firstFailure(d), s.pathMode)
		}
		if s.format == "json" {
			return diagfmt.FormatTokensJSON(w, files)
		}
		return diagfmt.FormatTokensMsgpack(w, files)
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}
}

// writeDiagnostics печатает bag в stderr-формате из настроек; пустой bag не печатается.
func writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, s tokenizeSettings) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	switch s.diagFormat {
	case "short":
		_, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), fs, true)+"\n")
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         s.pathMode,
			Max:              s.maxDiagnostics,
			IncludeNotes:     true,
		})
	default:
		diagfmt.Pretty(w, bag, fs, s.prettyOpts())
		return nil
	}
}

func firstFailure(d unitDump) *diag.Diagnostic {
	if !d.failed || d.bag == nil || d.bag.Len() == 0 {
		return nil
	}
	first := d.bag.Items()[0]
	return &first
}

func beginPhase(timer *observ.Timer, name string) func() {
	if timer == nil {
		return func() {}
	}
	idx := timer.Begin(name)
	return func() { timer.End(idx, "") }
}
