package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cclex/internal/diag"
	"cclex/internal/lexer"
	"cclex/internal/progress"
	"cclex/internal/source"
	"cclex/internal/token"
	"cclex/internal/trace"
)

// TokenizeResult holds the tokens of one translation unit.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Tokens заканчиваются EOF, если лексер дошёл до конца без ошибки.
	Tokens []token.Token
	Bag    *diag.Bag
	// Err is the first lexical error (*lexer.Error), nil on a clean run.
	Err error
}

// Failed reports whether lexing stopped on an error.
func (r *TokenizeResult) Failed() bool {
	return r != nil && r.Err != nil
}

// Tokenize loads path and lexes it to EOF or the first error. The returned
// error is non-nil only when the file could not be loaded; lexical errors are
// reported through TokenizeResult.Err and Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	bag := diag.NewBag(opts.maxDiagnostics())

	load := startPhase(opts.Observer, PhaseLoad)
	progress.Emit(opts.Progress, progress.Event{File: path, Stage: progress.StageLoad, Status: progress.StatusWorking})
	lx, err := lexer.Open(fs, path, opts.lexerOptions(bag))
	load.end(path)
	if err != nil {
		progress.Emit(opts.Progress, progress.Event{File: path, Stage: progress.StageLoad, Status: progress.StatusError, Err: err})
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	return lexUnit(ctx, fs, lx, bag, path, opts), nil
}

// TokenizeBytes lexes caller-owned content registered under name.
func TokenizeBytes(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	bag := diag.NewBag(opts.maxDiagnostics())
	lx := lexer.FromBytes(fs, name, content, opts.lexerOptions(bag))
	return lexUnit(ctx, fs, lx, bag, name, opts)
}

func lexUnit(ctx context.Context, fs *source.FileSet, lx *lexer.Lexer, bag *diag.Bag, display string, opts Options) *TokenizeResult {
	ctx, span := trace.StartSpan(ctx, trace.ScopeUnit, "lex_unit")
	start := time.Now()
	phase := startPhase(opts.Observer, PhaseLex)
	progress.Emit(opts.Progress, progress.Event{File: display, Stage: progress.StageLex, Status: progress.StatusWorking})

	tokens, lexErr := collectTokens(ctx, lx)
	file := lx.File()
	lx.Close()

	note := strconv.Itoa(len(tokens)) + " tokens"
	status := progress.StatusDone
	if lexErr != nil {
		status = progress.StatusError
		note = lexErr.Error()
	}
	phase.end(display)
	elapsed := time.Since(start)
	span.WithExtra("file", display).WithExtra("tokens", strconv.Itoa(len(tokens))).End(note)
	progress.Emit(opts.Progress, progress.Event{
		File:    display,
		Stage:   progress.StageLex,
		Status:  status,
		Err:     lexErr,
		Tokens:  len(tokens),
		Elapsed: elapsed,
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     lexErr,
	}
}

// collectTokens вытягивает токены до EOF или первой ошибки.
func collectTokens(ctx context.Context, lx *lexer.Lexer) ([]token.Token, error) {
	tracer := trace.FromContext(ctx)
	tokenLevel := tracer.Enabled() && tracer.Level().ShouldEmit(trace.ScopeToken)
	parent := trace.CurrentSpan(ctx).SpanID

	tokens := make([]token.Token, 0, 256)
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tokenLevel {
			trace.Point(tracer, trace.ScopeToken, tok.Kind.String(), tok.Text, parent)
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
