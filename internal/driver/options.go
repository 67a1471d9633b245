package driver

import (
	"cclex/internal/diag"
	"cclex/internal/lexer"
	"cclex/internal/progress"
)

// DefaultExtensions are scanned by TokenizeDir when Options.Extensions is empty.
var DefaultExtensions = []string{".c", ".h"}

// Options configures a tokenize run.
type Options struct {
	TabWidth       int
	MaxDiagnostics int
	Jobs           int      // <=0 означает GOMAXPROCS
	Extensions     []string // только для TokenizeDir
	Progress       progress.Sink
	Observer       PhaseObserver
}

func (o Options) lexerOptions(bag *diag.Bag) lexer.Options {
	return lexer.Options{
		TabWidth: o.TabWidth,
		Reporter: diag.BagReporter{Bag: bag},
	}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// DefaultMaxDiagnostics caps a Bag when Options.MaxDiagnostics is not set.
const DefaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}
