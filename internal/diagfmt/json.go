package diagfmt

import (
	"encoding/json"
	"io"

	"cclex/internal/diag"
	"cclex/internal/source"
)

// LocationJSON — положение диапазона в файле. Строки и колонки опускаются,
// если вызывающий не просил позиции.
type LocationJSON struct {
	File      string `json:"file" msgpack:"file"`
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" msgpack:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" msgpack:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" msgpack:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" msgpack:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
}

// DiagnosticJSON is one diagnostic as machine-readable output; token dumps reuse it
// for the error that stopped the lexer.
type DiagnosticJSON struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// DiagnosticsOutput — корень JSON документа с диагностиками.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// resolver переводит диапазоны в LocationJSON с одними и теми же настройками.
type resolver struct {
	fs        *source.FileSet
	mode      PathMode
	positions bool
}

func (r resolver) location(span source.Span) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(r.fs.Get(span.File), r.fs, r.mode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if !r.positions {
		return loc
	}
	start, end := r.fs.Resolve(span)
	loc.StartLine, loc.StartCol = start.Line, start.Col
	loc.EndLine, loc.EndCol = end.Line, end.Col
	return loc
}

func (r resolver) diagnostic(d *diag.Diagnostic, withNotes bool) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: r.location(d.Primary),
	}
	if !withNotes {
		return out
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: r.location(n.Span)})
	}
	return out
}

// BuildDiagnosticsOutput собирает документ без сериализации; opts.Max > 0 обрезает список.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	r := resolver{fs: fs, mode: opts.PathMode, positions: opts.IncludePositions}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	for i := range items {
		out.Diagnostics = append(out.Diagnostics, r.diagnostic(&items[i], opts.IncludeNotes))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON пишет диагностики как indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
