package diag

import (
	"cclex/internal/source"
)

// Severity упорядочена: сравнение >= SevWarning покрывает и ошибки.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem. Primary points at the offending bytes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

// NewError — короткая форма New(SevError, ...); лексер сообщает только ошибки.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy with one more note; the receiver is left untouched.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}

// key identifies a diagnostic for Dedup: same code at the same place.
func (d *Diagnostic) key() dedupKey {
	return dedupKey{code: d.Code, span: d.Primary}
}

type dedupKey struct {
	code Code
	span source.Span
}
