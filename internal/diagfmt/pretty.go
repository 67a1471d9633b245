package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cclex/internal/diag"
	"cclex/internal/source"
)

type palette struct {
	sev   map[diag.Severity]*color.Color
	path  *color.Color
	gut   *color.Color
	caret *color.Color
	note  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		path:  color.New(color.Bold),
		gut:   color.New(color.FgBlue),
		caret: color.New(color.FgGreen, color.Bold),
		note:  color.New(color.FgCyan),
	}
	// глобальный color.NoColor зависит от TTY stdout; здесь решает опция
	for _, c := range append([]*color.Color{p.path, p.gut, p.caret, p.note}, p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo]) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.sev[diag.SevError]
	}

	fmt.Fprintf(w, "%s: %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		sev.Sprintf("%s %s", d.Severity, d.Code.ID()),
		d.Message,
	)
	if f != nil {
		snippet(w, f, start, end, d.Primary.Len(), opts, pal)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s: %s\n",
			pal.note.Sprint("note:"),
			fmt.Sprintf("%s:%d:%d", formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col),
			n.Msg,
		)
	}
}

// snippet печатает строки контекста и подчёркивание под основной строкой.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, spanLen uint32, opts PrettyOpts, pal palette) {
	if start.Line == 0 {
		return
	}
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}
	from := uint32(1)
	if start.Line > ctx {
		from = start.Line - ctx
	}
	lines := uint32(len(f.LineIdx)) + 1
	to := min(start.Line+ctx, lines)
	width := len(fmt.Sprint(to))

	for ln := from; ln <= to; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", pal.gut.Sprintf("%*d |", width, ln), expandTabs(text, opts.TabWidth))
		if ln != start.Line {
			continue
		}

		col := int(start.Col) - 1
		col = min(max(col, 0), len(text))
		pad := runewidth.StringWidth(expandTabs(text[:col], opts.TabWidth))

		n := 1
		switch {
		case end.Line == start.Line && end.Col > start.Col:
			endCol := min(int(end.Col)-1, len(text))
			n = max(runewidth.StringWidth(expandTabs(text[:endCol], opts.TabWidth))-pad, 1)
		case end.Line > start.Line && spanLen > 0:
			n = max(runewidth.StringWidth(expandTabs(text, opts.TabWidth))-pad, 1)
		}
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gut.Sprintf("%*s |", width, ""),
			strings.Repeat(" ", pad),
			pal.caret.Sprint("^"+strings.Repeat("~", n-1)),
		)
	}
}

// expandTabs раскрывает '\t' до ближайшей позиции, кратной tab.
func expandTabs(s string, tab int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	if tab < 2 {
		return strings.ReplaceAll(s, "\t", " ")
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tab - col%tab
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
