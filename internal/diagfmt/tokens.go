package diagfmt

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"cclex/internal/diag"
	"cclex/internal/source"
	"cclex/internal/token"
)

// TokenDumpSchema versions FileTokens; bump it when fields change meaning.
const TokenDumpSchema uint16 = 1

// TokenOutput is one token in JSON/msgpack dumps. Line/Col are 1-based, byte based.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
}

// FileTokens — токены одного файла и ошибка, на которой лексер остановился.
type FileTokens struct {
	Schema uint16          `json:"schema" msgpack:"schema"`
	File   string          `json:"file" msgpack:"file"`
	Hash   string          `json:"hash,omitempty" msgpack:"hash,omitempty"`
	Tokens []TokenOutput   `json:"tokens" msgpack:"tokens"`
	Error  *DiagnosticJSON `json:"error,omitempty" msgpack:"error,omitempty"`
}

// BuildFileTokens собирает дамп для одного файла. failure may be nil.
func BuildFileTokens(fs *source.FileSet, id source.FileID, tokens []token.Token, failure *diag.Diagnostic, mode PathMode) FileTokens {
	f := fs.Get(id)
	out := FileTokens{
		Schema: TokenDumpSchema,
		File:   formatPath(f, fs, mode),
		Tokens: make([]TokenOutput, 0, len(tokens)),
	}
	if f != nil {
		out.Hash = hex.EncodeToString(f.Hash[:])
	}
	for _, tok := range tokens {
		pos, _ := fs.Resolve(tok.Span)
		out.Tokens = append(out.Tokens, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Line:  pos.Line,
			Col:   pos.Col,
		})
	}
	if failure != nil {
		d := resolver{fs: fs, mode: mode, positions: true}.diagnostic(failure, false)
		out.Error = &d
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, opts TokenOpts) error {
	kindColor := color.New(color.FgCyan)
	litColor := color.New(color.FgGreen)
	for _, c := range []*color.Color{kindColor, litColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		// выравнивание по имени вида до раскраски: escape-коды ломают %-15s
		name := fmt.Sprintf("%-15s", tok.Kind.String())
		if _, err := fmt.Fprintf(w, "%3d: %s", i+1, kindColor.Sprint(name)); err != nil {
			return err
		}
		if tok.Text != "" {
			text := fmt.Sprintf("%q", tok.Text)
			if tok.IsLiteral() {
				text = litColor.Sprint(text)
			}
			fmt.Fprintf(w, " %s", text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.IsDigraph() {
			fmt.Fprint(w, " (digraph)")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит дампы файлов в JSON формате
func FormatTokensJSON(w io.Writer, files []FileTokens) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}

// FormatTokensMsgpack пишет дампы в msgpack; читается обратно DecodeTokensMsgpack.
func FormatTokensMsgpack(w io.Writer, files []FileTokens) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(files)
}

// DecodeTokensMsgpack reads a dump written by FormatTokensMsgpack and rejects unknown schemas.
func DecodeTokensMsgpack(r io.Reader) ([]FileTokens, error) {
	var files []FileTokens
	if err := msgpack.NewDecoder(r).Decode(&files); err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].Schema != TokenDumpSchema {
			return nil, fmt.Errorf("token dump %q: unsupported schema %d", files[i].File, files[i].Schema)
		}
	}
	return files, nil
}
