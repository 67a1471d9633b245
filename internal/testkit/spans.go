// Package testkit holds invariant checks shared by lexer, driver and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cclex/internal/source"
	"cclex/internal/token"
)

// CheckTokenSpans runs the span invariants on a token stream lexed from sf:
// 1) every non-EOF span is non-empty, belongs to sf and lies within its content
// 2) spans are ordered and do not overlap
// 3) Text equals the source bytes under the span
// 4) a trailing EOF, if present, is empty and sits at or after the last token
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}

		if tok.Kind == token.EOF {
			if sp.End != sp.Start {
				return fmt.Errorf("token %d: EOF span is not empty: %v", i, sp)
			}
			if i != len(tokens)-1 {
				return fmt.Errorf("token %d: EOF is not the last token", i)
			}
			continue
		}

		if sp.End <= sp.Start {
			return fmt.Errorf("token %d: empty span %v", i, sp)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		prevEnd = sp.End
	}
	return nil
}
