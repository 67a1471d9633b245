package lexer

import (
	"fortio.org/safecast"

	"cclex/internal/diag"
)

// DefaultTabWidth is the tab stop used by the CLI when nothing else is configured.
const DefaultTabWidth = 8

type Options struct {
	// TabWidth > 1 advances the column to the next multiple of TabWidth on '\t';
	// 0 or 1 counts a tab as a single column like any other byte.
	TabWidth int
	// Reporter получает копию каждой лексической ошибки; может быть nil.
	Reporter diag.Reporter
}

func (o Options) tabWidth() uint32 {
	w, err := safecast.Conv[uint32](o.TabWidth)
	if err != nil || w < 2 {
		return 1
	}
	return w
}
