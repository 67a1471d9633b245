package diagfmt

import (
	"cclex/internal/source"
)

// autoPathLimit — длиннее этого auto-режим печатает только имя файла.
const autoPathLimit = 40

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		if len(f.Path) > autoPathLimit {
			return f.FormatPath("basename", "")
		}
		return f.Path
	default:
		return f.Path
	}
}
