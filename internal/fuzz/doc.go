
// Package fuzztests houses Go fuzz harnesses for the C lexer. Its goal is to
// smoke test robustness and guard against panics, infinite loops and spans
// that disagree with token text on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер до EOF
// или первой ошибки.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/token.

package fuzztests
