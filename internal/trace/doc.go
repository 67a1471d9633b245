// Package trace provides the tracing subsystem of cclex.
//
// Tracing follows a run through loading, lexing and rendering, and it helps
// find slow or stuck translation units in large directory runs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	cclex tokenize --trace=- --trace-level=detail src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped to stderr when a run fails
//   - MultiTracer: stream + ring
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: ring dumps only
//   - LevelPhase: command and pass boundaries
//   - LevelDetail: one span per translation unit
//   - LevelDebug: every token
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.StartSpan(ctx, trace.ScopePass, "lex")
//	defer span.End("")
package trace
