// Package trace records structured events of the grit tool: driver runs,
// per-file work and the phases inside it (lex, parse, check, print).
//
// # Usage
//
//	grit check --trace=- --trace-level=phase rules/*.grit
//
// # Tracers
//
//   - Nop: disabled tracing, no allocation per event
//   - StreamTracer: writes every event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - Fanout: copies events to several tracers
//
// # Levels and scopes
//
// Events carry a scope: ScopeDriver for whole runs, ScopePhase for phases,
// ScopeFile for per-file work and ScopeNode for single tree nodes. The level
// selects which scopes are kept: LevelPhase keeps driver and phase events,
// LevelDetail adds files, LevelDebug keeps everything.
//
// # Context
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePhase, "parse")
//	defer span.End("")
package trace
