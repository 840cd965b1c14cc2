// Package log wraps [log/slog] with a small, concurrency-safe logging
// interface configured through functional options.
//
// A [Logger] is an immutable value. Deriving a new logger with [Logger.Wrap]
// or [Logger.With] never affects the original, so loggers can be shared
// freely across goroutines.
//
// Besides the standard slog levels, the package defines [LevelTrace] for
// very fine-grained diagnostics such as per-region template evaluation.
package log
