package cmd

import (
	"context"
	"io"
	"os"
)

// namesKey is used to store bound names in a [context.Context].
type namesKey struct{}

// WithNames returns a new context carrying the given name bindings.
func WithNames(ctx context.Context, names map[string]any) context.Context {
	return context.WithValue(ctx, namesKey{}, names)
}

// NamesFrom returns the name bindings carried by ctx, or nil if none.
func NamesFrom(ctx context.Context) map[string]any {
	names, ok := ctx.Value(namesKey{}).(map[string]any)
	if !ok {
		return nil
	}

	return names
}

// stdoutKey is used to override the output writer in tests.
type stdoutKey struct{}

// WithStdout returns a new context that redirects command output to w.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

func stdoutFrom(ctx context.Context) io.Writer {
	w, ok := ctx.Value(stdoutKey{}).(io.Writer)
	if !ok || w == nil {
		return os.Stdout
	}

	return w
}
