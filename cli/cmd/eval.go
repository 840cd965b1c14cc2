package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/stamp/log"
	"github.com/ardnew/stamp/tmpl"
)

// Eval evaluates a single expression and prints the result.
type Eval struct {
	Expression string `arg:"" help:"Expression to evaluate" name:"expression"`

	Output string `default:"text" enum:"text,json,yaml" help:"Result encoding"                     short:"o"`
	Indent int    `default:"0"                          help:"Indentation for structured output"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	names := NamesFrom(ctx)

	log.DebugContext(ctx, "evaluating expression",
		slog.String("source", e.Expression),
		slog.Int("names", len(names)),
	)

	result, err := tmpl.Evaluate(e.Expression, names)
	if err != nil {
		return err
	}

	w := stdoutFrom(ctx)

	switch e.Output {
	case "json":
		return tmpl.EncodeJSON(w, result, e.Indent)

	case "yaml":
		return tmpl.EncodeYAML(w, result, max(e.Indent, 1))

	default:
		_, err := fmt.Fprintln(w, tmpl.Stringify(result))

		return err
	}
}
