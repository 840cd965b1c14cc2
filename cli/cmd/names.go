package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/ardnew/stamp/tmpl"
)

// Names lists every name available to expressions: the built-in helpers plus
// any bindings supplied on the command line.
type Names struct {
	Output string `default:"text" enum:"text,json,yaml" help:"Result encoding" short:"o"`
}

// Run executes the names command.
func (n *Names) Run(ctx context.Context) error {
	names := tmpl.BuiltinNames()

	for name := range NamesFrom(ctx) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	w := stdoutFrom(ctx)

	switch n.Output {
	case "json":
		return tmpl.EncodeJSON(w, names, 0)

	case "yaml":
		return tmpl.EncodeYAML(w, names, 1)

	default:
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}

		return nil
	}
}
