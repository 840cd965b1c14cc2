package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/stamp/log"
	"github.com/ardnew/stamp/tmpl"
)

// Render substitutes every template region in a document and prints the
// rendered result.
type Render struct {
	Source string `arg:"" default:"-" help:"Template file or '-' for stdin" name:"source" optional:""`

	Template string `help:"Inline template text (overrides source)" short:"t"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) error {
	names := NamesFrom(ctx)

	var (
		out string
		err error
	)

	switch {
	case r.Template != "":
		log.DebugContext(ctx, "rendering inline template",
			slog.Int("length", len(r.Template)),
		)

		out, err = tmpl.Render(r.Template, names)

	case r.Source == "-":
		log.DebugContext(ctx, "rendering stdin")

		out, err = tmpl.RenderReader(os.Stdin, names)

	default:
		log.DebugContext(ctx, "rendering file",
			slog.String("path", r.Source),
		)

		var file *os.File

		file, err = os.Open(r.Source)
		if err != nil {
			return ErrOpenSource.Wrap(err).
				With(slog.String("path", r.Source))
		}
		defer file.Close()

		out, err = tmpl.RenderReader(file, names)
	}

	if err != nil {
		return err
	}

	w := stdoutFrom(ctx)

	if _, err := fmt.Fprint(w, out); err != nil {
		return err
	}

	// Keep shell prompts off the rendered line without altering file content.
	if !strings.HasSuffix(out, "\n") {
		_, err = fmt.Fprintln(w)
	}

	return err
}
