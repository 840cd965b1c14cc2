package tmpl

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/klauspost/readahead"
)

// regionPattern matches one {{ ... }} region. The body is the longest span
// free of '}', so an inner '}' closes the region and nested braces are not
// supported.
//
//nolint:gochecknoglobals
var regionPattern = regexp.MustCompile(`\{\{([^}]*)\}\}`)

// Render substitutes every {{ expression }} region in template with the
// stringified result of evaluating the region body against the builtin
// registry overlaid with names. Regions are processed left to right,
// non-overlapping, in a single pass; substituted text is never re-scanned.
//
// One environment serves the whole pass, so every region observes the same
// "now". A template with no regions is returned unchanged without building
// an environment at all.
//
// If any region fails to evaluate, Render returns an empty string and an
// error wrapping the region's failure, with the offending body attached for
// diagnostics.
func Render(template string, names map[string]any) (string, error) {
	regions := regionPattern.FindAllStringSubmatchIndex(template, -1)
	if len(regions) == 0 {
		return template, nil
	}

	now := time.Now()

	var out strings.Builder

	last := 0

	for _, loc := range regions {
		body := template[loc[2]:loc[3]]

		result, err := evaluateAt(now, body, names)
		if err != nil {
			return "", ErrRenderTemplate.Wrap(err).
				With(slog.String("region", body))
		}

		out.WriteString(template[last:loc[0]])
		out.WriteString(Stringify(result))

		last = loc[1]
	}

	out.WriteString(template[last:])

	return out.String(), nil
}

// RenderReader renders a template streamed from r. The reader is wrapped
// with asynchronous read-ahead so input is prefetched while earlier chunks
// are buffered.
func RenderReader(r io.Reader, names map[string]any) (string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return Render(string(data), names)
}
