package cli

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stamp/cli/cmd"
)

// loadNames builds the name bindings available to expressions from an
// optional YAML file and any --set overrides. Overrides win on collision.
func loadNames(path string, set []string) (map[string]any, error) {
	names := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, cmd.ErrInvalidBinding.Wrap(err).
				With(slog.String("path", path))
		}

		if err := yaml.Unmarshal(data, &names); err != nil {
			return nil, cmd.ErrInvalidBinding.Wrap(err).
				With(slog.String("path", path))
		}
	}

	for _, pair := range set {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, cmd.ErrInvalidBinding.
				With(slog.String("argument", pair))
		}

		bind(names, key, parseScalar(value))
	}

	if len(names) == 0 {
		return nil, nil
	}

	return names, nil
}

// bind stores value under a possibly dotted key, creating nested maps as
// needed so "filter.name" is reachable with member access.
func bind(names map[string]any, key string, value any) {
	parts := strings.Split(key, ".")

	for _, part := range parts[:len(parts)-1] {
		child, ok := names[part].(map[string]any)
		if !ok {
			child = map[string]any{}
			names[part] = child
		}

		names = child
	}

	names[parts[len(parts)-1]] = value
}

// parseScalar converts a flag value to its most specific type: int, float,
// bool, or string. Numeric conversion runs first so "1" binds an int, not a
// bool.
func parseScalar(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	return s
}
