package tmpl

import (
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ncruces/go-strftime"
)

const hoursPerDay = 24

// unixtime converts a timestamp value to seconds since the Unix epoch.
// String input is parsed with a permissive date parser that accepts most
// common layouts. time.Time input converts directly. Any other value passes
// through unchanged, so numeric epoch values are idempotent.
func unixtime(value any) (any, error) {
	switch v := value.(type) {
	case string:
		parsed, err := dateparse.ParseAny(v)
		if err != nil {
			return nil, ErrBadArgument.Wrap(err).
				With(
					slog.String("function", "unixtime"),
					slog.String("value", v),
				)
		}

		return epochSeconds(parsed), nil

	case time.Time:
		return epochSeconds(v), nil

	default:
		return value, nil
	}
}

// epochSeconds returns fractional seconds since the Unix epoch.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// datetimeFormat formats a timestamp using a strftime-style pattern.
func datetimeFormat(value any, pattern string) (string, error) {
	t, ok := value.(time.Time)
	if !ok {
		return "", ErrBadArgument.With(
			slog.String("function", "datetime_format"),
			slog.String("type", typeName(value)),
		)
	}

	return strftime.Format(pattern, t), nil
}

// startsWith reports whether s begins with prefix.
func startsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// endsWith reports whether s ends with suffix.
func endsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// start returns the first n characters of s. It follows slice conventions
// of the source templates: n beyond the length returns the whole string,
// and a negative n drops the last |n| characters.
func start(s string, n int) string {
	runes := []rune(s)

	if n < 0 {
		n += len(runes)
	}

	switch {
	case n < 0:
		n = 0
	case n > len(runes):
		n = len(runes)
	}

	return string(runes[:n])
}

// end returns the last |n| characters of s. end(s, 0) is "".
func end(s string, n int) string {
	runes := []rune(s)

	if n < 0 {
		n = -n
	}

	if n > len(runes) {
		n = len(runes)
	}

	return string(runes[len(runes)-n:])
}

// timedeltaDays returns a duration of n days (24-hour units).
func timedeltaDays(n int) time.Duration {
	return time.Duration(n) * hoursPerDay * time.Hour
}

// timedeltaHours returns a duration of n hours.
func timedeltaHours(n int) time.Duration {
	return time.Duration(n) * time.Hour
}

// timedeltaMinutes returns a duration of n minutes.
func timedeltaMinutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// timedeltaSeconds returns a duration of n seconds.
func timedeltaSeconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
