package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stamp/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)

	format, _ := log.ParseFormat(string(*f))
	log.Config(log.WithFormat(format))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)

	level, _ := log.ParseLevel(string(*l))
	log.Config(log.WithLevel(level))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"warn"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"text,json"                   help:"Set log format."`
	TimeLayout string    `default:"Kitchen"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information." negatable:""`
	Color      bool      `default:"true"                                       help:"Colorize text output."       negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	level, _ := log.ParseLevel(string(f.Level))
	format, _ := log.ParseFormat(string(f.Format))

	log.Config(
		log.WithLevel(level),
		log.WithFormat(format),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithColor(f.Color),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("color", f.Color),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply the level and format flags before Kong begins parsing, so messages
// emitted during parsing already honor them. Boolean presentation flags are
// harmless to apply late and are left to normal parsing.
func (f *logConfig) scan(args []string) {
	flagValue := func(i int, name string) (string, bool) {
		arg := args[i]

		if rest, ok := strings.CutPrefix(arg, name+"="); ok {
			return rest, true
		}

		if arg == name && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return args[i+1], true
		}

		return "", false
	}

	for i := range args {
		if value, ok := flagValue(i, "--log-level"); ok {
			_ = f.Level.UnmarshalText([]byte(value))
		}

		if value, ok := flagValue(i, "--log-format"); ok {
			_ = f.Format.UnmarshalText([]byte(value))
		}
	}
}
