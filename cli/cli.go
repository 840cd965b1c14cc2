package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stamp/cli/cmd"
	"github.com/ardnew/stamp/cli/cmd/repl"
	"github.com/ardnew/stamp/pkg"
)

// CLI is the top-level command-line interface for stamp.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Names   string           `help:"YAML file of names to bind during evaluation" short:"n" type:"existingfile" optional:""`
	Set     []string         `help:"Bind an individual name (may be repeated)"    short:"s" placeholder:"KEY=VALUE"`
	Version kong.VersionFlag `help:"Print version and exit"                       short:"V"`

	Eval   cmd.Eval     `cmd:"" default:"withargs" help:"Evaluate a single expression"`
	Render cmd.Render   `cmd:""                    help:"Substitute template regions in a document"`
	List   cmd.Names    `cmd:"" name:"names"       help:"List available names and functions"`
	Repl   repl.Command `cmd:""                    help:"Start an interactive session"`
}

// Run executes the stamp CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those
	// flags during normal parsing, but parse errors can be reported before
	// that happens.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Vars{"version": strings.TrimSpace(pkg.Version)},
		cli.Pprof.vars(),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	names, err := loadNames(cli.Names, cli.Set)
	if err != nil {
		return err
	}

	// Stuff name bindings for use by commands
	ctx = cmd.WithNames(ctx, names)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
