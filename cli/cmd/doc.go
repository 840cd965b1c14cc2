// Package cmd implements the subcommands of the stamp command-line
// interface.
//
// Name bindings parsed by the root command are threaded to subcommands
// through the [context.Context] using [WithNames] and [NamesFrom].
package cmd
