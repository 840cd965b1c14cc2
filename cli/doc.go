// Package cli contains the command line interface for stamp.
//
// # Usage
//
// Expressions and templates are evaluated against built-in names plus any
// bindings supplied with --names or --set:
//
//	stamp eval 'unixtime(now)'
//	stamp render deploy.yaml --names values.yaml
//	stamp render -t 'Filter-{{ start(campaign, 4) }}' --set campaign=2024-Q1
//	stamp names
//	stamp repl
//
// Logging and profiling are configured through the --log-* and --pprof-*
// flag groups.
package cli
