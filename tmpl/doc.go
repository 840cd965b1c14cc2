// Package tmpl provides safe expression evaluation and single-pass template
// substitution. Expressions are compiled and run with expr-lang against an
// allow-listed environment, so only registered names and functions are
// reachable; there is no escape hatch into reflection or the host process.
//
// # Expressions
//
// An expression is a single expr-lang expression: literals, arithmetic,
// comparisons, boolean logic, function calls, and member/index access on
// values supplied by the caller.
//
//	result, err := tmpl.Evaluate(`unixtime("2024-01-01T00:00:00Z")`, nil)
//
// # Templates
//
// A template is ordinary text with zero or more {{ expression }} regions.
// Each region is evaluated and replaced by the stringified result in a
// single left-to-right pass. Substituted text is never re-scanned, and an
// inner '}' closes the region (nesting is not supported).
//
//	out, err := tmpl.Render("Filter-{{ start(name, 4) }}", map[string]any{
//		"name": "2024-Q1",
//	})
//
// # Environment
//
// Every call builds a fresh environment in three tiers, later tiers winning
// on name collision:
//
//  1. Builtins: expr-lang's own function library plus the helpers below
//  2. The dynamic name "now", bound to the wall clock at build time
//  3. Caller-supplied names
//
// Helper functions: unixtime, datetime_format, starts_with, ends_with,
// start, end, timedelta_days, timedelta_hours, timedelta_minutes,
// timedelta_seconds, and the list.* delimited-list utilities.
//
// A template render builds one environment for the whole pass, so every
// region in a template observes the same "now".
//
// # Errors
//
// Failures carry one of the sentinels [ErrExprSyntax], [ErrNameNotFound],
// [ErrBadArgument], or [ErrRenderTemplate], and remain reachable through
// errors.Is after wrapping. Nothing is recovered locally; all errors
// propagate to the caller.
package tmpl
