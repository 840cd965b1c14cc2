package tmpl

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// Evaluate evaluates a single expression against the builtin registry
// overlaid with the caller-supplied names. The overlay wins on name
// collision and is never mutated.
//
// Evaluation is a pure function of the expression, the names, and the
// wall-clock instant bound to "now" at entry.
func Evaluate(expression string, names map[string]any) (any, error) {
	return evaluateAt(time.Now(), expression, names)
}

// evaluateAt is the clock-injected implementation shared with Render so a
// template pass can pin one instant across all of its regions.
func evaluateAt(
	now time.Time,
	expression string,
	names map[string]any,
) (any, error) {
	env := buildEnv(now, names)

	program, err := compile(expression, env)
	if err != nil {
		return nil, err
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, classifyRunError(err, expression)
	}

	return result, nil
}

// compile returns the compiled program for source, reusing a cached program
// when the same source was already compiled against an identically-shaped
// environment.
//
// The environment map is the only set of names and functions reachable from
// the compiled program: expr's checker rejects anything else.
func compile(source string, env map[string]any) (*vm.Program, error) {
	if program, ok := cacheLoad(source, env); ok {
		return program, nil
	}

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, classifyCompileError(err, source, env)
	}

	cacheStore(source, env, program)

	return program, nil
}

// classifyCompileError separates grammar failures from checker failures.
// expr reports both through Compile, so re-parsing the bare source tells
// which stage rejected it: a parse failure is a syntax error, anything else
// is the checker complaining about names or argument shapes.
func classifyCompileError(err error, source string, env map[string]any) error {
	if _, perr := parser.Parse(source); perr != nil {
		return ErrExprSyntax.Wrap(perr).
			With(slog.String("source", source))
	}

	msg := err.Error()

	if strings.Contains(msg, "unknown name") ||
		strings.Contains(msg, "unknown function") {
		e := ErrNameNotFound.Wrap(err).
			With(slog.String("source", source))

		if hint := suggestName(unknownIdent(msg), sortedKeys(env)); hint != "" {
			e = e.With(slog.String("suggestion", hint))
		}

		return e
	}

	return ErrBadArgument.Wrap(err).
		With(slog.String("source", source))
}

// classifyRunError maps runtime failures onto the error taxonomy. Helper
// functions already return *Error values; those pass through with the
// source attached. Fetch failures on names the checker could not see
// statically (for example, members of an any-typed overlay value) count as
// name-resolution errors.
func classifyRunError(err error, source string) error {
	e := &Error{}
	if errors.As(err, &e) {
		return e.With(slog.String("source", source))
	}

	msg := err.Error()

	if strings.Contains(msg, "unknown name") ||
		strings.Contains(msg, "cannot fetch") {
		return ErrNameNotFound.Wrap(err).
			With(slog.String("source", source))
	}

	return ErrBadArgument.Wrap(err).
		With(slog.String("source", source))
}
