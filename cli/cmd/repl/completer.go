package repl

import (
	"slices"
	"unicode/utf8"

	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/stamp/tmpl"
)

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes. This includes whitespace, the member-access dot, and expr
// operator/punctuation characters.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';',
		'"', '\'':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Words are delimited by whitespace, dots, and expr
// operator/punctuation characters.
// Returns an empty word when the cursor sits on a boundary (after a space,
// between dots, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// candidates returns the completion candidate list: built-in names, bound
// names, and the expr language builtins, deduplicated and sorted.
func candidates(names map[string]any) []string {
	list := tmpl.BuiltinNames()

	for name := range names {
		list = append(list, name)
	}

	for _, fn := range builtin.Builtins {
		list = append(list, fn.Name)
	}

	slices.Sort(list)

	return slices.Compact(list)
}

// matchCandidates ranks candidates against the given word.
// An empty word matches nothing.
func matchCandidates(word string, list []string) fuzzy.Matches {
	if word == "" {
		return nil
	}

	return fuzzy.Find(word, list)
}
