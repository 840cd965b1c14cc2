package tmpl

import (
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr/vm"
	"github.com/zeebo/xxh3"
)

// programCache stores compiled programs keyed by source and environment
// shape. Compiled programs are immutable, so one entry serves every
// evaluation of the same source; the environment itself is still rebuilt
// fresh for every call (it carries the per-call "now" and overlay values).
//
//nolint:gochecknoglobals
var programCache sync.Map

// cacheKey combines the source hash with a hash of the environment shape
// (its name set and value types). The shape participates because the
// checker binds names and types at compile time: the same source compiled
// against a differently-shaped overlay is a different program.
func cacheKey(source string, env map[string]any) string {
	var shape strings.Builder

	for _, name := range sortedKeys(env) {
		shape.WriteString(name)
		shape.WriteByte(0)
		shape.WriteString(typeName(env[name]))
		shape.WriteByte(0)
	}

	hash := xxh3.Hash([]byte(source)) ^ xxh3.Hash([]byte(shape.String()))

	return strconv.FormatUint(hash, 36)
}

func cacheLoad(source string, env map[string]any) (*vm.Program, bool) {
	value, ok := programCache.Load(cacheKey(source, env))
	if !ok {
		return nil, false
	}

	program, ok := value.(*vm.Program)

	return program, ok
}

func cacheStore(source string, env map[string]any, program *vm.Program) {
	programCache.Store(cacheKey(source, env), program)
}

// ClearCache removes all cached programs.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	programCache = sync.Map{}
}
