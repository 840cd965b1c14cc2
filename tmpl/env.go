package tmpl

// This file defines the builtin evaluation environment available to all
// expressions. The builtin table is lazily initialized once per process via
// envCache and cloned on every access so each evaluation owns its map and
// may layer the dynamic "now" binding and caller overlay on top without
// affecting the shared cache.
//
// Builtin names can be shadowed by caller-supplied bindings.

import (
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ardnew/mung"
)

// Private singleton cache.
//
//nolint:gochecknoglobals
var (
	envCacheOnce sync.Once
	envCache     map[string]any
)

// makeEnvCache returns a clone of the lazily-initialized, process-scoped
// builtin table. The returned map can be safely mutated by the caller
// without affecting the shared cache.
func makeEnvCache() map[string]any {
	envCacheOnce.Do(func() {
		envCache = map[string]any{
			// Timestamp and duration functions.
			"unixtime":          unixtime,
			"datetime_format":   datetimeFormat,
			"timedelta_days":    timedeltaDays,
			"timedelta_hours":   timedeltaHours,
			"timedelta_minutes": timedeltaMinutes,
			"timedelta_seconds": timedeltaSeconds,

			// String affix functions.
			"starts_with": startsWith,
			"ends_with":   endsWith,
			"start":       start,
			"end":         end,

			// Delimited-list manipulation via mung.
			"list": map[string]any{
				"prefix": listPrefix,
				"has":    listHas,
			},
		}
	})

	return maps.Clone(envCache)
}

// buildEnv constructs the complete name/function environment for one
// evaluation: builtin table, then the wall-clock binding, then the caller
// overlay. Later tiers win on name collision. Resolution inside expressions
// is case-sensitive and exact-match.
//
// The caller overlay is copied into the fresh map, never mutated.
func buildEnv(now time.Time, names map[string]any) map[string]any {
	env := makeEnvCache()
	env["now"] = now

	maps.Copy(env, names)

	return env
}

// BuiltinEnv returns a copy of the builtin environment, including a "now"
// binding for the current instant. This is useful for reflection-based
// signature introspection.
func BuiltinEnv() map[string]any {
	return buildEnv(time.Now(), nil)
}

// BuiltinNames returns the sorted names in the builtin environment,
// including the dynamic "now" binding. Names nested under a namespace map
// are flattened with a dot (for example, "list.prefix").
// This is useful for code completion and introspection.
func BuiltinNames() []string {
	env := makeEnvCache()
	names := make([]string, 0, len(env)+1)

	for key, value := range env {
		child, ok := value.(map[string]any)
		if !ok {
			names = append(names, key)

			continue
		}

		for sub := range child {
			names = append(names, key+"."+sub)
		}
	}

	// "now" is bound at evaluation time, not cached.
	names = append(names, "now")

	sort.Strings(names)

	return names
}

// ---------------------------------------------------------------------------
// Delimited-list functions (mung)
// ---------------------------------------------------------------------------

// listPrefix prepends items to a delimited list, deduplicating against the
// existing entries. Useful for composing quoted value lists in filter
// expressions.
func listPrefix(subject, delim string, items ...string) string {
	return mung.Make(
		mung.WithSubjectItems(subject),
		mung.WithDelim(delim),
		mung.WithPrefixItems(items...),
	).String()
}

// listHas reports whether a delimited list contains item exactly.
func listHas(subject, delim, item string) bool {
	for _, entry := range strings.Split(subject, delim) {
		if strings.TrimSpace(entry) == item {
			return true
		}
	}

	return false
}
