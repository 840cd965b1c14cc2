// Package profile provides optional runtime profiling for the stamp
// application.
//
// Profiling integrates [github.com/pkg/profile] and is compiled in only when
// the "pprof" build tag is set. Without the tag, every operation is a no-op
// with zero runtime overhead, so callers never need to guard their use of
// this package.
//
// Supported modes with the pprof tag: allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread, and trace. Use [Modes] to enumerate them
// programmatically.
//
// Profile files are written to the configured directory with names matching
// the mode (cpu.pprof, mem.pprof, ...) and are analyzed with:
//
//	go tool pprof ./stamp /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
