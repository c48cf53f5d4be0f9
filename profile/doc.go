// Package profile provides optional runtime profiling for the markc
// command.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to retrieve
// the list programmatically.
//
// Example:
//
//	ctrl := profile.WithMode("cpu")(profile.Zero()).Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof), and can be inspected with
// "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
