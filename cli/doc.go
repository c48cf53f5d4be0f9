// Package cli contains the command line interface for markc.
//
// # Usage
//
// Compiling a document writes its fully expanded text to dist.md next to
// the input, or to the file given with --output:
//
//	markc build notes.md
//	markc build notes.md --output out.md
//	markc build notes.md --output -
//
// The build subcommand is the default, so the input file may be given
// directly:
//
//	markc notes.md
//
// The check subcommand parses a document and verifies that every macro
// call dispatches to a known function, without evaluating anything:
//
//	markc check notes.md
//
// # Configuration
//
// Flag defaults are read from a YAML configuration file (typically
// ~/.config/markc/config.yaml). The init subcommand writes one populated
// with the current flag values:
//
//	markc init
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/markc/pprof)
package cli
