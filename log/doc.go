// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//	logger.Info("compile started", slog.String("file", path))
//
// A package-level default logger writing to standard error is available
// through [Config], [Debug], [Info], [Warn], and [Error]. Context-unaware
// functions internally call their context-aware counterparts using
// [DefaultContextProvider].
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText], each with an optional colorized pretty variant enabled
// by [WithPretty].
package log
