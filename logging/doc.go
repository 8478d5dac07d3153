// Package logging provides a minimal logging interface and adapters for the
// parley dialogue engine.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine, adapters and sinks use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text")
//	eng := engine.New(func(o *engine.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available. There is no
// process-wide logger: every component receives its Logger explicitly.
package logging
