// Package pkg provides shared utilities for the usbdesc descriptor library.
//
// This package contains common functionality used across the descriptor,
// provider, profile, and config packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for descriptor construction and validation
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with component context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentProvider, "string table built", "entries", 6)
//
// # Errors
//
// Common errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrDescriptorTooShort) {
//	    // Handle truncated descriptor data
//	}
package pkg
