// Package log provides structured protocol capture for gateway traffic.
//
// This package defines the Logger interface and Event types for recording
// register-level exchanges with a gateway: reads, writes, discovery probes,
// state changes and errors. It is separate from operational logging (slog) -
// protocol capture provides a complete machine-readable trace of the Modbus
// traffic for debugging and analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/powertag/gateway.plog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with integer map keys. Reader streams events
// back out of a capture file, optionally filtered by connection, unit,
// category or time window.
package log
