// Package gateway provides the typed client for a PowerTag Link gateway.
//
// A Client wraps a register transport and exposes one accessor per logical
// attribute of the gateway's published register map: gateway identification,
// per-tag metering, energy and demand counters, alarms, configuration,
// device identification, radio diagnostics and the synthesis table. The
// synthesis-table unit identifier is resolved once at construction and fixed
// for the client's lifetime.
//
// Accessors decode device absence (sentinel register patterns) to nil
// pointers, never to errors. Errors signal transport failures, device
// exception responses or malformed payloads. The client performs no retries
// and no caching, and issues a single request per call; callers that share a
// client across goroutines must serialize access.
package gateway
