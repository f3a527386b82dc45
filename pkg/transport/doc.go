// Package transport defines the register transport consumed by the gateway
// facade and provides a Modbus TCP implementation of it.
//
// The transport is a synchronous request/response channel: one read or write
// round-trip per call, no retries, no batching, no internal locking. A
// connection is a single shared resource; callers that use one connection
// from several goroutines must serialize access themselves, since
// interleaving requests on one Modbus session would corrupt request/response
// pairing.
//
// Failures are classified into two kinds the caller can test with errors.Is:
// ErrTransport for connection-level failures and ErrDeviceException for
// Modbus exception responses from the device. Both are distinct from the
// sentinel-value absences handled one layer up.
package transport
