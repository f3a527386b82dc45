// Package discovery locates PowerTag gateways and their synthesis tables.
//
// Two mechanisms are provided. FindSynthesisUnit probes a connected gateway
// for the unit identifier that serves the synthesis table, which moves
// between firmware generations. GatewayBrowser finds gateways on the local
// network via mDNS before any Modbus connection exists.
package discovery
