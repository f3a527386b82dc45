package discovery

import "errors"

var (
	// ErrSynthesisTableNotFound indicates no unit in the probe range answered
	// the synthesis table probe.
	ErrSynthesisTableNotFound = errors.New("synthesis table not found")

	// ErrGatewayNotFound indicates no gateway was discovered before the
	// context expired.
	ErrGatewayNotFound = errors.New("gateway not found")
)
