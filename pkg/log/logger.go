package log

// Logger is the interface capture sinks implement. The gateway client
// emits one event per register exchange, plus probe, state and error
// events.
type Logger interface {
	// Log records a protocol event. Implementations must be safe for
	// concurrent use and should return quickly; the client calls Log
	// inline with the exchange.
	Log(event Event)
}

// NoopLogger discards all events. It is the client's default when no
// capture is configured, and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
