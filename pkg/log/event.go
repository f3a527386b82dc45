package log

import (
	"time"
)

// Event represents one captured register-protocol event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the gateway connection (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow relative to the local endpoint.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Unit is the Modbus unit identifier the event concerns.
	Unit uint8 `cbor:"5,keyasint,omitempty"`

	// RemoteAddr is the gateway address (host:port).
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Exchange    *ExchangeEvent    `cbor:"7,keyasint,omitempty"` // Register read/write
	StateChange *StateChangeEvent `cbor:"8,keyasint,omitempty"` // Connection/discovery state
	Error       *ErrorEventData   `cbor:"9,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming response.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing request.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRead indicates a holding-register read.
	CategoryRead Category = 0
	// CategoryWrite indicates a holding-register write.
	CategoryWrite Category = 1
	// CategoryProbe indicates a discovery probe read.
	CategoryProbe Category = 2
	// CategoryState indicates a state change.
	CategoryState Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRead:
		return "READ"
	case CategoryWrite:
		return "WRITE"
	case CategoryProbe:
		return "PROBE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ExchangeEvent captures one register read or write round-trip.
type ExchangeEvent struct {
	// Address is the starting register address.
	Address uint16 `cbor:"1,keyasint"`

	// Count is the number of registers read or written.
	Count uint16 `cbor:"2,keyasint"`

	// Attribute names the register field the exchange served, when known.
	Attribute string `cbor:"3,keyasint,omitempty"`

	// Words holds the register payload (response words for reads, request
	// words for writes).
	Words []uint16 `cbor:"4,keyasint,omitempty"`

	// Elapsed is the round-trip duration. Stored as nanoseconds.
	Elapsed *time.Duration `cbor:"5,keyasint,omitempty"`
}

// StateChangeEvent captures connection and discovery lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityConnection indicates a connection state change.
	StateEntityConnection StateEntity = 0
	// StateEntityDiscovery indicates a discovery state change.
	StateEntityDiscovery StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntityDiscovery:
		return "DISCOVERY"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
