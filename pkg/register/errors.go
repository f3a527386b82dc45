package register

import "errors"

var (
	// ErrMalformedResponse indicates a register slice whose length does not
	// match the expected word count for the wire type. This points at a
	// transport or address-map bug, not at device state.
	ErrMalformedResponse = errors.New("malformed register response")

	// ErrInvalidTimestamp indicates a packed date-time whose fields are out
	// of calendar range after the all-0xFFFF absence case has been ruled out.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrStringTooLong indicates a string that does not fit the fixed byte
	// length of its register field.
	ErrStringTooLong = errors.New("string exceeds field length")
)
