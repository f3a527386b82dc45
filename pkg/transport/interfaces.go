package transport

// RegisterReader reads holding registers from one unit on the connection.
type RegisterReader interface {
	// ReadRegisters reads count registers starting at address from the
	// given unit. The result has exactly count words on success.
	ReadRegisters(address, count uint16, unit uint8) ([]uint16, error)
}

// RegisterWriter writes holding registers to one unit on the connection.
type RegisterWriter interface {
	// WriteRegisters writes the words starting at address on the given unit.
	WriteRegisters(address uint16, unit uint8, words []uint16) error
}

// Transport is a full register transport: read, write and connection close.
type Transport interface {
	RegisterReader
	RegisterWriter

	// Close releases the underlying connection.
	Close() error
}
