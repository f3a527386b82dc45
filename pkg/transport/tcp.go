package transport

import (
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// DefaultTimeout bounds each Modbus round-trip when the config leaves the
// timeout unset.
const DefaultTimeout = 5 * time.Second

// TCPConfig configures a Modbus TCP connection to a gateway.
type TCPConfig struct {
	// Address is the gateway's host:port, e.g. "192.168.1.20:502".
	Address string

	// Timeout bounds each request round-trip. Zero means DefaultTimeout.
	Timeout time.Duration
}

// TCP is a register transport over Modbus TCP. It holds one connection,
// opened at construction and reused until Close. Calls must be serialized
// by the caller.
type TCP struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// NewTCP opens a Modbus TCP connection to the configured gateway.
func NewTCP(cfg TCPConfig) (*TCP, error) {
	handler := modbus.NewTCPClientHandler(cfg.Address)
	handler.Timeout = cfg.Timeout
	if handler.Timeout == 0 {
		handler.Timeout = DefaultTimeout
	}

	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("%w: connect %s: %v", ErrTransport, cfg.Address, err)
	}

	return &TCP{
		handler: handler,
		client:  modbus.NewClient(handler),
	}, nil
}

// ReadRegisters reads count holding registers starting at address from unit.
func (t *TCP) ReadRegisters(address, count uint16, unit uint8) ([]uint16, error) {
	// The handler carries the unit identifier; calls are serialized by the
	// caller, so mutating it between requests is safe.
	t.handler.SlaveId = unit

	data, err := t.client.ReadHoldingRegisters(address, count)
	if err != nil {
		return nil, classify(err)
	}
	if len(data) != int(count)*2 {
		return nil, fmt.Errorf("%w: read %d bytes, want %d", ErrTransport, len(data), int(count)*2)
	}
	return bytesToWords(data), nil
}

// WriteRegisters writes the words starting at address on unit.
func (t *TCP) WriteRegisters(address uint16, unit uint8, words []uint16) error {
	t.handler.SlaveId = unit

	_, err := t.client.WriteMultipleRegisters(address, uint16(len(words)), wordsToBytes(words))
	return classify(err)
}

// Close closes the underlying TCP connection.
func (t *TCP) Close() error {
	return t.handler.Close()
}

// bytesToWords converts a big-endian Modbus payload to register words.
func bytesToWords(data []byte) []uint16 {
	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return words
}

// wordsToBytes converts register words to a big-endian Modbus payload.
func wordsToBytes(words []uint16) []byte {
	data := make([]byte, 2*len(words))
	for i, w := range words {
		data[2*i] = byte(w >> 8)
		data[2*i+1] = byte(w)
	}
	return data
}

// Compile-time interface satisfaction check.
var _ Transport = (*TCP)(nil)
