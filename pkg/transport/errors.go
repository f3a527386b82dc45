package transport

import (
	"errors"
	"fmt"

	"github.com/goburrow/modbus"
)

var (
	// ErrTransport indicates a connection-level failure (reset, timeout,
	// unreachable peer). Not recoverable at this layer; the caller decides
	// whether to reconnect.
	ErrTransport = errors.New("transport failure")

	// ErrDeviceException indicates the device answered with a Modbus
	// exception response instead of data.
	ErrDeviceException = errors.New("device exception response")
)

// classify wraps an error from the underlying Modbus client into the
// package's two failure kinds.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return fmt.Errorf("%w: %v", ErrDeviceException, me)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
