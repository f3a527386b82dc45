package gateway

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/powertag-link/powertag-go/pkg/discovery"
	"github.com/powertag-link/powertag-go/pkg/log"
	"github.com/powertag-link/powertag-go/pkg/powertag"
	"github.com/powertag-link/powertag-go/pkg/register"
	"github.com/powertag-link/powertag-go/pkg/transport"
)

// Config configures a gateway client.
type Config struct {
	// Transport carries the register traffic. Required.
	Transport transport.Transport

	// Logger receives protocol events. Nil disables capture.
	Logger log.Logger

	// RemoteAddr is the gateway address, recorded on captured events.
	RemoteAddr string

	// SynthesisUnit pins the synthesis-table unit identifier and skips the
	// probe. Zero means probe at construction.
	SynthesisUnit uint8
}

// Client is a typed client for one gateway connection.
type Client struct {
	transport  transport.Transport
	logger     log.Logger
	connID     string
	remoteAddr string
	synthesis  uint8
}

// NewClient creates a client over the configured transport. Unless the
// config pins it, the synthesis-table unit identifier is resolved here with
// a probe scan and kept for the client's lifetime.
func NewClient(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}

	c := &Client{
		transport:  cfg.Transport,
		logger:     logger,
		connID:     uuid.NewString(),
		remoteAddr: cfg.RemoteAddr,
		synthesis:  cfg.SynthesisUnit,
	}

	if c.synthesis == 0 {
		unit, err := discovery.FindSynthesisUnit(probeReader{c})
		if err != nil {
			c.logState(log.StateEntityDiscovery, "probing", "failed", err.Error())
			return nil, fmt.Errorf("resolving synthesis unit: %w", err)
		}
		c.synthesis = unit
		c.logState(log.StateEntityDiscovery, "probing", "resolved",
			fmt.Sprintf("synthesis table at unit %d", unit))
	}

	return c, nil
}

// ConnectionID returns the client's connection identifier, a UUID attached
// to every captured event.
func (c *Client) ConnectionID() string {
	return c.connID
}

// SynthesisUnit returns the unit identifier serving the synthesis table.
func (c *Client) SynthesisUnit() uint8 {
	return c.synthesis
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// probeReader routes discovery probe reads through the client so they appear
// in the protocol capture with their own category.
type probeReader struct {
	c *Client
}

func (r probeReader) ReadRegisters(address, count uint16, unit uint8) ([]uint16, error) {
	start := time.Now()
	words, err := r.c.transport.ReadRegisters(address, count, unit)
	elapsed := time.Since(start)

	r.c.logger.Log(log.Event{
		Timestamp:    start,
		ConnectionID: r.c.connID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryProbe,
		Unit:         unit,
		RemoteAddr:   r.c.remoteAddr,
		Exchange: &log.ExchangeEvent{
			Address: address,
			Count:   count,
			Elapsed: &elapsed,
		},
	})
	return words, err
}

// readField reads one register field from unit. The unit is validated
// first; passing an identifier outside the gateway's addressing rules is a
// programming error and panics.
func (c *Client) readField(unit uint8, f powertag.Field) ([]uint16, error) {
	powertag.MustValidUnit(unit)

	start := time.Now()
	words, err := c.transport.ReadRegisters(f.Addr, f.Words, unit)
	elapsed := time.Since(start)

	if err != nil {
		c.logError(unit, f.Name, err)
		return nil, fmt.Errorf("reading %s at %#x on unit %d: %w", f.Name, f.Addr, unit, err)
	}

	c.logger.Log(log.Event{
		Timestamp:    start,
		ConnectionID: c.connID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryRead,
		Unit:         unit,
		RemoteAddr:   c.remoteAddr,
		Exchange: &log.ExchangeEvent{
			Address:   f.Addr,
			Count:     f.Words,
			Attribute: f.Name,
			Words:     words,
			Elapsed:   &elapsed,
		},
	})
	return words, nil
}

// writeField writes the words of one register field to unit.
func (c *Client) writeField(unit uint8, f powertag.Field, words []uint16) error {
	powertag.MustValidUnit(unit)

	start := time.Now()
	err := c.transport.WriteRegisters(f.Addr, unit, words)
	elapsed := time.Since(start)

	if err != nil {
		c.logError(unit, f.Name, err)
		return fmt.Errorf("writing %s at %#x on unit %d: %w", f.Name, f.Addr, unit, err)
	}

	c.logger.Log(log.Event{
		Timestamp:    start,
		ConnectionID: c.connID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryWrite,
		Unit:         unit,
		RemoteAddr:   c.remoteAddr,
		Exchange: &log.ExchangeEvent{
			Address:   f.Addr,
			Count:     uint16(len(words)),
			Attribute: f.Name,
			Words:     words,
			Elapsed:   &elapsed,
		},
	})
	return nil
}

func (c *Client) logError(unit uint8, context string, err error) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    log.DirectionIn,
		Category:     log.CategoryError,
		Unit:         unit,
		RemoteAddr:   c.remoteAddr,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: context,
		},
	})
}

func (c *Client) logState(entity log.StateEntity, oldState, newState, reason string) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    log.DirectionIn,
		Category:     log.CategoryState,
		RemoteAddr:   c.remoteAddr,
		StateChange: &log.StateChangeEvent{
			Entity:   entity,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

// Typed read helpers. Each decodes one field's word payload, mapping the
// device's absence sentinel to nil.

func (c *Client) readUint16(unit uint8, f powertag.Field) (*uint16, error) {
	words, err := c.readField(unit, f)
	if err != nil {
		return nil, err
	}
	return register.Uint16(words)
}

func (c *Client) readUint32(unit uint8, f powertag.Field) (*uint32, error) {
	words, err := c.readField(unit, f)
	if err != nil {
		return nil, err
	}
	return register.Uint32(words)
}

func (c *Client) readUint64(unit uint8, f powertag.Field) (*uint64, error) {
	words, err := c.readField(unit, f)
	if err != nil {
		return nil, err
	}
	return register.Uint64(words)
}

func (c *Client) readFloat32(unit uint8, f powertag.Field) (*float32, error) {
	words, err := c.readField(unit, f)
	if err != nil {
		return nil, err
	}
	return register.Float32(words)
}

func (c *Client) readString(unit uint8, f powertag.Field) (*string, error) {
	words, err := c.readField(unit, f)
	if err != nil {
		return nil, err
	}
	return register.String(words, f.Bytes)
}

func (c *Client) readDateTime(unit uint8, f powertag.Field) (*time.Time, error) {
	words, err := c.readField(unit, f)
	if err != nil {
		return nil, err
	}
	return register.DateTime(words)
}
