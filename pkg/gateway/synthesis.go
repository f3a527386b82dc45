package gateway

import (
	"fmt"

	"github.com/powertag-link/powertag-go/pkg/powertag"
)

// Synthesis table accessors, served by the unit identifier resolved at
// construction.

// SynthesisProductID returns the synthesis table's product identifier.
func (c *Client) SynthesisProductID() (*uint16, error) {
	return c.readUint16(c.synthesis, powertag.SynthesisProductID)
}

// SynthesisManufacturer returns the gateway manufacturer string.
func (c *Client) SynthesisManufacturer() (*string, error) {
	return c.readString(c.synthesis, powertag.SynthesisManufacturer)
}

// SynthesisProductCode returns the gateway's commercial product code.
func (c *Client) SynthesisProductCode() (*string, error) {
	return c.readString(c.synthesis, powertag.SynthesisProductCode)
}

// SynthesisProductRange returns the gateway's product range string.
func (c *Client) SynthesisProductRange() (*string, error) {
	return c.readString(c.synthesis, powertag.SynthesisProductRange)
}

// SynthesisProductModel returns the gateway's product model string.
func (c *Client) SynthesisProductModel() (*string, error) {
	return c.readString(c.synthesis, powertag.SynthesisProductModel)
}

// SynthesisName returns the gateway's user-assigned name.
func (c *Client) SynthesisName() (*string, error) {
	return c.readString(c.synthesis, powertag.SynthesisName)
}

// SynthesisVendorURL returns the gateway vendor's URL string.
func (c *Client) SynthesisVendorURL() (*string, error) {
	return c.readString(c.synthesis, powertag.SynthesisVendorURL)
}

// NodeUnitID returns the Modbus unit identifier of the wireless node
// configured in the given slot of the 100-slot node table, or nil when the
// slot is empty. Slots are numbered from 1.
func (c *Client) NodeUnitID(slot int) (*uint8, error) {
	f, err := powertag.SynthesisNodeUnit(slot)
	if err != nil {
		return nil, err
	}
	v, err := c.readUint16(c.synthesis, f)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if *v < uint16(powertag.MinTagUnit) || *v > uint16(powertag.MaxTagUnit) {
		return nil, fmt.Errorf("node table slot %d holds %#x, not a tag unit identifier", slot, *v)
	}
	unit := uint8(*v)
	return &unit, nil
}

// ConfiguredTagUnits walks the node table and returns the unit identifiers
// of all configured wireless nodes, in slot order.
func (c *Client) ConfiguredTagUnits() ([]uint8, error) {
	var units []uint8
	for slot := 1; slot <= powertag.NodeTableSlots; slot++ {
		unit, err := c.NodeUnitID(slot)
		if err != nil {
			return nil, err
		}
		if unit != nil {
			units = append(units, *unit)
		}
	}
	return units, nil
}
