package gateway

import (
	"github.com/powertag-link/powertag-go/pkg/powertag"
	"github.com/powertag-link/powertag-go/pkg/register"
)

// Per-tag configuration accessors and writes.

// TagName returns the tag's user-assigned name.
func (c *Client) TagName(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagName)
}

// SetTagName writes the tag's user-assigned name. Names longer than the
// 20-byte register field fail with ErrStringTooLong.
func (c *Client) SetTagName(unit uint8, name string) error {
	words, err := register.PutString(name, powertag.TagName.Bytes)
	if err != nil {
		return err
	}
	return c.writeField(unit, powertag.TagName, words)
}

// TagCircuit returns the tag's circuit identifier.
func (c *Client) TagCircuit(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagCircuit)
}

// SetTagCircuit writes the tag's circuit identifier. The field holds five
// usable characters.
func (c *Client) SetTagCircuit(unit uint8, circuit string) error {
	words, err := register.PutString(circuit, powertag.TagCircuit.Bytes)
	if err != nil {
		return err
	}
	return c.writeField(unit, powertag.TagCircuit, words)
}

// TagUsage returns the configured usage of the metered load.
func (c *Client) TagUsage(unit uint8) (powertag.DeviceUsage, error) {
	v, err := c.readUint16(unit, powertag.TagUsage)
	if err != nil {
		return powertag.DeviceUsageInvalid, err
	}
	return powertag.DeviceUsageFromRegister(v)
}

// TagPhaseSequence returns the configured phase rotation.
func (c *Client) TagPhaseSequence(unit uint8) (powertag.PhaseSequence, error) {
	v, err := c.readUint16(unit, powertag.TagPhaseSequence)
	if err != nil {
		return powertag.PhaseSequenceInvalid, err
	}
	return powertag.PhaseSequenceFromRegister(v)
}

// TagPosition returns the tag's mounting position.
func (c *Client) TagPosition(unit uint8) (powertag.Position, error) {
	v, err := c.readUint16(unit, powertag.TagPosition)
	if err != nil {
		return powertag.PositionInvalid, err
	}
	return powertag.PositionFromRegister(v)
}

// TagCircuitDiagnostic returns the circuit diagnostic register, which uses
// the position code set.
func (c *Client) TagCircuitDiagnostic(unit uint8) (powertag.Position, error) {
	v, err := c.readUint16(unit, powertag.TagCircuitDiagnostic)
	if err != nil {
		return powertag.PositionInvalid, err
	}
	return powertag.PositionFromRegister(v)
}

// TagRatedCurrent returns the breaker's rated current, in amperes.
func (c *Client) TagRatedCurrent(unit uint8) (*uint16, error) {
	return c.readUint16(unit, powertag.TagRatedCurrent)
}

// TagRatedVoltage returns the circuit's rated voltage, in volts.
func (c *Client) TagRatedVoltage(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRatedVoltage)
}

// ResetTagPeakDemands clears the tag's recorded peak demand values.
func (c *Client) ResetTagPeakDemands(unit uint8) error {
	return c.writeField(unit, powertag.TagResetPeakDemands, []uint16{1})
}

// TagPowerSupplyType returns the power supply type register, which uses the
// position code set.
func (c *Client) TagPowerSupplyType(unit uint8) (powertag.Position, error) {
	v, err := c.readUint16(unit, powertag.TagPowerSupplyType)
	if err != nil {
		return powertag.PositionInvalid, err
	}
	return powertag.PositionFromRegister(v)
}
