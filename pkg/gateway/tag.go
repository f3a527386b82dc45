package gateway

import (
	"time"

	"github.com/powertag-link/powertag-go/pkg/powertag"
	"github.com/powertag-link/powertag-go/pkg/register"
)

// Per-tag metering accessors. The unit argument is the tag's own Modbus
// unit identifier.

// TagCurrent returns the RMS current of a phase, in amperes.
func (c *Client) TagCurrent(unit uint8, phase powertag.Phase) (*float32, error) {
	return c.readFloat32(unit, powertag.TagCurrent(phase))
}

// TagVoltage returns the RMS voltage of a line-voltage combination, in volts.
func (c *Client) TagVoltage(unit uint8, lv powertag.LineVoltage) (*float32, error) {
	return c.readFloat32(unit, powertag.TagVoltage(lv))
}

// TagActivePower returns the active power of a phase, in watts.
func (c *Client) TagActivePower(unit uint8, phase powertag.Phase) (*float32, error) {
	return c.readFloat32(unit, powertag.TagActivePower(phase))
}

// TagActivePowerTotal returns the total active power, in watts.
func (c *Client) TagActivePowerTotal(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagActivePowerTotal)
}

// TagApparentPowerTotal returns the total apparent power, in volt-amperes.
func (c *Client) TagApparentPowerTotal(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagApparentPowerTotal)
}

// TagPowerFactorTotal returns the total power factor.
func (c *Client) TagPowerFactorTotal(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagPowerFactorTotal)
}

// TagActiveEnergyTotal returns the non-resettable active energy counter, in
// watt-hours.
func (c *Client) TagActiveEnergyTotal(unit uint8) (*uint64, error) {
	return c.readUint64(unit, powertag.TagActiveEnergyTotal)
}

// TagActiveEnergyPartial returns the resettable active energy counter, in
// watt-hours.
func (c *Client) TagActiveEnergyPartial(unit uint8) (*uint64, error) {
	return c.readUint64(unit, powertag.TagActiveEnergyPartial)
}

// TagActivePowerDemandTotal returns the current total active power demand,
// in watts.
func (c *Client) TagActivePowerDemandTotal(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagActivePowerDemandTotal)
}

// TagMaxActivePowerDemandTotal returns the peak total active power demand,
// in watts.
func (c *Client) TagMaxActivePowerDemandTotal(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagMaxActivePowerDemandTotal)
}

// TagMaxActivePowerDemandTime returns when the peak demand was recorded.
func (c *Client) TagMaxActivePowerDemandTime(unit uint8) (*time.Time, error) {
	return c.readDateTime(unit, powertag.TagMaxActivePowerDemandStamp)
}

// TagAlarmValid reports whether the tag's alarm bitmap is valid. An absent
// register reads as not valid.
func (c *Client) TagAlarmValid(unit uint8) (bool, error) {
	v, err := c.readUint16(unit, powertag.TagAlarmValid)
	if err != nil {
		return false, err
	}
	return v != nil && *v&0b1 != 0, nil
}

// TagAlarm returns the tag's decoded alarm flags. The alarm word is a
// bitmap without an absence sentinel: 0xFFFF means every flag raised, so
// it is decoded raw rather than through the u16 null mapping.
func (c *Client) TagAlarm(unit uint8) (powertag.AlarmStatus, error) {
	words, err := c.readField(unit, powertag.TagAlarmStatus)
	if err != nil {
		return powertag.AlarmStatus{}, err
	}
	v, err := register.Bitmask16(words)
	if err != nil {
		return powertag.AlarmStatus{}, err
	}
	return powertag.NewAlarmStatus(v), nil
}

// TagCurrentAtVoltageLoss returns the last RMS current of a phase measured
// when voltage loss occurred, in amperes.
func (c *Client) TagCurrentAtVoltageLoss(unit uint8, phase powertag.Phase) (*float32, error) {
	return c.readFloat32(unit, powertag.TagCurrentAtVoltageLoss(phase))
}

// TagLoadOperatingTime returns the load's operating time counter, in seconds.
func (c *Client) TagLoadOperatingTime(unit uint8) (*uint32, error) {
	return c.readUint32(unit, powertag.TagLoadOperatingTime)
}

// TagLoadOperatingTimeThreshold returns the operating-time alarm threshold,
// in hours.
func (c *Client) TagLoadOperatingTimeThreshold(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagLoadOperatingTimeThreshold)
}

// TagLoadOperatingTimeStart returns when the operating-time counter last
// started counting.
func (c *Client) TagLoadOperatingTimeStart(unit uint8) (*time.Time, error) {
	return c.readDateTime(unit, powertag.TagLoadOperatingTimeStart)
}
