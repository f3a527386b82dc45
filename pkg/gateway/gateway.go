package gateway

import (
	"fmt"
	"time"

	"github.com/powertag-link/powertag-go/pkg/powertag"
)

// Gateway register space accessors (unit 255).

// HardwareVersion returns the gateway's hardware version string.
func (c *Client) HardwareVersion() (*string, error) {
	return c.readString(powertag.GatewayUnit, powertag.GatewayHardwareVersion)
}

// SerialNumber returns the gateway's serial number string.
func (c *Client) SerialNumber() (*string, error) {
	return c.readString(powertag.GatewayUnit, powertag.GatewaySerialNumber)
}

// FirmwareVersion returns the gateway's firmware version string.
func (c *Client) FirmwareVersion() (*string, error) {
	return c.readString(powertag.GatewayUnit, powertag.GatewayFirmwareVersion)
}

// Status returns the gateway's status and diagnostic register. The register
// has no reserved absence pattern; an absent or unlisted code is a decode
// failure.
func (c *Client) Status() (powertag.PanelServerStatus, error) {
	v, err := c.readUint16(powertag.GatewayUnit, powertag.GatewayStatus)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%w: absent status register", powertag.ErrUnknownEnumCode)
	}
	return powertag.PanelServerStatusFromCode(*v)
}

// DateTime returns the gateway's clock.
func (c *Client) DateTime() (*time.Time, error) {
	return c.readDateTime(powertag.GatewayUnit, powertag.GatewayDateTime)
}
