package gateway

import (
	"github.com/powertag-link/powertag-go/pkg/powertag"
)

// Per-tag identification and radio diagnostic accessors.

// TagProductType returns the tag's product type table row. An absent or
// unlisted product code returns nil without error.
func (c *Client) TagProductType(unit uint8) (*powertag.ProductType, error) {
	v, err := c.readUint16(unit, powertag.TagProductType)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	pt, ok := powertag.ProductTypeByCode(*v)
	if !ok {
		return nil, nil
	}
	return &pt, nil
}

// TagSlaveAddress returns the tag's own Modbus unit identifier register.
func (c *Client) TagSlaveAddress(unit uint8) (*uint16, error) {
	return c.readUint16(unit, powertag.TagSlaveAddress)
}

// TagRadioID returns the tag's radio identifier.
func (c *Client) TagRadioID(unit uint8) (*uint64, error) {
	return c.readUint64(unit, powertag.TagRadioID)
}

// TagProductIdentifier returns the tag's numeric product identifier.
func (c *Client) TagProductIdentifier(unit uint8) (*uint16, error) {
	return c.readUint16(unit, powertag.TagProductIdentifier)
}

// TagVendorName returns the tag's vendor name string.
func (c *Client) TagVendorName(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagVendorName)
}

// TagProductCode returns the tag's commercial product code.
func (c *Client) TagProductCode(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagProductCode)
}

// TagFirmwareRevision returns the tag's firmware revision string.
func (c *Client) TagFirmwareRevision(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagFirmwareRevision)
}

// TagHardwareRevision returns the tag's hardware revision string.
func (c *Client) TagHardwareRevision(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagHardwareRevision)
}

// TagSerialNumber returns the tag's serial number.
func (c *Client) TagSerialNumber(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagSerialNumber)
}

// TagProductRange returns the tag's product range string.
func (c *Client) TagProductRange(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagProductRange)
}

// TagProductModel returns the tag's product model string.
func (c *Client) TagProductModel(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagProductModel)
}

// TagProductFamily returns the tag's product family string.
func (c *Client) TagProductFamily(unit uint8) (*string, error) {
	return c.readString(unit, powertag.TagProductFamily)
}

// TagRadioCommunicationValid reports whether the gateway currently considers
// the tag's radio link valid. An absent register reads as not valid.
func (c *Client) TagRadioCommunicationValid(unit uint8) (bool, error) {
	v, err := c.readUint16(unit, powertag.TagRadioCommunicationValid)
	if err != nil {
		return false, err
	}
	return v != nil && *v != 0, nil
}

// TagWirelessCommunicationValid reports whether the wireless network
// considers the tag reachable. An absent register reads as not valid.
func (c *Client) TagWirelessCommunicationValid(unit uint8) (bool, error) {
	v, err := c.readUint16(unit, powertag.TagWirelessCommunicationValid)
	if err != nil {
		return false, err
	}
	return v != nil && *v != 0, nil
}

// TagRadioPERGateway returns the packet error rate measured at the gateway.
func (c *Client) TagRadioPERGateway(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRadioPERGateway)
}

// TagRadioRSSIGateway returns the signal strength measured at the gateway,
// in dBm.
func (c *Client) TagRadioRSSIGateway(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRadioRSSIGateway)
}

// TagRadioLQIGateway returns the link quality indicator measured at the
// gateway.
func (c *Client) TagRadioLQIGateway(unit uint8) (*uint16, error) {
	return c.readUint16(unit, powertag.TagRadioLQIGateway)
}

// TagRadioPERTag returns the packet error rate measured at the tag.
func (c *Client) TagRadioPERTag(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRadioPERTag)
}

// TagRadioRSSITag returns the signal strength measured at the tag, in dBm.
func (c *Client) TagRadioRSSITag(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRadioRSSITag)
}

// TagRadioLQITag returns the link quality indicator measured at the tag.
func (c *Client) TagRadioLQITag(unit uint8) (*uint16, error) {
	return c.readUint16(unit, powertag.TagRadioLQITag)
}

// TagRadioPERMax returns the maximum recorded packet error rate.
func (c *Client) TagRadioPERMax(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRadioPERMax)
}

// TagRadioRSSIMin returns the minimum recorded signal strength, in dBm.
func (c *Client) TagRadioRSSIMin(unit uint8) (*float32, error) {
	return c.readFloat32(unit, powertag.TagRadioRSSIMin)
}

// TagRadioLQIMin returns the minimum recorded link quality indicator.
func (c *Client) TagRadioLQIMin(unit uint8) (*uint16, error) {
	return c.readUint16(unit, powertag.TagRadioLQIMin)
}
