package powertag

import "fmt"

// Modbus unit identifiers on a PowerTag Link connection.
const (
	// GatewayUnit addresses the gateway's own register space.
	GatewayUnit uint8 = 255

	// SynthesisProbeFirst and SynthesisProbeLast bound the descending range
	// of candidate unit identifiers for the synthesis table.
	SynthesisProbeFirst uint8 = 247
	SynthesisProbeLast  uint8 = 2

	// MinTagUnit and MaxTagUnit bound the unit identifiers of wireless tags.
	MinTagUnit uint8 = 1
	MaxTagUnit uint8 = 247
)

// ValidUnit reports whether unit addresses a tag, the synthesis table or
// the gateway.
func ValidUnit(unit uint8) bool {
	return (unit >= MinTagUnit && unit <= MaxTagUnit) || unit == GatewayUnit
}

// MustValidUnit panics if unit is outside [1,247] and not the gateway
// identifier. Passing an invalid unit is a programming error, not a device
// condition, so it is not reported as a recoverable failure.
func MustValidUnit(unit uint8) {
	if !ValidUnit(unit) {
		panic(fmt.Sprintf("powertag: unit identifier %d outside [1,247] and not gateway (255)", unit))
	}
}
