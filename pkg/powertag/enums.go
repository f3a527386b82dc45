package powertag

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumCode indicates a closed enumeration received a code outside
// its documented value set. This points at a register-map version mismatch or
// a corrupted read, so it is surfaced instead of being defaulted.
var ErrUnknownEnumCode = errors.New("unknown enumeration code")

// Phase identifies one phase of a three-phase tag.
type Phase uint8

const (
	PhaseA Phase = iota
	PhaseB
	PhaseC
)

// Phases lists all phases in register order.
var Phases = []Phase{PhaseA, PhaseB, PhaseC}

// Offset returns the register offset of per-phase fields: phases are laid
// out as contiguous two-word values.
func (p Phase) Offset() uint16 {
	return uint16(p) * 2
}

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseA:
		return "A"
	case PhaseB:
		return "B"
	case PhaseC:
		return "C"
	default:
		return "UNKNOWN"
	}
}

// LineVoltage identifies one of the six phase-to-phase or phase-to-neutral
// voltage combinations.
type LineVoltage uint8

const (
	LineVoltageAB LineVoltage = iota
	LineVoltageBC
	LineVoltageCA
	LineVoltageAN
	LineVoltageBN
	LineVoltageCN
)

// LineVoltages lists all combinations in register order.
var LineVoltages = []LineVoltage{
	LineVoltageAB, LineVoltageBC, LineVoltageCA,
	LineVoltageAN, LineVoltageBN, LineVoltageCN,
}

// Offset returns the register offset of the combination within the voltage
// block. Phase-to-neutral values start one two-word slot after the
// phase-to-phase block.
func (lv LineVoltage) Offset() uint16 {
	switch lv {
	case LineVoltageAB:
		return 0
	case LineVoltageBC:
		return 2
	case LineVoltageCA:
		return 4
	case LineVoltageAN:
		return 8
	case LineVoltageBN:
		return 10
	case LineVoltageCN:
		return 12
	default:
		return 0
	}
}

// String returns the combination name.
func (lv LineVoltage) String() string {
	switch lv {
	case LineVoltageAB:
		return "A-B"
	case LineVoltageBC:
		return "B-C"
	case LineVoltageCA:
		return "C-A"
	case LineVoltageAN:
		return "A-N"
	case LineVoltageBN:
		return "B-N"
	case LineVoltageCN:
		return "C-N"
	default:
		return "UNKNOWN"
	}
}

// PanelServerStatus is the gateway status and diagnostic register value.
type PanelServerStatus uint16

const (
	// PanelServerNominal indicates the gateway operates normally.
	PanelServerNominal PanelServerStatus = 0b0000

	// PanelServerDegraded indicates the gateway runs with reduced function.
	PanelServerDegraded PanelServerStatus = 0b0001

	// PanelServerOutOfOrder indicates the gateway is not operational.
	PanelServerOutOfOrder PanelServerStatus = 0b0010
)

// PanelServerStatusFromCode maps a raw status code to its variant.
// The status register has no reserved invalid code; any unlisted value is a
// decode failure.
func PanelServerStatusFromCode(code uint16) (PanelServerStatus, error) {
	switch s := PanelServerStatus(code); s {
	case PanelServerNominal, PanelServerDegraded, PanelServerOutOfOrder:
		return s, nil
	default:
		return 0, fmt.Errorf("%w: panel server status %#x", ErrUnknownEnumCode, code)
	}
}

// String returns the status name.
func (s PanelServerStatus) String() string {
	switch s {
	case PanelServerNominal:
		return "NOMINAL"
	case PanelServerDegraded:
		return "DEGRADED"
	case PanelServerOutOfOrder:
		return "OUT_OF_ORDER"
	default:
		return "UNKNOWN"
	}
}

// DeviceUsage indicates what load a wireless device meters.
type DeviceUsage uint8

const (
	// DeviceUsageInvalid is the device's reserved "not configured" state,
	// written to the register as the 16-bit absence pattern.
	DeviceUsageInvalid DeviceUsage = 0

	DeviceUsageMainIncomer               DeviceUsage = 1
	DeviceUsageSubHeadOfGroup            DeviceUsage = 2
	DeviceUsageHeating                   DeviceUsage = 3
	DeviceUsageCooling                   DeviceUsage = 4
	DeviceUsageHVAC                      DeviceUsage = 5
	DeviceUsageVentilation               DeviceUsage = 6
	DeviceUsageLighting                  DeviceUsage = 7
	DeviceUsageOfficeEquipment           DeviceUsage = 8
	DeviceUsageCooking                   DeviceUsage = 9
	DeviceUsageFoodRefrigeration         DeviceUsage = 10
	DeviceUsageElevators                 DeviceUsage = 11
	DeviceUsageComputers                 DeviceUsage = 12
	DeviceUsageRenewableEnergyProduction DeviceUsage = 13
	DeviceUsageGenset                    DeviceUsage = 14
	DeviceUsageCompressedAir             DeviceUsage = 15
	DeviceUsageVapor                     DeviceUsage = 16
	DeviceUsageMachine                   DeviceUsage = 17
	DeviceUsageProcess                   DeviceUsage = 18
	DeviceUsageWater                     DeviceUsage = 19
	DeviceUsageOtherSockets              DeviceUsage = 20
	DeviceUsageOther                     DeviceUsage = 21
)

// DeviceUsageFromRegister maps a decoded usage register to its variant.
// A nil (absent) register value is the device's invalid sentinel and maps to
// DeviceUsageInvalid; an unlisted code fails with ErrUnknownEnumCode.
func DeviceUsageFromRegister(code *uint16) (DeviceUsage, error) {
	if code == nil {
		return DeviceUsageInvalid, nil
	}
	if *code < 1 || *code > 21 {
		return DeviceUsageInvalid, fmt.Errorf("%w: device usage %d", ErrUnknownEnumCode, *code)
	}
	return DeviceUsage(*code), nil
}

// String returns the usage name.
func (u DeviceUsage) String() string {
	switch u {
	case DeviceUsageInvalid:
		return "INVALID"
	case DeviceUsageMainIncomer:
		return "main_incomer"
	case DeviceUsageSubHeadOfGroup:
		return "sub_head_of_group"
	case DeviceUsageHeating:
		return "heating"
	case DeviceUsageCooling:
		return "cooling"
	case DeviceUsageHVAC:
		return "hvac"
	case DeviceUsageVentilation:
		return "ventilation"
	case DeviceUsageLighting:
		return "lighting"
	case DeviceUsageOfficeEquipment:
		return "office_equipment"
	case DeviceUsageCooking:
		return "cooking"
	case DeviceUsageFoodRefrigeration:
		return "food_refrigeration"
	case DeviceUsageElevators:
		return "elevators"
	case DeviceUsageComputers:
		return "computers"
	case DeviceUsageRenewableEnergyProduction:
		return "renewable_energy_production"
	case DeviceUsageGenset:
		return "genset"
	case DeviceUsageCompressedAir:
		return "compressed_air"
	case DeviceUsageVapor:
		return "vapor"
	case DeviceUsageMachine:
		return "machine"
	case DeviceUsageProcess:
		return "process"
	case DeviceUsageWater:
		return "water"
	case DeviceUsageOtherSockets:
		return "other_sockets"
	case DeviceUsageOther:
		return "other"
	default:
		return "UNKNOWN"
	}
}

// PhaseSequence is the configured phase rotation of a tag.
type PhaseSequence uint8

const (
	// PhaseSequenceInvalid is the device's reserved "not configured" state.
	PhaseSequenceInvalid PhaseSequence = 0

	PhaseSequenceA   PhaseSequence = 1
	PhaseSequenceB   PhaseSequence = 2
	PhaseSequenceC   PhaseSequence = 3
	PhaseSequenceABC PhaseSequence = 4
	PhaseSequenceACB PhaseSequence = 5
	PhaseSequenceBCA PhaseSequence = 6
	PhaseSequenceBAC PhaseSequence = 7
	PhaseSequenceCAB PhaseSequence = 8
	PhaseSequenceCBA PhaseSequence = 9
)

// PhaseSequenceFromRegister maps a decoded phase-sequence register to its
// variant. A nil register value maps to PhaseSequenceInvalid.
func PhaseSequenceFromRegister(code *uint16) (PhaseSequence, error) {
	if code == nil {
		return PhaseSequenceInvalid, nil
	}
	if *code < 1 || *code > 9 {
		return PhaseSequenceInvalid, fmt.Errorf("%w: phase sequence %d", ErrUnknownEnumCode, *code)
	}
	return PhaseSequence(*code), nil
}

// String returns the sequence name.
func (s PhaseSequence) String() string {
	switch s {
	case PhaseSequenceInvalid:
		return "INVALID"
	case PhaseSequenceA:
		return "A"
	case PhaseSequenceB:
		return "B"
	case PhaseSequenceC:
		return "C"
	case PhaseSequenceABC:
		return "ABC"
	case PhaseSequenceACB:
		return "ACB"
	case PhaseSequenceBCA:
		return "BCA"
	case PhaseSequenceBAC:
		return "BAC"
	case PhaseSequenceCAB:
		return "CAB"
	case PhaseSequenceCBA:
		return "CBA"
	default:
		return "UNKNOWN"
	}
}

// Position is a mounting/configuration position register value. The same
// code set backs the mounting position, circuit diagnostic and power supply
// type registers.
type Position uint8

const (
	PositionNotConfigured Position = 0
	PositionTop           Position = 1
	PositionBottom        Position = 2
	PositionNotApplicable Position = 3

	// PositionInvalid is the device's reserved "invalid" state, written to
	// the register as the 16-bit absence pattern.
	PositionInvalid Position = 0xFF
)

// PositionFromRegister maps a decoded position register to its variant.
// A nil register value maps to PositionInvalid.
func PositionFromRegister(code *uint16) (Position, error) {
	if code == nil {
		return PositionInvalid, nil
	}
	if *code > 3 {
		return PositionInvalid, fmt.Errorf("%w: position %d", ErrUnknownEnumCode, *code)
	}
	return Position(*code), nil
}

// String returns the position name.
func (p Position) String() string {
	switch p {
	case PositionNotConfigured:
		return "not_configured"
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionNotApplicable:
		return "not_applicable"
	case PositionInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}
