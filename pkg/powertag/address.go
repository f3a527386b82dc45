package powertag

import "fmt"

// Kind identifies the wire type of a register field.
type Kind uint8

const (
	KindUint16 Kind = iota
	KindUint32
	KindUint64
	KindFloat32
	KindString
	KindDateTime
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindString:
		return "string"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Field is one entry of the register address map: a logical attribute bound
// to a base address, word count and wire type. For string fields Bytes is
// the usable byte length of the field, which may be smaller than two bytes
// per register.
type Field struct {
	Name  string
	Addr  uint16
	Words uint16
	Kind  Kind
	Bytes int
}

func u16Field(name string, addr uint16) Field {
	return Field{Name: name, Addr: addr, Words: 1, Kind: KindUint16}
}

func u32Field(name string, addr uint16) Field {
	return Field{Name: name, Addr: addr, Words: 2, Kind: KindUint32}
}

func u64Field(name string, addr uint16) Field {
	return Field{Name: name, Addr: addr, Words: 4, Kind: KindUint64}
}

func f32Field(name string, addr uint16) Field {
	return Field{Name: name, Addr: addr, Words: 2, Kind: KindFloat32}
}

func strField(name string, addr, words uint16, bytes int) Field {
	return Field{Name: name, Addr: addr, Words: words, Kind: KindString, Bytes: bytes}
}

func dtField(name string, addr uint16) Field {
	return Field{Name: name, Addr: addr, Words: 4, Kind: KindDateTime}
}

// Gateway register space (unit 255).
//
// The identification strings are valid for gateway firmware 001.008.007 and
// later; earlier firmware used a different, no longer supported layout.
var (
	GatewayHardwareVersion = strField("hardware_version", 0x0050, 6, 11)
	GatewaySerialNumber    = strField("serial_number", 0x0064, 6, 11)
	GatewayFirmwareVersion = strField("firmware_version", 0x0078, 6, 11)
	GatewayStatus          = u16Field("status", 0x009E)
	GatewayDateTime        = dtField("date_time", 0x0073)
)

// Per-tag register space (unit = the tag's own identifier).
var (
	TagActivePowerTotal   = f32Field("power_active_total", 0xBF3)
	TagApparentPowerTotal = f32Field("power_apparent_total", 0xC03)
	TagPowerFactorTotal   = f32Field("power_factor_total", 0xC0B)

	TagActiveEnergyTotal = u64Field("energy_active_total", 0xC83)
	// TODO: confirm the partial-energy base address; the published map lists
	// the same address as the total counter, which reads as a documentation
	// defect but is preserved until validated against hardware.
	TagActiveEnergyPartial = u64Field("energy_active_partial", 0xC83)

	TagActivePowerDemandTotal    = f32Field("power_active_demand_total", 0x0EB5)
	TagMaxActivePowerDemandTotal = f32Field("power_active_demand_total_max", 0x0EB9)
	TagMaxActivePowerDemandStamp = dtField("power_active_demand_total_max_time", 0x0EBB)

	TagAlarmValid  = u16Field("alarm_valid", 0xCE1)
	TagAlarmStatus = u16Field("alarm_status", 0xCE3)

	TagLoadOperatingTime          = u32Field("load_operating_time", 0xCEB)
	TagLoadOperatingTimeThreshold = f32Field("load_operating_time_threshold", 0xCED)
	TagLoadOperatingTimeStart     = dtField("load_operating_time_start", 0xCEF)

	TagName              = strField("name", 0x7918, 10, 20)
	TagCircuit           = strField("circuit", 0x7922, 3, 5)
	TagUsage             = u16Field("usage", 0x7925)
	TagPhaseSequence     = u16Field("phase_sequence", 0x7926)
	TagPosition          = u16Field("position", 0x7927)
	TagCircuitDiagnostic = u16Field("circuit_diagnostic", 0x7928)
	TagRatedCurrent      = u16Field("rated_current", 0x7929)
	TagRatedVoltage      = f32Field("rated_voltage", 0x792B)
	TagResetPeakDemands  = u16Field("reset_peak_demands", 0x792E)
	TagPowerSupplyType   = u16Field("power_supply_type", 0x792F)

	TagProductType       = u16Field("product_type", 0x7930)
	TagSlaveAddress      = u16Field("slave_address", 0x7931)
	TagRadioID           = u64Field("rf_id", 0x7932)
	TagProductIdentifier = u16Field("product_identifier", 0x7937)
	TagVendorName        = strField("vendor_name", 0x7944, 16, 32)
	TagProductCode       = strField("product_code", 0x7954, 16, 32)
	TagFirmwareRevision  = strField("firmware_revision", 0x7964, 6, 12)
	TagHardwareRevision  = strField("hardware_revision", 0x796A, 6, 12)
	TagSerialNumber      = strField("serial_number", 0x7970, 10, 20)
	TagProductRange      = strField("product_range", 0x797A, 8, 16)
	TagProductModel      = strField("product_model", 0x7982, 8, 16)
	TagProductFamily     = strField("product_family", 0x798A, 8, 16)

	TagRadioCommunicationValid    = u16Field("radio_communication_valid", 0x79A8)
	TagWirelessCommunicationValid = u16Field("wireless_communication_valid", 0x79A9)
	TagRadioPERGateway            = f32Field("radio_per_gateway", 0x79AF)
	TagRadioRSSIGateway           = f32Field("radio_rssi_gateway", 0x79B1)
	TagRadioLQIGateway            = u16Field("radio_lqi_gateway", 0x79B3)
	TagRadioPERTag                = f32Field("radio_per_tag", 0x79B4)
	TagRadioRSSITag               = f32Field("radio_rssi_tag", 0x79B6)
	TagRadioLQITag                = u16Field("radio_lqi_tag", 0x79B8)

	// The minimum/maximum diagnostics below share addresses with the per-tag
	// diagnostics above. The published map lists them separately at the same
	// offsets; preserved as documented rather than assumed to be a
	// transcription error, since the duplication may reflect genuine device
	// behavior.
	TagRadioPERMax  = f32Field("radio_per_max", 0x79B4)
	TagRadioRSSIMin = f32Field("radio_rssi_min", 0x79B6)
	TagRadioLQIMin  = u16Field("radio_lqi_min", 0x79B8)
)

// Per-phase metering blocks: three contiguous two-word values per block.

// TagCurrent returns the RMS current field for a phase.
func TagCurrent(p Phase) Field {
	return f32Field("current_"+p.String(), 0xBB7+p.Offset())
}

// TagCurrentAtVoltageLoss returns the field holding the last RMS current
// measured when voltage loss occurred, for a phase.
func TagCurrentAtVoltageLoss(p Phase) Field {
	return f32Field("current_at_voltage_loss_"+p.String(), 0xCE5+p.Offset())
}

// TagActivePower returns the active power field for a phase.
func TagActivePower(p Phase) Field {
	return f32Field("power_active_"+p.String(), 0xBED+p.Offset())
}

// TagVoltage returns the RMS voltage field for a line-voltage combination.
func TagVoltage(lv LineVoltage) Field {
	return f32Field("voltage_"+lv.String(), 0xBCB+lv.Offset())
}

// Synthesis table register space (discovered unit identifier).
var (
	SynthesisProductID    = u16Field("product_id", 0x0001)
	SynthesisManufacturer = strField("manufacturer", 0x0002, 16, 32)
	SynthesisProductCode  = strField("product_code", 0x0012, 16, 32)
	SynthesisProductRange = strField("product_range", 0x0022, 8, 16)
	SynthesisProductModel = strField("product_model", 0x002A, 8, 16)
	SynthesisName         = strField("name", 0x0032, 10, 20)
	SynthesisVendorURL    = strField("vendor_url", 0x003C, 17, 34)
)

// Wireless configured-devices table: 100 slots of one word each, slots
// numbered from 1.
const (
	nodeTableBase  uint16 = 0x012C
	NodeTableSlots        = 100
)

// SynthesisNodeUnit returns the field holding the Modbus unit identifier of
// the wireless node configured in the given slot.
func SynthesisNodeUnit(slot int) (Field, error) {
	if slot < 1 || slot > NodeTableSlots {
		return Field{}, fmt.Errorf("node slot %d outside [1,%d]", slot, NodeTableSlots)
	}
	return u16Field(fmt.Sprintf("node_unit_%d", slot), nodeTableBase+uint16(slot)-1), nil
}
