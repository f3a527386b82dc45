package powertag

// AlarmStatus is the decoded per-tag alarm bitmap. Flags are independent;
// there is no absent state for this register, only set/unset bits.
type AlarmStatus struct {
	// HasAlarm is true when any alarm bit of the masked bitmap is set.
	HasAlarm bool

	VoltageLoss       bool // bit 0
	CurrentOverload   bool // bit 1
	Overload45Percent bool // bit 3
	LoadCurrentLoss   bool // bit 4
	Overvoltage       bool // bit 5
	Undervoltage      bool // bit 6

	// HeatTag sensor flags, bits 8, 10 and 11.
	// TODO: confirm against the published register map whether these bits
	// should bypass the low-byte mask; as masked below they can never read
	// true. Preserved as documented pending hardware validation.
	HeatTagAlarm       bool
	HeatTagMaintenance bool
	HeatTagReplacement bool
}

// NewAlarmStatus decodes the alarm bitmap register. The low-byte mask is
// applied before any bit is tested, per the gateway's documented handling.
func NewAlarmStatus(bitmap uint16) AlarmStatus {
	masked := bitmap & 0b1111_1111

	return AlarmStatus{
		HasAlarm:          masked != 0,
		VoltageLoss:       masked&0b0000_0001 != 0,
		CurrentOverload:   masked&0b0000_0010 != 0,
		Overload45Percent: masked&0b0000_1000 != 0,
		LoadCurrentLoss:   masked&0b0001_0000 != 0,
		Overvoltage:       masked&0b0010_0000 != 0,
		Undervoltage:      masked&0b0100_0000 != 0,

		HeatTagAlarm:       masked&0b0001_0000_0000 != 0,
		HeatTagMaintenance: masked&0b0100_0000_0000 != 0,
		HeatTagReplacement: masked&0b1000_0000_0000 != 0,
	}
}
