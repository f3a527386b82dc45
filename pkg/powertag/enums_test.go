package powertag

import (
	"errors"
	"testing"
)

func u16(v uint16) *uint16 { return &v }

func TestDeviceUsageFromRegister(t *testing.T) {
	tests := []struct {
		name    string
		code    *uint16
		want    DeviceUsage
		wantErr bool
	}{
		{name: "main incomer", code: u16(1), want: DeviceUsageMainIncomer},
		{name: "other", code: u16(21), want: DeviceUsageOther},
		{name: "invalid sentinel", code: nil, want: DeviceUsageInvalid},
		{name: "unknown code", code: u16(22), wantErr: true},
		{name: "zero", code: u16(0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeviceUsageFromRegister(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEnumCode) {
					t.Errorf("got %v, want ErrUnknownEnumCode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeviceUsageFromRegister failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeviceUsageNames(t *testing.T) {
	if got := DeviceUsageOther.String(); got != "other" {
		t.Errorf("got %q, want \"other\"", got)
	}
	if got := DeviceUsageInvalid.String(); got != "INVALID" {
		t.Errorf("got %q, want \"INVALID\"", got)
	}
}

func TestPhaseSequenceFromRegister(t *testing.T) {
	tests := []struct {
		name    string
		code    *uint16
		want    PhaseSequence
		wantErr bool
	}{
		{name: "single phase A", code: u16(1), want: PhaseSequenceA},
		{name: "ABC", code: u16(4), want: PhaseSequenceABC},
		{name: "CBA", code: u16(9), want: PhaseSequenceCBA},
		{name: "invalid sentinel", code: nil, want: PhaseSequenceInvalid},
		{name: "unknown code", code: u16(10), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PhaseSequenceFromRegister(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEnumCode) {
					t.Errorf("got %v, want ErrUnknownEnumCode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PhaseSequenceFromRegister failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPositionFromRegister(t *testing.T) {
	tests := []struct {
		name    string
		code    *uint16
		want    Position
		wantErr bool
	}{
		{name: "not configured", code: u16(0), want: PositionNotConfigured},
		{name: "top", code: u16(1), want: PositionTop},
		{name: "bottom", code: u16(2), want: PositionBottom},
		{name: "not applicable", code: u16(3), want: PositionNotApplicable},
		{name: "invalid sentinel", code: nil, want: PositionInvalid},
		{name: "unknown code", code: u16(4), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PositionFromRegister(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEnumCode) {
					t.Errorf("got %v, want ErrUnknownEnumCode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PositionFromRegister failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPanelServerStatusFromCode(t *testing.T) {
	for code, want := range map[uint16]PanelServerStatus{
		0: PanelServerNominal,
		1: PanelServerDegraded,
		2: PanelServerOutOfOrder,
	} {
		got, err := PanelServerStatusFromCode(code)
		if err != nil {
			t.Fatalf("PanelServerStatusFromCode(%d) failed: %v", code, err)
		}
		if got != want {
			t.Errorf("code %d: got %s, want %s", code, got, want)
		}
	}

	// No invalid sentinel exists for this register; anything unlisted fails.
	for _, code := range []uint16{3, 8, 0xFFFF} {
		if _, err := PanelServerStatusFromCode(code); !errors.Is(err, ErrUnknownEnumCode) {
			t.Errorf("code %#x: got %v, want ErrUnknownEnumCode", code, err)
		}
	}
}
