package powertag

import "testing"

func TestAlarmStatus(t *testing.T) {
	tests := []struct {
		name   string
		bitmap uint16
		want   AlarmStatus
	}{
		{
			name:   "no alarms",
			bitmap: 0,
			want:   AlarmStatus{},
		},
		{
			name:   "voltage loss and current overload",
			bitmap: 0b0000_0011,
			want: AlarmStatus{
				HasAlarm:        true,
				VoltageLoss:     true,
				CurrentOverload: true,
			},
		},
		{
			name:   "overload 45 percent",
			bitmap: 0b0000_1000,
			want:   AlarmStatus{HasAlarm: true, Overload45Percent: true},
		},
		{
			name:   "load current loss",
			bitmap: 0b0001_0000,
			want:   AlarmStatus{HasAlarm: true, LoadCurrentLoss: true},
		},
		{
			name:   "over and under voltage",
			bitmap: 0b0110_0000,
			want:   AlarmStatus{HasAlarm: true, Overvoltage: true, Undervoltage: true},
		},
		{
			name:   "reserved bit 2 sets summary only",
			bitmap: 0b0000_0100,
			want:   AlarmStatus{HasAlarm: true},
		},
		{
			// Bits above the low byte are masked off before decoding.
			name:   "high bits masked",
			bitmap: 0b1111_0001_0000_0000,
			want:   AlarmStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAlarmStatus(tt.bitmap)
			if got != tt.want {
				t.Errorf("NewAlarmStatus(%#b)\n got %+v\nwant %+v", tt.bitmap, got, tt.want)
			}
		})
	}
}
