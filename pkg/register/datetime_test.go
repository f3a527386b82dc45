package register

import (
	"errors"
	"testing"
	"time"
)

func TestDateTime(t *testing.T) {
	// year 2024, month 1, day 5, hour 10, minute 30, second 3, ms 700
	words := []uint16{24, 0x0105, 0x0A1E, 0x0E74}

	got, err := DateTime(words)
	if err != nil {
		t.Fatalf("DateTime failed: %v", err)
	}
	if got == nil {
		t.Fatal("got absent, want value")
	}

	want := time.Date(2024, time.January, 5, 10, 30, 3, 700*int(time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeAbsent(t *testing.T) {
	got, err := DateTime(AbsentDateTime())
	if err != nil {
		t.Fatalf("DateTime failed: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want absent", got)
	}
}

func TestDateTimeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		words []uint16
	}{
		{name: "month 13", words: []uint16{24, 0x0D05, 0x0A1E, 0x0E74}},
		{name: "month 0", words: []uint16{24, 0x0005, 0x0A1E, 0x0E74}},
		{name: "day 0", words: []uint16{24, 0x0100, 0x0A1E, 0x0E74}},
		{name: "february 30th", words: []uint16{24, 0x021E, 0x0A1E, 0x0E74}},
		{name: "second 60", words: []uint16{24, 0x0105, 0x0A1E, 60_123}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DateTime(tt.words)
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Errorf("got %v, want ErrInvalidTimestamp", err)
			}
		})
	}
}

func TestDateTimeSecondMillisecondSplit(t *testing.T) {
	// 3700 = second 3, millisecond 700
	words := []uint16{24, 0x0105, 0x0A1E, 3700}

	got, err := DateTime(words)
	if err != nil {
		t.Fatalf("DateTime failed: %v", err)
	}
	if got.Second() != 3 {
		t.Errorf("second: got %d, want 3", got.Second())
	}
	if ms := got.Nanosecond() / int(time.Millisecond); ms != 700 {
		t.Errorf("millisecond: got %d, want 700", ms)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	tests := []time.Time{
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 15, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		time.Date(2127, time.December, 31, 12, 0, 30, 0, time.UTC),
	}

	for _, want := range tests {
		words, err := PutDateTime(want)
		if err != nil {
			t.Fatalf("PutDateTime(%v) failed: %v", want, err)
		}
		got, err := DateTime(words)
		if err != nil {
			t.Fatalf("DateTime failed: %v", err)
		}
		if got == nil || !got.Equal(want) {
			t.Errorf("round trip of %v: got %v", want, got)
		}
	}
}

func TestPutDateTimeYearRange(t *testing.T) {
	for _, year := range []int{1999, 2128} {
		_, err := PutDateTime(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("year %d: got %v, want ErrInvalidTimestamp", year, err)
		}
	}
}
