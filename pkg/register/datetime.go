package register

import (
	"fmt"
	"time"
)

// Packed date-time layout, four registers:
//
//	word 0: year, 7-bit offset from 2000
//	word 1: month (bits 8-11), day of month (bits 0-4)
//	word 2: hour (bits 8-12), minute (bits 0-5)
//	word 3: seconds*1000 + milliseconds
//
// The device carries no timezone; decoded values are device-local and
// represented in UTC.

// DateTime decodes four registers as a packed date-time.
// All four words equal to 0xFFFF decode to nil.
func DateTime(words []uint16) (*time.Time, error) {
	if err := checkCount(words, WordsDateTime); err != nil {
		return nil, err
	}

	if words[0] == 0xFFFF && words[1] == 0xFFFF && words[2] == 0xFFFF && words[3] == 0xFFFF {
		return nil, nil
	}

	year := int(words[0]&0x7F) + 2000
	day := int(words[1] & 0x1F)
	month := int(words[1]>>8) & 0x0F
	minute := int(words[2] & 0x3F)
	hour := int(words[2]>>8) & 0x1F
	second := int(words[3]) / 1000
	millisecond := int(words[3]) % 1000

	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || second > 59 {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d", ErrInvalidTimestamp,
			year, month, day, hour, minute, second)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second,
		millisecond*int(time.Millisecond), time.UTC)

	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 2);
	// a normalized result means the input was not a calendar date.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidTimestamp,
			year, month, day)
	}

	return &t, nil
}

// PutDateTime encodes t as a packed date-time of four registers.
// Years outside 2000-2127 do not fit the 7-bit year field.
func PutDateTime(t time.Time) ([]uint16, error) {
	if t.Year() < 2000 || t.Year() > 2127 {
		return nil, fmt.Errorf("%w: year %d outside 2000-2127", ErrInvalidTimestamp, t.Year())
	}

	return []uint16{
		uint16(t.Year() - 2000),
		uint16(t.Month())<<8 | uint16(t.Day()),
		uint16(t.Hour())<<8 | uint16(t.Minute()),
		uint16(t.Second()*1000 + t.Nanosecond()/int(time.Millisecond)),
	}, nil
}

// AbsentDateTime returns the all-0xFFFF pattern the device uses for an
// unavailable date-time.
func AbsentDateTime() []uint16 {
	return []uint16{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}
}
