package register

import (
	"fmt"
	"math"
)

// Sentinel bit patterns reserved by the device to mean "value not available".
const (
	SentinelUint16 uint16 = 0xFFFF
	SentinelUint32 uint32 = 0x8000_0000
	SentinelUint64 uint64 = 0x8000_0000_0000_0000
)

// Expected word counts per wire type.
const (
	WordsUint16   = 1
	WordsUint32   = 2
	WordsUint64   = 4
	WordsFloat32  = 2
	WordsDateTime = 4
)

// checkCount verifies the register slice has the expected length.
func checkCount(words []uint16, want int) error {
	if len(words) != want {
		return fmt.Errorf("%w: got %d registers, want %d", ErrMalformedResponse, len(words), want)
	}
	return nil
}

// Uint16 decodes a single register. Returns nil for the 0xFFFF sentinel.
func Uint16(words []uint16) (*uint16, error) {
	if err := checkCount(words, WordsUint16); err != nil {
		return nil, err
	}
	v := words[0]
	if v == SentinelUint16 {
		return nil, nil
	}
	return &v, nil
}

// Bitmask16 decodes a single register holding a bitmap. Bitmaps have no
// absence sentinel: 0xFFFF is every bit set, not "value not available".
func Bitmask16(words []uint16) (uint16, error) {
	if err := checkCount(words, WordsUint16); err != nil {
		return 0, err
	}
	return words[0], nil
}

// PutUint16 encodes a 16-bit unsigned integer as a single register.
func PutUint16(v uint16) []uint16 {
	return []uint16{v}
}

// Uint32 decodes two registers, high word first.
// Returns nil for the 0x8000_0000 sentinel.
func Uint32(words []uint16) (*uint32, error) {
	if err := checkCount(words, WordsUint32); err != nil {
		return nil, err
	}
	v := uint32(words[0])<<16 | uint32(words[1])
	if v == SentinelUint32 {
		return nil, nil
	}
	return &v, nil
}

// PutUint32 encodes a 32-bit unsigned integer as two registers, high word first.
func PutUint32(v uint32) []uint16 {
	return []uint16{uint16(v >> 16), uint16(v)}
}

// Uint64 decodes four registers, high word first.
// Returns nil for the 0x8000_0000_0000_0000 sentinel.
func Uint64(words []uint16) (*uint64, error) {
	if err := checkCount(words, WordsUint64); err != nil {
		return nil, err
	}
	v := uint64(words[0])<<48 | uint64(words[1])<<32 | uint64(words[2])<<16 | uint64(words[3])
	if v == SentinelUint64 {
		return nil, nil
	}
	return &v, nil
}

// PutUint64 encodes a 64-bit unsigned integer as four registers, high word first.
func PutUint64(v uint64) []uint16 {
	return []uint16{uint16(v >> 48), uint16(v >> 32), uint16(v >> 16), uint16(v)}
}

// Float32 decodes two registers as an IEEE-754 single, high word first.
// Any NaN bit pattern decodes to nil; infinities are ordinary values.
func Float32(words []uint16) (*float32, error) {
	if err := checkCount(words, WordsFloat32); err != nil {
		return nil, err
	}
	f := math.Float32frombits(uint32(words[0])<<16 | uint32(words[1]))
	if f != f { // NaN
		return nil, nil
	}
	return &f, nil
}

// PutFloat32 encodes an IEEE-754 single as two registers, high word first.
func PutFloat32(f float32) []uint16 {
	return PutUint32(math.Float32bits(f))
}
