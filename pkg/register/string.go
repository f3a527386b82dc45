package register

import "fmt"

// String decodes a fixed-length ASCII field of byteLen bytes spread over the
// given registers (two bytes per register, high byte first). The register
// count must match the field exactly, as with the numeric decoders.
//
// A field whose bytes are all zero decodes to nil. Otherwise every zero byte
// is dropped, wherever it appears, and the remaining bytes form the result;
// the device pads and aligns fields with NUL bytes in both positions.
func String(words []uint16, byteLen int) (*string, error) {
	if want := (byteLen + 1) / 2; len(words) != want {
		return nil, fmt.Errorf("%w: got %d registers, want %d for a %d-byte field", ErrMalformedResponse, len(words), want, byteLen)
	}

	raw := make([]byte, 0, byteLen)
	for _, w := range words {
		raw = append(raw, byte(w>>8), byte(w))
	}
	raw = raw[:byteLen]

	filtered := raw[:0]
	for _, b := range raw {
		if b != 0 {
			filtered = append(filtered, b)
		}
	}
	if len(filtered) == 0 {
		return nil, nil
	}

	s := string(filtered)
	return &s, nil
}

// PutString encodes s into a fixed-length ASCII field of byteLen bytes,
// padding with zero bytes. Fields with an odd byte length occupy a final
// half-used register whose low byte is zero.
// Returns ErrStringTooLong if s does not fit.
func PutString(s string, byteLen int) ([]uint16, error) {
	if len(s) > byteLen {
		return nil, fmt.Errorf("%w: %q is %d bytes, field holds %d", ErrStringTooLong, s, len(s), byteLen)
	}

	padded := make([]byte, (byteLen+1)/2*2)
	copy(padded, s)

	words := make([]uint16, len(padded)/2)
	for i := range words {
		words[i] = uint16(padded[2*i])<<8 | uint16(padded[2*i+1])
	}
	return words, nil
}
