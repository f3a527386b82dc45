// Package register converts between Modbus holding-register words and typed
// values, following the PowerTag Link register conventions.
//
// All multi-register quantities are composed most-significant-word first, and
// bytes within a word are big-endian.
//
// # Sentinel values
//
// The device reserves one bit pattern per wire type to mean "value not
// available": 0xFFFF for 16-bit integers, 0x8000_0000 for 32-bit integers,
// 0x8000_0000_0000_0000 for 64-bit integers, any NaN pattern for floats, and
// all-0xFFFF words for date-times. Strings are absent when every byte of the
// field is zero. Decoders return nil for these patterns; absence is never an
// error and never a numeric zero.
//
// # Errors
//
// A register slice whose length does not match the wire type is a
// transport/address-map mismatch and decodes to ErrMalformedResponse. A packed
// date-time with fields outside calendar range decodes to ErrInvalidTimestamp.
package register
