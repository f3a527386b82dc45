// Package powertag models the PowerTag Link domain: the published register
// address map, the closed device enumerations, the product-type lookup table
// and the alarm bitmap.
//
// The address map reproduces the gateway's documented register layout
// address-for-address. A wrong address does not fail loudly - it silently
// reads a different, equally plausible value - so the map is kept as a flat
// table of named fields with exhaustive literal-address test coverage.
//
// # Enumeration policies
//
// Device usage, phase sequence and mounting position are closed enumerations
// for which the device reserves the 16-bit absence pattern as an explicit
// "invalid" configuration state; that pattern decodes to the dedicated
// Invalid variant, while any other unlisted code fails with
// ErrUnknownEnumCode. The product-type table is open: an unlisted code is a
// "not found" result, never an error, since new products ship ahead of map
// updates.
package powertag
