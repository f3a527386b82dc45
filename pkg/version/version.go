// Package version parses the dotted revision strings PowerTag devices
// report, such as the gateway firmware version "001.008.007".
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Revision represents a parsed "major.minor.patch" revision.
type Revision struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses a "major.minor.patch" revision string. Leading zeros, as the
// devices report them, are accepted.
func Parse(s string) (Revision, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Revision{}, fmt.Errorf("invalid revision %q: expected major.minor.patch", s)
	}

	nums := make([]uint16, 3)
	for i, part := range parts {
		if part == "" {
			return Revision{}, fmt.Errorf("invalid revision %q: empty component", s)
		}
		v, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return Revision{}, fmt.Errorf("invalid revision %q: bad component %q", s, part)
		}
		nums[i] = uint16(v)
	}

	return Revision{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the revision as "major.minor.patch" without leading zeros.
func (r Revision) String() string {
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
}

// Compare returns -1, 0 or 1 ordering r against other.
func (r Revision) Compare(other Revision) int {
	for _, pair := range [][2]uint16{
		{r.Major, other.Major},
		{r.Minor, other.Minor},
		{r.Patch, other.Patch},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// AtLeast reports whether r is other or newer.
func (r Revision) AtLeast(other Revision) bool {
	return r.Compare(other) >= 0
}
