package discovery

import (
	"github.com/powertag-link/powertag-go/pkg/powertag"
	"github.com/powertag-link/powertag-go/pkg/transport"
)

// FindSynthesisUnit locates the unit identifier serving the gateway's
// synthesis table. The table's unit moved between firmware generations, so
// candidates are probed from the highest identifier (247) down to 2 with a
// one-word read of the synthesis product ID. The first unit that answers
// wins. Probe failures of any kind just advance to the next candidate;
// if the whole range is exhausted, ErrSynthesisTableNotFound is returned.
func FindSynthesisUnit(r transport.RegisterReader) (uint8, error) {
	for unit := powertag.SynthesisProbeFirst; unit >= powertag.SynthesisProbeLast; unit-- {
		if _, err := r.ReadRegisters(powertag.SynthesisProductID.Addr, 1, unit); err == nil {
			return unit, nil
		}
	}
	return 0, ErrSynthesisTableNotFound
}
