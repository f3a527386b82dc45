package discovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeReader answers reads only for one unit and records the probe order.
type probeReader struct {
	answering uint8
	probed    []uint8
}

func (r *probeReader) ReadRegisters(address, count uint16, unit uint8) ([]uint16, error) {
	r.probed = append(r.probed, unit)
	if unit != r.answering {
		return nil, errors.New("gateway timeout")
	}
	return make([]uint16, count), nil
}

func TestFindSynthesisUnit(t *testing.T) {
	reader := &probeReader{answering: 42}

	unit, err := FindSynthesisUnit(reader)
	require.NoError(t, err)
	assert.Equal(t, uint8(42), unit)

	// Probing descends from 247 and stops at the first answer.
	require.NotEmpty(t, reader.probed)
	assert.Equal(t, uint8(247), reader.probed[0])
	assert.Equal(t, uint8(42), reader.probed[len(reader.probed)-1])
	for i := 1; i < len(reader.probed); i++ {
		assert.Equal(t, reader.probed[i-1]-1, reader.probed[i])
	}
}

func TestFindSynthesisUnitLowestCandidate(t *testing.T) {
	reader := &probeReader{answering: 2}

	unit, err := FindSynthesisUnit(reader)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), unit)
	assert.Len(t, reader.probed, 246)
}

func TestFindSynthesisUnitNotFound(t *testing.T) {
	reader := &probeReader{answering: 0} // never matches a probed unit

	_, err := FindSynthesisUnit(reader)
	assert.ErrorIs(t, err, ErrSynthesisTableNotFound)
	assert.Len(t, reader.probed, 246)
}
