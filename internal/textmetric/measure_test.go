package textmetric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeasure(t *testing.T) {
	face, err := NewFace(13)
	require.NoError(t, err)
	defer face.Close()

	measure := NewMeasure(face)

	assert.Zero(t, measure(""))
	short := measure("mm")
	long := measure("a considerably longer label")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
}

func TestEstimateScalesWithLength(t *testing.T) {
	measure := Estimate(10)

	assert.Zero(t, measure(""))
	assert.InDelta(t, 6, measure("x"), 1e-9)
	assert.InDelta(t, 60, measure("0123456789"), 1e-9)
}
