package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadSweep_Valid decodes every field.
func TestLoadSweep_Valid(t *testing.T) {
	s, err := LoadSweep(strings.NewReader(`
radii: [0.1, 0.5]
curvatures: [1, -1, 2]
rotate_degrees: 90
precision: 40
`))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.5}, s.Radii)
	assert.Equal(t, []float64{1, -1, 2}, s.Curvatures)
	require.NotNil(t, s.RotateDegrees)
	assert.Equal(t, 90.0, *s.RotateDegrees)
	assert.Equal(t, 40, s.Precision)

	pairs := s.Pairs()
	require.Len(t, pairs, 6)
	assert.Equal(t, [2]float64{0.1, 1}, pairs[0])
	assert.Equal(t, [2]float64{0.5, 2}, pairs[5])
}

// TestLoadSweep_Errors covers shape errors, unknown keys and bad YAML.
func TestLoadSweep_Errors(t *testing.T) {
	_, err := LoadSweep(strings.NewReader("radii: [1]\n"))
	assert.ErrorIs(t, err, ErrEmptySweep)

	_, err = LoadSweep(strings.NewReader("radii: [1]\ncurvatures: [1]\nprecision: -3\n"))
	assert.ErrorIs(t, err, ErrBadPrecision)

	_, err = LoadSweep(strings.NewReader("radii: [1]\ncurvatures: [1]\nprecision: 100000000\n"))
	assert.ErrorIs(t, err, ErrBadPrecision)

	_, err = LoadSweep(strings.NewReader("radii: [1]\ncurvatures: [1]\nkapa: 2\n"))
	assert.Error(t, err)

	_, err = LoadSweep(strings.NewReader("radii: [oops"))
	assert.Error(t, err)
}
