package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hxforge/calculator"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 5.0, calculator.Add(2, 3))
	assert.Equal(t, 0.0, calculator.Add(-1, 1))
	assert.Equal(t, 0.0, calculator.Add(0, 0))
}

func TestOverallHTC(t *testing.T) {
	htc1, htc2, rWall := 100.0, 200.0, 0.05
	u, err := calculator.OverallHTC(htc1, htc2, rWall)
	require.NoError(t, err)
	assert.InEpsilon(t, 1/(1/htc1+rWall+1/htc2), u, 1e-12)

	u, err = calculator.OverallHTC(htc1, htc2, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 1/(1/htc1+1/htc2), u, 1e-12)
}

func TestOverallHTC_Invalid(t *testing.T) {
	_, err := calculator.OverallHTC(-100, 200, 0.05)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveHTC)
	_, err = calculator.OverallHTC(100, -200, 0.05)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveHTC)
	_, err = calculator.OverallHTC(0, 200, 0.05)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveHTC)
	_, err = calculator.OverallHTC(100, 200, -0.05)
	assert.ErrorIs(t, err, calculator.ErrNegativeResistance)
}

func TestWallResistance(t *testing.T) {
	r, err := calculator.WallResistance(0.1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, r, 1e-12)
}

func TestWallResistance_Invalid(t *testing.T) {
	_, err := calculator.WallResistance(-0.1, 0.5)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveThickness)
	_, err = calculator.WallResistance(0, 0.5)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveThickness)
	_, err = calculator.WallResistance(0.1, -0.5)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveConductivity)
	_, err = calculator.WallResistance(0.1, 0)
	assert.ErrorIs(t, err, calculator.ErrNonPositiveConductivity)
}
