package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageBelowOffTempIsZero(t *testing.T) {
	for _, temp := range []float64{-20.0, 0.0, 25.0, 39.99} {
		assert.Equal(t, FanOff, Percentage(temp), "temp %f", temp)
	}
}

func TestPercentageBetweenOffAndMinTempIsLowFloor(t *testing.T) {
	for _, temp := range []float64{40.0, 42.0, 44.99} {
		assert.Equal(t, FanLow, Percentage(temp), "temp %f", temp)
	}
}

func TestPercentageAboveMaxTempIsFullSpeed(t *testing.T) {
	for _, temp := range []float64{75.0, 80.0, 120.0} {
		assert.Equal(t, FanMax, Percentage(temp), "temp %f", temp)
	}
}

func TestPercentageAtMinTempTakesBlendedBranch(t *testing.T) {
	// GIVEN
	temp := 45.0
	easeIn := 0.5 * (1.0 - math.Sin((math.Pi*temp)/50.0))
	ramp := FanLow + math.Min(temp-MinTemp, MaxTemp)*FanGain
	expected := (easeIn + ramp) / 2.0

	// WHEN
	result := Percentage(temp)

	// THEN
	// the boundary belongs to the curve branch, not the FanLow floor
	assert.InDelta(t, expected, result, 1e-12)
	assert.Greater(t, result, FanLow)
}

func TestPercentageIsMonotonicallyNonDecreasing(t *testing.T) {
	// GIVEN
	step := 0.01

	// WHEN / THEN
	last := Percentage(0.0)
	for temp := 0.0; temp <= 120.0; temp += step {
		current := Percentage(temp)
		assert.GreaterOrEqual(t, current, last, "curve decreased at temp %f", temp)
		last = current
	}
}

func TestSpeedRegisterValues(t *testing.T) {
	// GIVEN
	expected := map[float64]int{
		30.0: 0,
		42.0: 25,
		80.0: 255,
	}

	// WHEN / THEN
	for temp, speed := range expected {
		assert.Equal(t, speed, Speed(temp), "temp %f", temp)
	}
}

func TestSpeedStaysWithinRegisterBounds(t *testing.T) {
	for temp := -20.0; temp <= 150.0; temp += 0.5 {
		speed := Speed(temp)
		assert.GreaterOrEqual(t, speed, 0)
		assert.LessOrEqual(t, speed, 255)
	}
}
