package curve

import (
	"math"
)

const (
	// OffTemp is the temperature below which the fan is stopped entirely
	OffTemp = 40.0
	// MinTemp is the temperature above which the fan starts spinning
	MinTemp = 45.0
	// MaxTemp is the temperature above which the fan runs at full speed
	MaxTemp = 75.0

	// FanOff is the speed percentage of a stopped fan
	FanOff = 0.0
	// FanLow is the lowest speed percentage at which the fan does not stall
	FanLow = 0.1
	// FanMax is the speed percentage of a fan at full speed
	FanMax = 1.0

	// FanGain is the slope of the linear ramp between MinTemp and MaxTemp
	FanGain = (FanMax - FanLow) / (MaxTemp - MinTemp)

	// MaxSpeed is the highest value accepted by the speed register
	MaxSpeed = 255.0
)

// Percentage maps a temperature in degrees celsius to a fan speed
// percentage in [0..1]. Below OffTemp the fan is off, above MaxTemp it runs
// at full speed, in between the blended curve is used.
func Percentage(temp float64) float64 {
	switch {
	case temp < OffTemp:
		return FanOff
	case temp < MinTemp:
		return FanLow
	case temp < MaxTemp:
		return blended(temp)
	default:
		return FanMax
	}
}

// blended averages a sine based ease-in with a linear ramp. The sine term
// keeps the early ramp smooth, the linear term bounds the ceiling; averaging
// the two avoids audible speed oscillation around the midpoint.
func blended(temp float64) float64 {
	easeIn := 0.5 * (1.0 - math.Sin((math.Pi*temp)/50.0))
	ramp := FanLow + math.Min(temp-MinTemp, MaxTemp)*FanGain
	return (easeIn + ramp) / 2.0
}

// Speed maps a temperature in degrees celsius to a speed register
// value in [0..255].
func Speed(temp float64) int {
	return int(math.Floor(MaxSpeed * Percentage(temp)))
}
