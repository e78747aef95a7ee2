package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/svanherk/casefan/internal/curve"
	"github.com/svanherk/casefan/internal/fans"
	"github.com/svanherk/casefan/internal/sensors"
	"github.com/svanherk/casefan/internal/ui"
)

// SpeedUnknown marks the last written speed as unknown, which forces the
// next computed speed to be written out.
const SpeedUnknown = -1

type FanController interface {
	// Run starts the control loop and blocks until the context is cancelled
	// or an unrecoverable error occurs
	Run(ctx context.Context) error
	// UpdateFanSpeed advances the loop by a single tick
	UpdateFanSpeed() error

	GetStatistics() Statistics
}

// Statistics is a snapshot of the loop's observable state.
type Statistics struct {
	// Temperature sampled on the most recent tick, in degrees celsius
	Temperature float64
	// Speed last written to the fan controller
	Speed int
	// Ticks counts completed sample/compute cycles
	Ticks int
	// Writes counts confirmed speed register writes
	Writes int
}

type fanController struct {
	sensor       sensors.Sensor
	fan          fans.Fan
	updatePeriod time.Duration

	// lastSetSpeed is the last speed confirmed written to the fan.
	// A write is only issued when the computed speed differs from it.
	lastSetSpeed int

	statsMu sync.Mutex
	stats   Statistics
}

func NewFanController(sensor sensors.Sensor, fan fans.Fan, updatePeriod time.Duration) FanController {
	return &fanController{
		sensor:       sensor,
		fan:          fan,
		updatePeriod: updatePeriod,
		lastSetSpeed: SpeedUnknown,
	}
}

func (f *fanController) Run(ctx context.Context) error {
	fan := f.fan

	// seed the change detection from the hardware, so that a first tick whose
	// computed speed already matches does not cause a pointless write
	speed, err := fan.GetSpeed()
	if err != nil {
		ui.Warning("Unable to read back current speed of fan %s, forcing first write: %v", fan.GetId(), err)
	} else {
		f.lastSetSpeed = speed
	}

	ui.Info("Starting control loop for fan '%s'", fan.GetId())

	tick := time.Tick(f.updatePeriod)
	for {
		// a tick in flight always completes before cancellation is honored
		select {
		case <-ctx.Done():
			ui.Info("Fan control stopped.")
			return nil
		case <-tick:
			err := f.UpdateFanSpeed()
			if err != nil {
				ui.Error("Error in control loop for fan %s: %v", fan.GetId(), err)
				return err
			}
		}
	}
}

func (f *fanController) UpdateFanSpeed() error {
	temp, err := f.sensor.GetValue()
	if err != nil {
		// no write is attempted for this tick, a guessed temperature could
		// overheat the system or thrash the fan
		return fmt.Errorf("unable to read sensor %s: %w", f.sensor.GetId(), err)
	}

	target := curve.Speed(temp)
	f.recordTick(temp)

	if target == f.lastSetSpeed {
		return nil
	}

	if err := f.fan.SetSpeed(target); err != nil {
		return err
	}
	f.lastSetSpeed = target
	f.recordWrite(target)

	// one line per change, only after the write is confirmed
	ui.Printfln("Cpu temp: %.2f°C, fan speed: %d", temp, target)
	return nil
}

func (f *fanController) GetStatistics() Statistics {
	f.statsMu.Lock()
	defer f.statsMu.Unlock()
	return f.stats
}

func (f *fanController) recordTick(temp float64) {
	f.statsMu.Lock()
	defer f.statsMu.Unlock()
	f.stats.Temperature = temp
	f.stats.Ticks++
}

func (f *fanController) recordWrite(speed int) {
	f.statsMu.Lock()
	defer f.statsMu.Unlock()
	f.stats.Speed = speed
	f.stats.Writes++
}
