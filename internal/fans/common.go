package fans

import (
	"fmt"

	"github.com/svanherk/casefan/internal/configuration"
)

const (
	MaxSpeedValue = 255
	MinSpeedValue = 0
)

type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// GetSpeed returns the speed value currently set on the fan controller
	GetSpeed() (int, error)

	// SetSpeed writes a speed value in [0..255] to the fan controller.
	// The write may block on kernel level I/O and is not retried.
	SetSpeed(speed int) error

	Close() error
}

// NewFan creates the fan backend for the given configuration. For bus-backed
// fans this opens the bus and addresses the peripheral, so a misconfigured or
// absent controller surfaces here, before the control loop ever starts.
func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.I2c != nil {
		return NewI2cFan(config)
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.ID)
}
