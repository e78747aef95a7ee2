package sensors

import (
	"fmt"

	"github.com/svanherk/casefan/internal/configuration"
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature of this sensor in degrees celsius
	GetValue() (float64, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}
