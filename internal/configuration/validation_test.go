package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Configuration {
	return Configuration{
		UpdatePeriod: 5 * time.Second,
		Sensor: SensorConfig{
			ID: "cpu",
			File: &FileSensorConfig{
				Path: DefaultSensorPath,
			},
		},
		Fan: FanConfig{
			ID: "case",
			I2c: &I2cFanConfig{
				Bus:      DefaultI2cBus,
				Address:  DefaultI2cAddress,
				Register: DefaultI2cRegister,
			},
		},
		Statistics: StatisticsConfig{
			Enabled: false,
			Port:    9000,
		},
	}
}

func TestValidateDefaultConfig(t *testing.T) {
	// GIVEN
	config := validConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateNonPositiveUpdatePeriod(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.UpdatePeriod = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateSensorWithoutBackend(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Sensor.File = nil

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateFanWithMultipleBackends(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan.File = &FileFanConfig{
		Path: "/sys/class/hwmon/hwmon3/pwm1",
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateFanWithoutBackend(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan.I2c = nil

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateI2cAddressOutOfRange(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Fan.I2c.Address = 0x7F

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateStatisticsPort(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Statistics.Enabled = true
	config.Statistics.Port = -1

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}
