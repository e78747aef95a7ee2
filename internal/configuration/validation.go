package configuration

import (
	"fmt"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.UpdatePeriod <= 0 {
		return fmt.Errorf("updatePeriod must be positive, got: %s", config.UpdatePeriod)
	}

	if err := validateSensor(config.Sensor); err != nil {
		return err
	}
	if err := validateFan(config.Fan); err != nil {
		return err
	}
	return validateStatistics(config.Statistics)
}

func validateSensor(config SensorConfig) error {
	if config.File == nil {
		return fmt.Errorf("sensor %s: no sensor backend configured", config.ID)
	}
	if len(config.File.Path) <= 0 {
		return fmt.Errorf("sensor %s: file path must not be empty", config.ID)
	}
	return nil
}

func validateFan(config FanConfig) error {
	subConfigs := 0
	if config.I2c != nil {
		subConfigs++
	}
	if config.File != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("fan %s: there must be exactly one fan backend, but found %d", config.ID, subConfigs)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("fan %s: no fan backend configured", config.ID)
	}

	if config.I2c != nil {
		i2c := config.I2c
		if i2c.Bus < 0 {
			return fmt.Errorf("fan %s: invalid i2c bus number: %d", config.ID, i2c.Bus)
		}
		// 7-bit addressing, reserved ranges excluded
		if i2c.Address < 0x08 || i2c.Address > 0x77 {
			return fmt.Errorf("fan %s: i2c address 0x%X outside of valid 7-bit range [0x08..0x77]", config.ID, i2c.Address)
		}
		if i2c.Register < 0 || i2c.Register > 0xFF {
			return fmt.Errorf("fan %s: i2c register 0x%X outside of valid range [0x00..0xFF]", config.ID, i2c.Register)
		}
	}

	if config.File != nil && len(config.File.Path) <= 0 {
		return fmt.Errorf("fan %s: file path must not be empty", config.ID)
	}

	return nil
}

func validateStatistics(config StatisticsConfig) error {
	if !config.Enabled {
		return nil
	}
	if config.Port <= 0 || config.Port >= 65535 {
		return fmt.Errorf("statistics: invalid port %d", config.Port)
	}
	return nil
}
