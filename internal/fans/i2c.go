package fans

import (
	"fmt"

	"github.com/svanherk/casefan/internal/configuration"
	"github.com/svanherk/casefan/internal/i2c"
)

// I2cFan drives a fan controller chip over a single command register.
// It owns the bus handle exclusively for the lifetime of the process.
type I2cFan struct {
	Config configuration.FanConfig `json:"configuration"`

	bus      *i2c.Bus
	dev      *i2c.Dev
	register byte
}

func NewI2cFan(config configuration.FanConfig) (*I2cFan, error) {
	bus, err := i2c.Open(config.I2c.Bus)
	if err != nil {
		return nil, fmt.Errorf("unable to open i2c bus %d: %w", config.I2c.Bus, err)
	}

	return &I2cFan{
		Config:   config,
		bus:      bus,
		dev:      bus.Dev(uint16(config.I2c.Address)),
		register: byte(config.I2c.Register),
	}, nil
}

func (fan I2cFan) GetId() string {
	return fan.Config.ID
}

func (fan I2cFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *I2cFan) GetSpeed() (int, error) {
	value, err := fan.dev.ReadRegU8(fan.register)
	if err != nil {
		return 0, fmt.Errorf("unable to read speed of fan %s at address 0x%X on bus %d: %w",
			fan.Config.ID, fan.Config.I2c.Address, fan.Config.I2c.Bus, err)
	}
	return int(value), nil
}

func (fan *I2cFan) SetSpeed(speed int) error {
	if speed < MinSpeedValue || speed > MaxSpeedValue {
		return fmt.Errorf("invalid speed value for fan %s: %d", fan.Config.ID, speed)
	}
	err := fan.dev.WriteReg(fan.register, byte(speed))
	if err != nil {
		return fmt.Errorf("unable to set speed of fan %s at address 0x%X on bus %d: %w",
			fan.Config.ID, fan.Config.I2c.Address, fan.Config.I2c.Bus, err)
	}
	return nil
}

func (fan *I2cFan) Close() error {
	return fan.bus.Close()
}
