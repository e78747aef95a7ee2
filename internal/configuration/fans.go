package configuration

const (
	// DefaultI2cBus is the bus the case fan controller hangs off of
	DefaultI2cBus = 10
	// DefaultI2cAddress is the peripheral address of the fan controller
	DefaultI2cAddress = 0x2F
	// DefaultI2cRegister is the speed command register on the peripheral
	DefaultI2cRegister = 0x30
)

type FanConfig struct {
	ID   string         `json:"id"`
	I2c  *I2cFanConfig  `json:"i2c,omitempty"`
	File *FileFanConfig `json:"file,omitempty"`
}

type I2cFanConfig struct {
	// Bus is the numbered i2c bus the fan controller is attached to (/dev/i2c-N)
	Bus int `json:"bus"`
	// Address is the 7-bit peripheral address of the fan controller
	Address int `json:"address"`
	// Register is the command register used to read and write the speed byte
	Register int `json:"register"`
}

type FileFanConfig struct {
	// Path of a pwm-style file accepting a value in [0..255]
	Path string `json:"path"`
}
