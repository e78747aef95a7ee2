package configuration

import (
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/svanherk/casefan/internal/ui"
)

type Configuration struct {
	// UpdatePeriod is the time between two ticks of the control loop
	UpdatePeriod time.Duration `json:"updatePeriod"`

	Sensor     SensorConfig     `json:"sensor"`
	Fan        FanConfig        `json:"fan"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("casefan")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/casefan/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("UpdatePeriod", 5*time.Second)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)
}

// DetectConfigFile locates the configuration file, if any. The daemon is
// fully functional on defaults alone, so a missing file is not an error.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	decodeHook := viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			hexStringToIntHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
	err := viper.Unmarshal(&CurrentConfig, decodeHook)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	applyBackendDefaults(&CurrentConfig)
}

// applyBackendDefaults fills in the default sensor and fan bindings when the
// configuration does not name any. Defaults match the Raspberry Pi case fan
// controller this daemon was written for.
func applyBackendDefaults(config *Configuration) {
	if config.Sensor.ID == "" {
		config.Sensor.ID = "cpu"
	}
	if config.Sensor.File == nil {
		config.Sensor.File = &FileSensorConfig{
			Path: DefaultSensorPath,
		}
	}

	if config.Fan.ID == "" {
		config.Fan.ID = "case"
	}
	if config.Fan.I2c == nil && config.Fan.File == nil {
		config.Fan.I2c = &I2cFanConfig{
			Bus:      DefaultI2cBus,
			Address:  DefaultI2cAddress,
			Register: DefaultI2cRegister,
		}
	}
}
