package sensors

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/svanherk/casefan/internal/configuration"
	"github.com/svanherk/casefan/internal/util"
)

// FileSensor reads a temperature from a file containing a single
// millidegree celsius value, the format used by the kernel's thermal zones.
type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) GetValue() (float64, error) {
	filePath := sensor.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return 0, err
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}

	millidegrees, err := util.ReadFloatFromFile(filePath)
	if err != nil {
		// an unreadable or unparsable sensor is a real fault,
		// never substitute a guessed value
		return 0, err
	}

	return millidegrees / 1000.0, nil
}
