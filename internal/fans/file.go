package fans

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/svanherk/casefan/internal/configuration"
	"github.com/svanherk/casefan/internal/util"
)

// FileFan mirrors the speed value into a pwm-style file, e.g. an hwmon
// pwm1 attribute. Mainly useful on machines without the I2C fan controller.
type FileFan struct {
	Config configuration.FanConfig `json:"configuration"`
}

func (fan FileFan) GetId() string {
	return fan.Config.ID
}

func (fan FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan FileFan) GetSpeed() (int, error) {
	filePath, err := fan.resolvePath()
	if err != nil {
		return 0, err
	}
	return util.ReadIntFromFile(filePath)
}

func (fan *FileFan) SetSpeed(speed int) error {
	if speed < MinSpeedValue || speed > MaxSpeedValue {
		return fmt.Errorf("invalid speed value for fan %s: %d", fan.Config.ID, speed)
	}
	filePath, err := fan.resolvePath()
	if err != nil {
		return err
	}
	// plain write, sysfs attributes cannot be replaced by rename
	return util.WriteIntToFile(speed, filePath)
}

func (fan FileFan) Close() error {
	return nil
}

func (fan FileFan) resolvePath() (string, error) {
	filePath := fan.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return "", err
		}
		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}
	return filePath, nil
}
