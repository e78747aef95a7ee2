package configuration

// DefaultSensorPath is the kernel thermal zone holding the CPU temperature
// in millidegrees celsius.
const DefaultSensorPath = "/sys/class/thermal/thermal_zone0/temp"

type SensorConfig struct {
	ID   string            `json:"id"`
	File *FileSensorConfig `json:"file,omitempty"`
}

type FileSensorConfig struct {
	// Path of a file containing a single millidegree celsius value
	Path string `json:"path"`
}
