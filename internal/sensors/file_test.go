package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svanherk/casefan/internal/configuration"
)

func createFileSensorConfig(path string) configuration.SensorConfig {
	return configuration.SensorConfig{
		ID: "cpu",
		File: &configuration.FileSensorConfig{
			Path: path,
		},
	}
}

func writeSensorFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestFileSensorConvertsMillidegrees(t *testing.T) {
	// GIVEN
	path := writeSensorFile(t, "53264\n")
	sensor, err := NewSensor(createFileSensorConfig(path))
	assert.NoError(t, err)

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.InDelta(t, 53.264, value, 1e-9)
}

func TestFileSensorUnparsableContentIsAnError(t *testing.T) {
	// GIVEN
	path := writeSensorFile(t, "garbage\n")
	sensor, err := NewSensor(createFileSensorConfig(path))
	assert.NoError(t, err)

	// WHEN
	_, err = sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestFileSensorMissingFileIsAnError(t *testing.T) {
	// GIVEN
	sensor, err := NewSensor(createFileSensorConfig(filepath.Join(t.TempDir(), "missing")))
	assert.NoError(t, err)

	// WHEN
	_, err = sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestNewSensorWithoutBackend(t *testing.T) {
	// WHEN
	_, err := NewSensor(configuration.SensorConfig{ID: "cpu"})

	// THEN
	assert.Error(t, err)
}
