package fans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svanherk/casefan/internal/configuration"
)

func createFileFanConfig(path string) configuration.FanConfig {
	return configuration.FanConfig{
		ID: "case",
		File: &configuration.FileFanConfig{
			Path: path,
		},
	}
}

func TestFileFanRoundTrip(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm1")
	fan, err := NewFan(createFileFanConfig(path))
	assert.NoError(t, err)

	// WHEN
	err = fan.SetSpeed(95)

	// THEN
	assert.NoError(t, err)
	speed, err := fan.GetSpeed()
	assert.NoError(t, err)
	assert.Equal(t, 95, speed)
}

func TestFileFanRejectsOutOfBoundsSpeed(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm1")
	fan, err := NewFan(createFileFanConfig(path))
	assert.NoError(t, err)

	for _, speed := range []int{-1, 256} {
		// WHEN
		err = fan.SetSpeed(speed)

		// THEN
		assert.Error(t, err)
	}
}

func TestFileFanReadBeforeFirstWrite(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm1")
	fan, err := NewFan(createFileFanConfig(path))
	assert.NoError(t, err)

	// WHEN
	_, err = fan.GetSpeed()

	// THEN
	assert.Error(t, err)
}

func TestFileFanReadsExistingValue(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm1")
	err := os.WriteFile(path, []byte("128"), 0644)
	assert.NoError(t, err)
	fan, err := NewFan(createFileFanConfig(path))
	assert.NoError(t, err)

	// WHEN
	speed, err := fan.GetSpeed()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 128, speed)
}

func TestNewFanWithoutBackend(t *testing.T) {
	// WHEN
	_, err := NewFan(configuration.FanConfig{ID: "case"})

	// THEN
	assert.Error(t, err)
}
