package configuration

import (
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
)

func decodeWithHexHook(t *testing.T, input map[string]interface{}, target interface{}) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: hexStringToIntHookFunc(),
		Result:     target,
	})
	assert.NoError(t, err)
	assert.NoError(t, decoder.Decode(input))
}

func TestHexStringDecodesIntoIntField(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"bus":      10,
		"address":  "0x2F",
		"register": "0x30",
	}

	// WHEN
	var result I2cFanConfig
	decodeWithHexHook(t, input, &result)

	// THEN
	assert.Equal(t, 10, result.Bus)
	assert.Equal(t, 0x2F, result.Address)
	assert.Equal(t, 0x30, result.Register)
}

func TestPlainStringsAreLeftUntouched(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"path": "/sys/class/thermal/thermal_zone0/temp",
	}

	// WHEN
	var result FileSensorConfig
	decodeWithHexHook(t, input, &result)

	// THEN
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", result.Path)
}

func TestInvalidHexStringFailsDecoding(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"address": "0xZZ",
	}

	// WHEN
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: hexStringToIntHookFunc(),
		Result:     &I2cFanConfig{},
	})
	assert.NoError(t, err)
	err = decoder.Decode(input)

	// THEN
	assert.Error(t, err)
}
