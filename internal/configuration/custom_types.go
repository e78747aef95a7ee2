package configuration

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// hexStringToIntHookFunc returns a mapstructure decode hook that parses
// "0x"-prefixed strings into integer fields. Bus addresses and registers are
// conventionally written in hex ("address: 0x2F"), and yaml would otherwise
// hand them to us as plain strings.
func hexStringToIntHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return data, nil
		}

		raw := data.(string)
		if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
			return data, nil
		}

		value, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return nil, err
		}
		return value, nil
	}
}
