// FILE: lixenwraith/oasconfig/decode.go
package oasconfig

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// decodeBool converts a stored value to bool using weak typing: numbers are
// true when non-zero, strings accept true/false, 1/0, yes/no, y/n and on/off
// in any case.
func decodeBool(key string, val any) (bool, error) {
	var out bool
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook:       stringToBoolHookFunc(),
	})
	if err != nil {
		return false, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(val); err != nil {
		return false, fmt.Errorf("%w: %s as bool: %w", ErrConversion, key, err)
	}
	return out, nil
}

// stringToBoolHookFunc handles the textual boolean spellings
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}

		str := strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String()))
		switch str {
		case "true", "1", "yes", "y", "on":
			return true, nil
		case "false", "0", "no", "n", "off":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", str)
	}
}
