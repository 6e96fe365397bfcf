package config

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Load reads a config file on top of Default. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	config := Default()
	err := v.Unmarshal(&config, viper.DecodeHook(DecodeHook()))
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}

	return config, nil
}

func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		StringToBigIntHookFunc(),
	)
}

var (
	bigIntType    = reflect.TypeOf(big.Int{})
	bigIntPtrType = reflect.TypeOf(&big.Int{})
)

// StringToBigIntHookFunc decodes decimal strings and numbers into big.Int fields. A non-nil
// *big.Int default is decoded in place, so both the pointer and the value target match.
func StringToBigIntHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != bigIntType && t != bigIntPtrType {
			return data, nil
		}

		n, err := toBigInt(data)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return data, nil
		}

		if t == bigIntType {
			return *n, nil
		}
		return n, nil
	}
}

func toBigInt(data interface{}) (*big.Int, error) {
	switch value := data.(type) {
	case string:
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidField, value)
		}
		return n, nil
	case int:
		return big.NewInt(int64(value)), nil
	case int64:
		return big.NewInt(value), nil
	case uint64:
		return new(big.Int).SetUint64(value), nil
	case float64:
		n, _ := big.NewFloat(value).Int(nil)
		return n, nil
	case *big.Int:
		return value, nil
	case big.Int:
		return &value, nil
	}

	return nil, nil
}
