package models

import (
	"encoding/json"
	"fmt"
)

// lookupNumber достаёт числовое значение по ключу. Второе значение сообщает,
// присутствует ли ключ в словаре.
func lookupNumber(data map[string]any, key string) (float64, bool, error) {
	raw, ok := data[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int8:
		return float64(v), true, nil
	case int16:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint:
		return float64(v), true, nil
	case uint8:
		return float64(v), true, nil
	case uint16:
		return float64(v), true, nil
	case uint32:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s: %v", ErrInvalidField, key, err)
		}
		return f, true, nil
	default:
		return 0, true, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidField, key, raw)
	}
}

// lookupString достаёт строку по ключу. nil считается пустой строкой.
func lookupString(data map[string]any, key string) (string, bool, error) {
	raw, ok := data[key]
	if !ok {
		return "", false, nil
	}
	switch v := raw.(type) {
	case nil:
		return "", true, nil
	case string:
		return v, true, nil
	default:
		return "", true, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidField, key, raw)
	}
}

// lookupBool достаёт флаг по ключу. nil считается ложью.
func lookupBool(data map[string]any, key string) (bool, bool, error) {
	raw, ok := data[key]
	if !ok {
		return false, false, nil
	}
	switch v := raw.(type) {
	case nil:
		return false, true, nil
	case bool:
		return v, true, nil
	default:
		return false, true, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidField, key, raw)
	}
}
