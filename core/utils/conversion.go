package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a value cannot be read as a number.
var ErrNotNumeric = errors.New("not numeric")

// ToInt64 converts val to an int64 using explicit type switching.
// Strings are trimmed first. Floating point values are accepted only when they
// carry no fractional part.
func ToInt64(val any) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		return uintToInt64(uint64(v))
	case uint64:
		return uintToInt64(v)
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		return integral(v)
	case float32:
		return integral(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, ErrNotNumeric
		}
		return integral(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, ErrNotNumeric
		}
		return i, nil
	case []byte:
		return ToInt64(string(v))
	default:
		return 0, ErrNotNumeric
	}
}

// ToRoundedInt64 behaves like ToInt64 but also accepts fractional values,
// rounding them to the nearest integer (halves to even).
func ToRoundedInt64(val any) (int64, error) {
	if i, err := ToInt64(val); err == nil {
		return i, nil
	}

	var f float64
	switch v := val.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, ErrNotNumeric
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, ErrNotNumeric
		}
		f = parsed
	case []byte:
		return ToRoundedInt64(string(v))
	default:
		return 0, ErrNotNumeric
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumeric
	}
	r := math.RoundToEven(f)
	// float64(math.MaxInt64) is 2^63, one past the largest int64.
	if r >= math.MaxInt64 || r < math.MinInt64 {
		return 0, ErrNotNumeric
	}
	return int64(r), nil
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func integral(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrNotNumeric
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, ErrNotNumeric
	}
	return int64(f), nil
}

func uintToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, ErrNotNumeric
	}
	return int64(v), nil
}
