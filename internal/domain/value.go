package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseValue converts a loosely typed declared value into a float.
// Accepted: JSON numbers (float64, json.Number, Go integer kinds) and strings
// holding a decimal number. NaN, infinities and negative amounts are rejected.
func ParseValue(raw any) (float64, error) {
	var v float64
	switch t := raw.(type) {
	case nil:
		return 0, fmt.Errorf("%w: missing", ErrInvalidValue)
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int64:
		v = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidValue, t.String())
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidValue, t)
		}
		v = f
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: not finite", ErrInvalidValue)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative", ErrInvalidValue)
	}
	return v, nil
}
