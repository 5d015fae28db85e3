package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

var errTypeMismatch = errors.New("i18n: value does not fit requested type")

// convert turns a resolved tree node into V. Scalars convert only within
// their own family: strings to strings, bools to bools, numbers to numbers.
// Composite targets go through a JSON round-trip. The result never shares
// mappings or sequences with node.
func convert[V any](node any) (V, error) {
	var out V

	if v, ok := cloneNode(node).(V); ok {
		return v, nil
	}

	target := reflect.ValueOf(&out).Elem()
	switch target.Kind() {
	case reflect.String:
		s, ok := node.(string)
		if !ok {
			return out, mismatch(node, target)
		}
		target.SetString(s)
		return out, nil

	case reflect.Bool:
		b, ok := node.(bool)
		if !ok {
			return out, mismatch(node, target)
		}
		target.SetBool(b)
		return out, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt64(node)
		if !ok || target.OverflowInt(n) {
			return out, mismatch(node, target)
		}
		target.SetInt(n)
		return out, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := toUint64(node)
		if !ok || target.OverflowUint(n) {
			return out, mismatch(node, target)
		}
		target.SetUint(n)
		return out, nil

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat64(node)
		if !ok || target.OverflowFloat(f) {
			return out, mismatch(node, target)
		}
		target.SetFloat(f)
		return out, nil
	}

	data, err := json.Marshal(node)
	if err != nil {
		return out, errors.Join(errTypeMismatch, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero V
		return zero, errors.Join(errTypeMismatch, err)
	}
	return out, nil
}

func mismatch(node any, target reflect.Value) error {
	return fmt.Errorf("%w: %T into %s", errTypeMismatch, node, target.Type())
}

func toFloat64(node any) (float64, bool) {
	switch n := node.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt64(node any) (int64, bool) {
	switch n := node.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(n)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	default:
		return 0, false
	}
}

func toUint64(node any) (uint64, bool) {
	switch n := node.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case json.Number:
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return u, true
		}
		i, ok := toInt64(n)
		if !ok || i < 0 {
			return 0, false
		}
		return uint64(i), true
	default:
		i, ok := toInt64(n)
		if !ok || i < 0 {
			return 0, false
		}
		return uint64(i), true
	}
}

// floatToInt64 accepts only integral values inside the int64 range.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
