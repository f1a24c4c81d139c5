package tft

import (
	"encoding/json"
	"fmt"
	"math"
)

// Reader over a raw mapping for a single entity.
// Keeps the first error, so every field can be read before checking.
// Failures are MissingFieldError values.
type Reader struct {
	entity string
	data   map[string]any
	err    error
}

func NewReader(entity string, data map[string]any) *Reader {
	return &Reader{entity: entity, data: data}
}

// Child path used on nested entities errors, e.g. info.participants[2].
func childPath(parent, key string, index int) string {
	return fmt.Sprintf("%s.%s[%d]", parent, key, index)
}

// Fail records a failure on a field, only the first one is kept.
func (r *Reader) Fail(field, reason string) {
	if r.err == nil {
		r.err = &MissingFieldError{Entity: r.entity, Field: field, Reason: reason}
	}
}

// Value gets the raw value, registering a missing field if it isn't there.
func (r *Reader) Value(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}

	value, exists := r.data[key]
	if !exists || value == nil {
		r.Fail(key, "")
		return nil, false
	}
	return value, true
}

func (r *Reader) String(key string) string {
	value, ok := r.Value(key)
	if !ok {
		return ""
	}

	str, ok := value.(string)
	if !ok {
		r.Fail(key, "expected string")
	}
	return str
}

// Return the string if it's available, else returns a empty string.
func (r *Reader) OptionalString(key string) string {
	if str, ok := r.data[key].(string); ok {
		return str
	}
	return ""
}

func (r *Reader) Int64(key string) int64 {
	value, ok := r.Value(key)
	if !ok {
		return 0
	}

	number, ok := toInt64(value)
	if !ok {
		r.Fail(key, "expected integer")
	}
	return number
}

func (r *Reader) Int(key string) int {
	return int(r.Int64(key))
}

func (r *Reader) Float(key string) float64 {
	value, ok := r.Value(key)
	if !ok {
		return 0
	}

	number, ok := toFloat(value)
	if !ok {
		r.Fail(key, "expected number")
	}
	return number
}

func (r *Reader) Map(key string) map[string]any {
	value, ok := r.Value(key)
	if !ok {
		return nil
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		r.Fail(key, "expected object")
	}
	return mapping
}

func (r *Reader) List(key string) []any {
	value, ok := r.Value(key)
	if !ok {
		return nil
	}

	switch list := value.(type) {
	case []any:
		return list
	case []map[string]any:
		converted := make([]any, len(list))
		for i, entry := range list {
			converted[i] = entry
		}
		return converted
	case []int:
		converted := make([]any, len(list))
		for i, entry := range list {
			converted[i] = entry
		}
		return converted
	case []string:
		converted := make([]any, len(list))
		for i, entry := range list {
			converted[i] = entry
		}
		return converted
	}

	r.Fail(key, "expected list")
	return nil
}

// Each entry must be an object.
func (r *Reader) Objects(key string) []map[string]any {
	list := r.List(key)
	objects := make([]map[string]any, 0, len(list))
	for i, entry := range list {
		object, ok := entry.(map[string]any)
		if !ok {
			r.Fail(fmt.Sprintf("%s[%d]", key, i), "expected object")
			return nil
		}
		objects = append(objects, object)
	}
	return objects
}

func (r *Reader) Ints(key string) []int {
	list := r.List(key)
	ints := make([]int, 0, len(list))
	for i, entry := range list {
		number, ok := toInt64(entry)
		if !ok {
			r.Fail(fmt.Sprintf("%s[%d]", key, i), "expected integer")
			return nil
		}
		ints = append(ints, int(number))
	}
	return ints
}

func (r *Reader) Strings(key string) []string {
	list := r.List(key)
	strs := make([]string, 0, len(list))
	for i, entry := range list {
		str, ok := entry.(string)
		if !ok {
			r.Fail(fmt.Sprintf("%s[%d]", key, i), "expected string")
			return nil
		}
		strs = append(strs, str)
	}
	return strs
}

func (r *Reader) Err() error {
	return r.err
}

// Decoded JSON numbers are float64, so only integral values are accepted.
func toInt64(value any) (int64, bool) {
	switch number := value.(type) {
	case int:
		return int64(number), true
	case int32:
		return int64(number), true
	case int64:
		return number, true
	case float64:
		// MaxInt64 rounds up to 2^63 as a float64.
		if number != math.Trunc(number) || number < math.MinInt64 || number >= math.MaxInt64 {
			return 0, false
		}
		return int64(number), true
	case json.Number:
		parsed, err := number.Int64()
		return parsed, err == nil
	}
	return 0, false
}

// ToInt converts a decoded JSON number to a int, rejecting fractions and out of range values.
func ToInt(value any) (int, bool) {
	number, ok := toInt64(value)
	if !ok || int64(int(number)) != number {
		return 0, false
	}
	return int(number), true
}

func toFloat(value any) (float64, bool) {
	switch number := value.(type) {
	case int:
		return float64(number), true
	case int32:
		return float64(number), true
	case int64:
		return float64(number), true
	case float32:
		return float64(number), true
	case float64:
		return number, true
	case json.Number:
		parsed, err := number.Float64()
		return parsed, err == nil
	}
	return 0, false
}
