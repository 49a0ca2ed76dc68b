package domain

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

var validIDRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.:-]*$`)

func wrongType(raw any, want string) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrWrongType, "validation failed"), "want", want), "got", fmt.Sprintf("%T", raw))
}

// AsAny accepts every raw value unchanged.
func AsAny(raw any) (any, error) {
	return raw, nil
}

// AsString coerces scalars into their canonical string form.
// Strings pass unchanged, nil becomes the empty string, booleans and numbers are formatted
// with strconv. Maps and slices are rejected.
func AsString(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return nil, wrongType(raw, "string")
	}
}

// AsID validates a component id reference. Only strings are accepted; they are trimmed and
// must match the id grammar. Values of other types are rejected rather than coerced.
func AsID(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType(raw, "id")
	}
	s = strings.TrimSpace(s)
	if s == "" || !validIDRegex.MatchString(s) {
		return nil, zerr.With(zerr.Wrap(ErrInvalidID, "validation failed"), "id", s)
	}
	return s, nil
}

// AsBoolean accepts booleans and the strings "true" and "false" (case-insensitive).
func AsBoolean(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return nil, wrongType(raw, "boolean")
}

// AsNumber accepts any Go numeric kind and numeric strings and returns a float64.
func AsNumber(raw any) (any, error) {
	if f, ok := toFloat(raw); ok {
		return f, nil
	}
	if s, ok := raw.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) {
			return f, nil
		}
	}
	return nil, wrongType(raw, "number")
}

// AsNonNegativeNumber is AsNumber restricted to values >= 0.
func AsNonNegativeNumber(raw any) (any, error) {
	v, err := AsNumber(raw)
	if err != nil {
		return nil, err
	}
	if f := v.(float64); f < 0 {
		return nil, zerr.With(zerr.Wrap(ErrValueOutOfRange, "validation failed"), "value", f)
	}
	return v, nil
}

// AsInteger accepts numbers and truncates them towards zero, returning an int.
func AsInteger(raw any) (any, error) {
	if i, ok := raw.(int); ok {
		return i, nil
	}
	v, err := AsNumber(raw)
	if err != nil {
		return nil, err
	}
	f := v.(float64)
	if math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return nil, zerr.With(zerr.Wrap(ErrValueOutOfRange, "validation failed"), "value", f)
	}
	return int(f), nil
}

// AsNonNegativeInteger is AsInteger restricted to values >= 0.
func AsNonNegativeInteger(raw any) (any, error) {
	v, err := AsInteger(raw)
	if err != nil {
		return nil, err
	}
	if i := v.(int); i < 0 {
		return nil, zerr.With(zerr.Wrap(ErrValueOutOfRange, "validation failed"), "value", i)
	}
	return v, nil
}

// AsArray accepts slices unchanged and wraps any other non-nil value into a one-element slice.
func AsArray(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return v, nil
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, nil
	default:
		return []any{v}, nil
	}
}

// AsEnum returns a validator accepting only the given string values.
func AsEnum(values ...string) Validator {
	return func(raw any) (any, error) {
		s, ok := raw.(string)
		if !ok {
			return nil, wrongType(raw, "enum")
		}
		if !slices.Contains(values, s) {
			return nil, zerr.With(zerr.Wrap(ErrUnknownEnumValue, "validation failed"), "value", s)
		}
		return s, nil
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
