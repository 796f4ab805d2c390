package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/cliglue/types"
)

var (
	ErrNotInteger  = errors.New("not an integer")
	ErrNotFloat    = errors.New("not a number")
	ErrUnknownType = errors.New("unknown value type")
)

// Coerce converts a raw token to the Go value of valueType:
//
//	String, Choice, Any -> string
//	Int                 -> int (decimal, leading zeros allowed)
//	Float               -> float64
//	Bool                -> bool
//	Time                -> time.Time (any layout dateparse understands, local time zone)
//	Duration            -> time.Duration
func Coerce(value string, valueType types.ValueType) (any, error) {
	switch valueType {
	case types.Any, types.String, types.Choice:
		return value, nil
	case types.Int:
		i, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, strconv.ErrRange
			}
			return nil, ErrNotInteger
		}
		return int(i), nil
	case types.Float:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, ErrNotFloat
		}
		return f, nil
	case types.Bool:
		return strconv.ParseBool(value)
	case types.Time:
		return dateparse.ParseLocal(value)
	case types.Duration:
		return time.ParseDuration(value)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownType, valueType)
}

// CoerceList converts every value and returns a typed slice ([]int for Int, []string for
// String and so on). The index of the first failing value is returned alongside the error.
func CoerceList(values []string, valueType types.ValueType) (any, int, error) {
	switch valueType {
	case types.Int:
		return coerceList[int](values, valueType)
	case types.Float:
		return coerceList[float64](values, valueType)
	case types.Bool:
		return coerceList[bool](values, valueType)
	case types.Time:
		return coerceList[time.Time](values, valueType)
	case types.Duration:
		return coerceList[time.Duration](values, valueType)
	}

	return coerceList[string](values, valueType)
}

func coerceList[T any](values []string, valueType types.ValueType) (any, int, error) {
	out := make([]T, 0, len(values))
	for i, v := range values {
		c, err := Coerce(v, valueType)
		if err != nil {
			return nil, i, err
		}
		out = append(out, c.(T))
	}

	return out, -1, nil
}
