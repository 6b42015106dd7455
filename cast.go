// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// ErrCast is the error wrapped by [As] when a value cannot be casted.
var ErrCast = errors.New("cannot cast value")

// As casts a settings value to V.
// Basic types (string, bool, int, uint, float, and their flavours),
// time.Duration, time.Time, []int, []string, map[string]any (from a [Map] too)
// are casted with [cast]; any other V requires value to be a V already.
// An error wrapping [ErrCast] is returned if the cast fails.
func As[V any](value any) (V, error) {
	var zero V
	castedValue, err := castValue(value, any(zero))
	if err != nil {
		return zero, fmt.Errorf("%w to %T: %v", ErrCast, zero, err)
	}
	if castedValue == nil { // nil value for a non basic V.
		return zero, nil
	}
	result, ok := castedValue.(V)
	if !ok {
		return zero, fmt.Errorf("%w %T to %T", ErrCast, value, zero)
	}

	return result, nil
}

// castValue casts a value to target's type.
// Not supported target types get the value directly.
func castValue(value, target any) (any, error) {
	switch target.(type) {
	case string:
		return cast.ToStringE(value)
	case int:
		return cast.ToIntE(value)
	case uint:
		return cast.ToUintE(value)
	case float64:
		return cast.ToFloat64E(value)
	case bool:
		return cast.ToBoolE(value)
	case time.Duration:
		return cast.ToDurationE(value)
	case int64:
		return cast.ToInt64E(value)
	case int32:
		return cast.ToInt32E(value)
	case int16:
		return cast.ToInt16E(value)
	case int8:
		return cast.ToInt8E(value)
	case uint64:
		return cast.ToUint64E(value)
	case uint32:
		return cast.ToUint32E(value)
	case uint16:
		return cast.ToUint16E(value)
	case uint8:
		return cast.ToUint8E(value)
	case float32:
		return cast.ToFloat32E(value)
	case time.Time:
		return cast.ToTimeE(value)
	case []string:
		return cast.ToStringSliceE(value)
	case []int:
		return cast.ToIntSliceE(value)
	case map[string]any:
		if plain, ok := asPlainMap(value); ok {
			return plain, nil
		}

		return cast.ToStringMapE(value)
	default:
		return value, nil
	}
}
