// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// DeepCopy is a utility function to make a deep "copy"/clone of a settings tree.
// Nested map[string]any, map[any]any and [Map] values are copied into plain maps,
// []any, []string, []int slices are copied. Anything else is copied by value,
// so a pointer to a struct will still point to the same struct.
func DeepCopy(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = deepCopyValue(value)
	}

	return dst
}

// deepCopyValue returns a deep "copy" of a settings value.
func deepCopyValue(value any) any {
	switch val := value.(type) {
	case map[string]any:
		return DeepCopy(val)
	case map[any]any:
		dst := make(map[any]any, len(val))
		for key, item := range val {
			dst[key] = deepCopyValue(item)
		}

		return dst
	case *Map:
		if val == nil {
			return val
		}

		return DeepCopy(val.ToPlain())
	case []any:
		dst := make([]any, len(val))
		for idx, item := range val {
			dst[idx] = deepCopyValue(item)
		}

		return dst
	case []string:
		sliceCopy := make([]string, len(val))
		copy(sliceCopy, val)

		return sliceCopy
	case []int:
		sliceCopy := make([]int, len(val))
		copy(sliceCopy, val)

		return sliceCopy
	default:
		return value
	}
}
