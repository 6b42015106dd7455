// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import "github.com/spf13/cast"

// ConflictResolver decides the merged value of a key found in both
// destination and source trees, when the two values are not both maps.
// It can combine them, pick one of them, log the conflict, etc.
type ConflictResolver func(key string, dstValue, srcValue any) any

// SourceWins is a [ConflictResolver] which keeps the source's value.
// It has the same result as not passing any resolver.
func SourceWins(_ string, _, srcValue any) any {
	return srcValue
}

// DestinationWins is a [ConflictResolver] which keeps the destination's value.
// Keys missing from destination are still taken from source.
func DestinationWins(_ string, dstValue, _ any) any {
	return dstValue
}

// Merge deep merges src into a copy of dst and returns the result.
// Neither dst, nor src is modified, at any level.
//
// For each key in src:
//   - if both dst's and src's values are maps, they are merged recursively;
//   - else, if a resolver is given and dst has the key, the value is the
//     resolver's result;
//   - else, src's value is taken.
//
// Keys which are present only in dst are kept as they are.
// The optional resolver parameter is the conflict resolver; only the first
// one is taken into account.
// Trees must be acyclic.
func Merge(dst, src map[string]any, resolver ...ConflictResolver) map[string]any {
	dstCopy := make(map[string]any, len(dst)+len(src))
	for key, value := range dst {
		dstCopy[key] = value
	}

	return MergeInPlace(dstCopy, src, resolver...)
}

// MergeInPlace deep merges src into dst and returns dst.
// Only dst's first level is modified, nested maps get merged
// into new maps. See [Merge] for the merge rules.
// If dst is nil a new map is allocated.
//
// A merged nested value is always a plain map[string]any, even if dst held
// a [Map] (or a map[any]any) under that key; the replaced [Map] itself is
// left untouched. Wrap the result with [NewMap] to get [Map]s back.
func MergeInPlace(dst, src map[string]any, resolver ...ConflictResolver) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	var resolve ConflictResolver
	if len(resolver) > 0 {
		resolve = resolver[0]
	}

	for key, srcValue := range src {
		dstValue, found := dst[key]
		srcMap, srcIsMap := asPlainMap(srcValue)
		dstMap, dstIsMap := asPlainMap(dstValue)

		switch {
		case srcIsMap && dstIsMap:
			dst[key] = Merge(dstMap, srcMap, resolve)
		case resolve != nil && found:
			dst[key] = resolve(key, dstValue, srcValue)
		default:
			dst[key] = srcValue
		}
	}

	return dst
}

// asPlainMap returns the map[string]any form of a value, if the value is a map.
// It takes care of yaml like map[any]any maps and of [Map]s.
func asPlainMap(value any) (map[string]any, bool) {
	switch val := value.(type) {
	case map[string]any:
		return val, true
	case map[any]any:
		return cast.ToStringMap(val), true
	case *Map:
		if val == nil {
			return nil, false
		}

		return val.ToPlain(), true
	}

	return nil, false
}
