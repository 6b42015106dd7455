// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings_test

import (
	"fmt"
	"testing"

	"github.com/actforgood/xsettings"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("success - nested maps are merged, dst and src are not modified", testMergeWithoutModification)
	t.Run("success - src wins on scalar conflict", testMergeSourceWins)
	t.Run("success - resolver arbitrates conflicts", testMergeWithResolver)
	t.Run("success - resolver is not called for new keys", testMergeResolverNotCalledForNewKeys)
	t.Run("success - map replaces scalar and vice versa", testMergeMapVsScalar)
	t.Run("success - yaml and Map nested values are merged", testMergeWithInterfaceMapAndMap)
	t.Run("success - idempotent", testMergeIsIdempotent)
	t.Run("success - nil trees", testMergeNilTrees)
}

func testMergeWithoutModification(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{
			"foo":   map[string]any{"bar": "baz"},
			"hello": "world",
		}
		src = map[string]any{
			"foo": map[string]any{"bar": "ham"},
		}
		subject = xsettings.Merge
	)

	// act
	result := subject(dst, src)

	// assert
	assertEqual(
		t,
		map[string]any{
			"foo":   map[string]any{"bar": "ham"},
			"hello": "world",
		},
		result,
	)
	assertEqual(
		t,
		map[string]any{
			"foo":   map[string]any{"bar": "baz"},
			"hello": "world",
		},
		dst,
	)
	assertEqual(t, map[string]any{"foo": map[string]any{"bar": "ham"}}, src)
}

func testMergeSourceWins(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{
			"a": 1,
			"b": map[string]any{"c": "dst c", "d": "dst d"},
		}
		src = map[string]any{
			"a": 2,
			"b": map[string]any{"c": "src c", "e": "src e"},
			"f": "src f",
		}
		subject = xsettings.Merge
	)

	// act
	result := subject(dst, src)

	// assert
	assertEqual(
		t,
		map[string]any{
			"a": 2,
			"b": map[string]any{"c": "src c", "d": "dst d", "e": "src e"},
			"f": "src f",
		},
		result,
	)
}

func testMergeWithResolver(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{
			"timeout": 10,
			"db":      map[string]any{"port": 3306},
		}
		src = map[string]any{
			"timeout": 20,
			"db":      map[string]any{"port": 3307},
		}
		calls    []string
		resolver = func(key string, dstValue, srcValue any) any {
			calls = append(calls, key)

			return dstValue.(int) + srcValue.(int)
		}
		subject = xsettings.Merge
	)

	// act
	result := subject(dst, src, resolver)

	// assert
	assertEqual(
		t,
		map[string]any{
			"timeout": 30,
			"db":      map[string]any{"port": 6613},
		},
		result,
	)
	assertEqual(t, 2, len(calls))
}

func testMergeResolverNotCalledForNewKeys(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst      = map[string]any{"foo": "bar"}
		src      = map[string]any{"baz": "qux"}
		calls    int
		resolver = func(_ string, _, _ any) any {
			calls++

			return "resolved"
		}
		subject = xsettings.MergeInPlace
	)

	// act
	result := subject(dst, src, resolver)

	// assert
	assertEqual(t, map[string]any{"foo": "bar", "baz": "qux"}, result)
	assertEqual(t, 0, calls)
}

func testMergeMapVsScalar(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{
			"scalar_to_map": "scalar",
			"map_to_scalar": map[string]any{"foo": "bar"},
		}
		src = map[string]any{
			"scalar_to_map": map[string]any{"foo": "bar"},
			"map_to_scalar": "scalar",
		}
		subject = xsettings.Merge
	)

	// act
	result := subject(dst, src)

	// assert
	assertEqual(
		t,
		map[string]any{
			"scalar_to_map": map[string]any{"foo": "bar"},
			"map_to_scalar": "scalar",
		},
		result,
	)
}

func testMergeWithInterfaceMapAndMap(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{
			"yaml": map[any]any{"x": "X", "y": "Y"},
			"map":  xsettings.NewMap(map[string]any{"en": "Hello", "es": "Ola"}),
		}
		src = map[string]any{
			"yaml": map[string]any{"y": "YY"},
			"map":  map[any]any{"en": "Hi"},
		}
		subject = xsettings.Merge
	)

	// act
	result := subject(dst, src)

	// assert
	assertEqual(
		t,
		map[string]any{
			"yaml": map[string]any{"x": "X", "y": "YY"},
			"map":  map[string]any{"en": "Hi", "es": "Ola"},
		},
		result,
	)
}

func testMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		tree = map[string]any{
			"foo": map[string]any{
				"bar": map[string]any{"baz": "qux"},
				"n":   1,
			},
			"hello": "world",
		}
		subject = xsettings.Merge
	)

	// act
	result := subject(tree, tree)

	// assert
	assertEqual(t, tree, result)
}

func testMergeNilTrees(t *testing.T) {
	t.Parallel()

	// act
	result1 := xsettings.Merge(nil, map[string]any{"foo": "bar"})
	result2 := xsettings.Merge(map[string]any{"foo": "bar"}, nil)
	result3 := xsettings.MergeInPlace(nil, map[string]any{"foo": "bar"})

	// assert
	assertEqual(t, map[string]any{"foo": "bar"}, result1)
	assertEqual(t, map[string]any{"foo": "bar"}, result2)
	assertEqual(t, map[string]any{"foo": "bar"}, result3)
}

func TestMergeInPlace(t *testing.T) {
	t.Parallel()

	t.Run("success - dst is modified and returned", testMergeInPlaceWithModification)
	t.Run("success - same result as Merge", testMergeInPlaceSameResultAsMerge)
	t.Run("success - nested dst maps are not modified", testMergeInPlaceDoesNotModifyNestedDst)
}

func testMergeInPlaceWithModification(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{
			"foo":   map[string]any{"bar": "baz"},
			"hello": "world",
		}
		src = map[string]any{
			"foo": map[string]any{"bar": "ham"},
		}
		subject = xsettings.MergeInPlace
	)

	// act
	result := subject(dst, src)

	// assert
	expected := map[string]any{
		"foo":   map[string]any{"bar": "ham"},
		"hello": "world",
	}
	assertEqual(t, expected, result)
	assertEqual(t, expected, dst)
	assertEqual(t, map[string]any{"foo": map[string]any{"bar": "ham"}}, src)
	result["new"] = "key"
	_, found := dst["new"]
	assertTrue(t, found) // dst is the returned map
}

func testMergeInPlaceSameResultAsMerge(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		newDst = func() map[string]any {
			return map[string]any{
				"a": map[string]any{"b": map[string]any{"c": 1, "d": 2}},
				"e": []string{"x", "y"},
			}
		}
		src = map[string]any{
			"a": map[string]any{"b": map[string]any{"c": 10}, "f": 3},
			"e": []string{"z"},
		}
	)

	// act
	merged := xsettings.Merge(newDst(), src)
	mergedInPlace := xsettings.MergeInPlace(newDst(), src)

	// assert
	assertEqual(t, merged, mergedInPlace)
}

func testMergeInPlaceDoesNotModifyNestedDst(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		nested = map[string]any{"bar": "baz"}
		dst    = map[string]any{"foo": nested}
		src    = map[string]any{"foo": map[string]any{"bar": "ham"}}
	)

	// act
	_ = xsettings.MergeInPlace(dst, src)

	// assert
	assertEqual(t, map[string]any{"bar": "baz"}, nested)
}

func TestConflictResolvers(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		dst = map[string]any{"foo": "dst foo", "bar": "dst bar"}
		src = map[string]any{"foo": "src foo", "baz": "src baz"}
	)

	// act
	srcWins := xsettings.Merge(dst, src, xsettings.SourceWins)
	dstWins := xsettings.Merge(dst, src, xsettings.DestinationWins)

	// assert
	assertEqual(t, map[string]any{"foo": "src foo", "bar": "dst bar", "baz": "src baz"}, srcWins)
	assertEqual(t, map[string]any{"foo": "dst foo", "bar": "dst bar", "baz": "src baz"}, dstWins)
}

func BenchmarkMerge(b *testing.B) {
	var (
		dst = map[string]any{
			"foo":  "bar",
			"year": 2022,
			"db":   map[string]any{"host": "127.0.0.1", "port": 3306},
		}
		src = map[string]any{
			"year": 2023,
			"db":   map[string]any{"port": 3307},
		}
	)
	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = xsettings.Merge(dst, src)
	}
}

func TestMergeInPlace_replacesNestedMapWithPlainMap(t *testing.T) {
	t.Parallel()

	// arrange
	var (
		nested = xsettings.NewMap(map[string]any{"host": "localhost"})
		dst    = map[string]any{"db": nested}
		src    = map[string]any{"db": map[string]any{"port": 3306}}
	)

	// act
	result := xsettings.MergeInPlace(dst, src)

	// assert
	merged, isPlain := result["db"].(map[string]any)
	if assertTrue(t, isPlain) {
		assertEqual(t, map[string]any{"host": "localhost", "port": 3306}, merged)
	}
	assertEqual(t, map[string]any{"host": "localhost"}, nested.ToPlain())
	assertFalse(t, nested.Has("port"))
}

func ExampleMerge() {
	defaults := map[string]any{
		"db":    map[string]any{"host": "localhost", "port": 3306},
		"debug": false,
	}
	overrides := map[string]any{
		"db":    map[string]any{"host": "10.0.0.1"},
		"debug": true,
	}

	merged := xsettings.Merge(defaults, overrides)
	fmt.Println(merged["db"], merged["debug"])
	fmt.Println(defaults["db"], defaults["debug"])

	// Output:
	// map[host:10.0.0.1 port:3306] true
	// map[host:localhost port:3306] false
}
