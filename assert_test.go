// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings_test

import (
	"reflect"
	"testing"
)

// assertEqual checks if 2 values are equal.
// Returns successful assertion status.
func assertEqual(t *testing.T, expected, actual any) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf(
			"\n\t"+`expected "%+v" (%T),`+
				"\n\t"+`but got  "%+v" (%T)`+"\n",
			expected, expected,
			actual, actual,
		)

		return false
	}

	return true
}

// assertNotEqual checks if 2 values are not equal.
// Returns successful assertion status.
func assertNotEqual(t *testing.T, notExpected, actual any) bool {
	t.Helper()
	if reflect.DeepEqual(notExpected, actual) {
		t.Errorf("\n\texpected values to be different, got %+v (%T)\n", actual, actual)

		return false
	}

	return true
}

// assertTrue checks if value passed is true.
// Returns successful assertion status.
func assertTrue(t *testing.T, actual bool) bool {
	t.Helper()
	if !actual {
		t.Error("expected true, but got false")

		return false
	}

	return true
}

// assertFalse checks if value passed is false.
// Returns successful assertion status.
func assertFalse(t *testing.T, actual bool) bool {
	t.Helper()
	if actual {
		t.Error("expected false, but got true")

		return false
	}

	return true
}

// assertNil checks if value passed is nil.
// Returns successful assertion status.
func assertNil(t *testing.T, actual any) bool {
	t.Helper()
	if !isNil(actual) {
		t.Errorf("expected nil, but got %+v (%T)", actual, actual)

		return false
	}

	return true
}

// assertNotNil checks if value passed is not nil.
// Returns successful assertion status.
func assertNotNil(t *testing.T, actual any) bool {
	t.Helper()
	if isNil(actual) {
		t.Error("expected not nil, but got nil")

		return false
	}

	return true
}

// isNil checks an interface if it is nil, or holds a nil value.
func isNil(object any) bool {
	if object == nil {
		return true
	}

	value := reflect.ValueOf(object)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	}

	return false
}
