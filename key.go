// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// KeyNormalizer coerces a key of any type into its canonical form.
// A [Map] stores, compares and looks up keys only in this form.
type KeyNormalizer func(key any) string

// NormalizeKey is the default [KeyNormalizer].
// Strings are kept as they are, [fmt.Stringer]s give their String() and
// the rest is stringified with [cast.ToStringE], falling back to [fmt.Sprint].
// So "port", a custom Key("port") string type and a Stringer returning
// "port" all end up being the same key.
func NormalizeKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	}

	if str, err := cast.ToStringE(key); err == nil {
		return str
	}

	return fmt.Sprint(key)
}

// CaseInsensitiveKeys is a [KeyNormalizer] which ignores keys' case sensitivity.
// It lowercases the form produced by [NormalizeKey].
//
// Usage example:
//
//	m := xsettings.NewMap(body, xsettings.MapWithKeyNormalizer(xsettings.CaseInsensitiveKeys))
//	v1, _ := m.Get("foo")
//	v2, _ := m.Get("FOO")
//	// v1 == v2
func CaseInsensitiveKeys(key any) string {
	return strings.ToLower(NormalizeKey(key))
}
