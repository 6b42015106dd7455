// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"reflect"
	"strings"
)

// Settings is an owner type's settings object, backed by a [Map].
// Embed a *Settings into your own type to give it settings capabilities,
// and obtain instances from a [Container].
//
// Usage example:
//
//	type Configuration struct {
//		*xsettings.Settings
//	}
//
//	var configuration = xsettings.NewContainer(
//		func(s *xsettings.Settings) *Configuration { return &Configuration{s} },
//		xsettings.ContainerWithDefaults(map[string]any{"hello": "world"}),
//	)
//
//	hello, _ := configuration.Instance().Get("hello") // "world"
type Settings struct {
	// owner is the name of the owner type, used in errors.
	owner string
	// store is the backing map.
	store *Map
}

// newSettings instantiates the settings of an owner.
// initial is deep merged over defaults, none of them is modified.
// Both trees get their keys normalized before merging, so keys which
// normalize to the same form are merged as one key.
func newSettings(owner string, defaults, initial map[string]any, cfg containerConfig) *Settings {
	merged := Merge(
		NewMap(defaults, MapWithKeyNormalizer(cfg.normalizer)).ToPlain(),
		NewMap(initial, MapWithKeyNormalizer(cfg.normalizer)).ToPlain(),
		cfg.resolver,
	)

	return &Settings{
		owner: owner,
		store: NewMap(merged, MapWithKeyNormalizer(cfg.normalizer)),
	}
}

// Get returns the value of a key, or a [KeyNotFoundError].
func (s *Settings) Get(key any) (any, error) {
	return s.store.Get(key)
}

// Set maps a key to a value. Map values are converted into [Map]s.
func (s *Settings) Set(key, value any) {
	s.store.Set(key, value)
}

// Has checks whether a key exists.
func (s *Settings) Has(key any) bool {
	return s.store.Has(key)
}

// Fetch returns the value of a key, resolving a missing one
// with given options. See [Map.Fetch].
func (s *Settings) Fetch(key any, opts ...FetchOption) (any, error) {
	return s.store.Fetch(key, opts...)
}

// Map returns the backing map.
func (s *Settings) Map() *Map {
	return s.store
}

// ToPlain returns the settings as a plain tree.
func (s *Settings) ToPlain() map[string]any {
	return s.store.ToPlain()
}

// Owner returns the name of the owner type.
func (s *Settings) Owner() string {
	return s.owner
}

// Build calls fn with the settings and returns them, enabling a
// "configure, then keep using" fluent style.
//
// Usage example:
//
//	settings := configuration.New(nil).Build(func(s *xsettings.Settings) {
//		s.Set("port", 8080)
//	})
func (s *Settings) Build(fn func(*Settings)) *Settings {
	fn(s)

	return s
}

// Call resolves an attribute style access by member name.
//
// A "name=" member with exactly one argument sets name to that argument and
// returns it. Any other member with no arguments gets the member's value.
// A member ending in "?" or "!", more than one argument, a function argument,
// or a plain member with one argument result in a [MethodNotFoundError].
//
// Usage example:
//
//	_, _ = settings.Call("foo=", "bar")
//	foo, _ := settings.Call("foo") // "bar"
func (s *Settings) Call(member string, args ...any) (any, error) {
	if len(args) > 1 || hasFuncArg(args) || strings.HasSuffix(member, "?") || strings.HasSuffix(member, "!") {
		return nil, NewMethodNotFoundError(s.owner, member)
	}

	if name, isSetter := strings.CutSuffix(member, "="); isSetter && len(args) == 1 {
		s.Set(name, args[0])

		return args[0], nil
	}
	if len(args) == 0 {
		return s.Get(member)
	}

	return nil, NewMethodNotFoundError(s.owner, member)
}

// hasFuncArg checks whether any of the arguments is a function.
func hasFuncArg(args []any) bool {
	for _, arg := range args {
		if arg != nil && reflect.TypeOf(arg).Kind() == reflect.Func {
			return true
		}
	}

	return false
}
