// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// Getter provides prototype for strict settings lookup.
type Getter interface {
	// Get returns the value of a key, or a [KeyNotFoundError].
	Get(key any) (any, error)
}

// Setter provides prototype for storing settings.
type Setter interface {
	// Set maps a key to a value.
	Set(key, value any)
}

// Fetcher provides prototype for settings lookup resolving missing keys.
type Fetcher interface {
	// Fetch returns the value of a key, or the value resolved by options.
	Fetch(key any, opts ...FetchOption) (any, error)
}

// Accessor is a typed, named accessor for a setting.
// Declare them once, next to the default settings, and use them instead of
// raw string keys.
//
// Usage example:
//
//	var (
//		Port    = xsettings.NewAccessor[int]("port")
//		Timeout = xsettings.NewAccessor[time.Duration]("timeout")
//	)
//	port, err := Port.Get(settings)
//	Timeout.Set(settings, 3*time.Second)
type Accessor[V any] struct {
	key any // the setting's key.
}

// NewAccessor instantiates a new Accessor for given key.
func NewAccessor[V any](key any) Accessor[V] {
	return Accessor[V]{key: key}
}

// Key returns accessor's key.
func (a Accessor[V]) Key() any {
	return a.key
}

// Get returns the setting casted to V (see [As]).
// The error is a [KeyNotFoundError] or a cast one.
func (a Accessor[V]) Get(src Getter) (V, error) {
	value, err := src.Get(a.key)
	if err != nil {
		var zero V

		return zero, err
	}

	return As[V](value)
}

// Fetch returns the setting casted to V, or def if the key
// is not found or casting fails.
func (a Accessor[V]) Fetch(src Fetcher, def V) V {
	value, err := src.Fetch(a.key, FetchWithDefault(def))
	if err != nil {
		return def
	}
	result, err := As[V](value)
	if err != nil {
		return def
	}

	return result
}

// Set stores the setting.
func (a Accessor[V]) Set(dst Setter, value V) {
	dst.Set(a.key, value)
}
