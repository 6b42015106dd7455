// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// NopSettings is a no-operation [Getter], [Setter] and [Fetcher].
// It holds no key.
type NopSettings struct{}

// Get returns a [KeyNotFoundError].
func (NopSettings) Get(key any) (any, error) {
	return nil, NewKeyNotFoundError(NormalizeKey(key))
}

// Fetch resolves the key as missing. See [Map.Fetch].
func (NopSettings) Fetch(key any, opts ...FetchOption) (any, error) {
	var empty Map

	return empty.Fetch(key, opts...)
}

// Set does nothing.
func (NopSettings) Set(_, _ any) {}
