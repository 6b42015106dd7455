// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

// fetchOptions holds what a Fetch can resolve a missing key with.
type fetchOptions struct {
	def      any        // default value.
	hasDef   bool       // flag indicating a default value was given (nil is a valid default).
	fallback func() any // fallback producing the value.
}

// FetchOption defines optional function for resolving a missing key on Fetch.
type FetchOption func(*fetchOptions)

// FetchWithDefault sets the value to be returned if the key is not found.
func FetchWithDefault(value any) FetchOption {
	return func(opts *fetchOptions) {
		opts.def = value
		opts.hasDef = true
	}
}

// FetchWithFallback sets the function to be called, once, if the key is not found.
// It takes precedence over [FetchWithDefault].
func FetchWithFallback(fallback func() any) FetchOption {
	return func(opts *fetchOptions) {
		opts.fallback = fallback
	}
}

// Fetch returns the value of the normalized key.
// If the key does not exist, the fallback is called and its result returned,
// if [FetchWithFallback] was applied, otherwise the [FetchWithDefault] value
// is returned. If none of them was applied, a [KeyNotFoundError] is returned.
//
// Usage example:
//
//	port, _ := m.Fetch("port", xsettings.FetchWithDefault(8080))
//	host, _ := m.Fetch("host", xsettings.FetchWithFallback(func() any {
//		return os.Getenv("HOSTNAME")
//	}))
func (m *Map) Fetch(key any, opts ...FetchOption) (any, error) {
	normKey := m.normalize(key)
	if value, found := m.lookup(normKey); found {
		return value, nil
	}

	var fetchOpts fetchOptions
	for _, opt := range opts {
		opt(&fetchOpts)
	}

	switch {
	case fetchOpts.fallback != nil:
		return fetchOpts.fallback(), nil
	case fetchOpts.hasDef:
		return fetchOpts.def, nil
	default:
		return nil, NewKeyNotFoundError(normKey)
	}
}
