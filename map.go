// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/actforgood/xerr"
)

// Map is a strict-access settings map.
// Keys are normalized (see [KeyNormalizer]) before being stored or looked up,
// so "foo" and a Stringer returning "foo" address the same entry.
// Every nested map value, at any depth, is stored as a *Map as well (it gets
// converted on write), and looking up a missing key returns a [KeyNotFoundError].
//
// The zero value is an empty Map, ready to use, with [NormalizeKey] as normalizer.
// A Map is safe for concurrent use.
type Map struct {
	// entries is the normalized key - value storage.
	entries map[string]any
	// normalizer gives the canonical form of a key.
	normalizer KeyNormalizer
	// mu is a concurrency semaphore for accessing the entries.
	mu sync.RWMutex
}

// NewMap instantiates a new Map with the given body.
// Every body's entry is passed through [Map.Set], body itself is not modified.
func NewMap(body map[string]any, opts ...MapOption) *Map {
	m := &Map{
		entries:    make(map[string]any, len(body)),
		normalizer: NormalizeKey,
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(m)
	}

	for key, value := range body {
		m.Set(key, value)
	}

	return m
}

// Set maps the normalized key to value.
// If value is a map (map[string]any, map[any]any, or another *Map,
// which is copied), it is converted recursively into a *Map.
func (m *Map) Set(key, value any) {
	normKey := m.normalize(key)
	value = m.convert(value)

	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[string]any)
	}
	m.entries[normKey] = value
	m.mu.Unlock()
}

// Get returns the value of the normalized key.
// If the key does not exist, a [KeyNotFoundError] is returned.
func (m *Map) Get(key any) (any, error) {
	normKey := m.normalize(key)
	value, found := m.lookup(normKey)
	if !found {
		return nil, NewKeyNotFoundError(normKey)
	}

	return value, nil
}

// Has checks whether the normalized key exists.
func (m *Map) Has(key any) bool {
	_, found := m.lookup(m.normalize(key))

	return found
}

// Delete removes the normalized key and reports whether it existed.
func (m *Map) Delete(key any) bool {
	normKey := m.normalize(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.entries[normKey]; !found {
		return false
	}
	delete(m.entries, normKey)

	return true
}

// Len returns the no. of first level entries.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Keys returns the sorted first level keys.
func (m *Map) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	m.mu.RUnlock()
	sort.Strings(keys)

	return keys
}

// GetMap returns the nested *Map of the normalized key.
// An error wrapping [ErrNotAMap] is returned if the value is not a map.
func (m *Map) GetMap(key any) (*Map, error) {
	value, err := m.Get(key)
	if err != nil {
		return nil, err
	}
	nested, ok := value.(*Map)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAMap, m.normalize(key))
	}

	return nested, nil
}

// Path returns the value found by walking nested maps with the given keys.
//
// Example: given {"mysql": {"host": "127.0.0.1"}}, Path("mysql", "host")
// returns "127.0.0.1". A missing key makes a [KeyNotFoundError] be returned,
// holding the dot joined path walked so far.
func (m *Map) Path(keys ...any) (any, error) {
	var (
		current any = m
		walked      = make([]string, 0, len(keys))
	)
	for _, key := range keys {
		currMap, ok := current.(*Map)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotAMap, strings.Join(walked, "."))
		}
		normKey := currMap.normalize(key)
		walked = append(walked, normKey)
		value, found := currMap.lookup(normKey)
		if !found {
			return nil, NewKeyNotFoundError(strings.Join(walked, "."))
		}
		current = value
	}

	return current, nil
}

// Require checks that all given keys exist.
// The returned error, if any, holds a [KeyNotFoundError] for each missing key.
func (m *Map) Require(keys ...any) error {
	var mErr *xerr.MultiError
	for _, key := range keys {
		normKey := m.normalize(key)
		if _, found := m.lookup(normKey); !found {
			mErr = mErr.Add(NewKeyNotFoundError(normKey))
		}
	}

	return mErr.ErrOrNil()
}

// ToPlain converts the Map back into a plain map.
// Nested *Map values are converted too, so no *Map remains in the result.
func (m *Map) ToPlain() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plain := make(map[string]any, len(m.entries))
	for key, value := range m.entries {
		if nested, ok := value.(*Map); ok {
			plain[key] = nested.ToPlain()
		} else {
			plain[key] = value
		}
	}

	return plain
}

// MarshalJSON returns the JSON encoding of the plain form of the Map.
// It implements [json.Marshaler].
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToPlain())
}

// UnmarshalJSON replaces Map's content with the decoded JSON object.
// It implements [json.Unmarshaler].
func (m *Map) UnmarshalJSON(data []byte) error {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	entries := make(map[string]any, len(body))
	for key, value := range body {
		entries[m.normalize(key)] = m.convert(value)
	}
	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()

	return nil
}

// MarshalYAML returns the plain form of the Map to be YAML encoded.
// It implements yaml.Marshaler.
func (m *Map) MarshalYAML() (any, error) {
	return m.ToPlain(), nil
}

// lookup returns the value of an already normalized key.
func (m *Map) lookup(normKey string) (any, bool) {
	m.mu.RLock()
	value, found := m.entries[normKey]
	m.mu.RUnlock()

	return value, found
}

// normalize returns the canonical form of a key.
func (m *Map) normalize(key any) string {
	if m.normalizer == nil {
		return NormalizeKey(key)
	}

	return m.normalizer(key)
}

// convert turns a map value into a *Map sharing this Map's normalizer.
// Other values are returned as they are.
func (m *Map) convert(value any) any {
	plain, isMap := asPlainMap(value)
	if !isMap {
		return value
	}

	return NewMap(plain, MapWithKeyNormalizer(m.normalizer))
}

// MapOption defines optional function for configuring a Map.
type MapOption func(*Map)

// MapWithKeyNormalizer sets the function giving keys' canonical form.
// Nested maps inherit it.
//
// By default, [NormalizeKey] is used.
func MapWithKeyNormalizer(normalizer KeyNormalizer) MapOption {
	return func(m *Map) {
		if normalizer != nil {
			m.normalizer = normalizer
		}
	}
}
