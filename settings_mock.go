// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"sync/atomic"
)

// MockSettings is a mock for [Getter], [Setter] and [Fetcher] contracts, to be used in UT.
type MockSettings struct {
	store         *Map
	getCallsCnt   uint32
	fetchCallsCnt uint32
	getCallback   func(key any)
}

// NewMockSettings instantiates new mocked settings with given key-values.
// Make sure you pass an even number of elements.
// Usage example:
//
//	mock := xsettings.NewMockSettings(
//		"foo", "bar",
//		"year", 2022,
//	)
func NewMockSettings(kv ...any) *MockSettings {
	mock := &MockSettings{store: NewMap(nil)}
	mock.SetKeyValues(kv...)

	return mock
}

// Get mock logic.
func (mock *MockSettings) Get(key any) (any, error) {
	atomic.AddUint32(&mock.getCallsCnt, 1)
	if mock.getCallback != nil {
		mock.getCallback(key)
	}

	return mock.store.Get(key)
}

// Fetch mock logic.
func (mock *MockSettings) Fetch(key any, opts ...FetchOption) (any, error) {
	atomic.AddUint32(&mock.fetchCallsCnt, 1)

	return mock.store.Fetch(key, opts...)
}

// Set mock logic.
func (mock *MockSettings) Set(key, value any) {
	mock.store.Set(key, value)
}

// SetKeyValues sets/resets given key-values.
// Make sure you pass an even number of elements, a last odd element is skipped.
func (mock *MockSettings) SetKeyValues(kv ...any) {
	kvLen := len(kv)
	if kvLen%2 == 1 {
		kvLen-- // skip last element
	}
	for i := 0; i < kvLen; i += 2 {
		mock.store.Set(kv[i], kv[i+1])
	}
}

// SetGetCallback sets the given callback to be executed inside Get() method.
// You can inject yourself to make assertions upon passed parameter this way.
func (mock *MockSettings) SetGetCallback(callback func(key any)) {
	mock.getCallback = callback
}

// GetCallsCount returns the no. of times Get() method was called.
func (mock *MockSettings) GetCallsCount() int {
	return int(atomic.LoadUint32(&mock.getCallsCnt))
}

// FetchCallsCount returns the no. of times Fetch() method was called.
func (mock *MockSettings) FetchCallsCount() int {
	return int(atomic.LoadUint32(&mock.fetchCallsCnt))
}
