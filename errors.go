// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is the error every [KeyNotFoundError] matches with [errors.Is].
	ErrKeyNotFound = errors.New("key not found")
	// ErrMethodNotFound is the error every [MethodNotFoundError] matches with [errors.Is].
	ErrMethodNotFound = errors.New("method not found")
	// ErrNotAMap is returned by [Map.GetMap] and [Map.Path] when a value
	// that should be a nested map is a scalar.
	ErrNotAMap = errors.New("value is not a map")
)

// KeyNotFoundError is an error returned by [Map] strict lookups
// when the (normalized) key is absent and nothing else resolves it.
type KeyNotFoundError struct {
	key string // the normalized, missing key
}

// NewKeyNotFoundError instantiates a new KeyNotFoundError.
// The missing key must be provided.
func NewKeyNotFoundError(key string) KeyNotFoundError {
	return KeyNotFoundError{key: key}
}

// Key returns the missing key.
func (e KeyNotFoundError) Key() string {
	return e.key
}

// Error returns string representation of the KeyNotFoundError.
// It implements standard go error interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf(`key not found: "%s"`, e.key)
}

// Is reports whether target is [ErrKeyNotFound].
func (e KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// MethodNotFoundError is an error returned by [Settings.Call] when
// the member name / arguments shape is neither a getter nor a setter.
type MethodNotFoundError struct {
	owner  string // the owner the call was made on.
	member string // the attempted member name.
}

// NewMethodNotFoundError instantiates a new MethodNotFoundError.
func NewMethodNotFoundError(owner, member string) MethodNotFoundError {
	return MethodNotFoundError{owner: owner, member: member}
}

// Owner returns the name of the owner the call was made on.
func (e MethodNotFoundError) Owner() string {
	return e.owner
}

// Member returns the attempted member name.
func (e MethodNotFoundError) Member() string {
	return e.member
}

// Error returns string representation of the MethodNotFoundError.
// It implements standard go error interface.
func (e MethodNotFoundError) Error() string {
	return fmt.Sprintf("undefined method `%s' called on %s", e.member, e.owner)
}

// Is reports whether target is [ErrMethodNotFound].
func (e MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}
