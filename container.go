// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

package xsettings

import (
	"fmt"
	"sync"

	"github.com/actforgood/xlog"
)

// Container holds an owner type's default settings and its settings singleton.
// Declare one per owner type, usually as a package level variable.
// T is the owner type, which embeds *[Settings], see [Settings] for an example.
//
// A Container is safe for concurrent use, the singleton gets built exactly once.
type Container[T any] struct {
	containerConfig
	// wrap makes an owner object out of its settings.
	wrap func(*Settings) T
	// defaults are the current default settings.
	defaults map[string]any
	// instance is the singleton, valid if built is true.
	instance T
	// settings are singleton's settings.
	settings *Settings
	// built is a flag indicating whether the singleton was built.
	built bool
	// mu is a concurrency semaphore for accessing the defaults / singleton.
	mu sync.Mutex
}

// NewContainer instantiates a new Container.
// The first parameter makes an owner object out of its settings, it must not
// be nil and it must not call back into the container.
// The second parameter represents a list of optional functions to configure the object.
func NewContainer[T any](wrap func(*Settings) T, opts ...ContainerOption) *Container[T] {
	var zero T
	c := &Container[T]{
		containerConfig: containerConfig{
			name:       fmt.Sprintf("%T", zero),
			normalizer: NormalizeKey,
		},
		wrap: wrap,
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(&c.containerConfig)
	}
	c.declaredDefaults = DeepCopy(c.declaredDefaults)
	c.defaults = DeepCopy(c.declaredDefaults)

	return c
}

// NewSettingsContainer instantiates a new Container for plain [Settings],
// when no owner type is needed.
func NewSettingsContainer(opts ...ContainerOption) *Container[*Settings] {
	return NewContainer(func(s *Settings) *Settings { return s }, opts...)
}

// DefaultSettings returns the current default settings, or an empty map if
// there are none. If a value is passed, it replaces the default settings first
// (the last one wins, no merge is performed).
// Both the stored and the returned maps are copies, so neither the passed value,
// nor the returned one can alter the defaults later.
//
// Defaults are read when an instance is created; changing them does not
// affect already created instances.
//
// Usage example:
//
//	configuration.DefaultSettings(map[string]any{"hello": "world", "foo": "baz"})
//	defaults := configuration.DefaultSettings()
func (c *Container[T]) DefaultSettings(value ...map[string]any) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(value) > 0 {
		c.defaults = DeepCopy(value[0])
	}
	if c.defaults == nil {
		return map[string]any{}
	}

	return DeepCopy(c.defaults)
}

// Instance returns the settings singleton. It gets built at first call,
// from the default settings of that moment; later calls return the same object.
func (c *Container[T]) Instance() T {
	instance, _ := c.load()

	return instance
}

// New returns a new, non singleton, owner object, with initial settings
// deep merged over the default settings.
func (c *Container[T]) New(initial map[string]any) T {
	settings := newSettings(c.name, c.DefaultSettings(), initial, c.containerConfig)

	return c.wrap(settings)
}

// Configure calls fn with the singleton and returns the singleton.
// It is the [Settings.Build] of the singleton.
//
// Usage example:
//
//	cfg := configuration.Configure(func(cfg *Configuration) {
//		cfg.Set("port", 8080)
//	})
func (c *Container[T]) Configure(fn func(T)) T {
	instance, _ := c.load()
	fn(instance)

	return instance
}

// Reset drops the singleton. Next [Container.Instance] call builds a new one,
// from the default settings of that moment. Default settings are kept.
// It is meant for tests isolation.
func (c *Container[T]) Reset() {
	c.mu.Lock()
	var zero T
	c.instance = zero
	c.settings = nil
	c.built = false
	c.mu.Unlock()

	c.logDebug("settings instance reset")
}

// RestoreDefaults replaces the current default settings with the ones declared
// with [ContainerWithDefaults] (an empty map if none were declared).
// The singleton, if built, is not affected; call [Container.Reset] for that.
func (c *Container[T]) RestoreDefaults() {
	c.mu.Lock()
	c.defaults = DeepCopy(c.declaredDefaults)
	c.mu.Unlock()

	c.logDebug("default settings restored")
}

// Get returns the singleton's value of a key, or a [KeyNotFoundError].
func (c *Container[T]) Get(key any) (any, error) {
	_, settings := c.load()

	return settings.Get(key)
}

// Set maps a key to a value on the singleton.
func (c *Container[T]) Set(key, value any) {
	_, settings := c.load()
	settings.Set(key, value)
}

// Has checks whether the singleton has a key.
func (c *Container[T]) Has(key any) bool {
	_, settings := c.load()

	return settings.Has(key)
}

// Fetch returns the singleton's value of a key, resolving a missing one
// with given options. See [Map.Fetch].
func (c *Container[T]) Fetch(key any, opts ...FetchOption) (any, error) {
	_, settings := c.load()

	return settings.Fetch(key, opts...)
}

// Call resolves an attribute style access by member name on the singleton.
// See [Settings.Call].
func (c *Container[T]) Call(member string, args ...any) (any, error) {
	_, settings := c.load()

	return settings.Call(member, args...)
}

// Name returns the owner's name.
func (c *Container[T]) Name() string {
	return c.name
}

// load returns the singleton and its settings, building them if needed.
func (c *Container[T]) load() (T, *Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.built {
		c.settings = newSettings(c.name, DeepCopy(c.defaults), nil, c.containerConfig)
		c.instance = c.wrap(c.settings)
		c.built = true
		c.logDebug("settings instance built")
	}

	return c.instance, c.settings
}

// logDebug logs a debug message about this container, if a logger was configured.
func (c *Container[T]) logDebug(msg string) {
	if c.logger != nil {
		c.logger.Debug(
			xlog.MessageKey, "[xsettings] "+msg,
			"owner", c.name,
		)
	}
}

// containerConfig holds a Container's options.
type containerConfig struct {
	// name is the owner's name, shown in errors and logs.
	name string
	// declaredDefaults are the default settings given at declaration time.
	declaredDefaults map[string]any
	// resolver arbitrates defaults vs initial settings conflicts.
	resolver ConflictResolver
	// normalizer gives the canonical form of settings' keys.
	normalizer KeyNormalizer
	// logger logs container's lifecycle.
	logger xlog.Logger
}

// ContainerOption defines optional function for configuring a Container.
type ContainerOption func(*containerConfig)

// ContainerWithDefaults declares the default settings.
// They are also the ones [Container.RestoreDefaults] restores.
func ContainerWithDefaults(defaults map[string]any) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.declaredDefaults = defaults
	}
}

// ContainerWithName sets the owner's name.
// By default, the name of the owner's type is used.
func ContainerWithName(name string) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.name = name
	}
}

// ContainerWithConflictResolver sets the resolver used when merging
// initial settings over default settings.
// By default, there is none, initial settings win.
func ContainerWithConflictResolver(resolver ConflictResolver) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.resolver = resolver
	}
}

// ContainerWithKeyNormalizer sets the settings' [KeyNormalizer].
// By default, [NormalizeKey] is used.
func ContainerWithKeyNormalizer(normalizer KeyNormalizer) ContainerOption {
	return func(cfg *containerConfig) {
		if normalizer != nil {
			cfg.normalizer = normalizer
		}
	}
}

// ContainerWithLogger sets a logger for container's lifecycle events
// (singleton built / reset), logged at debug level.
// By default, nothing is logged.
func ContainerWithLogger(logger xlog.Logger) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.logger = logger
	}
}
