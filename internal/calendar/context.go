package calendar

import (
	"sync"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// PlatformDefault returns the Gregorian calendar in the local time zone.
func PlatformDefault() Definition {
	return NewGregorian(time.Local)
}

// Context holds the active calendar definition and the clock used for
// "today". It is safe for concurrent use: readers share a read lock and
// SetDefinition/Reset take the write lock.
type Context struct {
	mu       sync.RWMutex
	def      Definition
	clock    Clock
	fallback func() Definition
}

// Option configures a Context.
type Option func(*Context)

// WithDefinition sets the initial definition.
func WithDefinition(d Definition) Option {
	return func(c *Context) { c.def = d }
}

// WithClock sets the clock used by Today, CurrentMonth and IsToday.
func WithClock(clock Clock) Option {
	return func(c *Context) { c.clock = clock }
}

// WithDefaultDefinition sets the constructor Reset restores from.
func WithDefaultDefinition(fn func() Definition) Option {
	return func(c *Context) { c.fallback = fn }
}

// NewContext creates a Context. Without options it uses PlatformDefault and
// the system clock.
func NewContext(opts ...Option) *Context {
	c := &Context{fallback: PlatformDefault}
	for _, opt := range opts {
		opt(c)
	}
	if c.fallback == nil {
		c.fallback = PlatformDefault
	}
	if c.def == nil {
		c.def = c.fallback()
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	return c
}

// Definition returns the active definition.
func (c *Context) Definition() Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.def
}

// SetDefinition replaces the active definition. A nil definition restores
// the default. All later computations observe the change.
func (c *Context) SetDefinition(d Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d == nil {
		d = c.fallback()
	}
	c.def = d
}

// Reset restores the default definition.
func (c *Context) Reset() {
	c.SetDefinition(nil)
}

// SetClock replaces the clock. A nil clock restores the system clock.
func (c *Context) SetClock(clock Clock) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if clock == nil {
		clock = SystemClock{}
	}
	c.clock = clock
}

// Now returns the current instant from the context's clock.
func (c *Context) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clock.Now()
}

// snapshot returns the definition and clock under a single read lock so one
// operation never mixes two definitions.
func (c *Context) snapshot() (Definition, Clock) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.def, c.clock
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the process-wide Context, creating it on first use.
func Default() *Context {
	defaultOnce.Do(func() {
		defaultCtx = NewContext()
	})
	return defaultCtx
}

// Get returns the definition of the process-wide Context.
func Get() Definition {
	return Default().Definition()
}

// Set replaces the definition of the process-wide Context.
func Set(d Definition) {
	Default().SetDefinition(d)
}

// Reset restores the platform default definition of the process-wide
// Context.
func Reset() {
	Default().Reset()
}
