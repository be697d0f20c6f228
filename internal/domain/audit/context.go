// Package audit defines the contract every analyzer implements and the
// per-run shared context they communicate through.
package audit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pagelens/pagelens/internal/domain"
)

// ErrDuplicateWrite is returned by Put when an audit writes a slot that
// already holds a value. Slots are written at most once per run; a second
// write is a programming error and must fail loudly, never overwrite.
var ErrDuplicateWrite = errors.New("slot already written")

// Context is the shared mutable store for one audit run. It is created
// when navigation succeeds, written only during the orchestrator's
// execution window, handed read-only to the aggregator and formatter, and
// discarded afterward. The mutex exists because out-of-band audits run
// concurrently with the page-bound chain; the one-writer-per-slot rule is
// enforced by Put itself.
type Context struct {
	URL       string
	RunID     string
	Page      domain.Page
	StartedAt time.Time
	Duration  time.Duration

	mu    sync.Mutex
	slots map[string]any
	errs  map[string]string
}

func NewContext(url string, page domain.Page) *Context {
	return &Context{
		URL:       url,
		Page:      page,
		StartedAt: time.Now(),
		slots:     make(map[string]any),
		errs:      make(map[string]string),
	}
}

// Key binds a slot name to a result type at compile time. Audits share
// results exclusively through typed keys, so a reader can never get a
// value of an unexpected shape out of a slot.
type Key[T any] struct {
	name string
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) Name() string { return k.name }

// Put writes a slot exactly once. A duplicate write returns
// ErrDuplicateWrite wrapped with the slot name.
func Put[T any](c *Context, key Key[T], value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.slots[key.name]; exists {
		return fmt.Errorf("slot %q: %w", key.name, ErrDuplicateWrite)
	}
	c.slots[key.name] = value
	return nil
}

// Get returns the slot value and whether it is present. An absent slot is
// "no data", never a zero value; it is not an error and never panics.
func Get[T any](c *Context, key Key[T]) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.slots[key.name]
	if !ok {
		var zero T
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return value, true
}

// RecordError notes a failed audit under its name. The failure surfaces in
// the report as {"error": ...} and the audit's slots stay absent.
func (c *Context) RecordError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[name] = err.Error()
}

// Errors returns a copy of the audit-name → failure-message list.
func (c *Context) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// Slots returns a copy of the populated result slots for the formatter.
func (c *Context) Slots() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(c.slots))
	for k, v := range c.slots {
		out[k] = v
	}
	return out
}
