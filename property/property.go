// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package property provides reactive single-value containers with
// ownership-gated mutation, value filtering, change notification and
// read-only enforcement.
//
// A [Property] runs every candidate value through its ordered filters,
// ignores values equal to the current one, checks whether the caller's
// [Token] owns the property, commits the value and finally calls its
// change listeners in the order they were added. Owners can make a
// property read-only to outsiders, or install an [Interceptor] that
// decides what an outside write actually does.
package property

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"cogentcore.org/scenegraph/base/errors"
)

// Filter is a transform applied to every candidate value before it is
// compared or committed. Filters should be total functions; a panicking
// filter leaves the property unchanged.
type Filter[T any] func(value T) T

// Interceptor is called instead of committing when a caller that does not
// own a property writes to it and the property is not read-only. It gets
// the current value and the filtered candidate value, and decides whether
// and how to apply the change, typically by calling [Property.Set] with
// an owner token.
type Interceptor[T any] func(p *Property[T], old, candidate T) error

// ChangeListener is called after a new value has been committed.
type ChangeListener[T any] func(p *Property[T], old, value T) error

// FilterID identifies a filter added with [Property.AddFilter].
type FilterID uint64

// ListenerID identifies a listener added with [Property.AddChangeListener].
type ListenerID uint64

type filterEntry[T any] struct {
	id FilterID
	fn Filter[T]
}

type listenerEntry[T any] struct {
	id ListenerID
	fn ChangeListener[T]
}

// Property is a reactive container for a single value of type T.
// Use [New] to make one. The zero value is not usable.
type Property[T any] struct {

	// name is used in error messages and [Property.String].
	name string

	// handle is the current storage of the value.
	handle atomic.Pointer[Handle[T]]

	// writeMu serializes writers from filtering through commit.
	writeMu sync.Mutex

	// mu protects the fields below. The filter and listener slices are
	// copied on write so that they can be read without holding mu while
	// a notification is in progress.
	mu          sync.RWMutex
	owner       *Token
	readOnly    bool
	interceptor Interceptor[T]
	filters     []filterEntry[T]
	listeners   []listenerEntry[T]
	lastID      uint64
	equal       func(a, b T) bool
}

// New returns a new unowned property holding the given value.
func New[T any](value T) *Property[T] {
	p := &Property[T]{}
	p.handle.Store(NewHandle(value))
	return p
}

// WithName sets the name of the property used in error messages
// and returns the property for chaining. It is meant to be called
// during construction.
func (p *Property[T]) WithName(name string) *Property[T] {
	p.mu.Lock()
	p.name = name
	p.mu.Unlock()
	return p
}

// WithEqual sets the function used to decide whether a new value
// differs from the current one and returns the property for chaining.
// By default, values of comparable types are compared with == and
// others with [reflect.DeepEqual].
func (p *Property[T]) WithEqual(equal func(a, b T) bool) *Property[T] {
	p.mu.Lock()
	p.equal = equal
	p.mu.Unlock()
	return p
}

// Name returns the name of the property.
func (p *Property[T]) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.handle.Load().Get()
}

// Set writes the given value on behalf of the caller identified by tok,
// which may be nil for anonymous callers.
//
// The value is first passed through the filters in the order they were
// added. If the result equals the current value, nothing happens. If the
// property has an owner that tok does not own, the write fails with
// [errors.ErrCallerIdentity] when the property is read-only, and is handed
// to the interceptor when there is one. Otherwise the value is committed
// and every change listener is called. Listener failures do not stop the
// remaining listeners; they are returned together as an
// [*errors.AggregateListenerError] after the value has been committed.
//
// Writes are serialized from filtering to commit, but the interceptor and
// the listeners run after that, so notifications from concurrent writers
// are not ordered with respect to each other.
func (p *Property[T]) Set(value T, tok *Token) error {
	old, value, changed, ic, err := p.commit(value, tok)
	if err != nil {
		return err
	}
	if ic != nil {
		return ic(p, old, value)
	}
	if !changed {
		return nil
	}
	return p.notify(old, value)
}

// commit is the synchronized part of [Property.Set]. It returns the
// interceptor to delegate to instead of committing, if any.
func (p *Property[T]) commit(value T, tok *Token) (old, filtered T, changed bool, ic Interceptor[T], err error) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	p.mu.RLock()
	filters := p.filters
	owner, readOnly, intercept := p.owner, p.readOnly, p.interceptor
	label := p.label()
	p.mu.RUnlock()

	for _, f := range filters {
		value = f.fn(value)
	}
	h := p.handle.Load()
	old = h.Get()
	if p.equals(old, value) {
		return old, value, false, nil, nil
	}
	if owner != nil && !tok.Owns(owner) {
		if readOnly {
			return old, value, false, nil, fmt.Errorf("property %s: set by %v: %w: read-only", label, tok, errors.ErrCallerIdentity)
		}
		if intercept != nil {
			return old, value, false, intercept, nil
		}
	}
	h.Set(value)
	return old, value, true, nil, nil
}

// notify calls all change listeners with the given values and
// aggregates their errors.
func (p *Property[T]) notify(old, value T) error {
	p.mu.RLock()
	ls := p.listeners
	p.mu.RUnlock()

	var errs []error
	for _, l := range ls {
		if err := p.callListener(l.fn, old, value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &errors.AggregateListenerError{Errs: errs}
	}
	return nil
}

// callListener calls the given listener, turning a panic into an error.
func (p *Property[T]) callListener(fn ChangeListener[T], old, value T) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rerr, ok := r.(error); ok {
			err = fmt.Errorf("property %s: change listener panic: %w", p.safeLabel(), rerr)
			return
		}
		err = fmt.Errorf("property %s: change listener panic: %v", p.safeLabel(), r)
	}()
	return fn(p, old, value)
}

// equals reports whether the two values are equal for this property.
func (p *Property[T]) equals(a, b T) bool {
	p.mu.RLock()
	eq := p.equal
	p.mu.RUnlock()
	if eq != nil {
		return eq(a, b)
	}
	return defaultEqual(a, b)
}

// defaultEqual compares values of comparable dynamic types with ==
// and everything else with [reflect.DeepEqual].
func defaultEqual[T any](a, b T) bool {
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}
	ta := reflect.TypeOf(va)
	if ta != reflect.TypeOf(vb) {
		return false
	}
	if ta.Comparable() {
		return va == vb
	}
	return reflect.DeepEqual(va, vb)
}

// checkOwner returns an error if the property has an owner that tok does
// not own. It must be called with mu held.
func (p *Property[T]) checkOwner(tok *Token, op string) error {
	if p.owner != nil && !tok.Owns(p.owner) {
		return fmt.Errorf("property %s: %s by %v: %w", p.label(), op, tok, errors.ErrCallerIdentity)
	}
	return nil
}

// safeLabel returns [Property.label] while holding mu.
func (p *Property[T]) safeLabel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.label()
}

// label returns the name of the property, or its type if it has no name.
// It must be called with mu held.
func (p *Property[T]) label() string {
	if p.name != "" {
		return p.name
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Owner returns the owner token of the property, or nil if it is unowned.
func (p *Property[T]) Owner() *Token {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.owner
}

// SetOwner changes the owner of the property. Once a property is owned,
// only its owner can change it; an unowned property accepts any caller.
func (p *Property[T]) SetOwner(tok, owner *Token) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkOwner(tok, "set owner"); err != nil {
		return err
	}
	p.owner = owner
	return nil
}

// IsReadOnly returns whether the property rejects writes from non-owners.
func (p *Property[T]) IsReadOnly() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.readOnly
}

// SetReadOnly sets whether the property rejects writes from non-owners.
// It is gated on ownership like [Property.SetOwner].
func (p *Property[T]) SetReadOnly(tok *Token, readOnly bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkOwner(tok, "set read-only"); err != nil {
		return err
	}
	p.readOnly = readOnly
	return nil
}

// SetInterceptor sets the interceptor used for writes from non-owners,
// or removes it if ic is nil. It is gated on ownership like [Property.SetOwner].
func (p *Property[T]) SetInterceptor(tok *Token, ic Interceptor[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkOwner(tok, "set interceptor"); err != nil {
		return err
	}
	p.interceptor = ic
	return nil
}

// AddFilter appends the given filter to the filter chain. Only an owner
// may add filters to an owned property. The current value is not
// refiltered.
func (p *Property[T]) AddFilter(tok *Token, f Filter[T]) (FilterID, error) {
	if f == nil {
		return 0, fmt.Errorf("property %s: add filter: %w", p.safeLabel(), errors.ErrNullArgument)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkOwner(tok, "add filter"); err != nil {
		return 0, err
	}
	p.lastID++
	id := FilterID(p.lastID)
	p.filters = append(slices.Clip(p.filters), filterEntry[T]{id: id, fn: f})
	return id, nil
}

// RemoveFilter removes the filter with the given id. Only an owner may
// remove filters from an owned property. Removing an unknown filter is
// not an error.
func (p *Property[T]) RemoveFilter(tok *Token, id FilterID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkOwner(tok, "remove filter"); err != nil {
		return err
	}
	p.filters = slices.DeleteFunc(slices.Clone(p.filters), func(e filterEntry[T]) bool { return e.id == id })
	return nil
}

// AddChangeListener appends the given listener, which will be called
// after every committed change, after the listeners added before it.
// Anyone may add listeners.
func (p *Property[T]) AddChangeListener(l ChangeListener[T]) (ListenerID, error) {
	if l == nil {
		return 0, fmt.Errorf("property %s: add change listener: %w", p.safeLabel(), errors.ErrNullArgument)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastID++
	id := ListenerID(p.lastID)
	p.listeners = append(slices.Clip(p.listeners), listenerEntry[T]{id: id, fn: l})
	return id, nil
}

// RemoveChangeListener removes the listener with the given id and
// returns whether it was found. Holding the id is enough to remove it.
func (p *Property[T]) RemoveChangeListener(id ListenerID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.listeners)
	p.listeners = slices.DeleteFunc(slices.Clone(p.listeners), func(e listenerEntry[T]) bool { return e.id == id })
	return len(p.listeners) != n
}

// OnChange adds a listener that only needs the new value and returns
// a function that removes it.
func (p *Property[T]) OnChange(fun func(value T)) (remove func()) {
	id := errors.Must1(p.AddChangeListener(func(_ *Property[T], _, value T) error {
		fun(value)
		return nil
	}))
	return func() { p.RemoveChangeListener(id) }
}

// Handle returns the current storage of the property.
func (p *Property[T]) Handle() *Handle[T] {
	return p.handle.Load()
}

// SetHandle replaces the storage of the property with the given handle.
// It bypasses ownership, read-only state and filters. Listeners are kept
// and are notified once if the value in the new handle differs from the
// value in the old one.
func (p *Property[T]) SetHandle(h *Handle[T]) error {
	if h == nil {
		return fmt.Errorf("property %s: set handle: %w", p.safeLabel(), errors.ErrNullArgument)
	}
	p.writeMu.Lock()
	old := p.handle.Swap(h).Get()
	value := h.Get()
	p.writeMu.Unlock()
	if p.equals(old, value) {
		return nil
	}
	return p.notify(old, value)
}

// String returns the name and current value of the property.
func (p *Property[T]) String() string {
	p.mu.RLock()
	label := p.label()
	p.mu.RUnlock()
	return fmt.Sprintf("%s=%v", label, p.Get())
}
