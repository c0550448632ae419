// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"reflect"

	"cogentcore.org/scenegraph/base/errors"
)

// IsNil returns whether the given value is nil: an untyped nil,
// or a nil pointer, map, slice, function, channel or interface.
func IsNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// substitute returns a filter that replaces nil values with def.
func substitute[T any](def T) Filter[T] {
	return func(value T) T {
		if IsNil(value) {
			return def
		}
		return value
	}
}

// Defaultable is a [Property] that replaces every nil value written
// to it with a default value, which may itself be nil.
type Defaultable[T any] struct {
	*Property[T]
	def T
}

// NewDefaultable returns a new unowned [Defaultable] property
// holding the given default value.
func NewDefaultable[T any](def T) *Defaultable[T] {
	return &Defaultable[T]{Property: newSubstituting(def, def), def: def}
}

// Default returns the default value of the property.
func (p *Defaultable[T]) Default() T {
	return p.def
}

// Reset sets the property back to its default value.
func (p *Defaultable[T]) Reset(tok *Token) error {
	return p.Set(p.def, tok)
}

// NotNull is a [Property] whose value is never nil: writing nil
// stores its non-nil default value instead.
type NotNull[T any] struct {
	*Property[T]
	def T
}

// NewNotNull returns a new unowned [NotNull] property holding the given
// default value. It returns an error wrapping [errors.ErrNullArgument]
// if the default is nil.
func NewNotNull[T any](def T) (*NotNull[T], error) {
	return NewNotNullValue(def, def)
}

// NewNotNullValue is like [NewNotNull], but starts out holding the given
// value instead of the default. A nil value is replaced with the default.
func NewNotNullValue[T any](value, def T) (*NotNull[T], error) {
	if IsNil(def) {
		return nil, fmt.Errorf("property: not-null default of type %T: %w", def, errors.ErrNullArgument)
	}
	return &NotNull[T]{Property: newSubstituting(value, def), def: def}, nil
}

// Default returns the default value of the property.
func (p *NotNull[T]) Default() T {
	return p.def
}

// Reset sets the property back to its default value.
func (p *NotNull[T]) Reset(tok *Token) error {
	return p.Set(p.def, tok)
}

// newSubstituting returns a property holding the given value (or def if
// it is nil) whose first filter replaces nil with def.
func newSubstituting[T any](value, def T) *Property[T] {
	if IsNil(value) {
		value = def
	}
	p := New(value)
	errors.Must1(p.AddFilter(internal, substitute(def)))
	return p
}
