// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings persists named sets of properties. A [Sheet] binds
// properties to names and saves and loads their values as TOML or YAML
// files, writing them through [property.Property.Set] with the token
// given for each property so that its ownership rules still apply.
package settings

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/ordmap"
	"cogentcore.org/scenegraph/property"
)

// Sheet is an ordered table of named properties that are saved
// and loaded together. It is safe for concurrent use.
type Sheet struct {

	// Name is the name of the sheet, used in error messages.
	Name string

	mu       sync.Mutex
	bindings ordmap.Map[string, binding]
}

// binding is a property bound to a name in a [Sheet].
type binding interface {

	// valueType returns the type of the value of the property.
	valueType() reflect.Type

	// get returns the current value of the property.
	get() any

	// set sets the property to the given value, which is of the value type.
	set(v any) error
}

type bound[T any] struct {
	p   *property.Property[T]
	tok *property.Token
}

func (b *bound[T]) valueType() reflect.Type { return reflect.TypeFor[T]() }

func (b *bound[T]) get() any { return b.p.Get() }

func (b *bound[T]) set(v any) error {
	t, _ := v.(T)
	return b.p.Set(t, b.tok)
}

// NewSheet returns a new empty sheet with the given name.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name}
}

// Bind binds the given property to the given name in the sheet, replacing
// any property already bound to that name. Values loaded into the property
// are set with the given token, which may be nil. The value type must be
// encodable as TOML and YAML.
func Bind[T any](s *Sheet, name string, p *property.Property[T], tok *property.Token) error {
	if p == nil {
		return fmt.Errorf("settings: bind %q in %q: %w", name, s.Name, errors.ErrNullArgument)
	}
	if name == "" {
		return fmt.Errorf("settings: bind in %q: empty name", s.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings.Add(name, &bound[T]{p: p, tok: tok})
	return nil
}

// Unbind removes the property bound to the given name and
// returns whether there was one.
func (s *Sheet) Unbind(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bindings.Delete(name)
}

// Names returns the names bound in the sheet, in the order they were bound.
func (s *Sheet) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bindings.Keys()
}

// Value returns the current value of the property bound to the given name.
func (s *Sheet) Value(name string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bindings.Value(name)
	if !ok {
		return nil, false
	}
	return b.get(), true
}

// entries returns a copy of the bindings of the sheet in order.
func (s *Sheet) entries() []ordmap.KeyValue[string, binding] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bindings.Order)
}

// record returns a pointer to a new struct with one field for each
// of the given bindings, in order, tagged with its name and holding
// its current value.
func record(entries []ordmap.KeyValue[string, binding]) reflect.Value {
	fields := make([]reflect.StructField, 0, len(entries))
	for i, kv := range entries {
		fields = append(fields, reflect.StructField{
			Name: fmt.Sprintf("F%d", i),
			Type: kv.Value.valueType(),
			Tag:  reflect.StructTag(fmt.Sprintf("toml:%q yaml:%q", kv.Key, kv.Key)),
		})
	}
	rec := reflect.New(reflect.StructOf(fields))
	for i, kv := range entries {
		if v := kv.Value.get(); v != nil {
			rec.Elem().Field(i).Set(reflect.ValueOf(v))
		}
	}
	return rec
}

// apply sets each of the given bindings from the corresponding field of
// the given record made by [record]. It keeps going after a failure and
// returns all of the errors.
func (s *Sheet) apply(entries []ordmap.KeyValue[string, binding], rec reflect.Value) error {
	var errs []error
	for i, kv := range entries {
		if err := kv.Value.set(rec.Elem().Field(i).Interface()); err != nil {
			errs = append(errs, fmt.Errorf("settings: set %q in %q: %w", kv.Key, s.Name, err))
		}
	}
	return errors.Join(errs...)
}
