// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the error taxonomy shared by the property and
// tree packages, along with a set of helper functions for logging and
// handling errors. It also re-exports the most commonly used functions of
// the standard [errors] package so that it can be used as a drop-in
// replacement for it.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrNullArgument is returned when a required argument is nil.
	// It is always checked before any mutation takes place.
	ErrNullArgument = errors.New("null argument")

	// ErrCallerIdentity is returned when a caller that does not own a
	// property attempts a gated mutation that it is not allowed to make.
	ErrCallerIdentity = errors.New("caller is not an owner")

	// ErrTypeMismatch is returned when a tree child does not satisfy
	// the declared base type of its tree.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrGraphViolation is returned when a tree operation would break the
	// structure of the tree: a node parented to itself or one of its
	// descendants, or an old parent that refused to release a child.
	ErrGraphViolation = errors.New("graph violation")
)

// AggregateListenerError collects every error raised by change listeners
// during a single notification pass. The change that triggered the
// notification has already been committed when it is returned.
type AggregateListenerError struct {

	// Errs are the errors in the order the failing listeners ran.
	Errs []error
}

func (e *AggregateListenerError) Error() string {
	if len(e.Errs) == 1 {
		return "change listener failed: " + e.Errs[0].Error()
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d change listeners failed: %s", len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap returns the listener errors so that [Is] and [As]
// can see through the aggregate.
func (e *AggregateListenerError) Unwrap() []error {
	return e.Errs
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
// The intended usage is:
//
//	a := errors.Ignore1(MyFunc(v))
func Ignore1[T any](v T, err error) T {
	return v
}

// New returns an error that formats as the given text.
// It is a re-export of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is a re-export of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one
// is found, sets target to that error value and returns true.
// It is a re-export of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nil ones.
// It is a re-export of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
// It is a re-export of [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
