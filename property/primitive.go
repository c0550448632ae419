// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

// Bool is a [NotNull] bool property with a default of false.
type Bool struct {
	*NotNull[bool]
}

// NewBool returns a new unowned [Bool] property holding the given value.
func NewBool(value bool) *Bool {
	return &Bool{newZeroDefault(value)}
}

// Toggle inverts the value. The read and the write are not atomic
// with respect to other writers.
func (p *Bool) Toggle(tok *Token) error {
	return p.Set(!p.Get(), tok)
}

// Numeric is the set of types usable with [Number].
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Number is a [NotNull] numeric property with a default of zero.
type Number[T Numeric] struct {
	*NotNull[T]
}

// NewNumber returns a new unowned [Number] property holding the given value.
func NewNumber[T Numeric](value T) *Number[T] {
	return &Number[T]{newZeroDefault(value)}
}

// Add adds the given delta to the value. The read and the write are
// not atomic with respect to other writers.
func (p *Number[T]) Add(delta T, tok *Token) error {
	return p.Set(p.Get()+delta, tok)
}

type (
	// Byte is a byte property.
	Byte = Number[byte]

	// Rune is a character property.
	Rune = Number[rune]

	// Int16 is a short integer property.
	Int16 = Number[int16]

	// Int32 is a 32-bit integer property.
	Int32 = Number[int32]

	// Int is an integer property.
	Int = Number[int]

	// Int64 is a long integer property.
	Int64 = Number[int64]

	// Float32 is a single precision floating point property.
	Float32 = Number[float32]

	// Float64 is a double precision floating point property.
	Float64 = Number[float64]
)

// NewByte returns a new unowned [Byte] property holding the given value.
func NewByte(value byte) *Byte { return NewNumber(value) }

// NewInt16 returns a new unowned [Int16] property holding the given value.
func NewInt16(value int16) *Int16 { return NewNumber(value) }

// NewInt32 returns a new unowned [Int32] property holding the given value.
func NewInt32(value int32) *Int32 { return NewNumber(value) }

// NewInt returns a new unowned [Int] property holding the given value.
func NewInt(value int) *Int { return NewNumber(value) }

// NewInt64 returns a new unowned [Int64] property holding the given value.
func NewInt64(value int64) *Int64 { return NewNumber(value) }

// NewFloat32 returns a new unowned [Float32] property holding the given value.
func NewFloat32(value float32) *Float32 { return NewNumber(value) }

// NewFloat64 returns a new unowned [Float64] property holding the given value.
func NewFloat64(value float64) *Float64 { return NewNumber(value) }

// NewRune returns a new unowned [Rune] property holding the given value.
func NewRune(value rune) *Rune { return NewNumber(value) }

// newZeroDefault returns a not-null property of a value type, which
// can never hold nil, with the zero value of the type as its default.
func newZeroDefault[T any](value T) *NotNull[T] {
	var zero T
	return &NotNull[T]{Property: newSubstituting(value, zero), def: zero}
}
