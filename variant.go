/*
 * Copyright 2017 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package easycrc

import "unsafe"

// Word is the register type of a CRC. Its size decides the result width.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Params are the constants describing one CRC standard.
type Params[T Word] struct {
	// Generator polynomial without the implicit leading coefficient, MSB first.
	Poly T
	// Register value before any byte is consumed.
	Init T
	// Mask XORed into the register to produce the result.
	XorOut T
	// Reverse the bits of each input byte before it is consumed.
	ReflectIn bool
	// Mirror the register before XorOut is applied.
	ReflectOut bool
}

// Variant is an immutable CRC standard together with its lookup table.
// Variants are created once with NewVariant, usually as package level
// variables, and must not be copied after first use. The zero Variant is a
// CRC with all constants zero.
type Variant[T Word] struct {
	name   string
	params Params[T]

	lut lookupTable[T]
}

// NewVariant returns a Variant named name with the given constants. The
// lookup table is not built until the first Calculator is created.
func NewVariant[T Word](name string, p Params[T]) *Variant[T] {
	return &Variant[T]{
		name:   name,
		params: p,
	}
}

// wordWidth returns the size of T in bits.
func wordWidth[T Word]() uint {
	return uint(unsafe.Sizeof(T(0))) * 8
}

func (v *Variant[T]) Name() string      { return v.name }
func (v *Variant[T]) Params() Params[T] { return v.params }
func (v *Variant[T]) Width() int        { return int(wordWidth[T]()) }
func (v *Variant[T]) Poly64() uint64    { return uint64(v.params.Poly) }
func (v *Variant[T]) Init64() uint64    { return uint64(v.params.Init) }
func (v *Variant[T]) XorOut64() uint64  { return uint64(v.params.XorOut) }
func (v *Variant[T]) ReflectIn() bool   { return v.params.ReflectIn }
func (v *Variant[T]) ReflectOut() bool  { return v.params.ReflectOut }

// New returns a Calculator in its initial state, building the lookup table
// first if no Calculator of v has been created yet.
func (v *Variant[T]) New() *Calculator[T] {
	v.lut.init(v)
	width := wordWidth[T]()
	c := &Calculator[T]{
		v:        v,
		table:    &v.lut.entries,
		width:    width,
		shift:    width - 8,
		byteBits: 8,
	}
	c.Reset()
	return c
}

// NewHash returns a new Calculator as a width independent Hash.
func (v *Variant[T]) NewHash() Hash {
	return v.New()
}

// Checksum returns the CRC of data under v.
func Checksum[T Word](v *Variant[T], data []byte) T {
	c := v.New()
	c.Update(data)
	return c.Result()
}
