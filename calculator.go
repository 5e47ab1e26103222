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

import "hash"

// Hash is the width independent view of a Calculator.
type Hash interface {
	hash.Hash64
	WriteByte(b byte) error
	Width() int
	Result64() uint64
	ResultBytes(bigEndian bool) []byte
	Entry64(i uint8) uint64
}

// Calculator computes the CRC of a byte stream for one Variant. It holds a
// single shift register and must not be shared between goroutines without
// external locking.
type Calculator[T Word] struct {
	v        *Variant[T]
	table    *[256]T
	width    uint
	shift    uint // width - 8
	byteBits uint
	reg      T
}

var _ Hash = (*Calculator[uint32])(nil)

// Reset puts the register back to the initial value of the Variant.
func (c *Calculator[T]) Reset() {
	c.reg = c.v.params.Init
}

// AddByte consumes one byte.
func (c *Calculator[T]) AddByte(b byte) {
	if c.v.params.ReflectIn {
		b = reflectByte(b)
	}
	c.reg = c.reg<<c.byteBits ^ c.table[byte(c.reg>>c.shift)^b]
}

// WriteByte implements io.ByteWriter. It never returns an error.
func (c *Calculator[T]) WriteByte(b byte) error {
	c.AddByte(b)
	return nil
}

// Update consumes p in order.
func (c *Calculator[T]) Update(p []byte) {
	for _, b := range p {
		c.AddByte(b)
	}
}

// Write implements io.Writer. It never returns an error.
func (c *Calculator[T]) Write(p []byte) (int, error) {
	c.Update(p)
	return len(p), nil
}

// Result returns the CRC of the bytes consumed since the last Reset. It does
// not change the register.
func (c *Calculator[T]) Result() T {
	r := c.reg
	if c.v.params.ReflectOut {
		r = reflectWord(r, c.width)
	}
	return r ^ c.v.params.XorOut
}

func (c *Calculator[T]) Result64() uint64 {
	return uint64(c.Result())
}

// ResultBytes returns Result as width/8 bytes in the requested byte order.
func (c *Calculator[T]) ResultBytes(bigEndian bool) []byte {
	result := c.Result64()
	out := make([]byte, c.Size())
	for i := range out {
		if bigEndian {
			out[len(out)-1-i] = byte(result)
		} else {
			out[i] = byte(result)
		}
		result >>= 8
	}
	return out
}

// Entry returns the lookup table entry at index i.
func (c *Calculator[T]) Entry(i uint8) T {
	return c.table[i]
}

func (c *Calculator[T]) Entry64(i uint8) uint64 {
	return uint64(c.table[i])
}

func (c *Calculator[T]) Variant() *Variant[T] { return c.v }

// Width returns the size of the register in bits.
func (c *Calculator[T]) Width() int { return int(c.width) }

// Sum appends the big endian Result to b. It implements hash.Hash.
func (c *Calculator[T]) Sum(b []byte) []byte {
	return append(b, c.ResultBytes(true)...)
}

func (c *Calculator[T]) Sum64() uint64 { return c.Result64() }

func (c *Calculator[T]) Size() int { return int(c.width / 8) }

func (c *Calculator[T]) BlockSize() int { return 1 }
