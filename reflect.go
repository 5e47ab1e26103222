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

// reflectByte reverses the order of the bits in x.
func reflectByte(x byte) byte {
	x = x&0x0F<<4 | x&0xF0>>4
	x = x&0x33<<2 | x&0xCC>>2
	x = x&0x55<<1 | x&0xAA>>1
	return x
}

// reflectWord mirrors the low width bits of x: every byte is reflected and
// the byte order is reversed. For an 8 bit word this is reflectByte.
func reflectWord[T Word](x T, width uint) T {
	var r T
	step := uint(8)
	for i := uint(0); i < width; i += step {
		r = r<<step | T(reflectByte(byte(x>>i)))
	}
	return r
}
