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

/*
Package easycrc implements table-driven Cyclic Redundancy Checks for any CRC
standard whose register is 8, 16, 32 or 64 bits wide.

A standard is described by a Variant: the generator polynomial, the initial
register value, the final XOR mask and whether input bytes and the output
register are bit-reflected. Every Variant owns one 256-entry lookup table
which is built the first time a Calculator for it is created and shared by
all Calculators of that Variant afterwards.

Usage

	c := easycrc.CRC32C.New()
	c.Update([]byte{0x00, 0x01, 0x02, 0x03})
	sum := c.Result() // 0xd9331aa3

Result does not finalize the Calculator. More bytes may be added after it is
called and Result called again, which gives the checksum of everything added
so far. Reset starts a new checksum.

A Calculator is not safe for concurrent use. Use one per goroutine; they are
cheap once the table is built.
*/
package easycrc
