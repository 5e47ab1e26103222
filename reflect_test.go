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

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReflectByte(t *testing.T) {
	for i := 0; i < 256; i++ {
		require.Equal(t, bits.Reverse8(uint8(i)), reflectByte(uint8(i)))
	}
	require.Equal(t, byte(0x80), reflectByte(0x01))
	require.Equal(t, byte(0x0F), reflectByte(0xF0))
}

func TestReflectWord(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rand.Uint64()
		require.Equal(t, bits.Reverse8(uint8(x)), reflectWord(uint8(x), 8))
		require.Equal(t, bits.Reverse16(uint16(x)), reflectWord(uint16(x), 16))
		require.Equal(t, bits.Reverse32(uint32(x)), reflectWord(uint32(x), 32))
		require.Equal(t, bits.Reverse64(x), reflectWord(x, 64))
	}
	require.Equal(t, uint16(0x6363), reflectWord(uint16(0xC6C6), 16))
	require.Equal(t, uint32(0x82F63B78), reflectWord(uint32(0x1EDC6F41), 32))
}

func TestWordWidth(t *testing.T) {
	require.Equal(t, uint(8), wordWidth[uint8]())
	require.Equal(t, uint(16), wordWidth[uint16]())
	require.Equal(t, uint(32), wordWidth[uint32]())
	require.Equal(t, uint(64), wordWidth[uint64]())
}
