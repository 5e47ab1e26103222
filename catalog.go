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

// Predefined CRC standards. Names follow the CRC RevEng catalogue.
var (
	CRC8 = NewVariant("CRC-8", Params[uint8]{
		Poly: 0x07,
	})
	CRC8Maxim = NewVariant("CRC-8/MAXIM-DOW", Params[uint8]{
		Poly: 0x31, ReflectIn: true, ReflectOut: true,
	})
	CRC8CDMA2000 = NewVariant("CRC-8/CDMA2000", Params[uint8]{
		Poly: 0x9B, Init: 0xFF,
	})

	// CRC16A is the ISO/IEC 14443-3 Type A checksum used by contactless cards.
	CRC16A = NewVariant("CRC-16/ISO-IEC-14443-3-A", Params[uint16]{
		Poly: 0x1021, Init: 0xC6C6, ReflectIn: true, ReflectOut: true,
	})
	CRC16CDMA2000 = NewVariant("CRC-16/CDMA2000", Params[uint16]{
		Poly: 0xC867, Init: 0xFFFF,
	})
	CRC16DECTX = NewVariant("CRC-16/DECT-X", Params[uint16]{
		Poly: 0x0589,
	})
	CRC16XModem = NewVariant("CRC-16/XMODEM", Params[uint16]{
		Poly: 0x1021,
	})
	CRC16IBM3740 = NewVariant("CRC-16/IBM-3740", Params[uint16]{
		Poly: 0x1021, Init: 0xFFFF,
	})
	CRC16Kermit = NewVariant("CRC-16/KERMIT", Params[uint16]{
		Poly: 0x1021, ReflectIn: true, ReflectOut: true,
	})
	CRC16Modbus = NewVariant("CRC-16/MODBUS", Params[uint16]{
		Poly: 0x8005, Init: 0xFFFF, ReflectIn: true, ReflectOut: true,
	})
	CRC16ARC = NewVariant("CRC-16/ARC", Params[uint16]{
		Poly: 0x8005, ReflectIn: true, ReflectOut: true,
	})
	CRC16IBMSDLC = NewVariant("CRC-16/IBM-SDLC", Params[uint16]{
		Poly: 0x1021, Init: 0xFFFF, XorOut: 0xFFFF, ReflectIn: true, ReflectOut: true,
	})

	// CRC32 is the IEEE 802.3 checksum, as in hash/crc32.IEEE.
	CRC32 = NewVariant("CRC-32/ISO-HDLC", Params[uint32]{
		Poly: 0x04C11DB7, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true,
	})
	// CRC32C uses the Castagnoli polynomial, as in hash/crc32.Castagnoli.
	CRC32C = NewVariant("CRC-32C", Params[uint32]{
		Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true,
	})
	CRC32BZIP2 = NewVariant("CRC-32/BZIP2", Params[uint32]{
		Poly: 0x04C11DB7, Init: 0xFFFFFFFF, XorOut: 0xFFFFFFFF,
	})
	CRC32MPEG2 = NewVariant("CRC-32/MPEG-2", Params[uint32]{
		Poly: 0x04C11DB7, Init: 0xFFFFFFFF,
	})

	CRC64ECMA = NewVariant("CRC-64/ECMA-182", Params[uint64]{
		Poly: 0x42F0E1EBA9EA3693,
	})
	// CRC64XZ matches hash/crc64 with the ECMA table.
	CRC64XZ = NewVariant("CRC-64/XZ", Params[uint64]{
		Poly: 0x42F0E1EBA9EA3693, Init: ^uint64(0), XorOut: ^uint64(0), ReflectIn: true, ReflectOut: true,
	})
	// CRC64ISO matches hash/crc64 with the ISO table.
	CRC64ISO = NewVariant("CRC-64/GO-ISO", Params[uint64]{
		Poly: 0x1B, Init: ^uint64(0), XorOut: ^uint64(0), ReflectIn: true, ReflectOut: true,
	})
)

// standard is a catalog entry: a model, its other names and the CRC of the
// ASCII string "123456789".
type standard struct {
	model   Model
	aliases []string
	check   uint64
}

// CheckInput is the input the catalog check values are computed over.
const CheckInput = "123456789"

var catalog = []standard{
	{CRC8, []string{"CRC-8/SMBUS"}, 0xF4},
	{CRC8Maxim, []string{"CRC-8/MAXIM", "DOW-CRC"}, 0xA1},
	{CRC8CDMA2000, nil, 0xDA},
	{CRC16A, []string{"CRC-16/A", "CRC-A"}, 0xBF05},
	{CRC16CDMA2000, nil, 0x4C06},
	{CRC16DECTX, []string{"X-CRC-16"}, 0x007F},
	{CRC16XModem, []string{"CRC-16/ACORN", "CRC-16/LTE", "XMODEM"}, 0x31C3},
	{CRC16IBM3740, []string{"CRC-16/CCITT-FALSE", "CRC-16/AUTOSAR"}, 0x29B1},
	{CRC16Kermit, []string{"CRC-16/CCITT", "KERMIT"}, 0x2189},
	{CRC16Modbus, []string{"MODBUS"}, 0x4B37},
	{CRC16ARC, []string{"ARC", "CRC-16", "CRC-16/LHA"}, 0xBB3D},
	{CRC16IBMSDLC, []string{"CRC-16/X-25", "X-25"}, 0x906E},
	{CRC32, []string{"CRC-32", "CRC-32/IEEE"}, 0xCBF43926},
	{CRC32C, []string{"CRC-32/ISCSI", "CRC-32/CASTAGNOLI"}, 0xE3069283},
	{CRC32BZIP2, []string{"CRC-32/AAL5"}, 0xFC891918},
	{CRC32MPEG2, nil, 0x0376E6E7},
	{CRC64ECMA, []string{"CRC-64"}, 0x6C40DF5F0B497347},
	{CRC64XZ, []string{"CRC-64/GO-ECMA"}, 0x995DC9BBDF1939FA},
	{CRC64ISO, nil, 0xB90956C775A41001},
}

func init() {
	for _, s := range catalog {
		if err := Register(s.model, s.aliases...); err != nil {
			panic(err)
		}
	}
}

// CheckValue returns the CRC of CheckInput published for the catalog model
// registered under name. ok is false for models outside the catalog.
func CheckValue(name string) (check uint64, ok bool) {
	m, err := Lookup(name)
	if err != nil {
		return 0, false
	}
	for _, s := range catalog {
		if s.model == m {
			return s.check, true
		}
	}
	return 0, false
}
