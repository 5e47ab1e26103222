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

// Package export renders CRC lookup tables as source code, for targets that
// have room for a constant table in flash but not for building it in RAM.
package export

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidColumns is returned when Options.Columns is less than 1.
	ErrInvalidColumns = errors.New("Invalid number of columns, must be at least 1")
	// ErrInvalidName is returned when Options.Name is not a C identifier.
	ErrInvalidName = errors.New("Invalid table name, must be a C identifier")
)

// Table is a lookup table of 256 entries of Width bits.
// Every easycrc Calculator implements it.
type Table interface {
	Width() int
	Entry64(i uint8) uint64
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (opt Options) validate() error {
	if opt.Columns < 1 {
		return errors.Wrapf(ErrInvalidColumns, "columns: %d", opt.Columns)
	}
	if !identRe.MatchString(opt.Name) {
		return errors.Wrapf(ErrInvalidName, "name: %q", opt.Name)
	}
	return nil
}

// WriteC writes t to w as a C array definition:
//
//	static const uint8_t crcTable[256] = {
//	    0x00, 0x07, 0x0E, 0x09, 0x1C, 0x1B, 0x12, 0x15,
//	    ...
//	};
func WriteC(w io.Writer, t Table, opt Options) error {
	if err := opt.validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	digits := t.Width() / 4
	fmt.Fprintf(bw, "static const uint%d_t %s[256] = {\n", t.Width(), opt.Name)
	for i := 0; i < 256; i++ {
		if i%opt.Columns == 0 {
			bw.WriteString("    ")
		}
		fmt.Fprintf(bw, "0x%0*X%s", digits, t.Entry64(uint8(i)), opt.Suffix)
		if i != 255 {
			bw.WriteByte(',')
		}
		if i%opt.Columns == opt.Columns-1 || i == 255 {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	}
	bw.WriteString("};\n")
	return errors.Wrap(bw.Flush(), "failed to write table")
}

// C returns the output of WriteC as a string.
func C(t Table, opt Options) (string, error) {
	var sb strings.Builder
	if err := WriteC(&sb, t, opt); err != nil {
		return "", err
	}
	return sb.String(), nil
}
