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

package export

// Options control how a lookup table is rendered.
//
// Use DefaultOptions and the With methods to build them:
//
//	opt := export.DefaultOptions().WithColumns(16).WithName("crc8Table")
type Options struct {
	// Entries per line.
	Columns int
	// Symbol name of the array. Must be a valid C identifier.
	Name string
	// Appended to every entry, e.g. "U" or "UL".
	Suffix string
}

// DefaultOptions returns 8 entries per line, the name crcTable and no suffix.
func DefaultOptions() Options {
	return Options{
		Columns: 8,
		Name:    "crcTable",
	}
}

// WithColumns returns a new Options value with Columns set to the given value.
//
// The default value of Columns is 8.
func (opt Options) WithColumns(val int) Options {
	opt.Columns = val
	return opt
}

// WithName returns a new Options value with Name set to the given value.
//
// The default value of Name is "crcTable".
func (opt Options) WithName(val string) Options {
	opt.Name = val
	return opt
}

// WithSuffix returns a new Options value with Suffix set to the given value.
//
// The default value of Suffix is "".
func (opt Options) WithSuffix(val string) Options {
	opt.Suffix = val
	return opt
}
