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
	"github.com/pkg/errors"
)

var (
	// ErrUnknownVariant is returned by Lookup when no variant is registered
	// under the requested name.
	ErrUnknownVariant = errors.New("Unknown CRC variant")

	// ErrDuplicateVariant is returned by Register when the name or one of
	// the aliases is already taken.
	ErrDuplicateVariant = errors.New("CRC variant already registered")

	// ErrInvalidWidth is returned by Define for widths other than 8, 16, 32
	// and 64 bits.
	ErrInvalidWidth = errors.New("Invalid width, must be one of 8, 16, 32 or 64")

	// ErrInvalidParams is returned by Define when a constant does not fit in
	// the requested width.
	ErrInvalidParams = errors.New("CRC parameter does not fit in width")

	// ErrChecksumMismatch is returned at checksum mismatch.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
