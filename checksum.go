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

// CalculateChecksum calculates the CRC of data using model m.
func CalculateChecksum(m Model, data []byte) uint64 {
	h := m.NewHash()
	// Write on a Calculator never fails.
	_, _ = h.Write(data)
	return h.Sum64()
}

// VerifyChecksum validates the CRC of data under m against expected.
func VerifyChecksum(m Model, data []byte, expected uint64) error {
	actual := CalculateChecksum(m, data)
	if actual != expected {
		return errors.Wrapf(ErrChecksumMismatch, "%s: actual: %#x, expected: %#x",
			m.Name(), actual, expected)
	}
	return nil
}
