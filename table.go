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
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/easycrc/y"
)

// lookupTable holds the 256 remainders of a Variant. It is written once by
// the first caller of init and only read afterwards.
type lookupTable[T Word] struct {
	building atomic.Bool
	built    atomic.Bool
	entries  [256]T
}

// init builds the table exactly once. Callers arriving while another
// goroutine is building spin until the table is published; callers arriving
// later return immediately.
func (lt *lookupTable[T]) init(v *Variant[T]) {
	if lt.built.Load() {
		return
	}
	if !lt.building.CompareAndSwap(false, true) {
		y.TableBuildWaitsAdd(metricsEnabled.Load(), 1)
		for !lt.built.Load() {
			runtime.Gosched()
		}
		return
	}

	start := time.Now()
	width := wordWidth[T]()
	// entries[0] stays zero: there is no set bit to reduce.
	for i := 1; i < len(lt.entries); i++ {
		lt.entries[i] = divide(T(i), v.params.Poly, width)
	}
	lt.built.Store(true)

	y.TableBuildsAdd(metricsEnabled.Load(), v.name, 1)
	getLogger().Debugf("Built lookup table for %s (%d bits) in %s", v.name, width, time.Since(start))
}

// divide runs the bitwise polynomial division of r over width bits, MSB first.
func divide[T Word](r, poly T, width uint) T {
	top := width - 1
	for i := uint(0); i < width; i++ {
		carry := r>>top&1 == 1
		r <<= 1
		if carry {
			r ^= poly
		}
	}
	return r
}
