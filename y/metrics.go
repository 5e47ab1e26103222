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

package y

import (
	"expvar"
)

var (
	// tableBuilds has the number of lookup tables built, keyed by variant name.
	tableBuilds *expvar.Map
	// tableBuildWaits is the number of callers that had to wait for another
	// goroutine to finish building a lookup table.
	tableBuildWaits *expvar.Int
)

// These variables are global and have cumulative values for all variants.
func init() {
	tableBuilds = expvar.NewMap("easycrc_table_builds_total")
	tableBuildWaits = expvar.NewInt("easycrc_table_build_waits_total")
}

func TableBuildsAdd(enabled bool, name string, val int64) {
	if !enabled {
		return
	}
	tableBuilds.Add(name, val)
}

func TableBuildWaitsAdd(enabled bool, val int64) {
	if !enabled {
		return
	}
	tableBuildWaits.Add(val)
}

// TableBuilds returns the number of lookup tables built under name.
func TableBuilds(name string) int64 {
	v, ok := tableBuilds.Get(name).(*expvar.Int)
	if !ok {
		return 0
	}
	return v.Value()
}

// TableBuildWaits returns the cumulative number of waits on a table build.
func TableBuildWaits() int64 {
	return tableBuildWaits.Value()
}
