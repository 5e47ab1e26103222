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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableBuildsAdd(t *testing.T) {
	require.Zero(t, TableBuilds("y-test"))
	TableBuildsAdd(true, "y-test", 1)
	TableBuildsAdd(false, "y-test", 1)
	require.Equal(t, int64(1), TableBuilds("y-test"))
}

func TestTableBuildWaitsAdd(t *testing.T) {
	before := TableBuildWaits()
	TableBuildWaitsAdd(true, 2)
	TableBuildWaitsAdd(false, 5)
	require.Equal(t, before+2, TableBuildWaits())
}
