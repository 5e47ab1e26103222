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
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(level loggingLevel) (*defaultLog, *bytes.Buffer) {
	var buf bytes.Buffer
	l := DefaultLogger(level)
	l.Logger = log.New(&buf, "", 0)
	return l, &buf
}

func TestDefaultLoggerLevels(t *testing.T) {
	l, buf := newTestLogger(WARNING)
	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	require.Empty(t, buf.String())

	l.Warningf("warning %d", 3)
	l.Errorf("error %d", 4)
	require.Equal(t, "WARNING: warning 3\nERROR: error 4\n", buf.String())
}

func TestDefaultLoggerDebug(t *testing.T) {
	l, buf := newTestLogger(DEBUG)
	l.Debugf("test")
	l.Infof("test")
	require.Equal(t, "DEBUG: test\nINFO: test\n", buf.String())
}
