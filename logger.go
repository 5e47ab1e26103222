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
	"sync/atomic"

	"github.com/dgraph-io/easycrc/y"
)

type loggerHolder struct {
	y.Logger
}

var (
	logger         atomic.Value // loggerHolder
	metricsEnabled atomic.Bool
)

func init() {
	logger.Store(loggerHolder{y.DefaultLogger(y.WARNING)})
	metricsEnabled.Store(true)
}

// SetLogger replaces the logger used by the package. A nil Logger restores
// the default one.
func SetLogger(l y.Logger) {
	if l == nil {
		l = y.DefaultLogger(y.WARNING)
	}
	logger.Store(loggerHolder{l})
}

func getLogger() y.Logger {
	return logger.Load().(loggerHolder).Logger
}

// SetMetricsEnabled turns the expvar metrics of the package on or off.
func SetMetricsEnabled(enabled bool) {
	metricsEnabled.Store(enabled)
}
