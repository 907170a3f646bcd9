// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "github.com/btcsuite/btclog"

// Subsystem is the logging tag used by this package.
const Subsystem = "PRLD"

// log is disabled by default; callers opt in with UseLogger.
var log = btclog.Disabled

// DisableLog disables all library log output.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger routes library log output to logger.
// It is not safe to call concurrently with running computations.
func UseLogger(logger btclog.Logger) {
	log = logger
}
