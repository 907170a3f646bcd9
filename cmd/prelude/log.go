// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/prelude"
	"code.hybscloud.com/prelude/internal/rpn"
	"github.com/btcsuite/btclog"
)

var (
	backendLog = btclog.NewBackend(os.Stderr)

	log = backendLog.Logger("PRLC")

	// subsystemLoggers maps each subsystem tag to its logger.
	subsystemLoggers = map[string]btclog.Logger{
		"PRLC":            log,
		prelude.Subsystem: backendLog.Logger(prelude.Subsystem),
		rpn.Subsystem:     backendLog.Logger(rpn.Subsystem),
	}
)

func init() {
	prelude.UseLogger(subsystemLoggers[prelude.Subsystem])
	rpn.UseLogger(subsystemLoggers[rpn.Subsystem])
}

// setupLoggers sets every subsystem logger to the named level.
func setupLoggers(levelName string) error {
	level, ok := btclog.LevelFromString(levelName)
	if !ok {
		return fmt.Errorf("invalid log level %q", levelName)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	log.Debugf("Log level set to %v", level)
	return nil
}
