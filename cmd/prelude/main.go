// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/prelude/internal/rpn"
	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[prelude] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "prelude"
	app.Usage = "evaluate and summarise numbers with the prelude combinators"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "loglevel",
			Value:  "info",
			Usage:  "logging level for all subsystems {trace, debug, info, warn, error, critical, off}",
			EnvVar: "PRELUDE_LOGLEVEL",
		},
		cli.IntFlag{
			Name:   "precision",
			Value:  rpn.DefaultPrecision,
			Usage:  "decimal places to round results to, negative for shortest exact form",
			EnvVar: "PRELUDE_PRECISION",
		},
		cli.IntFlag{
			Name:  "maxdepth",
			Value: rpn.DefaultMaxDepth,
			Usage: "maximum stack depth, 0 for unbounded",
		},
	}
	app.Before = func(c *cli.Context) error {
		return setupLoggers(c.GlobalString("loglevel"))
	}
	app.Commands = []cli.Command{
		evalCommand,
		statsCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// getEnv builds the evaluation environment from the global flags.
func getEnv(c *cli.Context) (rpn.Env, error) {
	env := rpn.Env{
		Precision: c.GlobalInt("precision"),
		MaxDepth:  c.GlobalInt("maxdepth"),
	}
	if err := env.Validate(); err != nil {
		return rpn.Env{}, err
	}
	return env, nil
}
