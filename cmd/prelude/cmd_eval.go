// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"code.hybscloud.com/prelude"
	"code.hybscloud.com/prelude/internal/rpn"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"
)

var evalCommand = cli.Command{
	Name:  "eval",
	Usage: "evaluate a reverse polish expression",
	Description: `
	Evaluate the tokens as a reverse polish expression and print the
	value left on top of the stack. Operators: + - * / ^ neg dup swap drop.

	Place negative numbers after -- so they are not read as flags:

	    prelude eval -- 2 -3 *`,
	ArgsUsage: "TOKENS...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "trace",
			Usage: "print the stack after every token",
		},
	},
	Action: evalExpression,
}

func evalExpression(c *cli.Context) error {
	tokens := []string(c.Args())
	if len(tokens) == 0 {
		return cli.ShowCommandHelp(c, "eval")
	}

	env, err := getEnv(c)
	if err != nil {
		return err
	}

	outcome := rpn.Eval(tokens).Run(env)
	if c.Bool("trace") {
		printTrace(env, outcome.Exec())
	}

	return prelude.MatchEither(rpn.Top(outcome),
		func(err error) error {
			var te *rpn.TokenError
			if errors.As(err, &te) {
				log.Debugf("Evaluation stopped at %q", te.Token)
			}
			return err
		},
		func(top float64) error {
			fmt.Println(rpn.Format(top).Run(env))
			return nil
		},
	)
}

func printTrace(env rpn.Env, steps []rpn.Step) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Token", "Stack", "Error"})
	for i, step := range steps {
		values := make([]string, len(step.Stack))
		for j, x := range step.Stack {
			values[j] = rpn.Format(x).Run(env)
		}
		errText := ""
		if step.Err != nil {
			errText = step.Err.Error()
		}
		t.AppendRow(table.Row{
			i + 1, step.Token, strings.Join(values, " "), errText,
		})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("max depth %d",
		rpn.MaxDepth(steps)), ""})
	t.Render()
}
