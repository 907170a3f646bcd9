// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"code.hybscloud.com/prelude/internal/rpn"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"
)

var statsCommand = cli.Command{
	Name:      "stats",
	Usage:     "summarise a list of numbers",
	ArgsUsage: "NUMBERS...",
	Action:    numberStats,
}

func numberStats(c *cli.Context) error {
	env, err := getEnv(c)
	if err != nil {
		return err
	}

	nums, err := rpn.ParseNumbers([]string(c.Args()))
	if err != nil {
		return err
	}

	summary, err := rpn.Summarize(nums)
	if err != nil {
		return err
	}
	log.Debugf("Summarised %d numbers", summary.Count)

	format := func(x float64) string { return rpn.Format(x).Run(env) }

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Count", "Sum", "Product", "Min", "Max", "Mean"})
	t.AppendRow(table.Row{
		summary.Count,
		format(summary.Sum),
		format(summary.Product),
		format(summary.Min),
		format(summary.Max),
		format(summary.Mean),
	})
	t.Render()

	return nil
}
