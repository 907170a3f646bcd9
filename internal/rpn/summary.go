// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpn

import (
	"fmt"

	"code.hybscloud.com/prelude"
)

// Summary describes a list of numbers.
type Summary struct {
	Count   int
	Sum     float64
	Product float64
	Min     float64
	Max     float64
	Mean    float64
}

// Summarize folds xs into a Summary. An empty xs yields an error wrapping
// prelude.ErrEmptyStructure.
func Summarize(xs []float64) (Summary, error) {
	f := prelude.Slice[float64](xs)

	lo, err := prelude.Minimum(f)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	hi, err := prelude.Maximum(f)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	totals := prelude.FoldMap(f,
		prelude.PairMonoid(prelude.SumMonoid[int](), prelude.ProductMonoid[float64]()),
		func(x float64) prelude.Pair[int, float64] {
			return prelude.MakePair(1, x)
		},
	)
	sum := prelude.Fold(f, prelude.SumMonoid[float64]())

	return Summary{
		Count:   prelude.Length(f),
		Sum:     sum,
		Product: totals.Snd,
		Min:     lo,
		Max:     hi,
		Mean:    sum / float64(totals.Fst),
	}, nil
}

// MaxDepth returns the deepest stack a trace reached.
func MaxDepth(steps []Step) int {
	depth := prelude.NewGetter(func(s Step) int { return len(s.Stack) })
	depths := prelude.SliceSetter[Step, int]().Over(depth.View)(steps)
	deepest, err := prelude.Maximum(prelude.Slice[int](depths))
	if err != nil {
		return 0
	}
	return deepest
}
