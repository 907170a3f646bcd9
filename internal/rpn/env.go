// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpn

import (
	"fmt"
	"math"
	"strconv"

	"code.hybscloud.com/prelude"
)

const (
	// DefaultPrecision formats numbers with the fewest digits that
	// round-trip.
	DefaultPrecision = -1

	// DefaultMaxDepth bounds the stack.
	DefaultMaxDepth = 1024
)

// Env is the read-only configuration an evaluation runs under.
type Env struct {
	// Precision is the number of decimal places results are rounded and
	// printed to. A negative value disables rounding.
	Precision int

	// MaxDepth is the largest stack an evaluation may build. Zero means
	// unbounded.
	MaxDepth int
}

// DefaultEnv returns the configuration used when no flags are given.
func DefaultEnv() Env {
	return Env{Precision: DefaultPrecision, MaxDepth: DefaultMaxDepth}
}

// Validate checks that e is usable.
func (e Env) Validate() error {
	if e.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d",
			e.MaxDepth)
	}
	if e.Precision > 15 {
		return fmt.Errorf("precision must be at most 15, got %d",
			e.Precision)
	}
	return nil
}

// Format renders x at the configured precision.
func Format(x float64) prelude.Reader[Env, string] {
	return prelude.Asks(func(e Env) string {
		if e.Precision < 0 {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
		return strconv.FormatFloat(x, 'f', e.Precision, 64)
	})
}

// Round rounds x to the configured precision.
func Round(x float64) prelude.Reader[Env, float64] {
	return prelude.Asks(func(e Env) float64 {
		if e.Precision < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			return x
		}
		scale := math.Pow10(e.Precision)
		return math.Round(x*scale) / scale
	})
}
