// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpn

import (
	"errors"
	"math"
	"strconv"

	"code.hybscloud.com/prelude"
	"github.com/lightningnetwork/lnd/fn"
)

var (
	// ErrDivisionByZero is returned when the divisor of / is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownToken is returned for a token that is neither a number
	// nor an operator.
	ErrUnknownToken = errors.New("unknown token")
)

// Operator pops Arity values, top first, and pushes the values Apply
// returns, bottom first.
type Operator struct {
	Symbol string
	Arity  int
	Apply  func(args []float64) ([]float64, error)
}

func binary(symbol string, f func(x, y float64) (float64, error)) Operator {
	return Operator{
		Symbol: symbol,
		Arity:  2,
		Apply: func(args []float64) ([]float64, error) {
			// args[0] was on top, so it is the right operand.
			r, err := f(args[1], args[0])
			if err != nil {
				return nil, err
			}
			return []float64{r}, nil
		},
	}
}

func total(f func(x, y float64) float64) func(x, y float64) (float64, error) {
	return func(x, y float64) (float64, error) { return f(x, y), nil }
}

var operators = map[string]Operator{
	"+": binary("+", total(func(x, y float64) float64 { return x + y })),
	"-": binary("-", total(func(x, y float64) float64 { return x - y })),
	"*": binary("*", total(func(x, y float64) float64 { return x * y })),
	"^": binary("^", total(math.Pow)),
	"/": binary("/", func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	}),
	"neg": {Symbol: "neg", Arity: 1, Apply: func(a []float64) ([]float64, error) {
		return []float64{-a[0]}, nil
	}},
	"dup": {Symbol: "dup", Arity: 1, Apply: func(a []float64) ([]float64, error) {
		return []float64{a[0], a[0]}, nil
	}},
	"swap": {Symbol: "swap", Arity: 2, Apply: func(a []float64) ([]float64, error) {
		return []float64{a[0], a[1]}, nil
	}},
	"drop": {Symbol: "drop", Arity: 1, Apply: func([]float64) ([]float64, error) {
		return nil, nil
	}},
}

// NumberPrism matches tokens that parse as a float64.
var NumberPrism = prelude.NewPrism(
	func(tok string) fn.Option[float64] {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fn.None[float64]()
		}
		return fn.Some(x)
	},
	func(x float64) string {
		return strconv.FormatFloat(x, 'g', -1, 64)
	},
)

// OperatorPrism matches tokens naming a known operator.
var OperatorPrism = prelude.NewPrism(
	func(tok string) fn.Option[Operator] {
		op, ok := operators[tok]
		if !ok {
			return fn.None[Operator]()
		}
		return fn.Some(op)
	},
	func(op Operator) string {
		return op.Symbol
	},
)

// Classify resolves tok to either an operator (Left) or a number (Right).
func Classify(tok string) prelude.Either[error, prelude.Either[Operator, float64]] {
	type token = prelude.Either[Operator, float64]

	return fn.ElimOption(NumberPrism.Forward(tok),
		func() prelude.Either[error, token] {
			return fn.ElimOption(OperatorPrism.Forward(tok),
				func() prelude.Either[error, token] {
					return prelude.Left[error, token](
						&TokenError{Token: tok, Err: ErrUnknownToken},
					)
				},
				func(op Operator) prelude.Either[error, token] {
					return prelude.Right[error](prelude.Left[Operator, float64](op))
				},
			)
		},
		func(x float64) prelude.Either[error, token] {
			return prelude.Right[error](prelude.Right[Operator](x))
		},
	)
}

// ParseNumbers parses every argument as a number. All malformed arguments
// are reported together.
func ParseNumbers(args []string) ([]float64, error) {
	parsed := make([]prelude.Either[error, float64], len(args))
	for i, arg := range args {
		parsed[i] = fn.ElimOption(NumberPrism.Forward(arg),
			func() prelude.Either[error, float64] {
				return prelude.Left[error, float64](
					&TokenError{Token: arg, Err: ErrUnknownToken},
				)
			},
			prelude.Right[error, float64],
		)
	}
	bad, nums := prelude.PartitionEithers(parsed)
	if len(bad) > 0 {
		return nil, errors.Join(bad...)
	}
	return nums, nil
}

// TokenError attaches the offending token to an evaluation error.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return e.Token + ": " + e.Err.Error()
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
