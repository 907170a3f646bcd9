// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpn

import (
	"errors"
	"slices"

	"code.hybscloud.com/prelude"
	"github.com/lightningnetwork/lnd/fn"
)

// ErrNoResult is returned when evaluation leaves the stack empty.
var ErrNoResult = errors.New("no result on stack")

// Step records one evaluated token.
type Step struct {
	// Token is the input token.
	Token string

	// Stack is the stack after the token, top first.
	Stack Stack

	// Err is the failure the token produced, if any.
	Err error
}

// Trace is the accumulated step log of an evaluation.
type Trace = prelude.Writer[[]Step, Stack]

// Outcome is an evaluation result with its step log.
type Outcome = prelude.Writer[[]Step, prelude.Either[error, Stack]]

type loop = prelude.Cont[prelude.Expr[Outcome], Outcome]

func traceMonoid() prelude.Monoid[[]Step] {
	return prelude.SliceMonoid[Step]()
}

// Eval runs tokens against an empty stack. Evaluation stops at the first
// failing token; the trace still holds every step up to and including it.
//
// The token loop runs on the trampoline, so the token count does not
// bound Go stack depth.
func Eval(tokens []string) prelude.Reader[Env, Outcome] {
	return func(e Env) Outcome {
		log.Debugf("Evaluating %d tokens", len(tokens))

		body := prelude.CallCC(func(abort func(Outcome) loop) loop {
			var run func(i int, tr Trace) loop
			run = func(i int, tr Trace) loop {
				if i == len(tokens) {
					return prelude.Return[prelude.Expr[Outcome]](
						prelude.MapWriter(tr, prelude.Right[error, Stack]),
					)
				}

				tok := tokens[i]
				res, next := Token(tok).Run(e).Run(tr.Value())
				step := Step{Token: tok, Stack: slices.Clone(next)}
				if err, failed := res.GetLeft(); failed {
					step.Err = err
				}
				log.Tracef("Token %q -> %v", tok, step.Stack)

				tr = prelude.FlatMapWriter(tr, func(Stack) Trace {
					return prelude.NewWriter(traceMonoid(), next, []Step{step})
				})
				if step.Err != nil {
					return abort(prelude.NewWriter(
						traceMonoid(),
						prelude.Left[error, Stack](step.Err),
						tr.Exec(),
					))
				}

				return prelude.Bind(
					prelude.Bounce(prelude.Return[prelude.Expr[Outcome]](tr)),
					func(tr Trace) loop { return run(i+1, tr) },
				)
			}

			return prelude.Map(run(0, prelude.PureWriter(traceMonoid(), Stack{})),
				func(o Outcome) Outcome { return roundOutcome(o).Run(e) },
			)
		})

		return prelude.RunContExpr(body)
	}
}

// roundOutcome rounds every value of a successful stack.
func roundOutcome(o Outcome) prelude.Reader[Env, Outcome] {
	return func(e Env) Outcome {
		round := func(x float64) float64 { return Round(x).Run(e) }
		values := prelude.ComposeSetter(
			prelude.RightSetter[error, Stack, Stack](),
			prelude.SliceSetter[float64, float64](),
		)
		return prelude.MapWriter(o, values.Over(round))
	}
}

// Top returns the top of a successful outcome.
func Top(o Outcome) prelude.Either[error, float64] {
	return prelude.FlatMapEither(o.Value(), func(s Stack) prelude.Either[error, float64] {
		top := prelude.Find(prelude.Slice[float64](s), prelude.ConstFunc[float64](true))
		return fn.ElimOption(top,
			func() prelude.Either[error, float64] {
				return prelude.Left[error, float64](ErrNoResult)
			},
			prelude.Right[error, float64],
		)
	})
}

// EvalTop evaluates tokens and returns the top of the resulting stack.
func EvalTop(tokens []string) prelude.Reader[Env, prelude.Either[error, float64]] {
	return prelude.MapReader(Eval(tokens), Top)
}
