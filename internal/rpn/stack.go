// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpn

import (
	"errors"

	"code.hybscloud.com/prelude"
	"github.com/lightningnetwork/lnd/fn"
)

var (
	// ErrStackUnderflow is returned when an operator needs more values
	// than the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrStackOverflow is returned when a push would exceed Env.MaxDepth.
	ErrStackOverflow = errors.New("stack overflow")
)

// Stack holds operands, top first. Stacks are never mutated in place.
type Stack = []float64

// Op is a stack operation that may fail.
type Op[A any] = prelude.State[Stack, prelude.Either[error, A]]

func pureOp[A any](a A) Op[A] {
	return prelude.PureState[Stack](prelude.Right[error](a))
}

func failOp[A any](err error) Op[A] {
	return prelude.PureState[Stack](prelude.Left[error, A](err))
}

// bindOp runs f on the result of m. A failure skips f.
func bindOp[A, B any](m Op[A], f func(A) Op[B]) Op[B] {
	return prelude.FlatMapState(m, func(e prelude.Either[error, A]) Op[B] {
		return prelude.MatchEither(e, failOp[B], f)
	})
}

// Pop removes the top of the stack.
func Pop() Op[float64] {
	return prelude.FlatMapState(prelude.Get[Stack](), func(s Stack) Op[float64] {
		if len(s) == 0 {
			return failOp[float64](ErrStackUnderflow)
		}
		return prelude.ThenState(
			prelude.Put(s[1:]),
			pureOp(s[0]),
		)
	})
}

// Push places x on top of the stack, failing when the stack is full.
func Push(x float64) prelude.Reader[Env, Op[fn.Unit]] {
	return prelude.Asks(func(e Env) Op[fn.Unit] {
		return prelude.FlatMapState(prelude.Get[Stack](), func(s Stack) Op[fn.Unit] {
			if e.MaxDepth > 0 && len(s) >= e.MaxDepth {
				return failOp[fn.Unit](ErrStackOverflow)
			}
			return prelude.ThenState(
				prelude.Modify(func(s Stack) Stack {
					out := make(Stack, 0, len(s)+1)
					out = append(out, x)
					return append(out, s...)
				}),
				pureOp(fn.Unit{}),
			)
		})
	})
}

// collect turns per-element results into one, failing with the first error.
func collect[A any](es []prelude.Either[error, A]) prelude.Either[error, []A] {
	if errs := prelude.Lefts(es); len(errs) > 0 {
		return prelude.Left[error, []A](errs[0])
	}
	return prelude.Right[error](prelude.Rights(es))
}

// PopN pops n values, top first.
func PopN(n int) Op[[]float64] {
	pops := make([]Op[float64], n)
	for i := range pops {
		pops[i] = Pop()
	}
	return prelude.MapState(prelude.SequenceState(pops), collect[float64])
}

// PushAll pushes xs in order, so the last element ends on top.
func PushAll(xs []float64) prelude.Reader[Env, Op[fn.Unit]] {
	return func(e Env) Op[fn.Unit] {
		acc := pureOp(fn.Unit{})
		for _, x := range xs {
			acc = bindOp(acc, func(fn.Unit) Op[fn.Unit] {
				return Push(x).Run(e)
			})
		}
		return acc
	}
}

// Apply runs op against the stack.
func Apply(op Operator) prelude.Reader[Env, Op[fn.Unit]] {
	return func(e Env) Op[fn.Unit] {
		return bindOp(PopN(op.Arity), func(args []float64) Op[fn.Unit] {
			out, err := op.Apply(args)
			if err != nil {
				return failOp[fn.Unit](err)
			}
			return PushAll(out).Run(e)
		})
	}
}

// Token is the stack operation for one token. A failed token leaves the
// stack as it found it.
func Token(tok string) prelude.Reader[Env, Op[fn.Unit]] {
	return func(e Env) Op[fn.Unit] {
		return prelude.FlatMapState(prelude.Get[Stack](), func(saved Stack) Op[fn.Unit] {
			step := prelude.MatchEither(Classify(tok),
				failOp[fn.Unit],
				func(t prelude.Either[Operator, float64]) Op[fn.Unit] {
					return prelude.MatchEither(t,
						func(op Operator) Op[fn.Unit] {
							return Apply(op).Run(e)
						},
						func(x float64) Op[fn.Unit] {
							return Push(x).Run(e)
						},
					)
				},
			)
			return prelude.FlatMapState(step, func(r prelude.Either[error, fn.Unit]) Op[fn.Unit] {
				if err, failed := r.GetLeft(); failed {
					return prelude.ThenState(
						prelude.Put(saved),
						failOp[fn.Unit](&TokenError{Token: tok, Err: unwrapToken(err)}),
					)
				}
				return prelude.PureState[Stack](r)
			})
		})
	}
}

func unwrapToken(err error) error {
	var te *TokenError
	if errors.As(err, &te) {
		return te.Err
	}
	return err
}
