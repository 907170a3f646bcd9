// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Monad operations for continuations.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map, Then and Ap are derived operations kept as optimizations to avoid
// intermediate closure allocations.

// Bind sequences two continuations (monadic bind).
// It runs m, then passes the result to f to get a new continuation.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a continuation.
//
// Map is equivalent to Bind(m, compose(Return, f)) without the
// intermediate Return closure.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then sequences two continuations, discarding the first result.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// Ap applies the function produced by mf to the value produced by ma.
// mf runs first.
func Ap[R, A, B any](mf Cont[R, func(A) B], ma Cont[R, A]) Cont[R, B] {
	return func(k func(B) R) R {
		return mf(func(f func(A) B) R {
			return ma(func(a A) R {
				return k(f(a))
			})
		})
	}
}

// Sequence runs ms in order and collects their results.
func Sequence[R, A any](ms []Cont[R, A]) Cont[R, []A] {
	acc := Return[R]([]A{})
	for _, m := range ms {
		acc = Bind(acc, func(xs []A) Cont[R, []A] {
			return Map(m, func(a A) []A {
				out := make([]A, len(xs), len(xs)+1)
				copy(out, xs)
				return append(out, a)
			})
		})
	}
	return acc
}
