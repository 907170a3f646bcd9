// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "github.com/lightningnetwork/lnd/fn"

// Free function combinators. None of these hold state.

// Id returns its argument.
func Id[A any](a A) A {
	return fn.Iden(a)
}

// ConstFunc returns a function that ignores its argument and returns a.
func ConstFunc[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// Compose is right-to-left composition: Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return fn.Comp(g, f)
}

// Pipe is left-to-right composition: Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return fn.Comp(f, g)
}

// Curry turns a two-argument function into a chain of one-argument functions.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

// Uncurry inverts Curry.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return f(a)(b) }
}

// Curry3 is Curry for three arguments.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	}
}

// Uncurry3 inverts Curry3.
func Uncurry3[A, B, C, D any](f func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D { return f(a)(b)(c) }
}

// Flip swaps the first two arguments of a curried function.
func Flip[A, B, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C { return f(a)(b) }
	}
}

// ZipWith combines xs and ys pairwise with f, stopping at the shorter input.
func ZipWith[A, B, C any](f func(A, B) C, xs []A, ys []B) []C {
	n := min(len(xs), len(ys))
	out := make([]C, n)
	for i := range n {
		out[i] = f(xs[i], ys[i])
	}
	return out
}

// Fix ties the knot for an open-recursive function.
//
// Example:
//
//	fact := Fix(func(self func(int) int) func(int) int {
//		return func(n int) int {
//			if n == 0 {
//				return 1
//			}
//			return n * self(n-1)
//		}
//	})
func Fix[A, B any](f func(func(A) B) func(A) B) func(A) B {
	var self func(A) B
	self = func(a A) B { return f(self)(a) }
	return self
}
