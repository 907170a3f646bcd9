// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that need direct
// access to the continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// FromReader lifts a Reader into a continuation over the same environment.
// The environment is supplied when the continuation runs.
func FromReader[E, R, A any](r Reader[E, A], env E) Cont[R, A] {
	return func(k func(A) R) R {
		return k(r(env))
	}
}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// Run evaluates m with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith evaluates m with k as the final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}
