// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Reader operations.
// Reader[E, A] is a value of A that depends on a read-only environment E.

// Reader is a computation over an environment.
type Reader[E, A any] func(E) A

// Run evaluates r against env.
func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

// Local runs r against an environment transformed by f.
//
// For nested calls, r.Local(f).Local(g) runs r against f(g(env)): the
// outermost transform sees the caller's environment first.
func (r Reader[E, A]) Local(f func(E) E) Reader[E, A] {
	return func(env E) A {
		return r(f(env))
	}
}

// WithReader runs r in a different environment type by projecting with f.
func WithReader[E, F, A any](f func(F) E, r Reader[E, A]) Reader[F, A] {
	return func(env F) A {
		return r(f(env))
	}
}

// PureReader ignores the environment and returns a.
func PureReader[E, A any](a A) Reader[E, A] {
	return ConstFunc[E](a)
}

// Ask returns the environment itself.
func Ask[E any]() Reader[E, E] {
	return Id[E]
}

// Asks returns f applied to the environment.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return f
}

// MapReader post-composes f onto r.
func MapReader[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B {
		return f(r(env))
	}
}

// FlatMapReader runs r, then runs the Reader chosen by f against the same
// environment.
func FlatMapReader[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(r(env))(env)
	}
}

// ThenReader runs r for nothing and returns next.
func ThenReader[E, A, B any](r Reader[E, A], next Reader[E, B]) Reader[E, B] {
	return FlatMapReader(r, ConstFunc[A](next))
}

// ApReader applies the function read by rf to the value read by ra.
func ApReader[E, A, B any](rf Reader[E, func(A) B], ra Reader[E, A]) Reader[E, B] {
	return func(env E) B {
		return rf(env)(ra(env))
	}
}

// SequenceReader runs every Reader against one environment, in order.
func SequenceReader[E, A any](rs []Reader[E, A]) Reader[E, []A] {
	return func(env E) []A {
		out := make([]A, len(rs))
		for i, r := range rs {
			out[i] = r(env)
		}
		return out
	}
}
