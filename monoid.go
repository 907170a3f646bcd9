// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import (
	"github.com/lightningnetwork/lnd/fn"
	"golang.org/x/exp/constraints"
)

// Semigroup is an associative binary operation over T.
//
// Instances must satisfy Combine(Combine(a, b), c) == Combine(a, Combine(b, c)).
type Semigroup[T any] interface {
	Combine(a, b T) T
}

// Monoid is a Semigroup with a two-sided identity element.
//
// Instances must satisfy Combine(Empty(), a) == a and Combine(a, Empty()) == a.
type Monoid[T any] interface {
	Semigroup[T]
	Empty() T
}

// Number is the set of types SumMonoid and ProductMonoid operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

type semigroupFunc[T any] struct {
	combine func(a, b T) T
}

func (s semigroupFunc[T]) Combine(a, b T) T { return s.combine(a, b) }

type monoidFunc[T any] struct {
	empty   func() T
	combine func(a, b T) T
}

func (m monoidFunc[T]) Empty() T         { return m.empty() }
func (m monoidFunc[T]) Combine(a, b T) T { return m.combine(a, b) }

// SemigroupOf builds a Semigroup from its combine function.
func SemigroupOf[T any](combine func(a, b T) T) Semigroup[T] {
	return semigroupFunc[T]{combine: combine}
}

// MonoidOf builds a Monoid from an identity element and a combine function.
func MonoidOf[T any](empty T, combine func(a, b T) T) Monoid[T] {
	return monoidFunc[T]{
		empty:   func() T { return empty },
		combine: combine,
	}
}

// Concat combines xs left to right, starting from m.Empty().
func Concat[T any](m Monoid[T], xs ...T) T {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// Sconcat combines a non-empty sequence with a Semigroup.
func Sconcat[T any](sg Semigroup[T], x T, xs ...T) T {
	acc := x
	for _, y := range xs {
		acc = sg.Combine(acc, y)
	}
	return acc
}

// SliceMonoid concatenates slices. The result never aliases either operand.
func SliceMonoid[T any]() Monoid[[]T] {
	return monoidFunc[[]T]{
		empty: func() []T { return nil },
		combine: func(a, b []T) []T {
			if len(a)+len(b) == 0 {
				return nil
			}
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// StringMonoid concatenates strings.
func StringMonoid() Monoid[string] {
	return MonoidOf("", func(a, b string) string { return a + b })
}

// SumMonoid adds numbers; the identity is zero.
func SumMonoid[N Number]() Monoid[N] {
	return MonoidOf(N(0), func(a, b N) N { return a + b })
}

// ProductMonoid multiplies numbers; the identity is one.
func ProductMonoid[N Number]() Monoid[N] {
	return MonoidOf(N(1), func(a, b N) N { return a * b })
}

// AllMonoid is boolean conjunction.
func AllMonoid() Monoid[bool] {
	return MonoidOf(true, func(a, b bool) bool { return a && b })
}

// AnyMonoid is boolean disjunction.
func AnyMonoid() Monoid[bool] {
	return MonoidOf(false, func(a, b bool) bool { return a || b })
}

// FirstMonoid keeps the leftmost present value.
func FirstMonoid[A any]() Monoid[fn.Option[A]] {
	return MonoidOf(fn.None[A](), func(a, b fn.Option[A]) fn.Option[A] {
		if a.IsSome() {
			return a
		}
		return b
	})
}

// LastMonoid keeps the rightmost present value.
func LastMonoid[A any]() Monoid[fn.Option[A]] {
	return MonoidOf(fn.None[A](), func(a, b fn.Option[A]) fn.Option[A] {
		if b.IsSome() {
			return b
		}
		return a
	})
}

// MaxMonoid keeps the greatest present value. None is the identity.
func MaxMonoid[A constraints.Ordered]() Monoid[fn.Option[A]] {
	return OptionMonoid(SemigroupOf(func(a, b A) A {
		if b > a {
			return b
		}
		return a
	}))
}

// MinMonoid keeps the least present value. None is the identity.
func MinMonoid[A constraints.Ordered]() Monoid[fn.Option[A]] {
	return OptionMonoid(SemigroupOf(func(a, b A) A {
		if b < a {
			return b
		}
		return a
	}))
}

// OptionMonoid lifts a Semigroup into a Monoid over optional values.
// None is the identity; two present values are combined with sg.
func OptionMonoid[A any](sg Semigroup[A]) Monoid[fn.Option[A]] {
	return MonoidOf(fn.None[A](), func(a, b fn.Option[A]) fn.Option[A] {
		return fn.ElimOption(a,
			func() fn.Option[A] { return b },
			func(x A) fn.Option[A] {
				return fn.ElimOption(b,
					func() fn.Option[A] { return a },
					func(y A) fn.Option[A] { return fn.Some(sg.Combine(x, y)) },
				)
			},
		)
	})
}

// Endo is a function from a type to itself. Endos form a monoid under
// composition with the identity function as the empty element.
type Endo[A any] func(A) A

// Apply runs the endomorphism.
func (e Endo[A]) Apply(a A) A { return e(a) }

// EndoMonoid composes endomorphisms right to left:
// Combine(f, g).Apply(x) == f(g(x)).
func EndoMonoid[A any]() Monoid[Endo[A]] {
	return MonoidOf(Endo[A](Id[A]), func(f, g Endo[A]) Endo[A] {
		return func(a A) A { return f(g(a)) }
	})
}

// DualMonoid reverses the argument order of m.Combine.
func DualMonoid[T any](m Monoid[T]) Monoid[T] {
	return monoidFunc[T]{
		empty:   m.Empty,
		combine: func(a, b T) T { return m.Combine(b, a) },
	}
}

// PairMonoid combines pairs componentwise.
func PairMonoid[A, B any](ma Monoid[A], mb Monoid[B]) Monoid[Pair[A, B]] {
	return monoidFunc[Pair[A, B]]{
		empty: func() Pair[A, B] {
			return Pair[A, B]{Fst: ma.Empty(), Snd: mb.Empty()}
		},
		combine: func(x, y Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{
				Fst: ma.Combine(x.Fst, y.Fst),
				Snd: mb.Combine(x.Snd, y.Snd),
			}
		},
	}
}
