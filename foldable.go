// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn"
	"golang.org/x/exp/constraints"
)

// Foldable is a structure that can be reduced to a summary value.
//
// Minimal definition: Elements enumerates the elements in fold order. This
// is foldMap specialised to the free monoid; every other operation in this
// file is derived from FoldMap, so instances only need Elements.
type Foldable[A any] interface {
	Elements() iter.Seq[A]
}

// Slice is a sequence viewed as a Foldable.
type Slice[A any] []A

// Elements implements Foldable.
func (s Slice[A]) Elements() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, a := range s {
			if !yield(a) {
				return
			}
		}
	}
}

// optionFoldable adapts fn.Option to Foldable.
type optionFoldable[A any] struct{ o fn.Option[A] }

func (f optionFoldable[A]) Elements() iter.Seq[A] {
	return func(yield func(A) bool) {
		f.o.WhenSome(func(a A) { yield(a) })
	}
}

// FromOption views an optional value as a Foldable of zero or one element.
func FromOption[A any](o fn.Option[A]) Foldable[A] {
	return optionFoldable[A]{o: o}
}

// FoldMap maps every element into the monoid m and combines the results
// in fold order.
func FoldMap[A, M any](f Foldable[A], m Monoid[M], g func(A) M) M {
	acc := m.Empty()
	for a := range f.Elements() {
		acc = m.Combine(acc, g(a))
	}
	return acc
}

// Fold combines the elements of f, which are themselves monoid values.
func Fold[A any](f Foldable[A], m Monoid[A]) A {
	return FoldMap(f, m, Id[A])
}

// Foldr is a right-associative fold: g(a1, g(a2, ... g(an, init))).
func Foldr[A, T any](f Foldable[A], init T, g func(A, T) T) T {
	endo := FoldMap(f, EndoMonoid[T](), func(a A) Endo[T] {
		return func(t T) T { return g(a, t) }
	})
	return endo.Apply(init)
}

// Foldl is a left-associative fold: g(... g(g(init, a1), a2) ..., an).
func Foldl[A, T any](f Foldable[A], init T, g func(T, A) T) T {
	endo := FoldMap(f, DualMonoid(EndoMonoid[T]()), func(a A) Endo[T] {
		return func(t T) T { return g(t, a) }
	})
	return endo.Apply(init)
}

// Foldr1 is Foldr seeded with the last element. A single element is
// returned unchanged; an empty structure yields ErrEmptyStructure.
func Foldr1[A any](f Foldable[A], g func(A, A) A) (A, error) {
	folded := Foldr(f, fn.None[A](), func(a A, acc fn.Option[A]) fn.Option[A] {
		return fn.ElimOption(acc,
			func() fn.Option[A] { return fn.Some(a) },
			func(b A) fn.Option[A] { return fn.Some(g(a, b)) },
		)
	})
	return unwrapFolded(folded)
}

// Foldl1 is Foldl seeded with the first element. A single element is
// returned unchanged; an empty structure yields ErrEmptyStructure.
func Foldl1[A any](f Foldable[A], g func(A, A) A) (A, error) {
	folded := Foldl(f, fn.None[A](), func(acc fn.Option[A], b A) fn.Option[A] {
		return fn.ElimOption(acc,
			func() fn.Option[A] { return fn.Some(b) },
			func(a A) fn.Option[A] { return fn.Some(g(a, b)) },
		)
	})
	return unwrapFolded(folded)
}

func unwrapFolded[A any](o fn.Option[A]) (A, error) {
	return fn.ElimOption(o,
		func() Pair[A, error] {
			var zero A
			return Pair[A, error]{Fst: zero, Snd: ErrEmptyStructure}
		},
		func(a A) Pair[A, error] { return Pair[A, error]{Fst: a} },
	).Unpack()
}

// IsEmpty reports whether f yields no elements.
func IsEmpty[A any](f Foldable[A]) bool {
	return Foldr(f, true, func(A, bool) bool { return false })
}

// Length counts the elements of f.
func Length[A any](f Foldable[A]) int {
	return Foldl(f, 0, func(n int, _ A) int { return n + 1 })
}

// Find returns the first element in fold order satisfying pred.
func Find[A any](f Foldable[A], pred func(A) bool) fn.Option[A] {
	return FoldMap(f, FirstMonoid[A](), func(a A) fn.Option[A] {
		if pred(a) {
			return fn.Some(a)
		}
		return fn.None[A]()
	})
}

// ToList collects the elements of f in fold order.
func ToList[A any](f Foldable[A]) []A {
	return Foldr(f, []A{}, func(a A, xs []A) []A {
		return append([]A{a}, xs...)
	})
}

// Maximum returns the greatest element of f.
func Maximum[A constraints.Ordered](f Foldable[A]) (A, error) {
	return unwrapFolded(FoldMap(f, MaxMonoid[A](), fn.Some[A]))
}

// Minimum returns the least element of f.
func Minimum[A constraints.Ordered](f Foldable[A]) (A, error) {
	return unwrapFolded(FoldMap(f, MinMonoid[A](), fn.Some[A]))
}

// Elem reports whether x occurs in f.
func Elem[A comparable](f Foldable[A], x A) bool {
	return Foldl(f, false, func(found bool, a A) bool {
		return found || a == x
	})
}

// NotElem is the negation of Elem.
func NotElem[A comparable](f Foldable[A], x A) bool {
	return !Elem(f, x)
}

// Any reports whether some element satisfies pred.
func Any[A any](f Foldable[A], pred func(A) bool) bool {
	return FoldMap(f, AnyMonoid(), pred)
}

// All reports whether every element satisfies pred.
func All[A any](f Foldable[A], pred func(A) bool) bool {
	return FoldMap(f, AllMonoid(), pred)
}
