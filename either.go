// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn"
)

// Either represents a value that is either Left or Right.
// Right is the payload side: Map, FlatMap and Foldable act on it.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// PureEither is Right.
func PureEither[L, R any](r R) Either[L, R] {
	return Right[L](r)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
// Every other accessor is derived from it.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return MatchEither(e, ConstFunc[L](false), ConstFunc[R](true))
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.IsRight()
}

// LeftOption returns the Left value, or None.
func (e Either[L, R]) LeftOption() fn.Option[L] {
	return MatchEither(e, fn.Some[L], func(R) fn.Option[L] { return fn.None[L]() })
}

// RightOption returns the Right value, or None.
func (e Either[L, R]) RightOption() fn.Option[R] {
	return MatchEither(e, func(L) fn.Option[R] { return fn.None[R]() }, fn.Some[R])
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	o := e.RightOption()
	var zero R
	return o.UnwrapOr(zero), o.IsSome()
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	o := e.LeftOption()
	var zero L
	return o.UnwrapOr(zero), o.IsSome()
}

// GetOrElse returns the Right value, or def for a Left.
func (e Either[L, R]) GetOrElse(def R) R {
	return MatchEither(e, ConstFunc[L](def), Id[R])
}

// ValueOr returns the Right value, or f applied to the Left value.
func (e Either[L, R]) ValueOr(f func(L) R) R {
	return MatchEither(e, f, Id[R])
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	return MatchEither(e, Right[R, L], Left[R, L])
}

// Elements implements Foldable. Only a Right yields an element.
func (e Either[L, R]) Elements() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}

// MapEither applies a function to the Right value.
func MapEither[L, A, B any](e Either[L, A], f func(A) B) Either[L, B] {
	return MatchEither(e, Left[L, B], func(a A) Either[L, B] {
		return Right[L](f(a))
	})
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	return MatchEither(e, func(l L) Either[M, R] {
		return Left[M, R](f(l))
	}, Right[M, R])
}

// BimapEither applies onLeft or onRight to whichever side is present.
func BimapEither[L, M, A, B any](e Either[L, A], onLeft func(L) M, onRight func(A) B) Either[M, B] {
	return MatchEither(e,
		func(l L) Either[M, B] { return Left[M, B](onLeft(l)) },
		func(a A) Either[M, B] { return Right[M](onRight(a)) },
	)
}

// FlatMapEither sequences two Either computations. A Left short-circuits.
func FlatMapEither[L, A, B any](e Either[L, A], f func(A) Either[L, B]) Either[L, B] {
	return MatchEither(e, Left[L, B], f)
}

// FlatMapLeftEither sequences on the Left side. A Right passes through.
func FlatMapLeftEither[L, M, R any](e Either[L, R], f func(L) Either[M, R]) Either[M, R] {
	return MatchEither(e, f, Right[M, R])
}

// ApEither applies the Right function in ff to the Right value in fa.
// When both are Left, the Left of ff is returned.
func ApEither[L, A, B any](ff Either[L, func(A) B], fa Either[L, A]) Either[L, B] {
	return FlatMapEither(ff, func(f func(A) B) Either[L, B] {
		return MapEither(fa, f)
	})
}

// Lefts collects the Left values of es in order.
func Lefts[L, R any](es []Either[L, R]) []L {
	out := make([]L, 0, len(es))
	for _, e := range es {
		if l, ok := e.GetLeft(); ok {
			out = append(out, l)
		}
	}
	return out
}

// Rights collects the Right values of es in order.
func Rights[L, R any](es []Either[L, R]) []R {
	out := make([]R, 0, len(es))
	for _, e := range es {
		if r, ok := e.GetRight(); ok {
			out = append(out, r)
		}
	}
	return out
}

// PartitionEithers splits es into its Left and Right values, preserving order.
func PartitionEithers[L, R any](es []Either[L, R]) ([]L, []R) {
	return Lefts(es), Rights(es)
}
