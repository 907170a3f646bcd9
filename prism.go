// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "github.com/lightningnetwork/lnd/fn"

// Prism is a partial bidirectional accessor. Forward extracts the focus
// from S when S has the matching shape; Backward rebuilds a T from a B.
//
// On a matching branch Backward(Forward(s)) rebuilds the matched shape.
// Forward(Backward(b)) is not required to return b.
type Prism[S, T, A, B any] struct {
	forward  func(S) fn.Option[A]
	backward func(B) T
}

// NewPrism builds a Prism from its two directions.
func NewPrism[S, T, A, B any](forward func(S) fn.Option[A], backward func(B) T) Prism[S, T, A, B] {
	if forward == nil || backward == nil {
		panic("prelude: nil prism direction")
	}
	return Prism[S, T, A, B]{forward: forward, backward: backward}
}

// Forward matches s. A mismatch yields None, which is not an error.
func (p Prism[S, T, A, B]) Forward(s S) fn.Option[A] {
	return p.forward(s)
}

// Backward rebuilds a T from b.
func (p Prism[S, T, A, B]) Backward(b B) T {
	return p.backward(b)
}

// Modify applies f to the focus of s when it matches and rebuilds the
// whole. On a mismatch orElse builds the result instead.
func (p Prism[S, T, A, B]) Modify(f func(A) B, orElse func(S) T) func(S) T {
	return func(s S) T {
		return fn.ElimOption(p.forward(s),
			func() T { return orElse(s) },
			func(a A) T { return p.backward(f(a)) },
		)
	}
}

// ModifyPrism is Modify for simple prisms: a mismatch returns s unchanged.
func ModifyPrism[S, A any](p Prism[S, S, A, A], f func(A) A) func(S) S {
	return p.Modify(f, Id[S])
}

// ComposePrism focuses p2 inside the focus of p1. Forward fails as soon
// as either stage fails; Backward runs p2 then p1.
func ComposePrism[S, T, A, B, C, D any](p1 Prism[S, T, A, B], p2 Prism[A, B, C, D]) Prism[S, T, C, D] {
	return Prism[S, T, C, D]{
		forward: func(s S) fn.Option[C] {
			return fn.ElimOption(p1.forward(s), fn.None[C], p2.forward)
		},
		backward: Compose(p1.backward, p2.backward),
	}
}

// LeftPrism focuses the Left side of an Either.
func LeftPrism[L, R, M any]() Prism[Either[L, R], Either[M, R], L, M] {
	return NewPrism(
		func(e Either[L, R]) fn.Option[L] { return e.LeftOption() },
		Left[M, R],
	)
}

// RightPrism focuses the Right side of an Either.
func RightPrism[L, R, B any]() Prism[Either[L, R], Either[L, B], R, B] {
	return NewPrism(
		func(e Either[L, R]) fn.Option[R] { return e.RightOption() },
		Right[L, B],
	)
}

// ThisPrism matches a These holding only a This.
func ThisPrism[A, B, C any]() Prism[These[A, B], These[C, B], A, C] {
	return NewPrism(
		func(t These[A, B]) fn.Option[A] {
			if a, ok := t.GetThis(); ok {
				return fn.Some(a)
			}
			return fn.None[A]()
		},
		This[C, B],
	)
}

// ThatPrism matches a These holding only a That.
func ThatPrism[A, B, C any]() Prism[These[A, B], These[A, C], B, C] {
	return NewPrism(
		func(t These[A, B]) fn.Option[B] {
			if b, ok := t.GetThat(); ok {
				return fn.Some(b)
			}
			return fn.None[B]()
		},
		That[A, C],
	)
}

// SomePrism focuses a present optional value.
func SomePrism[A, B any]() Prism[fn.Option[A], fn.Option[B], A, B] {
	return NewPrism(Id[fn.Option[A]], fn.Some[B])
}
