// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn"
)

type theseTag uint8

const (
	theseThis theseTag = iota
	theseThat
	theseBoth
)

// These holds an A, a B, or both.
// That is the payload side: Map, FlatMap and Foldable act on it, and a
// present This survives through Both.
type These[A, B any] struct {
	tag  theseTag
	this A
	that B
}

// This creates a These holding only a.
func This[A, B any](a A) These[A, B] {
	return These[A, B]{tag: theseThis, this: a}
}

// That creates a These holding only b.
func That[A, B any](b B) These[A, B] {
	return These[A, B]{tag: theseThat, that: b}
}

// Both creates a These holding a and b.
func Both[A, B any](a A, b B) These[A, B] {
	return These[A, B]{tag: theseBoth, this: a, that: b}
}

// MatchThese pattern matches on the three shapes.
func MatchThese[A, B, T any](t These[A, B], onThis func(A) T, onThat func(B) T, onBoth func(A, B) T) T {
	switch t.tag {
	case theseThis:
		return onThis(t.this)
	case theseThat:
		return onThat(t.that)
	default:
		return onBoth(t.this, t.that)
	}
}

// IsThis reports whether t holds only an A.
func (t These[A, B]) IsThis() bool { return t.tag == theseThis }

// IsThat reports whether t holds only a B.
func (t These[A, B]) IsThat() bool { return t.tag == theseThat }

// IsBoth reports whether t holds an A and a B.
func (t These[A, B]) IsBoth() bool { return t.tag == theseBoth }

// GetThis returns the A of a This.
func (t These[A, B]) GetThis() (A, bool) {
	if t.tag == theseThis {
		return t.this, true
	}
	var zero A
	return zero, false
}

// GetThat returns the B of a That.
func (t These[A, B]) GetThat() (B, bool) {
	if t.tag == theseThat {
		return t.that, true
	}
	var zero B
	return zero, false
}

// GetBoth returns the components of a Both.
func (t These[A, B]) GetBoth() (A, B, bool) {
	if t.tag == theseBoth {
		return t.this, t.that, true
	}
	var (
		za A
		zb B
	)
	return za, zb, false
}

// ThisOption returns the A of a This or a Both.
func (t These[A, B]) ThisOption() fn.Option[A] {
	return MatchThese(t,
		fn.Some[A],
		func(B) fn.Option[A] { return fn.None[A]() },
		func(a A, _ B) fn.Option[A] { return fn.Some(a) },
	)
}

// ThatOption returns the B of a That or a Both.
func (t These[A, B]) ThatOption() fn.Option[B] {
	return MatchThese(t,
		func(A) fn.Option[B] { return fn.None[B]() },
		fn.Some[B],
		func(_ A, b B) fn.Option[B] { return fn.Some(b) },
	)
}

// Elements implements Foldable over the That side. A This yields nothing.
func (t These[A, B]) Elements() iter.Seq[B] {
	return func(yield func(B) bool) {
		if t.tag != theseThis {
			yield(t.that)
		}
	}
}

// MapThese applies f to the That side.
func MapThese[A, B, C any](t These[A, B], f func(B) C) These[A, C] {
	return BimapThese(t, Id[A], f)
}

// MapThisThese applies f to the This side.
func MapThisThese[A, B, C any](t These[A, B], f func(A) C) These[C, B] {
	return BimapThese(t, f, Id[B])
}

// BimapThese applies f to the This side and g to the That side.
func BimapThese[A, B, C, D any](t These[A, B], f func(A) C, g func(B) D) These[C, D] {
	return MatchThese(t,
		func(a A) These[C, D] { return This[C, D](f(a)) },
		func(b B) These[C, D] { return That[C](g(b)) },
		func(a A, b B) These[C, D] { return Both(f(a), g(b)) },
	)
}

// TheseSemigroup combines These values componentwise. Mixed shapes are
// upgraded towards Both:
//
//	This a <> This b       = This (a<>b)
//	This a <> That y       = Both a y
//	This a <> Both b y     = Both (a<>b) y
//	That x <> This b       = Both b x
//	That x <> That y       = That (x<>y)
//	That x <> Both b y     = Both b (x<>y)
//	Both a x <> This b     = Both (a<>b) x
//	Both a x <> That y     = Both a (x<>y)
//	Both a x <> Both b y   = Both (a<>b) (x<>y)
//
// The result is not commutative even when sa and sb are.
func TheseSemigroup[A, B any](sa Semigroup[A], sb Semigroup[B]) Semigroup[These[A, B]] {
	return SemigroupOf(func(l, r These[A, B]) These[A, B] {
		return CombineThese(sa, sb, l, r)
	})
}

// CombineThese is TheseSemigroup(sa, sb).Combine(l, r).
func CombineThese[A, B any](sa Semigroup[A], sb Semigroup[B], l, r These[A, B]) These[A, B] {
	switch {
	case l.tag == theseThis && r.tag == theseThis:
		return This[A, B](sa.Combine(l.this, r.this))
	case l.tag == theseThat && r.tag == theseThat:
		return That[A](sb.Combine(l.that, r.that))
	case l.tag == theseThis && r.tag == theseThat:
		return Both(l.this, r.that)
	case l.tag == theseThat && r.tag == theseThis:
		return Both(r.this, l.that)
	case l.tag == theseThis:
		return Both(sa.Combine(l.this, r.this), r.that)
	case l.tag == theseThat:
		return Both(r.this, sb.Combine(l.that, r.that))
	case r.tag == theseThis:
		return Both(sa.Combine(l.this, r.this), l.that)
	case r.tag == theseThat:
		return Both(l.this, sb.Combine(l.that, r.that))
	default:
		return Both(sa.Combine(l.this, r.this), sb.Combine(l.that, r.that))
	}
}

// PureThese is That.
func PureThese[A, B any](b B) These[A, B] {
	return That[A](b)
}

// FlatMapThese sequences on the That side. A This short-circuits; the
// This of a Both is combined with whatever This f produces using sa.
func FlatMapThese[A, B, C any](sa Semigroup[A], t These[A, B], f func(B) These[A, C]) These[A, C] {
	return MatchThese(t,
		This[A, C],
		f,
		func(a A, b B) These[A, C] {
			return MatchThese(f(b),
				func(a2 A) These[A, C] { return This[A, C](sa.Combine(a, a2)) },
				func(c C) These[A, C] { return Both(a, c) },
				func(a2 A, c C) These[A, C] { return Both(sa.Combine(a, a2), c) },
			)
		},
	)
}

// ApThese applies the That function in ff to the That value in fa,
// accumulating This values from ff first.
func ApThese[A, B, C any](sa Semigroup[A], ff These[A, func(B) C], fa These[A, B]) These[A, C] {
	return FlatMapThese(sa, ff, func(f func(B) C) These[A, C] {
		return MapThese(fa, f)
	})
}
