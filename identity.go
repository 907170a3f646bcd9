// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "iter"

// Identity wraps a single value with no computational context.
// Writer and State run to an Identity, and Setter uses it as the
// trivial functor.
type Identity[A any] struct {
	Value A
}

// PureIdentity wraps a.
func PureIdentity[A any](a A) Identity[A] {
	return Identity[A]{Value: a}
}

// MapIdentity applies f to the wrapped value.
func MapIdentity[A, B any](m Identity[A], f func(A) B) Identity[B] {
	return Identity[B]{Value: f(m.Value)}
}

// FlatMapIdentity applies f to the wrapped value and returns its result.
func FlatMapIdentity[A, B any](m Identity[A], f func(A) Identity[B]) Identity[B] {
	return f(m.Value)
}

// ApIdentity applies the wrapped function to the wrapped value.
func ApIdentity[A, B any](ff Identity[func(A) B], fa Identity[A]) Identity[B] {
	return Identity[B]{Value: ff.Value(fa.Value)}
}

// Elements implements Foldable. An Identity always yields exactly one element.
func (m Identity[A]) Elements() iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(m.Value)
	}
}
