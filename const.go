// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "iter"

// Const carries a value of A and a phantom B. Mapping over B never
// touches Value; Getter uses this to read through a Setter-shaped path.
type Const[A, B any] struct {
	Value A
}

// MakeConst builds a Const with an explicit phantom type.
func MakeConst[B, A any](a A) Const[A, B] {
	return Const[A, B]{Value: a}
}

// MapConst changes the phantom type. Value is unchanged and f is never
// called, so it may be nil.
func MapConst[A, B, C any](c Const[A, B], _ func(B) C) Const[A, C] {
	return Const[A, C]{Value: c.Value}
}

// PureConst is the applicative unit: the monoid identity.
func PureConst[A, B any](m Monoid[A], _ B) Const[A, B] {
	return Const[A, B]{Value: m.Empty()}
}

// ApConst combines the values of cf and ca with m.
func ApConst[A, B, C any](m Monoid[A], cf Const[A, func(B) C], ca Const[A, B]) Const[A, C] {
	return Const[A, C]{Value: m.Combine(cf.Value, ca.Value)}
}

// Elements implements Foldable. A Const never yields an element.
func (Const[A, B]) Elements() iter.Seq[B] {
	return func(func(B) bool) {}
}
