// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair with full type inference.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Unpack returns both components as Go multiple return values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.Fst, p.Snd
}

// Swap exchanges the components.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
