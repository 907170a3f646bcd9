// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Getter reads an A out of an S. It runs against Const, whose phantom
// parameter lets the read value flow back out unchanged.
type Getter[S, A any] struct {
	run func(func(A) Const[A, A]) func(S) Const[A, S]
}

// NewGetter builds a Getter from a plain accessor.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	if get == nil {
		panic("prelude: nil getter")
	}
	return Getter[S, A]{
		run: func(k func(A) Const[A, A]) func(S) Const[A, S] {
			return func(s S) Const[A, S] {
				return MapConst[A, A, S](k(get(s)), nil)
			}
		},
	}
}

// View reads the focus of s.
func (g Getter[S, A]) View(s S) A {
	return g.run(MakeConst[A, A])(s).Value
}

// ComposeGetter reads g2 through g1.
func ComposeGetter[S, A, B any](g1 Getter[S, A], g2 Getter[A, B]) Getter[S, B] {
	return NewGetter(Pipe(g1.View, g2.View))
}
