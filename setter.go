// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Setter updates the A parts of an S, producing a T whose parts are B.
// It is expressed against Identity so that Over(Id) is Id.
type Setter[S, T, A, B any] struct {
	run func(func(A) Identity[B]) func(S) Identity[T]
}

// NewSetter builds a Setter from its Identity-valued traversal.
func NewSetter[S, T, A, B any](run func(func(A) Identity[B]) func(S) Identity[T]) Setter[S, T, A, B] {
	if run == nil {
		panic("prelude: nil setter")
	}
	return Setter[S, T, A, B]{run: run}
}

// SetterOf builds a Setter from a plain over function.
func SetterOf[S, T, A, B any](over func(func(A) B) func(S) T) Setter[S, T, A, B] {
	return NewSetter(func(f func(A) Identity[B]) func(S) Identity[T] {
		inner := over(func(a A) B { return f(a).Value })
		return func(s S) Identity[T] { return PureIdentity(inner(s)) }
	})
}

// Over applies f to every focus of s.
func (st Setter[S, T, A, B]) Over(f func(A) B) func(S) T {
	run := st.run(func(a A) Identity[B] { return PureIdentity(f(a)) })
	return func(s S) T { return run(s).Value }
}

// Set replaces every focus of s with b.
func (st Setter[S, T, A, B]) Set(b B) func(S) T {
	return st.Over(ConstFunc[A](b))
}

// ComposeSetter focuses s2 inside the foci of s1.
func ComposeSetter[S, T, A, B, C, D any](s1 Setter[S, T, A, B], s2 Setter[A, B, C, D]) Setter[S, T, C, D] {
	return Setter[S, T, C, D]{
		run: func(f func(C) Identity[D]) func(S) Identity[T] {
			return s1.run(s2.run(f))
		},
	}
}

// SliceSetter focuses every element of a slice. The input is never mutated.
func SliceSetter[A, B any]() Setter[[]A, []B, A, B] {
	return SetterOf(func(f func(A) B) func([]A) []B {
		return func(xs []A) []B {
			if xs == nil {
				return nil
			}
			out := make([]B, len(xs))
			for i, x := range xs {
				out[i] = f(x)
			}
			return out
		}
	})
}

// RightSetter focuses the Right side of an Either.
func RightSetter[L, A, B any]() Setter[Either[L, A], Either[L, B], A, B] {
	return SetterOf(func(f func(A) B) func(Either[L, A]) Either[L, B] {
		return func(e Either[L, A]) Either[L, B] { return MapEither(e, f) }
	})
}

// ThatSetter focuses the That side of a These, including the That of a Both.
func ThatSetter[A, B, C any]() Setter[These[A, B], These[A, C], B, C] {
	return SetterOf(func(f func(B) C) func(These[A, B]) These[A, C] {
		return func(t These[A, B]) These[A, C] { return MapThese(t, f) }
	})
}

// PrismSetter updates the focus of a simple prism, leaving mismatches alone.
func PrismSetter[S, A any](p Prism[S, S, A, A]) Setter[S, S, A, A] {
	return SetterOf(func(f func(A) A) func(S) S {
		return ModifyPrism(p, f)
	})
}
