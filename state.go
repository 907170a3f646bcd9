// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "github.com/lightningnetwork/lnd/fn"

// State operations.
// State[S, A] threads a state value of S through a computation producing A.
// Threading is sequential: each step sees the state its predecessor left.

// State is a stateful computation.
type State[S, A any] func(S) Identity[Pair[A, S]]

func stateResult[S, A any](a A, s S) Identity[Pair[A, S]] {
	return Identity[Pair[A, S]]{Value: Pair[A, S]{Fst: a, Snd: s}}
}

// Run runs m from initial and returns both the result and the final state.
func (m State[S, A]) Run(initial S) (A, S) {
	return m(initial).Value.Unpack()
}

// Eval runs m from initial and returns only the result.
func (m State[S, A]) Eval(initial S) A {
	a, _ := m.Run(initial)
	return a
}

// Exec runs m from initial and returns only the final state.
func (m State[S, A]) Exec(initial S) S {
	_, s := m.Run(initial)
	return s
}

// With runs m against a state pre-transformed by f.
func (m State[S, A]) With(f func(S) S) State[S, A] {
	return func(s S) Identity[Pair[A, S]] {
		return m(f(s))
	}
}

// PureState returns a and passes the state through untouched.
func PureState[S, A any](a A) State[S, A] {
	return func(s S) Identity[Pair[A, S]] {
		return stateResult(a, s)
	}
}

// Get returns the current state as the value.
func Get[S any]() State[S, S] {
	return func(s S) Identity[Pair[S, S]] {
		return stateResult(s, s)
	}
}

// Put replaces the state with s.
func Put[S any](s S) State[S, fn.Unit] {
	return func(S) Identity[Pair[fn.Unit, S]] {
		return stateResult(fn.Unit{}, s)
	}
}

// Gets returns f applied to the current state. The state is unchanged.
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) Identity[Pair[A, S]] {
		return stateResult(f(s), s)
	}
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) State[S, fn.Unit] {
	return func(s S) Identity[Pair[fn.Unit, S]] {
		return stateResult(fn.Unit{}, f(s))
	}
}

// MapState applies f to the result of m.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) Identity[Pair[B, S]] {
		a, s1 := m.Run(s)
		return stateResult(f(a), s1)
	}
}

// MapStateWith applies f to both the result and the final state of m.
func MapStateWith[S, A, B any](m State[S, A], f func(A, S) Pair[B, S]) State[S, B] {
	return func(s S) Identity[Pair[B, S]] {
		return PureIdentity(f(m.Run(s)))
	}
}

// FlatMapState runs m, then runs the State chosen by f from the state m left.
func FlatMapState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) Identity[Pair[B, S]] {
		a, s1 := m.Run(s)
		return f(a)(s1)
	}
}

// ThenState runs m for its effect on the state, then runs next.
func ThenState[S, A, B any](m State[S, A], next State[S, B]) State[S, B] {
	return func(s S) Identity[Pair[B, S]] {
		return next(m.Exec(s))
	}
}

// ApState runs mf, then ma, and applies the function to the value.
func ApState[S, A, B any](mf State[S, func(A) B], ma State[S, A]) State[S, B] {
	return func(s S) Identity[Pair[B, S]] {
		f, s1 := mf.Run(s)
		a, s2 := ma.Run(s1)
		return stateResult(f(a), s2)
	}
}

// SequenceState runs ms in order, collecting their results.
func SequenceState[S, A any](ms []State[S, A]) State[S, []A] {
	return func(s S) Identity[Pair[[]A, S]] {
		out := make([]A, len(ms))
		for i, m := range ms {
			out[i], s = m.Run(s)
		}
		return stateResult(out, s)
	}
}
