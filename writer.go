// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "github.com/lightningnetwork/lnd/fn"

// Writer operations.
// Writer[W, A] pairs a result A with an output log W. Logs accumulate
// through the Monoid[W] the Writer was built with, left to right.

// Writer is a result paired with an accumulated log.
// The zero Writer has no monoid and panics when combined.
type Writer[W, A any] struct {
	m   Monoid[W]
	run Identity[Pair[A, W]]
}

// NewWriter pairs a with the log w.
func NewWriter[W, A any](m Monoid[W], a A, w W) Writer[W, A] {
	if m == nil {
		panic("prelude: nil writer monoid")
	}
	return Writer[W, A]{m: m, run: PureIdentity(Pair[A, W]{Fst: a, Snd: w})}
}

// PureWriter returns a with an empty log.
func PureWriter[W, A any](m Monoid[W], a A) Writer[W, A] {
	return NewWriter(m, a, m.Empty())
}

// Tell appends w to the log.
func Tell[W any](m Monoid[W], w W) Writer[W, fn.Unit] {
	return NewWriter(m, fn.Unit{}, w)
}

// Monoid returns the monoid w accumulates its log with.
func (w Writer[W, A]) Monoid() Monoid[W] {
	return w.m
}

func (w Writer[W, A]) mustMonoid() Monoid[W] {
	if w.m == nil {
		panic("prelude: nil writer monoid")
	}
	return w.m
}

// Run returns the result and the log.
func (w Writer[W, A]) Run() (A, W) {
	return w.run.Value.Unpack()
}

// Value returns only the result.
func (w Writer[W, A]) Value() A {
	return w.run.Value.Fst
}

// Exec returns only the log.
func (w Writer[W, A]) Exec() W {
	return w.run.Value.Snd
}

// Censor replaces the log with f applied to it. The result is unchanged.
func (w Writer[W, A]) Censor(f func(W) W) Writer[W, A] {
	a, out := w.Run()
	return NewWriter(w.m, a, f(out))
}

// ListenWriter exposes the log alongside the result. The log is unchanged.
func ListenWriter[W, A any](w Writer[W, A]) Writer[W, Pair[A, W]] {
	a, out := w.Run()
	return NewWriter(w.m, MakePair(a, out), out)
}

// ListensWriter exposes f applied to the log alongside the result.
func ListensWriter[W, A, B any](w Writer[W, A], f func(W) B) Writer[W, Pair[A, B]] {
	a, out := w.Run()
	return NewWriter(w.m, MakePair(a, f(out)), out)
}

// PassWriter applies the log transform carried in the result to the log.
func PassWriter[W, A any](w Writer[W, Pair[A, func(W) W]]) Writer[W, A] {
	p, out := w.Run()
	return NewWriter(w.m, p.Fst, p.Snd(out))
}

// MapWriter applies f to the result. The log is unchanged.
func MapWriter[W, A, B any](w Writer[W, A], f func(A) B) Writer[W, B] {
	a, out := w.Run()
	return NewWriter(w.m, f(a), out)
}

// FlatMapWriter runs f on the result of w and appends its log after w's.
func FlatMapWriter[W, A, B any](w Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	m := w.mustMonoid()
	a, out := w.Run()
	b, out2 := f(a).Run()
	return NewWriter(m, b, m.Combine(out, out2))
}

// ThenWriter appends next's log after w's and returns next's result.
func ThenWriter[W, A, B any](w Writer[W, A], next Writer[W, B]) Writer[W, B] {
	return FlatMapWriter(w, ConstFunc[A](next))
}

// ApWriter applies the function in wf to the value in wa. The log of wf
// comes first.
func ApWriter[W, A, B any](wf Writer[W, func(A) B], wa Writer[W, A]) Writer[W, B] {
	return FlatMapWriter(wf, func(f func(A) B) Writer[W, B] {
		return MapWriter(wa, f)
	})
}

// SequenceWriter collects the results of ws and concatenates their logs in
// order. An empty ws yields an empty result with m's empty log.
func SequenceWriter[W, A any](m Monoid[W], ws []Writer[W, A]) Writer[W, []A] {
	out := make([]A, len(ws))
	acc := m.Empty()
	for i, w := range ws {
		var o W
		out[i], o = w.Run()
		acc = m.Combine(acc, o)
	}
	return NewWriter(m, out, acc)
}
