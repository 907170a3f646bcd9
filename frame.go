// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Erased represents a type-erased value in the defunctionalized frame chain.
// Frame types use Erased parameters to process heterogeneous value types
// through a homogeneous evaluation pipeline. Concrete types are recovered
// via type assertions at frame boundaries.
type Erased = any

// Frame is the interface for defunctionalized continuation frames.
// Implementations carry the data needed to continue computation.
// Dispatch uses type switches, not tags. Frame is a pure marker interface.
//
// Frames defined outside this package take part in evaluation by
// implementing Unwind(Erased) (Erased, Frame).
type Frame interface {
	frame() // unexported marker method
}

// ReturnFrame signals computation completion.
// The evaluator returns the current value as the final result.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame represents monadic bind: ExprBind(m, f)
// Type parameters:
//   - A: input type (value from previous computation)
//   - B: output type (result of applying F)
type BindFrame[A, B any] struct {
	// F is the continuation function to apply to the input value.
	F func(A) Expr[B]

	// Next is the continuation frame after F completes.
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame represents functor mapping: ExprMap(m, f)
type MapFrame[A, B any] struct {
	// F is the transformation function.
	F func(A) B

	// Next is the continuation frame after transformation.
	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// ThenFrame represents sequencing with discard: ExprThen(m, n)
// A is the discarded type, B the type of Second.
type ThenFrame[A, B any] struct {
	// Second is the computation to evaluate after discarding first result.
	Second Expr[B]

	// Next is the continuation frame after Second completes.
	Next Frame
}

func (*ThenFrame[A, B]) frame() {}

// DeferFrame is a suspended thunk. The evaluator forces Thunk on its own
// loop, so a continuation that returns a DeferFrame hands control back to
// the evaluator instead of growing the Go stack.
type DeferFrame[A any] struct {
	// Thunk produces the computation to continue with.
	Thunk func() Expr[A]

	// Next is the continuation frame after the thunk's computation.
	Next Frame
}

func (*DeferFrame[A]) frame() {}

// Expr is a defunctionalized continuation.
// Unlike the closure-based Cont[R, A], this carries explicit frame data.
type Expr[A any] struct {
	// Value is the result of a completed computation, and otherwise the
	// value Frame starts from.
	Value A

	// Frame holds the next continuation frame.
	Frame Frame
}

// ExprReturn creates a completed computation with the given value.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// ExprDefer suspends thunk until the evaluator reaches it.
func ExprDefer[A any](thunk func() Expr[A]) Expr[A] {
	var zero A
	return Expr[A]{
		Value: zero,
		Frame: &DeferFrame[Erased]{
			Thunk: func() Expr[Erased] {
				next := thunk()
				return Expr[Erased]{Value: Erased(next.Value), Frame: next.Frame}
			},
			Next: ReturnFrame{},
		},
	}
}

// Done reports whether m is a completed computation. A nil Frame counts
// as completed.
func (m Expr[A]) Done() bool {
	if m.Frame == nil {
		return true
	}
	_, ok := m.Frame.(ReturnFrame)
	return ok
}
