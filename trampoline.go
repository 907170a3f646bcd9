// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// evalStats counts the work done by one evaluation.
type evalStats struct {
	frames  int
	bounces int
}

// evalFrames is the iterative evaluator for Expr frame chains.
// Every frame is processed in this loop; nothing recurses, so stack usage
// is constant in the length of the chain.
func evalFrames(current Erased, frame Frame, stats *evalStats) Erased {
	for {
		// Flatten chained frames
		for {
			cf, ok := frame.(*chainedFrame)
			if !ok {
				break
			}
			if nested, ok := cf.first.(*chainedFrame); ok {
				frame = &chainedFrame{
					first: nested.first,
					rest:  ChainFrames(nested.rest, cf.rest),
				}
				continue
			}
			stats.frames++
			switch f := cf.first.(type) {
			case ReturnFrame:
				frame = cf.rest
			case *BindFrame[Erased, Erased]:
				next := f.F(current)
				current = Erased(next.Value)
				frame = ChainFrames(ChainFrames(next.Frame, f.Next), cf.rest)
			case *MapFrame[Erased, Erased]:
				current = f.F(current)
				frame = ChainFrames(f.Next, cf.rest)
			case *ThenFrame[Erased, Erased]:
				current = Erased(f.Second.Value)
				frame = ChainFrames(ChainFrames(f.Second.Frame, f.Next), cf.rest)
			case *DeferFrame[Erased]:
				stats.bounces++
				next := f.Thunk()
				current = next.Value
				frame = ChainFrames(ChainFrames(next.Frame, f.Next), cf.rest)
			default:
				if u, ok := f.(interface{ Unwind(Erased) (Erased, Frame) }); ok {
					var next Frame
					current, next = u.Unwind(current)
					frame = ChainFrames(next, cf.rest)
					continue
				}
				panic("prelude: unknown frame type in chain")
			}
			break
		}
		if _, ok := frame.(*chainedFrame); ok {
			continue
		}

		switch f := frame.(type) {
		case nil, ReturnFrame:
			return current
		case *BindFrame[Erased, Erased]:
			stats.frames++
			next := f.F(current)
			current = Erased(next.Value)
			frame = ChainFrames(next.Frame, f.Next)
		case *MapFrame[Erased, Erased]:
			stats.frames++
			current = f.F(current)
			frame = f.Next
		case *ThenFrame[Erased, Erased]:
			stats.frames++
			current = Erased(f.Second.Value)
			frame = ChainFrames(f.Second.Frame, f.Next)
		case *DeferFrame[Erased]:
			stats.frames++
			stats.bounces++
			next := f.Thunk()
			current = next.Value
			frame = ChainFrames(next.Frame, f.Next)
		default:
			if u, ok := frame.(interface{ Unwind(Erased) (Erased, Frame) }); ok {
				stats.frames++
				current, frame = u.Unwind(current)
				continue
			}
			panic("prelude: unknown frame type")
		}
	}
}

// ChainFrames links two frame chains together.
// Returns the other operand when either side is ReturnFrame (the identity element
// for frame composition), avoiding unnecessary chainedFrame allocation.
//
// Construction is O(1) in all cases: returns the other operand or creates one chainedFrame node.
func ChainFrames(first, second Frame) Frame {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// chainedFrame represents a frame followed by more frames.
// This enables composing frame chains without mutation.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}

// RunExpr evaluates a defunctionalized computation to completion. It
// iteratively processes frames until reaching ReturnFrame, avoiding stack
// growth from recursive calls.
func RunExpr[A any](m Expr[A]) A {
	var stats evalStats
	result := evalFrames(Erased(m.Value), m.Frame, &stats)
	log.Tracef("Evaluated expr: frames=%d, bounces=%d", stats.frames, stats.bounces)
	return unerase[A](result)
}

// unerase recovers an A from the frame chain. A nil value is the zero A,
// which covers interface-typed A; any other mismatch panics.
func unerase[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// headFrame returns a frame that runs m from its own value. Frames that
// ignore the incoming value are returned as they are.
func headFrame[A any](m Expr[A]) Frame {
	if ignoresValue(m.Frame) {
		return m.Frame
	}
	return &ThenFrame[Erased, Erased]{
		Second: Expr[Erased]{Value: Erased(m.Value), Frame: m.Frame},
		Next:   ReturnFrame{},
	}
}

func ignoresValue(f Frame) bool {
	for {
		switch g := f.(type) {
		case *chainedFrame:
			f = g.first
		case *DeferFrame[Erased], *ThenFrame[Erased, Erased]:
			return true
		default:
			return false
		}
	}
}

// ExprBind creates a bind frame linking computation m to function f.
func ExprBind[A, B any](m Expr[A], f func(A) Expr[B]) Expr[B] {
	if m.Done() {
		// m is already completed, apply f directly
		return f(m.Value)
	}

	// Type-erase for the generic frame chain
	bindFrame := &BindFrame[Erased, Erased]{
		F: func(a Erased) Expr[Erased] {
			result := f(unerase[A](a))
			return Expr[Erased]{
				Value: Erased(result.Value),
				Frame: result.Frame,
			}
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(headFrame(m), bindFrame),
	}
}

// ExprMap creates a map frame transforming computation m with function f.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if m.Done() {
		return ExprReturn(f(m.Value))
	}

	mapFrame := &MapFrame[Erased, Erased]{
		F: func(a Erased) Erased {
			return f(unerase[A](a))
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(headFrame(m), mapFrame),
	}
}

// ExprThen creates a then frame sequencing m before n (discarding m's result).
func ExprThen[A, B any](m Expr[A], n Expr[B]) Expr[B] {
	if m.Done() {
		return n
	}

	thenFrame := &ThenFrame[Erased, Erased]{
		Second: Expr[Erased]{
			Value: Erased(n.Value),
			Frame: n.Frame,
		},
		Next: ReturnFrame{},
	}

	var zero B
	return Expr[B]{
		Value: zero,
		Frame: ChainFrames(headFrame(m), thenFrame),
	}
}

// Bounce makes every continuation invocation inside m return to the
// evaluator as a DeferFrame. Continuations built from Bounce-wrapped steps
// run under RunContExpr in constant Go stack, however long the chain.
func Bounce[R, A any](m Cont[Expr[R], A]) Cont[Expr[R], A] {
	return func(k func(A) Expr[R]) Expr[R] {
		return m(func(a A) Expr[R] {
			return ExprDefer(func() Expr[R] {
				return k(a)
			})
		})
	}
}

// RunContExpr runs m with ExprReturn as the final continuation and then
// evaluates the resulting Expr.
func RunContExpr[A any](m Cont[Expr[A], A]) A {
	return RunExpr(m(ExprReturn[A]))
}
