// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/prelude"
)

// deferred wraps a into a computation that is not yet done.
func deferred[A any](a A) prelude.Expr[A] {
	return prelude.ExprDefer(func() prelude.Expr[A] { return prelude.ExprReturn(a) })
}

func TestRunExprReturn(t *testing.T) {
	if got := prelude.RunExpr(prelude.ExprReturn(42)); got != 42 {
		t.Errorf("RunExpr(ExprReturn(42)) = %v, want 42", got)
	}
}

func TestRunExprMap(t *testing.T) {
	c := prelude.ExprMap(deferred(21), func(x int) int { return x * 2 })
	if got := prelude.RunExpr(c); got != 42 {
		t.Errorf("RunExpr(ExprMap(21, *2)) = %v, want 42", got)
	}
}

func TestRunExprBind(t *testing.T) {
	c := prelude.ExprBind(deferred(21), func(x int) prelude.Expr[int] {
		return prelude.ExprReturn(x * 2)
	})
	if got := prelude.RunExpr(c); got != 42 {
		t.Errorf("RunExpr(ExprBind(21, *2)) = %v, want 42", got)
	}
}

func TestRunExprThen(t *testing.T) {
	c := prelude.ExprThen(deferred(999), deferred(42))
	if got := prelude.RunExpr(c); got != 42 {
		t.Errorf("RunExpr(ExprThen(999, 42)) = %v, want 42", got)
	}
}

func TestRunExprThenRunsFirst(t *testing.T) {
	ran := false
	first := prelude.ExprDefer(func() prelude.Expr[int] {
		ran = true
		return prelude.ExprReturn(0)
	})
	if got := prelude.RunExpr(prelude.ExprThen(first, prelude.ExprReturn("x"))); got != "x" {
		t.Fatalf("got %q, want x", got)
	}
	if !ran {
		t.Fatal("ExprThen skipped the first computation")
	}
}

func TestRunExprMixed(t *testing.T) {
	c := deferred(10)
	c = prelude.ExprMap(c, func(x int) int { return x * 2 }) // 20
	c = prelude.ExprBind(c, func(x int) prelude.Expr[int] {
		return deferred(x + 2) // 22
	})
	c = prelude.ExprThen(deferred(0), c)

	if got := prelude.RunExpr(c); got != 22 {
		t.Errorf("mixed operations = %v, want 22", got)
	}
}

func TestRunExprTypeConversion(t *testing.T) {
	cs := prelude.ExprMap(deferred(42), strconv.Itoa)
	if got := prelude.RunExpr(cs); got != "42" {
		t.Errorf("type conversion = %q, want \"42\"", got)
	}
}

func TestExprShortcuts(t *testing.T) {
	m := prelude.ExprMap(prelude.ExprReturn(21), func(x int) int { return x * 2 })
	if !m.Done() || m.Value != 42 {
		t.Errorf("ExprMap on a done value = %+v, want done 42", m)
	}

	called := false
	b := prelude.ExprBind(prelude.ExprReturn(1), func(x int) prelude.Expr[string] {
		called = true
		return prelude.ExprReturn(strconv.Itoa(x))
	})
	if !called || b.Value != "1" {
		t.Errorf("ExprBind on a done value should apply f directly")
	}

	if c := prelude.ExprThen(prelude.ExprReturn("first"), prelude.ExprReturn("second")); c.Value != "second" {
		t.Errorf("ExprThen shortcut value = %v, want \"second\"", c.Value)
	}
}

func TestExprBuildersKeepPendingValue(t *testing.T) {
	incFrom := func(v int) prelude.Expr[int] {
		return prelude.Expr[int]{
			Value: v,
			Frame: &prelude.MapFrame[prelude.Erased, prelude.Erased]{
				F:    func(x prelude.Erased) prelude.Erased { return x.(int) + 1 },
				Next: prelude.ReturnFrame{},
			},
		}
	}

	if got := prelude.RunExpr(incFrom(10)); got != 11 {
		t.Fatalf("RunExpr = %d, want 11", got)
	}
	if got := prelude.RunExpr(prelude.ExprMap(incFrom(10), func(x int) int { return x * 2 })); got != 22 {
		t.Errorf("ExprMap = %d, want 22", got)
	}
	if got := prelude.RunExpr(prelude.ExprBind(incFrom(10), func(x int) prelude.Expr[int] {
		return incFrom(x * 2)
	})); got != 23 {
		t.Errorf("ExprBind = %d, want 23", got)
	}

	ran := 0
	first := prelude.ExprMap(incFrom(10), func(x int) int {
		ran = x
		return x
	})
	if got := prelude.RunExpr(prelude.ExprThen(first, incFrom(1))); got != 2 {
		t.Errorf("ExprThen = %d, want 2", got)
	}
	if ran != 11 {
		t.Errorf("ExprThen ran its first computation on %d, want 11", ran)
	}

	nested := prelude.ExprMap(prelude.ExprMap(incFrom(4), strconv.Itoa), func(s string) string {
		return s + "!"
	})
	if got := prelude.RunExpr(nested); got != "5!" {
		t.Errorf("nested ExprMap = %q, want \"5!\"", got)
	}
}

func TestRunExprTypeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on a mistyped result")
		}
	}()
	m := prelude.Expr[string]{
		Value: "x",
		Frame: &prelude.MapFrame[prelude.Erased, prelude.Erased]{
			F:    func(prelude.Erased) prelude.Erased { return 1 },
			Next: prelude.ReturnFrame{},
		},
	}
	prelude.RunExpr(m)
}

func TestRunExprNilInterfaceResult(t *testing.T) {
	m := prelude.ExprMap(deferred(0), func(int) error { return nil })
	if err := prelude.RunExpr(m); err != nil {
		t.Fatalf("RunExpr = %v, want nil", err)
	}
	n := prelude.ExprBind(m, func(err error) prelude.Expr[bool] {
		return prelude.ExprReturn(err == nil)
	})
	if !prelude.RunExpr(n) {
		t.Fatal("nil error did not reach the bind continuation")
	}
}

func TestChainFrames(t *testing.T) {
	second := &prelude.MapFrame[prelude.Erased, prelude.Erased]{
		F:    func(x prelude.Erased) prelude.Erased { return x.(int) * 2 },
		Next: prelude.ReturnFrame{},
	}
	if got := prelude.ChainFrames(prelude.ReturnFrame{}, second); got != second {
		t.Error("ChainFrames(ReturnFrame, x) should return x")
	}
	if got := prelude.ChainFrames(second, prelude.ReturnFrame{}); got != second {
		t.Error("ChainFrames(x, ReturnFrame) should return x")
	}
	if got := prelude.ChainFrames(nil, second); got != second {
		t.Error("ChainFrames(nil, x) should return x")
	}

	first := &prelude.MapFrame[prelude.Erased, prelude.Erased]{
		F:    func(x prelude.Erased) prelude.Erased { return x.(int) + 1 },
		Next: prelude.ReturnFrame{},
	}
	// 5 -> +1 -> *2 = 12
	if got := prelude.RunExpr(prelude.Expr[int]{Value: 5, Frame: prelude.ChainFrames(first, second)}); got != 12 {
		t.Errorf("chained frames = %v, want 12", got)
	}
}

func TestTrampolineNestedChains(t *testing.T) {
	inc := func() prelude.Frame {
		return &prelude.MapFrame[prelude.Erased, prelude.Erased]{
			F:    func(x prelude.Erased) prelude.Erased { return x.(int) + 1 },
			Next: prelude.ReturnFrame{},
		}
	}
	left := prelude.ChainFrames(prelude.ChainFrames(inc(), inc()), inc())
	right := prelude.ChainFrames(inc(), prelude.ChainFrames(inc(), inc()))
	for name, chain := range map[string]prelude.Frame{"left": left, "right": right} {
		if got := prelude.RunExpr(prelude.Expr[int]{Value: 1, Frame: chain}); got != 4 {
			t.Errorf("%s-nested chain = %v, want 4", name, got)
		}
	}
}

func TestTrampolineChainedBindContinuation(t *testing.T) {
	// 10 -> bind(+5 then *2) = 30
	chain := prelude.ChainFrames(
		&prelude.BindFrame[prelude.Erased, prelude.Erased]{
			F: func(x prelude.Erased) prelude.Expr[prelude.Erased] {
				return prelude.Expr[prelude.Erased]{
					Value: x.(int) + 5,
					Frame: &prelude.MapFrame[prelude.Erased, prelude.Erased]{
						F:    func(y prelude.Erased) prelude.Erased { return y.(int) * 2 },
						Next: prelude.ReturnFrame{},
					},
				}
			},
			Next: prelude.ReturnFrame{},
		},
		&prelude.ThenFrame[prelude.Erased, prelude.Erased]{
			Second: prelude.Expr[prelude.Erased]{Value: 0, Frame: &prelude.MapFrame[prelude.Erased, prelude.Erased]{
				F:    func(y prelude.Erased) prelude.Erased { return y.(int) + 100 },
				Next: prelude.ReturnFrame{},
			}},
			Next: prelude.ReturnFrame{},
		},
	)
	if got := prelude.RunExpr(prelude.Expr[int]{Value: 10, Frame: chain}); got != 100 {
		t.Errorf("chained bind then = %v, want 100", got)
	}
}

func TestRunExprDeepMapChain(t *testing.T) {
	c := deferred(0)
	for range 100000 {
		c = prelude.ExprMap(c, func(x int) int { return x + 1 })
	}
	if got := prelude.RunExpr(c); got != 100000 {
		t.Errorf("deep map chain = %v, want 100000", got)
	}
}

func TestRunExprDeepBindChain(t *testing.T) {
	c := deferred(0)
	for range 100000 {
		c = prelude.ExprBind(c, func(x int) prelude.Expr[int] { return deferred(x + 1) })
	}
	if got := prelude.RunExpr(c); got != 100000 {
		t.Errorf("deep bind chain = %v, want 100000", got)
	}
}

func TestRunExprDeepDeferRecursion(t *testing.T) {
	var count func(n, acc int) prelude.Expr[int]
	count = func(n, acc int) prelude.Expr[int] {
		if n == 0 {
			return prelude.ExprReturn(acc)
		}
		return prelude.ExprDefer(func() prelude.Expr[int] { return count(n-1, acc+1) })
	}
	if got := prelude.RunExpr(count(1_000_000, 0)); got != 1_000_000 {
		t.Errorf("deferred recursion = %v, want 1000000", got)
	}
}

func TestBounceTailLoop(t *testing.T) {
	type loop = prelude.Cont[prelude.Expr[int], int]
	var sum func(n, acc int) loop
	sum = func(n, acc int) loop {
		if n == 0 {
			return prelude.Return[prelude.Expr[int]](acc)
		}
		return prelude.Bind(prelude.Bounce(prelude.Return[prelude.Expr[int]](n)), func(x int) loop {
			return sum(x-1, acc+1)
		})
	}
	if got := prelude.RunContExpr(sum(1_000_000, 0)); got != 1_000_000 {
		t.Errorf("bounced loop = %v, want 1000000", got)
	}
}

func TestBounceNonTailRecursion(t *testing.T) {
	// Map builds a chain of pending continuations; Bounce keeps unwinding
	// them on the evaluator loop.
	type loop = prelude.Cont[prelude.Expr[int], int]
	var depth func(n int) loop
	depth = func(n int) loop {
		if n == 0 {
			return prelude.Return[prelude.Expr[int]](0)
		}
		return prelude.Bind(prelude.Bounce(prelude.Return[prelude.Expr[int]](n)), func(x int) loop {
			return prelude.Map(prelude.Bounce(depth(x-1)), func(d int) int { return d + 1 })
		})
	}
	if got := prelude.RunContExpr(depth(100000)); got != 100000 {
		t.Errorf("bounced recursion = %v, want 100000", got)
	}
}

func TestBounceWithCallCC(t *testing.T) {
	type loop = prelude.Cont[prelude.Expr[int], int]
	m := prelude.CallCC(func(exit func(int) prelude.Cont[prelude.Expr[int], int]) loop {
		var walk func(n int) loop
		walk = func(n int) loop {
			if n == 500000 {
				return exit(n)
			}
			return prelude.Bind(prelude.Bounce(prelude.Return[prelude.Expr[int]](n+1)), walk)
		}
		return walk(0)
	})
	if got := prelude.RunContExpr(m); got != 500000 {
		t.Errorf("escape from bounced loop = %v, want 500000", got)
	}
}

func BenchmarkTrampolineReturn(b *testing.B) {
	for b.Loop() {
		_ = prelude.RunExpr(prelude.ExprReturn(42))
	}
}

func BenchmarkTrampolineMap10(b *testing.B) {
	for b.Loop() {
		c := deferred(0)
		for range 10 {
			c = prelude.ExprMap(c, func(x int) int { return x + 1 })
		}
		_ = prelude.RunExpr(c)
	}
}

func BenchmarkTrampolineBind10(b *testing.B) {
	for b.Loop() {
		c := deferred(0)
		for range 10 {
			c = prelude.ExprBind(c, func(x int) prelude.Expr[int] { return deferred(x + 1) })
		}
		_ = prelude.RunExpr(c)
	}
}

func BenchmarkBounceLoop1000(b *testing.B) {
	type loop = prelude.Cont[prelude.Expr[int], int]
	var sum func(n, acc int) loop
	sum = func(n, acc int) loop {
		if n == 0 {
			return prelude.Return[prelude.Expr[int]](acc)
		}
		return prelude.Bind(prelude.Bounce(prelude.Return[prelude.Expr[int]](n)), func(x int) loop {
			return sum(x-1, acc+1)
		})
	}
	for b.Loop() {
		_ = prelude.RunContExpr(sum(1000, 0))
	}
}
