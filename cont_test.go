// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude_test

import (
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/prelude"
)

func TestReturnRun(t *testing.T) {
	got := prelude.Run(prelude.Return[int](42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestRunWith(t *testing.T) {
	m := prelude.Return[string, int](42)
	got := prelude.RunWith(m, strconv.Itoa)
	if got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestBindChain(t *testing.T) {
	m := prelude.Return[int](5)
	n := prelude.Bind(m, func(x int) prelude.Cont[int, int] {
		return prelude.Bind(prelude.Return[int](x+1), func(y int) prelude.Cont[int, int] {
			return prelude.Return[int](y * 2)
		})
	})
	got := prelude.Run(n)
	if got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestBindLeftIdentity(t *testing.T) {
	// Bind(Return(a), f) ≡ f(a)
	a := 7
	f := func(x int) prelude.Cont[int, int] {
		return prelude.Return[int](x * 3)
	}

	left := prelude.Run(prelude.Bind(prelude.Return[int](a), f))
	right := prelude.Run(f(a))

	if left != right {
		t.Fatalf("left identity failed: %d != %d", left, right)
	}
}

func TestBindAssociativityWithTypeChange(t *testing.T) {
	m := prelude.Return[string](42)
	f := func(x int) prelude.Cont[string, string] {
		return prelude.Return[string](strconv.Itoa(x))
	}
	g := func(s string) prelude.Cont[string, string] {
		return prelude.Return[string](s + "!")
	}

	left := prelude.Run(prelude.Bind(prelude.Bind(m, f), g))
	right := prelude.Run(prelude.Bind(m, func(x int) prelude.Cont[string, string] {
		return prelude.Bind(f(x), g)
	}))

	if left != right || left != "42!" {
		t.Fatalf("Bind associativity (type change) failed: %q != %q", left, right)
	}
}

func TestMap(t *testing.T) {
	n := prelude.Map(prelude.Return[int](10), func(x int) int {
		return x * 3
	})
	got := prelude.Run(n)
	if got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestThenDiscardsFirst(t *testing.T) {
	ran := false
	first := prelude.Suspend[int, string](func(k func(string) int) int {
		ran = true
		return k("ignored")
	})
	got := prelude.Run(prelude.Then(first, prelude.Return[int](9)))
	if got != 9 || !ran {
		t.Fatalf("got %d (ran=%v), want 9 (ran=true)", got, ran)
	}
}

func TestSuspend(t *testing.T) {
	m := prelude.Suspend[int, int](func(k func(int) int) int {
		return k(42) + 1
	})
	got := prelude.Run(m)
	if got != 43 {
		t.Fatalf("got %d, want 43", got)
	}
}

func TestApRunsFunctionSideFirst(t *testing.T) {
	var order []string
	mf := prelude.Suspend[int, func(int) int](func(k func(func(int) int) int) int {
		order = append(order, "f")
		return k(func(x int) int { return x * 10 })
	})
	ma := prelude.Suspend[int, int](func(k func(int) int) int {
		order = append(order, "a")
		return k(4)
	})

	got := prelude.Run(prelude.Ap(mf, ma))
	if got != 40 {
		t.Fatalf("got %d, want 40", got)
	}
	if !slices.Equal(order, []string{"f", "a"}) {
		t.Fatalf("order = %v, want [f a]", order)
	}
}

func TestSequence(t *testing.T) {
	ms := []prelude.Cont[[]int, int]{
		prelude.Return[[]int](1),
		prelude.Return[[]int](2),
		prelude.Return[[]int](3),
	}
	got := prelude.Run(prelude.Sequence(ms))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}

	empty := prelude.Run(prelude.Sequence[[]int, int](nil))
	if len(empty) != 0 {
		t.Fatalf("got %v, want []", empty)
	}
}

func TestFromReader(t *testing.T) {
	r := prelude.Asks(func(env string) int { return len(env) })
	m := prelude.Map(prelude.FromReader[string, int](r, "hello"), func(n int) int {
		return n * 2
	})
	if got := prelude.Run(m); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}
