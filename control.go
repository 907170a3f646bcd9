// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

// Control operators.
// CallCC gives a computation an escape to its own continuation.
// Shift/Reset follow Danvy & Filinski's formulation (1990).

// CallCC calls f with an escape function. Invoking the escape with x,
// anywhere inside the computation f returns, drops whatever continuation
// the escape was bound into and delivers x to the continuation of the
// CallCC itself.
//
// Example:
//
//	Run(CallCC(func(exit func(int) Cont[int, int]) Cont[int, int] {
//	    return Bind(Return[int](1), func(x int) Cont[int, int] {
//	        return Bind(exit(42), func(int) Cont[int, int] {
//	            return Return[int](x) // never reached
//	        })
//	    })
//	}))
//	// Result: 42
func CallCC[R, A, B any](f func(exit func(A) Cont[R, B]) Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		exit := func(a A) Cont[R, B] {
			return func(func(B) R) R {
				return k(a)
			}
		}
		return f(exit)(k)
	}
}

// WithCont transforms the continuation passed to m.
func WithCont[R, A, B any](m Cont[R, A], f func(func(B) R) func(A) R) Cont[R, B] {
	return func(k func(B) R) R {
		return m(f(k))
	}
}

// MapCont transforms the final result of m.
func MapCont[R, A any](m Cont[R, A], f func(R) R) Cont[R, A] {
	return func(k func(A) R) R {
		return f(m(k))
	}
}

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times.
//
// Example:
//
//	Reset[int](Bind(Shift(func(k func(int) int) int {
//	    return k(k(3))  // Apply continuation twice
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// Result: 12 (3 * 2 * 2)
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}
