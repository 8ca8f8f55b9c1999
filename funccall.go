package funccall

import (
	"reflect"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Number is any type a captured value can be multiplied by.
type Number interface {
	constraints.Integer | constraints.Float
}

// ============================================================================
// Callback Invocation
// ============================================================================

// Call logs the callback, invokes it and returns its result.
//
// Example:
//
//	v := Call(func() string { return "done" }) // "done"
func Call[V any](cb func() V) V {
	Logger().Info("Executing", zap.String("callback", funcName(cb)))
	return cb()
}

// ReturnFour returns a function that always yields 4.
func ReturnFour() func() int {
	return Constant(4)
}

// CallWithArgs logs the callback and both arguments, then returns cb(left, right).
//
// Example:
//
//	sum := CallWithArgs(func(a, b int) int { return a + b }, 2, 3) // 5
func CallWithArgs[L, R, V any](cb func(L, R) V, left L, right R) V {
	Logger().Info("Executing",
		zap.String("callback", funcName(cb)),
		zap.Any("left", left),
		zap.Any("right", right),
	)
	return cb(left, right)
}

// PrintAndReturn logs x and returns it unchanged.
func PrintAndReturn[T any](x T) T {
	Logger().Info("Executing lambda with argument", zap.Any("arg", x))
	return x
}

// ReturnLambda captures y and returns a function computing PrintAndReturn(x) * y.
//
// Example:
//
//	triple := ReturnLambda(3)
//	triple(5) // 15
func ReturnLambda[N Number](y N) func(N) N {
	Logger().Info("Returning lambda with captured arg", zap.Any("captured", y))
	return func(x N) N {
		return PrintAndReturn(x) * y
	}
}

// ============================================================================
// Functional Types
// ============================================================================

// Thunk is a deferred computation with no arguments.
//
// Example:
//
//	t := Thunk[int](func() int { return 2 }).Map(func(v int) int { return v * 10 })
//	t() // 20
type Thunk[V any] func() V

// Call invokes the thunk.
func (f Thunk[V]) Call() V {
	return f()
}

// Constant returns a thunk that always yields v.
func Constant[V any](v V) Thunk[V] {
	return func() V {
		return v
	}
}

// Map transforms the value produced by the thunk.
func (f Thunk[V]) Map(transform func(V) V) Thunk[V] {
	return func() V {
		return transform(f())
	}
}

// Tap runs fn on each produced value without changing it.
func (f Thunk[V]) Tap(fn func(V)) Thunk[V] {
	return func() V {
		v := f()
		fn(v)
		return v
	}
}

// Memoize evaluates the thunk at most once. Concurrent callers block until
// the first evaluation finishes and all see the same value.
func (f Thunk[V]) Memoize() Thunk[V] {
	var (
		once sync.Once
		v    V
	)
	return func() V {
		once.Do(func() {
			v = f()
		})
		return v
	}
}

// BiFunc is a function of two positional arguments.
type BiFunc[L, R, V any] func(left L, right R) V

// Call invokes the function with left and right in order.
func (f BiFunc[L, R, V]) Call(left L, right R) V {
	return f(left, right)
}

// Partial fixes the left argument.
func (f BiFunc[L, R, V]) Partial(left L) func(R) V {
	return func(right R) V {
		return f(left, right)
	}
}

// Lambda is a single-argument numeric transformation.
type Lambda[N Number] func(x N) N

// Call applies the lambda.
func (f Lambda[N]) Call(x N) N {
	return f(x)
}

// Identity returns the lambda that leaves its argument alone (Monoid identity).
func Identity[N Number]() Lambda[N] {
	return func(x N) N {
		return x
	}
}

// Then applies f, then next (Monoid operation).
func (f Lambda[N]) Then(next Lambda[N]) Lambda[N] {
	return func(x N) N {
		return next(f(x))
	}
}

// funcName resolves the symbol name of a function value for logging.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
		return rf.Name()
	}
	return v.Type().String()
}
