package outcome

import (
	"context"
)

// ToResult invokes fn and wraps its return: value as success, error as
// failure. Deliberately low-ceremony: the error is used raw (no
// normalization) and a panicking fn propagates its thrown value to the
// caller untouched. Call sites that need normalization use Resultify.
func ToResult[T any](fn func() (T, error)) Result[T] {
	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Resultify0 wraps a no-argument fallible function into one returning a
// Result: panics are recovered and normalized, returned errors pass through
// Normalize unchanged. An optional errMap is applied to the normalized error
// before wrapping.
func Resultify0[Out any](fn func(ctx context.Context) (Out, error),
	errMap ...func(err error) error) func(ctx context.Context) Result[Out] {

	return func(ctx context.Context) (res Result[Out]) {
		defer func() {
			if rec := recover(); rec != nil {
				res = failNormalized[Out](rec, errMap)
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			return failNormalized[Out](err, errMap)
		}
		return Success(v)
	}
}

// Resultify is Resultify0 for single-argument functions, the dominant shape
// of fallible calls in this codebase.
func Resultify[In, Out any](fn func(ctx context.Context, in In) (Out, error),
	errMap ...func(err error) error) func(ctx context.Context, in In) Result[Out] {

	return func(ctx context.Context, in In) (res Result[Out]) {
		defer func() {
			if rec := recover(); rec != nil {
				res = failNormalized[Out](rec, errMap)
			}
		}()

		v, err := fn(ctx, in)
		if err != nil {
			return failNormalized[Out](err, errMap)
		}
		return Success(v)
	}
}

// AsyncResultify0 is Resultify0 with the call running in its own goroutine,
// yielding an AsyncResult.
func AsyncResultify0[Out any](fn func(ctx context.Context) (Out, error),
	errMap ...func(err error) error) func(ctx context.Context) AsyncResult[Out] {

	wrapped := Resultify0(fn, errMap...)
	return func(ctx context.Context) AsyncResult[Out] {
		return FromResultFuture(ctx, wrapped)
	}
}

// AsyncResultify is Resultify with the call running in its own goroutine.
func AsyncResultify[In, Out any](fn func(ctx context.Context, in In) (Out, error),
	errMap ...func(err error) error) func(ctx context.Context, in In) AsyncResult[Out] {

	wrapped := Resultify(fn, errMap...)
	return func(ctx context.Context, in In) AsyncResult[Out] {
		return FromResultFuture(ctx, func(c context.Context) Result[Out] {
			return wrapped(c, in)
		})
	}
}

// CreateAsyncResult adapts a function that already returns a Result into one
// returning an AsyncResult, so call sites compose without awaiting each step.
func CreateAsyncResult[In, Out any](fn func(ctx context.Context, in In) Result[Out]) func(ctx context.Context, in In) AsyncResult[Out] {
	return func(ctx context.Context, in In) AsyncResult[Out] {
		return FromResultFuture(ctx, func(c context.Context) Result[Out] {
			return fn(c, in)
		})
	}
}

// ToAsyncResult is shorthand for FromPromise.
func ToAsyncResult[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) AsyncResult[T] {
	return FromPromise(ctx, fn)
}

func failNormalized[Out any](v any, errMap []func(err error) error) Result[Out] {
	err := Normalize(v)
	if len(errMap) > 0 && errMap[0] != nil {
		err = errMap[0](err)
	}
	return Fail[Out](err)
}
