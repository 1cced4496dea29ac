package outcome

import (
	"context"
	"errors"
)

// ErrFutureAbandoned settles a future whose source channel was closed
// without ever carrying a Result.
var ErrFutureAbandoned = errors.New("future abandoned: channel closed without a result")

// AsyncResult owns a single future that settles to a Result[T] exactly once.
// Every combinator derives a brand-new AsyncResult chaining off the previous
// one; originals are never re-run. There is no cancellation or timeout inside
// the container: a computation that never returns leaves every derived
// AsyncResult permanently pending.
type AsyncResult[T any] struct {
	done <-chan struct{}
	res  *Result[T]
}

func spawnAsync[T any](run func() Result[T]) AsyncResult[T] {
	done := make(chan struct{})
	res := new(Result[T])

	go func() {
		defer close(done)
		*res = run()
	}()

	return AsyncResult[T]{done: done, res: res}
}

// deriveAsync chains a new future off the settlement of a previous one.
// A panicking step settles the derived future to a normalized failure
// instead of crashing its goroutine.
func deriveAsync[In, Out any](a AsyncResult[In], step func(r Result[In]) Result[Out]) AsyncResult[Out] {
	return spawnAsync(func() (out Result[Out]) {
		defer func() {
			if rec := recover(); rec != nil {
				out = Fail[Out](Normalize(rec))
			}
		}()
		return step(a.Await())
	})
}

// FromResult wraps an already-settled Result.
func FromResult[T any](r Result[T]) AsyncResult[T] {
	done := make(chan struct{})
	close(done)
	return AsyncResult[T]{done: done, res: &r}
}

// FromPromise runs fn in its own goroutine: the returned value settles the
// future as a success, a returned error or a recovered panic is passed
// through Normalize and settles it as a failure. ctx is handed to fn only;
// the container itself has no cancellation.
func FromPromise[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) AsyncResult[T] {
	return spawnAsync(func() (res Result[T]) {
		defer func() {
			if rec := recover(); rec != nil {
				res = Fail[T](Normalize(rec))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			return Fail[T](Normalize(err))
		}
		return Success(v)
	})
}

// FromResultFuture runs a function that already distinguishes success and
// failure explicitly, settling the future with the Result it returns.
func FromResultFuture[T any](ctx context.Context, fn func(ctx context.Context) Result[T]) AsyncResult[T] {
	return spawnAsync(func() (res Result[T]) {
		defer func() {
			if rec := recover(); rec != nil {
				res = Fail[T](Normalize(rec))
			}
		}()
		return fn(ctx)
	})
}

// FromChan adopts an in-flight future expressed as a channel; the first
// value received settles the AsyncResult. A channel closed without ever
// carrying a value settles to a failure holding ErrFutureAbandoned, so the
// result is always one of the two defined variants.
func FromChan[T any](ch <-chan Result[T]) AsyncResult[T] {
	return spawnAsync(func() Result[T] {
		if r, ok := <-ch; ok {
			return r
		}
		return Fail[T](ErrFutureAbandoned)
	})
}

// Done returns a channel closed when the future settles, for select-based
// observation.
func (a AsyncResult[T]) Done() <-chan struct{} {
	return a.done
}

// Await blocks until the future settles and returns the Result. Safe for any
// number of callers; they all observe the same settled value.
func (a AsyncResult[T]) Await() Result[T] {
	<-a.done
	return *a.res
}

func (a AsyncResult[T]) IsSuccess() bool {
	return a.Await().IsSuccess()
}

func (a AsyncResult[T]) IsFailure() bool {
	return a.Await().IsFailure()
}

func (a AsyncResult[T]) Value() T {
	return a.Await().Value()
}

func (a AsyncResult[T]) Err() error {
	return a.Await().Err()
}

func (a AsyncResult[T]) Get() (T, error) {
	return a.Await().Get()
}

// Unwrap awaits settlement and applies Result.Unwrap, re-raising its panic
// in the caller's goroutine on failure.
func (a AsyncResult[T]) Unwrap() T {
	return a.Await().Unwrap()
}

func (a AsyncResult[T]) UnwrapErr() error {
	return a.Await().UnwrapErr()
}

func (a AsyncResult[T]) UnwrapOr(alt T) T {
	return a.Await().UnwrapOr(alt)
}

func (a AsyncResult[T]) UnwrapOrElse(fn func(err error) T) T {
	return a.Await().UnwrapOrElse(fn)
}

func (a AsyncResult[T]) Expect(msg string) T {
	return a.Await().Expect(msg)
}

func (a AsyncResult[T]) ExpectErr(msg string) error {
	return a.Await().ExpectErr(msg)
}

// Map derives a new AsyncResult applying fn to the settled success value.
// fn runs inside the derived goroutine and is free to block.
func (a AsyncResult[T]) Map(fn func(v T) T) AsyncResult[T] {
	return deriveAsync(a, func(r Result[T]) Result[T] {
		return r.Map(fn)
	})
}

func (a AsyncResult[T]) MapErr(fn func(err error) error) AsyncResult[T] {
	return deriveAsync(a, func(r Result[T]) Result[T] {
		return r.MapErr(fn)
	})
}

func (a AsyncResult[T]) MapOrElse(fn func(v T) T, fallback func(err error) T) AsyncResult[T] {
	return deriveAsync(a, func(r Result[T]) Result[T] {
		return r.MapOrElse(fn, fallback)
	})
}

// Inspect runs cb on the settled success value without altering the chain.
// A best-effort inspector that must not delay the chain can spawn its own
// goroutine.
func (a AsyncResult[T]) Inspect(cb func(v T)) AsyncResult[T] {
	return deriveAsync(a, func(r Result[T]) Result[T] {
		return r.Inspect(cb)
	})
}

func (a AsyncResult[T]) InspectErr(cb func(err error)) AsyncResult[T] {
	return deriveAsync(a, func(r Result[T]) Result[T] {
		return r.InspectErr(cb)
	})
}

// MapAsync is the type-changing lift of Map.
func MapAsync[In, Out any](a AsyncResult[In], fn func(v In) Out) AsyncResult[Out] {
	return deriveAsync(a, func(r Result[In]) Result[Out] {
		return Map(r, fn)
	})
}

// SwitchAsync is the type-changing lift of Switch.
func SwitchAsync[In, Out any](a AsyncResult[In], fn func(v In) Result[Out]) AsyncResult[Out] {
	return deriveAsync(a, func(r Result[In]) Result[Out] {
		return Switch(r, fn)
	})
}

// TryAsync is the type-changing lift of Try.
func TryAsync[In, Out any](a AsyncResult[In], fn func(v In) (Out, error)) AsyncResult[Out] {
	return deriveAsync(a, func(r Result[In]) Result[Out] {
		return Try(r, fn)
	})
}

// MapOrElseAsync is the type-changing lift of MapOrElse.
func MapOrElseAsync[In, Out any](a AsyncResult[In], fn func(v In) Out, fallback func(err error) Out) AsyncResult[Out] {
	return deriveAsync(a, func(r Result[In]) Result[Out] {
		return MapOrElse(r, fn, fallback)
	})
}

// FinallyAsync awaits settlement and reduces to a concrete value via
// per-variant handlers.
func FinallyAsync[In, Out any](a AsyncResult[In], onSuccess func(v In) Out, onFailure func(err error) Out) Out {
	return Finally(a.Await(), onSuccess, onFailure)
}
