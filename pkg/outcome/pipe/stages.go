package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Validate builds a stage that fails values rejected by the predicate.
func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return func(ctx context.Context, input outcome.Result[T]) outcome.Result[T] {
		return outcome.Switch(input, func(v T) outcome.Result[T] {
			if valid, errMsg := validate(ctx, v); !valid {
				return outcome.Fail[T](errors.New(errMsg))
			}
			return input
		})
	}
}

// Switch builds a stage from a Result-returning function.
func Switch[In, Out any](onSuccess func(ctx context.Context, r In) outcome.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return outcome.Switch(input, func(v In) outcome.Result[Out] {
			return onSuccess(ctx, v)
		})
	}
}

// Map builds a stage from a pure transform.
func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return outcome.Map(input, func(v In) Out {
			return onSuccess(ctx, v)
		})
	}
}

// Try builds a stage from a (value, error)-shaped function.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return outcome.Try(input, func(v In) (Out, error) {
			return onTryExecute(ctx, v)
		})
	}
}

// DoubleMap builds a stage that maps both variants to a successful Out.
func DoubleMap[In, Out any](
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnFailure func(ctx context.Context, err error) Out) Engine[In, Out] {

	return func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out] {
		return outcome.MapOrElse(input,
			func(v In) Out { return mapOnSuccess(ctx, v) },
			func(err error) Out { return mapOnFailure(ctx, err) })
	}
}

// Tee builds a pass-through stage running a side effect on success.
func Tee[T any](sideEffect func(ctx context.Context, r T)) Engine[T, T] {
	return func(ctx context.Context, input outcome.Result[T]) outcome.Result[T] {
		return input.Inspect(func(v T) {
			sideEffect(ctx, v)
		})
	}
}

// DoubleTee builds a pass-through stage running a side effect on either
// variant.
func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnFailure func(ctx context.Context, err error)) Engine[T, T] {

	return func(ctx context.Context, input outcome.Result[T]) outcome.Result[T] {
		return input.
			Inspect(func(v T) { sideEffect(ctx, v) }).
			InspectErr(func(err error) { sideEffectOnFailure(ctx, err) })
	}
}

// FinallyHandlers reduce each settled Result to a plain value on the way out
// of a pipeline.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err error) Out
}

// Finally collapses a channel of Results into a channel of plain values via
// per-variant handlers.
func Finally[In, Out any](ctx context.Context, input <-chan outcome.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case r, ok := <-input:
				if !ok {
					return
				}

				v := outcome.Finally(r,
					func(v In) Out { return handlers.OnSuccess(ctx, v) },
					func(err error) Out { return handlers.OnFailure(ctx, err) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
