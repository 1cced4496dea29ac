package pipe

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/ib-77/outcome/pkg/outcome"
)

// SourceHandlers observe how values enter a pipeline.
type SourceHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults emits each value as a success Result, stopping early when
// ctx is cancelled.
func ToChanResults[T any](ctx context.Context, values ...T) <-chan outcome.Result[T] {
	return ToChanResultsWithHandlers(ctx, SourceHandlers[T]{}, values...)
}

func ToChanResultsWithHandlers[T any](ctx context.Context, handlers SourceHandlers[T],
	values ...T) <-chan outcome.Result[T] {

	in := make(chan outcome.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- outcome.Success(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice, stopping on ctx cancellation.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// First returns the first value received, or the zero value when the channel
// closes or ctx is cancelled before anything arrives.
func First[T any](ctx context.Context, out <-chan T) T {
	res := lo.Empty[T]()
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}
