package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Engine is one pipeline stage: it consumes a settled Result and produces
// the next one.
type Engine[In, Out any] func(ctx context.Context, input outcome.Result[In]) outcome.Result[Out]

// locomotive pulls results from inputCh through the engine into outCh until
// the input closes or ctx is cancelled. With the fail-remaining option set,
// items still queued at cancellation are forwarded as failures carrying
// ctx.Err() instead of being dropped; those sends block until taken, so
// pipeline output must be drained with a context independent of the
// cancelled one.
func locomotive[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	outCh chan<- outcome.Result[Out], engine Engine[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		// checked ahead of the select so cancellation wins over a ready
		// input item and fail-remaining drains everything still queued
		if ctx.Err() != nil {
			if IsFailRemainingEnabled(ctx, false) {
				failRemaining(ctx, inputCh, outCh)
			}
			return
		}

		select {
		case <-ctx.Done():
			if IsFailRemainingEnabled(ctx, false) {
				failRemaining(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case outCh <- engine(ctx, in):
			case <-ctx.Done():
				if IsFailRemainingEnabled(ctx, false) {
					outCh <- outcome.Fail[Out](ctx.Err())
					failRemaining(ctx, inputCh, outCh)
				}
				return
			}
		}
	}
}

func failRemaining[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	outCh chan<- outcome.Result[Out]) {

	for range inputCh {
		outCh <- outcome.Fail[Out](ctx.Err())
	}
}

// Run fans inputCh out across a number of workers, each driving the engine,
// and merges their output. The worker count defaults to the value carried by
// WithWorkerOptions when workers is zero or negative.
func Run[T any](ctx context.Context, inputCh <-chan outcome.Result[T],
	engine Engine[T, T], workers int) <-chan outcome.Result[T] {
	return Turnout(ctx, inputCh, engine, workers)
}

// Turnout is Run across a value-type switch.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan outcome.Result[In],
	engine Engine[In, Out], workers int) <-chan outcome.Result[Out] {

	if workers <= 0 {
		workers = WorkerMaxCount(ctx, 1)
	}

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
