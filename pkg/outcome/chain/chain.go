package chain

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result with context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes functions that already return outcome.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	u, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: outcome.Fail[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Success(u)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Success(onSuccess(c.ctx, c.res.Value()))}
}

// Validate applies a predicate, turning an invalid value into a failure
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	if valid, errMsg := validate(c.ctx, c.res.Value()); !valid {
		return Chain[T]{ctx: c.ctx, res: outcome.Fail[T](errors.New(errMsg))}
	}
	return c
}

// ValidateAll applies every validator, joining the collected failures into a
// single error. With breakOnError set it stops at the first failure.
func (c Chain[T]) ValidateAll(breakOnError bool,
	validators ...func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	var errs []error
	for _, validate := range validators {
		if valid, errMsg := validate(c.ctx, c.res.Value()); !valid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return Chain[T]{ctx: c.ctx, res: outcome.Fail[T](errors.Join(errs...))}
	}
	return c
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) outcome.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain among the receiver and alternative,
// else the first failure.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasFail := false
	var failRes outcome.Result[T]
	var failCtx context.Context

	for _, ch := range candidates {
		if ch.res.IsSuccess() {
			return Chain[T]{ctx: ch.ctx, res: ch.res}
		}

		if !hasFail {
			hasFail = true
			failRes = ch.res
			failCtx = ch.ctx
		}
	}

	if hasFail {
		return Chain[T]{ctx: failCtx, res: failRes}
	}
	return c
}

// And returns the first failure among the receiver and required, else the
// last success.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var res outcome.Result[T]
	for _, ch := range candidates {
		res = ch.res

		if res.IsFailure() {
			return Chain[T]{ctx: ch.ctx, res: res}
		}
	}

	return Chain[T]{ctx: c.ctx, res: res}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Async lifts the chain's current result into an already-settled AsyncResult
func (c Chain[T]) Async() outcome.AsyncResult[T] {
	return c.res.ToAsync()
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Err())
}

// To switches the chain to a new value type via a Result-returning function
func To[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) outcome.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: outcome.Switch(c.res, func(v T) outcome.Result[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// MapTo switches the chain to a new value type via a pure transform
func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: outcome.Map(c.res, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// TryTo switches the chain to a new value type via a (U, error) function
func TryTo[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: outcome.Try(c.res, func(v T) (U, error) {
			return try(c.ctx, v)
		}),
	}
}
