package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result is a closed two-variant value: success holding a T, or failure
// holding an error. A Result is never mutated after construction; every
// transforming operation returns a new Result.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across a value-type switch, preserving the
// original result's id and timestamp. Calling it on a success yields a
// success holding the zero Out value.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the held value on success and the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the held error on failure and nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the held value and error as an ordinary Go pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the held value, panicking with *UnwrapFailureError if the
// result is a failure. The panic message carries a nested rendering of the
// held error so the failure is diagnosable from the message alone.
func (r Result[T]) Unwrap() T {
	if r.isSuccess {
		return r.value
	}
	panic(&UnwrapFailureError{Held: r.err})
}

// UnwrapErr returns the held error, panicking with *UnwrapSuccessError if the
// result is a success.
func (r Result[T]) UnwrapErr() error {
	if r.isSuccess {
		panic(&UnwrapSuccessError{Held: r.value})
	}
	return r.err
}

// UnwrapOr returns the held value on success and alt on failure.
func (r Result[T]) UnwrapOr(alt T) T {
	if r.isSuccess {
		return r.value
	}
	return alt
}

// UnwrapOrElse returns the held value on success; on failure it returns
// fn(err). fn is never invoked on success.
func (r Result[T]) UnwrapOrElse(fn func(err error) T) T {
	if r.isSuccess {
		return r.value
	}
	return fn(r.err)
}

// Expect returns the held value, panicking with *ExpectError carrying msg
// (and the held error as nested cause) if the result is a failure.
func (r Result[T]) Expect(msg string) T {
	if r.isSuccess {
		return r.value
	}
	panic(&ExpectError{Msg: msg, Held: r.err})
}

// ExpectErr returns the held error, panicking with *ExpectError carrying msg
// if the result is a success.
func (r Result[T]) ExpectErr(msg string) error {
	if r.isSuccess {
		panic(&ExpectError{Msg: msg})
	}
	return r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// IsEmpty reports a zero Result that was not built by a constructor.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}
