package outcome

// Map transforms the held value on success; a failure passes through
// untouched and fn is never invoked.
func (r Result[T]) Map(fn func(v T) T) Result[T] {
	if !r.isSuccess {
		return r
	}
	return Success(fn(r.value))
}

// MapErr transforms the held error on failure; a success passes through
// untouched and fn is never invoked.
func (r Result[T]) MapErr(fn func(err error) error) Result[T] {
	if r.isSuccess {
		return r
	}
	return Fail[T](fn(r.err))
}

// MapOrElse always yields a success: fn(value) on success, fallback(err) on
// failure.
func (r Result[T]) MapOrElse(fn func(v T) T, fallback func(err error) T) Result[T] {
	if r.isSuccess {
		return Success(fn(r.value))
	}
	return Success(fallback(r.err))
}

// Inspect runs cb for its side effects when the result is a success and
// returns the receiver unchanged, held value identity included.
func (r Result[T]) Inspect(cb func(v T)) Result[T] {
	if r.isSuccess {
		cb(r.value)
	}
	return r
}

// InspectErr runs cb for its side effects when the result is a failure and
// returns the receiver unchanged.
func (r Result[T]) InspectErr(cb func(err error)) Result[T] {
	if !r.isSuccess {
		cb(r.err)
	}
	return r
}

// ToAsync lifts the result into an already-settled AsyncResult.
func (r Result[T]) ToAsync() AsyncResult[T] {
	return FromResult(r)
}

// Map transforms a successful Result[In] into Result[Out]. Methods cannot
// introduce type parameters, so value-type changes live here.
func Map[In, Out any](r Result[In], fn func(v In) Out) Result[Out] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return Success(fn(r.Value()))
}

// Switch moves from Result[In] to Result[Out] via a function that itself
// speaks Result.
func Switch[In, Out any](r Result[In], fn func(v In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return fn(r.Value())
}

// Try calls a (value, error)-shaped function and converts the error into a
// failure.
func Try[In, Out any](r Result[In], fn func(v In) (Out, error)) Result[Out] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}

	out, err := fn(r.Value())
	if err != nil {
		return Fail[Out](err)
	}
	return Success(out)
}

// MapOrElse is the type-changing form of Result.MapOrElse; the outcome is
// always a success.
func MapOrElse[In, Out any](r Result[In], fn func(v In) Out, fallback func(err error) Out) Result[Out] {
	if r.IsSuccess() {
		return Success(fn(r.Value()))
	}
	return Success(fallback(r.Err()))
}

// Finally reduces a Result to a concrete value via per-variant handlers.
func Finally[In, Out any](r Result[In], onSuccess func(v In) Out, onFailure func(err error) Out) Out {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}
