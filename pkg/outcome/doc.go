// Package outcome provides an explicit, inspectable success/failure value
// (Result[T]) and its asynchronous counterpart (AsyncResult[T]), used in
// place of panics for expected failure paths. It also normalizes arbitrary
// recovered values into a single canonical error shape so that failure
// consumers always receive a consistent value.
//
// Key pieces:
// - Success/Fail: construct Result[T]
// - Unwrap/UnwrapErr/UnwrapOr/Expect: assert or extract the held variant
// - Map/MapErr/MapOrElse/Inspect: transform or observe without branching
// - Map/Switch/Try (package level): value-type-changing transforms
// - AsyncResult: a future of a Result with the same surface, each operation
//   lifted through the settlement of the future
// - Normalize: convert an arbitrary recovered value into a CanonicalError,
//   passing real errors through unchanged
// - ToResult/Resultify/AsyncResultify/CreateAsyncResult: adapt ordinary
//   fallible functions into Result-returning ones
//
// Failures never escalate back into panics except at the four assertion
// points (Unwrap, UnwrapErr, Expect, ExpectErr).
package outcome
