package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Awaitable is the observation surface of a pending Result
type Awaitable[T any] interface {
	// Done is closed once the future settles
	Done() <-chan struct{}
	// Await blocks until settlement and returns the Result
	Await() Result[T]
}
