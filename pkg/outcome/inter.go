package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that can return a value or a failure
type WithFailure[T, E any] interface {
	ValueProvider[T]
	// Failure returns the failure value if the operation failed
	Failure() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithFailure[int, error] = Outcome[int, error]{}
