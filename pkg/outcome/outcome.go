package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
	hasValue  bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		failure:   e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

// FailureFrom re-types a failed Outcome to a new value type, keeping the
// failure, id and creation time of the original.
func FailureFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		failure:   from.failure,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Failure() E {
	return o.failure
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.isSuccess && !o.IsEmpty()
}

func (o Outcome[T, E]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) IsEmpty() bool {
	return !o.isSuccess && o.id == uuid.Nil
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}
