package outcome

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	o := Success[int, error](5)

	if !o.IsSuccess() || o.IsFailure() {
		t.Fatalf("expected success, got: success=%v, failure=%v", o.IsSuccess(), o.IsFailure())
	}
	if o.Value() != 5 || !o.HasValue() {
		t.Fatalf("expected value 5, got %v (hasValue=%v)", o.Value(), o.HasValue())
	}
	if o.Id() == uuid.Nil || o.CreatedAt().IsZero() {
		t.Fatalf("expected id and creation time to be set")
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	o := Failure[int, error](err)

	if o.IsSuccess() || !o.IsFailure() {
		t.Fatalf("expected failure, got: success=%v, failure=%v", o.IsSuccess(), o.IsFailure())
	}
	if o.Failure() != err {
		t.Fatalf("expected failure %v, got %v", err, o.Failure())
	}
	if o.HasValue() {
		t.Fatalf("failure must not carry a value")
	}
}

func TestFailureFrom_PreservesFailureAndIdentity(t *testing.T) {
	t.Parallel()
	in := Failure[string, int](404)

	out := FailureFrom[string, float64](in)

	if !out.IsFailure() || out.Failure() != 404 {
		t.Fatalf("expected failure 404, got: failure=%v, val=%v", out.Failure(), out.Value())
	}
	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected id and creation time to be preserved")
	}
}

func TestIsEmpty_ZeroValue(t *testing.T) {
	t.Parallel()
	var o Outcome[int, error]

	if !o.IsEmpty() {
		t.Fatalf("zero value should be empty")
	}
	if o.IsFailure() || o.IsSuccess() {
		t.Fatalf("zero value is neither success nor failure")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("nil should be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatalf("nil pointer should be nil")
	}
	if IsNil(5) {
		t.Fatalf("value should not be nil")
	}
}

func TestErrs(t *testing.T) {
	t.Parallel()
	if got := Errs(nil); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}

	e1 := errors.New("one")
	e2 := errors.New("two")
	if got := Errs(errors.Join(e1, e2)); len(got) != 2 {
		t.Fatalf("expected 2 errors, got %v", got)
	}
	if got := Errs(e1); len(got) != 1 || got[0] != e1 {
		t.Fatalf("expected single error, got %v", got)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()
	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("context errors should be cancellations")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatalf("plain error should not be a cancellation")
	}
}
