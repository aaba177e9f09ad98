package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rvk-77/outcome/pkg/outcome"
)

func TestCancelValues(t *testing.T) {
	t.Parallel()

	ctx := WithProcessOptions(context.Background(), true)

	inputCh := make(chan outcome.Outcome[int, string], 3)
	inputCh <- outcome.Success[int, string](1)
	inputCh <- outcome.Failure[int, string]("error")
	inputCh <- outcome.Success[int, string](3)
	close(inputCh)

	outputCh := make(chan string, 3)

	brokenF := func(ctx context.Context, in outcome.Outcome[int, string]) string {
		if in.IsSuccess() {
			return fmt.Sprintf("value_%d", in.Value())
		}
		return "failed"
	}

	go func() {
		defer close(outputCh)
		CancelValues(ctx, inputCh, brokenF, outputCh)
	}()

	var results []string
	for result := range outputCh {
		results = append(results, result)
	}

	expected := []string{"value_1", "failed", "value_3"}
	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}
	for i, exp := range expected {
		if results[i] != exp {
			t.Fatalf("expected %s at position %d, got %s", exp, i, results[i])
		}
	}
}

func TestCancelValues_Disabled(t *testing.T) {
	t.Parallel()

	ctx := WithProcessOptions(context.Background(), false)

	inputCh := make(chan outcome.Outcome[int, string], 2)
	inputCh <- outcome.Success[int, string](1)
	inputCh <- outcome.Success[int, string](2)
	close(inputCh)

	outputCh := make(chan string, 2)

	go func() {
		defer close(outputCh)
		CancelValues(ctx, inputCh,
			func(ctx context.Context, in outcome.Outcome[int, string]) string { return "broken" },
			outputCh)
	}()

	var results []string
	for result := range outputCh {
		results = append(results, result)
	}

	if len(results) != 0 {
		t.Fatalf("expected no results when process-remaining is disabled, got %d", len(results))
	}
}

func TestCancelValue(t *testing.T) {
	t.Parallel()

	ctx := WithProcessOptions(context.Background(), true)
	outputCh := make(chan error, 1)

	in := outcome.Failure[int, error](errors.New("boom"))
	go func() {
		defer close(outputCh)
		CancelValue(ctx, in,
			func(ctx context.Context, in outcome.Outcome[int, error]) error { return in.Failure() },
			outputCh)
	}()

	got, ok := <-outputCh
	if !ok || got == nil || got.Error() != "boom" {
		t.Fatalf("expected broken value boom, got: %v (ok=%v)", got, ok)
	}
}

func TestCancelResults(t *testing.T) {
	t.Parallel()

	ctx := WithProcessOptions(context.Background(), true)

	inputCh := make(chan int, 3)
	inputCh <- 1
	inputCh <- 2
	inputCh <- 3
	close(inputCh)

	outputCh := make(chan int, 3)

	go func() {
		defer close(outputCh)
		CancelResults(ctx, inputCh, outputCh)
	}()

	var results []int
	for result := range outputCh {
		results = append(results, result)
	}

	expected := []int{1, 2, 3}
	if len(results) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, results)
	}
	for i, exp := range expected {
		if results[i] != exp {
			t.Fatalf("expected %v, got %v", expected, results)
		}
	}
}

func TestCancelResult(t *testing.T) {
	t.Parallel()

	ctx := WithProcessOptions(context.Background(), true)
	outputCh := make(chan string, 1)

	go func() {
		defer close(outputCh)
		CancelResult(ctx, "pending", outputCh)
	}()

	got, ok := <-outputCh
	if !ok || got != "pending" {
		t.Fatalf("expected pending to be forwarded, got: %q (ok=%v)", got, ok)
	}
}
