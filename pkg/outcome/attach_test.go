package outcome

import "testing"

func TestWith_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	in := Success[int, string](42)

	out := With(in, "ignored")

	if !out.IsSuccess() || out.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
	if out.Id() != in.Id() {
		t.Fatalf("expected id to be preserved, got %v want %v", out.Id(), in.Id())
	}
	if !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected creation time to be preserved, got %v want %v", out.CreatedAt(), in.CreatedAt())
	}
}

func TestWith_FailureCarriesContext(t *testing.T) {
	t.Parallel()
	in := Failure[int, string]("disk error")

	out := With(in, "/tmp/a.txt")

	if out.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	pair := out.Failure()
	if pair.Failure != "disk error" {
		t.Fatalf("expected original failure verbatim, got %q", pair.Failure)
	}
	if pair.Context != "/tmp/a.txt" {
		t.Fatalf("expected supplied context verbatim, got %q", pair.Context)
	}
	if out.Id() != in.Id() {
		t.Fatalf("expected id to be preserved, got %v want %v", out.Id(), in.Id())
	}
}

func TestWith_NonStringFailureAndContext(t *testing.T) {
	t.Parallel()
	type requestInfo struct {
		RequestId int
	}
	in := Failure[string, int](404)

	out := With(in, requestInfo{RequestId: 7})

	if out.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if out.Failure().Failure != 404 {
		t.Fatalf("expected failure code 404, got %v", out.Failure().Failure)
	}
	if out.Failure().Context.RequestId != 7 {
		t.Fatalf("expected request id 7, got %v", out.Failure().Context.RequestId)
	}
}

func TestWith_RepeatedApplicationNests(t *testing.T) {
	t.Parallel()
	in := Failure[int, string]("x")

	out := With(With(in, "step1"), "step2")

	if out.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	pair := out.Failure()
	if pair.Context != "step2" {
		t.Fatalf("expected outer context step2, got %q", pair.Context)
	}
	if pair.Failure.Failure != "x" || pair.Failure.Context != "step1" {
		t.Fatalf("expected inner pair (x, step1), got (%q, %q)", pair.Failure.Failure, pair.Failure.Context)
	}
}

func TestWith_UnitTypes(t *testing.T) {
	t.Parallel()
	in := Success[struct{}, struct{}](struct{}{})

	out := With(in, struct{}{})

	if !out.IsSuccess() {
		t.Fatalf("expected success for unit value, got failure")
	}
}

func TestWithFunc_ContextNotBuiltOnSuccess(t *testing.T) {
	t.Parallel()
	in := Success[int, string](1)

	built := false
	out := WithFunc(in, func() string {
		built = true
		return "expensive"
	})

	if !out.IsSuccess() || out.Value() != 1 {
		t.Fatalf("expected success with 1, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
	if built {
		t.Fatalf("context must not be built on the success path")
	}
}

func TestWithFunc_ContextBuiltOnFailure(t *testing.T) {
	t.Parallel()
	in := Failure[int, string]("boom")

	out := WithFunc(in, func() string { return "ctx" })

	if out.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if out.Failure().Failure != "boom" || out.Failure().Context != "ctx" {
		t.Fatalf("expected pair (boom, ctx), got (%q, %q)", out.Failure().Failure, out.Failure().Context)
	}
}
