package chain

import (
	"errors"
	"testing"

	"github.com/devhammed/result-go/pkg/result"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()

	out := Start(result.Success[int, error](5)).Result()
	if !out.IsSuccess() || out.Unwrap() != 5 {
		t.Fatalf("expected success with 5, got: %v", out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue[int, error](7).Result()
	if !out.IsSuccess() || out.Unwrap() != 7 {
		t.Fatalf("expected success with 7, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	called := false
	out := Start(result.Failure[int](err)).
		Then(func(v int) result.Result[int, error] {
			called = true
			return result.Success[int, error](v + 1)
		}).
		Result()

	if out.IsSuccess() || out.UnwrapError().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("then must not run after a failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	out := FromValue[int, error](3).
		Then(func(v int) result.Result[int, error] { return result.Success[int, error](v * 2) }).
		Result()

	if !out.IsSuccess() || out.Unwrap() != 6 {
		t.Fatalf("expected success with 6, got: %v", out)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := FromValue[int, error](4).
		Map(func(v int) int { return v * v }).
		Result()
	if !out.IsSuccess() || out.Unwrap() != 16 {
		t.Fatalf("expected success with 16, got: %v", out)
	}

	err := errors.New("oops")
	out = Start(result.Failure[int](err)).
		Map(func(v int) int { return v + 100 }).
		Result()
	if out.IsSuccess() || out.UnwrapError().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: %v", out)
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()

	out := FromValue[int, error](1).
		While(
			func(v int) result.Result[int, error] { return result.Success[int, error](v * 2) },
			func(v int) bool { return v < 10 },
		).
		Result()

	if !out.IsSuccess() || out.Unwrap() != 16 {
		t.Fatalf("expected success with 16, got: %v", out)
	}
}

func TestWhile_StopsOnFailure(t *testing.T) {
	t.Parallel()

	steps := 0
	out := FromValue[int, error](1).
		While(
			func(v int) result.Result[int, error] {
				steps++
				if steps == 2 {
					return result.Failure[int](errors.New("step failed"))
				}
				return result.Success[int, error](v + 1)
			},
			func(v int) bool { return true },
		).
		Result()

	if out.IsSuccess() || steps != 2 {
		t.Fatalf("expected failure after 2 steps, got: %v after %d steps", out, steps)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	var observed int
	failureCalled := false
	FromValue[int, error](9).Ensure(
		func(v int) { observed = v },
		func(error) { failureCalled = true },
	)
	if observed != 9 || failureCalled {
		t.Fatalf("expected only the success hook, got observed=%d, failure=%v", observed, failureCalled)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	primary := Start(result.Failure[int](errors.New("down")))
	alternative := FromValue[int, error](42)

	out := primary.Or(alternative).Result()
	if !out.IsSuccess() || out.Unwrap() != 42 {
		t.Fatalf("expected the alternative, got: %v", out)
	}

	out = FromValue[int, error](1).Or(alternative).Result()
	if !out.IsSuccess() || out.Unwrap() != 1 {
		t.Fatalf("expected the primary success, got: %v", out)
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	out := Start(result.Failure[int](errors.New("down"))).
		OrElse(func(err error) result.Result[int, error] {
			return result.Success[int, error](len(err.Error()))
		}).
		Result()
	if !out.IsSuccess() || out.Unwrap() != 4 {
		t.Fatalf("expected recovery to 4, got: %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := FromValue[int, error](5).
		Finally(
			func(v int) int { return v * 2 },
			func(error) int { return -1 },
		)
	if got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}

	got = Start(result.Failure[int](errors.New("boom"))).
		Finally(
			func(v int) int { return v },
			func(error) int { return -1 },
		)
	if got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
