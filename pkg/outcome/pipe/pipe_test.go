package pipe

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestToChan_Collect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Collect(ctx, ToChan(ctx, 1, 2, 3))
	sort.Ints(got)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestToChanResults_EmitsSuccesses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	results := Collect(ctx, ToChanResults(ctx, "a", "b"))
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.IsSuccess() {
			t.Fatalf("expected success, got err=%v", r.Err())
		}
	}
}

func TestToChanResults_StartFail(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var failed []int
	ch := ToChanResultsWithHandlers(ctx, SourceHandlers[int]{
		OnStartFail: func(ctx context.Context, input []int) { failed = input },
	}, 1, 2)

	if got := Collect(context.Background(), ch); len(got) != 0 {
		t.Fatalf("expected no emissions on cancelled start, got %v", got)
	}
	if len(failed) != 2 {
		t.Fatalf("expected OnStartFail to see all inputs, got %v", failed)
	}
}

func TestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := First(ctx, ToChan(ctx, 9)); got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}

	empty := make(chan int)
	close(empty)
	if got := First(ctx, empty); got != 0 {
		t.Fatalf("expected zero value from closed channel, got %v", got)
	}
}

func TestRun_ValidateStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Collect(ctx, Run(ctx,
		ToChanResults(ctx, 1, -2, 3),
		Validate(func(ctx context.Context, v int) (bool, string) {
			if v < 0 {
				return false, "negative"
			}
			return true, ""
		}),
		2))

	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}

	failures := 0
	for _, r := range out {
		if r.IsFailure() {
			failures++
			if r.Err().Error() != "negative" {
				t.Fatalf("expected 'negative', got %v", r.Err())
			}
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly one failure, got %d", failures)
	}
}

func TestTurnout_TryStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Collect(ctx, Turnout(ctx,
		ToChanResults(ctx, "1", "bad", "3"),
		Try(func(ctx context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		}),
		2))

	sum, failures := 0, 0
	for _, r := range out {
		if r.IsFailure() {
			failures++
			continue
		}
		sum += r.Value()
	}
	if failures != 1 || sum != 4 {
		t.Fatalf("expected one failure and sum 4, got failures=%d sum=%d", failures, sum)
	}
}

func TestStages_Compose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var teed int
	stageIn := ToChanResults(ctx, 2, 4)
	doubled := Turnout(ctx, stageIn, Map(func(ctx context.Context, v int) int { return v * 2 }), 1)
	observed := Run(ctx, doubled, Tee(func(ctx context.Context, v int) { teed++ }), 1)

	out := Collect(ctx, observed)
	if len(out) != 2 || teed != 2 {
		t.Fatalf("expected 2 observed successes, got %d results, teed=%d", len(out), teed)
	}
}

func TestSwitchStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Collect(ctx, Turnout(ctx,
		ToChanResults(ctx, 5),
		Switch(func(ctx context.Context, v int) outcome.Result[string] {
			return outcome.Success(strconv.Itoa(v))
		}),
		1))

	if len(out) != 1 || out[0].Value() != "5" {
		t.Fatalf("expected [\"5\"], got %v", out)
	}
}

func TestDoubleMapStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan outcome.Result[int], 2)
	in <- outcome.Success(1)
	in <- outcome.Fail[int](errors.New("x"))
	close(in)

	out := Collect(ctx, Turnout(ctx, in,
		DoubleMap(
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, err error) string { return "fallback" },
		),
		1))

	if len(out) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out))
	}
	for _, r := range out {
		if !r.IsSuccess() {
			t.Fatalf("double map must always produce successes, got err=%v", r.Err())
		}
	}
}

func TestDoubleTeeStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan outcome.Result[int], 2)
	in <- outcome.Success(1)
	in <- outcome.Fail[int](errors.New("x"))
	close(in)

	var oks, errs int
	out := Collect(ctx, Run(ctx, in,
		DoubleTee(
			func(ctx context.Context, v int) { oks++ },
			func(ctx context.Context, err error) { errs++ },
		),
		1))

	if len(out) != 2 || oks != 1 || errs != 1 {
		t.Fatalf("expected both side effects once, got results=%d oks=%d errs=%d", len(out), oks, errs)
	}
}

func TestFinally_Collapse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Collect(ctx, Finally(ctx,
		Turnout(ctx,
			ToChanResults(ctx, "1", "bad"),
			Try(func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }),
			1),
		FinallyHandlers[int, string]{
			OnSuccess: func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) },
			OnFailure: func(ctx context.Context, err error) string { return "err" },
		}))

	sort.Strings(out)
	if len(out) != 2 || out[0] != "err" || out[1] != "val:1" {
		t.Fatalf("expected [err val:1], got %v", out)
	}
}

func TestRun_FailRemainingOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	ctx = WithProcessOptions(ctx, true)
	cancel()

	in := make(chan outcome.Result[int], 3)
	in <- outcome.Success(1)
	in <- outcome.Success(2)
	in <- outcome.Success(3)
	close(in)

	// output drained with an independent context, as the cancelled one no
	// longer delivers
	out := Collect(context.Background(), Run(ctx, in,
		Map(func(ctx context.Context, v int) int { return v * 2 }),
		1))

	if len(out) != 3 {
		t.Fatalf("expected all queued items forwarded, got %d results", len(out))
	}
	for _, r := range out {
		if !r.IsFailure() {
			t.Fatalf("expected failure for queued item, got success %v", r.Value())
		}
		if !errors.Is(r.Err(), context.Canceled) {
			t.Fatalf("expected failure to hold ctx.Err(), got %v", r.Err())
		}
	}
}

func TestRun_CancelDropsWithoutFailRemaining(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan outcome.Result[int], 2)
	in <- outcome.Success(1)
	in <- outcome.Success(2)
	close(in)

	out := Collect(context.Background(), Run(ctx, in,
		Map(func(ctx context.Context, v int) int { return v }),
		1))

	if len(out) != 0 {
		t.Fatalf("expected queued items dropped by default, got %v", out)
	}
}

func TestWorkerOptions(t *testing.T) {
	t.Parallel()
	ctx := WithWorkerOptions(context.Background(), 4)

	if got := WorkerMaxCount(ctx, 1); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := WorkerMaxCount(context.Background(), 1); got != 1 {
		t.Fatalf("expected default 1, got %d", got)
	}
}

func TestProcessOptions(t *testing.T) {
	t.Parallel()
	ctx := WithProcessOptions(context.Background(), true)

	if !IsFailRemainingEnabled(ctx, false) {
		t.Fatalf("expected fail-remaining enabled")
	}
	if IsFailRemainingEnabled(context.Background(), false) {
		t.Fatalf("expected default disabled")
	}
}
