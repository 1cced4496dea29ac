package pipe

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type ProcessOptions struct {
	// FailRemaining forwards items queued at cancellation as failures
	// carrying ctx.Err() instead of dropping them.
	FailRemaining bool
}

func WithProcessOptions(ctx context.Context, failRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{FailRemaining: failRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func WorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsFailRemainingEnabled(ctx context.Context, defaultFailRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.FailRemaining
	}
	return defaultFailRemaining
}
