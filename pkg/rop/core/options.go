package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

// Unlimited disables the worker bound.
const Unlimited = -1

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ProcessOptions controls fan-out behavior after a failure. With
// ProcessRemaining set, siblings keep running and every failure is
// collected; otherwise the first failure cancels the rest.
type ProcessOptions struct {
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

// WithWorkerOptions bounds how many functions run at once. Values below 1
// mean Unlimited.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	if maxWorkers < 1 {
		maxWorkers = Unlimited
	}
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	if options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions); ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
