package rop

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropt/pkg/rop/core"
	"github.com/ib-77/ropt/pkg/rop/fault"
)

// Collect gathers the values of rs in order. If any result is an Err, it
// returns an Aggregate fault holding every error, in order.
func Collect[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	var errs []error
	for _, r := range rs {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	if len(errs) > 0 {
		return ErrOf[[]T](fault.Aggregate(fmt.Sprintf("%d of %d results failed", len(errs), len(rs)), errs...))
	}
	return Ok(values)
}

// TryAll runs fns concurrently with Try semantics and collects their values
// in order.
//
// Concurrency is bounded by core.WithWorkerOptions (unbounded by default).
// With core.WithProcessOptions(ctx, false) the first failure cancels the
// context passed to the remaining functions and cancellations caused by it
// are left out of the aggregate; by default every function runs to
// completion.
func TryAll[T any](ctx context.Context, fns ...func(ctx context.Context) (T, error)) Result[[]T] {
	if err := contextError(ctx); err != nil {
		return ErrOf[[]T](err)
	}

	processRemaining := core.IsProcessRemainingEnabled(ctx, true)
	limit := core.GetWorkerMaxCount(ctx, core.Unlimited)
	if limit < 1 {
		limit = core.Unlimited
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Result[T], len(fns))
	firstFailure := atomic.Int64{}
	firstFailure.Store(-1)

	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, fn := range fns {
		g.Go(func() error {
			if err := contextError(runCtx); err != nil {
				results[i] = ErrOf[T](err)
				return nil
			}
			results[i] = Try(func() (T, error) { return fn(runCtx) })
			if results[i].IsError() && !processRemaining && firstFailure.CompareAndSwap(-1, int64(i)) {
				cancel()
			}
			return nil
		})
	}
	_ = g.Wait()

	first := int(firstFailure.Load())
	values := make([]T, 0, len(fns))
	var errs []error
	for i, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		if first >= 0 && i != first && ctx.Err() == nil && IsCancellationError(r.err) {
			continue
		}
		errs = append(errs, r.err)
	}
	if len(errs) > 0 {
		return ErrOf[[]T](fault.Aggregate(fmt.Sprintf("%d of %d functions failed", len(errs), len(fns)), errs...))
	}
	return Ok(values)
}
