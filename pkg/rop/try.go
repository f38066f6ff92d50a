package rop

import (
	"context"

	"github.com/ib-77/ropt/pkg/rop/core"
	"github.com/ib-77/ropt/pkg/rop/fault"
)

// Try runs fn and captures its outcome. A returned error or a panic becomes
// an Err classified with fault.Convert. A typed nil error counts as success.
func Try[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = ErrOf[T](fault.FromPanic(p))
		}
	}()

	v, err := fn()
	if IsNil(err) {
		return Ok(v)
	}
	return Err[T](err)
}

// TryDo is Try for functions that only report an error.
func TryDo(fn func() error) Result[Nil] {
	return Try(func() (Nil, error) {
		return Void, fn()
	})
}

// TryOf runs fn and classifies any error or panic with classify.
func TryOf[T, E any](fn func() (T, error), classify func(error) E) ResultOf[T, E] {
	r := Try(fn)
	if r.ok {
		return OkOf[T, E](r.value)
	}
	return ErrOf[T](classify(r.err.Native()))
}

// TryAsync runs fn on its own goroutine. If ctx is already done it fails
// with a cancellation fault without calling fn.
func TryAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan Result[T] {
	if err := contextError(ctx); err != nil {
		return core.Ready(ErrOf[T](err))
	}
	return core.Spawn(func() Result[T] {
		return Try(func() (T, error) { return fn(ctx) })
	})
}

func TryDoAsync(ctx context.Context, fn func(ctx context.Context) error) <-chan Result[Nil] {
	return TryAsync(ctx, func(ctx context.Context) (Nil, error) {
		return Void, fn(ctx)
	})
}

// TryAsyncOf is TryAsync with a custom error classifier. Cancellation errors
// are classified too.
func TryAsyncOf[T, E any](ctx context.Context, fn func(ctx context.Context) (T, error), classify func(error) E) <-chan ResultOf[T, E] {
	if err := ctx.Err(); err != nil {
		return core.Ready(ErrOf[T](classify(err)))
	}
	return core.Spawn(func() ResultOf[T, E] {
		return TryOf(func() (T, error) { return fn(ctx) }, classify)
	})
}
