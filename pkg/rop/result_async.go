package rop

import (
	"context"

	"github.com/ib-77/ropt/pkg/rop/core"
	"github.com/ib-77/ropt/pkg/rop/fault"
)

// MapResultAsync maps the value of an Ok result on its own goroutine.
// An Err passes through immediately with the same error, even when ctx is
// done; otherwise a done ctx fails without calling f.
func MapResultAsync[T, U any](ctx context.Context, r Result[T], f func(ctx context.Context, v T) (U, error)) <-chan Result[U] {
	if !r.ok {
		return core.Ready(ErrOf[U](r.err))
	}
	if err := contextError(ctx); err != nil {
		return core.Ready(ErrOf[U](err))
	}
	return core.Spawn(func() Result[U] {
		return Try(func() (U, error) { return f(ctx, r.value) })
	})
}

// MapResultOrAsync maps the value of an Ok result, or yields Ok(def) for an
// error.
func MapResultOrAsync[T, U any](ctx context.Context, r Result[T], f func(ctx context.Context, v T) (U, error), def U) <-chan Result[U] {
	if err := contextError(ctx); err != nil {
		return core.Ready(ErrOf[U](err))
	}
	if !r.ok {
		return core.Ready(Ok(def))
	}
	return core.Spawn(func() Result[U] {
		return Try(func() (U, error) { return f(ctx, r.value) })
	})
}

// MapErrorAsync maps the error of an Err result on its own goroutine. The
// error returned by f is classified with fault.Convert; a nil return keeps
// the original error. An Ok result passes through immediately, even when
// ctx is done; otherwise a done ctx fails without calling f.
func MapErrorAsync[T any](ctx context.Context, r Result[T], f func(ctx context.Context, e *fault.Error) error) <-chan Result[T] {
	if r.ok {
		return core.Ready(r)
	}
	if err := contextError(ctx); err != nil {
		return core.Ready(ErrOf[T](err))
	}
	return core.Spawn(func() (out Result[T]) {
		defer func() {
			if p := recover(); p != nil {
				out = ErrOf[T](fault.FromPanic(p))
			}
		}()
		if mapped := fault.ConvertContext(ctx, f(ctx, r.err)); mapped != nil {
			return ErrOf[T](mapped)
		}
		return r
	})
}

// InspectAsync runs fn with the value of an Ok result on its own goroutine
// and delivers the callback's failure, if any. Err results deliver nil
// without calling fn or consulting ctx.
func InspectAsync[T any](ctx context.Context, r Result[T], fn func(ctx context.Context, v T) error) <-chan error {
	if !r.ok {
		return core.Ready[error](nil)
	}
	if err := contextError(ctx); err != nil {
		return core.Ready[error](err)
	}
	return core.Spawn(func() error {
		return inspect(func() error { return fn(ctx, r.value) })
	})
}

// InspectErrorAsync runs fn with the error of an Err result on its own
// goroutine and delivers the callback's failure, if any. Ok results
// deliver nil without calling fn or consulting ctx.
func InspectErrorAsync[T any](ctx context.Context, r Result[T], fn func(ctx context.Context, e *fault.Error) error) <-chan error {
	if r.ok {
		return core.Ready[error](nil)
	}
	if err := contextError(ctx); err != nil {
		return core.Ready[error](err)
	}
	return core.Spawn(func() error {
		return inspect(func() error { return fn(ctx, r.err) })
	})
}

func inspect(fn func() error) error {
	r := TryDo(fn)
	if r.ok {
		return nil
	}
	return r.err
}

// Await waits for the result delivered on ch. It fails with a cancellation
// fault when ctx is done first and with an InvalidOperation fault when ch is
// closed without a value.
func Await[T any](ctx context.Context, ch <-chan Result[T]) Result[T] {
	r, ok := core.FirstOrDefault(ctx, ch, Result[T]{})
	if ok {
		return r
	}
	if err := contextError(ctx); err != nil {
		return ErrOf[T](err)
	}
	return ErrOf[T](fault.InvalidOperation("channel closed without a result"))
}
