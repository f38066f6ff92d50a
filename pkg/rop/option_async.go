package rop

import (
	"context"

	"github.com/ib-77/ropt/pkg/rop/core"
)

// MapOptionAsync maps the value of a Some option on its own goroutine.
// A done ctx fails without calling f; None completes immediately.
func MapOptionAsync[T, U any](ctx context.Context, o Option[T], f func(ctx context.Context, v T) (U, error)) <-chan Result[Option[U]] {
	if err := contextError(ctx); err != nil {
		return core.Ready(ErrOf[Option[U]](err))
	}
	if !o.some {
		return core.Ready(Ok(None[U]()))
	}
	return core.Spawn(func() Result[Option[U]] {
		return Try(func() (Option[U], error) {
			u, err := f(ctx, o.value)
			if err != nil {
				return None[U](), err
			}
			return Some(u), nil
		})
	})
}

// MapOptionOrAsync is MapOptionAsync with gen supplying the value for None.
// A successful result always holds Some.
func MapOptionOrAsync[T, U any](ctx context.Context, o Option[T],
	f func(ctx context.Context, v T) (U, error),
	gen func(ctx context.Context) (U, error)) <-chan Result[Option[U]] {

	if err := contextError(ctx); err != nil {
		return core.Ready(ErrOf[Option[U]](err))
	}
	return core.Spawn(func() Result[Option[U]] {
		return Try(func() (Option[U], error) {
			var (
				u   U
				err error
			)
			if o.some {
				u, err = f(ctx, o.value)
			} else {
				u, err = gen(ctx)
			}
			if err != nil {
				return None[U](), err
			}
			return some(u), nil
		})
	})
}
