package rop

import (
	"context"
	"errors"
	"reflect"

	"github.com/ib-77/ropt/pkg/rop/fault"
)

type noneReporter interface {
	IsNone() bool
}

// IsNil reports whether v carries no information: untyped nil, Nil, the
// empty struct, a nil pointer, map, slice, chan, func or interface, or a
// None option.
func IsNil(v any) bool {
	if isNilRef(v) {
		return true
	}
	switch x := v.(type) {
	case Nil, struct{}:
		return true
	case noneReporter:
		return x.IsNone()
	}
	return false
}

// isNilRef reports whether v is untyped nil or a nil pointer, map, slice,
// chan, func or interface.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsCancellationError reports whether err stems from a canceled or expired
// context, natively or after classification.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, fault.KindCanceled) || errors.Is(err, fault.KindTimeout)
}

func contextError(ctx context.Context) *fault.Error {
	return fault.ConvertContext(ctx, ctx.Err())
}
