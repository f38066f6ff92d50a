package rop

import (
	"fmt"
	"hash/maphash"

	"github.com/ib-77/ropt/pkg/rop/fault"
)

// ResultOf holds either a value (Ok) or an error of type E (Err).
//
// The inactive side always holds its zero value, so results of comparable
// types can be compared with == and used as map keys.
//
// The zero ResultOf is an Err holding the zero E. When E is a pointer or
// interface type that error is nil, and the accessors that hand out the
// error (UnwrapError, ExpectError, UnwrapErrorOr, UnwrapErrorOrElse) panic
// with an InvalidOperation fault instead of returning it. Build results
// with Ok, Err, OkOf or ErrOf.
type ResultOf[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Result is a ResultOf whose errors are *fault.Error values.
type Result[T any] = ResultOf[T, *fault.Error]

func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

// Err converts err with fault.Convert and wraps it. It panics with an
// ArgumentNull fault if err is nil.
func Err[T any](err error) Result[T] {
	e := fault.Convert(err)
	if e == nil {
		panic(fault.ArgumentNull("err"))
	}
	return Result[T]{err: e}
}

func OkOf[T, E any](v T) ResultOf[T, E] {
	return ResultOf[T, E]{ok: true, value: v}
}

func ErrOf[T, E any](e E) ResultOf[T, E] {
	return ResultOf[T, E]{err: e}
}

// OkNil returns an Ok result carrying Void.
func OkNil() Result[Nil] {
	return Ok(Void)
}

func (r ResultOf[T, E]) IsOk() bool {
	return r.ok
}

func (r ResultOf[T, E]) IsError() bool {
	return !r.ok
}

func (r ResultOf[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

func (r ResultOf[T, E]) IsErrorAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Get returns both sides and whether r is Ok. The inactive side is zero.
func (r ResultOf[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// And returns other when r is Ok, otherwise r.
func (r ResultOf[T, E]) And(other ResultOf[T, E]) ResultOf[T, E] {
	if !r.ok {
		return r
	}
	return other
}

func (r ResultOf[T, E]) AndValue(v T) ResultOf[T, E] {
	if !r.ok {
		return r
	}
	return OkOf[T, E](v)
}

// AndFunc returns the result built by fn when r is Ok. fn is not called on Err.
func (r ResultOf[T, E]) AndFunc(fn func() ResultOf[T, E]) ResultOf[T, E] {
	if !r.ok {
		return r
	}
	return fn()
}

// AndThen chains fn on the value when r is Ok.
func (r ResultOf[T, E]) AndThen(fn func(T) ResultOf[T, E]) ResultOf[T, E] {
	if !r.ok {
		return r
	}
	return fn(r.value)
}

// Or returns r when it is Ok, otherwise other.
func (r ResultOf[T, E]) Or(other ResultOf[T, E]) ResultOf[T, E] {
	if r.ok {
		return r
	}
	return other
}

func (r ResultOf[T, E]) OrValue(v T) ResultOf[T, E] {
	if r.ok {
		return r
	}
	return OkOf[T, E](v)
}

func (r ResultOf[T, E]) OrFunc(fn func() ResultOf[T, E]) ResultOf[T, E] {
	if r.ok {
		return r
	}
	return fn()
}

// OrElse recovers from an error with fn. fn is not called on Ok.
func (r ResultOf[T, E]) OrElse(fn func(E) ResultOf[T, E]) ResultOf[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Inspect calls fn with the value when r is Ok. Panics in fn propagate.
func (r ResultOf[T, E]) Inspect(fn func(T)) ResultOf[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectError calls fn with the error when r is Err. Panics in fn propagate.
func (r ResultOf[T, E]) InspectError(fn func(E)) ResultOf[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Expect returns the value or panics with a WrongDiscriminant fault whose
// message is msg and whose inner error is the held error.
func (r ResultOf[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fault.WrongDiscriminant(msg, asError(r.err)))
	}
	return r.value
}

// ExpectError returns the error or panics with a WrongDiscriminant fault
// whose message is msg.
func (r ResultOf[T, E]) ExpectError(msg string) E {
	if r.ok {
		panic(fault.WrongDiscriminant(msg, nil))
	}
	return r.heldError()
}

// Unwrap returns the value or panics with a WrongDiscriminant fault that
// carries the held error.
func (r ResultOf[T, E]) Unwrap() T {
	if !r.ok {
		panic(fault.WrongDiscriminant(fmt.Sprintf("called Unwrap on an error result: %v", r.err), asError(r.err)))
	}
	return r.value
}

func (r ResultOf[T, E]) UnwrapOr(v T) T {
	if !r.ok {
		return v
	}
	return r.value
}

func (r ResultOf[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// UnwrapError returns the error or panics with a WrongDiscriminant fault
// that carries the held value.
func (r ResultOf[T, E]) UnwrapError() E {
	if r.ok {
		panic(fault.WrongDiscriminant(fmt.Sprintf("called UnwrapError on an ok result with value: %v", r.value), nil))
	}
	return r.heldError()
}

func (r ResultOf[T, E]) UnwrapErrorOr(e E) E {
	if r.ok {
		return e
	}
	return r.heldError()
}

func (r ResultOf[T, E]) UnwrapErrorOrElse(fn func(T) E) E {
	if r.ok {
		return fn(r.value)
	}
	return r.heldError()
}

// heldError returns the error of an Err result. An Err never reports an
// absent error: a nil one panics.
func (r ResultOf[T, E]) heldError() E {
	if isNilRef(r.err) {
		panic(errNilError())
	}
	return r.err
}

func errNilError() *fault.Error {
	return fault.InvalidOperation("error result holds a nil error")
}

// Replace overwrites r with Ok(v).
func (r *ResultOf[T, E]) Replace(v T) *ResultOf[T, E] {
	*r = OkOf[T, E](v)
	return r
}

// ReplaceFunc overwrites r with Ok(fn()).
func (r *ResultOf[T, E]) ReplaceFunc(fn func() T) *ResultOf[T, E] {
	return r.Replace(fn())
}

// Update applies fn to the value of an Ok result in place. An Err result is
// left unchanged.
func (r *ResultOf[T, E]) Update(fn func(T) T) *ResultOf[T, E] {
	if r.ok {
		r.value = fn(r.value)
	}
	return r
}

// ReplaceError overwrites r with Err(e).
func (r *ResultOf[T, E]) ReplaceError(e E) *ResultOf[T, E] {
	*r = ErrOf[T](e)
	return r
}

// ReplaceErrorFunc overwrites r with Err(fn()).
func (r *ResultOf[T, E]) ReplaceErrorFunc(fn func() E) *ResultOf[T, E] {
	return r.ReplaceError(fn())
}

// ToValue projects r onto an Option of its value.
func (r ResultOf[T, E]) ToValue() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return From(r.value)
}

// ToError projects r onto an Option of its error.
func (r ResultOf[T, E]) ToError() Option[E] {
	if r.ok {
		return None[E]()
	}
	return From(r.err)
}

func (r ResultOf[T, E]) ToSlice() []T {
	if !r.ok {
		return nil
	}
	return []T{r.value}
}

func (r ResultOf[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

func asError(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return nil
}

// MapResult applies f to the value of an Ok result. Errors pass through unchanged.
func MapResult[T, U, E any](r ResultOf[T, E], f func(T) U) ResultOf[U, E] {
	if !r.ok {
		return ErrOf[U](r.err)
	}
	return OkOf[U, E](f(r.value))
}

// MapResultOr applies f to the value, or returns Ok(def) for an error.
func MapResultOr[T, U, E any](r ResultOf[T, E], f func(T) U, def U) ResultOf[U, E] {
	if !r.ok {
		return OkOf[U, E](def)
	}
	return OkOf[U, E](f(r.value))
}

// MapResultOrElse applies f to the value, or returns Ok(gen(err)) for an error.
func MapResultOrElse[T, U, E any](r ResultOf[T, E], f func(T) U, gen func(E) U) ResultOf[U, E] {
	if !r.ok {
		return OkOf[U, E](gen(r.err))
	}
	return OkOf[U, E](f(r.value))
}

// MapError applies f to the error of an Err result. Values pass through unchanged.
func MapError[T, E, F any](r ResultOf[T, E], f func(E) F) ResultOf[T, F] {
	if r.ok {
		return OkOf[T, F](r.value)
	}
	return ErrOf[T](f(r.err))
}

// AndThenResult returns fn(value) for Ok, otherwise the error.
func AndThenResult[T, U, E any](r ResultOf[T, E], fn func(T) ResultOf[U, E]) ResultOf[U, E] {
	if !r.ok {
		return ErrOf[U](r.err)
	}
	return fn(r.value)
}

// EqualResult reports whether a and b hold the same side with equal contents.
// Errors of type *fault.Error compare by identity.
func EqualResult[T, E comparable](a, b ResultOf[T, E]) bool {
	return EqualResultFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

func EqualResultFunc[T, E any](a, b ResultOf[T, E], eqValue func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqValue(a.value, b.value)
	}
	return eqErr(a.err, b.err)
}

// EqualResultValue compares r with a bare value. An Err result never equals a value.
func EqualResultValue[T comparable, E any](r ResultOf[T, E], v T) bool {
	return r.ok && r.value == v
}

// HashResult hashes r consistently with EqualResult.
func HashResult[T, E comparable](seed maphash.Seed, r ResultOf[T, E]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	if r.ok {
		_ = h.WriteByte(1)
		maphash.WriteComparable(&h, r.value)
	} else {
		_ = h.WriteByte(0)
		maphash.WriteComparable(&h, r.err)
	}
	return h.Sum64()
}

// Unpack converts r into the conventional Go (value, error) pair.
func Unpack[T any, E error](r ResultOf[T, E]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if isNilRef(r.err) {
		return zero, errNilError()
	}
	return zero, r.err
}
