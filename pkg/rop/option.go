package rop

import (
	"fmt"
	"hash/maphash"

	"github.com/ib-77/ropt/pkg/rop/fault"
	"github.com/ib-77/ropt/pkg/rop/tuple"
)

// Option holds either a value (Some) or nothing (None).
//
// The zero Option is None. A None option always holds the zero payload, so
// options of comparable types can be compared with == and used as map keys.
type Option[T any] struct {
	some  bool
	value T
}

// Some wraps v. It panics with an ArgumentNull fault if v is nil-like.
func Some[T any](v T) Option[T] {
	if IsNil(v) {
		panic(fault.ArgumentNull("value"))
	}
	return Option[T]{some: true, value: v}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// From returns Some(v), or None when v is nil-like.
func From[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Option[T]{some: true, value: v}
}

// FromPtr returns Some(*p), or None for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return From(*p)
}

func some[T any](v T) Option[T] {
	return Option[T]{some: true, value: v}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether o is Some and pred holds on its value.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Filter keeps o only if pred holds on its value.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls fn with the value when o is Some and returns o unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// And returns other when o is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return other
}

func (o Option[T]) AndValue(v T) Option[T] {
	if !o.some {
		return None[T]()
	}
	return Some(v)
}

// AndFunc chains fn on the value when o is Some. fn is not called on None.
func (o Option[T]) AndFunc(fn func(T) Option[T]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return fn(o.value)
}

// Or returns o when it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrValue(v T) Option[T] {
	if o.some {
		return o
	}
	return Some(v)
}

// OrFunc returns o when it is Some, otherwise the option built by fn.
func (o Option[T]) OrFunc(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// OrElse returns o when it is Some, otherwise Some(fn()).
func (o Option[T]) OrElse(fn func() T) Option[T] {
	if o.some {
		return o
	}
	return Some(fn())
}

// Expect returns the value or panics with a MissingValue fault carrying msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(fault.MissingValue(msg))
	}
	return o.value
}

// ExpectErr returns the value or panics with err.
func (o Option[T]) ExpectErr(err error) T {
	if !o.some {
		panic(err)
	}
	return o.value
}

// ExpectFunc returns the value or panics with the error built by factory.
func (o Option[T]) ExpectFunc(factory func() error) T {
	if !o.some {
		panic(factory())
	}
	return o.value
}

// Unwrap returns the value or panics with a MissingValue fault.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(fault.MissingValue("called Unwrap on a None option"))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(v T) T {
	if !o.some {
		return v
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

// Take returns the value and leaves o as None. It panics with a MissingValue
// fault if o is already None.
func (o *Option[T]) Take() T {
	if !o.some {
		panic(fault.MissingValue("called Take on a None option"))
	}
	v := o.value
	*o = None[T]()
	return v
}

// Replace overwrites o with v; o becomes None when v is nil-like. It returns
// the new state.
func (o *Option[T]) Replace(v T) Option[T] {
	*o = From(v)
	return *o
}

// ToResult returns Ok(value), or an Err with a MissingValue fault.
func (o Option[T]) ToResult() Result[T] {
	return o.ToResultMsg("No value for option")
}

func (o Option[T]) ToResultMsg(msg string) Result[T] {
	if !o.some {
		return ErrOf[T](fault.MissingValue(msg))
	}
	return Ok(o.value)
}

// ToResultFunc returns Ok(value), or Err(fn()) when o is None.
func (o Option[T]) ToResultFunc(fn func() error) Result[T] {
	if !o.some {
		return Err[T](fn())
	}
	return Ok(o.value)
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) ToSlice() []T {
	if !o.some {
		return nil
	}
	return []T{o.value}
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies f to the value of a Some option. f is not called on None.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOptionOr applies f to the value, or returns Some(def) for None.
// The result is always Some.
func MapOptionOr[T, U any](o Option[T], f func(T) U, def U) Option[U] {
	if !o.some {
		return some(def)
	}
	return some(f(o.value))
}

// MapOptionOrElse applies f to the value, or returns Some(gen()) for None.
// The result is always Some.
func MapOptionOrElse[T, U any](o Option[T], f func(T) U, gen func() U) Option[U] {
	if !o.some {
		return some(gen())
	}
	return some(f(o.value))
}

// AndThenOption returns fn(value) for Some, otherwise None.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// FlatMapOption is AndThenOption.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	return AndThenOption(o, fn)
}

// ZipOption pairs the values of a and b. It is None unless both are Some.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[tuple.Pair[A, B]] {
	if !a.some || !b.some {
		return None[tuple.Pair[A, B]]()
	}
	return some(tuple.NewPair(a.value, b.value))
}

// OptionToResultOf converts o into a ResultOf with an error built by gen for None.
func OptionToResultOf[T, E any](o Option[T], gen func() E) ResultOf[T, E] {
	if !o.some {
		return ErrOf[T](gen())
	}
	return OkOf[T, E](o.value)
}

// EqualOption reports whether a and b are both None or both Some with equal values.
func EqualOption[T comparable](a, b Option[T]) bool {
	return EqualOptionFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualOptionFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || eq(a.value, b.value)
}

// EqualOptionValue compares o with a bare value. None only equals a
// nil-like value.
func EqualOptionValue[T comparable](o Option[T], v T) bool {
	if !o.some {
		return IsNil(v)
	}
	return o.value == v
}

// HashOption hashes o consistently with EqualOption.
func HashOption[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	if !o.some {
		_ = h.WriteByte(0)
		return h.Sum64()
	}
	_ = h.WriteByte(1)
	maphash.WriteComparable(&h, o.value)
	return h.Sum64()
}
