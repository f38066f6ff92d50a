package rop

// Optional is the read side shared by Option values.
type Optional[T any] interface {
	// IsSome reports whether a value is present
	IsSome() bool
	// IsNone reports whether the value is absent
	IsNone() bool
	// Get returns the value and whether it is present
	Get() (T, bool)
}

// Fallible is the read side shared by ResultOf values.
type Fallible[T, E any] interface {
	// IsOk returns true if the operation succeeded
	IsOk() bool
	// IsError returns true if the operation failed
	IsError() bool
	// Get returns the value, the error and whether the operation succeeded
	Get() (T, E, bool)
}

var (
	_ Optional[int]        = Option[int]{}
	_ Fallible[int, error] = ResultOf[int, error]{}
	_ noneReporter         = Option[int]{}
)

// ValueOf returns the value held by f, or def when f holds none.
func ValueOf[T any](f Optional[T], def T) T {
	if v, ok := f.Get(); ok {
		return v
	}
	return def
}

// OutcomeOf returns the value held by f as an Option, dropping the error.
func OutcomeOf[T, E any](f Fallible[T, E]) Option[T] {
	if v, _, ok := f.Get(); ok {
		return From(v)
	}
	return None[T]()
}
