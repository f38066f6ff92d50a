package fault

import (
	"fmt"
)

// New creates a KindException error with the given message.
// An empty message becomes "Unknown error".
func New(message string) *Error {
	return newError(KindException, message)
}

// Newf creates a KindException error with a formatted message.
func Newf(format string, args ...any) *Error {
	return newError(KindException, fmt.Sprintf(format, args...))
}

// Wrap classifies err as a generic KindException wrapper, bypassing Convert.
// Returns nil if err is nil.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	return fromNative(KindException, err)
}

// Argument creates a KindArgument error for param.
func Argument(param, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("Argument %s is invalid.", param)
	}
	e := newError(KindArgument, message)
	e.param = param
	return e
}

// ArgumentNull creates a KindArgumentNull error for param.
func ArgumentNull(param string) *Error {
	e := newError(KindArgumentNull, fmt.Sprintf("Argument %s is null.", param))
	e.param = param
	return e
}

// ArgumentOutOfRange creates a KindArgumentOutOfRange error for param
// carrying the offending value.
func ArgumentOutOfRange(param string, value any) *Error {
	e := newError(KindArgumentOutOfRange, fmt.Sprintf("Argument %s is out of range.", param))
	e.param = param
	e.actual = value
	return e
}

// Aggregate groups errs, in order, under a KindAggregate error. Each child is
// converted with Convert; nil children are skipped.
func Aggregate(message string, errs ...error) *Error {
	if message == "" {
		message = "Aggregate error"
	}
	e := newError(KindAggregate, message)
	e.errors = convertAll(errs)
	return e
}

func InvalidOperation(message string) *Error {
	return newError(KindInvalidOperation, message)
}

func InvalidCast(message string) *Error {
	return newError(KindInvalidCast, message)
}

func NullReference(message string) *Error {
	return newError(KindNullReference, message)
}

func Timeout(message string) *Error {
	return newError(KindTimeout, message)
}

func Canceled(message string) *Error {
	return newError(KindCanceled, message)
}

// FileNotFound creates a KindFileNotFound error for name.
func FileNotFound(name string) *Error {
	e := newError(KindFileNotFound, fmt.Sprintf("Could not find file '%s'.", name))
	e.path = name
	return e
}

// DirectoryNotFound creates a KindDirectoryNotFound error for name.
func DirectoryNotFound(name string) *Error {
	e := newError(KindDirectoryNotFound, fmt.Sprintf("Could not find a part of the path '%s'.", name))
	e.path = name
	return e
}

// NotFoundOnPath creates a KindNotFoundOnPath error for an executable.
func NotFoundOnPath(executable string) *Error {
	e := newError(KindNotFoundOnPath, fmt.Sprintf("Executable '%s' was not found on PATH.", executable))
	e.path = executable
	return e
}

// MissingValue reports an Unwrap or Expect on an empty option.
func MissingValue(message string) *Error {
	return newError(KindMissingValue, message)
}

// WrongDiscriminant reports access to the wrong side of a result. A non-nil
// inner error is converted and attached.
func WrongDiscriminant(message string, inner error) *Error {
	e := newError(KindWrongDiscriminant, message)
	if inner != nil {
		e.inner = Convert(inner)
	}
	return e
}

func convertAll(errs []error) []*Error {
	out := make([]*Error, 0, len(errs))
	for _, err := range errs {
		if c := Convert(err); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// WithInner returns a copy of e with inner attached as its nested error.
// The copy gets a fresh id; code and target overrides are kept.
func (e *Error) WithInner(inner error) *Error {
	c := e.clone()
	c.inner = Convert(inner)

	e.mu.Lock()
	c.target = e.target
	c.stack = e.stack
	e.mu.Unlock()
	return c
}

// clone copies e under a fresh id. Cached target and stack strings are not
// copied; they are recomputed from the copied trace and cause.
func (e *Error) clone() *Error {
	c := newError(e.kind, e.message)
	c.param = e.param
	c.actual = e.actual
	c.path = e.path
	c.inner = e.inner
	c.errors = e.errors
	c.cause = e.cause

	e.mu.Lock()
	c.code = e.code
	c.trace = e.trace
	e.mu.Unlock()
	return c
}
