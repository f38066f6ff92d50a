package fault

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
)

// Converter maps a native Go error onto an *Error.
type Converter func(err error) *Error

var converter atomic.Pointer[Converter]

// SetConverter replaces the process-wide converter used by Convert. Passing
// nil restores Classify.
//
// It is an initialization-time configuration point: set it once during
// startup, before results are produced concurrently.
func SetConverter(c Converter) {
	if c == nil {
		converter.Store(nil)
		return
	}
	converter.Store(&c)
}

// Convert maps err onto an *Error using the configured converter.
// Returns nil if err is nil. A converter that returns nil for a non-nil
// error falls back to Classify.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}
	if c := converter.Load(); c != nil {
		if e := (*c)(err); e != nil {
			return e
		}
	}
	return Classify(err)
}

type OptionKey string

const ConverterOptionKey OptionKey = "fault_converter"

// WithConverter returns a context carrying c, used by ConvertContext in place
// of the process-wide converter.
func WithConverter(ctx context.Context, c Converter) context.Context {
	return context.WithValue(ctx, ConverterOptionKey, c)
}

// ConvertContext converts err with the converter carried by ctx, falling
// back to Convert.
func ConvertContext(ctx context.Context, err error) *Error {
	if err == nil {
		return nil
	}
	if ctx != nil {
		if c, ok := ctx.Value(ConverterOptionKey).(Converter); ok && c != nil {
			if e := c(err); e != nil {
				return e
			}
		}
	}
	return Convert(err)
}

// Classify is the default converter. It picks the most specific kind in this
// order:
//
//  1. an *Error is returned unchanged
//  2. multi-errors (errors.Join, multierr, go-multierror) become aggregates,
//     each child converted in order
//  3. an *Error found further down the chain keeps its kind and details
//  4. out-of-range failures (strconv.ErrRange, index out of range panics)
//  5. invalid arguments (strconv.ErrSyntax, fs.ErrInvalid, *strconv.NumError)
//  6. invalid casts, nil dereferences, unsupported operations, missing
//     executables, files and directories, timeouts and cancellations
//  7. anything else is wrapped as KindException
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}

	if children, ok := multiErrors(err); ok {
		e := newError(KindAggregate, err.Error())
		e.cause = err
		e.errors = convertAll(children)
		return e
	}

	var fe *Error
	if stderrors.As(err, &fe) && fe != nil {
		e := fromNative(fe.kind, err)
		e.param = fe.param
		e.actual = fe.actual
		e.path = fe.path
		e.errors = fe.errors
		return e
	}

	if stderrors.Is(err, strconv.ErrRange) || isRuntime(err, "out of range") {
		e := fromNative(KindArgumentOutOfRange, err)
		var ne *strconv.NumError
		if stderrors.As(err, &ne) {
			e.actual = ne.Num
		}
		return e
	}

	var ne *strconv.NumError
	if stderrors.Is(err, strconv.ErrSyntax) || stderrors.Is(err, fs.ErrInvalid) || stderrors.As(err, &ne) {
		return fromNative(KindArgument, err)
	}

	var tae *runtime.TypeAssertionError
	if stderrors.As(err, &tae) {
		return fromNative(KindInvalidCast, err)
	}

	if isRuntime(err, "nil pointer dereference") || isRuntime(err, "nil map") {
		return fromNative(KindNullReference, err)
	}

	if stderrors.Is(err, stderrors.ErrUnsupported) {
		return fromNative(KindInvalidOperation, err)
	}

	if stderrors.Is(err, exec.ErrNotFound) {
		e := fromNative(KindNotFoundOnPath, err)
		var ee *exec.Error
		if stderrors.As(err, &ee) {
			e.path = ee.Name
		}
		return e
	}

	if stderrors.Is(err, fs.ErrNotExist) {
		kind := KindFileNotFound
		var pe *fs.PathError
		hasPath := stderrors.As(err, &pe)
		if hasPath && isDirectoryOp(pe.Op) {
			kind = KindDirectoryNotFound
		}
		e := fromNative(kind, err)
		if hasPath {
			e.path = pe.Path
		}
		return e
	}

	if isTimeout(err) {
		return fromNative(KindTimeout, err)
	}

	if stderrors.Is(err, context.Canceled) {
		return fromNative(KindCanceled, err)
	}

	return fromNative(KindException, err)
}

func multiErrors(err error) ([]error, bool) {
	var children []error
	switch m := err.(type) {
	case interface{ Unwrap() []error }:
		children = m.Unwrap()
	case interface{ WrappedErrors() []error }:
		children = m.WrappedErrors()
	case interface{ Errors() []error }:
		children = m.Errors()
	default:
		return nil, false
	}
	return children, len(children) > 0
}

func isRuntime(err error, fragment string) bool {
	var re runtime.Error
	return stderrors.As(err, &re) && strings.Contains(re.Error(), fragment)
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return stderrors.As(err, &t) && t.Timeout()
}

func isDirectoryOp(op string) bool {
	switch op {
	case "readdir", "readdirent", "opendir", "chdir", "fdopendir":
		return true
	}
	return false
}

// KindOf returns the kind err converts to, or "" for nil.
func KindOf(err error) Kind {
	if e := Convert(err); e != nil {
		return e.kind
	}
	return ""
}

// IsKind reports whether err converts to k or a specialization of k.
func IsKind(err error, k Kind) bool {
	e := Convert(err)
	return e != nil && e.kind.Specializes(k)
}
