package fault

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// frames must be called with e.mu held.
func (e *Error) frames() pkgerrors.StackTrace {
	if e.trace != nil {
		return e.trace
	}
	var st stackTracer
	if e.cause != nil && stderrors.As(e.cause, &st) {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) attachTrace(trace pkgerrors.StackTrace) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.trace != nil || e.stack != nil {
		return
	}
	var st stackTracer
	if e.cause != nil && stderrors.As(e.cause, &st) {
		return
	}
	e.trace = trace
}

func frameName(frames pkgerrors.StackTrace) string {
	if len(frames) == 0 {
		return ""
	}
	fn := runtime.FuncForPC(uintptr(frames[0]) - 1)
	if fn == nil {
		return ""
	}
	return fn.Name()
}

func renderFrames(frames pkgerrors.StackTrace) string {
	if len(frames) == 0 {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", frames), "\n")
}

func safeString(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return fn()
}

// panicTrace captures the stack of a panicking goroutine from inside a
// deferred recover, dropping the recovery and runtime frames.
func panicTrace() pkgerrors.StackTrace {
	st, ok := pkgerrors.New("").(stackTracer)
	if !ok {
		return nil
	}
	frames := st.StackTrace()

	start := -1
	for i, f := range frames {
		if isRuntimeFrame(f) {
			start = i
			break
		}
	}
	if start < 0 {
		if len(frames) > 1 {
			return frames[1:]
		}
		return frames
	}
	for start < len(frames) && isRuntimeFrame(frames[start]) {
		start++
	}
	return frames[start:]
}

func isRuntimeFrame(f pkgerrors.Frame) bool {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	return fn != nil && strings.HasPrefix(fn.Name(), "runtime.")
}

// FromPanic classifies a value recovered from a panic. It must be called
// directly from the deferred function that called recover so the panic
// site can be located.
//
// An *Error is returned unchanged. Other errors go through Convert; other
// values become a KindException error. In both cases the panic stack is
// recorded unless the error already carries one. An *Error a converter
// returns without wrapping the panic value is copied before the stack is
// recorded, so shared converter results are never mutated.
func FromPanic(v any) *Error {
	if v == nil {
		return nil
	}
	if e, ok := v.(*Error); ok {
		return e
	}

	trace := panicTrace()
	var e *Error
	if err, ok := v.(error); ok {
		e = Convert(err)
		if e.cause != err {
			// converters may hand back shared values
			e = e.clone()
		}
	} else {
		e = newError(KindException, fmt.Sprint(v))
		e.SetCode("Panic")
	}
	e.attachTrace(trace)
	return e
}
