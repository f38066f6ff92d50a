package fault

import (
	stderrors "errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

const unknownMessage = "Unknown error"

// Error is a structured, inspectable failure value.
//
// Errors are immutable after construction except for the code and target,
// which can be overridden with SetCode and SetTarget. Always use *Error.
type Error struct {
	id        uuid.UUID
	createdAt time.Time
	kind      Kind
	message   string
	param     string
	actual    any
	path      string
	inner     *Error
	errors    []*Error
	cause     error

	mu     sync.Mutex
	code   *string
	target *string
	stack  *string
	trace  pkgerrors.StackTrace
}

func newError(kind Kind, message string) *Error {
	if message == "" {
		message = unknownMessage
	}
	return &Error{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      kind,
		message:   message,
	}
}

// fromNative wraps a Go error, classifying its direct inner error.
func fromNative(kind Kind, err error) *Error {
	e := newError(kind, err.Error())
	e.cause = err
	if inner := stderrors.Unwrap(err); inner != nil {
		e.inner = Convert(inner)
	}
	return e
}

// ID returns the unique id assigned at construction.
func (e *Error) ID() uuid.UUID {
	return e.id
}

// CreatedAt returns the construction time (UTC).
func (e *Error) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	return e.message
}

func (e *Error) Error() string {
	return e.message
}

// Code returns the machine-readable code. Unless SetCode was called it
// defaults to the code of the error kind.
func (e *Error) Code() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.code != nil {
		return *e.code
	}
	return e.kind.defaultCode()
}

func (e *Error) SetCode(code string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.code = &code
}

// Target returns what failed: the fully qualified function at the top of the
// wrapped failure's stack. It is computed on first access and cached.
// Extraction never panics; failures yield "".
func (e *Error) Target() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.target == nil {
		t := safeString(func() string { return frameName(e.frames()) })
		e.target = &t
	}
	return *e.target
}

func (e *Error) SetTarget(target string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.target = &target
}

// StackTrace returns the stack of the wrapped failure, or "" when none was
// recorded. It is computed on first access and cached.
func (e *Error) StackTrace() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stack == nil {
		s := safeString(func() string { return renderFrames(e.frames()) })
		e.stack = &s
	}
	return *e.stack
}

// ParamName returns the offending parameter for argument kinds.
func (e *Error) ParamName() string {
	return e.param
}

// ActualValue returns the offending value for ArgumentOutOfRange errors.
func (e *Error) ActualValue() any {
	return e.actual
}

// Path returns the missing file, directory or executable for not-found kinds.
func (e *Error) Path() string {
	return e.path
}

// Inner returns the nested error, if any.
func (e *Error) Inner() *Error {
	return e.inner
}

// Errors returns the children of an aggregate in their original order.
func (e *Error) Errors() []*Error {
	if len(e.errors) == 0 {
		return nil
	}
	out := make([]*Error, len(e.errors))
	copy(out, e.errors)
	return out
}

// Flatten returns the leaf errors of nested aggregates, depth first.
// A non-aggregate error flattens to itself.
func (e *Error) Flatten() []*Error {
	if e.kind != KindAggregate || len(e.errors) == 0 {
		return []*Error{e}
	}
	var out []*Error
	for _, child := range e.errors {
		out = append(out, child.Flatten()...)
	}
	return out
}

// Cause returns the native Go error this Error was classified from, or nil.
func (e *Error) Cause() error {
	return e.cause
}

// Native re-materializes the Error as a plain Go error.
//
// When the Error wraps an original failure that exact value is returned.
// Aggregates without an original are joined from their children's natives.
// Otherwise the Error itself is returned; it already is a Go error.
func (e *Error) Native() error {
	if e.cause != nil {
		return e.cause
	}
	if e.kind == KindAggregate && len(e.errors) > 0 {
		natives := make([]error, 0, len(e.errors))
		for _, child := range e.errors {
			natives = append(natives, child.Native())
		}
		return stderrors.Join(natives...)
	}
	return e
}

// Unwrap exposes children, the cause or the inner error to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	switch {
	case len(e.errors) > 0:
		out := make([]error, 0, len(e.errors))
		for _, child := range e.errors {
			out = append(out, child)
		}
		return out
	case e.cause != nil:
		return []error{e.cause}
	case e.inner != nil:
		return []error{e.inner}
	}
	return nil
}

// Is matches a Kind target, honoring kind parents.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.kind.Specializes(k)
}

// Format supports %s, %q, %v and %+v. The latter appends the stack trace.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.message)
			if st := e.StackTrace(); st != "" {
				_, _ = io.WriteString(s, "\n"+st)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.message)
	}
}
