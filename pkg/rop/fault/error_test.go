package fault

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *Error
		kind    Kind
		message string
	}{
		{"empty message", New(""), KindException, "Unknown error"},
		{"formatted", Newf("bad %d", 3), KindException, "bad 3"},
		{"argument", Argument("x", ""), KindArgument, "Argument x is invalid."},
		{"argument null", ArgumentNull("x"), KindArgumentNull, "Argument x is null."},
		{"out of range", ArgumentOutOfRange("x", 9), KindArgumentOutOfRange, "Argument x is out of range."},
		{"file", FileNotFound("a.txt"), KindFileNotFound, "Could not find file 'a.txt'."},
		{"directory", DirectoryNotFound("/a"), KindDirectoryNotFound, "Could not find a part of the path '/a'."},
		{"path", NotFoundOnPath("git"), KindNotFoundOnPath, "Executable 'git' was not found on PATH."},
		{"missing value", MissingValue("none"), KindMissingValue, "none"},
		{"invalid operation", InvalidOperation(""), KindInvalidOperation, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, string(tt.kind), tt.err.Code())
			assert.NotEqual(t, [16]byte{}, [16]byte(tt.err.ID()))
			assert.False(t, tt.err.CreatedAt().IsZero())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil))

	cause := fmt.Errorf("outer: %w", errors.New("inner"))
	e := Wrap(cause)
	assert.Equal(t, KindException, e.Kind())
	assert.Same(t, cause, e.Cause())
	require.NotNil(t, e.Inner())
	assert.Equal(t, "inner", e.Inner().Message())
}

func TestWrongDiscriminant_Inner(t *testing.T) {
	t.Parallel()

	inner := ArgumentNull("v")
	e := WrongDiscriminant("called Unwrap on an error result", inner)
	assert.Same(t, inner, e.Inner())
	assert.ErrorIs(t, e, inner)
	assert.Nil(t, WrongDiscriminant("x", nil).Inner())
}

func TestWithInner(t *testing.T) {
	t.Parallel()

	base := InvalidOperation("outer")
	base.SetCode("E42")
	inner := New("cause")

	c := base.WithInner(inner)
	assert.NotSame(t, base, c)
	assert.Nil(t, base.Inner())
	assert.Same(t, inner, c.Inner())
	assert.Equal(t, "E42", c.Code())
	assert.NotEqual(t, base.ID(), c.ID())
}

func TestCodeAndTargetOverrides(t *testing.T) {
	t.Parallel()

	e := New("x")
	assert.Equal(t, "Exception", e.Code())
	e.SetCode("Custom")
	assert.Equal(t, "Custom", e.Code())

	assert.Equal(t, "", e.Target())
	e.SetTarget("pkg.Func")
	assert.Equal(t, "pkg.Func", e.Target())
}

func TestTarget_FromPkgErrorsStack(t *testing.T) {
	t.Parallel()

	e := Wrap(pkgerrors.New("traced"))
	assert.Contains(t, e.Target(), "TestTarget_FromPkgErrorsStack")
	assert.Contains(t, e.StackTrace(), "TestTarget_FromPkgErrorsStack")
	assert.Contains(t, fmt.Sprintf("%+v", e), "traced\n")
	assert.Equal(t, "traced", fmt.Sprintf("%v", e))
	assert.Equal(t, `"traced"`, fmt.Sprintf("%q", e))
}

type brokenTracer struct{}

func (brokenTracer) Error() string { return "broken" }

func (brokenTracer) StackTrace() pkgerrors.StackTrace { panic("no stack") }

func TestTarget_NeverPanics(t *testing.T) {
	t.Parallel()

	e := Wrap(brokenTracer{})
	assert.NotPanics(t, func() {
		assert.Equal(t, "", e.Target())
		assert.Equal(t, "", e.StackTrace())
	})
	assert.Equal(t, "", e.Target())
}

func TestIs_KindParents(t *testing.T) {
	t.Parallel()

	e := FileNotFound("a")
	assert.ErrorIs(t, e, KindFileNotFound)
	assert.ErrorIs(t, e, KindNotFound)
	assert.NotErrorIs(t, e, KindArgument)
	assert.Equal(t, Kind(""), KindException.Parent())

	assert.True(t, KindFileNotFound.Specializes(KindNotFound))
	assert.True(t, KindNotFound.Specializes(KindNotFound))
	assert.False(t, KindNotFound.Specializes(KindFileNotFound))
	assert.False(t, KindTimeout.Specializes(KindArgument))
}

func explode() {
	panic("boom")
}

func TestFromPanic(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromPanic(nil))

	existing := New("kept")
	assert.Same(t, existing, FromPanic(existing))

	var e *Error
	func() {
		defer func() { e = FromPanic(recover()) }()
		explode()
	}()

	require.NotNil(t, e)
	assert.Equal(t, KindException, e.Kind())
	assert.Equal(t, "Panic", e.Code())
	assert.Equal(t, "boom", e.Message())
	assert.Contains(t, e.Target(), "explode")
	assert.Contains(t, e.StackTrace(), "explode")
}

func TestFromPanic_Error(t *testing.T) {
	t.Parallel()

	var e *Error
	func() {
		defer func() { e = FromPanic(recover()) }()
		var m map[string]int
		m["x"] = 1
	}()

	require.NotNil(t, e)
	assert.Equal(t, KindNullReference, e.Kind())
	assert.NotEmpty(t, e.StackTrace())
}

func TestFromPanic_SharedConverterResult(t *testing.T) {
	shared := Timeout("shared")
	SetConverter(func(error) *Error { return shared })
	defer SetConverter(nil)

	var e *Error
	func() {
		defer func() { e = FromPanic(recover()) }()
		panic(errors.New("slow"))
	}()

	require.NotNil(t, e)
	assert.NotSame(t, shared, e)
	assert.NotEqual(t, shared.ID(), e.ID())
	assert.Equal(t, KindTimeout, e.Kind())
	assert.Equal(t, "shared", e.Message())
	assert.Contains(t, e.StackTrace(), "TestFromPanic_SharedConverterResult")
	assert.Empty(t, shared.StackTrace())
	assert.Empty(t, shared.Target())
}
