package rop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropt/pkg/rop/fault"
)

func TestTry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Try(func() (int, error) { return 42, nil }).Unwrap())

	missing := filepath.Join(t.TempDir(), "missing.json")
	r := Try(func() ([]byte, error) { return os.ReadFile(missing) })
	require.True(t, r.IsError())
	assert.Equal(t, fault.KindFileNotFound, r.UnwrapError().Kind())
	assert.Equal(t, missing, r.UnwrapError().Path())
}

func TestTry_TypedNilError(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) {
		var e *fault.Error
		return 7, e
	})
	require.True(t, r.IsOk())
	assert.Equal(t, 7, r.Unwrap())

	d := TryDo(func() error {
		var e *os.PathError
		return e
	})
	assert.True(t, d.IsOk())
}

func TestTry_PanicWithFault(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) {
		panic(fault.ArgumentNull("p"))
	})

	e := r.UnwrapError()
	assert.Equal(t, fault.KindArgumentNull, e.Kind())
	assert.Equal(t, "p", e.ParamName())
}

func TestTry_PanicWithValue(t *testing.T) {
	t.Parallel()

	r := Try(func() (string, error) {
		panic("boom")
	})

	e := r.UnwrapError()
	assert.Equal(t, fault.KindException, e.Kind())
	assert.Equal(t, "Panic", e.Code())
	assert.Equal(t, "boom", e.Message())
	assert.NotEmpty(t, e.StackTrace())
}

func TestTry_RuntimePanic(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) {
		var values []int
		i := 3
		return values[i], nil
	})

	assert.Equal(t, fault.KindArgumentOutOfRange, r.UnwrapError().Kind())
}

func TestTryDo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OkNil(), TryDo(func() error { return nil }))

	r := TryDo(func() error { return errors.ErrUnsupported })
	assert.Equal(t, fault.KindInvalidOperation, r.UnwrapError().Kind())
}

func TestTryOf(t *testing.T) {
	t.Parallel()

	classify := func(err error) string { return "classified: " + err.Error() }

	assert.Equal(t, 1, TryOf(func() (int, error) { return 1, nil }, classify).Unwrap())
	assert.Equal(t, "classified: bad", TryOf(func() (int, error) { return 0, errors.New("bad") }, classify).UnwrapError())
	assert.Equal(t, "classified: oops", TryOf(func() (int, error) { panic("oops") }, classify).UnwrapError())

	native := errors.New("native")
	same := TryOf(func() (int, error) { return 0, native }, func(err error) error { return err })
	assert.Same(t, native, same.UnwrapError())
}
