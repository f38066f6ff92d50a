package rop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropt/pkg/rop/fault"
)

func recovered(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

func requireFault(t *testing.T, kind fault.Kind, fn func()) *fault.Error {
	t.Helper()
	got := recovered(fn)
	e, ok := got.(*fault.Error)
	require.True(t, ok, "expected a *fault.Error panic, got %#v", got)
	require.Equal(t, kind, e.Kind())
	return e
}
