package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.True(t, IsProcessRemainingEnabled(ctx, true))
	assert.False(t, IsProcessRemainingEnabled(ctx, false))
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()

	ctx := WithProcessOptions(WithWorkerOptions(context.Background(), 2), false)
	assert.Equal(t, 2, GetWorkerMaxCount(ctx, 8))
	assert.False(t, IsProcessRemainingEnabled(ctx, true))

	unbounded := WithWorkerOptions(context.Background(), 0)
	assert.Equal(t, Unlimited, GetWorkerMaxCount(unbounded, 8))
}

func TestReady(t *testing.T) {
	t.Parallel()

	ch := Ready(7)
	v, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = <-ch
	assert.False(t, ok)
}

func TestSpawn(t *testing.T) {
	t.Parallel()

	ch := Spawn(func() string { return "done" })
	v, ok := FirstOrDefault(context.Background(), ch, "")
	assert.True(t, ok)
	assert.Equal(t, "done", v)
}

func TestFirstOrDefault_Closed(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	close(ch)
	v, ok := FirstOrDefault(context.Background(), ch, -1)
	assert.False(t, ok)
	assert.Equal(t, -1, v)
}

func TestFirstOrDefault_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	v, ok := FirstOrDefault(ctx, make(chan int), -2)
	assert.False(t, ok)
	assert.Equal(t, -2, v)
}
