package core

import "context"

// Ready returns a closed channel that already holds v. Receiving from it
// never blocks.
func Ready[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	close(ch)
	return ch
}

// Spawn runs fn on its own goroutine and delivers its result on the returned
// channel, which is closed afterwards. The channel is buffered so fn never
// blocks on an abandoned receiver.
func Spawn[T any](fn func() T) <-chan T {
	ch := make(chan T, 1)
	go func() {
		defer close(ch)
		ch <- fn()
	}()
	return ch
}

// FirstOrDefault waits for the first value from out. It returns defaultV and
// false when out is closed without a value or ctx is done first.
func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) (T, bool) {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV, false
		}
		return v, true
	case <-ctx.Done():
		return defaultV, false
	}
}
