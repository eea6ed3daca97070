// Package async holds a single-assignment future used by the document pipeline.
package async

import "sync"

// Future is resolved at most once, either with a value or with an error.
// Later Resolve/Reject calls are ignored.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve reports whether this call settled the future.
func (f *Future[T]) Resolve(v T) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		settled = true
		close(f.done)
	})
	return settled
}

// Reject reports whether this call settled the future.
func (f *Future[T]) Reject(err error) bool {
	settled := false
	f.once.Do(func() {
		f.err = err
		settled = true
		close(f.done)
	})
	return settled
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future is settled.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}

// Then runs onValue or onErr on a new goroutine once the future settles.
// Exactly one of the two callbacks runs, exactly once.
func (f *Future[T]) Then(onValue func(T), onErr func(error)) {
	go func() {
		v, err := f.Result()
		if err != nil {
			onErr(err)
			return
		}
		onValue(v)
	}()
}
