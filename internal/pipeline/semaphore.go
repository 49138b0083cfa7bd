package pipeline

import "context"

// semaphore bounds concurrent pipeline runs. A nil semaphore never blocks.
type semaphore struct {
	ch chan struct{}
}

// newSemaphore returns nil for capacity <= 0.
func newSemaphore(capacity int) *semaphore {
	if capacity <= 0 {
		return nil
	}
	return &semaphore{
		ch: make(chan struct{}, capacity),
	}
}

// acquire takes a slot, blocking until one frees up or ctx ends.
func (s *semaphore) acquire(ctx context.Context) error {
	if s == nil {
		return nil
	}
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	if s == nil {
		return
	}
	<-s.ch
}
