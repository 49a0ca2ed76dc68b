package scheduler

import (
	"container/heap"

	"go.trai.ch/cadence/internal/core/ports"
)

// PendingHandles returns the handles still queued, in firing order.
// This is exported for testing purposes only.
func (s *Scheduler) PendingHandles() []ports.TimerHandle {
	s.mu.Lock()
	q := make(queue, len(s.queue))
	for i, t := range s.queue {
		q[i] = &timer{handle: t.handle, due: t.due, index: i}
	}
	s.mu.Unlock()

	heap.Init(&q)
	handles := make([]ports.TimerHandle, 0, len(q))
	for q.Len() > 0 {
		handles = append(handles, heap.Pop(&q).(*timer).handle) //nolint:forcetypeassert // test helper
	}
	return handles
}
