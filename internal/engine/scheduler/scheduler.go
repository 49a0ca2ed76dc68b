// Package scheduler implements the virtual-clock timer queue that drives deferred command work.
package scheduler

import (
	"container/heap"
	"math"
	"sync"
	"time"

	"go.trai.ch/cadence/internal/core/ports"
)

var _ ports.Timers = (*Scheduler)(nil)

// timer is a single delay registration.
type timer struct {
	handle   ports.TimerHandle
	due      time.Duration
	callback func()
	index    int
}

// queue orders timers by due time, then by registration order.
type queue []*timer

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].handle < q[j].handle
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	t := x.(*timer) //nolint:forcetypeassert // heap only stores timers
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs registered callbacks on a virtual clock.
// Time only moves when the owner calls Advance or AdvanceTo, so the same sequence of
// registrations and advances always fires the same callbacks in the same order.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	last    ports.TimerHandle
	queue   queue
	pending map[ports.TimerHandle]*timer
}

// NewScheduler creates a Scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[ports.TimerHandle]*timer),
	}
}

// RegisterDelay schedules callback to run once the clock has moved d past now.
// Negative delays are treated as zero.
func (s *Scheduler) RegisterDelay(d time.Duration, callback func()) ports.TimerHandle {
	if d < 0 {
		d = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	t := &timer{
		handle:   s.last,
		due:      s.now + d,
		callback: callback,
	}
	heap.Push(&s.queue, t)
	s.pending[t.handle] = t
	return t.handle
}

// Cancel removes a pending registration.
// It returns false if the callback already ran, was cancelled before, or the handle is unknown.
func (s *Scheduler) Cancel(handle ports.TimerHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.pending[handle]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.pending, handle)
	return true
}

// Advance moves the clock forward by d and returns the number of callbacks that ran.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return s.AdvanceTo(s.Now() + d)
}

// AdvanceTo moves the clock to target, running every callback due at or before it.
// Callbacks run in due-time order, ties broken by registration order. A callback that
// registers a timer falling due before target sees it run within the same call.
// The clock never moves backwards.
func (s *Scheduler) AdvanceTo(target time.Duration) int {
	fired := 0
	for {
		t := s.popDue(target, true)
		if t == nil {
			return fired
		}
		// Callbacks run unlocked so they can register and cancel timers.
		t.callback()
		fired++
	}
}

// popDue removes the earliest timer due at or before target and moves the clock to it.
// With nothing due it moves the clock to target when settle is set and returns nil.
func (s *Scheduler) popDue(target time.Duration, settle bool) *timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 || s.queue[0].due > target {
		if settle && target > s.now {
			s.now = target
		}
		return nil
	}

	t := heap.Pop(&s.queue).(*timer) //nolint:forcetypeassert // heap only stores timers
	delete(s.pending, t.handle)
	if t.due > s.now {
		s.now = t.due
	}
	return t
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of registrations that have not run yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// NextDue returns the due time of the earliest pending registration.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Drain runs pending callbacks in order, moving the clock as far as needed, until the
// queue is empty or limit callbacks ran. It returns the number of callbacks that ran.
func (s *Scheduler) Drain(limit int) int {
	fired := 0
	for fired < limit {
		t := s.popDue(math.MaxInt64, false)
		if t == nil {
			break
		}
		t.callback()
		fired++
	}
	return fired
}

// Clear drops every pending registration without running it and returns how many were dropped.
func (s *Scheduler) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.queue)
	s.queue = nil
	clear(s.pending)
	return n
}
