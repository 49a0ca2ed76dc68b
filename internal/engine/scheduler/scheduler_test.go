package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/cadence/internal/engine/scheduler"
)

func TestScheduler_FiresInDueOrder(t *testing.T) {
	s := scheduler.NewScheduler()
	var order []string

	s.RegisterDelay(30*time.Millisecond, func() { order = append(order, "c") })
	s.RegisterDelay(10*time.Millisecond, func() { order = append(order, "a") })
	s.RegisterDelay(10*time.Millisecond, func() { order = append(order, "b") })
	s.RegisterDelay(50*time.Millisecond, func() { order = append(order, "late") })

	fired := s.Advance(30 * time.Millisecond)

	assert.Equal(t, 3, fired)
	assert.Equal(t, []string{"a", "b", "c"}, order, "ties fire in registration order")
	assert.Equal(t, 30*time.Millisecond, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestScheduler_NestedRegistrationFiresWithinAdvance(t *testing.T) {
	s := scheduler.NewScheduler()
	var at []time.Duration

	s.RegisterDelay(10*time.Millisecond, func() {
		at = append(at, s.Now())
		s.RegisterDelay(5*time.Millisecond, func() {
			at = append(at, s.Now())
		})
		s.RegisterDelay(100*time.Millisecond, func() {
			at = append(at, s.Now())
		})
	})

	fired := s.Advance(20 * time.Millisecond)

	assert.Equal(t, 2, fired)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 15 * time.Millisecond}, at)
	assert.Equal(t, 20*time.Millisecond, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestScheduler_Cancel(t *testing.T) {
	s := scheduler.NewScheduler()
	ran := false
	h := s.RegisterDelay(10*time.Millisecond, func() { ran = true })

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h), "second cancel reports nothing to remove")
	assert.False(t, s.Cancel(ports.TimerHandle(999)))

	s.Advance(time.Second)
	assert.False(t, ran)
}

func TestScheduler_CancelAfterFire(t *testing.T) {
	s := scheduler.NewScheduler()
	h := s.RegisterDelay(0, func() {})

	require.Equal(t, 1, s.Advance(0))
	assert.False(t, s.Cancel(h))
}

func TestScheduler_CancelFromCallback(t *testing.T) {
	s := scheduler.NewScheduler()
	var second ports.TimerHandle
	ran := false

	s.RegisterDelay(10*time.Millisecond, func() {
		assert.True(t, s.Cancel(second))
	})
	second = s.RegisterDelay(10*time.Millisecond, func() { ran = true })

	assert.Equal(t, 1, s.Advance(10*time.Millisecond))
	assert.False(t, ran)
}

func TestScheduler_ClockNeverMovesBackwards(t *testing.T) {
	s := scheduler.NewScheduler()
	s.Advance(100 * time.Millisecond)

	s.AdvanceTo(50 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, s.Now())

	s.Advance(-time.Second)
	assert.Equal(t, 100*time.Millisecond, s.Now())
}

func TestScheduler_NegativeDelayIsImmediate(t *testing.T) {
	s := scheduler.NewScheduler()
	ran := false
	s.RegisterDelay(-5*time.Millisecond, func() { ran = true })

	s.Advance(0)
	assert.True(t, ran)
}

func TestScheduler_NextDueAndDrain(t *testing.T) {
	s := scheduler.NewScheduler()
	_, ok := s.NextDue()
	assert.False(t, ok)

	count := 0
	var tick func()
	tick = func() {
		count++
		s.RegisterDelay(16*time.Millisecond, tick)
	}
	s.RegisterDelay(16*time.Millisecond, tick)

	due, ok := s.NextDue()
	require.True(t, ok)
	assert.Equal(t, 16*time.Millisecond, due)

	fired := s.Drain(5)
	assert.Equal(t, 5, fired, "drain is bounded for self-rescheduling callbacks")
	assert.Equal(t, 5, count)
	assert.Equal(t, 80*time.Millisecond, s.Now())
}

func TestScheduler_Clear(t *testing.T) {
	s := scheduler.NewScheduler()
	h := s.RegisterDelay(time.Millisecond, func() { t.Fatal("cleared timers must not run") })
	s.RegisterDelay(2*time.Millisecond, func() { t.Fatal("cleared timers must not run") })

	assert.Equal(t, 2, s.Clear())
	assert.Zero(t, s.Pending())
	assert.False(t, s.Cancel(h))
	assert.Zero(t, s.Advance(time.Second))
}

func TestScheduler_PendingHandlesOrder(t *testing.T) {
	s := scheduler.NewScheduler()
	a := s.RegisterDelay(20*time.Millisecond, func() {})
	b := s.RegisterDelay(10*time.Millisecond, func() {})
	c := s.RegisterDelay(20*time.Millisecond, func() {})
	d := s.RegisterDelay(15*time.Millisecond, func() {})
	s.Cancel(d)

	assert.Equal(t, []ports.TimerHandle{b, a, c}, s.PendingHandles())
}
