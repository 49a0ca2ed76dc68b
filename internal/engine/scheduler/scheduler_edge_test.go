package scheduler_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cadence/internal/engine/scheduler"
)

func TestScheduler_ConcurrentRegisterAndCancel(t *testing.T) {
	s := scheduler.NewScheduler()

	var wg sync.WaitGroup
	var mu sync.Mutex
	ran := 0
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := s.RegisterDelay(time.Duration(i)*time.Millisecond, func() {
				mu.Lock()
				ran++
				mu.Unlock()
			})
			if i%2 == 0 {
				s.Cancel(h)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, s.Pending())
	s.Advance(time.Second)
	assert.Equal(t, 25, ran)
	assert.Zero(t, s.Pending())
}
