package ports

import "time"

// TimerHandle identifies one delay registration.
type TimerHandle uint64

// Timers is the time-driven scheduler commands use to wait.
// Callbacks run on the runtime loop when the scheduler is advanced past their due time.
//
//go:generate go run go.uber.org/mock/mockgen -source=timers.go -destination=mocks/mock_timers.go -package=mocks
type Timers interface {
	// RegisterDelay schedules callback to run once after d.
	RegisterDelay(d time.Duration, callback func()) TimerHandle

	// Cancel removes a pending registration.
	// It returns false if the callback already ran or the handle is unknown.
	Cancel(handle TimerHandle) bool
}
