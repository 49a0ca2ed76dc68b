package ports

import "time"

//go:generate go run go.uber.org/mock/mockgen -source=timeline.go -destination=mocks/mock_timeline.go -package=mocks

// Timeline receives command span boundaries as they happen.
type Timeline interface {
	// OnCommandStart is called when a command span starts.
	OnCommandStart(spanID, parentID, name string, start time.Time)
	// OnCommandEnd is called when a command span ends. err is set when the span failed.
	OnCommandEnd(spanID string, end time.Time, outcome string, err error)
}
