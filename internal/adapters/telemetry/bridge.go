package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cadence/internal/core/ports"
)

// OutcomeKey is the span attribute the bridge reports as the command outcome.
const OutcomeKey = "outcome"

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to forward spans to a Timeline.
type Bridge struct {
	timeline ports.Timeline
}

// NewBridge returns a new Bridge.
func NewBridge(timeline ports.Timeline) *Bridge {
	return &Bridge{timeline: timeline}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.timeline == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var parentID string
	if parentSpan := trace.SpanFromContext(parent); parentSpan.SpanContext().IsValid() {
		parentID = parentSpan.SpanContext().SpanID().String()
	}

	b.timeline.OnCommandStart(sc.SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.timeline == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var outcome string
	for _, kv := range s.Attributes() {
		if string(kv.Key) == OutcomeKey {
			outcome = kv.Value.AsString()
		}
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "command failed"
		}
		err = errors.New(desc)
	}

	b.timeline.OnCommandEnd(sc.SpanID().String(), s.EndTime(), outcome, err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
