// Package app implements the application layer for cadence.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/cadence/internal/adapters/focus"
	"go.trai.ch/cadence/internal/adapters/metrics"
	"go.trai.ch/cadence/internal/adapters/telemetry"
	"go.trai.ch/cadence/internal/adapters/timeline"
	"go.trai.ch/cadence/internal/adapters/tree"
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/cadence/internal/engine/command"
	"go.trai.ch/cadence/internal/engine/dispatcher"
	"go.trai.ch/cadence/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultEvent is the handler played when none is named.
const DefaultEvent = "onMount"

// App represents the main application logic.
type App struct {
	loader   ports.DocumentLoader
	registry *command.Registry
	logger   ports.Logger
	tracer   ports.Tracer

	clock    clockwork.Clock
	tick     time.Duration
	traceOut io.Writer
}

// New creates a new App instance.
func New(loader ports.DocumentLoader, registry *command.Registry, log ports.Logger, tracer ports.Tracer) *App {
	return &App{
		loader:   loader,
		registry: registry,
		logger:   log,
		tracer:   tracer,
		clock:    clockwork.NewRealClock(),
		tick:     command.FrameInterval,
		traceOut: os.Stderr,
	}
}

// WithClock replaces the clock driving the scheduler.
// This is primarily used for testing with a fake clock.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithTraceOutput sets where the timeline of a traced play is written.
func (a *App) WithTraceOutput(w io.Writer) *App {
	a.traceOut = w
	return a
}

// PlayOptions configuration for the Play method.
type PlayOptions struct {
	Event   string
	Fast    bool
	Instant bool
	Timeout time.Duration
	Trace   bool
	Metrics bool
}

// Report is the state a play left behind.
type Report struct {
	PlayID      string
	Event       string
	Commands    int
	Focused     string
	Elapsed     time.Duration
	Interrupted bool
	Terminated  int
	Components  []tree.State
	Outcomes    map[string]int
	Metrics     *metrics.Recorder
}

// Play loads the document at path and runs one of its event handlers until every
// Action it started has resolved, the timeout expires, or ctx is cancelled.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Play(ctx context.Context, path string, opts PlayOptions) (*Report, error) {
	// 1. Load the document
	doc, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load document")
	}

	event := opts.Event
	if event == "" {
		event = DefaultEvent
	}
	batch, ok := doc.Handler(event)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownHandler, "failed to play document"), "event", event)
	}

	// 2. Build the live tree and its collaborators
	components, err := tree.New(doc.Root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build component tree")
	}
	focusManager := focus.New(components)
	focusManager.Subscribe(func(c focus.Change) {
		a.logger.Info("focus changed", "component", c.ID, "gained", c.Gained)
	})
	sched := scheduler.NewScheduler()

	report := &Report{
		PlayID:   uuid.NewString(),
		Event:    event,
		Commands: len(batch),
	}

	// 3. Telemetry
	tracer := a.tracer
	var timelines []ports.Timeline
	var renderer *timeline.Renderer
	if opts.Trace {
		renderer = timeline.NewRenderer(a.traceOut)
		timelines = append(timelines, renderer)
	}
	if opts.Metrics {
		report.Metrics = metrics.NewRecorder()
		timelines = append(timelines, report.Metrics)
	}
	if len(timelines) > 0 {
		tp := telemetry.NewProvider(timelines...)
		defer func() {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
		}()
		tracer = telemetry.NewOTelTracerFrom(tp, telemetry.InstrumentationName)
	}

	env := command.Env{
		Tree:     components,
		Focus:    focusManager,
		Logger:   a.logger,
		Registry: a.registry,
	}
	disp := dispatcher.New(a.registry, env, sched, tracer)
	components.OnRemove(focusManager.Forget)
	components.OnRemove(func(id string) { disp.TerminateTarget(id) })

	// 4. Dispatch
	ctx, span := tracer.Start(ctx, "play "+event,
		ports.WithAttribute("play.id", report.PlayID),
		ports.WithAttribute(dispatcher.AttrFastMode, opts.Fast),
	)
	a.logger.Info("playing document", "event", event, "commands", len(batch), "fast", opts.Fast, "instant", opts.Instant)

	if action := disp.Dispatch(ctx, batch, opts.Fast); action != nil {
		run := a.drive
		if opts.Instant {
			run = a.settle
		}
		report.Interrupted, report.Terminated = run(ctx, opts.Timeout, sched, disp)
	}
	span.SetAttribute(dispatcher.AttrOutcome, outcomeOf(report))
	span.End()

	// 5. Report
	report.Focused = focusManager.Focused()
	report.Elapsed = sched.Now()
	report.Components = components.Snapshot()
	if renderer != nil {
		renderer.Flush()
		report.Outcomes = renderer.Summary()
	}
	return report, nil
}

// drive advances the scheduler on clock ticks until the dispatcher is idle.
// When ctx ends first, every outstanding Action is terminated once the loop stopped.
func (a *App) drive(ctx context.Context, timeout time.Duration, sched *scheduler.Scheduler, disp *dispatcher.Dispatcher) (bool, int) {
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	var interrupted bool
	var terminated int
	stopped := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)

	// Tick loop
	g.Go(func() error {
		defer close(stopped)

		ticker := a.clock.NewTicker(a.tick)
		defer ticker.Stop()

		for !disp.Idle() {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.Chan():
				sched.Advance(a.tick)
			}
		}
		return nil
	})

	// Teardown watcher
	g.Go(func() error {
		<-stopped
		if gctx.Err() == nil || disp.Idle() {
			return nil
		}
		interrupted = true
		terminated = a.teardown(context.Cause(gctx), sched, disp)
		return nil
	})

	_ = g.Wait()
	return interrupted, terminated
}

// settleBatch bounds how many callbacks settle runs between context checks.
const settleBatch = 64

// settle runs every registration in due order without waiting on the clock, so the
// virtual time still reflects every delay. It stops once the dispatcher is idle, when
// ctx ends, or when nothing is left that could make progress.
func (a *App) settle(ctx context.Context, timeout time.Duration, sched *scheduler.Scheduler, disp *dispatcher.Dispatcher) (bool, int) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for !disp.Idle() {
		if ctx.Err() != nil {
			return true, a.teardown(context.Cause(ctx), sched, disp)
		}
		if _, ok := sched.NextDue(); !ok {
			return true, a.teardown(domain.ErrPlayStalled, sched, disp)
		}
		sched.Drain(settleBatch)
	}
	return false, 0
}

// teardown terminates every outstanding Action and drops whatever timers remain.
func (a *App) teardown(reason error, sched *scheduler.Scheduler, disp *dispatcher.Dispatcher) int {
	terminated := disp.TerminateAll()
	dropped := sched.Clear()
	a.logger.Warn("play interrupted", "reason", reason, "terminated", terminated, "timers", dropped)
	return terminated
}

func outcomeOf(r *Report) string {
	if r.Interrupted {
		return "terminated"
	}
	return dispatcher.OutcomeCompleted
}
