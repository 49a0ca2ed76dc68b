package command

import (
	"fmt"
	"math"
	"time"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

// TypeAnimateItem interpolates numeric component properties over time.
const TypeAnimateItem = "AnimateItem"

// Properties of AnimateItem.
const (
	PropDuration    = "duration"
	PropRepeatCount = "repeatCount"
	PropRepeatMode  = "repeatMode"
)

// Repeat modes of AnimateItem.
const (
	RepeatRestart = "restart"
	RepeatReverse = "reverse"
)

// FrameInterval is the scheduler wake-up period of a running animation.
const FrameInterval = 16 * time.Millisecond

var animateItemSchema = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustExtend(CommonProperties(),
		domain.NewProperty(PropComponentID, nil, domain.AsID, domain.FlagRequired),
		domain.NewProperty(PropDuration, 1000.0, domain.AsNonNegativeNumber),
		domain.NewProperty(PropRepeatCount, 0, domain.AsNonNegativeInteger),
		domain.NewProperty(PropRepeatMode, RepeatRestart, domain.AsEnum(RepeatRestart, RepeatReverse)),
		domain.NewProperty(PropValue, nil, domain.AsArray, domain.FlagRequired),
	)
})

// track is one animated property.
type track struct {
	property string
	from     float64
	hasFrom  bool
	to       float64
}

// AnimateItem moves numeric properties of the target component from a start value to an
// end value over duration, optionally repeating.
type AnimateItem struct {
	Base
}

// NewAnimateItem creates an AnimateItem invocation.
func NewAnimateItem(source domain.PropertySource, env Env) Command {
	return &AnimateItem{Base: NewBase(TypeAnimateItem, animateItemSchema(), source, env)}
}

// Execute implements Command.
// Fast mode and zero durations apply the end state at once and return nil.
func (c *AnimateItem) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(fastMode bool) *domain.Action {
		tracks := c.tracks()
		if len(tracks) == 0 {
			c.Fail(zerr.With(zerr.Wrap(domain.ErrInvalidProperty, "animation has no valid values"), "property", PropValue))
			return nil
		}

		target, ok := c.component()
		if !ok {
			return nil
		}

		for i := range tracks {
			if !tracks[i].hasFrom {
				tracks[i].from = currentNumber(target, tracks[i].property)
			}
		}

		duration := Millis(c.bag.Number(PropDuration))
		repeats := c.bag.Int(PropRepeatCount)
		reverse := c.bag.String(PropRepeatMode) == RepeatReverse

		if fastMode || duration <= 0 || timers == nil {
			c.apply(target, tracks, finalProgress(repeats, reverse))
			return nil
		}

		c.apply(target, tracks, 0)
		return c.animate(timers, target.ID(), tracks, duration, repeats, reverse)
	})
}

// animate drives the frames of a running animation on timers.
func (c *AnimateItem) animate(
	timers ports.Timers,
	id string,
	tracks []track,
	duration time.Duration,
	repeats int,
	reverse bool,
) *domain.Action {
	action := domain.NewAction()
	total := duration * time.Duration(repeats+1)
	var elapsed time.Duration
	var handle ports.TimerHandle
	scheduled := false

	var frame func()
	frame = func() {
		scheduled = false
		if !action.IsPending() {
			return
		}

		target, ok := c.env.Tree.Find(id)
		if !ok {
			c.warn("animation target removed", "component", id)
			action.Terminate()
			return
		}

		elapsed += FrameInterval
		if elapsed >= total {
			c.apply(target, tracks, finalProgress(repeats, reverse))
			action.Resolve()
			return
		}

		c.apply(target, tracks, progressAt(elapsed, duration, reverse))
		handle = timers.RegisterDelay(FrameInterval, frame)
		scheduled = true
	}

	action.OnRelease(func() {
		if scheduled {
			timers.Cancel(handle)
		}
	})

	handle = timers.RegisterDelay(FrameInterval, frame)
	scheduled = true
	return action
}

// tracks parses the "value" array. Malformed entries are logged and skipped.
func (c *AnimateItem) tracks() []track {
	raw := c.bag.Array(PropValue)
	tracks := make([]track, 0, len(raw))
	for i, item := range raw {
		t, err := parseTrack(item)
		if err != nil {
			c.warn("skipping animation value", "index", i, "error", err)
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks
}

func parseTrack(item any) (track, error) {
	m, ok := item.(map[string]any)
	if !ok {
		if p, isProps := item.(domain.Properties); isProps {
			m = p
		} else {
			return track{}, zerr.With(zerr.Wrap(domain.ErrWrongType, "animation value must be a map"), "value", fmt.Sprintf("%T", item))
		}
	}

	name, err := domain.AsID(m["property"])
	if err != nil {
		return track{}, zerr.Wrap(err, "animation property")
	}

	rawTo, set := m["to"]
	if !set || rawTo == nil {
		return track{}, zerr.With(zerr.Wrap(domain.ErrMissingRequiredProperty, "animation value needs \"to\""), "property", name)
	}
	to, err := domain.AsNumber(rawTo)
	if err != nil {
		return track{}, zerr.With(zerr.Wrap(err, "animation \"to\""), "property", name)
	}

	t := track{property: name.(string), to: to.(float64)} //nolint:forcetypeassert // validators return these types
	if raw, set := m["from"]; set && raw != nil {
		from, err := domain.AsNumber(raw)
		if err != nil {
			return track{}, zerr.With(zerr.Wrap(err, "animation \"from\""), "property", name)
		}
		t.from = from.(float64) //nolint:forcetypeassert // AsNumber returns float64
		t.hasFrom = true
	}
	return t, nil
}

func (c *AnimateItem) apply(target ports.Component, tracks []track, progress float64) {
	for _, t := range tracks {
		value := t.from + (t.to-t.from)*progress
		if err := target.SetProperty(t.property, value); err != nil {
			c.warn("animation could not set property", "component", target.ID(), "property", t.property, "error", err)
		}
	}
}

// progressAt returns the interpolation position at elapsed. In reverse mode odd
// repetitions run backwards.
func progressAt(elapsed, duration time.Duration, reverse bool) float64 {
	cycle := int64(elapsed / duration)
	p := float64(elapsed%duration) / float64(duration)
	if reverse && cycle%2 == 1 {
		return 1 - p
	}
	return p
}

// finalProgress returns where the animation rests once every repetition ran.
func finalProgress(repeats int, reverse bool) float64 {
	if reverse && repeats%2 == 1 {
		return 0
	}
	return 1
}

func currentNumber(target ports.Component, property string) float64 {
	raw, ok := target.Property(property)
	if !ok {
		return 0
	}
	v, err := domain.AsNumber(raw)
	if err != nil {
		return 0
	}
	n := v.(float64) //nolint:forcetypeassert // AsNumber returns float64
	if math.IsInf(n, 0) {
		return 0
	}
	return n
}
