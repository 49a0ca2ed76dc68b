package command_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/engine/command"
	"go.trai.ch/cadence/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func fadeOut(extra domain.Properties) domain.Properties {
	props := domain.Properties{
		"componentId": "box",
		"duration":    100,
		"value": []any{
			map[string]any{"property": "opacity", "from": 1, "to": 0},
			map[string]any{"property": "x", "to": 50},
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func TestAnimateItem_RunsOnFrames(t *testing.T) {
	box := newTestComponent("box", map[string]any{"opacity": 1.0, "x": 10})
	env, _ := newEnv(t, newTestTree(box))
	timers := scheduler.NewScheduler()

	cmd := command.NewAnimateItem(fadeOut(nil), env)
	require.True(t, cmd.CalculateProperties())

	action := cmd.Execute(timers, false)
	require.NotNil(t, action)
	assert.Equal(t, 1.0, box.get("opacity"))
	assert.Equal(t, 10.0, box.get("x"), "missing from starts at the current value")

	timers.Advance(48 * time.Millisecond)
	assert.True(t, action.IsPending())
	assert.InDelta(t, 0.52, box.get("opacity"), 1e-9)
	assert.InDelta(t, 29.2, box.get("x"), 1e-9)

	timers.Advance(48 * time.Millisecond)
	assert.True(t, action.IsPending())

	timers.Advance(command.FrameInterval)
	assert.True(t, action.IsResolved())
	assert.Equal(t, 0.0, box.get("opacity"))
	assert.Equal(t, 50.0, box.get("x"))
	assert.Zero(t, timers.Pending())
}

func TestAnimateItem_FastModeAppliesEndState(t *testing.T) {
	box := newTestComponent("box", map[string]any{"opacity": 1.0})
	env, _ := newEnv(t, newTestTree(box))
	timers := scheduler.NewScheduler()

	cmd := command.NewAnimateItem(fadeOut(domain.Properties{"delay": 200, "repeatCount": 3}), env)
	require.True(t, cmd.CalculateProperties())

	assert.Nil(t, cmd.Execute(timers, true))
	assert.Equal(t, 0.0, box.get("opacity"))
	assert.Equal(t, 50.0, box.get("x"))
	assert.Zero(t, timers.Pending())
}

func TestAnimateItem_FastModeMatchesNormalEndState(t *testing.T) {
	for _, extra := range []domain.Properties{
		nil,
		{"repeatCount": 2},
		{"repeatCount": 1, "repeatMode": "reverse"},
		{"repeatCount": 2, "repeatMode": "reverse"},
	} {
		fast := newTestComponent("box", map[string]any{"opacity": 1.0, "x": 0})
		envFast, _ := newEnv(t, newTestTree(fast))
		assert.Nil(t, command.NewAnimateItem(fadeOut(extra), envFast).Execute(nil, true))

		slow := newTestComponent("box", map[string]any{"opacity": 1.0, "x": 0})
		envSlow, _ := newEnv(t, newTestTree(slow))
		timers := scheduler.NewScheduler()
		action := command.NewAnimateItem(fadeOut(extra), envSlow).Execute(timers, false)
		require.NotNil(t, action)
		timers.Advance(time.Second)
		require.True(t, action.IsResolved(), "%v", extra)

		assert.Equal(t, slow.get("opacity"), fast.get("opacity"), "%v", extra)
		assert.Equal(t, slow.get("x"), fast.get("x"), "%v", extra)
	}
}

func TestAnimateItem_ReverseRunsBackwards(t *testing.T) {
	box := newTestComponent("box", nil)
	env, _ := newEnv(t, newTestTree(box))
	timers := scheduler.NewScheduler()

	action := command.NewAnimateItem(domain.Properties{
		"componentId": "box",
		"duration":    160,
		"repeatCount": 1,
		"repeatMode":  "reverse",
		"value":       []any{map[string]any{"property": "scale", "from": 0, "to": 1}},
	}, env).Execute(timers, false)
	require.NotNil(t, action)

	timers.Advance(160 * time.Millisecond)
	assert.InDelta(t, 1.0, box.get("scale"), 1e-9, "the reversed cycle starts from the end value")

	timers.Advance(80 * time.Millisecond)
	assert.InDelta(t, 0.5, box.get("scale"), 1e-9)

	timers.Advance(80 * time.Millisecond)
	assert.True(t, action.IsResolved())
	assert.Equal(t, 0.0, box.get("scale"))
}

func TestAnimateItem_TargetRemovedTerminates(t *testing.T) {
	box := newTestComponent("box", nil)
	tree := newTestTree(box)
	env, m := newEnv(t, tree)
	m.logger.EXPECT().Warn("animation target removed", gomock.Any())
	timers := scheduler.NewScheduler()

	action := command.NewAnimateItem(fadeOut(nil), env).Execute(timers, false)
	require.NotNil(t, action)

	timers.Advance(32 * time.Millisecond)
	require.NoError(t, tree.Remove("box"))
	timers.Advance(command.FrameInterval)

	assert.True(t, action.IsTerminated())
	assert.Zero(t, timers.Pending())
}

func TestAnimateItem_CancelStopsFrames(t *testing.T) {
	box := newTestComponent("box", nil)
	env, _ := newEnv(t, newTestTree(box))
	timers := scheduler.NewScheduler()

	action := command.NewAnimateItem(fadeOut(nil), env).Execute(timers, false)
	require.NotNil(t, action)
	timers.Advance(32 * time.Millisecond)
	sets := box.sets

	action.Cancel()
	assert.Zero(t, timers.Pending())
	timers.Advance(time.Second)
	assert.Equal(t, sets, box.sets)
}

func TestAnimateItem_InvalidValuesAreNoOp(t *testing.T) {
	box := newTestComponent("box", nil)
	env, m := newEnv(t, newTestTree(box))
	m.logger.EXPECT().Warn("skipping animation value", gomock.Any()).Times(2)
	m.logger.EXPECT().Error(gomock.Any())

	cmd := command.NewAnimateItem(domain.Properties{
		"componentId": "box",
		"value":       []any{"opacity", map[string]any{"property": "x"}},
	}, env)
	require.True(t, cmd.CalculateProperties())
	assert.Nil(t, cmd.Execute(scheduler.NewScheduler(), false))
	assert.Zero(t, box.sets)
	assert.Error(t, cmd.Err())
}
