package command_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/engine/command"
	"go.trai.ch/cadence/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func TestSetValue(t *testing.T) {
	label := newTestComponent("label", map[string]any{"text": "old"})
	env, _ := newEnv(t, newTestTree(label))

	cmd := command.NewSetValue(domain.Properties{
		"componentId": "label",
		"property":    "text",
		"value":       "new",
	}, env)
	require.True(t, cmd.CalculateProperties())
	assert.Nil(t, cmd.Execute(scheduler.NewScheduler(), false))
	assert.Equal(t, "new", label.get("text"))
}

func TestSetValue_MissingValueIsNoOp(t *testing.T) {
	label := newTestComponent("label", map[string]any{"text": "old"})
	env, _ := newEnv(t, newTestTree(label))

	cmd := command.NewSetValue(domain.Properties{"componentId": "label", "property": "text"}, env)
	assert.False(t, cmd.CalculateProperties())
	assert.Nil(t, cmd.Execute(nil, false))
	assert.Equal(t, "old", label.get("text"))
	assert.Zero(t, label.sets)
}

func TestSetValue_UnknownComponent(t *testing.T) {
	env, m := newEnv(t, newTestTree())
	m.logger.EXPECT().Error(gomock.Any())

	cmd := command.NewSetValue(domain.Properties{
		"componentId": "ghost",
		"property":    "text",
		"value":       1,
	}, env)
	require.True(t, cmd.CalculateProperties())
	assert.Nil(t, cmd.Execute(nil, false))
	assert.True(t, errors.Is(cmd.Err(), domain.ErrComponentNotFound))
}

func TestIdle(t *testing.T) {
	env, _ := newEnv(t, newTestTree())
	timers := scheduler.NewScheduler()

	t.Run("no delay finishes at once", func(t *testing.T) {
		cmd := command.NewIdle(nil, env)
		assert.Nil(t, cmd.Execute(timers, false))
	})

	t.Run("delay returns an action", func(t *testing.T) {
		cmd := command.NewIdle(domain.Properties{"delay": 40}, env)
		action := cmd.Execute(timers, false)
		require.NotNil(t, action)

		timers.Advance(39 * time.Millisecond)
		assert.True(t, action.IsPending())
		timers.Advance(time.Millisecond)
		assert.True(t, action.IsResolved())
	})

	t.Run("fast mode skips the delay", func(t *testing.T) {
		cmd := command.NewIdle(domain.Properties{"delay": 40}, env)
		assert.Nil(t, cmd.Execute(timers, true))
		assert.Zero(t, timers.Pending())
	})
}
