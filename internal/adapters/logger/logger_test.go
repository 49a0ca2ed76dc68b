package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cadence/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{name: "plain", msg: "loading", goldenName: "info_basic"},
		{name: "with attributes", msg: "playing document", args: []any{"path", "screens/home.yaml"}, goldenName: "info_attrs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg, tt.args...)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{name: "plain", msg: "animation target removed", goldenName: "warn_basic"},
		{
			name:       "with attributes",
			msg:        "skipping command",
			args:       []any{"type", "Bogus", "outcome", "rejected"},
			goldenName: "warn_attrs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Warn(tt.msg, tt.args...)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{name: "stdlib", err: os.ErrPermission, goldenName: "error_simple"},
		{
			name:       "stdlib chain",
			err:        fmt.Errorf("failed to initialize: %w", errors.New("connection refused")),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("no such handler"), "failed to play document"),
				"handler", "onMount",
			),
			goldenName: "error_chain_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("skipping command", "type", "Bogus")
	lg.Error(zerr.With(zerr.New("focus refused"), "component", "btn1"))

	dec := json.NewDecoder(buf)

	var warn map[string]any
	require.NoError(t, dec.Decode(&warn))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "skipping command", warn["msg"])
	assert.Equal(t, "Bogus", warn["type"])

	var failure map[string]any
	require.NoError(t, dec.Decode(&failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "btn1", failure["component"])
	assert.Contains(t, failure["error"], "focus refused")
}

func TestLogger_SetOutputKeepsJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("ready")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLogger_Quiet(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetQuiet(true)

	lg.Info("hidden")
	lg.Warn("shown")
	assert.Equal(t, "! shown\n", buf.String())

	lg.SetQuiet(false)
	buf.Reset()
	lg.Info("visible")
	assert.Equal(t, "visible\n", buf.String())
}
