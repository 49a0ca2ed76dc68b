package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/cadence/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Group(t *testing.T) {
	handler, buf := newTestHandler(t)
	lg := slog.New(handler).WithGroup("command").With("type", "SetFocus")
	lg.Info("grouped", "delay", 100)

	goldie.New(t).Assert(t, "handler_group", buf.Bytes())
}

func TestPrettyHandler_QuotesSpaces(t *testing.T) {
	handler, buf := newTestHandler(t)
	slog.New(handler).Info("quoted", "description", "a b")

	goldie.New(t).Assert(t, "handler_quoted", buf.Bytes())
}

func TestPrettyHandler_WithAttrsDoesNotMutate(t *testing.T) {
	handler, buf := newTestHandler(t)
	base := slog.New(handler)
	_ = base.With("leak", true)

	base.Info("clean")
	assert.Equal(t, "clean\n", buf.String())
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	assert.NotNil(t, logger.NewPrettyHandler(nil, nil))
}
