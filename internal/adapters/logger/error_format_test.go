package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cadence/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata accumulates on one link",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name: "metadata per link",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				return zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{{"outer_key": "outer_val"}, {"inner_key": "inner_val"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			assert.Len(t, entries, len(tt.wantMessages))

			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message at %d", i)
				if len(tt.wantMetadata[i]) == 0 {
					assert.Empty(t, entries[i].Metadata, "metadata at %d", i)
					continue
				}
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata at %d", i)
			}
		})
	}

	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted on main error",
			entries: []logger.ErrorEntry{{
				Message:  "invalid component",
				Metadata: map[string]any{"path": "cadence.yaml", "id": "btn1"},
			}},
			want: "Error: invalid component\n       id: btn1\n       path: cadence.yaml",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"property": "componentId"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      property: componentId",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "yaml: line 3\nbad indent"}},
			want:    "Error: main\n\n  Caused by:\n    → yaml: line 3\n      bad indent",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
