package timeline_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cadence/internal/adapters/timeline"
)

func newRenderer(t *testing.T) (*timeline.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return timeline.NewRenderer(buf), buf
}

func TestRenderer_Lifecycle(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	r.OnCommandStart("root", "", "play onMount", start)
	r.OnCommandStart("c1", "root", "SetFocus", start)
	r.OnCommandEnd("c1", start.Add(2*time.Millisecond), "completed", nil)
	r.OnCommandStart("c2", "root", "SetValue", start)
	r.OnCommandEnd("c2", start.Add(time.Millisecond), "failed", errors.New("component not found"))
	r.OnCommandEnd("root", start.Add(5*time.Millisecond), "", nil)

	want := "[play onMount] started\n" +
		"  [SetFocus] started\n" +
		"  [SetFocus] ✓ completed in 2ms\n" +
		"  [SetValue] started\n" +
		"  [SetValue] ✗ failed in 1ms: component not found\n" +
		"[play onMount] ✓ completed in 5ms\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, map[string]int{"completed": 2, "failed": 1}, r.Summary())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, buf := newRenderer(t)
	r.OnCommandEnd("ghost", time.Now(), "completed", nil)
	assert.Empty(t, buf.String())
	assert.Empty(t, r.Summary())
}

func TestRenderer_InferredOutcome(t *testing.T) {
	r, _ := newRenderer(t)
	now := time.Now()

	r.OnCommandStart("a", "", "Idle", now)
	r.OnCommandEnd("a", now, "", errors.New("boom"))

	assert.Equal(t, map[string]int{"failed": 1}, r.Summary())
}

func TestRenderer_Flush(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	r.OnCommandStart("a", "", "Idle", start)
	r.OnCommandEnd("a", start, "terminated", nil)
	r.OnCommandStart("b", "", "AnimateItem", start)
	r.OnCommandStart("c", "", "SetFocus", start)
	r.OnCommandEnd("c", start, "skipped", nil)
	buf.Reset()

	r.Flush()
	assert.Equal(t, "[AnimateItem] still running\n2 span(s): 1 skipped, 1 terminated\n", buf.String())
}

func TestRenderer_FlushEmpty(t *testing.T) {
	r, buf := newRenderer(t)
	r.Flush()
	assert.Empty(t, buf.String())
}
