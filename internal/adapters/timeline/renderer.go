// Package timeline prints command spans as a chronological, indented log.
package timeline

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/cadence/internal/ui/output"
	"go.trai.ch/cadence/internal/ui/style"
)

var _ ports.Timeline = (*Renderer)(nil)

// Renderer implements ports.Timeline for terminals and CI logs.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu       sync.Mutex
	spans    map[string]*spanState
	outcomes map[string]int
}

type spanState struct {
	name  string
	start time.Time
	depth int
}

// NewRenderer creates a Renderer writing to w, or stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:        w,
		output:   output.NewWithProfile(w, output.ColorProfileANSI),
		spans:    make(map[string]*spanState),
		outcomes: make(map[string]int),
	}
}

// OnCommandStart prints the span name, indented under its parent.
func (r *Renderer) OnCommandStart(spanID, parentID, name string, start time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent, ok := r.spans[parentID]; ok {
		depth = parent.depth + 1
	}
	r.spans[spanID] = &spanState{name: name, start: start, depth: depth}

	_, _ = fmt.Fprintf(r.w, "%s%s %s\n", indent(depth), r.prefix(name), r.output.String("started").Faint())
}

// OnCommandEnd prints the outcome and how long the span ran.
func (r *Renderer) OnCommandEnd(spanID string, end time.Time, outcome string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.spans[spanID]
	if !ok {
		return
	}
	delete(r.spans, spanID)

	if outcome == "" {
		outcome = "completed"
		if err != nil {
			outcome = "failed"
		}
	}
	r.outcomes[outcome]++

	icon, color := style.Outcome(outcome)
	symbol := output.Paint(r.output, icon, string(color))
	elapsed := end.Sub(span.start).Round(time.Microsecond)

	line := fmt.Sprintf("%s%s %s %s in %v", indent(span.depth), r.prefix(span.name), symbol, outcome, elapsed)
	if err != nil {
		line += ": " + err.Error()
	}
	_, _ = fmt.Fprintln(r.w, line)
}

// Summary returns how many spans ended with each outcome.
func (r *Renderer) Summary() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int, len(r.outcomes))
	for k, v := range r.outcomes {
		counts[k] = v
	}
	return counts
}

// Flush prints the outcome counts and reports spans that never ended.
func (r *Renderer) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, span := range r.openSpansLocked() {
		_, _ = fmt.Fprintf(r.w, "%s%s %s\n", indent(span.depth), r.prefix(span.name), r.output.String("still running").Faint())
	}

	if len(r.outcomes) == 0 {
		return
	}
	keys := make([]string, 0, len(r.outcomes))
	total := 0
	for k, v := range r.outcomes {
		keys = append(keys, k)
		total += v
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d %s", r.outcomes[k], k)
	}
	_, _ = fmt.Fprintf(r.w, "%d span(s): %s\n", total, strings.Join(parts, ", "))
}

func (r *Renderer) openSpansLocked() []*spanState {
	open := make([]*spanState, 0, len(r.spans))
	for _, span := range r.spans {
		open = append(open, span)
	}
	slices.SortFunc(open, func(a, b *spanState) int { return a.start.Compare(b.start) })
	return open
}

func (r *Renderer) prefix(name string) string {
	return r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
