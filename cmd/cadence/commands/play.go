package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/cadence/internal/app"
	"go.trai.ch/cadence/internal/ui/style"
)

func (c *CLI) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [document]",
		Short: "Play an event handler of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			event, _ := cmd.Flags().GetString("event")
			fast, _ := cmd.Flags().GetBool("fast")
			instant, _ := cmd.Flags().GetBool("instant")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			trace, _ := cmd.Flags().GetBool("trace")
			withMetrics, _ := cmd.Flags().GetBool("metrics")

			report, err := c.app.Play(cmd.Context(), path, app.PlayOptions{
				Event:   event,
				Fast:    fast,
				Instant: instant,
				Timeout: timeout,
				Trace:   trace,
				Metrics: withMetrics,
			})
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringP("event", "e", c.settings.Event, "Event handler to play")
	cmd.Flags().BoolP("fast", "f", c.settings.Fast, "Skip delays and animations")
	cmd.Flags().BoolP("instant", "i", c.settings.Instant, "Keep delays but do not wait for them")
	cmd.Flags().DurationP("timeout", "t", c.settings.Timeout, "Terminate the play after this duration (0 disables)")
	cmd.Flags().Bool("trace", c.settings.Trace, "Print a timeline of every command")
	cmd.Flags().Bool("metrics", false, "Print command metrics in the Prometheus text format")
	return cmd
}

func printReport(w io.Writer, r *app.Report) error {
	var b strings.Builder

	b.WriteString(style.Heading.Render(r.Event))
	fmt.Fprintf(&b, " %d %s in %s\n", r.Commands, plural(r.Commands, "command"), r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "  %s %s\n", style.Muted.Render("play "), r.PlayID)

	focused := r.Focused
	if focused == "" {
		focused = style.Muted.Render("none")
	}
	fmt.Fprintf(&b, "  %s %s\n", style.Muted.Render("focus"), focused)

	if r.Interrupted {
		fmt.Fprintf(&b, "  %s\n", style.Flag.Render(fmt.Sprintf(
			"%s interrupted, %d %s terminated", style.Warning, r.Terminated, plural(r.Terminated, "action"))))
	}

	if len(r.Components) > 0 {
		b.WriteString("\n" + style.Heading.Render("Components") + "\n")
		for _, s := range r.Components {
			b.WriteString(strings.Repeat("  ", s.Depth+1))
			b.WriteString(s.ID + " " + style.Muted.Render(s.Type))
			if s.Focused {
				b.WriteString(" " + style.Flag.Render(style.Dot+" focused"))
			}
			if props := formatProperties(s.Properties); props != "" {
				b.WriteString(" " + style.Muted.Render(props))
			}
			b.WriteString("\n")
		}
	}

	if len(r.Outcomes) > 0 {
		b.WriteString("\n" + style.Heading.Render("Outcomes") + "\n")
		for _, outcome := range slices.Sorted(maps.Keys(r.Outcomes)) {
			icon, color := style.Outcome(outcome)
			line := fmt.Sprintf("%s %s %d", icon, outcome, r.Outcomes[outcome])
			b.WriteString("  " + style.Muted.Foreground(color).Render(line) + "\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if r.Metrics != nil {
		if _, err := io.WriteString(w, "\n"+style.Heading.Render("Metrics")+"\n"); err != nil {
			return err
		}
		return r.Metrics.WriteText(w)
	}
	return nil
}

func formatProperties(props map[string]any) string {
	if len(props) == 0 {
		return ""
	}
	parts := make([]string, 0, len(props))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, " ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
