package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/engine/command"
	"go.trai.ch/cadence/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [type]",
		Short: "List command types or the properties of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				t := newTable("TYPE", "PROPERTIES", "FINGERPRINT")
				for _, name := range c.catalog.Types() {
					s, _ := c.catalog.Schema(name)
					t.Row(name, strings.Join(ownProperties(s), " "), fmt.Sprintf("%016x", s.Fingerprint()))
				}
				_, err := fmt.Fprintln(out, t.String())
				return err
			}

			name := args[0]
			s, ok := c.catalog.Schema(name)
			if !ok {
				return zerr.With(zerr.Wrap(domain.ErrUnknownCommandType, "failed to show schema"), "type", name)
			}

			t := newTable("PROPERTY", "FLAGS", "DEFAULT")
			for def := range s.All() {
				t.Row(def.Name(), def.Flags().String(), formatDefault(def.Default()))
			}
			_, err := fmt.Fprintln(out, style.Heading.Render(name)+"\n"+t.String())
			return err
		},
	}
}

// newTable returns a borderless table with a muted header row.
func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().PaddingRight(2)
	header := style.Muted.PaddingRight(2)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// ownProperties returns the names a type declares on top of the common properties.
func ownProperties(s *domain.PropertyDefinitionSet) []string {
	common := command.CommonProperties()
	var own []string
	for _, name := range s.Names() {
		if !common.Has(name) {
			own = append(own, name)
		}
	}
	if len(own) == 0 {
		return []string{"-"}
	}
	return own
}

func formatDefault(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return `""`
		}
		if strings.ContainsAny(v, " \t") {
			return fmt.Sprintf("%q", v)
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
