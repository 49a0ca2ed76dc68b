// Package commands implements the CLI commands for the cadence player.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cadence/internal/adapters/config"
	"go.trai.ch/cadence/internal/app"
	"go.trai.ch/cadence/internal/build"
	"go.trai.ch/cadence/internal/core/domain"
)

// CLI represents the command line interface for cadence.
type CLI struct {
	app      Application
	catalog  Catalog
	logs     LogModes
	settings config.Settings
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Play(ctx context.Context, path string, opts app.PlayOptions) (*app.Report, error)
}

// Catalog lists the command types a document may declare.
type Catalog interface {
	Types() []string
	Schema(name string) (*domain.PropertyDefinitionSet, bool)
}

// LogModes switches the logger between output modes. It is optional.
type LogModes interface {
	SetJSON(enable bool)
	SetQuiet(enable bool)
}

// New creates a new CLI instance.
// settings provide the defaults of the play flags, logs may be nil.
func New(a Application, catalog Catalog, logs LogModes, settings config.Settings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cadence",
		Short:         "Play the event handlers of declarative UI documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		catalog:  catalog,
		logs:     logs,
		settings: settings,
		rootCmd:  rootCmd,
	}

	rootCmd.PersistentFlags().Bool("json", settings.JSONLogs, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		c.logs.SetJSON(jsonLogs)
		c.logs.SetQuiet(quiet)
	}

	rootCmd.AddCommand(c.newPlayCmd())
	rootCmd.AddCommand(c.newSchemaCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
