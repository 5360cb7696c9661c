package terminal

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gallery-tools/exhibit-atlas/pkg/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	logger  zerolog.Logger
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Logger *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	cli := &CLI{logger: logger}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exhibit-atlas",
		Short: "Exhibition report generation tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.logger))
	cmd.AddCommand(commands.NewExportCmd(cli.logger))

	return cmd
}
