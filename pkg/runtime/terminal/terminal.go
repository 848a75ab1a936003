package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/models/domain"
	"github.com/retail-tools/retail-atlas/pkg/runtime/terminal/commands"
	"github.com/retail-tools/retail-atlas/pkg/runtime/terminal/export"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
)

// CLI represents the command-line interface
type CLI struct {
	engine  analytics.Engine
	plain   bool
	table   *export.Reporter
	text    *Reporter
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine analytics.Engine
	Output io.Writer

	// Plain switches off the table borders. The --plain flag overrides it.
	Plain bool
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		engine: opts.Engine,
		plain:  opts.Plain,
		table:  export.NewReporter(opts.Output),
		text:   NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// Handle renders through the reporter picked by the --plain flag. The flag
// is only parsed once a subcommand runs, so the choice has to happen here
// rather than at construction time.
func (cli *CLI) Handle(report *domain.Report) error {
	if cli.plain {
		return cli.text.Handle(report)
	}
	return cli.table.Handle(report)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retail-atlas",
		Short: "Retail analytics tool",
	}
	cmd.PersistentFlags().BoolVar(&cli.plain, "plain", cli.plain, "Render plain text instead of tables")

	cmd.AddCommand(commands.NewRevenueCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewDemandCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewStockoutsCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewAnomaliesCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewSeasonalCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewCategoriesCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewMarginCmd(cli.engine, cli))
	cmd.AddCommand(commands.NewPriceCmd(cli.engine, cli))

	return cmd
}
