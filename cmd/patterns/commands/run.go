package commands

import (
	"github.com/spf13/cobra"

	"github.com/kureharyosuke/DesignPattern/abstractfactory"
	"github.com/kureharyosuke/DesignPattern/config"
	"github.com/kureharyosuke/DesignPattern/logger"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the client code against a single product family",
	Long: `Run the client code once, against the factory of one product family.

The family is selected with --family, falling back to demo.family from the
configuration (default "1"). Unknown families are an error.

Examples:
  patterns run             # Family from config (default 1)
  patterns run --family 2  # Family 2`,
	RunE: runRunCommand,
}

func runRunCommand(cmd *cobra.Command, args []string) error {
	family, _ := cmd.Flags().GetString("family")

	if family == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		family = cfg.Demo.Family
		logger.Debugw("family taken from configuration", "family", family)
	}

	registry := abstractfactory.DefaultRegistry()
	factory, err := registry.New(family)
	if err != nil {
		return err
	}

	logger.Infow("running client code", "family", family)
	abstractfactory.RunClient(cmd.OutOrStdout(), factory)
	return nil
}

func init() {
	RunCmd.Flags().StringP("family", "f", "", "Product family tag (default from config)")
}
