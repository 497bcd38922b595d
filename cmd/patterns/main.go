package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kureharyosuke/DesignPattern/cmd/patterns/commands"
	"github.com/kureharyosuke/DesignPattern/config"
	"github.com/kureharyosuke/DesignPattern/logger"
)

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Abstract Factory pattern demonstration",
	Long: `patterns - Abstract Factory pattern demonstration

Two product families (1 and 2), each with a variant of product A and
product B, produced by two interchangeable factories and driven by client
code that only ever sees the abstract interfaces.

Available commands:
  demo     - Run the full demonstration against both factories (default)
  run      - Run the client code against a single product family
  families - List registered product families
  version  - Show version information

Examples:
  patterns                 # Full demonstration, both factories
  patterns run --family 2  # Client code against family 2 only
  patterns families        # Show what each family produces`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	// Bare invocation runs the canonical demonstration.
	RunE: commands.DemoCmd.RunE,
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.DemoCmd)
	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.FamiliesCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
