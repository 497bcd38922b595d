package commands

import (
	"github.com/spf13/cobra"

	"github.com/kureharyosuke/DesignPattern/abstractfactory"
	"github.com/kureharyosuke/DesignPattern/logger"
)

// DemoCmd represents the demo command
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full demonstration against both factories",
	Long: `Run the client code twice, once with each built-in factory.

The client only sees the abstract factory and product interfaces, so the
same code drives both product families. Output is the fixed demonstration
sequence on stdout.`,
	RunE: runDemoCommand,
}

func runDemoCommand(cmd *cobra.Command, args []string) error {
	logger.Debugw("running demonstration", "families", []string{"1", "2"})

	abstractfactory.Demo(cmd.OutOrStdout())
	return nil
}
