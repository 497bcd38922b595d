package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kureharyosuke/DesignPattern/abstractfactory"
)

// FamiliesCmd represents the families command
var FamiliesCmd = &cobra.Command{
	Use:   "families",
	Short: "List registered product families",
	Long: `List every registered product family along with a sample of what its
factory produces.`,
	RunE: runFamiliesCommand,
}

func runFamiliesCommand(cmd *cobra.Command, args []string) error {
	registry := abstractfactory.DefaultRegistry()

	pterm.DefaultHeader.WithFullWidth().Printf("Registered product families")
	pterm.Println()

	for _, family := range registry.Families() {
		factory, err := registry.New(family)
		if err != nil {
			return err
		}

		pterm.Info.Printf("Family %s", family)
		pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.LightGreen(factory.CreateProductA().UsefulFunctionA()))
		pterm.Printf("  %s %s\n", pterm.Gray("→"), pterm.LightGreen(factory.CreateProductB().UsefulFunctionB()))
		pterm.Println()
	}

	return nil
}
