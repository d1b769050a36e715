package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"optionsim/internal/strategy"
)

func newStrategiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "strategies",
		Aliases: []string{"list"},
		Short:   "List available option strategies",
		Long:    "List the supported canned strategies with their construction rules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if output.IsJSON() {
				kinds := strategy.Kinds()
				list := make([]map[string]string, 0, len(kinds))
				for _, k := range kinds {
					list = append(list, map[string]string{
						"name":        string(k),
						"description": strategy.Describe(k),
					})
				}
				return output.JSON(list)
			}

			fmt.Println()
			color.Cyan("Available Option Strategies")
			fmt.Println()

			for _, k := range strategy.Kinds() {
				fmt.Printf("  %-18s %s\n", color.New(color.FgGreen).Sprint(string(k)), strategy.Describe(k))
			}

			fmt.Println()
			fmt.Println("  Strike offsets derive from --width (default 400 points).")
			fmt.Println("  An unknown strategy name falls back to a straddle.")
			return nil
		},
	}
}
