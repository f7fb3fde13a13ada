package cmd

import (
	"fmt"
	"github.com/PIXRA-Network/typeconv/cmd/gamemode"
	"github.com/PIXRA-Network/typeconv/cmd/ingredient"
	"github.com/PIXRA-Network/typeconv/cmd/metrics"
	"github.com/PIXRA-Network/typeconv/cmd/stack"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "typeconv",
		Short: "protocol type conversion toolkit",
		Long: fmt.Sprintf(`typeconv (v%s)

Converts items, recipe ingredients and game modes between the server's
representation and the wire format of a given client protocol version.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of typeconv",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("typeconv v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(stack.ItemCommands)
	RootCmd.AddCommand(ingredient.IngredientCommands)
	RootCmd.AddCommand(gamemode.GameModeCommands)
	RootCmd.AddCommand(metrics.MetricsCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
