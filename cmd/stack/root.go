package stack

import (
	"github.com/PIXRA-Network/typeconv/cmd/util"
	"github.com/PIXRA-Network/typeconv/network/convert"
	"github.com/spf13/cobra"
)

var (
	converter *convert.TypeConverter

	// ItemCommands represents the item command group
	ItemCommands = &cobra.Command{
		Use:               "item",
		Short:             "Convert item stacks to and from the wire format",
		PersistentPreRunE: setupConverter,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	util.SetupConverterFlags(ItemCommands)

	ItemCommands.AddCommand(encodeCmd)
	ItemCommands.AddCommand(decodeCmd)

	encodeCmd.Flags().String("custom-name", "", util.WrapString("Custom display name of the item"))
	encodeCmd.Flags().StringSlice("lore", nil, util.WrapString("Lore lines of the item"))
}

// setupConverter creates the converter of the configured protocol
func setupConverter(cmd *cobra.Command, _ []string) error {
	registry, conf, err := util.SetupRegistry(cmd)
	if err != nil {
		return err
	}
	converter, err = registry.Get(conf.DefaultProtocol)
	return err
}
