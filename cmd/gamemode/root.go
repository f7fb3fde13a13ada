package gamemode

import (
	"fmt"
	"github.com/PIXRA-Network/typeconv/cmd/util"
	"github.com/PIXRA-Network/typeconv/lib/player"
	"github.com/PIXRA-Network/typeconv/network/convert"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/spf13/cobra"
	"strconv"
)

var (
	converter *convert.TypeConverter

	// GameModeCommands represents the gamemode command group
	GameModeCommands = &cobra.Command{
		Use:               "gamemode",
		Short:             "Map game modes between the server and the protocol",
		PersistentPreRunE: setupConverter,
	}

	toWireCmd = &cobra.Command{
		Use:   "to-wire [survival|creative|adventure|spectator]",
		Short: "Prints the protocol game mode sent for a server game mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := player.ParseGameMode(args[0])
			if !ok {
				return fmt.Errorf("invalid game mode %s", args[0])
			}
			wire := converter.CoreGameModeToProtocol(mode)
			fmt.Printf("%s (%d)\n", wire, int32(wire))
			return nil
		},
	}

	fromWireCmd = &cobra.Command{
		Use:   "from-wire [value]",
		Short: "Prints the server game mode of a protocol game mode value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("value must be a number: %w", err)
			}
			mode, ok := converter.ProtocolGameModeToCore(protocol.GameMode(v))
			if !ok {
				return fmt.Errorf("protocol game mode %d has no server equivalent", v)
			}
			fmt.Println(mode)
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	util.SetupConverterFlags(GameModeCommands)

	GameModeCommands.AddCommand(toWireCmd)
	GameModeCommands.AddCommand(fromWireCmd)
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
