package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/player"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/cockroachdb/errors"
)

// CoreGameModeToProtocol returns the game mode sent to clients. The protocol
// has no usable spectator mode, so spectators are sent as creative.
func (c *TypeConverter) CoreGameModeToProtocol(g player.GameMode) protocol.GameMode {
	switch g {
	case player.Survival:
		return protocol.GameModeSurvival
	case player.Creative, player.Spectator:
		return protocol.GameModeCreative
	case player.Adventure:
		return protocol.GameModeAdventure
	default:
		panic(errors.AssertionFailedf("unknown game mode %d", int(g)))
	}
}

// ProtocolGameModeToCore maps a game mode received from a client. The second
// result is false for values without a domain equivalent.
func (c *TypeConverter) ProtocolGameModeToCore(g protocol.GameMode) (player.GameMode, bool) {
	switch g {
	case protocol.GameModeSurvival:
		return player.Survival, true
	case protocol.GameModeCreative:
		return player.Creative, true
	case protocol.GameModeAdventure:
		return player.Adventure, true
	case protocol.GameModeSurvivalViewer, protocol.GameModeCreativeViewer:
		return player.Spectator, true
	default:
		return 0, false
	}
}
