package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/player"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"testing"
)

func TestCoreGameModeToProtocol(t *testing.T) {
	c := testConverter(t)

	tests := map[player.GameMode]protocol.GameMode{
		player.Survival:  protocol.GameModeSurvival,
		player.Creative:  protocol.GameModeCreative,
		player.Adventure: protocol.GameModeAdventure,
		player.Spectator: protocol.GameModeCreative,
	}
	for in, want := range tests {
		if got := c.CoreGameModeToProtocol(in); got != want {
			t.Errorf("CoreGameModeToProtocol(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestProtocolGameModeToCore(t *testing.T) {
	c := testConverter(t)

	tests := []struct {
		in     protocol.GameMode
		want   player.GameMode
		wantOK bool
	}{
		{protocol.GameModeSurvival, player.Survival, true},
		{protocol.GameModeCreative, player.Creative, true},
		{protocol.GameModeAdventure, player.Adventure, true},
		{protocol.GameModeSurvivalViewer, player.Spectator, true},
		{protocol.GameModeCreativeViewer, player.Spectator, true},
		{protocol.GameModeDefault, 0, false},
		{protocol.GameModeSpectator, 0, false},
		{protocol.GameMode(99), 0, false},
	}
	for _, tt := range tests {
		got, ok := c.ProtocolGameModeToCore(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ProtocolGameModeToCore(%s) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	if got, _ := c.ProtocolGameModeToCore(c.CoreGameModeToProtocol(player.Survival)); got != player.Survival {
		t.Errorf("survival did not survive a round trip, got %s", got)
	}
}
