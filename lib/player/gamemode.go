// Package player holds the player-facing domain values converted by the
// network layer: game modes and skins.
package player

// GameMode is the server-side game mode of a player
type GameMode int

const (
	Survival GameMode = iota
	Creative
	Adventure
	Spectator
)

func (g GameMode) String() string {
	switch g {
	case Survival:
		return "survival"
	case Creative:
		return "creative"
	case Adventure:
		return "adventure"
	case Spectator:
		return "spectator"
	default:
		return "unknown"
	}
}

// ParseGameMode parses the lower case name of a game mode
func ParseGameMode(s string) (GameMode, bool) {
	for _, g := range []GameMode{Survival, Creative, Adventure, Spectator} {
		if g.String() == s {
			return g, true
		}
	}
	return 0, false
}
