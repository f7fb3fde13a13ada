package protocol

// GameMode is the game mode enumeration of the protocol
type GameMode int32

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSurvivalViewer
	GameModeCreativeViewer
	GameModeDefault
	GameModeSpectator
)

func (g GameMode) String() string {
	switch g {
	case GameModeSurvival:
		return "survival"
	case GameModeCreative:
		return "creative"
	case GameModeAdventure:
		return "adventure"
	case GameModeSurvivalViewer:
		return "survival_viewer"
	case GameModeCreativeViewer:
		return "creative_viewer"
	case GameModeDefault:
		return "default"
	case GameModeSpectator:
		return "spectator"
	default:
		return "unknown"
	}
}
