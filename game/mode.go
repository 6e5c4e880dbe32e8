package game

// Mode is the top-level game mode. Only ModePlaying steps the
// simulation; the other modes freeze all entity state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver

	// ModeWin is part of the mode set but unreached by current rules
	ModeWin
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	case ModeWin:
		return "win"
	default:
		return "unknown"
	}
}
