package component

// Phase is the game-state machine's current state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the session's score and phase. Only the game state system
// writes it.
type GameState struct {
	Score int
	Phase Phase
}

// Over reports whether gravity and contacts are suspended.
func (s GameState) Over() bool {
	return s.Phase != PhasePlaying
}

var GameStateComponent = NewComponent[GameState]()
