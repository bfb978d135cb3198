package component

// RestartRequest is a one-shot request entity; the game state system restarts
// the level on the next tick and destroys it.
type RestartRequest struct{}

var RestartRequestComponent = NewComponent[RestartRequest]()
