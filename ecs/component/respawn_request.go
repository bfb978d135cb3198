package component

// RespawnRequest is a marker component asking the game state system to
// replace a dying avatar with a fresh one at the start position.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
