package component

// GoalPromptRequest asks the game state system to present the end-of-level
// choices once the goal sequence has played out.
type GoalPromptRequest struct{}

var GoalPromptRequestComponent = NewComponent[GoalPromptRequest]()
