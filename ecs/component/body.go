package component

// BodyTag is the semantic role of a physics body. Contact handling switches
// on it directly.
type BodyTag int

const (
	TagAvatar BodyTag = iota + 1
	TagWall
	TagHazard
	TagPickup
	TagGoal
)

func (t BodyTag) String() string {
	switch t {
	case TagAvatar:
		return "avatar"
	case TagWall:
		return "wall"
	case TagHazard:
		return "hazard"
	case TagPickup:
		return "pickup"
	case TagGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Body tags a compiled physics entity with its role.
type Body struct {
	Tag BodyTag
}

var BodyComponent = NewComponent[Body]()
