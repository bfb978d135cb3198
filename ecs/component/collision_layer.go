package component

// Collision categories. Each is a distinct single bit so masks can be OR-ed.
const (
	CategoryAvatar uint32 = 1 << iota
	CategoryWall
	CategoryPickup
	CategoryHazard
	CategoryGoal
)

// CollisionLayer declares what a body is, what physically blocks it and what
// it wants to be told about.
type CollisionLayer struct {
	Category     uint32
	CollidesWith uint32
	NotifiesOn   uint32
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

// CollisionPolicy returns the fixed layer for a body tag.
func CollisionPolicy(tag BodyTag) CollisionLayer {
	switch tag {
	case TagAvatar:
		return CollisionLayer{
			Category:     CategoryAvatar,
			CollidesWith: CategoryWall,
			NotifiesOn:   CategoryHazard | CategoryPickup | CategoryGoal,
		}
	case TagWall:
		return CollisionLayer{Category: CategoryWall, CollidesWith: CategoryAvatar}
	case TagHazard:
		return CollisionLayer{Category: CategoryHazard, NotifiesOn: CategoryAvatar}
	case TagPickup:
		return CollisionLayer{Category: CategoryPickup, NotifiesOn: CategoryAvatar}
	case TagGoal:
		return CollisionLayer{Category: CategoryGoal, NotifiesOn: CategoryAvatar}
	default:
		return CollisionLayer{}
	}
}

// Sensor reports whether the body only reports contacts and never blocks.
func (l CollisionLayer) Sensor() bool {
	return l.CollidesWith == 0
}

// FilterMask is the set of categories the body must meet at all, either to
// collide or to notify.
func (l CollisionLayer) FilterMask() uint32 {
	return l.CollidesWith | l.NotifiesOn
}

// Notifies reports whether a contact between a and b should raise an event.
func Notifies(a, b CollisionLayer) bool {
	return a.NotifiesOn&b.Category != 0 || b.NotifiesOn&a.Category != 0
}
