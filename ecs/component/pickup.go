package component

// Pickup is a collectible that is hidden, not destroyed, once taken so a
// restart can put it back.
type Pickup struct {
	Collected bool
}

var PickupComponent = NewComponent[Pickup]()
