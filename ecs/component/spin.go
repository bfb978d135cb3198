package component

// Spin rotates an entity's visual forever. It has no physical effect.
type Spin struct {
	RadiansPerSecond float64
}

var SpinComponent = NewComponent[Spin]()
