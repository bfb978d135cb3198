package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system once the body has been
// added to the space.
type PhysicsBody struct {
	Body          *cp.Body
	Shape         *cp.Shape
	Width         float64
	Height        float64
	Radius        float64
	Mass          float64
	Friction      float64
	Elasticity    float64
	LinearDamping float64
	Static        bool
	FixedRotation bool
	// Disabled keeps the collider out of the space without forgetting it.
	Disabled bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
