package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// A body with Radius > 0 gets a circle shape, otherwise a Width x Height box.
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
	// Frozen bodies ignore gravity and keep zero velocity.
	Frozen bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
