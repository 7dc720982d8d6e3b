package component

// Spin rotates an entity at a constant rate forever.
type Spin struct {
	RadiansPerSecond float64
}

var SpinComponent = NewComponent[Spin]()
