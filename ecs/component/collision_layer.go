package component

// CollisionLayer declares which categories an entity belongs to, which
// categories raise contact events against it, and which it physically
// collides with. An entity with Collide == 0 is a sensor.
type CollisionLayer struct {
	Category uint32 `yaml:"category"`
	Contact  uint32 `yaml:"contact"`
	Collide  uint32 `yaml:"collide"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
