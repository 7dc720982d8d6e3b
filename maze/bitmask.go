package maze

// Category is a collision category bit.
type Category uint32

const (
	CategoryPlayer Category = 1 << iota
	CategoryWall
	CategoryStar
	CategoryVortex
	CategoryFinish
	CategoryTeleporter

	CategoryAll Category = ^Category(0)
)

// Collider is the bitmask triple attached to every physical entity.
//
// Category names what the entity is. Contact lists the categories whose
// overlap raises a contact callback. Collide lists the categories it
// physically responds to; a zero Collide makes the shape a sensor.
type Collider struct {
	Category Category
	Contact  Category
	Collide  Category
}

// ColliderFor returns the bitmasks for a role. Teleporters get their own
// category rather than sharing the vortex bit.
func ColliderFor(role Role) Collider {
	switch role {
	case RolePlayer:
		return Collider{
			Category: CategoryPlayer,
			Contact:  CategoryStar | CategoryVortex | CategoryFinish | CategoryTeleporter,
			Collide:  CategoryWall,
		}
	case RoleWall:
		return Collider{Category: CategoryWall, Collide: CategoryAll}
	case RoleStar:
		return Collider{Category: CategoryStar, Contact: CategoryPlayer}
	case RoleVortex:
		return Collider{Category: CategoryVortex, Contact: CategoryPlayer}
	case RoleFinish:
		return Collider{Category: CategoryFinish, Contact: CategoryPlayer}
	case RoleTeleporter:
		return Collider{Category: CategoryTeleporter, Contact: CategoryPlayer}
	}
	return Collider{}
}

// Sensor reports whether the shape should report overlaps without a
// physical response.
func (c Collider) Sensor() bool {
	return c.Collide == 0
}

// Mask is the union of categories this collider interacts with at all.
func (c Collider) Mask() Category {
	return c.Contact | c.Collide
}

// Contacts reports whether a pair raises a contact callback.
func (c Collider) Contacts(o Collider) bool {
	return c.Category&o.Contact != 0 || o.Category&c.Contact != 0
}

// Collides reports whether a pair responds physically. Both sides must
// accept the other.
func (c Collider) Collides(o Collider) bool {
	return c.Category&o.Collide != 0 && o.Category&c.Collide != 0
}
