package component

import "github.com/milk9111/tiltmaze/maze"

// Role tags an entity with its gameplay role.
type Role struct {
	Kind maze.Role
}

var RoleComponent = NewComponent[Role]()
