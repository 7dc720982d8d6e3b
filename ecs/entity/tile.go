package entity

import (
	"fmt"

	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/maze"
)

var tilePrefabs = map[maze.Role]string{
	maze.RoleWall:       "wall.yaml",
	maze.RoleStar:       "star.yaml",
	maze.RoleVortex:     "vortex.yaml",
	maze.RoleFinish:     "finish.yaml",
	maze.RoleTeleporter: "teleporter.yaml",
}

// PrefabFor returns the prefab file that builds role.
func PrefabFor(role maze.Role) (string, bool) {
	if role == maze.RolePlayer {
		return "player.yaml", true
	}
	name, ok := tilePrefabs[role]
	return name, ok
}

// NewTileAt builds the level entity for role centered on pos.
func NewTileAt(w *ecs.World, role maze.Role, pos maze.Vec) (ecs.Entity, error) {
	name, ok := tilePrefabs[role]
	if !ok {
		return 0, fmt.Errorf("tile: no prefab for role %s", role)
	}
	e, err := BuildEntity(w, name)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos.X, pos.Y, 0); err != nil {
		return 0, fmt.Errorf("tile: override transform: %w", err)
	}
	return e, nil
}
