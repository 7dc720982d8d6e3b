package maze

import (
	"fmt"
	"strings"
)

// Role identifies what an entity is for contact resolution.
type Role int

const (
	RoleNone Role = iota
	RolePlayer
	RoleWall
	RoleStar
	RoleVortex
	RoleFinish
	RoleTeleporter
)

var roleNames = map[Role]string{
	RoleNone:       "none",
	RolePlayer:     "player",
	RoleWall:       "wall",
	RoleStar:       "star",
	RoleVortex:     "vortex",
	RoleFinish:     "finish",
	RoleTeleporter: "teleporter",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole maps a prefab role name back to a Role.
func ParseRole(name string) (Role, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == clean {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("maze: unknown role %q", name)
}

// Tile characters used by level files.
const (
	TileWall       = 'x'
	TileVortex     = 'v'
	TileStar       = 's'
	TileFinish     = 'f'
	TileTeleporter = 'g'
	TileFree       = ' '
)

// RoleForTile maps a level character to the role it places. The free tile
// maps to RoleNone. ok is false for characters the level format does not know.
func RoleForTile(ch rune) (role Role, ok bool) {
	switch ch {
	case TileWall:
		return RoleWall, true
	case TileVortex:
		return RoleVortex, true
	case TileStar:
		return RoleStar, true
	case TileFinish:
		return RoleFinish, true
	case TileTeleporter:
		return RoleTeleporter, true
	case TileFree:
		return RoleNone, true
	}
	return RoleNone, false
}
