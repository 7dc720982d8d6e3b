package component

import (
	"github.com/milk9111/tiltmaze/maze"
	"github.com/tanema/gween"
)

// Tween runs a sequence of move/scale/fade steps against an entity's
// Transform and Sprite. The tween system advances one step at a time and
// emits a completion event carrying Task when the last step finishes.
type Tween struct {
	Task  maze.TaskID
	Steps maze.Sequence
	Index int

	// Hold pins the physics body to the Transform while the tween runs.
	Hold bool

	X       *gween.Tween
	Y       *gween.Tween
	Value   *gween.Tween
	Started bool
}

var TweenComponent = NewComponent[Tween]()
