package system

import (
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/maze"
)

const (
	// EventContact carries a ContactEvent raised during the physics step.
	EventContact = "contact"
	// EventTweenDone carries a TweenDoneEvent once a sequence finishes.
	EventTweenDone = "tween_done"
)

// ContactEvent reports the player touching an entity whose collision
// layers ask for contact notification.
type ContactEvent struct {
	Player ecs.Entity
	Other  ecs.Entity
}

type TweenDoneEvent struct {
	Entity ecs.Entity
	Task   maze.TaskID
}
