package system

import (
	"github.com/milk9111/tiltmaze/ecs"
	log "github.com/sirupsen/logrus"
)

// maxDispatchRounds bounds handlers that keep pushing events.
const maxDispatchRounds = 8

// EventDispatchSystem drains the world event queue and hands each event to
// the handlers registered for its type. Register it after every system
// that pushes events.
type EventDispatchSystem struct {
	handlers map[string][]func(ecs.Event)
}

func NewEventDispatchSystem() *EventDispatchSystem {
	return &EventDispatchSystem{handlers: make(map[string][]func(ecs.Event))}
}

// On registers fn for events of the given type.
func (s *EventDispatchSystem) On(eventType string, fn func(ecs.Event)) {
	if s == nil || fn == nil {
		return
	}
	s.handlers[eventType] = append(s.handlers[eventType], fn)
}

func (s *EventDispatchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for round := 0; round < maxDispatchRounds; round++ {
		events := w.Events().Drain()
		if len(events) == 0 {
			return
		}
		for _, evt := range events {
			hs := s.handlers[evt.Type]
			if len(hs) == 0 {
				log.WithField("type", evt.Type).Debug("event without handler")
				continue
			}
			for _, h := range hs {
				h(evt)
			}
		}
	}
	log.WithField("pending", w.Events().Len()).Warn("event dispatch did not settle")
}
