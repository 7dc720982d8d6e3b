package maze

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Controller is the screen controller for one attempt at a level. It owns
// the Session and drives the host through the loader, the resolver and the
// steering mapper.
type Controller struct {
	host     Host
	cfg      Config
	mode     Mode
	session  Session
	resolver *Resolver
}

func NewController(host Host, cfg Config, mode Mode, level int, rng *rand.Rand) *Controller {
	return &Controller{
		host:     host,
		cfg:      cfg,
		mode:     mode,
		session:  NewSession(level),
		resolver: NewResolver(host, cfg, rng),
	}
}

// Load places every entity of layout, records its free cells, spawns the
// player and starts listening for contacts. It returns the number of placed
// entities.
func (c *Controller) Load(layout *Layout) int {
	placed := 0
	c.session.Free = c.session.Free[:0]
	if layout != nil {
		for _, p := range layout.Placements {
			c.host.Place(p)
			placed++
		}
		c.session.Free = append(c.session.Free, layout.Free...)
	}

	c.session.Player = c.host.SpawnPlayer(c.cfg.Start)
	c.host.ShowScore(c.session.Score)
	c.host.Subscribe(c.Resolve)

	log.WithFields(log.Fields{
		"level":  c.session.Level,
		"placed": placed,
		"free":   len(c.session.Free),
	}).Info("maze: level loaded")
	return placed
}

// Resolve forwards a contact to the resolver.
func (c *Controller) Resolve(ct Contact) {
	c.resolver.Resolve(&c.session, ct)
}

// SetTouch records the pointer position used in pointer mode. nil clears it.
func (c *Controller) SetTouch(p *Vec) {
	if p == nil {
		c.session.Touch = nil
		return
	}
	v := *p
	c.session.Touch = &v
}

// Steer computes this frame's gravity. tilt is nil when the sensor has no
// sample.
func (c *Controller) Steer(tilt *Sample) (Vec, bool) {
	if c.session.GameOver || !c.host.Alive(c.session.Player) {
		return Vec{}, false
	}
	return Gravity(c.session, c.cfg, c.mode, c.host.Position(c.session.Player), tilt)
}

// Session returns a copy of the current state.
func (c *Controller) Session() Session {
	s := c.session
	s.Free = append([]Vec(nil), c.session.Free...)
	return s
}

func (c *Controller) Mode() Mode { return c.mode }

// Busy reports whether an animation task is in flight.
func (c *Controller) Busy() bool { return c.resolver.Busy() }
