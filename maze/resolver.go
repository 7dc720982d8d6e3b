package maze

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type taskKind int

const (
	taskDeath taskKind = iota + 1
	taskFinish
	taskTeleport
)

func (k taskKind) String() string {
	switch k {
	case taskDeath:
		return "death"
	case taskFinish:
		return "finish"
	case taskTeleport:
		return "teleport"
	}
	return "unknown"
}

type task struct {
	kind   taskKind
	handle Handle
}

// Resolver applies the effect of player contacts to a Session.
type Resolver struct {
	host  Host
	cfg   Config
	rng   *rand.Rand
	tasks map[TaskID]task
}

func NewResolver(host Host, cfg Config, rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Resolver{
		host:  host,
		cfg:   cfg,
		rng:   rng,
		tasks: make(map[TaskID]task),
	}
}

// Busy reports whether any in-flight animation task is running.
func (r *Resolver) Busy() bool {
	return len(r.tasks) > 0
}

func (r *Resolver) running(kind taskKind) bool {
	for _, t := range r.tasks {
		if t.kind == kind {
			return true
		}
	}
	return false
}

// Resolve handles one contact. Contacts are rejected while a death or finish
// animation runs, and a second teleporter contact is rejected while the
// first teleport is still moving the ball.
func (r *Resolver) Resolve(s *Session, c Contact) {
	if s == nil {
		return
	}
	fields := log.Fields{"role": c.Role, "score": s.Score, "level": s.Level}

	if c.Player != s.Player {
		log.WithFields(fields).Debug("maze: contact from stale player ignored")
		return
	}
	if !r.host.Alive(c.Other) {
		return
	}
	if s.GameOver {
		log.WithFields(fields).Debug("maze: contact rejected during game over")
		return
	}

	switch c.Role {
	case RoleVortex:
		r.die(s, c.Other)
	case RoleStar:
		r.host.Remove(c.Other)
		s.Score++
		r.host.ShowScore(s.Score)
	case RoleFinish:
		r.finish(s, c.Other)
	case RoleTeleporter:
		if r.running(taskTeleport) {
			log.WithFields(fields).Debug("maze: teleport already in flight")
			return
		}
		r.teleport(s)
	default:
		return
	}

	log.WithFields(log.Fields{"role": c.Role, "score": s.Score, "level": s.Level}).Debug("maze: contact resolved")
}

func (r *Resolver) die(s *Session, vortex Handle) {
	player := s.Player
	r.host.Freeze(player)
	s.GameOver = true
	s.Score--
	r.host.ShowScore(s.Score)

	seq := Sequence{
		Move(r.host.Position(vortex), r.cfg.DeathMove),
		ScaleTo(r.cfg.ShrinkScale, r.cfg.DeathShrink),
	}
	r.start(taskDeath, player, seq, func() {
		r.host.Remove(player)
		s.Player = r.host.SpawnPlayer(r.cfg.Start)
		s.GameOver = false
	})
}

func (r *Resolver) finish(s *Session, finish Handle) {
	player := s.Player
	r.host.Freeze(player)
	s.GameOver = true
	s.Level++

	seq := Sequence{
		Move(r.host.Position(finish), r.cfg.DeathMove),
		ScaleTo(r.cfg.ShrinkScale, r.cfg.DeathShrink),
	}
	r.start(taskFinish, player, seq, func() {
		r.host.Remove(player)
		r.host.ShowPrompt(Prompt{Score: s.Score, Level: s.Level})
	})
}

func (r *Resolver) teleport(s *Session) {
	r.host.StopMotion(s.Player)
	if len(s.Free) == 0 {
		return
	}

	dest := s.Free[r.rng.Intn(len(s.Free))]
	seq := Sequence{
		FadeTo(0, r.cfg.TeleportFadeOut),
		Move(dest, r.cfg.TeleportMove),
		FadeTo(1, r.cfg.TeleportFadeIn),
	}
	r.start(taskTeleport, s.Player, seq, nil)
}

func (r *Resolver) start(kind taskKind, h Handle, seq Sequence, done func()) {
	for id, t := range r.tasks {
		if t.handle == h {
			delete(r.tasks, id)
		}
	}

	var (
		id       TaskID
		finished bool
	)
	id = r.host.Animate(h, seq, func() {
		finished = true
		delete(r.tasks, id)
		if done != nil {
			done()
		}
	})
	if !finished {
		r.tasks[id] = task{kind: kind, handle: h}
	}
}
