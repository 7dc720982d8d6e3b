package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"github.com/milk9111/tiltmaze/maze"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeSensor
)

type PhysicsSystem struct {
	space          *cp.Space
	handlersReady  bool
	pixelsPerMeter float64

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	pending  []ContactEvent
}

type bodyInfo struct {
	body    *cp.Body
	shape   *cp.Shape
	layer   component.CollisionLayer
	static  bool
	player  bool
	pinned  bool
	damping float64
}

// NewPhysicsSystem creates a physics system. Gravity set through SetGravity
// is given in meters per second squared and scaled by pixelsPerMeter.
func NewPhysicsSystem(pixelsPerMeter float64) *PhysicsSystem {
	if pixelsPerMeter <= 0 {
		pixelsPerMeter = common.PixelsPerMeter
	}
	return &PhysicsSystem{
		space:          newSpace(),
		pixelsPerMeter: pixelsPerMeter,
		entities:       make(map[ecs.Entity]*bodyInfo),
		shapes:         make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity replaces the world gravity.
func (ps *PhysicsSystem) SetGravity(g maze.Vec) {
	if ps == nil || ps.space == nil {
		return
	}
	ps.space.SetGravity(cp.Vector{X: g.X * ps.pixelsPerMeter, Y: g.Y * ps.pixelsPerMeter})
}

// Gravity returns the current gravity in meters per second squared.
func (ps *PhysicsSystem) Gravity() maze.Vec {
	if ps == nil || ps.space == nil {
		return maze.Vec{}
	}
	g := ps.space.Gravity()
	return maze.Vec{X: g.X / ps.pixelsPerMeter, Y: g.Y / ps.pixelsPerMeter}
}

// StopMotion zeroes the linear and angular velocity of e's body.
func (ps *PhysicsSystem) StopMotion(e ecs.Entity) {
	if ps == nil {
		return
	}
	info := ps.entities[e]
	if info == nil || info.static || info.body == nil {
		return
	}
	info.body.SetVelocityVector(cp.Vector{})
	info.body.SetAngularVelocity(0)
}

// Velocity returns the velocity of e's body in pixels per second.
func (ps *PhysicsSystem) Velocity(e ecs.Entity) (maze.Vec, bool) {
	if ps == nil {
		return maze.Vec{}, false
	}
	info := ps.entities[e]
	if info == nil || info.static || info.body == nil {
		return maze.Vec{}, false
	}
	v := info.body.Velocity()
	return maze.Vec{X: v.X, Y: v.Y}, true
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.pending = ps.pending[:0]
	ps.space.Step(common.FrameSeconds)

	ps.syncTransforms(w)
	for _, c := range ps.pending {
		w.Events().Push(ecs.Event{Type: EventContact, Data: c})
	}
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewWildcardCollisionHandler(collisionTypePlayer)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapes[shapeA]
		b, okB := sys.shapes[shapeB]
		if !okA || !okB {
			return true
		}
		ia, ib := sys.entities[a], sys.entities[b]
		if ia == nil || ib == nil {
			return true
		}
		if !ia.player {
			a, b = b, a
			ia, ib = ib, ia
		}
		if !ia.player {
			return true
		}
		if !contacts(ia.layer, ib.layer) {
			return true
		}
		sys.pending = append(sys.pending, ContactEvent{Player: a, Other: b})
		return true
	}

	ps.handlersReady = true
}

func contacts(a, b component.CollisionLayer) bool {
	return a.Category&b.Contact != 0 || b.Category&a.Contact != 0
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info == nil {
			layer := component.CollisionLayer{Category: uint32(maze.CategoryAll), Collide: uint32(maze.CategoryAll)}
			if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
				layer = *l
			}
			info = ps.createBodyInfo(*transform, *bodyComp, layer, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
			if info == nil || info.shape == nil {
				continue
			}
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		if info.static {
			continue
		}

		held := false
		if tw, ok := ecs.Get(w, e, component.TweenComponent.Kind()); ok && tw.Hold {
			held = true
		}
		released := info.pinned && !(bodyComp.Frozen || held)
		info.pinned = bodyComp.Frozen || held
		if info.pinned || released {
			info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			info.body.SetVelocityVector(cp.Vector{})
			info.body.SetAngularVelocity(0)
		}
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, layer component.CollisionLayer, isPlayer bool) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius

	if radius <= 0 && (width <= 0 || height <= 0) {
		width = maze.CellSize
		height = maze.CellSize
	}

	info := &bodyInfo{
		layer:   layer,
		static:  bodyComp.Static,
		player:  isPlayer,
		damping: bodyComp.LinearDamping,
	}

	if bodyComp.Static {
		var shape *cp.Shape
		center := cp.Vector{X: transform.X, Y: transform.Y}
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		ps.configureShape(shape, bodyComp, layer, isPlayer)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	var moment float64
	switch {
	case bodyComp.FixedRotation:
		moment = math.Inf(1)
	case radius > 0:
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	default:
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, _ float64, dt float64) {
		if info.pinned {
			b.SetVelocityVector(cp.Vector{})
			b.SetAngularVelocity(0)
			return
		}
		cp.BodyUpdateVelocity(b, gravity, math.Exp(-info.damping*dt), dt)
	})

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	ps.configureShape(shape, bodyComp, layer, isPlayer)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, bodyComp component.PhysicsBody, layer component.CollisionLayer, isPlayer bool) {
	collider := maze.Collider{
		Category: maze.Category(layer.Category),
		Contact:  maze.Category(layer.Contact),
		Collide:  maze.Category(layer.Collide),
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(collider.Category),
		Mask:       uint(collider.Mask()),
	})
	switch {
	case isPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case collider.Sensor():
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	if w == nil {
		return
	}
	for e, info := range ps.entities {
		if info.static || info.pinned || info.body == nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.Remove(e)
	}
}

// Remove detaches e's body and shape immediately instead of waiting for
// the next sync.
func (ps *PhysicsSystem) Remove(e ecs.Entity) {
	if ps == nil {
		return
	}
	info := ps.entities[e]
	if info == nil {
		return
	}
	if info.shape != nil && ps.space != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	if info.body != nil && !info.static && ps.space != nil {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
}
