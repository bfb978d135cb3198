package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/marblemaze/ecs"
	"github.com/milk9111/marblemaze/ecs/component"
)

// StepSeconds is the fixed physics step, one ebiten tick.
const StepSeconds = 1.0 / 60.0

// DefaultPixelsPerMeter converts gravity from m/s² to scene units/s².
const DefaultPixelsPerMeter = 150.0

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it and queues avatar contacts on the world's event queue.
type PhysicsSystem struct {
	space          *cp.Space
	handlersReady  bool
	gravity        cp.Vector
	pixelsPerMeter float64
	logger         *log.Logger

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity

	// pending is filled by collision callbacks while the space is locked.
	pending []ecs.ContactEvent
}

type bodyInfo struct {
	body    *cp.Body
	shape   *cp.Shape
	static  bool
	inSpace bool
}

func NewPhysicsSystem(pixelsPerMeter float64) *PhysicsSystem {
	if pixelsPerMeter <= 0 {
		pixelsPerMeter = DefaultPixelsPerMeter
	}
	space := cp.NewSpace()
	space.Iterations = 20
	return &PhysicsSystem{
		space:          space,
		pixelsPerMeter: pixelsPerMeter,
		logger:         log.WithPrefix("physics"),
		entities:       make(map[ecs.Entity]*bodyInfo),
		shapes:         make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity sets the gravity for the following steps, in m/s².
func (ps *PhysicsSystem) SetGravity(g cp.Vector) {
	if ps == nil {
		return
	}
	ps.gravity = g
	ps.space.SetGravity(g.Mult(ps.pixelsPerMeter))
}

func (ps *PhysicsSystem) Gravity() cp.Vector {
	if ps == nil {
		return cp.Vector{}
	}
	return ps.gravity
}

// BodyCount reports how many entities currently have a shape in the space.
func (ps *PhysicsSystem) BodyCount() int {
	n := 0
	for _, info := range ps.entities {
		if info.inSpace {
			n++
		}
	}
	return n
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.pending = ps.pending[:0]
	ps.space.Step(StepSeconds)

	ps.syncTransforms(w)
	for _, evt := range ps.pending {
		w.Events().Push(evt)
	}
}

func collisionTypeFor(tag component.BodyTag) cp.CollisionType {
	return cp.CollisionType(tag)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	for _, tag := range []component.BodyTag{component.TagHazard, component.TagPickup, component.TagGoal} {
		avatar := component.CollisionPolicy(component.TagAvatar)
		if !component.Notifies(avatar, component.CollisionPolicy(tag)) {
			continue
		}
		handler := ps.space.NewCollisionHandler(collisionTypeFor(component.TagAvatar), collisionTypeFor(tag))
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
			sys.pending = append(sys.pending, ecs.ContactEvent{A: a, B: b})
			return true
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(w, e, transform, bodyComp)
			if info == nil {
				return
			}
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		switch {
		case bodyComp.Disabled && info.inSpace:
			ps.detach(info)
		case !bodyComp.Disabled && !info.inSpace:
			ps.attach(info)
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		ps.logger.Warn("body has no size", "entity", e)
		return nil
	}

	center := cp.Vector{X: transform.X, Y: transform.Y}
	info := &bodyInfo{static: bodyComp.Static}

	var shape *cp.Shape
	if bodyComp.Static {
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		info.body = ps.space.StaticBody
	} else {
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
		body.SetPosition(center)
		body.SetAngle(transform.Rotation)
		if damping := bodyComp.LinearDamping; damping > 0 {
			body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, spaceDamping, dt float64) {
				cp.BodyUpdateVelocity(b, gravity, spaceDamping*math.Max(0, 1-damping*dt), dt)
			})
		}

		if radius > 0 {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, height, 0)
		}
		info.body = body
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)

	if tag, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		shape.SetCollisionType(collisionTypeFor(tag.Tag))
	}
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Category), uint(layer.FilterMask())))
		shape.SetSensor(layer.Sensor())
	}

	info.shape = shape
	return info
}

func (ps *PhysicsSystem) attach(info *bodyInfo) {
	if !info.static {
		ps.space.AddBody(info.body)
	}
	ps.space.AddShape(info.shape)
	info.inSpace = true
}

func (ps *PhysicsSystem) detach(info *bodyInfo) {
	ps.space.RemoveShape(info.shape)
	if !info.static {
		ps.space.RemoveBody(info.body)
	}
	info.inSpace = false
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static || bodyComp.Disabled {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

// cleanupEntities drops bodies whose entity died or lost its PhysicsBody.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.inSpace {
			ps.detach(info)
		}
		delete(ps.shapes, info.shape)
		delete(ps.entities, e)
	}
}
