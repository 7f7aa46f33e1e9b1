package physics

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/flap/internal/core"
)

// Space is a World backed by a Chipmunk2D space.
type Space struct {
	space    *cp.Space
	contacts []Contact
	logger   *log.Logger
}

// NewSpace creates a space with vertical gravity (negative is down).
// A nil logger discards output.
func NewSpace(gravity float64, logger *log.Logger) *Space {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Space{
		space:    cp.NewSpace(),
		contacts: make([]Contact, 0, 8),
		logger:   logger,
	}
	s.space.SetGravity(cp.Vector{X: 0, Y: gravity})

	// Every contact the game cares about involves the player, so a single
	// wildcard handler on its collision type sees all of them.
	handler := s.space.NewWildcardCollisionHandler(collisionType(KindPlayer))
	handler.UserData = s
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		userData.(*Space).record(Began, arb)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
		userData.(*Space).record(Ended, arb)
	}
	return s
}

func collisionType(k Kind) cp.CollisionType {
	return cp.CollisionType(k)
}

// record appends a contact for the arbiter's two shapes.
func (s *Space) record(phase ContactPhase, arb *cp.Arbiter) {
	a, b := arb.Shapes()
	ta, okA := a.UserData.(Tag)
	tb, okB := b.UserData.(Tag)
	if !okA || !okB {
		s.logger.Warn("contact on untagged shape", "phase", phase)
		return
	}
	s.contacts = append(s.contacts, Contact{Phase: phase, A: ta, B: tb})
}

// Spawn adds a body with its colliders to the space.
func (s *Space) Spawn(def BodyDef) Body {
	var cb *cp.Body
	if def.Dynamic {
		cb = cp.NewBody(def.Mass, math.Inf(1))
	} else {
		cb = cp.NewKinematicBody()
	}
	cb.SetPosition(vec(def.Position))
	s.space.AddBody(cb)

	b := &body{entity: def.Entity, body: cb, shapes: make([]*cp.Shape, 0, len(def.Colliders))}
	cb.UserData = def.Entity

	for _, c := range def.Colliders {
		var shape *cp.Shape
		if c.Radius > 0 {
			shape = cp.NewCircle(cb, c.Radius, vec(c.Offset))
		} else {
			hw, hh := c.Size.X/2, c.Size.Y/2
			shape = cp.NewBox2(cb, cp.BB{
				L: c.Offset.X - hw,
				B: c.Offset.Y - hh,
				R: c.Offset.X + hw,
				T: c.Offset.Y + hh,
			}, 0)
		}
		shape.SetSensor(c.Sensor)
		shape.SetFriction(c.Friction)
		shape.SetCollisionType(collisionType(c.Kind))
		if def.Mass > 0 {
			shape.SetMass(def.Mass / float64(len(def.Colliders)))
		}
		shape.UserData = Tag{Entity: def.Entity, Kind: c.Kind, Sensor: c.Sensor}
		s.space.AddShape(shape)
		b.shapes = append(b.shapes, shape)
	}
	if def.Dynamic {
		// Rotation is cosmetic and driven by the controller, never by contacts.
		cb.SetMoment(math.Inf(1))
	}

	s.logger.Debug("spawned body", "entity", def.Entity, "dynamic", def.Dynamic, "colliders", len(def.Colliders))
	return b
}

// Despawn removes a body and its colliders. Removing a body that touches
// another may record an Ended contact.
func (s *Space) Despawn(h Body) {
	b, ok := h.(*body)
	if !ok || b.removed {
		return
	}
	for _, shape := range b.shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(b.body)
	b.removed = true
}

// Step integrates the space by dt seconds.
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}

// Drain appends pending contacts to dst and empties the buffer.
func (s *Space) Drain(dst []Contact) []Contact {
	dst = append(dst, s.contacts...)
	s.contacts = s.contacts[:0]
	return dst
}

// Clear drops pending contacts.
func (s *Space) Clear() {
	s.contacts = s.contacts[:0]
}

func vec(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// body adapts a cp.Body to the Body interface.
type body struct {
	entity  EntityID
	body    *cp.Body
	shapes  []*cp.Shape
	removed bool
}

func (b *body) Entity() EntityID { return b.entity }

func (b *body) Position() core.Vec2 {
	p := b.body.Position()
	return core.Vec2{X: p.X, Y: p.Y}
}

func (b *body) SetPosition(p core.Vec2) {
	b.body.SetPosition(vec(p))
}

func (b *body) Velocity() core.Vec2 {
	v := b.body.Velocity()
	return core.Vec2{X: v.X, Y: v.Y}
}

func (b *body) SetVelocity(v core.Vec2) {
	b.body.SetVelocity(v.X, v.Y)
}

func (b *body) ApplyImpulse(j core.Vec2) {
	if !b.Dynamic() {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(vec(j), b.body.Position())
}

func (b *body) Dynamic() bool {
	return b.body.GetType() == cp.BODY_DYNAMIC
}

func (b *body) MakeDynamic() {
	if b.Dynamic() {
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.body.SetMoment(math.Inf(1))
}
