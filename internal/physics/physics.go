// Package physics defines the rigid-body world the game drives and a
// Chipmunk2D-backed implementation of it.
//
// The game only needs a narrow slice of a physics engine: spawning bodies
// with tagged colliders, promoting a kinematic body to dynamic, reading and
// writing velocity, applying impulses, stepping, and draining the contact
// records produced by the step.
package physics

import "github.com/vovakirdan/flap/internal/core"

// EntityID identifies the game object owning a body.
type EntityID uint64

// Kind classifies a collider for contact handling.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindGround      // Solid ground tile
	KindGap         // Scoring sensor inside an obstacle opening
	KindBar         // Solid upper or lower obstacle bar
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGround:
		return "ground"
	case KindGap:
		return "gap"
	case KindBar:
		return "bar"
	default:
		return "unknown"
	}
}

// Collider describes one shape attached to a body. A positive Radius makes
// a circle, otherwise Size is the full width and height of a box.
type Collider struct {
	Kind   Kind
	Sensor   bool      // Sensors report contacts but exert no force
	Offset   core.Vec2 // Center relative to the body position
	Radius   float64
	Size     core.Vec2
	Friction float64 // Combined by product, so both sides need one to grip
}

// BodyDef describes a body to spawn.
type BodyDef struct {
	Entity    EntityID
	Dynamic   bool // Kinematic when false
	Position  core.Vec2
	Mass      float64 // Used once the body is dynamic
	Colliders []Collider
}

// Body is a handle to a spawned body.
type Body interface {
	Entity() EntityID
	Position() core.Vec2
	SetPosition(p core.Vec2)
	Velocity() core.Vec2
	SetVelocity(v core.Vec2)
	ApplyImpulse(j core.Vec2)
	Dynamic() bool
	// MakeDynamic promotes a kinematic body so gravity and impulses apply.
	MakeDynamic()
}

// Tag identifies one side of a contact.
type Tag struct {
	Entity EntityID
	Kind   Kind
	Sensor bool
}

// ContactPhase tells whether two colliders started or stopped touching.
type ContactPhase uint8

const (
	Began ContactPhase = iota
	Ended
)

// String returns the phase name used in logs.
func (p ContactPhase) String() string {
	if p == Began {
		return "began"
	}
	return "ended"
}

// Contact is a begin or end of contact between two colliders, recorded
// during a step. Side order is unspecified.
type Contact struct {
	Phase ContactPhase
	A, B  Tag
}

// Involving returns the side of kind k and the opposite side.
// ok is false when neither side has kind k.
func (c Contact) Involving(k Kind) (self, other Tag, ok bool) {
	switch {
	case c.A.Kind == k:
		return c.A, c.B, true
	case c.B.Kind == k:
		return c.B, c.A, true
	default:
		return Tag{}, Tag{}, false
	}
}

// World is the physics collaborator of the game loop.
type World interface {
	Spawn(def BodyDef) Body
	Despawn(b Body)
	// Step integrates the world by dt seconds and records contacts.
	Step(dt float64)
	// Drain appends the contacts recorded since the last drain to dst and
	// forgets them.
	Drain(dst []Contact) []Contact
	// Clear drops pending contacts without returning them.
	Clear()
}
