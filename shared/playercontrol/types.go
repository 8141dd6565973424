// Package playercontrol implements the player's movement/action state machine.
// It has no dependencies on ebitengine, donburi, or resolv: the host drives it
// through two ports (OnFrame for input samples, OnTick for fixed simulation
// steps) and supplies physics, ground queries and event delivery as
// collaborators.
package playercontrol

import (
	"errors"
	"time"
)

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// SoundID identifies an audio cue emitted through the EventSink.
type SoundID string

const (
	SoundJump  SoundID = "PlayerJump"
	SoundShoot SoundID = "PlayerShoot"
	SoundHurt  SoundID = "PlayerHurt"
)

// State is the controller's active behaviour.
type State int

const (
	Uncontrollable State = iota
	Controllable
	GettingDamaged
	Dying
	stateCount
)

func (s State) String() string {
	switch s {
	case Uncontrollable:
		return "Uncontrollable"
	case Controllable:
		return "Controllable"
	case GettingDamaged:
		return "GettingDamaged"
	case Dying:
		return "Dying"
	}
	return "Unknown"
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= Uncontrollable && s < stateCount
}

// Intent is the per-frame snapshot of input translated into requests.
type Intent struct {
	Horizontal   int // -1, 0 or 1
	JumpPressed  bool
	JumpReleased bool
	ShootHeld    bool
}

// Body is the physics body owned by the host physics engine.
type Body interface {
	Velocity() Vec
	SetVelocity(v Vec)
	ApplyForce(f Vec)
	// SetKinematic takes the body out of the physics response when true.
	SetKinematic(kinematic bool)
}

// GroundSensor answers whether the feet touch a standable surface.
type GroundSensor interface {
	IsTouchingGround() bool
}

// Positioner reports the body's world position.
type Positioner interface {
	Position() Vec
}

// EventSink receives fire-and-forget notifications.
type EventSink interface {
	PlaySound(id SoundID)
	SpawnProjectile(position, velocity Vec)
	RequestLevelRestart()
}

// Clock is the host's monotonic clock.
type Clock interface {
	Now() time.Duration
}

// Deps bundles the collaborators the controller cannot run without.
type Deps struct {
	Body     Body
	Ground   GroundSensor
	Position Positioner
	Events   EventSink
	Clock    Clock
}

var (
	ErrMissingCollaborator = errors.New("playercontrol: missing collaborator")
	ErrMissingBody         = errors.New("physics body")
	ErrMissingGroundSensor = errors.New("ground sensor")
	ErrMissingPositioner   = errors.New("positioner")
	ErrMissingEventSink    = errors.New("event sink")
	ErrMissingClock        = errors.New("clock")

	ErrInvalidConfig = errors.New("playercontrol: invalid config")
	ErrUnknownState  = errors.New("playercontrol: unknown state")
	ErrTerminal      = errors.New("playercontrol: controller is dying")
)
