package character

import "github.com/jakecoffman/cp"

// Body is the rigid body the controller drives. Positive Y points up.
type Body interface {
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	Position() cp.Vector
	ApplyImpulse(j cp.Vector)
	Gravity() cp.Vector
}

// GroundQuery reports whether the ground probe touches ground geometry.
type GroundQuery interface {
	Grounded() bool
}

// GroundFunc adapts a function to GroundQuery.
type GroundFunc func() bool

func (f GroundFunc) Grounded() bool { return f() }

// Animator receives animation booleans.
type Animator interface {
	SetBool(name string, value bool)
}

// Animation parameter names.
const (
	AnimWalking   = "Walking"
	AnimRunning   = "Running"
	AnimCrouching = "Crouching"
	AnimJumping   = "Jumping"
	AnimFalling   = "Falling"
	AnimGliding   = "Gliding"
	AnimAttacking = "Attacking"
)

// Cue names a sound effect.
type Cue string

const (
	CueJump   Cue = "jump"
	CueGlide  Cue = "glide"
	CueHurt   Cue = "hurt"
	CueAttack Cue = "attack"
	CuePickup Cue = "pickup"
)

// Audio triggers sound effects.
type Audio interface {
	Play(cue Cue)
	Stop(cue Cue)
}

// Level restarts the current level session.
type Level interface {
	RestartLevel(reason string)
}

// Wallet is the currency the character loses when hurt.
type Wallet interface {
	Currency() int
	Remove(amount int)
}

// Launcher spawns a projectile at origin moving with velocity.
type Launcher interface {
	Launch(origin, velocity cp.Vector)
}

// DamageSource describes what hurt the character.
type DamageSource struct {
	Name string
	// DropPercentage is the share of the wallet lost, in percent.
	DropPercentage float64
}

// DamageSink receives damage from collision handlers.
type DamageSink interface {
	OnDamaged(amount int, src DamageSource)
}

type nopAnimator struct{}

func (nopAnimator) SetBool(string, bool) {}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}
func (nopAudio) Stop(Cue) {}

type nopLevel struct{}

func (nopLevel) RestartLevel(string) {}
