package character

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
)

// Options wires the controller to its collaborators. Only the body passed to
// New is mandatory; nil collaborators degrade to no-ops and a nil Ground
// reports not grounded.
type Options struct {
	Settings Settings
	Ground   GroundQuery
	Animator Animator
	Audio    Audio
	Level    Level
	Wallet   Wallet
	Launcher Launcher
	Debug    bool
}

// Tick is the context for one controller step.
type Tick struct {
	DT     float64
	Paused bool
	Input  Snapshot
}

// Controller is the character state machine together with its timers and
// capability flags.
type Controller struct {
	body     Body
	ground   GroundQuery
	anim     Animator
	audio    Audio
	level    Level
	wallet   Wallet
	launcher Launcher
	settings Settings
	debug    bool

	state    StateID
	hasState bool
	sub      SubStateID

	coyote       Window
	jumpBuffer   Window
	jumpConsumed bool
	knockback    Window
	invincible   Invincibility
	caps         Capabilities

	health int
	facing float64
	warped bool

	attackRemaining float64
	throwCooldown   float64

	input  Snapshot
	dt     float64
	paused bool
}

// New builds a controller in Idle. It fails when body is nil or the settings
// do not validate.
func New(body Body, opts Options) (*Controller, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("character: new: %w", err)
	}

	c := &Controller{
		body:     body,
		ground:   opts.Ground,
		anim:     opts.Animator,
		audio:    opts.Audio,
		level:    opts.Level,
		wallet:   opts.Wallet,
		launcher: opts.Launcher,
		settings: opts.Settings,
		debug:    opts.Debug,
	}
	if c.anim == nil {
		c.anim = nopAnimator{}
	}
	if c.audio == nil {
		c.audio = nopAudio{}
	}
	if c.level == nil {
		c.level = nopLevel{}
	}
	c.Reset()
	return c, nil
}

// Reset reinitializes the controller as if freshly spawned.
func (c *Controller) Reset() {
	if c.hasState {
		c.ChangeSubState(SubStateNone)
	}
	c.sub = SubStateNone
	c.coyote = Window{Duration: c.settings.CoyoteTime}
	c.jumpBuffer = Window{Duration: c.settings.JumpBufferTime}
	c.knockback = Window{Duration: c.settings.KnockbackDuration}
	c.jumpConsumed = false
	c.invincible = Invincibility{}
	c.caps = Capabilities{}
	c.health = c.settings.MaxHealth
	c.facing = 1
	c.warped = false
	c.attackRemaining = 0
	c.throwCooldown = 0
	c.input = Snapshot{}
	c.paused = false
	c.ChangeState(StateIdle)
}

// SetSettings swaps the tuning in place. Running timers keep their remaining
// time and pick up the new durations on their next refresh.
func (c *Controller) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	c.coyote.Duration = s.CoyoteTime
	c.jumpBuffer.Duration = s.JumpBufferTime
	c.knockback.Duration = s.KnockbackDuration
	if c.health > s.MaxHealth {
		c.health = s.MaxHealth
	}
	return nil
}

// Tick advances the controller by one fixed step.
func (c *Controller) Tick(t Tick) {
	c.input = t.Input
	c.dt = t.DT
	c.paused = t.Paused

	if c.outOfBounds() {
		c.level.RestartLevel("out of bounds")
		return
	}
	if c.paused {
		return
	}

	c.updateFacing()
	c.invincible.Tick(c.dt)
	c.updateKnockback()
	if c.throwCooldown > 0 {
		c.throwCooldown -= c.dt
	}

	stateTable[c.state].update(c)
	stateTable[c.state].handleInput(c)

	c.updateWindows()
}

// ChangeState exits the current state and enters next. Re-entering the
// current state runs both hooks again. Invalid ids are ignored.
func (c *Controller) ChangeState(next StateID) {
	if !next.Valid() {
		return
	}
	prev := c.state
	if c.hasState {
		stateTable[prev].exit(c)
	}
	c.state = next
	c.hasState = true
	if c.debug {
		log.Printf("character: %s -> %s", prev, next)
	}
	stateTable[next].enter(c)
}

// CanJump reports whether both the coyote and jump buffer windows are open.
func (c *Controller) CanJump() bool {
	return c.coyote.Open() && c.jumpBuffer.Open()
}

// Launch applies an environmental impulse. Until the character lands again,
// air control may not reduce the resulting speed.
func (c *Controller) Launch(impulse cp.Vector) {
	c.body.ApplyImpulse(impulse)
	c.warped = true
}

func (c *Controller) GrantGlideItem()    { c.caps.GrantGlideItem() }
func (c *Controller) SetCanGlide(v bool) { c.caps.SetCanGlide(v) }
func (c *Controller) CanGlide() bool     { return c.caps.CanGlide() }
func (c *Controller) HasGlideItem() bool { return c.caps.HasGlideItem() }
func (c *Controller) Knockback() bool    { return c.caps.Knockback() }

func (c *Controller) State() StateID               { return c.state }
func (c *Controller) SubState() SubStateID         { return c.sub }
func (c *Controller) Settings() Settings           { return c.settings }
func (c *Controller) Health() int                  { return c.health }
func (c *Controller) Invincible() bool             { return c.invincible.Active }
func (c *Controller) Warped() bool                 { return c.warped }
func (c *Controller) CoyoteRemaining() float64     { return c.coyote.Remaining }
func (c *Controller) JumpBufferRemaining() float64 { return c.jumpBuffer.Remaining }

// Facing is +1 when facing right and -1 when facing left.
func (c *Controller) Facing() float64 { return c.facing }

// Grounded reports the ground probe, which is always false while paused.
func (c *Controller) Grounded() bool {
	if c.paused || c.ground == nil {
		return false
	}
	return c.ground.Grounded()
}

func (c *Controller) String() string {
	v := c.body.Velocity()
	return fmt.Sprintf("state=%s/%s sub=%s grounded=%t vel=(%.2f,%.2f) coyote=%.3f buffer=%.3f glide=%t/%t knockback=%t invincible=%t health=%d",
		c.state.Family(), c.state, c.sub, c.Grounded(), v.X, v.Y,
		c.coyote.Remaining, c.jumpBuffer.Remaining,
		c.caps.HasGlideItem(), c.caps.CanGlide(),
		c.caps.Knockback(), c.invincible.Active, c.health)
}

func (c *Controller) outOfBounds() bool {
	v := c.body.Velocity()
	return v.Y < c.body.Gravity().Y && c.body.Position().Y < c.settings.KillPlaneY
}

func (c *Controller) updateFacing() {
	switch {
	case c.input.Move.X > 0:
		c.facing = 1
	case c.input.Move.X < 0:
		c.facing = -1
	}
}

func (c *Controller) updateKnockback() {
	if !c.caps.Knockback() {
		return
	}
	c.knockback.Decay(c.dt)
	if !c.knockback.Open() {
		c.caps.setKnockback(false)
	}
}

// updateWindows runs last in the tick. A jump taken this tick leaves both
// windows at zero until the next tick.
func (c *Controller) updateWindows() {
	if c.jumpConsumed {
		c.jumpConsumed = false
		return
	}
	c.coyote.Tick(c.dt, c.Grounded())
	c.jumpBuffer.Tick(c.dt, c.input.JumpPressed)
}

func (c *Controller) consumeJump() {
	c.coyote.Consume()
	c.jumpBuffer.Consume()
	c.jumpConsumed = true
}

func (c *Controller) crouchIntent() bool {
	return c.input.Crouch && c.Grounded()
}

func (c *Controller) falling() bool {
	return c.body.Velocity().Y < -c.settings.FallThreshold && !c.Grounded()
}

func (c *Controller) speed() float64 {
	s := c.input.Move.X * c.settings.MoveSpeed
	if c.input.Running() {
		s *= c.settings.RunMultiplier
	}
	return s
}

func (c *Controller) setHorizontal(vx float64) {
	v := c.body.Velocity()
	c.body.SetVelocity(cp.Vector{X: vx, Y: v.Y})
}

func (c *Controller) clampSpeed() {
	v := c.body.Velocity()
	if v.Length() > c.settings.MaxVelocity {
		c.body.SetVelocity(v.Clamp(c.settings.MaxVelocity))
	}
}
