package character

import "github.com/jakecoffman/cp"

// stateHooks is one row of the dispatch table.
type stateHooks struct {
	enter       func(c *Controller)
	exit        func(c *Controller)
	update      func(c *Controller)
	handleInput func(c *Controller)
}

var stateTable [stateCount]stateHooks

func init() {
	stateTable = [stateCount]stateHooks{
		StateIdle: grounded(stateHooks{
			handleInput: locomotionInput,
		}),
		StateWalking: grounded(stateHooks{
			enter:       func(c *Controller) { c.anim.SetBool(AnimWalking, true) },
			exit:        func(c *Controller) { c.anim.SetBool(AnimWalking, false) },
			handleInput: locomotionInput,
		}),
		StateRunning: grounded(stateHooks{
			enter:       func(c *Controller) { c.anim.SetBool(AnimRunning, true) },
			exit:        func(c *Controller) { c.anim.SetBool(AnimRunning, false) },
			handleInput: locomotionInput,
		}),
		StateCrouching: grounded(stateHooks{
			enter: func(c *Controller) { c.anim.SetBool(AnimCrouching, true) },
			exit:  func(c *Controller) { c.anim.SetBool(AnimCrouching, false) },
			update: func(c *Controller) {
				c.setHorizontal(c.input.Move.X * c.settings.MoveSpeed * c.settings.CrouchMultiplier)
			},
			handleInput: crouchingInput,
		}),
		StateJumping: airborne(stateHooks{
			enter:       jumpingEnter,
			exit:        jumpingExit,
			handleInput: jumpingInput,
		}),
		StateFalling: airborne(stateHooks{
			enter:       func(c *Controller) { c.anim.SetBool(AnimFalling, true) },
			exit:        func(c *Controller) { c.anim.SetBool(AnimFalling, false) },
			handleInput: fallingInput,
		}),
		StateParachuting: airborne(stateHooks{
			enter:       parachutingEnter,
			exit:        parachutingExit,
			update:      func(c *Controller) { c.applyGravityScale(c.settings.GlideGravity) },
			handleInput: parachutingInput,
		}),
	}
}

// grounded fills in the grounded-family defaults around the per-state hooks.
// A per-state update replaces the default horizontal movement.
func grounded(h stateHooks) stateHooks {
	enter, update, input := h.enter, h.update, h.handleInput
	if update == nil {
		update = func(c *Controller) { c.setHorizontal(c.speed()) }
	}
	return stateHooks{
		enter: func(c *Controller) {
			c.warped = false
			if enter != nil {
				enter(c)
			}
		},
		exit: orNop(h.exit),
		update: func(c *Controller) {
			if !c.caps.Knockback() {
				update(c)
			}
			c.updateSubState()
			if c.CanJump() {
				c.ChangeState(StateJumping)
			}
		},
		handleInput: func(c *Controller) {
			c.handleSubStateInput()
			if input != nil {
				input(c)
			}
		},
	}
}

// airborne fills in the airborne-family defaults. A per-state update replaces
// the default fall clamp; air control always runs.
func airborne(h stateHooks) stateHooks {
	clamp := h.update
	if clamp == nil {
		clamp = (*Controller).clampFall
	}
	input := orNop(h.handleInput)
	return stateHooks{
		enter: orNop(h.enter),
		exit:  orNop(h.exit),
		update: func(c *Controller) {
			c.airMove()
			clamp(c)
			c.updateSubState()
		},
		handleInput: func(c *Controller) {
			c.handleSubStateInput()
			input(c)
		},
	}
}

func orNop(f func(c *Controller)) func(c *Controller) {
	if f == nil {
		return func(*Controller) {}
	}
	return f
}

// groundedTransitions evaluates the exits shared by every grounded state and
// reports whether one was taken.
func groundedTransitions(c *Controller) bool {
	switch {
	case c.state != StateCrouching && c.crouchIntent():
		c.ChangeState(StateCrouching)
	case c.input.JumpPressed || c.CanJump():
		c.ChangeState(StateJumping)
	case c.falling():
		c.ChangeState(StateFalling)
	default:
		return false
	}
	return true
}

// locomotionState picks Idle, Walking or Running from the held input.
func locomotionState(c *Controller) StateID {
	switch {
	case !c.input.Moving():
		return StateIdle
	case c.input.Running():
		return StateRunning
	}
	return StateWalking
}

func locomotionInput(c *Controller) {
	if groundedTransitions(c) {
		return
	}
	if next := locomotionState(c); next != c.state {
		c.ChangeState(next)
	}
}

func crouchingInput(c *Controller) {
	if groundedTransitions(c) {
		return
	}
	if !c.crouchIntent() {
		c.ChangeState(locomotionState(c))
	}
}

func jumpingEnter(c *Controller) {
	c.caps.SetCanGlide(true)
	c.anim.SetBool(AnimJumping, true)
	if c.caps.Knockback() || !(c.Grounded() || c.coyote.Open()) {
		return
	}
	v := c.body.Velocity()
	c.body.SetVelocity(cp.Vector{X: v.X, Y: c.settings.JumpSpeed})
	c.consumeJump()
	c.audio.Play(CueJump)
}

func jumpingExit(c *Controller) {
	c.anim.SetBool(AnimJumping, false)
	c.audio.Stop(CueJump)
}

// jumpingInput may pass through Falling and open the parachute in the same
// tick when the apex and a glide press coincide.
func jumpingInput(c *Controller) {
	if c.body.Velocity().Y <= 0 {
		c.ChangeState(StateFalling)
	}
	if c.input.GlidePressed && c.caps.CanGlide() {
		c.ChangeState(StateParachuting)
		return
	}
	if c.state == StateJumping {
		c.clampSpeed()
	}
}

func fallingInput(c *Controller) {
	switch {
	case c.input.GlidePressed && c.caps.CanGlide():
		c.ChangeState(StateParachuting)
	case c.input.JumpPressed && c.coyote.Open(), c.CanJump():
		c.ChangeState(StateJumping)
	case c.Grounded():
		land(c)
	}
}

func parachutingEnter(c *Controller) {
	c.anim.SetBool(AnimGliding, true)
	c.caps.SetCanGlide(false)
	c.audio.Play(CueGlide)
	v := c.body.Velocity()
	c.body.SetVelocity(cp.Vector{X: v.X})
}

func parachutingExit(c *Controller) {
	c.caps.SetCanGlide(true)
	c.anim.SetBool(AnimGliding, false)
	c.audio.Stop(CueGlide)
}

func parachutingInput(c *Controller) {
	switch {
	case c.Grounded():
		land(c)
	case !c.input.Glide:
		c.ChangeState(StateFalling)
	}
}

// land leaves an airborne state for the ground. A jump pressed shortly before
// touching down is taken on the landing tick.
func land(c *Controller) {
	if c.jumpBuffer.Open() {
		c.ChangeState(StateJumping)
		return
	}
	if c.input.Moving() {
		c.ChangeState(StateWalking)
		return
	}
	c.ChangeState(StateIdle)
}

// airMove applies horizontal air control. After Launch, input may only keep
// or reduce the overall speed.
func (c *Controller) airMove() {
	if c.caps.Knockback() {
		return
	}
	v := c.body.Velocity()
	if !c.warped {
		c.body.SetVelocity(cp.Vector{X: c.speed(), Y: v.Y})
		return
	}
	next := cp.Vector{X: v.X + c.speed(), Y: v.Y}
	if next.Length() <= v.Length() {
		c.body.SetVelocity(next)
	}
}

// clampFall steepens the descent and shortens the jump when the button is
// released on the way up.
func (c *Controller) clampFall() {
	v := c.body.Velocity()
	switch {
	case v.Y < 0:
		c.applyGravityScale(c.settings.FallMultiplier)
	case v.Y > 0 && !c.input.Jump:
		c.applyGravityScale(c.settings.LowJumpMultiplier)
	}
}

// applyGravityScale adds (scale-1) times gravity for this tick on top of the
// gravity the physics step applies.
func (c *Controller) applyGravityScale(scale float64) {
	g := c.body.Gravity().Y
	v := c.body.Velocity()
	v.Y += g * (scale - 1) * c.dt
	c.body.SetVelocity(v)
}
