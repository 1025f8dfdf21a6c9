package character

import "github.com/jakecoffman/cp"

type subStateHooks struct {
	enter  func(c *Controller)
	exit   func(c *Controller)
	update func(c *Controller)
}

var subStateTable = [subStateCount]subStateHooks{
	SubStateAttacking: {
		enter:  attackingEnter,
		exit:   attackingExit,
		update: func(c *Controller) { c.attackRemaining -= c.dt },
	},
}

// ChangeSubState exits the current overlay, if any, and enters next. The
// primary state is untouched.
func (c *Controller) ChangeSubState(next SubStateID) {
	if !next.Valid() {
		return
	}
	if exit := subStateTable[c.sub].exit; exit != nil {
		exit(c)
	}
	c.sub = next
	if enter := subStateTable[next].enter; enter != nil {
		enter(c)
	}
}

func (c *Controller) updateSubState() {
	if update := subStateTable[c.sub].update; update != nil {
		update(c)
	}
}

// handleSubStateInput arms Attacking on an attack edge, restarting it if it
// is already running, and drops it once the swing is over.
func (c *Controller) handleSubStateInput() {
	if c.input.AttackPressed {
		c.ChangeSubState(SubStateAttacking)
		return
	}
	if c.sub == SubStateAttacking && c.attackRemaining <= 0 {
		c.ChangeSubState(SubStateNone)
	}
}

func attackingEnter(c *Controller) {
	c.attackRemaining = c.settings.AttackDuration
	c.anim.SetBool(AnimAttacking, true)
	c.throw()
}

func attackingExit(c *Controller) {
	c.attackRemaining = 0
	c.anim.SetBool(AnimAttacking, false)
}

// throw launches a projectile along the aim direction, inheriting half of the
// character's velocity. It is rate limited by ThrowCooldown.
func (c *Controller) throw() {
	if c.launcher == nil || c.throwCooldown > 0 {
		return
	}
	dir := c.aimDirection()
	v := dir.Mult(c.settings.ThrowSpeed).Add(c.body.Velocity().Mult(0.5))
	c.launcher.Launch(c.body.Position(), v)
	c.throwCooldown = c.settings.ThrowCooldown
	c.audio.Play(CueAttack)
}

// aimDirection resolves the aim flags into a unit vector. Holding aim-down
// on the ground becomes a diagonal throw.
func (c *Controller) aimDirection() cp.Vector {
	in := c.input
	angleDown := in.AngleDown || (in.AimDown && c.Grounded())
	switch {
	case in.AngleUp:
		return cp.Vector{X: c.facing, Y: 1}.Normalize()
	case angleDown:
		return cp.Vector{X: c.facing, Y: -1}.Normalize()
	case in.AimUp:
		return cp.Vector{Y: 1}
	case in.AimDown:
		return cp.Vector{Y: -1}
	}
	return cp.Vector{X: c.facing}
}
