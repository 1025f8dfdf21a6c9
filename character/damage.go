package character

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

// OnDamaged applies a hit. It is a no-op while invincible. Otherwise the
// character loses health, is knocked away from the way it faces, drops a
// share of its currency and becomes invincible for a while. The level
// restarts once health runs out or a hit empties the wallet.
func (c *Controller) OnDamaged(amount int, src DamageSource) {
	if c.invincible.Active {
		return
	}

	c.audio.Play(CueHurt)
	c.health -= amount

	c.body.ApplyImpulse(cp.Vector{
		X: -c.facing * c.settings.HorizontalKnockback,
		Y: c.settings.VerticalKnockback,
	})
	c.caps.setKnockback(true)
	c.knockback.Refresh()

	emptied := c.dropCurrency(src.DropPercentage)
	c.invincible.Arm(c.settings.InvincibilityDuration)

	if c.debug {
		log.Printf("character: hit by %q for %d, health %d", src.Name, amount, c.health)
	}

	switch {
	case c.health <= 0:
		c.level.RestartLevel("health depleted")
	case emptied:
		c.level.RestartLevel("wallet emptied")
	}
}

// dropCurrency removes percent of the wallet, rounded up, and reports whether
// the loss emptied it.
func (c *Controller) dropCurrency(percent float64) bool {
	if c.wallet == nil || percent <= 0 {
		return false
	}
	loss := int(math.Ceil(float64(c.wallet.Currency()) * percent / 100))
	if loss <= 0 {
		return false
	}
	c.wallet.Remove(loss)
	return c.wallet.Currency() <= 0
}
