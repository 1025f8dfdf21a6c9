package character

// Capabilities holds the glide and knockback flags. The only way to change
// canGlide is SetCanGlide, which refuses to arm glide without the item.
type Capabilities struct {
	hasGlideItem bool
	canGlide     bool
	knockback    bool
}

// GrantGlideItem records the glide item pickup. It cannot be revoked.
func (c *Capabilities) GrantGlideItem() {
	c.hasGlideItem = true
}

// SetCanGlide arms or disarms glide. Arming without the item leaves glide
// disarmed.
func (c *Capabilities) SetCanGlide(v bool) {
	c.canGlide = v && c.hasGlideItem
}

func (c Capabilities) HasGlideItem() bool { return c.hasGlideItem }
func (c Capabilities) CanGlide() bool     { return c.canGlide }
func (c Capabilities) Knockback() bool    { return c.knockback }

func (c *Capabilities) setKnockback(v bool) {
	c.knockback = v
}

