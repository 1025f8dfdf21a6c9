package character

import "fmt"

// Settings tunes the feel of the controller. Distances are in world units,
// speeds in units per second and durations in seconds.
type Settings struct {
	MoveSpeed     float64
	RunMultiplier float64
	// CrouchMultiplier scales horizontal speed while crouching; zero pins
	// the character in place.
	CrouchMultiplier float64

	JumpSpeed         float64
	FallMultiplier    float64
	LowJumpMultiplier float64
	// GlideGravity is the gravity multiplier applied while parachuting.
	GlideGravity float64
	MaxVelocity  float64
	// FallThreshold is how fast a grounded-family state must be sinking
	// before it counts as falling.
	FallThreshold float64

	CoyoteTime     float64
	JumpBufferTime float64

	MaxHealth             int
	InvincibilityDuration float64
	KnockbackDuration     float64
	HorizontalKnockback   float64
	VerticalKnockback     float64

	AttackDuration float64
	ThrowSpeed     float64
	ThrowCooldown  float64

	// KillPlaneY is the height below which a sinking character is
	// considered lost.
	KillPlaneY float64
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:             6,
		RunMultiplier:         1.6,
		CrouchMultiplier:      0.4,
		JumpSpeed:             12,
		FallMultiplier:        2.5,
		LowJumpMultiplier:     2,
		GlideGravity:          0.2,
		MaxVelocity:           30,
		FallThreshold:         0.2,
		CoyoteTime:            0.1,
		JumpBufferTime:        0.1,
		MaxHealth:             3,
		InvincibilityDuration: 1,
		KnockbackDuration:     0.5,
		HorizontalKnockback:   6,
		VerticalKnockback:     6,
		AttackDuration:        0.3,
		ThrowSpeed:            15,
		ThrowCooldown:         1,
		KillPlaneY:            -30,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"move speed", s.MoveSpeed},
		{"run multiplier", s.RunMultiplier},
		{"jump speed", s.JumpSpeed},
		{"fall multiplier", s.FallMultiplier},
		{"low jump multiplier", s.LowJumpMultiplier},
		{"max velocity", s.MaxVelocity},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSettings, f.name, f.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"crouch multiplier", s.CrouchMultiplier},
		{"glide gravity", s.GlideGravity},
		{"fall threshold", s.FallThreshold},
		{"coyote time", s.CoyoteTime},
		{"jump buffer time", s.JumpBufferTime},
		{"invincibility duration", s.InvincibilityDuration},
		{"knockback duration", s.KnockbackDuration},
		{"attack duration", s.AttackDuration},
		{"throw speed", s.ThrowSpeed},
		{"throw cooldown", s.ThrowCooldown},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidSettings, f.name, f.value)
		}
	}

	if s.CrouchMultiplier > 1 {
		return fmt.Errorf("%w: crouch multiplier must be at most 1, got %v", ErrInvalidSettings, s.CrouchMultiplier)
	}
	if s.GlideGravity >= 1 {
		return fmt.Errorf("%w: glide gravity must be below 1, got %v", ErrInvalidSettings, s.GlideGravity)
	}
	if s.MaxHealth <= 0 {
		return fmt.Errorf("%w: max health must be positive, got %d", ErrInvalidSettings, s.MaxHealth)
	}
	return nil
}
