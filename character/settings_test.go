package character

import (
	"errors"
	"testing"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero_move_speed", func(s *Settings) { s.MoveSpeed = 0 }, true},
		{"negative_coyote", func(s *Settings) { s.CoyoteTime = -0.1 }, true},
		{"zero_coyote", func(s *Settings) { s.CoyoteTime = 0 }, false},
		{"crouch_above_one", func(s *Settings) { s.CrouchMultiplier = 1.5 }, true},
		{"glide_gravity_one", func(s *Settings) { s.GlideGravity = 1 }, true},
		{"no_health", func(s *Settings) { s.MaxHealth = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}
