package character

import "testing"

func TestSampler(t *testing.T) {
	var s Sampler

	first := s.Sample(Buttons{Jump: true, Attack: true})
	if first.JumpPressed || first.AttackPressed {
		t.Fatalf("buttons held at the first sample must not count as presses")
	}

	steps := []struct {
		name        string
		in          Buttons
		wantJump    bool
		wantAttack  bool
		wantGlideOn bool
	}{
		{"release", Buttons{}, false, false, false},
		{"press_jump", Buttons{Jump: true}, true, false, true},
		{"hold_jump", Buttons{Jump: true}, false, false, false},
		{"press_attack", Buttons{Jump: true, Attack: true}, false, true, false},
		{"release_and_press_again", Buttons{}, false, false, false},
		{"press_both", Buttons{Jump: true, Attack: true}, true, true, true},
	}
	for _, st := range steps {
		snap := s.Sample(st.in)
		if snap.JumpPressed != st.wantJump || snap.AttackPressed != st.wantAttack || snap.GlidePressed != st.wantGlideOn {
			t.Fatalf("%s: got jump=%v attack=%v glide=%v", st.name, snap.JumpPressed, snap.AttackPressed, snap.GlidePressed)
		}
		if snap.Glide != st.in.Jump {
			t.Fatalf("%s: glide should mirror the jump button", st.name)
		}
	}
}

func TestSnapshotMovement(t *testing.T) {
	var s Sampler
	tests := []struct {
		name    string
		in      Buttons
		moving  bool
		running bool
		moveX   float64
	}{
		{"still", Buttons{}, false, false, 0},
		{"walk", Buttons{MoveX: 0.5}, true, false, 0.5},
		{"run", Buttons{MoveX: -1, Run: true}, true, true, -1},
		{"run_in_place", Buttons{Run: true}, false, false, 0},
		{"clamped", Buttons{MoveX: 3}, true, false, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := s.Sample(tc.in)
			if snap.Moving() != tc.moving || snap.Running() != tc.running || snap.Move.X != tc.moveX {
				t.Fatalf("got moving=%v running=%v x=%v", snap.Moving(), snap.Running(), snap.Move.X)
			}
		})
	}
}
