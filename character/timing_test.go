package character

import "testing"

func TestWindow(t *testing.T) {
	tests := []struct {
		name     string
		steps    []bool
		wantOpen bool
	}{
		{"never_triggered", []bool{false, false}, false},
		{"triggered_then_held", []bool{true, true, true}, true},
		{"decays_inside_duration", []bool{true, false, false}, true},
		{"decays_past_duration", []bool{true, false, false, false, false, false, false, false}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := Window{Duration: 0.1}
			for _, trigger := range tc.steps {
				w.Tick(0.02, trigger)
			}
			if w.Open() != tc.wantOpen {
				t.Fatalf("Open() = %v, want %v (remaining %v)", w.Open(), tc.wantOpen, w.Remaining)
			}
		})
	}

	t.Run("consume", func(t *testing.T) {
		w := Window{Duration: 0.1}
		w.Refresh()
		w.Consume()
		if w.Open() || w.Remaining != 0 {
			t.Fatalf("expected consumed window to be closed at zero, got %v", w.Remaining)
		}
	})
}

func TestInvincibility(t *testing.T) {
	var inv Invincibility
	inv.Arm(0)
	if inv.Active {
		t.Fatalf("zero duration must not arm")
	}

	inv.Arm(0.05)
	inv.Tick(0.02)
	if !inv.Active {
		t.Fatalf("expected still active")
	}
	inv.Tick(0.04)
	if inv.Active || inv.Remaining != 0 {
		t.Fatalf("expected cleared, got %+v", inv)
	}
}
