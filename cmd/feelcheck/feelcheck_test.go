package main

import (
	"errors"
	"testing"

	"github.com/milk9111/umbrella/character"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"minimal", "frames = 10\n[[expect]]\nframe = 9\nstate = \"idle\"\n", false},
		{"unknown_key", "frames = 10\nframez = 3\n[[expect]]\nframe = 1\n", true},
		{"no_frames", "[[expect]]\nframe = 0\n", true},
		{"script_and_input", "frames = 10\nscript = \"a.tengo\"\n[[input]]\nfrom = 0\nto = 2\n[[expect]]\nframe = 1\n", true},
		{"empty_segment", "frames = 10\n[[input]]\nfrom = 4\nto = 4\n[[expect]]\nframe = 1\n", true},
		{"expect_after_end", "frames = 10\n[[expect]]\nframe = 10\n", true},
		{"unknown_state", "frames = 10\n[[expect]]\nframe = 1\nstate = \"flying\"\n", true},
		{"nothing_expected", "frames = 10\n", true},
		{"bad_toml", "frames = [", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := ParseScenario("case.toml", []byte(tc.data))
			if tc.wantErr {
				if !errors.Is(err, ErrBadScenario) {
					t.Fatalf("expected ErrBadScenario, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if sc.Name != "case" {
				t.Fatalf("name should default to the file name, got %q", sc.Name)
			}
		})
	}
}

func TestTimeline(t *testing.T) {
	tl := timeline{
		{From: 0, To: 10, MoveX: 1},
		{From: 5, To: 6, Jump: true},
	}
	tests := []struct {
		frame int
		want  character.Buttons
	}{
		{0, character.Buttons{MoveX: 1}},
		{5, character.Buttons{MoveX: 1, Jump: true}},
		{10, character.Buttons{}},
	}
	for _, tc := range tests {
		got, err := tl.Buttons(tc.frame)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("frame %d: got %+v, want %+v", tc.frame, got, tc.want)
		}
	}
}

func TestScriptDriver(t *testing.T) {
	src := []byte(`
move_x := -0.5
jump := frame % 2 == 0
`)
	d, err := newScriptDriver("inline", src)
	if err != nil {
		t.Fatal(err)
	}
	for frame, wantJump := range []bool{true, false, true} {
		b, err := d.Buttons(frame)
		if err != nil {
			t.Fatal(err)
		}
		if b.MoveX != -0.5 || b.Jump != wantJump || b.Run {
			t.Fatalf("frame %d: unexpected buttons %+v", frame, b)
		}
	}
}

func TestScriptDriverErrors(t *testing.T) {
	if _, err := newScriptDriver("broken", []byte("jump := (")); err == nil {
		t.Fatalf("expected a compile error")
	}
	if _, err := loadScriptDriver("missing.tengo"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestBuiltinScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("")
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) == 0 {
		t.Fatalf("no built-in scenarios")
	}
	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			res, err := Run(sc, false)
			if err != nil {
				t.Fatal(err)
			}
			for _, f := range res.Failures {
				t.Error(f)
			}
		})
	}
}

func TestRunReportsFailures(t *testing.T) {
	sc, err := ParseScenario("wrong.toml", []byte("frames = 30\n[[expect]]\nframe = 29\nstate = \"parachuting\"\nmin_restarts = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(sc, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Passed() || len(res.Failures) != 2 {
		t.Fatalf("expected two failures, got %v", res.Failures)
	}
}
