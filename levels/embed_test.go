package levels

import "testing"

func TestClean(t *testing.T) {
	tests := map[string]string{
		"meadow":             "meadow.yaml",
		"meadow.yaml":        "meadow.yaml",
		"levels/meadow.yaml": "meadow.yaml",
		"../x/gauntlet":      "gauntlet.yaml",
		"old.yml":            "old.yml",
	}
	for in, want := range tests {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamesIncludesDefault(t *testing.T) {
	for _, n := range Names() {
		if n == Default {
			return
		}
	}
	t.Fatalf("%s missing from %v", Default, Names())
}

func TestLoad(t *testing.T) {
	if _, err := Load("meadow"); err != nil {
		t.Fatalf("Load(meadow): %v", err)
	}
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatalf("expected an error for a missing level")
	}
}
