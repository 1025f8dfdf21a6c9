package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/umbrella/levels"
	"gopkg.in/yaml.v3"
)

// Vec is a YAML-friendly point.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) CP() cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

// Box is an axis-aligned rectangle given by its center and size.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (b Box) Center() cp.Vector { return cp.Vector{X: b.X, Y: b.Y} }

func (b Box) BB() cp.BB {
	hw, hh := b.Width/2, b.Height/2
	return cp.BB{L: b.X - hw, B: b.Y - hh, R: b.X + hw, T: b.Y + hh}
}

type LevelSpec struct {
	Name       string         `yaml:"name"`
	Spawn      Vec            `yaml:"spawn"`
	KillPlaneY *float64       `yaml:"kill_plane_y"`
	Solids     []Box          `yaml:"solids"`
	Platforms  []PlatformSpec `yaml:"platforms"`
	Pickups    []PickupSpec   `yaml:"pickups"`
	Hazards    []HazardSpec   `yaml:"hazards"`
	Fans       []FanSpec      `yaml:"fans"`
	Pitfalls   []PitfallSpec  `yaml:"pitfalls"`
	Bouncers   []BouncerSpec  `yaml:"bouncers"`
}

type PlatformSpec struct {
	Box       `yaml:",inline"`
	Speed     float64 `yaml:"speed"`
	Waypoints []Vec   `yaml:"waypoints"`
}

type PickupSpec struct {
	Box   `yaml:",inline"`
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}

type HazardSpec struct {
	Box            `yaml:",inline"`
	Damage         int     `yaml:"damage"`
	DropPercentage float64 `yaml:"drop_percentage"`
}

type FanSpec struct {
	Box       `yaml:",inline"`
	Direction Vec     `yaml:"direction"`
	Wind      float64 `yaml:"wind"`
	Upward    float64 `yaml:"upward"`
	Sideways  bool    `yaml:"sideways"`
}

type PitfallSpec struct {
	Box     `yaml:",inline"`
	Respawn Vec `yaml:"respawn"`
}

type BouncerSpec struct {
	Box     `yaml:",inline"`
	Impulse Vec `yaml:"impulse"`
}

// ParseLevelSpec decodes and checks a level file.
func ParseLevelSpec(name string, data []byte) (LevelSpec, error) {
	var spec LevelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return LevelSpec{}, fmt.Errorf("prefabs: unmarshal level %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	if err := spec.validate(); err != nil {
		return LevelSpec{}, fmt.Errorf("prefabs: level %s: %w", name, err)
	}
	return spec, nil
}

func LoadLevelSpec(name string) (LevelSpec, error) {
	data, err := levels.Load(name)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("prefabs: load level %s: %w", name, err)
	}
	return ParseLevelSpec(name, data)
}

func (l LevelSpec) validate() error {
	boxes := func(kind string, n int, at func(int) Box) error {
		for i := 0; i < n; i++ {
			if b := at(i); b.Width <= 0 || b.Height <= 0 {
				return fmt.Errorf("%s %d has no area", kind, i)
			}
		}
		return nil
	}
	checks := []error{
		boxes("solid", len(l.Solids), func(i int) Box { return l.Solids[i] }),
		boxes("platform", len(l.Platforms), func(i int) Box { return l.Platforms[i].Box }),
		boxes("pickup", len(l.Pickups), func(i int) Box { return l.Pickups[i].Box }),
		boxes("hazard", len(l.Hazards), func(i int) Box { return l.Hazards[i].Box }),
		boxes("fan", len(l.Fans), func(i int) Box { return l.Fans[i].Box }),
		boxes("pitfall", len(l.Pitfalls), func(i int) Box { return l.Pitfalls[i].Box }),
		boxes("bouncer", len(l.Bouncers), func(i int) Box { return l.Bouncers[i].Box }),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	for i, p := range l.Platforms {
		if p.Speed <= 0 {
			return fmt.Errorf("platform %d needs a positive speed", i)
		}
	}
	for i, p := range l.Pickups {
		if p.Kind != "umbrella" && p.Kind != "coin" {
			return fmt.Errorf("pickup %d has unknown kind %q", i, p.Kind)
		}
	}
	return nil
}
