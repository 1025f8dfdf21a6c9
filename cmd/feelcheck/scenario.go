package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/umbrella/character"
)

//go:embed scenarios/*.toml
var scenariosFS embed.FS

var ErrBadScenario = errors.New("feelcheck: bad scenario")

// Scenario drives one level for a fixed number of frames and checks the
// player at chosen frames.
type Scenario struct {
	Name      string    `toml:"name"`
	Level     string    `toml:"level"`
	Frames    int       `toml:"frames"`
	GlideItem bool      `toml:"glide_item"`
	Script    string    `toml:"script"`
	Input     []Segment `toml:"input"`
	Expect    []Expect  `toml:"expect"`

	file string
}

// Segment holds buttons down for frames in [From, To).
type Segment struct {
	From   int     `toml:"from"`
	To     int     `toml:"to"`
	MoveX  float64 `toml:"move_x"`
	MoveY  float64 `toml:"move_y"`
	Run    bool    `toml:"run"`
	Crouch bool    `toml:"crouch"`
	Jump   bool    `toml:"jump"`
	Attack bool    `toml:"attack"`
}

// Expect is checked after the given frame has been simulated. Unset
// fields are not checked.
type Expect struct {
	Frame       int      `toml:"frame"`
	State       string   `toml:"state"`
	SubState    string   `toml:"sub_state"`
	Grounded    *bool    `toml:"grounded"`
	GlideItem   *bool    `toml:"glide_item"`
	Health      *int     `toml:"health"`
	MinX        *float64 `toml:"min_x"`
	MaxX        *float64 `toml:"max_x"`
	MinY        *float64 `toml:"min_y"`
	MaxY        *float64 `toml:"max_y"`
	MinRestarts *int     `toml:"min_restarts"`
}

// ParseScenario decodes a scenario file. Unknown keys are rejected so a
// typo cannot silently skip a check.
func ParseScenario(file string, data []byte) (Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: %s: %v", ErrBadScenario, file, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Scenario{}, fmt.Errorf("%w: %s: unknown keys %s", ErrBadScenario, file, strings.Join(keys, ", "))
	}
	sc.file = file
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	if err := sc.validate(); err != nil {
		return Scenario{}, fmt.Errorf("%w: %s: %v", ErrBadScenario, file, err)
	}
	return sc, nil
}

func (sc Scenario) validate() error {
	if sc.Frames <= 0 {
		return fmt.Errorf("frames must be positive")
	}
	if sc.Script != "" && len(sc.Input) > 0 {
		return fmt.Errorf("use either script or input, not both")
	}
	for i, seg := range sc.Input {
		if seg.From < 0 || seg.To <= seg.From {
			return fmt.Errorf("input %d has an empty frame range", i)
		}
	}
	if len(sc.Expect) == 0 {
		return fmt.Errorf("nothing to expect")
	}
	for i, ex := range sc.Expect {
		if ex.Frame < 0 || ex.Frame >= sc.Frames {
			return fmt.Errorf("expect %d is outside the run", i)
		}
		if ex.State != "" {
			if _, ok := character.ParseState(ex.State); !ok {
				return fmt.Errorf("expect %d names unknown state %q", i, ex.State)
			}
		}
	}
	return nil
}

// LoadScenarios reads every .toml file in dir, or the built-in set when dir
// is empty.
func LoadScenarios(dir string) ([]Scenario, error) {
	var fsys fs.FS = scenariosFS
	root := "scenarios"
	if dir != "" {
		fsys, root = os.DirFS(dir), "."
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("feelcheck: read scenarios: %w", err)
	}
	var out []Scenario
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		name := e.Name()
		if root != "." {
			name = root + "/" + name
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("feelcheck: read %s: %w", name, err)
		}
		sc, err := ParseScenario(e.Name(), data)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].file < out[j].file })
	return out, nil
}
