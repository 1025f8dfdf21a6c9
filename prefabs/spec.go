package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/umbrella/character"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerFile is the prefab the player is built from.
const PlayerFile = "player.yaml"

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Tuning      TuningSpec      `yaml:"tuning"`
	Collider    ColliderSpec    `yaml:"collider"`
	GroundProbe GroundProbeSpec `yaml:"ground_probe"`
	Color       YAMLColor       `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	StartCoins  int             `yaml:"start_coins"`
}

// TuningSpec mirrors character.Settings. Keys left out of the file keep the
// controller defaults.
type TuningSpec struct {
	MoveSpeed             float64 `yaml:"move_speed"`
	RunMultiplier         float64 `yaml:"run_multiplier"`
	CrouchMultiplier      float64 `yaml:"crouch_multiplier"`
	JumpSpeed             float64 `yaml:"jump_speed"`
	FallMultiplier        float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier     float64 `yaml:"low_jump_multiplier"`
	GlideGravity          float64 `yaml:"glide_gravity"`
	MaxVelocity           float64 `yaml:"max_velocity"`
	FallThreshold         float64 `yaml:"fall_threshold"`
	CoyoteTime            float64 `yaml:"coyote_time"`
	JumpBufferTime        float64 `yaml:"jump_buffer_time"`
	MaxHealth             int     `yaml:"max_health"`
	InvincibilityDuration float64 `yaml:"invincibility_duration"`
	KnockbackDuration     float64 `yaml:"knockback_duration"`
	HorizontalKnockback   float64 `yaml:"horizontal_knockback"`
	VerticalKnockback     float64 `yaml:"vertical_knockback"`
	AttackDuration        float64 `yaml:"attack_duration"`
	ThrowSpeed            float64 `yaml:"throw_speed"`
	ThrowCooldown         float64 `yaml:"throw_cooldown"`
	KillPlaneY            float64 `yaml:"kill_plane_y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

type GroundProbeSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Radius  float64 `yaml:"radius"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

func tuningFrom(s character.Settings) TuningSpec {
	return TuningSpec{
		MoveSpeed:             s.MoveSpeed,
		RunMultiplier:         s.RunMultiplier,
		CrouchMultiplier:      s.CrouchMultiplier,
		JumpSpeed:             s.JumpSpeed,
		FallMultiplier:        s.FallMultiplier,
		LowJumpMultiplier:     s.LowJumpMultiplier,
		GlideGravity:          s.GlideGravity,
		MaxVelocity:           s.MaxVelocity,
		FallThreshold:         s.FallThreshold,
		CoyoteTime:            s.CoyoteTime,
		JumpBufferTime:        s.JumpBufferTime,
		MaxHealth:             s.MaxHealth,
		InvincibilityDuration: s.InvincibilityDuration,
		KnockbackDuration:     s.KnockbackDuration,
		HorizontalKnockback:   s.HorizontalKnockback,
		VerticalKnockback:     s.VerticalKnockback,
		AttackDuration:        s.AttackDuration,
		ThrowSpeed:            s.ThrowSpeed,
		ThrowCooldown:         s.ThrowCooldown,
		KillPlaneY:            s.KillPlaneY,
	}
}

// Settings converts the tuning block into validated controller settings.
func (p PlayerSpec) Settings() (character.Settings, error) {
	t := p.Tuning
	s := character.Settings{
		MoveSpeed:             t.MoveSpeed,
		RunMultiplier:         t.RunMultiplier,
		CrouchMultiplier:      t.CrouchMultiplier,
		JumpSpeed:             t.JumpSpeed,
		FallMultiplier:        t.FallMultiplier,
		LowJumpMultiplier:     t.LowJumpMultiplier,
		GlideGravity:          t.GlideGravity,
		MaxVelocity:           t.MaxVelocity,
		FallThreshold:         t.FallThreshold,
		CoyoteTime:            t.CoyoteTime,
		JumpBufferTime:        t.JumpBufferTime,
		MaxHealth:             t.MaxHealth,
		InvincibilityDuration: t.InvincibilityDuration,
		KnockbackDuration:     t.KnockbackDuration,
		HorizontalKnockback:   t.HorizontalKnockback,
		VerticalKnockback:     t.VerticalKnockback,
		AttackDuration:        t.AttackDuration,
		ThrowSpeed:            t.ThrowSpeed,
		ThrowCooldown:         t.ThrowCooldown,
		KillPlaneY:            t.KillPlaneY,
	}
	if err := s.Validate(); err != nil {
		return character.Settings{}, fmt.Errorf("prefabs: player %q: %w", p.Name, err)
	}
	return s, nil
}

// DefaultPlayerSpec is the player used when no file overrides it.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:        "player",
		Tuning:      tuningFrom(character.DefaultSettings()),
		Collider:    ColliderSpec{Width: 0.8, Height: 1.2, Mass: 1},
		GroundProbe: GroundProbeSpec{OffsetY: -0.6, Radius: 0.1},
		Color:       YAMLColor{Color: color.NRGBA{R: 220, G: 60, B: 80, A: 255}},
		RenderLayer: RenderLayerSpec{Index: 10},
	}
}

// ParsePlayerSpec decodes data on top of DefaultPlayerSpec.
func ParsePlayerSpec(data []byte) (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", PlayerFile, err)
	}
	if _, err := spec.Settings(); err != nil {
		return PlayerSpec{}, err
	}
	return spec, nil
}

func LoadPlayerSpec() (PlayerSpec, error) {
	data, err := Load(PlayerFile)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: load %s: %w", PlayerFile, err)
	}
	return ParsePlayerSpec(data)
}

func LoadCameraSpec() (CameraSpec, error) {
	return LoadSpec[CameraSpec]("camera.yaml")
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as color.RGBA, white when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
