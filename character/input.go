package character

import "github.com/jakecoffman/cp"

// Buttons is the raw held state of the controls for one tick.
type Buttons struct {
	MoveX     float64
	MoveY     float64
	Run       bool
	Crouch    bool
	Jump      bool
	Attack    bool
	AimUp     bool
	AimDown   bool
	AngleUp   bool
	AngleDown bool
}

// Snapshot is the per-tick intent read by the state machine. It is sampled
// once per tick and never mutated afterwards.
type Snapshot struct {
	Move cp.Vector

	Run    bool
	Crouch bool

	Jump        bool
	JumpPressed bool

	// Glide mirrors the jump button; it is split out so states read the
	// intent they care about.
	Glide        bool
	GlidePressed bool

	Attack        bool
	AttackPressed bool

	AimUp     bool
	AimDown   bool
	AngleUp   bool
	AngleDown bool
}

// Moving reports whether there is any horizontal movement intent.
func (s Snapshot) Moving() bool {
	return s.Move.X != 0
}

// Running reports whether the run modifier is held while moving.
func (s Snapshot) Running() bool {
	return s.Run && s.Moving()
}

// Sampler turns held buttons into snapshots carrying rising edges.
type Sampler struct {
	prev    Buttons
	started bool
}

// Sample produces the snapshot for this tick. The first sample after Reset
// never reports an edge for a button that was already held.
func (s *Sampler) Sample(b Buttons) Snapshot {
	prev := s.prev
	if !s.started {
		prev = b
		s.started = true
	}
	s.prev = b

	jumpEdge := b.Jump && !prev.Jump
	return Snapshot{
		Move:          cp.Vector{X: clampAxis(b.MoveX), Y: clampAxis(b.MoveY)},
		Run:           b.Run,
		Crouch:        b.Crouch,
		Jump:          b.Jump,
		JumpPressed:   jumpEdge,
		Glide:         b.Jump,
		GlidePressed:  jumpEdge,
		Attack:        b.Attack,
		AttackPressed: b.Attack && !prev.Attack,
		AimUp:         b.AimUp,
		AimDown:       b.AimDown,
		AngleUp:       b.AngleUp,
		AngleDown:     b.AngleDown,
	}
}

// Reset forgets the previous buttons.
func (s *Sampler) Reset() {
	*s = Sampler{}
}

func clampAxis(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
