package character

// StateID names a primary state.
type StateID int

const (
	StateIdle StateID = iota
	StateWalking
	StateRunning
	StateCrouching
	StateJumping
	StateFalling
	StateParachuting
	stateCount
)

var stateNames = [stateCount]string{
	StateIdle:        "idle",
	StateWalking:     "walking",
	StateRunning:     "running",
	StateCrouching:   "crouching",
	StateJumping:     "jumping",
	StateFalling:     "falling",
	StateParachuting: "parachuting",
}

func (s StateID) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return stateNames[s]
}

// Valid reports whether s names a real state.
func (s StateID) Valid() bool {
	return s >= 0 && s < stateCount
}

// ParseState resolves a state by its String form.
func ParseState(name string) (StateID, bool) {
	for i, n := range stateNames {
		if n == name {
			return StateID(i), true
		}
	}
	return 0, false
}

// Family groups states that share movement and transition defaults.
type Family int

const (
	FamilyGrounded Family = iota
	FamilyAirborne
)

func (f Family) String() string {
	if f == FamilyAirborne {
		return "airborne"
	}
	return "grounded"
}

// Family returns the behavioral family of s.
func (s StateID) Family() Family {
	switch s {
	case StateJumping, StateFalling, StateParachuting:
		return FamilyAirborne
	}
	return FamilyGrounded
}

// SubStateID names an overlay state.
type SubStateID int

const (
	SubStateNone SubStateID = iota
	SubStateAttacking
	subStateCount
)

func (s SubStateID) String() string {
	switch s {
	case SubStateNone:
		return "none"
	case SubStateAttacking:
		return "attacking"
	}
	return "invalid"
}

// Valid reports whether s names a real sub-state.
func (s SubStateID) Valid() bool {
	return s >= 0 && s < subStateCount
}
