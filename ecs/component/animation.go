package component

// Animation records the boolean parameters the controller raises. The
// renderer reads them to pick a look for the entity.
type Animation struct {
	Flags map[string]bool
}

func (a *Animation) SetBool(name string, value bool) {
	if a.Flags == nil {
		a.Flags = make(map[string]bool)
	}
	a.Flags[name] = value
}

func (a *Animation) Bool(name string) bool {
	return a != nil && a.Flags[name]
}

var AnimationComponent = NewComponent[Animation]()
