package component

import "github.com/milk9111/umbrella/character"

// Player owns the character controller driving the entity's body.
type Player struct {
	Controller *character.Controller
}

var PlayerComponent = NewComponent[Player]()
