package system

import "github.com/milk9111/umbrella/ecs"

// overlaps tracks which characters currently touch each trigger entity,
// fed by contact begin/separate events.
type overlaps map[ecs.Entity]map[ecs.Entity]struct{}

func (o overlaps) apply(c ecs.ContactEvent) {
	if c.Begin {
		set, ok := o[c.Other]
		if !ok {
			set = make(map[ecs.Entity]struct{})
			o[c.Other] = set
		}
		set[c.Character] = struct{}{}
		return
	}
	if set, ok := o[c.Other]; ok {
		delete(set, c.Character)
		if len(set) == 0 {
			delete(o, c.Other)
		}
	}
}

// prune drops entries whose trigger or character no longer exists.
func (o overlaps) prune(w *ecs.World) {
	for other, set := range o {
		if !ecs.IsAlive(w, other) {
			delete(o, other)
			continue
		}
		for character := range set {
			if !ecs.IsAlive(w, character) {
				delete(set, character)
			}
		}
		if len(set) == 0 {
			delete(o, other)
		}
	}
}
