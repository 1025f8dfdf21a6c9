package ecs

// IntersectEntities returns the entities present in every set. A nil set
// yields no entities.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

func snapshot(s *SparseSet) []Entity {
	if s == nil {
		return nil
	}
	return append([]Entity(nil), s.Entities()...)
}
