package entity

import (
	"fmt"

	"github.com/milk9111/umbrella/ecs"
	"github.com/milk9111/umbrella/ecs/component"
)

// attach adds value to e and names the component in the error.
func attach[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value *T, what string) error {
	if err := ecs.Add(w, e, handle.Kind(), value); err != nil {
		return fmt.Errorf("add %s: %w", what, err)
	}
	return nil
}

// firstErr runs steps in order and stops at the first failure.
func firstErr(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
