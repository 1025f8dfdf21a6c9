package main

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/umbrella/character"
	"github.com/milk9111/umbrella/prefabs"
)

// driver decides which buttons are held on a frame.
type driver interface {
	Buttons(frame int) (character.Buttons, error)
}

type timeline []Segment

func (t timeline) Buttons(frame int) (character.Buttons, error) {
	var b character.Buttons
	for _, seg := range t {
		if frame < seg.From || frame >= seg.To {
			continue
		}
		if seg.MoveX != 0 {
			b.MoveX = seg.MoveX
		}
		if seg.MoveY != 0 {
			b.MoveY = seg.MoveY
		}
		b.Run = b.Run || seg.Run
		b.Crouch = b.Crouch || seg.Crouch
		b.Jump = b.Jump || seg.Jump
		b.Attack = b.Attack || seg.Attack
	}
	return b, nil
}

// scriptDriver reruns a tengo script every frame. The script sees the
// frame number as `frame` and answers through globals named after the
// buttons: move_x, move_y, run, crouch, jump, attack, aim_up, aim_down,
// angle_up and angle_down. Globals it leaves undefined read as released.
type scriptDriver struct {
	name     string
	compiled *tengo.Compiled
}

func newScriptDriver(name string, src []byte) (*scriptDriver, error) {
	script := tengo.NewScript(src)
	if err := script.Add("frame", 0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return &scriptDriver{name: name, compiled: compiled}, nil
}

func loadScriptDriver(name string) (*scriptDriver, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return newScriptDriver(name, src)
}

func (d *scriptDriver) Buttons(frame int) (character.Buttons, error) {
	if err := d.compiled.Set("frame", frame); err != nil {
		return character.Buttons{}, fmt.Errorf("script %s: %w", d.name, err)
	}
	if err := d.compiled.Run(); err != nil {
		return character.Buttons{}, fmt.Errorf("script %s: frame %d: %w", d.name, frame, err)
	}
	return character.Buttons{
		MoveX:     d.axis("move_x"),
		MoveY:     d.axis("move_y"),
		Run:       d.button("run"),
		Crouch:    d.button("crouch"),
		Jump:      d.button("jump"),
		Attack:    d.button("attack"),
		AimUp:     d.button("aim_up"),
		AimDown:   d.button("aim_down"),
		AngleUp:   d.button("angle_up"),
		AngleDown: d.button("angle_down"),
	}, nil
}

func (d *scriptDriver) axis(name string) float64 {
	if !d.compiled.IsDefined(name) {
		return 0
	}
	return d.compiled.Get(name).Float()
}

func (d *scriptDriver) button(name string) bool {
	if !d.compiled.IsDefined(name) {
		return false
	}
	return d.compiled.Get(name).Bool()
}
