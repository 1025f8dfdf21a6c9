package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/umbrella/ecs/entity"
	"golang.design/x/clipboard"
)

// debugTools handles debug-only hotkeys. F3 copies the controller state to
// the clipboard, F4 hands over the umbrella.
type debugTools struct {
	enabled   bool
	clipboard bool
}

func newDebugTools(enabled bool) *debugTools {
	d := &debugTools{enabled: enabled}
	if !enabled {
		return d
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboard = true
	}
	return d
}

func (d *debugTools) Update(scene *entity.Scene) {
	if !d.enabled || scene == nil || scene.Controller == nil {
		return
	}
	ctrl := scene.Controller

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		dump := ctrl.String()
		if d.clipboard {
			clipboard.Write(clipboard.FmtText, []byte(dump))
		}
		log.Printf("debug: %s", dump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ctrl.GrantGlideItem()
	}
}
