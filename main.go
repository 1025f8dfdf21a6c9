package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/umbrella/levels"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and hot reload prefabs and levels")
	glide := flag.Bool("glide", false, "start holding the umbrella")
	mute := flag.Bool("mute", false, "disable sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.Default, "level name in levels/ (basename, .yaml optional)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*2/3, h*2/3)
	ebiten.SetWindowTitle("umbrella")

	game, err := NewGame(Options{Level: *levelName, Debug: *debug, Glide: *glide, Mute: *mute})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
