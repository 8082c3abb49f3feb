package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pogo-Stickman/internal/audio"
	"github.com/Garsondee/Pogo-Stickman/internal/game"
	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

func main() {
	var levelPath string
	var mute bool

	flag.StringVar(&levelPath, "level", "", "level JSON file (default: built-in level)")
	flag.BoolVar(&mute, "mute", false, "start with sound off")
	flag.Parse()

	lvl := sim.DefaultLevel()
	if levelPath != "" {
		var err error
		lvl, err = sim.LoadLevel(levelPath)
		if err != nil {
			log.Fatalf("load level: %v", err)
		}
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(mute)

	w, h := game.ScreenSize()
	ebiten.SetWindowTitle("Pogo Stickman")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game.New(lvl, sound)); err != nil {
		log.Fatal(err)
	}
}
