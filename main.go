package main

import (
	"log"

	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/game"
	"github.com/automoto/skeeter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Skeeter")
	ebiten.SetTPS(cfg.C.TPS)
	// Close requests go through Game.Update so the clip player is released first
	ebiten.SetWindowClosingHandled(true)

	clips, err := systems.LoadClipPlayer()
	if err != nil {
		log.Fatalf("Failed to load sound clips: %v", err)
	}

	g := game.NewGame(clips)
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
