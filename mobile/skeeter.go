// Package skeeter is the ebitenmobile binding:
//
//	ebitenmobile bind -target android -javapkg com.automoto.skeeter -o skeeter.aar ./mobile
//
// The host activity must call Release from onDestroy so the clip player is
// freed when the screen goes away for good. Backgrounding alone does not.
package skeeter

import (
	"log"

	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/game"
	"github.com/automoto/skeeter/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

var g *game.Game

func init() {
	ebiten.SetTPS(cfg.C.TPS)

	clips, err := systems.LoadClipPlayer()
	if err != nil {
		log.Printf("Warning: running without sound: %v", err)
	}
	g = game.NewGame(clips)
	mobile.SetGame(g)
}

// Release tears the game down and frees the sound clips. Safe to call more
// than once.
func Release() {
	g.Close()
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
