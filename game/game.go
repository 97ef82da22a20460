package game

import (
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/scenes"
	"github.com/automoto/skeeter/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
	Close()
}

type Game struct {
	scene  Scene
	closed bool
}

// NewGame creates the game on the mosquito scene. clips may be nil.
func NewGame(clips *sound.ClipPlayer) *Game {
	return &Game{
		scene: scenes.NewMosquitoScene(clips),
	}
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.scene.Update()

	if g.scene.QuitRequested() {
		g.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

// Close tears the scene down. Only the first call does anything.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.scene.Close()
}
