package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/fonts"
	"github.com/automoto/skeeter/sound"
	"github.com/automoto/skeeter/systems"
	"github.com/automoto/skeeter/systems/factory"
	"github.com/automoto/skeeter/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MosquitoScene is the one screen: a canvas to tap and the footer hint.
type MosquitoScene struct {
	ecs       *ecs.ECS
	footer    *ui.FooterUI
	clips     *sound.ClipPlayer
	once      sync.Once
	closeOnce sync.Once
}

// NewMosquitoScene creates the scene. clips may be nil to run silent.
func NewMosquitoScene(clips *sound.ClipPlayer) *MosquitoScene {
	return &MosquitoScene{clips: clips}
}

func (ms *MosquitoScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if ms.footer != nil {
		ms.footer.UI.Update()
	}
}

func (ms *MosquitoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent flashes from the OS window background
	screen.Fill(cfg.Footer.Background)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)

	if ms.footer != nil {
		ms.footer.UI.Draw(screen)
	}
}

// QuitRequested reports whether the player asked to leave this frame.
func (ms *MosquitoScene) QuitRequested() bool {
	return ms.ecs != nil && systems.QuitRequested(ms.ecs)
}

// Close releases the clip player. Safe to call more than once, and before the
// scene ever updated.
func (ms *MosquitoScene) Close() {
	ms.closeOnce.Do(func() {
		if ms.ecs != nil {
			systems.ReleaseAudio(ms.ecs)
		}
		if ms.clips != nil {
			ms.clips.Release()
		}
	})
}

func (ms *MosquitoScene) configure() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: debug overlay disabled: %v", err)
	}

	footer, err := ui.NewFooterUI()
	if err != nil {
		log.Printf("Warning: could not build footer: %v", err)
	}
	ms.footer = footer

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, audio last so taps from this frame play this frame
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateMosquito)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawCanvas)
	ecs.AddRenderer(cfg.Default, systems.DrawTrail)
	ecs.AddRenderer(cfg.Default, systems.DrawMosquito)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ms.ecs = ecs

	factory.CreateMosquito(ms.ecs)
	systems.SetupAudio(ms.ecs, ms.clips)
	systems.GetOrCreateDebug(ms.ecs)
}
