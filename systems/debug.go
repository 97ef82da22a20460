package systems

import (
	"fmt"

	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/fonts"
	"github.com/automoto/skeeter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug flips the overlay when the toggle action is pressed.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if JustPressed(input, cfg.ActionToggleDebug) {
		d := GetOrCreateDebug(ecs)
		d.Enabled = !d.Enabled
	}
}

// GetOrCreateDebug returns the singleton Debug component, seeded from config.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Overlay})
	}
	return components.Debug.Get(entry)
}

// DrawTrail draws the dashed path through past taps when debugging.
func DrawTrail(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}
	entry, ok := tags.Mosquito.First(ecs.World)
	if !ok {
		return
	}
	trail := components.Trail.Get(entry)
	canvas := screen.SubImage(CanvasBounds()).(*ebiten.Image)
	for i := 0; i+1 < len(trail.Points); i++ {
		strokeDashed(canvas, trail.Points[i], trail.Points[i+1], cfg.Debug.TrailDash, cfg.Debug.TrailWidth, cfg.Debug.TrailColor)
	}
}

// DrawDebug prints the mosquito state in the top-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled || !fonts.Loaded(fonts.Mono) {
		return
	}
	for i, line := range DebugLines(ecs) {
		text.Draw(screen, line, fonts.Mono.Get(), 8, 16+i*14, cfg.Debug.TextColor)
	}
}

// DebugLines is the overlay readout.
func DebugLines(ecs *ecs.ECS) []string {
	var lines []string

	entry, ok := tags.Mosquito.First(ecs.World)
	if ok {
		m := components.Mosquito.Get(entry)
		cur, rest := m.Motion.Current(), m.Motion.Rest()
		lines = append(lines,
			fmt.Sprintf("pos  %6.1f %6.1f", cur.X, cur.Y),
			fmt.Sprintf("rest %6.1f %6.1f", rest.X, rest.Y),
			fmt.Sprintf("head %5.1f  %s %3.0f%%", m.Heading, m.Motion.State(), m.Motion.Progress()*100),
			fmt.Sprintf("trail %d", len(components.Trail.Get(entry).Points)),
		)
	}

	if a, ok := components.Audio.First(ecs.World); ok {
		audioData := components.Audio.Get(a)
		if audioData.Player != nil {
			lines = append(lines, fmt.Sprintf("clip %d/%d", audioData.Player.Index(), audioData.Player.Len()))
		}
	}
	return lines
}
