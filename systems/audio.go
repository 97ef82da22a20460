package systems

import (
	"log"
	"sync"

	"github.com/automoto/skeeter/assets"
	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - the context can only be created once per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// ebitenBackend mixes clips through the Ebitengine audio context.
type ebitenBackend struct {
	context *audio.Context
}

func (b ebitenBackend) NewStream(pcm []byte) sound.Stream {
	return b.context.NewPlayerFromBytes(pcm)
}

// LoadClipPlayer decodes every bundled clip up front so the first tap plays
// without decode lag. Clips that fail to decode become silent slots.
func LoadClipPlayer() (*sound.ClipPlayer, error) {
	initGlobalAudio()

	loader := assets.NewAudioLoader(cfg.Audio.SampleRate)
	manifest, err := loader.LoadManifest(cfg.Sound.Manifest)
	if err != nil {
		return nil, err
	}
	if len(manifest.Clips) != cfg.Sound.ClipCount {
		log.Printf("Warning: clip manifest lists %d clips, expected %d", len(manifest.Clips), cfg.Sound.ClipCount)
	}

	clips := loader.LoadClips(manifest)
	return sound.NewClipPlayer(ebitenBackend{context: globalAudioContext}, clips), nil
}

// SetupAudio installs player as the scene's clip player.
func SetupAudio(e *ecs.ECS, player *sound.ClipPlayer) *components.AudioData {
	audioData := GetOrCreateAudio(e)
	audioData.Player = player
	if player != nil {
		player.SetVolume(audioData.SFXVolume)
	}
	return audioData
}

// UpdateAudio starts one clip for every tap queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for ; audioData.PendingClips > 0; audioData.PendingClips-- {
		if audioData.Player == nil {
			continue
		}
		audioData.LastClip = audioData.Player.PlayNext()
	}
}

// QueueClip asks for the next clip in the cycle to be played this frame
func QueueClip(e *ecs.ECS) {
	GetOrCreateAudio(e).PendingClips++
}

// ReleaseAudio frees the clip player. Safe to call more than once.
func ReleaseAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.Player != nil {
		audioData.Player.Release()
	}
	audioData.PendingClips = 0
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
			LastClip:  -1,
		})
	}
	return components.Audio.Get(entry)
}
