package components

import (
	"github.com/automoto/skeeter/sound"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Player       *sound.ClipPlayer
	SFXVolume    float64 // 0.0 - 1.0
	PendingClips int     // taps this frame still waiting for a clip
	LastClip     int     // index of the clip started most recently, -1 before any
}

var Audio = donburi.NewComponentType[AudioData]()
