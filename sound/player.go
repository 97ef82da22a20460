// Package sound plays a fixed list of short clips round-robin, one stream at a time.
package sound

import (
	"log"
	"sync"
)

// Stream is a single playing voice. *audio.Player satisfies it.
type Stream interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Backend turns decoded PCM into a playable stream.
type Backend interface {
	NewStream(pcm []byte) Stream
}

// Clip is a decoded sound held in memory.
type Clip struct {
	ID     string
	PCM    []byte
	Volume float64 // multiplier on the player volume
}

// ClipPlayer cycles through its clips on each PlayNext call. Slots holding a
// nil clip failed to load; playing them does nothing, but the cursor still moves.
type ClipPlayer struct {
	backend Backend
	clips   []*Clip
	count   int
	cursor  int
	volume  float64
	active  Stream

	released    bool
	releaseOnce sync.Once
}

// NewClipPlayer keeps clips in the given order.
func NewClipPlayer(backend Backend, clips []*Clip) *ClipPlayer {
	return &ClipPlayer{
		backend: backend,
		clips:   clips,
		count:   len(clips),
		volume:  1.0,
	}
}

// PlayNext starts the clip under the cursor without waiting for it, then
// advances the cursor. Returns the index that was played.
func (p *ClipPlayer) PlayNext() int {
	if p.released || p.count == 0 {
		return p.cursor
	}

	idx := p.cursor
	p.cursor = (p.cursor + 1) % p.count

	clip := p.clips[idx]
	if clip == nil || len(clip.PCM) == 0 || p.backend == nil {
		log.Printf("Warning: clip %d is not loaded, skipping", idx)
		return idx
	}

	// one stream at a time: the new clip cuts off the previous one
	p.stopActive()

	stream := p.backend.NewStream(clip.PCM)
	if stream == nil {
		return idx
	}
	vol := p.volume
	if clip.Volume > 0 {
		vol *= clip.Volume
	}
	stream.SetVolume(vol)
	stream.Play()
	p.active = stream
	return idx
}

// Release stops playback and drops every clip. Only the first call has an effect.
func (p *ClipPlayer) Release() {
	p.releaseOnce.Do(func() {
		p.stopActive()
		p.clips = nil
		p.backend = nil
		p.released = true
	})
}

func (p *ClipPlayer) stopActive() {
	if p.active == nil {
		return
	}
	p.active.Pause()
	if err := p.active.Close(); err != nil {
		log.Printf("Warning: closing clip stream: %v", err)
	}
	p.active = nil
}

// SetVolume sets the base volume (0.0 - 1.0) for clips started afterwards.
func (p *ClipPlayer) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
}

// Index is the cursor: the clip the next PlayNext will start.
func (p *ClipPlayer) Index() int { return p.cursor }

// Len is the number of clip slots, including ones that failed to load.
func (p *ClipPlayer) Len() int { return p.count }

// Released reports whether Release has run.
func (p *ClipPlayer) Released() bool { return p.released }

// Playing reports whether the last started clip is still audible.
func (p *ClipPlayer) Playing() bool {
	return p.active != nil && p.active.IsPlaying()
}
