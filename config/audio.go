package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig points at the bundled clip list
type SoundConfig struct {
	Manifest  string // path inside the embedded audio directory
	ClipCount int    // clips the manifest is expected to list
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Manifest:  "clips.yaml",
		ClipCount: 5,
	}
}
