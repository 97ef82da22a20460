package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/skeeter/sound"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

//go:embed all:audio
var audioFS embed.FS

// ClipEntry describes one clip in the manifest.
type ClipEntry struct {
	ID     string  `yaml:"id"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// ClipManifest is the ordered clip list bundled with the game.
type ClipManifest struct {
	Clips []ClipEntry `yaml:"clips"`
}

// ParseClipManifest decodes and validates a YAML clip manifest.
func ParseClipManifest(data []byte) (*ClipManifest, error) {
	var m ClipManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse clip manifest: %w", err)
	}
	if len(m.Clips) == 0 {
		return nil, fmt.Errorf("clip manifest lists no clips")
	}

	seen := make(map[string]bool, len(m.Clips))
	for i := range m.Clips {
		c := &m.Clips[i]
		if c.ID == "" || c.File == "" {
			return nil, fmt.Errorf("clip %d: id and file are required", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("clip %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = true
		if c.Volume <= 0 {
			c.Volume = 1.0
		}
	}
	return &m, nil
}

// AudioLoader decodes clip files into PCM at the mixer's sample rate.
type AudioLoader struct {
	fsys       fs.FS
	root       string
	sampleRate int
	cache      map[string][]byte
}

// NewAudioLoader reads from the embedded audio directory.
func NewAudioLoader(sampleRate int) *AudioLoader {
	return NewAudioLoaderFS(audioFS, "audio", sampleRate)
}

// NewAudioLoaderFS reads clips from root inside fsys.
func NewAudioLoaderFS(fsys fs.FS, root string, sampleRate int) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		root:       root,
		sampleRate: sampleRate,
		cache:      make(map[string][]byte),
	}
}

// LoadManifest reads and parses the manifest at name, relative to the loader root.
func (l *AudioLoader) LoadManifest(name string) (*ClipManifest, error) {
	data, err := fs.ReadFile(l.fsys, path.Join(l.root, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read clip manifest %s: %w", name, err)
	}
	return ParseClipManifest(data)
}

// Decode returns the PCM bytes for a clip file, decoding it on first use.
func (l *AudioLoader) Decode(file string) ([]byte, error) {
	if pcm, ok := l.cache[file]; ok {
		return pcm, nil
	}

	data, err := fs.ReadFile(l.fsys, path.Join(l.root, file))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", file, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(file)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", file, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", file, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", file, err)
	}
	l.cache[file] = pcm
	return pcm, nil
}

// LoadClips decodes every clip in the manifest, keeping manifest order.
// A clip that fails to decode leaves a nil slot so playback can skip it.
func (l *AudioLoader) LoadClips(m *ClipManifest) []*sound.Clip {
	clips := make([]*sound.Clip, len(m.Clips))
	for i, entry := range m.Clips {
		pcm, err := l.Decode(entry.File)
		if err != nil {
			log.Printf("Warning: could not load clip %q: %v", entry.ID, err)
			continue
		}
		clips[i] = &sound.Clip{
			ID:     entry.ID,
			PCM:    pcm,
			Volume: entry.Volume,
		}
	}
	return clips
}
