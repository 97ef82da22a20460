package config

import (
	"image/color"
	"os"
	"time"

	"github.com/automoto/skeeter/shared/gamemath"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ticks per second of the update loop

	FooterHeight int // strip under the canvas holding the hint text
	Background   color.RGBA
}

// MosquitoConfig contains the motion and trail settings for the mosquito
type MosquitoConfig struct {
	Start          gamemath.Vec  // rest position before the first tap
	TravelDuration time.Duration // time to ease to a tapped point
	Easing         string        // name understood by motion.Easing
	TrailCapacity  int           // tap points kept for the debug trail, 0 keeps all
}

// DebugConfig contains the debug overlay settings
type DebugConfig struct {
	Overlay    bool // draw trail and readout from the first frame
	TrailColor color.RGBA
	TrailWidth float32
	TrailDash  []float64
	TextColor  color.RGBA
}

// FooterConfig contains the footer label settings
type FooterConfig struct {
	Text       string
	FontSize   float64
	TextColor  color.RGBA
	Background color.RGBA
	Padding    int
}

// Global configuration instances
var C *Config
var Mosquito MosquitoConfig
var Debug DebugConfig
var Footer FooterConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{A: 255}
	Gray      = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	DarkGreen = color.RGBA{R: 0, G: 110, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:        480,
		Height:       800,
		TPS:          60,
		FooterHeight: 72,
		Background:   White,
	}

	Mosquito = MosquitoConfig{
		Start:          gamemath.Vec{X: 100, Y: 100},
		TravelDuration: 1000 * time.Millisecond,
		Easing:         "fastOutSlowIn",
		TrailCapacity:  0,
	}

	Debug = DebugConfig{
		Overlay:    os.Getenv("SKEETER_DEBUG") == "1",
		TrailColor: Gray,
		TrailWidth: 5,
		TrailDash:  []float64{10, 20},
		TextColor:  DarkGreen,
	}

	Footer = FooterConfig{
		Text:       "Tap anywhere to move the mosquito!\nmade by firas with ♥",
		FontSize:   14,
		TextColor:  Black,
		Background: White,
		Padding:    16,
	}
}

// FrameDuration is the simulated time covered by one update tick.
func FrameDuration() time.Duration {
	return time.Second / time.Duration(C.TPS)
}

// CanvasHeight is the height of the tappable area above the footer.
func CanvasHeight() int {
	return C.Height - C.FooterHeight
}
