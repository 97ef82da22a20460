package systems

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/automoto/skeeter/components"
	cfg "github.com/automoto/skeeter/config"
	"github.com/automoto/skeeter/motion"
	"github.com/automoto/skeeter/shared/gamemath"
	"github.com/automoto/skeeter/sound"
	"github.com/automoto/skeeter/systems/factory"
	"github.com/automoto/skeeter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type nopStream struct{ playing bool }

func (s *nopStream) Play()             { s.playing = true }
func (s *nopStream) Pause()            { s.playing = false }
func (s *nopStream) IsPlaying() bool   { return s.playing }
func (s *nopStream) SetVolume(float64) {}
func (s *nopStream) Close() error      { return nil }

type countingBackend struct{ started int }

func (b *countingBackend) NewStream(pcm []byte) sound.Stream {
	b.started++
	return &nopStream{}
}

func newTestWorld(t *testing.T) (*ecs.ECS, *countingBackend) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateMosquito(e)

	backend := &countingBackend{}
	clips := make([]*sound.Clip, 5)
	for i := range clips {
		clips[i] = &sound.Clip{ID: "c", PCM: []byte{1, 2, 3, 4}}
	}
	SetupAudio(e, sound.NewClipPlayer(backend, clips))
	return e, backend
}

// step runs the per-frame systems that do not poll real devices.
func step(e *ecs.ECS, frames int) {
	for i := 0; i < frames; i++ {
		UpdateMosquito(e)
		UpdateAudio(e)
	}
}

func framesFor(d time.Duration) int {
	f := cfg.FrameDuration()
	return int((d + f/2) / f)
}

func tap(t *testing.T, e *ecs.ECS, x, y int) {
	t.Helper()
	if !SubmitTap(e, image.Pt(x, y)) {
		t.Fatalf("tap at (%d,%d) was rejected", x, y)
	}
	step(e, 1)
}

func mosquito(e *ecs.ECS) *components.MosquitoData {
	entry, _ := tags.Mosquito.First(e.World)
	return components.Mosquito.Get(entry)
}

func TestTapCyclesClips(t *testing.T) {
	for _, taps := range []int{1, 4, 5, 7, 11} {
		e, backend := newTestWorld(t)
		for i := 0; i < taps; i++ {
			tap(t, e, 10+i, 20+i)
		}
		player := GetOrCreateAudio(e).Player
		if player.Index() != taps%5 {
			t.Fatalf("after %d taps clip index = %d, want %d", taps, player.Index(), taps%5)
		}
		if backend.started != taps {
			t.Fatalf("after %d taps %d clips started", taps, backend.started)
		}
		if GetOrCreateAudio(e).LastClip != (taps-1)%5 {
			t.Fatalf("last clip = %d", GetOrCreateAudio(e).LastClip)
		}
	}
}

func TestTapSetsHeadingFromRest(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		want float64
	}{
		{"right", 200, 100, 90},
		{"down", 100, 200, 180},
		{"left", 0, 100, 270},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			tap(t, e, c.x, c.y)
			if got := mosquito(e).Heading; math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("heading = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTapEasesToTarget(t *testing.T) {
	e, _ := newTestWorld(t)
	tap(t, e, 200, 300)

	m := mosquito(e)
	start := cfg.Mosquito.Start
	cur := m.Motion.Current()
	if cur == start || cur == (gamemath.Vec{X: 200, Y: 300}) {
		t.Fatalf("expected an in-between position after one frame, got %v", cur)
	}

	step(e, framesFor(cfg.Mosquito.TravelDuration))

	if got := m.Motion.Current(); got != (gamemath.Vec{X: 200, Y: 300}) {
		t.Fatalf("settled at %v, want (200,300)", got)
	}
	if got := m.Motion.Rest(); got != (gamemath.Vec{X: 200, Y: 300}) {
		t.Fatalf("rest = %v", got)
	}
}

func TestTapMidFlightSnapsHeading(t *testing.T) {
	e, _ := newTestWorld(t)
	tap(t, e, 300, 100) // heading 90
	step(e, framesFor(cfg.Mosquito.TravelDuration)/3)

	m := mosquito(e)
	before := m.Motion.Current()

	if !SubmitTap(e, image.Pt(100, 400)) {
		t.Fatal("tap rejected")
	}
	UpdateMosquito(e)

	// rest is still the start, so the heading aims from (100,100) straight down
	if math.Abs(m.Heading-180) > 1e-9 {
		t.Fatalf("heading = %v, want 180 right after the tap", m.Heading)
	}
	after := m.Motion.Current()
	if after == before {
		t.Fatal("position should keep easing")
	}
	if math.Abs(after.X-before.X) > 50 || math.Abs(after.Y-before.Y) > 50 {
		t.Fatalf("retarget jumped from %v to %v", before, after)
	}

	step(e, framesFor(cfg.Mosquito.TravelDuration))
	if got := m.Motion.Current(); got != (gamemath.Vec{X: 100, Y: 400}) {
		t.Fatalf("settled at %v, want the newest target", got)
	}
}

func TestTapRightAfterArrivalAimsFromTarget(t *testing.T) {
	e, _ := newTestWorld(t)
	tap(t, e, 200, 100) // first frame of the flight
	step(e, framesFor(cfg.Mosquito.TravelDuration)-1)

	m := mosquito(e)
	if m.Motion.State() != motion.Idle {
		t.Fatalf("state after the travel duration = %v, want idle", m.Motion.State())
	}
	if got := m.Motion.Rest(); got != (gamemath.Vec{X: 200, Y: 100}) {
		t.Fatalf("rest = %v, want (200,100)", got)
	}

	tap(t, e, 200, 200)
	if math.Abs(m.Heading-180) > 1e-9 {
		t.Fatalf("heading = %v, want 180", m.Heading)
	}
}

func TestTapAppendsTrail(t *testing.T) {
	e, _ := newTestWorld(t)
	tap(t, e, 10, 10)
	tap(t, e, 20, 20)

	entry, _ := tags.Mosquito.First(e.World)
	trail := components.Trail.Get(entry)
	want := []gamemath.Vec{cfg.Mosquito.Start, {X: 10, Y: 10}, {X: 20, Y: 20}}
	if len(trail.Points) != len(want) {
		t.Fatalf("trail = %v", trail.Points)
	}
	for i := range want {
		if trail.Points[i] != want[i] {
			t.Fatalf("trail[%d] = %v, want %v", i, trail.Points[i], want[i])
		}
	}
}

func TestTrailKeepsEveryTap(t *testing.T) {
	e, _ := newTestWorld(t)
	for i := 0; i < 100; i++ {
		tap(t, e, 10+i, 10)
	}

	entry, _ := tags.Mosquito.First(e.World)
	if got := len(components.Trail.Get(entry).Points); got != 101 {
		t.Fatalf("trail holds %d points, want start plus 100 taps", got)
	}
}

func TestSubmitTapRules(t *testing.T) {
	e, _ := newTestWorld(t)

	if SubmitTap(e, image.Pt(10, cfg.CanvasHeight()+5)) {
		t.Fatal("tap on the footer should be ignored")
	}
	if SubmitTap(e, image.Pt(-1, 10)) {
		t.Fatal("tap outside the screen should be ignored")
	}
	if !SubmitTap(e, image.Pt(10, 10)) {
		t.Fatal("first tap of the frame should be accepted")
	}
	if SubmitTap(e, image.Pt(20, 20)) {
		t.Fatal("only one tap per frame")
	}
	step(e, 1)
	if !SubmitTap(e, image.Pt(20, 20)) {
		t.Fatal("tap on the next frame should be accepted")
	}
	if got := getOrCreateTap(e).Total; got != 2 {
		t.Fatalf("total taps = %d, want 2", got)
	}
}

func TestReleaseAudioTwice(t *testing.T) {
	e, backend := newTestWorld(t)
	tap(t, e, 50, 50)

	ReleaseAudio(e)
	ReleaseAudio(e)

	if !GetOrCreateAudio(e).Player.Released() {
		t.Fatal("player should be released")
	}

	// taps after teardown still move the mosquito but play nothing
	tap(t, e, 60, 60)
	if backend.started != 1 {
		t.Fatalf("clip started after release: %d", backend.started)
	}
}

func TestAudioWithoutPlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateMosquito(e)
	SetupAudio(e, nil)

	tap(t, e, 10, 10)
	ReleaseAudio(e)

	if GetOrCreateAudio(e).PendingClips != 0 {
		t.Fatal("pending clips should drain even without a player")
	}
}

func TestDebugLines(t *testing.T) {
	e, _ := newTestWorld(t)
	tap(t, e, 200, 100)

	lines := DebugLines(e)
	if len(lines) != 5 {
		t.Fatalf("got %d debug lines: %q", len(lines), lines)
	}
	if lines[4] != "clip 1/5" {
		t.Fatalf("clip line = %q", lines[4])
	}
}
