// Package sfx plays short synthesized blips for game events.
package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/game"
)

// SampleRate is the output sample rate.
const SampleRate = beep.SampleRate(44100)

const (
	blipDuration  = 60 * time.Millisecond
	buzzDuration  = 150 * time.Millisecond
	tickDuration  = 25 * time.Millisecond
	chimeDuration = 90 * time.Millisecond
	attack        = 5 * time.Millisecond
)

// Player mixes event sounds into the speaker.
type Player struct {
	mu      sync.Mutex
	volume  float64
	mixer   *beep.Mixer
	started bool
}

// New returns a player at the given master volume in [0, 1].
func New(volume float64) *Player {
	return &Player{
		volume: min(max(volume, 0), 1),
		mixer:  &beep.Mixer{},
	}
}

// Start opens the audio device. Without it Handle is a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("sfx: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	shapeplay.Logger().Debug("sfx: speaker started", "rate", int(SampleRate))
	return nil
}

// Handle queues the sound for e. It is a game.Listener.
func (p *Player) Handle(e game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	s := Sound(e, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Sound returns the streamer played for e at volume, or nil for silent
// events.
//
// Spawns blip higher for larger batches, arming a deletion buzzes,
// each aging pass ticks and the end of an episode chimes.
func Sound(e game.Event, volume float64) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch e.Kind {
	case game.EventSpawned:
		steps := min(max(e.Count, 1), 12)
		freq := 440 * math.Pow(2, float64(steps)/12)
		s, err = Tone(generators.SquareTone, freq, blipDuration, attack, blipDuration/2)
		s = withVolume(s, 0.4)
	case game.EventDeletionArmed:
		s, err = Tone(generators.SawtoothTone, 110, buzzDuration, attack, buzzDuration/3)
		s = withVolume(s, 0.5)
	case game.EventRemoved:
		s, err = Tone(generators.SineTone, 1320, tickDuration, 0, tickDuration/2)
		s = withVolume(s, 0.3)
	case game.EventEpisodeEnded:
		var lo, hi beep.Streamer
		if lo, err = note(660); err == nil {
			hi, err = note(880)
		}
		s = beep.Seq(lo, hi)
	default:
		return nil
	}
	if err != nil {
		shapeplay.Logger().Warn("sfx: tone", "event", e.Kind, "err", err)
		return nil
	}
	return withVolume(s, volume)
}

func note(freq float64) (beep.Streamer, error) {
	return Tone(generators.SineTone, freq, chimeDuration, attack, chimeDuration/2)
}
