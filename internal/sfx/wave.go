package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Generator builds an endless periodic tone, such as generators.SineTone.
type Generator func(sr beep.SampleRate, freq float64) (beep.Streamer, error)

// Tone returns d of gen at freq Hz, faded in over attack and out over
// release.
func Tone(gen Generator, freq float64, d, attack, release time.Duration) (beep.Streamer, error) {
	s, err := gen(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	return Envelope(s, d, attack, release), nil
}

// Envelope cuts s to d and applies linear attack and release ramps. The
// release is clamped to d.
func Envelope(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	fadeIn := SampleRate.N(attack)
	fadeOut := min(SampleRate.N(release), total)

	body := beep.Take(total-fadeOut, s)
	if fadeIn > 0 {
		// Past fadeIn the transition holds its end gain.
		body = effects.Transition(body, fadeIn, 0, 1, effects.TransitionLinear)
	}
	if fadeOut == 0 {
		return body
	}
	tail := effects.Transition(beep.Take(fadeOut, s), fadeOut, 1, 0, effects.TransitionLinear)
	return beep.Seq(body, tail)
}

// withVolume scales s linearly by vol. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
