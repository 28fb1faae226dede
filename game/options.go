package game

import (
	"math/rand/v2"
	"time"
)

// Option configures a Game during creation.
//
// Example:
//
//	g, err := game.New(surface, kb, game.SystemClock{}, game.DefaultConfig(),
//	    game.WithSeed(42),
//	    game.WithListener(player.Handle))
type Option func(*options)

type options struct {
	rng       *rand.Rand
	listeners []Listener
	fixtures  []Fixture
	replace   bool
}

func defaultOptions() options {
	now := uint64(time.Now().UnixNano())
	return options{
		rng: rand.New(rand.NewPCG(now, now>>1|1)),
	}
}

// WithRand sets the random source used for spawn batches.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithListener registers a lifecycle event listener. May be repeated.
func WithListener(l Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listeners = append(o.listeners, l)
		}
	}
}

// WithFixtures replaces Config.Fixtures. An empty list removes them.
func WithFixtures(fs ...Fixture) Option {
	return func(o *options) {
		o.fixtures = fs
		o.replace = true
	}
}
