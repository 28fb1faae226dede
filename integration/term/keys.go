package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shapeplay/game"
)

// DefaultHold is how long a key stays down after its last press event.
// It has to outlast the terminal's auto-repeat delay, or a held key is
// released and pressed again, clicking a second time.
const DefaultHold = 500 * time.Millisecond

// RepeatGap is the longest gap between two events of one held key once
// auto-repeat runs. A spawn or delete event arriving later than this is a
// fresh tap and clicks again. A held key clicks a second time when its
// repetition starts.
const RepeatGap = 100 * time.Millisecond

// KeyMap maps terminal keys to game keys. Runes are matched case-
// insensitively for letters.
type KeyMap struct {
	Keys  map[tcell.Key]game.Key
	Runes map[rune]game.Key
}

// DefaultKeyMap binds the arrow keys, Space to spawn and D to delete.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Keys: map[tcell.Key]game.Key{
			tcell.KeyLeft:  game.KeyLeft,
			tcell.KeyRight: game.KeyRight,
			tcell.KeyUp:    game.KeyUp,
			tcell.KeyDown:  game.KeyDown,
		},
		Runes: map[rune]game.Key{
			' ': game.KeySpawn,
			'd': game.KeyDelete,
		},
	}
}

func (m KeyMap) lookup(ev *tcell.EventKey) (game.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := m.Runes[r]
		return k, ok
	}
	k, ok := m.Keys[ev.Key()]
	return k, ok
}

// KeyTracker feeds terminal key events into a game.Keyboard and releases
// keys that stopped repeating.
type KeyTracker struct {
	kb   *game.Keyboard
	keys KeyMap
	hold time.Duration
	last map[game.Key]time.Time
}

// NewKeyTracker returns a tracker for kb. A hold of zero uses DefaultHold.
func NewKeyTracker(kb *game.Keyboard, keys KeyMap, hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyTracker{kb: kb, keys: keys, hold: hold, last: make(map[game.Key]time.Time)}
}

// HandleKey presses the game key mapped to ev at time now. It reports
// whether ev was mapped.
func (t *KeyTracker) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	k, ok := t.keys.lookup(ev)
	if !ok {
		return false
	}
	if at, down := t.last[k]; down && edgeOnly(k) && now.Sub(at) > RepeatGap {
		t.kb.Release(k)
	}
	t.kb.Press(k)
	t.last[k] = now
	return true
}

// edgeOnly reports whether the game reads k only as a click.
func edgeOnly(k game.Key) bool {
	return k == game.KeySpawn || k == game.KeyDelete
}

// Expire releases every key whose last press is older than the hold time.
func (t *KeyTracker) Expire(now time.Time) {
	for k, at := range t.last {
		if now.Sub(at) >= t.hold {
			t.kb.Release(k)
			delete(t.last, k)
		}
	}
}

// ReleaseAll releases every tracked key, as on focus loss.
func (t *KeyTracker) ReleaseAll() {
	t.kb.ReleaseAll()
	clear(t.last)
}
