package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shapeplay/game"
)

var epoch = time.Unix(1000, 0)

func TestKeyTrackerMapsKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Key
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.KeyLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.KeyRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.KeyDown},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.KeySpawn},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.KeyDelete},
		{"shift D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), game.KeyDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := game.NewKeyboard()
			tr := NewKeyTracker(kb, DefaultKeyMap(), 0)
			if !tr.HandleKey(tt.ev, epoch) {
				t.Fatal("HandleKey() = false")
			}
			kb.Poll()
			if !kb.Clicked(tt.want) {
				t.Errorf("%v not clicked", tt.want)
			}
		})
	}
}

func TestKeyTrackerIgnoresUnmapped(t *testing.T) {
	kb := game.NewKeyboard()
	tr := NewKeyTracker(kb, DefaultKeyMap(), 0)
	if tr.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), epoch) {
		t.Error("'x' was mapped")
	}
}

func TestKeyTrackerHoldEmulation(t *testing.T) {
	kb := game.NewKeyboard()
	tr := NewKeyTracker(kb, DefaultKeyMap(), 100*time.Millisecond)
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	tr.HandleKey(right, epoch)
	kb.Poll()
	if !kb.Clicked(game.KeyRight) {
		t.Fatal("first press did not click")
	}
	// Auto-repeat keeps the key alive.
	for i := 1; i <= 5; i++ {
		now := epoch.Add(time.Duration(i) * 50 * time.Millisecond)
		tr.HandleKey(right, now)
		tr.Expire(now)
		kb.Poll()
		if !kb.Pressed(game.KeyRight) {
			t.Fatalf("repeat %d: key released while repeating", i)
		}
		if kb.Clicked(game.KeyRight) {
			t.Fatalf("repeat %d: auto-repeat clicked again", i)
		}
	}

	// Repeats stop: released once the hold elapses.
	last := epoch.Add(250 * time.Millisecond)
	tr.Expire(last.Add(99 * time.Millisecond))
	kb.Poll()
	if !kb.Pressed(game.KeyRight) {
		t.Error("released before the hold elapsed")
	}
	tr.Expire(last.Add(100 * time.Millisecond))
	kb.Poll()
	if kb.Pressed(game.KeyRight) {
		t.Error("still pressed after the hold elapsed")
	}
}

func TestKeyTrackerRepeatedTaps(t *testing.T) {
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		key   game.Key
		gap   time.Duration
		click bool
	}{
		{"spawn taps", space, game.KeySpawn, 200 * time.Millisecond, true},
		{"spawn auto-repeat", space, game.KeySpawn, 30 * time.Millisecond, false},
		{"spawn at repeat gap", space, game.KeySpawn, RepeatGap, false},
		{"arrow taps", right, game.KeyRight, 200 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := game.NewKeyboard()
			tr := NewKeyTracker(kb, DefaultKeyMap(), DefaultHold)

			tr.HandleKey(tt.ev, epoch)
			kb.Poll()
			if !kb.Clicked(tt.key) {
				t.Fatal("first press did not click")
			}

			now := epoch.Add(tt.gap)
			tr.HandleKey(tt.ev, now)
			tr.Expire(now)
			kb.Poll()
			if got := kb.Clicked(tt.key); got != tt.click {
				t.Errorf("second press clicked = %v, want %v", got, tt.click)
			}
			if !kb.Pressed(tt.key) {
				t.Error("key not held after the second press")
			}
		})
	}
}

func TestKeyTrackerReleaseAll(t *testing.T) {
	kb := game.NewKeyboard()
	tr := NewKeyTracker(kb, DefaultKeyMap(), time.Hour)
	tr.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), epoch)
	tr.ReleaseAll()
	kb.Poll()
	kb.Poll()
	if kb.Pressed(game.KeyUp) {
		t.Error("key pressed after ReleaseAll")
	}
	if len(tr.last) != 0 {
		t.Errorf("%d keys still tracked", len(tr.last))
	}
}
