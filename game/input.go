package game

import (
	"fmt"
	"sync"
)

// Key is a logical game key. Front ends map physical keys onto these.
type Key int

// Game keys.
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpawn
	KeyDelete

	keyCount
)

var keyNames = [keyCount]string{"left", "right", "up", "down", "spawn", "delete"}

// String returns the key name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Input answers per-frame key queries.
type Input interface {
	// Pressed reports whether k is held this frame.
	Pressed(k Key) bool
	// Clicked reports whether k went down since the previous frame.
	Clicked(k Key) bool
}

// Poller is implemented by inputs that latch events between frames.
// Game.Update calls Poll before reading any key.
type Poller interface {
	Poll()
}

// Keyboard is an Input fed by press and release events, typically from
// platform callbacks. Events may arrive from any goroutine; queries
// answer from the snapshot taken by the last Poll.
type Keyboard struct {
	mu      sync.Mutex
	down    [keyCount]bool
	latched [keyCount]bool

	held    [keyCount]bool
	clicked [keyCount]bool
}

var (
	_ Input  = (*Keyboard)(nil)
	_ Poller = (*Keyboard)(nil)
)

// NewKeyboard returns a keyboard with every key up.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press records a key-down event. Repeated presses while held (auto-repeat)
// do not produce additional clicks.
func (kb *Keyboard) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	kb.mu.Lock()
	if !kb.down[k] {
		kb.latched[k] = true
	}
	kb.down[k] = true
	kb.mu.Unlock()
}

// Release records a key-up event.
func (kb *Keyboard) Release(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	kb.mu.Lock()
	kb.down[k] = false
	kb.mu.Unlock()
}

// ReleaseAll releases every key, as on focus loss.
func (kb *Keyboard) ReleaseAll() {
	kb.mu.Lock()
	kb.down = [keyCount]bool{}
	kb.mu.Unlock()
}

// Poll snapshots the key state for the next frame. A press and release
// between two polls still counts as one click and one held frame.
func (kb *Keyboard) Poll() {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	for k := range kb.down {
		kb.held[k] = kb.down[k] || kb.latched[k]
		kb.clicked[k] = kb.latched[k]
		kb.latched[k] = false
	}
}

// Pressed reports whether k was held at the last Poll.
func (kb *Keyboard) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return kb.held[k]
}

// Clicked reports whether k went down between the last two polls.
func (kb *Keyboard) Clicked(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return kb.clicked[k]
}
