package canvas

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shapeplay/game"
)

// KeySource is the keyboard half of gpucontext.EventSource.
type KeySource interface {
	OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers))
	OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers))
}

// KeyMap maps window keys to game keys.
type KeyMap map[gpucontext.Key]game.Key

// DefaultKeyMap binds the arrow keys, Space to spawn and D to delete.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		gpucontext.KeyLeft:  game.KeyLeft,
		gpucontext.KeyRight: game.KeyRight,
		gpucontext.KeyUp:    game.KeyUp,
		gpucontext.KeyDown:  game.KeyDown,
		gpucontext.KeySpace: game.KeySpawn,
		gpucontext.KeyD:     game.KeyDelete,
	}
}

// Bind forwards mapped key events from src into kb. Unmapped keys are
// ignored. A nil map uses DefaultKeyMap.
func Bind(src KeySource, kb *game.Keyboard, m KeyMap) {
	if m == nil {
		m = DefaultKeyMap()
	}
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if k, ok := m[key]; ok {
			kb.Press(k)
		}
	})
	src.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if k, ok := m[key]; ok {
			kb.Release(k)
		}
	})
}
