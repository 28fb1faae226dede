package canvas

import (
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shapeplay/game"
)

type fakeSource struct {
	press, release func(gpucontext.Key, gpucontext.Modifiers)
}

func (f *fakeSource) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers))   { f.press = fn }
func (f *fakeSource) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { f.release = fn }

func TestBindDefaultKeyMap(t *testing.T) {
	src := &fakeSource{}
	kb := game.NewKeyboard()
	Bind(src, kb, nil)

	tests := []struct {
		key  gpucontext.Key
		want game.Key
	}{
		{gpucontext.KeyLeft, game.KeyLeft},
		{gpucontext.KeyRight, game.KeyRight},
		{gpucontext.KeyUp, game.KeyUp},
		{gpucontext.KeyDown, game.KeyDown},
		{gpucontext.KeySpace, game.KeySpawn},
		{gpucontext.KeyD, game.KeyDelete},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			src.press(tt.key, 0)
			kb.Poll()
			if !kb.Pressed(tt.want) || !kb.Clicked(tt.want) {
				t.Errorf("after press: pressed %v, clicked %v", kb.Pressed(tt.want), kb.Clicked(tt.want))
			}
			src.release(tt.key, gpucontext.ModShift)
			kb.Poll()
			if kb.Pressed(tt.want) {
				t.Error("still pressed after release")
			}
		})
	}
}

func TestBindIgnoresUnmappedKeys(t *testing.T) {
	src := &fakeSource{}
	kb := game.NewKeyboard()
	Bind(src, kb, KeyMap{gpucontext.KeyEnter: game.KeySpawn})

	src.press(gpucontext.KeySpace, 0)
	kb.Poll()
	if kb.Clicked(game.KeySpawn) {
		t.Error("Space clicked spawn with a custom map")
	}
	src.press(gpucontext.KeyEnter, 0)
	kb.Poll()
	if !kb.Clicked(game.KeySpawn) {
		t.Error("Enter did not click spawn")
	}
}
