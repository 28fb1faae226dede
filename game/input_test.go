package game

import (
	"testing"
	"time"
)

func TestKeyboardClickLatchesAcrossPoll(t *testing.T) {
	kb := NewKeyboard()

	kb.Press(KeySpawn)
	kb.Release(KeySpawn)
	kb.Poll()
	if !kb.Clicked(KeySpawn) {
		t.Error("press and release between polls lost the click")
	}
	if !kb.Pressed(KeySpawn) {
		t.Error("press and release between polls lost the held frame")
	}

	kb.Poll()
	if kb.Clicked(KeySpawn) || kb.Pressed(KeySpawn) {
		t.Error("click survived a second poll")
	}
}

func TestKeyboardHoldClicksOnce(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(KeyDelete)
	kb.Poll()
	if !kb.Clicked(KeyDelete) {
		t.Fatal("first frame of a press is not a click")
	}
	for frame := range 3 {
		kb.Press(KeyDelete) // auto-repeat
		kb.Poll()
		if kb.Clicked(KeyDelete) {
			t.Errorf("frame %d: held key clicked again", frame)
		}
		if !kb.Pressed(KeyDelete) {
			t.Errorf("frame %d: held key not pressed", frame)
		}
	}
}

func TestKeyboardReleaseAll(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(KeyLeft)
	kb.Press(KeyUp)
	kb.Poll()
	kb.ReleaseAll()
	kb.Poll()
	for _, k := range []Key{KeyLeft, KeyUp} {
		if kb.Pressed(k) {
			t.Errorf("%v still pressed after ReleaseAll", k)
		}
	}
}

func TestKeyboardIgnoresUnknownKeys(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(Key(-1))
	kb.Press(keyCount)
	kb.Release(keyCount)
	kb.Poll()
	if kb.Pressed(keyCount) || kb.Clicked(Key(-1)) {
		t.Error("unknown key reported as pressed")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyLeft, "left"},
		{KeySpawn, "spawn"},
		{KeyDelete, "delete"},
		{Key(42), "Key(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	c.Advance(time.Second)
	c.Advance(-time.Hour)
	if got := c.Now().Sub(epoch); got != time.Second {
		t.Errorf("elapsed = %v, want 1s", got)
	}
}
