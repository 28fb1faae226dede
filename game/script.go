package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is the set of keys held during one scripted frame.
type Step uint8

// Has reports whether k is held in the step.
func (s Step) Has(k Key) bool {
	return k >= 0 && k < keyCount && s&(1<<k) != 0
}

// Apply presses the keys of s on kb and releases all others.
func (s Step) Apply(kb *Keyboard) {
	for k := range keyCount {
		if s.Has(k) {
			kb.Press(k)
		} else {
			kb.Release(k)
		}
	}
}

var scriptKeys = map[rune]Key{
	'L': KeyLeft,
	'R': KeyRight,
	'U': KeyUp,
	'D': KeyDown,
	'S': KeySpawn,
	'X': KeyDelete,
}

// Script is a recorded input sequence, one step per frame.
type Script []Step

// ParseScript parses a whitespace separated list of steps. A step is "."
// for no keys or a run of key letters (L, R, U, D for directions, S to
// spawn, X to delete), optionally followed by "*n" to repeat it n times:
//
//	"S . R*20 X .*40"
//
// Clicks need a rising edge, so "S S" is one spawn held for two frames
// while "S . S" spawns twice.
func ParseScript(src string) (Script, error) {
	var out Script
	for _, tok := range strings.Fields(src) {
		body, repeat := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: bad repeat in %q", ErrBadScript, tok)
			}
			body, repeat = tok[:i], n
		}

		var step Step
		if body != "." {
			if body == "" {
				return nil, fmt.Errorf("%w: empty step in %q", ErrBadScript, tok)
			}
			for _, r := range strings.ToUpper(body) {
				k, ok := scriptKeys[r]
				if !ok {
					return nil, fmt.Errorf("%w: unknown key %q in %q", ErrBadScript, r, tok)
				}
				step |= 1 << k
			}
		}
		for range repeat {
			out = append(out, step)
		}
	}
	return out, nil
}

// String formats the script with one token per step.
func (s Script) String() string {
	toks := make([]string, len(s))
	for i, st := range s {
		if st == 0 {
			toks[i] = "."
			continue
		}
		var b strings.Builder
		for _, r := range "LRUDSX" {
			if st.Has(scriptKeys[r]) {
				b.WriteRune(r)
			}
		}
		toks[i] = b.String()
	}
	return strings.Join(toks, " ")
}
