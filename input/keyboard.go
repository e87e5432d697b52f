// Package input holds keyboard state shared between the platform and the game loop
package input

import (
	"time"
)

// Key identifies a game-relevant key
type Key uint8

const (
	KeyArrowUp Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyQ
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace

	NumKeys
)

var keyNames = [NumKeys]string{
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyQ:          "q",
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
	KeySpace:      "space",
}

func (k Key) String() string {
	if k >= NumKeys {
		return "unknown"
	}
	return keyNames[k]
}

// Modifier is a bitmask of modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// State is a keyboard snapshot, taken once per frame
type State struct {
	Keys  [NumKeys]bool
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Pressed reports whether key is down in the snapshot
func (s State) Pressed(key Key) bool {
	if key >= NumKeys {
		return false
	}
	return s.Keys[key]
}

// Source is the read side consumed by component updates
type Source interface {
	KeyIsPressed(key Key) bool
	State() State
}

// DefaultHoldWindow covers the initial auto-repeat delay of common terminals
const DefaultHoldWindow = 500 * time.Millisecond

// Keyboard derives held-key state from press events
// Terminals report no key release, so a key counts as held for the hold window after its last press or repeat
// Press is called by the platform event drain and Update once per frame, both on the frame thread
type Keyboard struct {
	hold      time.Duration
	lastPress [NumKeys]time.Time
	lastMods  Modifier
	modsAt    time.Time
	state     State
}

// NewKeyboard creates a keyboard with the given hold window, DefaultHoldWindow if non-positive
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keyboard{hold: hold}
}

// Press records a key press or repeat
func (k *Keyboard) Press(key Key, mods Modifier, at time.Time) {
	if key < NumKeys {
		k.lastPress[key] = at
	}
	k.lastMods = mods
	k.modsAt = at
}

// Release forgets a key immediately, used for platforms that do report releases
func (k *Keyboard) Release(key Key) {
	if key < NumKeys {
		k.lastPress[key] = time.Time{}
	}
}

// Update rebuilds the snapshot for the frame starting at now
func (k *Keyboard) Update(now time.Time) {
	var s State
	for i := range k.lastPress {
		at := k.lastPress[i]
		s.Keys[i] = !at.IsZero() && now.Sub(at) < k.hold
	}
	if !k.modsAt.IsZero() && now.Sub(k.modsAt) < k.hold {
		s.Shift = k.lastMods&ModShift != 0
		s.Ctrl = k.lastMods&ModCtrl != 0
		s.Alt = k.lastMods&ModAlt != 0
	}
	k.state = s
}

// KeyIsPressed reports whether key is down in the current snapshot
func (k *Keyboard) KeyIsPressed(key Key) bool {
	return k.state.Pressed(key)
}

// State returns the current snapshot
func (k *Keyboard) State() State {
	return k.state
}
