package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardHoldWindow(t *testing.T) {
	start := time.Unix(1000, 0)
	kb := NewKeyboard(100 * time.Millisecond)

	kb.Press(KeyArrowUp, 0, start)
	kb.Update(start.Add(10 * time.Millisecond))
	assert.True(t, kb.KeyIsPressed(KeyArrowUp))
	assert.False(t, kb.KeyIsPressed(KeyArrowDown))

	kb.Update(start.Add(150 * time.Millisecond))
	assert.False(t, kb.KeyIsPressed(KeyArrowUp), "expired after hold window")
}

func TestKeyboardRepeatExtendsHold(t *testing.T) {
	start := time.Unix(1000, 0)
	kb := NewKeyboard(100 * time.Millisecond)

	kb.Press(KeyArrowLeft, 0, start)
	kb.Press(KeyArrowLeft, 0, start.Add(80*time.Millisecond))
	kb.Update(start.Add(150 * time.Millisecond))
	assert.True(t, kb.KeyIsPressed(KeyArrowLeft))
}

func TestKeyboardSnapshotStableUntilUpdate(t *testing.T) {
	now := time.Unix(1000, 0)
	kb := NewKeyboard(0)

	kb.Press(KeyD, 0, now)
	assert.False(t, kb.KeyIsPressed(KeyD), "press visible only after Update")

	kb.Update(now)
	assert.True(t, kb.KeyIsPressed(KeyD))
	assert.True(t, kb.State().Pressed(KeyD))
}

func TestKeyboardRelease(t *testing.T) {
	now := time.Unix(1000, 0)
	kb := NewKeyboard(time.Second)

	kb.Press(KeySpace, 0, now)
	kb.Release(KeySpace)
	kb.Update(now)
	assert.False(t, kb.KeyIsPressed(KeySpace))
}

func TestKeyboardModifiers(t *testing.T) {
	now := time.Unix(1000, 0)
	kb := NewKeyboard(time.Second)

	kb.Press(KeyW, ModShift|ModCtrl, now)
	kb.Update(now)

	s := kb.State()
	assert.True(t, s.Shift)
	assert.True(t, s.Ctrl)
	assert.False(t, s.Alt)
}

func TestOutOfRangeKey(t *testing.T) {
	kb := NewKeyboard(time.Second)
	kb.Press(NumKeys+3, 0, time.Unix(1, 0))
	kb.Update(time.Unix(1, 0))

	assert.False(t, kb.KeyIsPressed(NumKeys+3))
	assert.Equal(t, "unknown", (NumKeys + 3).String())
	assert.Equal(t, "up", KeyArrowUp.String())
}
