package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/input"
)

var runeKeys = map[rune]input.Key{
	'q': input.KeyQ,
	'w': input.KeyW,
	'a': input.KeyA,
	's': input.KeyS,
	'd': input.KeyD,
	' ': input.KeySpace,
}

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:    input.KeyArrowUp,
	tcell.KeyDown:  input.KeyArrowDown,
	tcell.KeyLeft:  input.KeyArrowLeft,
	tcell.KeyRight: input.KeyArrowRight,
}

// mapKey translates a tcell key event into a game key
// Letters are case-insensitive
func mapKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := runeKeys[r]
		return k, ok
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}

// keyMods returns the event modifiers
// tcell leaves ModShift clear for shifted runes, so an uppercase letter implies shift
func keyMods(ev *tcell.EventKey) input.Modifier {
	mods := mapMods(ev.Modifiers())
	if ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune()) {
		mods |= input.ModShift
	}
	return mods
}

func mapMods(m tcell.ModMask) input.Modifier {
	var out input.Modifier
	if m&tcell.ModShift != 0 {
		out |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= input.ModAlt
	}
	return out
}

// isQuit reports keys that close the platform
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	}
	return false
}
