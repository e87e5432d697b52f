// Package terminal hosts the game in a tcell screen.
//
// Platform satisfies engine.Platform: it owns the screen lifecycle, pumps tcell
// events on a background goroutine and converts key events into input.Keyboard
// presses once per frame. The screen it opens is handed to render.TerminalRenderer.
package terminal
