package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/input"
)

// eventBuffer bounds events queued between frames
const eventBuffer = 64

// Platform is a tcell-backed engine.Platform
type Platform struct {
	screen   tcell.Screen
	keyboard *input.Keyboard
	log      *zap.Logger

	events chan tcell.Event
	quit   chan struct{}

	closeOnce   sync.Once
	initialized bool
	open        bool
	resizes     int
}

// New creates a platform feeding the given keyboard
// screen may be nil, in which case Open creates the default terminal screen
func New(screen tcell.Screen, keyboard *input.Keyboard, log *zap.Logger) *Platform {
	core.Assert(keyboard != nil, "terminal platform requires a keyboard")
	if log == nil {
		log = zap.NewNop()
	}
	return &Platform{
		screen:   screen,
		keyboard: keyboard,
		log:      log.Named("terminal"),
		events:   make(chan tcell.Event, eventBuffer),
		quit:     make(chan struct{}),
	}
}

// Screen returns the underlying screen, nil until Open when none was supplied
func (p *Platform) Screen() tcell.Screen {
	return p.screen
}

// Open initializes the screen and starts the event pump
// The terminal dictates the window size, width and height are only logged
func (p *Platform) Open(title string, width, height int) error {
	if p.initialized {
		return nil
	}
	if p.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		p.screen = s
	}
	if err := p.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	p.screen.SetTitle(title)
	p.screen.HideCursor()
	p.screen.Clear()

	w, h := p.screen.Size()
	p.log.Info("screen opened",
		zap.String("title", title),
		zap.Int("requested_width", width),
		zap.Int("requested_height", height),
		zap.Int("cols", w),
		zap.Int("rows", h),
	)

	p.initialized = true
	p.open = true
	core.Go(p.pump)
	return nil
}

// pump forwards blocking tcell events until the screen is finalized
func (p *Platform) pump() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.quit:
			return
		}
	}
}

// PollEvents drains pending events without blocking and refreshes keyboard state
func (p *Platform) PollEvents(now time.Time) {
	for {
		select {
		case ev := <-p.events:
			p.handle(ev, now)
		default:
			p.keyboard.Update(now)
			return
		}
	}
}

func (p *Platform) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			p.log.Debug("quit key received")
			p.open = false
			return
		}
		if key, ok := mapKey(ev); ok {
			p.keyboard.Press(key, keyMods(ev), now)
		}
	case *tcell.EventResize:
		p.resizes++
		if p.initialized {
			p.screen.Sync()
		}
	}
}

// IsOpen reports whether the loop should keep running
func (p *Platform) IsOpen() bool {
	return p.open
}

// Resizes returns the number of resize events handled
func (p *Platform) Resizes() int {
	return p.resizes
}

// Close finalizes the screen, restoring the terminal. Safe to call repeatedly.
func (p *Platform) Close() error {
	p.closeOnce.Do(func() {
		close(p.quit)
		if p.initialized {
			p.screen.Fini()
		}
		p.open = false
	})
	return nil
}

// Restore finalizes the screen from a crash hook
func (p *Platform) Restore(any) {
	_ = p.Close()
}
