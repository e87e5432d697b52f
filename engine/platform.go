package engine

import "time"

// Platform is the windowing/event collaborator driving the main loop
type Platform interface {
	// Open creates the window or screen
	Open(title string, width, height int) error
	// PollEvents drains pending events without blocking and refreshes input state for the frame at now
	PollEvents(now time.Time)
	// IsOpen reports false once the platform signals close
	IsOpen() bool
	// Close releases the window or screen
	Close() error
}

// HeadlessPlatform is a platform without a window
// With a frame budget it closes itself after that many polls
type HeadlessPlatform struct {
	Title  string
	frames int
	polled int
	open   bool
}

// NewHeadlessPlatform creates a headless platform; frames <= 0 runs until Close
func NewHeadlessPlatform(frames int) *HeadlessPlatform {
	return &HeadlessPlatform{frames: frames}
}

func (p *HeadlessPlatform) Open(title string, _, _ int) error {
	p.Title = title
	p.open = true
	return nil
}

func (p *HeadlessPlatform) PollEvents(time.Time) {
	p.polled++
}

func (p *HeadlessPlatform) IsOpen() bool {
	if !p.open {
		return false
	}
	return p.frames <= 0 || p.polled < p.frames
}

func (p *HeadlessPlatform) Close() error {
	p.open = false
	return nil
}

// Polled returns the number of PollEvents calls
func (p *HeadlessPlatform) Polled() int {
	return p.polled
}
